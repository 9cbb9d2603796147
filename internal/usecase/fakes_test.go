package usecase

import (
	"errors"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
)

type fakeBatchLoader struct {
	batch domain.Batch
	err   error
}

func (f fakeBatchLoader) LoadBatch(string) (domain.Batch, error) {
	return f.batch, f.err
}

type fakeReader struct {
	files map[string][]byte
}

func (f fakeReader) ReadFile(path string) ([]byte, error) {
	b, ok := f.files[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return b, nil
}

type countingConverter struct {
	calls int
	last  domain.ConversionRequest
	res   domain.ConversionResult
	err   error
}

func (c *countingConverter) Convert(req domain.ConversionRequest, _ domain.Policy) (domain.ConversionResult, error) {
	c.calls++
	c.last = req
	if c.err != nil {
		return domain.ConversionResult{}, c.err
	}
	out := c.res
	out.Request = req
	return out, nil
}

var (
	_ ports.BatchLoader = fakeBatchLoader{}
	_ ports.ValueReader = fakeReader{}
	_ ports.Converter   = (*countingConverter)(nil)
)
