package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
)

type ConvertValue struct {
	catalog   ports.UnitCatalog
	converter ports.Converter
	policy    domain.Policy
	log       *slog.Logger
}

type ConvertOption func(*ConvertValue)

func WithPolicy(p domain.Policy) ConvertOption {
	return func(uc *ConvertValue) {
		if p != "" {
			uc.policy = p
		}
	}
}

func WithLogger(l *slog.Logger) ConvertOption {
	return func(uc *ConvertValue) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewConvertValue(catalog ports.UnitCatalog, converter ports.Converter, opts ...ConvertOption) *ConvertValue {
	uc := &ConvertValue{
		catalog:   catalog,
		converter: converter,
		policy:    domain.PolicyStrict,
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Policy reports the unknown-unit policy in effect.
func (uc *ConvertValue) Policy() domain.Policy {
	return uc.policy
}

// Execute converts a single request. Unit names are matched case-insensitively
// against the category's unit list before reaching the converter.
func (uc *ConvertValue) Execute(ctx context.Context, req domain.ConversionRequest) (domain.ConversionResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ConversionResult{}, err
	}

	req = uc.normalize(req)

	res, err := uc.converter.Convert(req, uc.policy)
	if err != nil {
		uc.log.Warn("convert.failed",
			"category", req.Category,
			"from", req.Source,
			"to", req.Target,
			"policy", uc.policy,
			"err", err,
		)
		return domain.ConversionResult{}, err
	}

	uc.log.Debug("convert.done",
		"category", req.Category,
		"value", req.Value,
		"from", req.Source,
		"to", req.Target,
		"result", res.Value,
	)
	return res, nil
}

func (uc *ConvertValue) normalize(req domain.ConversionRequest) domain.ConversionRequest {
	if name, ok := uc.catalog.ResolveUnit(req.Category, req.Source); ok {
		req.Source = name
	}
	if name, ok := uc.catalog.ResolveUnit(req.Category, req.Target); ok {
		req.Target = name
	}
	return req
}
