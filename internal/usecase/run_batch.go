package usecase

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
	ucassert "github.com/aalvaropc/unitconv/internal/usecase/assert"
	ucextract "github.com/aalvaropc/unitconv/internal/usecase/extract"
)

type osReader struct{}

func (osReader) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

type RunBatch struct {
	batches ports.BatchLoader
	convert *ConvertValue
	reader  ports.ValueReader
	newID   func() string
	now     func() time.Time
	log     *slog.Logger
}

type BatchOption func(*RunBatch)

// WithValueReader replaces the filesystem reader used for JSON value sources.
func WithValueReader(r ports.ValueReader) BatchOption {
	return func(uc *RunBatch) {
		if r != nil {
			uc.reader = r
		}
	}
}

// WithIDs is useful for tests.
func WithIDs(newID func() string) BatchOption {
	return func(uc *RunBatch) { uc.newID = newID }
}

func WithClock(now func() time.Time) BatchOption {
	return func(uc *RunBatch) { uc.now = now }
}

func WithBatchLogger(l *slog.Logger) BatchOption {
	return func(uc *RunBatch) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewRunBatch(bl ports.BatchLoader, convert *ConvertValue, opts ...BatchOption) *RunBatch {
	uc := &RunBatch{
		batches: bl,
		convert: convert,
		reader:  osReader{},
		newID:   uuid.NewString,
		now:     time.Now,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads a batch file and converts every item in order.
// A failed item is recorded and the batch continues; cancellation stops between items.
func (uc *RunBatch) Execute(ctx context.Context, path string) (domain.BatchResult, error) {
	b, err := uc.batches.LoadBatch(path)
	if err != nil {
		return domain.BatchResult{}, err
	}

	out := domain.BatchResult{
		ID:        uc.newID(),
		Name:      b.Name,
		File:      path,
		StartedAt: uc.now(),
		Items:     make([]domain.ItemResult, 0, len(b.Items)),
	}
	uc.log.Info("batch.started", "id", out.ID, "file", path, "items", len(b.Items))

	baseDir := filepath.Dir(path)
	for _, item := range b.Items {
		if err := ctx.Err(); err != nil {
			out.EndedAt = uc.now()
			return out, err
		}

		ir := uc.runItem(ctx, baseDir, item)
		if ir.Failed() {
			uc.log.Warn("batch.item.failed", "id", out.ID, "item", item.Name)
		}
		out.Items = append(out.Items, ir)
	}

	out.EndedAt = uc.now()
	uc.log.Info("batch.finished", "id", out.ID, "failures", out.Failures())
	return out, nil
}

func (uc *RunBatch) runItem(ctx context.Context, baseDir string, item domain.BatchItem) domain.ItemResult {
	ir := domain.ItemResult{Name: item.Name, Request: item.Request}

	if item.ValueFrom != nil {
		v, err := uc.readValue(baseDir, *item.ValueFrom)
		if err != nil {
			ir.Error = domain.NewItemError(err)
			return ir
		}
		ir.Request.Value = v
	}

	res, err := uc.convert.Execute(ctx, ir.Request)
	if err != nil {
		ir.Error = domain.NewItemError(err)
		return ir
	}

	ir.Request = res.Request
	ir.Result = &res
	ir.Checks = ucassert.Evaluate(item.Expect, res)
	return ir
}

func (uc *RunBatch) readValue(baseDir string, src domain.JSONValueSource) (float64, error) {
	p := src.File
	if !filepath.IsAbs(p) {
		p = filepath.Join(baseDir, p)
	}

	body, err := uc.reader.ReadFile(p)
	if err != nil {
		return 0, &domain.OpError{
			Op:   "batch.read_value",
			Kind: domain.KindNotFound,
			Path: p,
			Err:  err,
		}
	}
	return ucextract.Number(body, src.Path)
}
