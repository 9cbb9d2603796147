package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/units"
)

func TestConvertValue_NormalizesUnitNames(t *testing.T) {
	conv := &countingConverter{res: domain.ConversionResult{Value: 1}}
	uc := NewConvertValue(units.NewCatalog(), conv)

	_, err := uc.Execute(context.Background(), domain.ConversionRequest{
		Value:    1,
		Source:   "KILOMETERS",
		Target:   " Meters",
		Category: domain.CategoryLength,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.last.Source != "kilometers" || conv.last.Target != "meters" {
		t.Fatalf("expected normalized names, got %q -> %q", conv.last.Source, conv.last.Target)
	}
}

func TestConvertValue_EndToEnd(t *testing.T) {
	uc := NewConvertValue(units.NewCatalog(), units.NewEngine())
	res, err := uc.Execute(context.Background(), domain.ConversionRequest{
		Value:    1,
		Source:   "kilometers",
		Target:   "meters",
		Category: domain.CategoryLength,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value != 1000 {
		t.Fatalf("expected 1000, got %v", res.Value)
	}
}

func TestConvertValue_StrictByDefault(t *testing.T) {
	uc := NewConvertValue(units.NewCatalog(), units.NewEngine())
	if uc.Policy() != domain.PolicyStrict {
		t.Fatalf("expected strict policy by default, got %q", uc.Policy())
	}
	_, err := uc.Execute(context.Background(), domain.ConversionRequest{
		Value:    1,
		Source:   "furlongs",
		Target:   "meters",
		Category: domain.CategoryLength,
	})
	if !domain.IsKind(err, domain.KindUnknownUnit) {
		t.Fatalf("expected KindUnknownUnit, got %v", err)
	}
}

func TestConvertValue_LenientPolicy(t *testing.T) {
	uc := NewConvertValue(units.NewCatalog(), units.NewEngine(), WithPolicy(domain.PolicyLenient))
	res, err := uc.Execute(context.Background(), domain.ConversionRequest{
		Value:    3,
		Source:   "furlongs",
		Target:   "meters",
		Category: domain.CategoryLength,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value != 3 {
		t.Fatalf("expected identity fallback, got %v", res.Value)
	}
}

func TestConvertValue_PropagatesConverterError(t *testing.T) {
	boom := errors.New("boom")
	uc := NewConvertValue(units.NewCatalog(), &countingConverter{err: boom})
	_, err := uc.Execute(context.Background(), domain.ConversionRequest{Category: domain.CategoryLength})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestConvertValue_ContextCancelled(t *testing.T) {
	conv := &countingConverter{}
	uc := NewConvertValue(units.NewCatalog(), conv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, domain.ConversionRequest{Category: domain.CategoryLength})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if conv.calls != 0 {
		t.Fatalf("expected 0 converter calls, got %d", conv.calls)
	}
}
