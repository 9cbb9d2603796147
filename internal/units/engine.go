package units

import (
	"fmt"
	"math"

	"github.com/aalvaropc/unitconv/internal/domain"
)

// ToMeters converts value expressed in unit to meters.
// Unknown unit names are returned unchanged.
func ToMeters(unit string, value float64) float64 {
	s, ok := lengthTable.scales[unit]
	if !ok {
		return value
	}
	return s.toCanonical(value)
}

// FromMeters converts a meters value to unit.
// Unknown unit names are returned unchanged.
func FromMeters(unit string, meters float64) float64 {
	s, ok := lengthTable.scales[unit]
	if !ok {
		return meters
	}
	return s.fromCanonical(meters)
}

// ConvertLength converts value from source to target through meters.
// Unrecognized names are treated as already being meters at their stage.
func ConvertLength(value float64, source, target string) float64 {
	return FromMeters(target, ToMeters(source, value))
}

// Engine converts values between units of the same category.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Convert runs req through the category's canonical unit.
//
// Under PolicyStrict both units must belong to the category. Under PolicyLenient an
// unknown unit is an identity stage, matching ConvertLength.
func (*Engine) Convert(req domain.ConversionRequest, policy domain.Policy) (domain.ConversionResult, error) {
	const op = "units.convert"

	t, ok, err := tableFor(req.Category)
	if err != nil {
		return domain.ConversionResult{}, err
	}
	if !ok {
		return domain.ConversionResult{}, domain.UnsupportedCategoryError(op, req.Category)
	}

	if !finite(req.Value) {
		return domain.ConversionResult{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidValue,
			Err:  domain.ErrInvalidValue,
		}
	}

	src, srcOK := t.scales[req.Source]
	dst, dstOK := t.scales[req.Target]
	if policy != domain.PolicyLenient {
		if !srcOK {
			return domain.ConversionResult{}, domain.UnknownUnitError(op, req.Category, req.Source)
		}
		if !dstOK {
			return domain.ConversionResult{}, domain.UnknownUnitError(op, req.Category, req.Target)
		}
	}

	canonical := req.Value
	if srcOK {
		canonical = src.toCanonical(req.Value)
	}
	out := canonical
	if dstOK {
		out = dst.fromCanonical(canonical)
	}

	// A finite input can still overflow float64 on the way through.
	if !finite(canonical) || !finite(out) {
		return domain.ConversionResult{}, &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidValue,
			Err:  fmt.Errorf("%g %s overflows converting to %s: %w", req.Value, req.Source, req.Target, domain.ErrInvalidValue),
		}
	}

	return domain.ConversionResult{
		Request:       req,
		Value:         out,
		Canonical:     canonical,
		CanonicalUnit: t.canonical,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
