package assert

import (
	"fmt"
	"math"

	"github.com/aalvaropc/unitconv/internal/domain"
)

// DefaultTolerance applies when an expectation does not set one.
const DefaultTolerance = 1e-9

// Within checks that got lies within tolerance of expected (absolute difference).
func Within(expected, tolerance, got float64) domain.CheckResult {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	diff := math.Abs(got - expected)
	if diff <= tolerance {
		return domain.CheckResult{
			Name:    "expect",
			Passed:  true,
			Message: fmt.Sprintf("%g within %g of %g", got, tolerance, expected),
		}
	}

	return domain.CheckResult{
		Name:    "expect",
		Passed:  false,
		Message: fmt.Sprintf("expected %g ± %g, got %g (off by %g)", expected, tolerance, got, diff),
	}
}

// Finite fails for NaN and ±Inf results.
func Finite(got float64) domain.CheckResult {
	if math.IsNaN(got) || math.IsInf(got, 0) {
		return domain.CheckResult{
			Name:    "finite",
			Passed:  false,
			Message: fmt.Sprintf("result %v is not a finite number", got),
		}
	}
	return domain.CheckResult{
		Name:    "finite",
		Passed:  true,
		Message: "result is finite",
	}
}

// Evaluate applies the expectation (if any) to a conversion result.
func Evaluate(exp *domain.Expectation, res domain.ConversionResult) []domain.CheckResult {
	out := []domain.CheckResult{Finite(res.Value)}
	if exp == nil {
		return out
	}
	return append(out, Within(exp.Value, exp.Tolerance, res.Value))
}
