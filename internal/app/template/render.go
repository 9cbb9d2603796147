package template

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aalvaropc/unitconv/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", templateError(fmt.Errorf("unclosed template expression"))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", templateError(fmt.Errorf("empty template expression"))
		}

		value, ok := vars[key]
		if !ok {
			return "", templateError(fmt.Errorf("unknown placeholder %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// ResultVars exposes a conversion result to RenderString.
//
// Placeholders: value, from, to, category, result, canonical, canonical_unit.
func ResultVars(res domain.ConversionResult) map[string]string {
	return map[string]string{
		"value":          FormatFloat(res.Request.Value),
		"from":           res.Request.Source,
		"to":             res.Request.Target,
		"category":       string(res.Request.Category),
		"result":         FormatFloat(res.Value),
		"canonical":      FormatFloat(res.Canonical),
		"canonical_unit": res.CanonicalUnit,
	}
}

// FormatFloat prints the shortest representation that round-trips. Plain
// decimal notation is used between 1e-4 and 1e21; exponents outside that range.
func FormatFloat(f float64) string {
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-4 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func templateError(err error) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%v: %w", err, domain.ErrInvalidConfig),
	}
}
