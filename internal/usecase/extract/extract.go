package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/unitconv/internal/domain"
)

// Number reads a single numeric value from a JSON document using a JSONPath expression.
//
// Accepted shapes: a JSON number, a numeric string, or a one-element array of either.
// Every failure is an OpError of kind invalid_value.
func Number(body []byte, expr string) (float64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, invalidValue(expr, fmt.Errorf("empty jsonpath expression"))
	}

	doc, err := parseJSON(body)
	if err != nil {
		return 0, invalidValue(expr, fmt.Errorf("document is not valid JSON: %v", err))
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return 0, invalidValue(expr, fmt.Errorf("jsonpath error: %v", err))
	}

	f, err := toFloat(val)
	if err != nil {
		return 0, invalidValue(expr, err)
	}
	return f, nil
}

func parseJSON(body []byte) (any, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func toFloat(v any) (float64, error) {
	// jsonpath returns a slice for wildcard/filter expressions.
	if arr, ok := v.([]any); ok {
		switch len(arr) {
		case 0:
			return 0, fmt.Errorf("no value found")
		case 1:
			return toFloat(arr[0])
		default:
			return 0, fmt.Errorf("expected a single value, got %d", len(arr))
		}
	}

	switch t := v.(type) {
	case nil:
		return 0, fmt.Errorf("no value found")
	case float64:
		return t, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not a number", t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("value of type %T is not a number", t)
	}
}

func invalidValue(expr string, err error) error {
	return &domain.OpError{
		Op:   "extract.number",
		Kind: domain.KindInvalidValue,
		Err:  fmt.Errorf("jsonpath %q: %v: %w", expr, err, domain.ErrInvalidValue),
	}
}
