package ports

import "github.com/aalvaropc/unitconv/internal/domain"

// Converter turns a request into a converted value.
type Converter interface {
	Convert(req domain.ConversionRequest, policy domain.Policy) (domain.ConversionResult, error)
}
