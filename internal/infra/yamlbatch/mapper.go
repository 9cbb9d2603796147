package yamlbatch

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/unitconv/internal/domain"
)

func mapBatch(path string, yb yamlBatch) (domain.Batch, error) {
	name := strings.TrimSpace(yb.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if len(yb.Items) == 0 {
		return domain.Batch{}, invalidField(path, "items", "at least one item is required")
	}

	b := domain.Batch{
		Name:  name,
		Items: make([]domain.BatchItem, 0, len(yb.Items)),
	}

	for i, it := range yb.Items {
		fieldPrefix := fmt.Sprintf("items[%d]", i)

		cat, err := domain.ParseCategory(it.Category)
		if err != nil {
			return domain.Batch{}, invalidField(path, fieldPrefix+".category", fmt.Sprintf("unknown category %q", it.Category))
		}
		if strings.TrimSpace(it.From) == "" {
			return domain.Batch{}, invalidField(path, fieldPrefix+".from", "source unit is required")
		}
		if strings.TrimSpace(it.To) == "" {
			return domain.Batch{}, invalidField(path, fieldPrefix+".to", "target unit is required")
		}
		if it.Value == nil && it.JSON == nil {
			return domain.Batch{}, invalidField(path, fieldPrefix+".value", "value or json source is required")
		}
		if it.Value != nil && it.JSON != nil {
			return domain.Batch{}, invalidField(path, fieldPrefix+".value", "value and json source are mutually exclusive")
		}
		if it.Tolerance < 0 {
			return domain.Batch{}, invalidField(path, fieldPrefix+".tolerance", "tolerance must not be negative")
		}

		item := domain.BatchItem{
			Name: it.Name,
			Request: domain.ConversionRequest{
				Category: cat,
				Source:   strings.TrimSpace(it.From),
				Target:   strings.TrimSpace(it.To),
			},
		}
		if strings.TrimSpace(item.Name) == "" {
			item.Name = fmt.Sprintf("%s->%s #%d", item.Request.Source, item.Request.Target, i+1)
		}

		if it.Value != nil {
			item.Request.Value = *it.Value
		}
		if it.JSON != nil {
			if strings.TrimSpace(it.JSON.File) == "" {
				return domain.Batch{}, invalidField(path, fieldPrefix+".json.file", "file is required")
			}
			if strings.TrimSpace(it.JSON.Path) == "" {
				return domain.Batch{}, invalidField(path, fieldPrefix+".json.path", "jsonpath is required")
			}
			item.ValueFrom = &domain.JSONValueSource{
				File: strings.TrimSpace(it.JSON.File),
				Path: strings.TrimSpace(it.JSON.Path),
			}
		}
		if it.Expect != nil {
			item.Expect = &domain.Expectation{Value: *it.Expect, Tolerance: it.Tolerance}
		}

		b.Items = append(b.Items, item)
	}

	return b, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlbatch.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
