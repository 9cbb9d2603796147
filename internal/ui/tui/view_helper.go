package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/unitconv/internal/app/template"
	"github.com/aalvaropc/unitconv/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderPicker draws the current option between arrows, e.g. "‹ meters ›".
func renderPicker(options []string, idx int) string {
	if len(options) == 0 {
		return "(none)"
	}
	if idx < 0 || idx >= len(options) {
		idx = 0
	}
	return "‹ " + options[idx] + " ›"
}

func renderResult(res domain.ConversionResult) string {
	var b strings.Builder
	b.WriteString(template.FormatFloat(res.Request.Value))
	b.WriteString(" ")
	b.WriteString(res.Request.Source)
	b.WriteString(" = ")
	b.WriteString(template.FormatFloat(res.Value))
	b.WriteString(" ")
	b.WriteString(res.Request.Target)
	return b.String()
}

func categoryNames(cats []domain.Category) []string {
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.String())
	}
	return out
}
