package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/units"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

func unitsCmd(configPath *string) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "units [CATEGORY]",
		Short: "List the units of a category and its default selection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*configPath)
			if err != nil {
				return err
			}

			cat := p.cfg.Defaults.Category
			if len(args) == 1 {
				parsed, err := domain.ParseCategory(args[0])
				if err != nil {
					return err
				}
				cat = parsed
			}

			sel, err := usecase.NewSelectUnits(p.catalog).Execute(cat)
			if err != nil {
				return err
			}
			return printSelection(cmd.OutOrStdout(), sel, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printSelection(w io.Writer, sel domain.Selection, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"category": sel.Category,
			"units":    sel.Units,
		}
		if sel.HasDefaults {
			payload["default_target"] = sel.Target
			payload["default_source"] = sel.Source
		}
		return enc.Encode(payload)
	case "pretty", "":
		fmt.Fprintf(w, "Category: %s\n\n", sel.Category)
		for _, u := range sel.Units {
			var marks []string
			if sel.HasDefaults && u == sel.Source {
				marks = append(marks, "default from")
			}
			if sel.HasDefaults && u == sel.Target {
				marks = append(marks, "default to")
			}
			if len(marks) > 0 {
				fmt.Fprintf(w, "- %s  (%s)\n", u, strings.Join(marks, ", "))
			} else {
				fmt.Fprintf(w, "- %s\n", u)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List measurement categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printCategories(cmd.OutOrStdout(), units.NewCatalog())
			return nil
		},
	}
}

func printCategories(w io.Writer, catalog *units.Catalog) {
	for _, c := range catalog.Categories() {
		status := "supported"
		if !catalog.Supported(c) {
			status = "no unit data"
		}
		fmt.Fprintf(w, "- %-12s %s\n", c, status)
	}
}
