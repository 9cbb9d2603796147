package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/app/template"
	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/units"
	ucextract "github.com/aalvaropc/unitconv/internal/usecase/extract"
)

type convertFlags struct {
	value    string
	category string
	from     string
	to       string
	policy   string
	format   string
	template string
	jsonFile string
	jsonPath string
}

func convertCmd(configPath *string) *cobra.Command {
	var f convertFlags

	c := &cobra.Command{
		Use:   "convert [VALUE]",
		Short: "Convert a value between two units of one category",
		Long: "Convert a value between two units of one category.\n\n" +
			"Negative values must be passed after -- or with --value=-40.\n" +
			"When --from/--to are omitted the category defaults apply (second unit -> first unit).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*configPath)
			if err != nil {
				return err
			}

			req, err := buildRequest(p, f, args)
			if err != nil {
				return err
			}

			uc, err := p.convertUC(f.policy)
			if err != nil {
				return err
			}

			res, err := uc.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}

			format := f.format
			if format == "" {
				format = p.cfg.Defaults.Format
			}
			return printResult(cmd.OutOrStdout(), res, format, f.template)
		},
	}

	c.Flags().StringVarP(&f.value, "value", "v", "", "Value to convert (alternative to the positional VALUE)")
	c.Flags().StringVarP(&f.category, "category", "k", "", "Category: length|temperature|time|volume (defaults to config)")
	c.Flags().StringVarP(&f.from, "from", "f", "", "Source unit")
	c.Flags().StringVarP(&f.to, "to", "t", "", "Target unit")
	c.Flags().StringVar(&f.policy, "unknown-units", "", "Unknown unit policy: strict|lenient (defaults to config)")
	c.Flags().StringVar(&f.format, "format", "", "Output format: pretty|json|plain (defaults to config)")
	c.Flags().StringVar(&f.template, "template", "", "Output template, e.g. '{{value}} {{from}} = {{result}} {{to}}'")
	c.Flags().StringVar(&f.jsonFile, "json", "", "Read the value from this JSON file")
	c.Flags().StringVar(&f.jsonPath, "path", "", "JSONPath of the value inside --json (e.g. $.trip.distance)")
	return c
}

func buildRequest(p *projectCtx, f convertFlags, args []string) (domain.ConversionRequest, error) {
	cat := p.cfg.Defaults.Category
	if strings.TrimSpace(f.category) != "" {
		c, err := domain.ParseCategory(f.category)
		if err != nil {
			return domain.ConversionRequest{}, err
		}
		cat = c
	}

	value, err := readValue(f, args)
	if err != nil {
		return domain.ConversionRequest{}, err
	}

	req := domain.ConversionRequest{
		Value:    value,
		Source:   strings.TrimSpace(f.from),
		Target:   strings.TrimSpace(f.to),
		Category: cat,
	}

	if req.Source == "" || req.Target == "" {
		list, err := p.catalog.UnitsFor(cat)
		if err != nil {
			return domain.ConversionRequest{}, err
		}
		target, source, _ := units.DefaultSelection(list)
		if req.Source == "" {
			req.Source = source
		}
		if req.Target == "" {
			req.Target = target
		}
	}
	return req, nil
}

func readValue(f convertFlags, args []string) (float64, error) {
	sources := 0
	raw := strings.TrimSpace(f.value)
	if raw != "" {
		sources++
	}
	if len(args) == 1 {
		sources++
		raw = strings.TrimSpace(args[0])
	}
	if f.jsonFile != "" {
		sources++
	}

	switch {
	case sources == 0:
		return 0, fmt.Errorf("a value is required (positional VALUE, --value, or --json with --path)")
	case sources > 1:
		return 0, fmt.Errorf("use only one of VALUE, --value, or --json")
	}

	if f.jsonFile != "" {
		if strings.TrimSpace(f.jsonPath) == "" {
			return 0, fmt.Errorf("--path is required with --json")
		}
		body, err := os.ReadFile(f.jsonFile)
		if err != nil {
			return 0, &domain.OpError{
				Op:   "cli.read_json",
				Kind: domain.KindNotFound,
				Path: f.jsonFile,
				Err:  err,
			}
		}
		return ucextract.Number(body, f.jsonPath)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &domain.OpError{
			Op:   "cli.parse_value",
			Kind: domain.KindInvalidValue,
			Err:  fmt.Errorf("%q is not a number: %w", raw, domain.ErrInvalidValue),
		}
	}
	return v, nil
}

func printResult(w io.Writer, res domain.ConversionResult, format string, tmpl string) error {
	if strings.TrimSpace(tmpl) != "" {
		out, err := template.RenderString(tmpl, template.ResultVars(res))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"category":       res.Request.Category,
			"value":          res.Request.Value,
			"from":           res.Request.Source,
			"to":             res.Request.Target,
			"result":         res.Value,
			"canonical":      res.Canonical,
			"canonical_unit": res.CanonicalUnit,
		}
		return enc.Encode(payload)
	case "plain":
		_, err := fmt.Fprintln(w, template.FormatFloat(res.Value))
		return err
	case "pretty", "":
		printPrettyResult(w, res)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|plain)", format)
	}
}

func printPrettyResult(w io.Writer, res domain.ConversionResult) {
	fmt.Fprintf(w, "Category:  %s\n", res.Request.Category)
	fmt.Fprintf(w, "Input:     %s %s\n", template.FormatFloat(res.Request.Value), res.Request.Source)
	fmt.Fprintf(w, "Result:    %s %s\n", template.FormatFloat(res.Value), res.Request.Target)
	fmt.Fprintf(w, "Canonical: %s %s\n", template.FormatFloat(res.Canonical), res.CanonicalUnit)
}
