package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/app/template"
	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/infra/logger"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

func batchCmd(configPath *string) *cobra.Command {
	c := &cobra.Command{
		Use:   "batch",
		Short: "Run or list batch files of conversions",
	}

	c.AddCommand(batchRunCmd(configPath), batchListCmd(configPath))
	return c
}

func batchRunCmd(configPath *string) *cobra.Command {
	var format string
	var policy string

	c := &cobra.Command{
		Use:   "run FILE",
		Short: "Convert every item of a batch file and check expectations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(*configPath)
			if err != nil {
				return err
			}

			path, err := resolveBatchPath(p, args[0])
			if err != nil {
				return err
			}

			convert, err := p.convertUC(policy)
			if err != nil {
				return err
			}

			uc := usecase.NewRunBatch(p.batches, convert, usecase.WithBatchLogger(logger.L()))
			out, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				_ = printBatch(cmd.OutOrStdout(), out, format)
				return err
			}

			if err := printBatch(cmd.OutOrStdout(), out, format); err != nil {
				return err
			}

			if fails := out.Failures(); fails > 0 {
				return fmt.Errorf("batch failed (%d failed item(s))", fails)
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVar(&policy, "unknown-units", "", "Unknown unit policy: strict|lenient (defaults to config)")
	return c
}

func batchListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List batch files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProject(*configPath)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			refs, err := p.batches.ListBatches(p.root)
			if err != nil || len(refs) == 0 {
				fmt.Fprintln(w, "(no batches found)")
				return nil
			}

			fmt.Fprintf(w, "Root: %s\n\n", p.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(p.root, r.Path)
				fmt.Fprintf(w, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}
}

func printBatch(w io.Writer, out domain.BatchResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "pretty", "":
		printPrettyBatch(w, out)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyBatch(w io.Writer, out domain.BatchResult) {
	total := out.EndedAt.Sub(out.StartedAt)
	if out.StartedAt.IsZero() || out.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Batch:    %s\n", out.Name)
	fmt.Fprintf(w, "File:     %s\n", out.File)
	if out.ID != "" {
		fmt.Fprintf(w, "ID:       %s\n", out.ID)
	}
	fmt.Fprintf(w, "Started:  %s\n", out.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %s\n", total)
	fmt.Fprintln(w)

	for _, it := range out.Items {
		status := "OK"
		if it.Failed() {
			status = "FAIL"
		}

		req := it.Request
		fmt.Fprintf(w, "- [%s] %s (%s)\n", status, it.Name, req.Category)

		if it.Error != nil {
			fmt.Fprintf(w, "  error: %s (%s)\n", it.Error.Message, it.Error.Kind)
		} else if it.Result != nil {
			fmt.Fprintf(w, "  %s %s = %s %s\n",
				template.FormatFloat(req.Value), req.Source,
				template.FormatFloat(it.Result.Value), req.Target)
		}

		for _, c := range it.Checks {
			mark := "✓"
			if !c.Passed {
				mark = "✗"
			}
			fmt.Fprintf(w, "    %s %s: %s\n", mark, c.Name, c.Message)
		}
	}

	fmt.Fprintf(w, "\n%d item(s), %d failed\n", len(out.Items), out.Failures())
}
