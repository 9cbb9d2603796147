package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitconv/internal/infra/logger"
	"github.com/aalvaropc/unitconv/internal/ui/tui"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

var logCleanup func() error

func Execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	shutdownLogging()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var configPath string

	cmd := &cobra.Command{
		Use:          "unitconv",
		Short:        "unitconv: convert lengths and temperatures from a form or the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !debug {
				return nil
			}
			return setupLogging(configPath)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := loadProject(configPath)
			if err != nil {
				return err
			}

			convert, err := p.convertUC("")
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Catalog:  p.catalog,
				Select:   usecase.NewSelectUnits(p.catalog),
				Convert:  convert,
				Category: p.cfg.Defaults.Category,
				Logger:   logger.L(),
				Debug:    debug,
				LogPath:  logger.Current().Path,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .unitconv/logs/unitconv.log")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to unitconv.yaml (optional; autodetected if omitted)")

	cmd.AddCommand(
		convertCmd(&configPath),
		unitsCmd(&configPath),
		categoriesCmd(),
		batchCmd(&configPath),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func setupLogging(configPath string) error {
	root, err := resolveProjectRoot()
	if err != nil {
		return err
	}
	if p, perr := loadProject(configPath); perr == nil {
		root = p.root
	}

	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: true})
	if err != nil {
		return err
	}
	logCleanup = cleanup
	return nil
}

func shutdownLogging() {
	if logCleanup != nil {
		_ = logCleanup()
		logCleanup = nil
	}
}
