package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/infra/configfinder"
	"github.com/aalvaropc/unitconv/internal/infra/logger"
	"github.com/aalvaropc/unitconv/internal/infra/yamlbatch"
	"github.com/aalvaropc/unitconv/internal/units"
	"github.com/aalvaropc/unitconv/internal/usecase"
)

type projectCtx struct {
	root      string
	cfg       domain.Config
	hasConfig bool

	catalog *units.Catalog
	engine  *units.Engine
	batches *yamlbatch.Loader
}

// loadProject resolves configuration. An explicit --config must exist; otherwise
// unitconv.yaml is searched upward from the working directory and defaults apply
// when none is found.
func loadProject(configFlag string) (*projectCtx, error) {
	p := &projectCtx{
		cfg:     domain.DefaultConfig(),
		catalog: units.NewCatalog(),
		engine:  units.NewEngine(),
	}

	if c := strings.TrimSpace(configFlag); c != "" {
		abs, err := filepath.Abs(c)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := configfinder.LoadFile(abs)
		if err != nil {
			return nil, err
		}
		p.root = filepath.Dir(abs)
		p.cfg = cfg
		p.hasConfig = true
	} else {
		root, err := resolveProjectRoot()
		if err != nil {
			return nil, err
		}
		p.root = root

		cfg, err := configfinder.LoadConfig(root)
		switch {
		case err == nil:
			p.cfg = cfg
			p.hasConfig = true
		case domain.IsKind(err, domain.KindNotFound):
			// No config file: keep defaults.
		default:
			return nil, err
		}
	}

	p.batches = yamlbatch.NewLoader(yamlbatch.WithBatchesDir(p.cfg.Paths.BatchesDir))
	return p, nil
}

func (p *projectCtx) convertUC(policyFlag string) (*usecase.ConvertValue, error) {
	policy := p.cfg.Conversion.UnknownUnits
	if strings.TrimSpace(policyFlag) != "" {
		pp, err := domain.ParsePolicy(policyFlag)
		if err != nil {
			return nil, err
		}
		policy = pp
	}
	return usecase.NewConvertValue(p.catalog, p.engine,
		usecase.WithPolicy(policy),
		usecase.WithLogger(logger.L()),
	), nil
}

// resolveProjectRoot returns the directory holding unitconv.yaml, or the working
// directory when there is none.
func resolveProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := configfinder.NewFinder().FindRoot(wd)
	if err != nil {
		return wd, nil
	}
	return root, nil
}

func resolveBatchPath(p *projectCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("batch file is required")
	}

	// Path-like arguments resolve against the working directory like any CLI path.
	if looksLikePath(in) {
		abs, err := filepath.Abs(in)
		if err != nil {
			return "", fmt.Errorf("invalid batch path: %w", err)
		}
		return abs, nil
	}

	if fileExists(in) {
		return filepath.Abs(in)
	}

	batchesDir := filepath.Join(p.root, p.batches.Dir())

	if yamlbatch.HasYAMLExt(in) {
		cand := filepath.Join(batchesDir, in)
		if fileExists(cand) {
			return cand, nil
		}
	}

	for _, ext := range []string{".yaml", ".yml"} {
		cand := filepath.Join(batchesDir, in+ext)
		if fileExists(cand) {
			return cand, nil
		}
	}

	return "", fmt.Errorf("batch %q not found in %q", in, batchesDir)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
