package yamlbatch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/unitconv/internal/domain"
	"github.com/aalvaropc/unitconv/internal/ports"
)

type Loader struct {
	batchesDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{batchesDir: "batches"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithBatchesDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.batchesDir = dir
		}
	}
}

var _ ports.BatchLoader = (*Loader)(nil)

func (l *Loader) LoadBatch(path string) (domain.Batch, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Batch{}, &domain.OpError{
			Op:   "yamlbatch.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yb yamlBatch
	if err := yaml.Unmarshal(b, &yb); err != nil {
		return domain.Batch{}, &domain.OpError{
			Op:   "yamlbatch.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapBatch(path, yb)
}

// BatchRef names a batch file under the batches directory.
type BatchRef struct {
	Name string
	Path string
}

// ListBatches returns the YAML files under <root>/<batchesDir>, sorted by name.
func (l *Loader) ListBatches(root string) ([]BatchRef, error) {
	dir := filepath.Join(root, l.batchesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlbatch.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []BatchRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !HasYAMLExt(name) {
			continue
		}
		refs = append(refs, BatchRef{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

// Dir returns the configured batches directory name.
func (l *Loader) Dir() string {
	return l.batchesDir
}

func HasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}
