package ports

import "github.com/aalvaropc/unitconv/internal/domain"

// BatchLoader loads batch files from a source (e.g., filesystem).
type BatchLoader interface {
	LoadBatch(path string) (domain.Batch, error)
}
