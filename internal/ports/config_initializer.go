package ports

import "github.com/aalvaropc/unitconv/internal/domain"

type ConfigInitializer interface {
	Init(target domain.InitSpec, force bool) error
}
