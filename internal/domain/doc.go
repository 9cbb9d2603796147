// Package domain contains the core domain model for unitconv.
//
// The domain is presentation- and persistence-agnostic: it does not depend on YAML parsing,
// the terminal, or the filesystem. Infra/adapters map into/from these types.
package domain
