package ports

// ValueReader reads the raw bytes of a value source document.
type ValueReader interface {
	ReadFile(path string) ([]byte, error)
}
