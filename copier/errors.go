package copier

import "fmt"

// NotFoundError represents error thrown if source directory does not exist
type NotFoundError struct {
	Path string
}

// Error is used to satisfy golang error interface
func (e NotFoundError) Error() string {
	return fmt.Sprintf("Source directory does not exist: %v", e.Path)
}

// IOError represents error thrown if reading, writing or creating an entry failed
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error is used to satisfy golang error interface
func (e IOError) Error() string {
	return fmt.Sprintf("Can not %v %v: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns underlying error
func (e IOError) Unwrap() error {
	return e.Err
}
