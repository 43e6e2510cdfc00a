// Package library maps a dynamic library into the process and resolves its
// exports by ordinal.
//
// A Module is never unloaded. Addresses resolved from it stay valid for the
// lifetime of the process.
package library

import (
	"fmt"
)

// Module is a mapped library.
type Module struct {
	path   string
	handle uintptr
}

func (m *Module) Path() string {
	return m.path
}

// Handle returns the opaque module handle.
func (m *Module) Handle() uintptr {
	return m.handle
}

func (m *Module) String() string {
	return fmt.Sprintf("%v (handle %#x)", m.path, m.handle)
}

// Loader loads modules from the file system.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Load maps the library at path. Failures are reported as
// fault.LibraryLoadFailed carrying the OS error code. Nothing about the
// library's contents or origin is checked.
func (l *Loader) Load(path string) (*Module, error) {
	return load(path)
}
