//go:build !windows

package library

import (
	"fmt"
	"syscall"

	"github.com/planetA/vgrl/pkg/fault"
)

// Ordinal exports only exist in PE images; other platforms always fail to
// load.
func load(path string) (*Module, error) {
	return nil, fault.New(fault.LibraryLoadFailed, path, syscall.ENOSYS)
}

func (m *Module) Resolve(ordinal uint16) (uintptr, error) {
	return 0, fault.New(fault.SymbolNotFound, fmt.Sprintf("%v ordinal %d", m.path, ordinal), syscall.ENOSYS)
}
