//go:build windows

package library

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"

	"github.com/planetA/vgrl/pkg/fault"
)

func load(path string) (*Module, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Debug("LoadLibrary failed")
		return nil, fault.Wrap(fault.LibraryLoadFailed, path, err)
	}

	return &Module{
		path:   path,
		handle: uintptr(handle),
	}, nil
}

// Resolve returns the address exported at ordinal. Failures are reported as
// fault.SymbolNotFound.
func (m *Module) Resolve(ordinal uint16) (uintptr, error) {
	proc, err := windows.GetProcAddressByOrdinal(windows.Handle(m.handle), uintptr(ordinal))
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"module":  m.path,
			"ordinal": ordinal,
		}).Debug("GetProcAddress failed")
		return 0, fault.Wrap(fault.SymbolNotFound, fmt.Sprintf("%v ordinal %d", m.path, ordinal), err)
	}
	if proc == 0 {
		return 0, fault.New(fault.SymbolNotFound, fmt.Sprintf("%v ordinal %d", m.path, ordinal), windows.ERROR_PROC_NOT_FOUND)
	}

	return proc, nil
}
