package launch

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/planetA/vgrl/pkg/library"
	"github.com/planetA/vgrl/pkg/spawn"
)

// EntryOrdinal is the export slot of the external library that holds its
// CreateProcessW-compatible routine. The library exports it by ordinal only,
// so the number is the whole contract and is never searched or guessed.
const EntryOrdinal uint16 = 1337

type Loader interface {
	Load(path string) (Module, error)
}

type Module interface {
	Handle() uintptr
	Resolve(ordinal uint16) (uintptr, error)
}

type Invoker interface {
	Invoke(entry uintptr, req spawn.Request) (*spawn.Outcome, error)
}

// Launcher runs the load, resolve, invoke pipeline. Every step is terminal on
// failure.
type Launcher struct {
	loader  Loader
	invoker Invoker
	out     io.Writer
}

func NewLauncher(out io.Writer) *Launcher {
	return &Launcher{
		loader:  systemLoader{library.NewLoader()},
		invoker: spawn.NewInvoker(),
		out:     out,
	}
}

// Resolve loads the library at path and resolves EntryOrdinal, printing one
// progress line per step. The returned module must be kept alive for as long
// as the address is used.
func (l *Launcher) Resolve(path string) (Module, uintptr, error) {
	log.WithField("path", path).Debug("Loading library")

	mod, err := l.loader.Load(path)
	if err != nil {
		return nil, 0, err
	}
	fmt.Fprintf(l.out, "library loaded: %v (handle %#x)\n", path, mod.Handle())

	entry, err := mod.Resolve(EntryOrdinal)
	if err != nil {
		return nil, 0, err
	}
	fmt.Fprintf(l.out, "ordinal %d resolved: %#x\n", EntryOrdinal, entry)

	return mod, entry, nil
}

// Run launches req through the library at path.
func (l *Launcher) Run(path string, req spawn.Request) (*spawn.Outcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	mod, entry, err := l.Resolve(path)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"executable": req.Executable,
		"parameter":  req.Parameter,
		"directory":  req.Directory,
	}).Debug("Invoking entry point")

	outcome, err := l.invoker.Invoke(entry, req)
	if outcome != nil {
		fmt.Fprintf(l.out, "entry point returned: %v\n", outcome.Succeeded)
	}
	if err != nil {
		return outcome, err
	}

	log.WithFields(log.Fields{
		"module": fmt.Sprintf("%#x", mod.Handle()),
		"pid":    outcome.ProcessID,
		"tid":    outcome.ThreadID,
	}).Info("Process created")

	if log.IsLevelEnabled(log.DebugLevel) {
		describeChild(outcome.ProcessID)
	}

	return outcome, nil
}

// systemLoader adapts library.Loader to the Loader interface.
type systemLoader struct {
	loader *library.Loader
}

func (s systemLoader) Load(path string) (Module, error) {
	mod, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}
	return mod, nil
}
