// Package fault holds the terminal errors of a launch run. Each one carries
// the platform last-error code that was current when the step failed.
package fault

import (
	"errors"
	"fmt"
	"syscall"
)

type Kind int

const (
	// The library could not be mapped into the process.
	LibraryLoadFailed Kind = iota + 1
	// The library has no export at the requested ordinal.
	SymbolNotFound
	// The entry point returned FALSE.
	LaunchFailed
)

func (k Kind) String() string {
	switch k {
	case LibraryLoadFailed:
		return "LibraryLoadFailed"
	case SymbolNotFound:
		return "SymbolNotFound"
	case LaunchFailed:
		return "LaunchFailed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error makes a Kind usable as an errors.Is target.
func (k Kind) Error() string {
	return k.String()
}

type Error struct {
	Kind Kind
	// What the failing step operated on: a library path, an ordinal or an
	// executable path.
	Subject string
	Code    syscall.Errno
}

func New(kind Kind, subject string, code syscall.Errno) *Error {
	return &Error{
		Kind:    kind,
		Subject: subject,
		Code:    code,
	}
}

// Wrap converts err into a fault of the given kind, extracting the platform
// error code from it when there is one.
func Wrap(kind Kind, subject string, err error) *Error {
	return New(kind, subject, CodeOf(err))
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v (%v): %v (code %d)", e.Kind, e.Subject, e.Code.Error(), uint(e.Code))
}

func (e *Error) Unwrap() error {
	return e.Code
}

func (e *Error) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == e.Kind
}

// CodeOf returns the syscall.Errno wrapped in err, or zero.
func CodeOf(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}

// KindOf returns the kind of the fault wrapped in err, or zero.
func KindOf(err error) Kind {
	var f *Error
	if errors.As(err, &f) {
		return f.Kind
	}
	return 0
}
