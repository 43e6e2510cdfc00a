// Package spawn calls an externally supplied process-creation routine and
// interprets its result.
//
// The routine is reached through a raw address and must be binary compatible
// with CreateProcessW:
//
//	BOOL WINAPI fn(
//	    LPCWSTR               lpApplicationName,
//	    LPWSTR                lpCommandLine,
//	    LPSECURITY_ATTRIBUTES lpProcessAttributes,
//	    LPSECURITY_ATTRIBUTES lpThreadAttributes,
//	    BOOL                  bInheritHandles,
//	    DWORD                 dwCreationFlags,
//	    LPVOID                lpEnvironment,
//	    LPCWSTR               lpCurrentDirectory,
//	    LPSTARTUPINFOW        lpStartupInfo,
//	    LPPROCESS_INFORMATION lpProcessInformation);
//
// Nothing can verify this at run time. Calling an address with any other
// signature is undefined behaviour, not an error.
package spawn

import (
	"errors"
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	log "github.com/sirupsen/logrus"

	"github.com/planetA/vgrl/pkg/fault"
	"github.com/planetA/vgrl/pkg/wide"
)

// DetachedProcess is DETACHED_PROCESS: the child gets no console and does
// not inherit the parent's.
const DetachedProcess uint32 = 0x00000008

var ErrEmptyExecutable = errors.New("executable path is empty")

// Request describes the process to create. Empty Parameter or Directory
// means absent.
type Request struct {
	Executable string
	Parameter  string
	Directory  string
}

func (r Request) Validate() error {
	if r.Executable == "" {
		return ErrEmptyExecutable
	}
	return nil
}

// Outcome is the interpreted result of one invocation.
type Outcome struct {
	Succeeded bool
	// Zero on success.
	LastError syscall.Errno
	ProcessID uint32
	ThreadID  uint32
}

// frame owns everything the entry point reads or writes. It is heap
// allocated and stays referenced until the raw call returns, so the
// addresses produced by args remain valid for the whole call.
type frame struct {
	application []uint16
	commandLine []uint16
	directory   []uint16
	flags       uint32
	startup     *startupInfo
	process     *processInformation
}

func newFrame(req Request) (*frame, error) {
	application, err := wide.Encode(req.Executable)
	if err != nil {
		return nil, fmt.Errorf("executable: %w", err)
	}
	commandLine, err := wide.EncodeOptional(req.Parameter)
	if err != nil {
		return nil, fmt.Errorf("parameter: %w", err)
	}
	directory, err := wide.EncodeOptional(req.Directory)
	if err != nil {
		return nil, fmt.Errorf("directory: %w", err)
	}

	return &frame{
		application: application,
		commandLine: commandLine,
		directory:   directory,
		flags:       DetachedProcess,
		startup:     new(startupInfo),
		process:     new(processInformation),
	}, nil
}

// args lays the frame out in parameter order. Security attributes, the
// inherit flag and the environment block are always zero.
func (f *frame) args() []uintptr {
	return []uintptr{
		bufferAddr(f.application),
		bufferAddr(f.commandLine),
		0,
		0,
		0,
		uintptr(f.flags),
		0,
		bufferAddr(f.directory),
		uintptr(unsafe.Pointer(f.startup)),
		uintptr(unsafe.Pointer(f.process)),
	}
}

func bufferAddr(buf []uint16) uintptr {
	if len(buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&buf[0]))
}

// rawCall performs the call and returns the routine's BOOL result together
// with the thread's last-error code read right after it.
type rawCall func(entry uintptr, f *frame) (uintptr, syscall.Errno)

type Invoker struct {
	call rawCall
}

func NewInvoker() *Invoker {
	return &Invoker{call: callEntry}
}

// Invoke calls the routine at entry for req. A FALSE result is returned as
// fault.LaunchFailed carrying the last-error code; the Outcome is returned
// in both cases once the call has been made.
//
// entry must come from a module that is still loaded.
func (i *Invoker) Invoke(entry uintptr, req Request) (*Outcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if entry == 0 {
		return nil, errors.New("entry point address is null")
	}

	f, err := newFrame(req)
	if err != nil {
		return nil, err
	}

	ret, lastErr := i.call(entry, f)
	outcome := interpret(ret, lastErr, f)
	runtime.KeepAlive(f)

	log.WithFields(log.Fields{
		"entry":     fmt.Sprintf("%#x", entry),
		"succeeded": outcome.Succeeded,
		"lastError": uint(outcome.LastError),
	}).Debug("Entry point returned")

	if !outcome.Succeeded {
		return outcome, fault.New(fault.LaunchFailed, req.Executable, outcome.LastError)
	}
	return outcome, nil
}

// interpret must only see the last-error value captured by the raw call.
func interpret(ret uintptr, lastErr syscall.Errno, f *frame) *Outcome {
	if uint32(ret) == 0 {
		return &Outcome{
			Succeeded: false,
			LastError: lastErr,
		}
	}

	return &Outcome{
		Succeeded: true,
		ProcessID: f.process.ProcessId,
		ThreadID:  f.process.ThreadId,
	}
}
