//go:build windows

package spawn

import (
	"syscall"

	"golang.org/x/sys/windows"
)

type startupInfo = windows.StartupInfo

type processInformation = windows.ProcessInformation

// callEntry is the only place an arbitrary address is called. The Errno
// returned by SyscallN is GetLastError as read by the runtime immediately
// after the call, before any other system call can overwrite it.
func callEntry(entry uintptr, f *frame) (uintptr, syscall.Errno) {
	ret, _, lastErr := syscall.SyscallN(entry, f.args()...)
	return ret, lastErr
}
