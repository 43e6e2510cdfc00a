//go:build !windows

package spawn

import (
	"syscall"
)

// Layouts of STARTUPINFOW and PROCESS_INFORMATION, kept so the frame can be
// built and inspected on every platform.
type startupInfo struct {
	Cb            uint32
	_             *uint16
	Desktop       *uint16
	Title         *uint16
	X             uint32
	Y             uint32
	XSize         uint32
	YSize         uint32
	XCountChars   uint32
	YCountChars   uint32
	FillAttribute uint32
	Flags         uint32
	ShowWindow    uint16
	_             uint16
	_             *byte
	StdInput      uintptr
	StdOutput     uintptr
	StdErr        uintptr
}

type processInformation struct {
	Process   uintptr
	Thread    uintptr
	ProcessId uint32
	ThreadId  uint32
}

func callEntry(entry uintptr, f *frame) (uintptr, syscall.Errno) {
	return 0, syscall.ENOSYS
}
