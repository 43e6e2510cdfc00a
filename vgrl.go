package main

import (
	"runtime"

	"github.com/planetA/vgrl/cmd"
)

func init() {
	// The last-error code read after each system call is per-thread state.
	runtime.LockOSThread()
}

func main() {
	cmd.ExecuteVgrl()
}
