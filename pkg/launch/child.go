package launch

import (
	log "github.com/sirupsen/logrus"

	"github.com/shirou/gopsutil/v3/process"
)

// describeChild logs what the system knows about the created process. The
// child is detached and may already be gone, which is not an error.
func describeChild(pid uint32) {
	logger := log.WithField("pid", pid)

	if pid == 0 {
		logger.Debug("Entry point reported no process id")
		return
	}

	exists, err := process.PidExists(int32(pid))
	if err != nil {
		logger.WithError(err).Debug("Failed to look up child process")
		return
	}
	if !exists {
		logger.Debug("Child process already exited")
		return
	}

	p, err := process.NewProcess(int32(pid))
	if err != nil {
		logger.WithError(err).Debug("Failed to open child process")
		return
	}

	name, err := p.Name()
	if err != nil {
		logger.WithError(err).Debug("Failed to read child process name")
		return
	}

	logger.WithField("name", name).Debug("Child process running")
}
