package cmd

import (
	"fmt"
	"os"

	"github.com/containerd/console"
	log "github.com/sirupsen/logrus"

	"github.com/planetA/vgrl/config"
)

func setupLogging() error {
	level, err := log.ParseLevel(config.GetString(config.LogLevel))
	if err != nil {
		return fmt.Errorf("Invalid log level: %v", err)
	}
	if config.Verbose && level < log.DebugLevel {
		level = log.DebugLevel
	}

	colors := isConsole(os.Stderr)

	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   colors,
		DisableColors: !colors,
		FullTimestamp: true,
	})

	return nil
}

// The console is not closed: that would close the underlying file.
func isConsole(f *os.File) bool {
	_, err := console.ConsoleFromFile(f)
	return err == nil
}
