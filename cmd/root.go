package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/planetA/vgrl/config"
	"github.com/planetA/vgrl/docs"
	"github.com/planetA/vgrl/pkg/launch"
	"github.com/planetA/vgrl/pkg/report"
	"github.com/planetA/vgrl/pkg/spawn"
)

var (
	// Process to create
	executable string
	// Single argument string handed to the process
	parameter string
	// Working directory of the process
	directory string
)

var VgrlCmd = &cobra.Command{
	TraverseChildren: true,
	SilenceErrors:    true,
	Args:             cobra.NoArgs,

	Use:   docs.VgrlUse,
	Short: docs.VgrlShort,
	Long:  docs.VgrlLong,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if err := config.InitConfig(); err != nil {
			return err
		}
		return setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		library, err := libraryPath()
		if err != nil {
			return err
		}

		req := spawn.Request{
			Executable: executable,
			Parameter:  parameter,
			Directory:  directory,
		}

		launcher := launch.NewLauncher(cmd.OutOrStdout())
		outcome, runErr := launcher.Run(library, req)

		writeReport(library, req, outcome, runErr)

		return runErr
	},
}

func ExecuteVgrl() {
	if err := VgrlCmd.Execute(); err != nil {
		log.WithError(err).Error("vgrl failed")
		os.Exit(1)
	}
}

func init() {
	VgrlCmd.PersistentFlags().StringVar(&config.CfgFile, "config", config.CfgFile, "config file")
	VgrlCmd.PersistentFlags().BoolVar(&config.Verbose, "verbose", config.DefaultVerbose, "verbose output")

	VgrlCmd.PersistentFlags().StringP("vgrl", "v", "", "Path to the library exporting the process creation routine")
	config.BindPFlag(config.LauncherLibrary, VgrlCmd.PersistentFlags().Lookup("vgrl"))

	VgrlCmd.Flags().StringVarP(&executable, "executable", "e", "", "Executable to launch")
	VgrlCmd.MarkFlagRequired("executable")
	VgrlCmd.Flags().StringVarP(&parameter, "parameter", "p", "", "Argument string passed to the executable")
	VgrlCmd.Flags().StringVarP(&directory, "directory", "d", "", "Working directory of the executable")

	VgrlCmd.Flags().String("report", "", "Write a record of the run to this file")
	config.BindPFlag(config.LauncherReport, VgrlCmd.Flags().Lookup("report"))
	VgrlCmd.Flags().String("report-format", config.DefaultReportFormat, "Report encoding (json, msgpack)")
	config.BindPFlag(config.LauncherReportFormat, VgrlCmd.Flags().Lookup("report-format"))
}

func libraryPath() (string, error) {
	library, ok := config.LookupString(config.LauncherLibrary)
	if !ok || library == "" {
		return "", fmt.Errorf(`Library path is not set: use "--vgrl" or "%v"`, config.LauncherLibrary)
	}
	return library, nil
}

// writeReport never changes the result of the run.
func writeReport(library string, req spawn.Request, outcome *spawn.Outcome, runErr error) {
	path := config.GetString(config.LauncherReport)
	if path == "" {
		return
	}

	format, err := report.ParseFormat(config.GetString(config.LauncherReportFormat))
	if err != nil {
		log.WithError(err).Warn("Skipping report")
		return
	}

	record := report.NewRecord(library, launch.EntryOrdinal, req, outcome, runErr)
	if err := report.WriteFile(path, format, record); err != nil {
		log.WithError(err).WithField("path", path).Warn("Failed to write report")
		return
	}

	log.WithField("path", path).Debug("Report written")
}
