package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/planetA/vgrl/docs"
	"github.com/planetA/vgrl/pkg/launch"
)

var probeCmd = &cobra.Command{
	Args:  cobra.NoArgs,
	Use:   docs.ProbeUse,
	Short: docs.ProbeShort,
	Long:  docs.ProbeLong,
	RunE: func(cmd *cobra.Command, args []string) error {
		library, err := libraryPath()
		if err != nil {
			return err
		}

		launcher := launch.NewLauncher(cmd.OutOrStdout())
		mod, entry, err := launcher.Resolve(library)
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"handle": fmt.Sprintf("%#x", mod.Handle()),
			"entry":  fmt.Sprintf("%#x", entry),
		}).Debug("Entry point available")

		return nil
	},
}

func init() {
	VgrlCmd.AddCommand(probeCmd)
}
