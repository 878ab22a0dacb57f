package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ppd/internal/app"
)

func (c *CLI) newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Locate PSLF and PSSE and write the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			primary, _ := cmd.Flags().GetString("primary")
			secondary, _ := cmd.Flags().GetString("secondary")
			manual, _ := cmd.Flags().GetBool("manual")

			return c.app.Setup(cmd.Context(), app.SetupOptions{
				PrimaryPath:   primary,
				SecondaryPath: secondary,
				Manual:        manual,
			})
		},
	}
	cmd.Flags().String("primary", "", "Path to the PSLF installation or Pslf.exe")
	cmd.Flags().String("secondary", "", "Path to the PSSE installation")
	cmd.Flags().Bool("manual", false, "Disable automatic opening")
	return cmd
}
