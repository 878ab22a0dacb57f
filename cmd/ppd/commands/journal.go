package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ppd/internal/core/domain"
)

func (c *CLI) newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show recent decisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			if limit <= 0 {
				limit = domain.DefaultJournalLimit
			}
			return c.app.Journal(cmd.Context(), limit)
		},
	}
	cmd.Flags().IntP("limit", "n", domain.DefaultJournalLimit, "Number of entries to show")
	return cmd
}
