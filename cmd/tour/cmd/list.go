package cmd

import (
	"fmt"

	"github.com/GoCodeAlone/demokit/lessons"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every lesson in tour order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := lessons.Catalog()
			for _, name := range catalog.Names() {
				lesson, err := catalog.New(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s — %s\n", name, lesson.Title())
			}
			return nil
		},
	}
}
