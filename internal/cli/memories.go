package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var memoriesCmd = &cobra.Command{
	Use:   "memories <user-id>",
	Short: "Show stored trip memories for a user, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		memories := store.RetrieveMemories(cmd.Context(), args[0])
		if len(memories) == 0 {
			fmt.Println("No memories found.")
			return nil
		}
		for _, m := range memories {
			fmt.Printf("- %s\n", m)
		}
		return nil
	},
}
