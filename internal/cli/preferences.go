package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var preferencesCmd = &cobra.Command{
	Use:   "preferences <user-id>",
	Short: "Show stored interest preferences for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preferences := store.GetPreferences(cmd.Context(), args[0])
		if len(preferences) == 0 {
			fmt.Println("No preferences found.")
			return nil
		}
		for _, p := range preferences {
			fmt.Printf("- %s\n", p)
		}
		return nil
	},
}
