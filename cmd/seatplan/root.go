package main

import "github.com/spf13/cobra"

// newRootCmd builds the command tree.  Commands are constructed per call so
// tests can run them in isolation.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "seatplan",
		Short: "Turn a bus trip sign-up post into a seating plan",
		Long: `seatplan reads the free-text roster organizers paste into group chats,
keeps the numbered passenger lines, and assigns every passenger a seat on a
28-seat bus. Passengers without a seat get the highest free seats, marked
as temporary.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newParseCmd(), newHashPasswordCmd(), newVersionCmd())
	return root
}
