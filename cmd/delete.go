package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry by id",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	led, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, ok := led.Find(args[0]); !ok {
		// The ledger treats unknown ids as a no-op; the CLI still
		// tells the user nothing happened.
		fmt.Println("No entry with that id.")
		return nil
	}
	if err := led.Delete(args[0]); err != nil {
		return err
	}
	fmt.Println("Entry deleted.")
	return nil
}
