package cmd

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/agentstation/saveslot/pkg/errors"
)

// showCmd dumps one slot's summary.
var showCmd = &cobra.Command{
	Use:   "show <slot>",
	Short: "Show the cached summary for one slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	slot, err := strconv.Atoi(args[0])
	if err != nil || slot < 1 {
		return errors.NewValidationError("slot", args[0], "slot must be a positive number")
	}

	client, err := buildClient()
	if err != nil {
		return err
	}

	summary, ok := client.Index().Get(slot)
	if !ok {
		return errors.NewNotFoundError("slot summary", args[0])
	}

	out, err := yaml.Marshal(summary)
	if err != nil {
		return errors.WrapParse("yaml", "summary", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
