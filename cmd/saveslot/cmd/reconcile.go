package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/saveslot"
)

var dryRun bool

// reconcileCmd converges the index to match the save files on disk.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Converge the index to match the save files on disk",
	Long: `Walk every savefile slot and converge the index to what is actually
on disk: an untracked save file gains a summary rebuilt from its
contents (best effort - a corrupt file still gets a placeholder entry),
and an entry whose file is gone is dropped.

The updated index is written back only when something changed.

Examples:
  saveslot reconcile --dir ./saves
  saveslot reconcile --dir ./saves --dry-run`,
	RunE: runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
	reconcileCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing the index")
}

func runReconcile(cmd *cobra.Command, _ []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}

	var opts []saveslot.ReconcileOption
	if dryRun {
		opts = append(opts, saveslot.WithDryRun())
	}

	result, err := client.Reconcile(cmd.Context(), opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !result.HasChanges() {
		fmt.Fprintln(out, "Index already matches storage; nothing to do.")
		return nil
	}

	for _, slot := range result.Added {
		fmt.Fprintf(out, "+ slot %d (summary rebuilt)\n", slot)
	}
	for _, slot := range result.Removed {
		fmt.Fprintf(out, "- slot %d (save file gone)\n", slot)
	}
	if dryRun {
		fmt.Fprintln(out, "Dry run: index not written.")
	} else {
		fmt.Fprintln(out, "Index updated.")
	}
	return nil
}
