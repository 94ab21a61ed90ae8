package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// listCmd prints the slot index as a table.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the save slots tracked by the index",
	Long: `List every slot the index tracks, with its cached display metadata.

The listing reflects the index as stored; run "saveslot reconcile" first
if save files may have changed behind it.

Examples:
  saveslot list --dir ./saves
  saveslot list --dir ./saves --format yaml`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}

	idx := client.Index()
	if idx.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No save slots tracked.")
		return nil
	}

	titler := cases.Title(language.English)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		titler.String("slot"),
		titler.String("title"),
		titler.String("party"),
		titler.String("playtime"),
		titler.String("saved"),
	)

	for _, slot := range idx.Slots() {
		summary, _ := idx.Get(slot)
		party := make([]string, 0, len(summary.Characters))
		for _, ref := range summary.Characters {
			party = append(party, fmt.Sprintf("%s#%d", ref.Sheet, ref.Index))
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			slot,
			summary.Title,
			strings.Join(party, ","),
			summary.Playtime,
			summary.Timestamp.Format("2006-01-02 15:04"),
		)
	}

	return w.Flush()
}
