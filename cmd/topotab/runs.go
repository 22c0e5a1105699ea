// Runs commands: list, show, and delete recorded run summaries.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var runsListLayout string

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect recorded generation runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs",
	Long: `List fetches all recorded run summaries, newest first.

Use --layout to filter by layout.

Example:
  topotab runs list
  topotab runs list --layout ring
  topotab runs list --json`,
	Args: cobra.NoArgs,
	RunE: runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one recorded run in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsDelete,
}

func init() {
	runsListCmd.Flags().StringVar(&runsListLayout, "layout", "", "filter by layout (box, ring)")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsDeleteCmd)
}

func runRunsList(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	filter := make(map[string]any)
	if runsListLayout != "" {
		filter["layout"] = runsListLayout
	}

	records, err := store.ListRuns(filter)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal runs: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(records) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tATOMS\tSEED\tLAYOUT")
	fmt.Fprintln(w, "--\t-------\t-----\t----\t------")
	for _, rec := range records {
		shortID := rec.RunID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		seed := "-"
		if rec.Seed != 0 {
			seed = fmt.Sprintf("%d", rec.Seed)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			shortID,
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.AtomCount,
			seed,
			rec.Layout,
		)
	}
	w.Flush()
	fmt.Fprint(out, sb.String())
	fmt.Fprintf(out, "Total: %d run(s)\n", len(records))
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	rec, err := store.GetRun(args[0])
	if err != nil {
		return fmt.Errorf("get run %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	if flagJSON {
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal run: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "run %s  created %s\n", rec.RunID, rec.CreatedAt.Format("2006-01-02 15:04:05"))
	renderRunSummary(out, rec)
	return nil
}

func runRunsDelete(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if err := store.DeleteRun(args[0]); err != nil {
		return fmt.Errorf("delete run %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted run %s\n", args[0])
	return nil
}
