package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/settle/internal/service"
)

func init() {
	rootCmd.AddCommand(rosterCmd)
	rosterCmd.AddCommand(rosterCreateCmd)
	rosterCmd.AddCommand(rosterListCmd)
	rosterCmd.AddCommand(rosterShowCmd)
	rosterCmd.AddCommand(rosterDeleteCmd)
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage stored participant rosters",
	Long: `Manage reusable participant rosters. A roster is an ordered list of
names; store one per recurring group and compute settlements with
'settle compute --roster NAME' instead of retyping everyone.

Only names are stored. Expense ledgers are never persisted.`,
}

var rosterCreateCmd = &cobra.Command{
	Use:   "create NAME MEMBER...",
	Short: "Create a roster",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		roster, err := service.NewRosterService(store).CreateRoster(cmd.Context(), args[0], args[1:])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Roster %q created with %d members (id %s)\n",
			roster.Name, len(roster.Members), roster.ID)
		return nil
	},
}

var rosterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored rosters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		rosters, err := service.NewRosterService(store).ListRosters(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(rosters) == 0 {
			fmt.Fprintln(out, "No rosters stored.")
			fmt.Fprintln(out, "Use 'settle roster create NAME MEMBER...' to create one.")
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tMEMBERS\tCREATED")
		for _, r := range rosters {
			fmt.Fprintf(tw, "%s\t%s\t%s\n",
				r.Name,
				strings.Join(r.Members, ", "),
				time.Unix(r.CreatedAt, 0).Format("2006-01-02"),
			)
		}
		return tw.Flush()
	},
}

var rosterShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show one roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		roster, err := service.NewRosterService(store).GetRoster(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Name: %s\n", roster.Name)
		fmt.Fprintf(out, "ID: %s\n", roster.ID)
		fmt.Fprintf(out, "Created: %s\n", time.Unix(roster.CreatedAt, 0).Format(time.RFC1123))
		fmt.Fprintf(out, "Members (%d):\n", len(roster.Members))
		for _, m := range roster.Members {
			fmt.Fprintf(out, "  - %s\n", m)
		}
		return nil
	},
}

var rosterDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := service.NewRosterService(store).DeleteRoster(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Roster %q deleted.\n", args[0])
		return nil
	},
}
