package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/settle/internal/service"
	"github.com/mmynk/settle/internal/sheet"
	"github.com/mmynk/settle/internal/splitter"
)

func init() {
	rootCmd.AddCommand(computeCmd)

	computeCmd.Flags().StringP("file", "f", "", "Path to Excel file with expense data")
	computeCmd.Flags().StringArrayP("people", "p", nil, "Name of a participant (repeatable)")
	computeCmd.Flags().String("roster", "", "Compute for a stored roster (ID or name)")
	computeCmd.Flags().StringP("output", "o", "", "Output file path (default from config, settlements.xlsx)")
	computeCmd.MarkFlagRequired("file")
}

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute settlements from an expense workbook",
	Long: `Read an expense ledger from an Excel workbook, compute who owes whom,
and write a settlement workbook with two sheets: the full transaction
ledger and the optimized payment plan.

Participants come from --people flags, a stored --roster, or the
config file, in that order of preference.`,
	Example: `  settle compute -f expenses.xlsx -p Alice -p Bob -p Charlie
  settle compute -f trip.xlsx --roster "Ski Trip" -o trip-settlements.xlsx`,
	RunE: runCompute,
}

func runCompute(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	people, _ := cmd.Flags().GetStringArray("people")
	rosterRef, _ := cmd.Flags().GetString("roster")
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.Output
	}

	warnNonExcel(file)
	warnNonExcel(output)

	expenses, err := sheet.ReadExpenses(file)
	if err != nil {
		return err
	}

	var res *splitter.Result
	switch {
	case rosterRef != "":
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		res, err = service.NewSettleService(store).ComputeForRoster(cmd.Context(), rosterRef, expenses)
		if err != nil {
			return err
		}
	default:
		if len(people) == 0 {
			people = cfg.People
		}
		if len(people) == 0 {
			return fmt.Errorf("no participants: use --people, --roster, or set people in the config file")
		}
		res, err = service.NewSettleService(nil).Compute(cmd.Context(), people, expenses)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if verbose {
		printExpenseSummary(out, expenses, res.Participants)
	}

	summaries := splitter.SummarizePayments(res)
	printReport(out, res, summaries)

	if err := sheet.WriteSettlements(output, res, summaries); err != nil {
		return err
	}

	if len(res.Detailed) == 0 && len(res.Simplified) == 0 {
		fmt.Fprintln(out, "No settlements needed - everyone is even!")
	} else {
		fmt.Fprintf(out, "Settlement results saved to %q with 2 sheets:\n", output)
		fmt.Fprintf(out, "  %s: all individual transactions\n", sheet.DetailedSheet)
		fmt.Fprintf(out, "  %s: optimized payments (fewer transactions)\n", sheet.SimpleSheet)
	}

	return nil
}

func warnNonExcel(path string) {
	lower := strings.ToLower(path)
	if !strings.HasSuffix(lower, ".xlsx") && !strings.HasSuffix(lower, ".xls") {
		slog.Warn("File does not look like an Excel workbook", "path", path)
	}
}
