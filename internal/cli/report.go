package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mmynk/settle/internal/models"
	"github.com/mmynk/settle/internal/sheet"
	"github.com/mmynk/settle/internal/splitter"
)

const rule = "=================================================="

// printExpenseSummary prints the loaded ledger overview: record count, total
// amount, and per-payer totals in first-appearance order.
func printExpenseSummary(w io.Writer, expenses []models.Expense, people []string) {
	var total float64
	perPayer := make(map[string]float64)
	perPayerCount := make(map[string]int)
	var payerOrder []string
	for _, e := range expenses {
		total += e.Amount
		if perPayerCount[e.PaidBy] == 0 {
			payerOrder = append(payerOrder, e.PaidBy)
		}
		perPayerCount[e.PaidBy]++
		perPayer[e.PaidBy] += e.Amount
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "EXPENSE DATA SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total expenses: %d\n", len(expenses))
	fmt.Fprintf(w, "Total amount: %s\n", sheet.Money(total))
	fmt.Fprintf(w, "People involved: %s\n", strings.Join(people, ", "))

	fmt.Fprintln(w, "\nExpenses by payer:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Paid By\tCount\tTotal")
	for _, payer := range payerOrder {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", payer, perPayerCount[payer], sheet.Money(perPayer[payer]))
	}
	tw.Flush()
	fmt.Fprintln(w, rule)
}

// printReport prints the settlement summary: the detailed transfer ledger,
// each person's net position, and the optimized payment plan.
func printReport(w io.Writer, res *splitter.Result, summaries []splitter.PaymentSummary) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SETTLEMENT SUMMARY")
	fmt.Fprintln(w, rule)

	if len(res.Detailed) == 0 {
		fmt.Fprintln(w, "Everyone is even! No settlements needed.")
		return
	}

	fmt.Fprintf(w, "Total settlements needed: %d\n\n", len(res.Detailed))
	for _, t := range res.Detailed {
		fmt.Fprintf(w, "  %s -> %s: %s\n", t.From, t.To, sheet.Money(t.Amount))
	}

	fmt.Fprintln(w, "\nINDIVIDUAL BALANCES")
	for _, b := range res.Balances {
		if b.Net > splitter.Epsilon || b.Net < -splitter.Epsilon {
			fmt.Fprintf(w, "  %s: net %s (gets back %s, pays %s)\n",
				b.Name, sheet.NetBalance(b.Net), sheet.Money(b.Owed), sheet.Money(b.Owes))
		} else {
			fmt.Fprintf(w, "  %s: even (gets back %s, pays %s)\n",
				b.Name, sheet.Money(b.Owed), sheet.Money(b.Owes))
		}
	}

	fmt.Fprintln(w, "\nOPTIMIZED PAYMENT PLAN")
	for _, s := range summaries {
		if s.PaysTo == "" {
			fmt.Fprintf(w, "  %s pays $0.00\n", s.Person)
			continue
		}
		fmt.Fprintf(w, "  %s pays %s %s\n", s.Person, sheet.PaysTo(s), sheet.Money(s.Amount))
	}
	fmt.Fprintln(w, rule)
}
