package splitter

import (
	"math"
	"sort"

	"github.com/mmynk/settle/internal/models"
)

// Transfer is one concrete payment from a debtor to a creditor.
type Transfer struct {
	From   string
	To     string
	Amount float64
}

// PersonBalance is one participant's overall position after netting.
// Net is positive when the person is owed money and negative when they owe.
type PersonBalance struct {
	Name string
	Owed float64
	Owes float64
	Net  float64
}

// PaymentSummary is the per-debtor presentation view of the minimized plan.
// When a person makes several payments, PaysTo names the primary recipient
// (the largest single transfer, earliest emitted on ties) and Others counts
// the rest. The underlying transfer list stays available for exact figures.
type PaymentSummary struct {
	Person     string
	PaysTo     string // empty when the person pays nobody
	Others     int
	Amount     float64
	NetBalance float64
}

// Result carries everything one computation pass produces.
type Result struct {
	Participants []string
	Detailed     []Transfer
	Simplified   []Transfer
	Balances     []PersonBalance
	Warnings     []Warning
}

// ComputeSettlements runs the full pipeline: accumulate gross debts, net
// opposing debts, derive per-person balances, and minimize transfers.
// The only error condition is an empty participant set; data-quality issues
// surface as warnings on the result.
func ComputeSettlements(participants []string, expenses []models.Expense) (*Result, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	debts, warnings := AccumulateDebts(participants, expenses)
	net := NetDebts(debts)
	balances := NetBalances(net)

	return &Result{
		Participants: participants,
		Detailed:     DetailedTransfers(net),
		Simplified:   MinimizeTransfers(balances),
		Balances:     balances,
		Warnings:     warnings,
	}, nil
}

// DetailedTransfers flattens the net matrix into the full list of bilateral
// settlements, sorted by amount descending. The sort is stable over
// participant-pair order, so equal amounts keep a deterministic order.
func DetailedTransfers(net *Matrix) []Transfer {
	people := net.Participants()
	var transfers []Transfer
	for i := range people {
		for j := range people {
			if amount := net.At(i, j); amount > 0 {
				transfers = append(transfers, Transfer{
					From:   people[i],
					To:     people[j],
					Amount: amount,
				})
			}
		}
	}

	sort.SliceStable(transfers, func(a, b int) bool {
		return transfers[a].Amount > transfers[b].Amount
	})

	return transfers
}

// NetBalances derives each participant's overall position from the net
// matrix: owed is the column sum (everyone's debt to them), owes is the row
// sum, net is the rounded difference. Output follows participant order.
func NetBalances(net *Matrix) []PersonBalance {
	people := net.Participants()
	balances := make([]PersonBalance, len(people))
	for i, name := range people {
		var owed, owes float64
		for j := range people {
			owes += net.At(i, j)
			owed += net.At(j, i)
		}
		balances[i] = PersonBalance{
			Name: name,
			Owed: owed,
			Owes: owes,
			Net:  round2(owed - owes),
		}
	}
	return balances
}

// MinimizeTransfers produces a minimized payment plan via greedy
// largest-first matching. Creditors and debtors are sorted by magnitude
// descending (stable, so ties keep participant order) and matched with two
// cursors: each step settles min(remaining credit, remaining debt) and
// advances whichever side dropped below Epsilon.
//
// The greedy matching is a heuristic: it never emits more than P-1 transfers,
// but finding the true minimum transaction count for arbitrary balances is a
// harder combinatorial problem this engine does not attempt.
func MinimizeTransfers(balances []PersonBalance) []Transfer {
	type stake struct {
		name      string
		remaining float64
	}

	var creditors, debtors []stake
	for _, b := range balances {
		switch {
		case b.Net > Epsilon:
			creditors = append(creditors, stake{b.Name, b.Net})
		case b.Net < -Epsilon:
			debtors = append(debtors, stake{b.Name, -b.Net})
		}
	}

	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].remaining > creditors[j].remaining
	})
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].remaining > debtors[j].remaining
	})

	var transfers []Transfer
	ci, di := 0, 0
	for ci < len(creditors) && di < len(debtors) {
		creditor := &creditors[ci]
		debtor := &debtors[di]

		amount := math.Min(creditor.remaining, debtor.remaining)
		if amount > Epsilon {
			transfers = append(transfers, Transfer{
				From:   debtor.name,
				To:     creditor.name,
				Amount: round2(amount),
			})
		}

		creditor.remaining -= amount
		debtor.remaining -= amount

		// Both may advance in the same step when they settle exactly together.
		if creditor.remaining < Epsilon {
			ci++
		}
		if debtor.remaining < Epsilon {
			di++
		}
	}

	return transfers
}

// SummarizePayments groups the minimized plan by debtor, one row per
// participant in participant order. This is a pure post-processing view;
// render it alongside res.Simplified, never instead of it.
func SummarizePayments(res *Result) []PaymentSummary {
	byNet := make(map[string]float64, len(res.Balances))
	for _, b := range res.Balances {
		byNet[b.Name] = b.Net
	}

	summaries := make([]PaymentSummary, 0, len(res.Participants))
	for _, person := range res.Participants {
		var outgoing []Transfer
		for _, t := range res.Simplified {
			if t.From == person {
				outgoing = append(outgoing, t)
			}
		}

		if len(outgoing) == 0 {
			net := byNet[person]
			if net <= Epsilon {
				net = 0
			}
			summaries = append(summaries, PaymentSummary{
				Person:     person,
				NetBalance: net,
			})
			continue
		}

		var total float64
		primary := outgoing[0]
		for _, t := range outgoing {
			total += t.Amount
			// Strictly greater keeps the earliest transfer on ties.
			if t.Amount > primary.Amount {
				primary = t
			}
		}

		summaries = append(summaries, PaymentSummary{
			Person:     person,
			PaysTo:     primary.To,
			Others:     len(outgoing) - 1,
			Amount:     round2(total),
			NetBalance: round2(-total),
		})
	}

	return summaries
}
