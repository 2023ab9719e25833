package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mmynk/settle/internal/models"
	"github.com/mmynk/settle/internal/splitter"
)

type expensePayload struct {
	Description string  `json:"description"`
	PaidBy      string  `json:"paid_by"`
	Amount      float64 `json:"amount"`
	SharedWith  string  `json:"shared_with,omitempty"`
}

type computeRequest struct {
	Participants []string         `json:"participants"`
	Expenses     []expensePayload `json:"expenses"`
}

type transferPayload struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type balancePayload struct {
	Name string  `json:"name"`
	Owed float64 `json:"owed"`
	Owes float64 `json:"owes"`
	Net  float64 `json:"net"`
}

type summaryPayload struct {
	Person     string  `json:"person"`
	PaysTo     string  `json:"pays_to,omitempty"`
	Others     int     `json:"others,omitempty"`
	Amount     float64 `json:"amount"`
	NetBalance float64 `json:"net_balance"`
}

type computeResponse struct {
	Detailed   []transferPayload `json:"detailed"`
	Simplified []transferPayload `json:"simplified"`
	Balances   []balancePayload  `json:"balances"`
	Summary    []summaryPayload  `json:"summary"`
	Warnings   []string          `json:"warnings,omitempty"`
}

// handleComputeSettlements computes settlements for an ad-hoc participant
// list supplied in the request body.
func (s *Server) handleComputeSettlements(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	res, err := s.settle.Compute(r.Context(), req.Participants, toModelExpenses(req.Expenses))
	if err != nil {
		if errors.Is(err, splitter.ErrNoParticipants) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toComputeResponse(res))
}

func toModelExpenses(payloads []expensePayload) []models.Expense {
	expenses := make([]models.Expense, len(payloads))
	for i, p := range payloads {
		expenses[i] = models.Expense{
			Description: p.Description,
			PaidBy:      p.PaidBy,
			Amount:      p.Amount,
			SharedWith:  p.SharedWith,
		}
	}
	return expenses
}

func toComputeResponse(res *splitter.Result) computeResponse {
	resp := computeResponse{
		Detailed:   toTransferPayloads(res.Detailed),
		Simplified: toTransferPayloads(res.Simplified),
		Balances:   make([]balancePayload, len(res.Balances)),
	}

	for i, b := range res.Balances {
		resp.Balances[i] = balancePayload{Name: b.Name, Owed: b.Owed, Owes: b.Owes, Net: b.Net}
	}

	for _, sum := range splitter.SummarizePayments(res) {
		resp.Summary = append(resp.Summary, summaryPayload{
			Person:     sum.Person,
			PaysTo:     sum.PaysTo,
			Others:     sum.Others,
			Amount:     sum.Amount,
			NetBalance: sum.NetBalance,
		})
	}

	for _, warning := range res.Warnings {
		resp.Warnings = append(resp.Warnings, warning.String())
	}

	return resp
}

func toTransferPayloads(transfers []splitter.Transfer) []transferPayload {
	payloads := make([]transferPayload, len(transfers))
	for i, t := range transfers {
		payloads[i] = transferPayload{From: t.From, To: t.To, Amount: t.Amount}
	}
	return payloads
}
