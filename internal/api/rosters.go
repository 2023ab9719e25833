package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/settle/internal/models"
	"github.com/mmynk/settle/internal/storage"
)

type rosterPayload struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Members   []string `json:"members"`
	CreatedAt int64    `json:"created_at"`
}

type createRosterRequest struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

func toRosterPayload(r *models.Roster) rosterPayload {
	return rosterPayload{
		ID:        r.ID,
		Name:      r.Name,
		Members:   r.Members,
		CreatedAt: r.CreatedAt,
	}
}

func (s *Server) handleCreateRoster(w http.ResponseWriter, r *http.Request) {
	var req createRosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	roster, err := s.rosters.CreateRoster(r.Context(), req.Name, req.Members)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toRosterPayload(roster))
}

func (s *Server) handleListRosters(w http.ResponseWriter, r *http.Request) {
	rosters, err := s.rosters.ListRosters(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	payloads := make([]rosterPayload, len(rosters))
	for i, roster := range rosters {
		payloads[i] = toRosterPayload(roster)
	}
	writeJSON(w, http.StatusOK, payloads)
}

func (s *Server) handleGetRoster(w http.ResponseWriter, r *http.Request) {
	roster, err := s.rosters.GetRoster(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrRosterNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toRosterPayload(roster))
}

func (s *Server) handleDeleteRoster(w http.ResponseWriter, r *http.Request) {
	err := s.rosters.DeleteRoster(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrRosterNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleComputeRosterSettlements computes settlements for a stored roster's
// members against expenses supplied in the request body.
func (s *Server) handleComputeRosterSettlements(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Expenses []expensePayload `json:"expenses"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	res, err := s.settle.ComputeForRoster(r.Context(), chi.URLParam(r, "id"), toModelExpenses(req.Expenses))
	if err != nil {
		if errors.Is(err, storage.ErrRosterNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toComputeResponse(res))
}
