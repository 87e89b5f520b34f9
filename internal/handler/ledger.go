package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/Dan9191/finance-ledger/internal/models"
)

type addTransactionRequest struct {
	ProfileID   int64           `json:"profile_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

// AddTransaction handles POST /api/{incomes,outgoings}
func (h *Handler) AddTransaction(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addTransactionRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		err := h.svc.AddTransaction(r.Context(), kind, models.NewTransaction{
			ProfileID:   req.ProfileID,
			Description: req.Description,
			Amount:      req.Amount,
			Date:        req.Date,
		})
		if err != nil {
			writeServiceError(w, err, "")
			return
		}
		writeMessage(w, http.StatusCreated, kind.Label()+" added successfully")
	}
}

// ListTransactions handles GET /api/{incomes,outgoings}/{profile_id}
func (h *Handler) ListTransactions(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The route only admits digits, so a parse failure is an id beyond
		// int64 that no profile can own.
		profileID, err := strconv.ParseInt(mux.Vars(r)["profile_id"], 10, 64)
		if err != nil {
			writeJSON(w, http.StatusOK, []models.Transaction{})
			return
		}

		transactions, err := h.svc.ListTransactions(r.Context(), kind, profileID)
		if err != nil {
			writeServiceError(w, err, "")
			return
		}
		writeJSON(w, http.StatusOK, transactions)
	}
}

// DeleteTransaction handles DELETE /api/{incomes,outgoings}/{id}.
// An optional profile_id query parameter limits the delete to that
// profile's records.
func (h *Handler) DeleteTransaction(kind models.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			writeMessage(w, http.StatusNotFound, kind.Label()+" record not found")
			return
		}

		var ownerID int64
		if raw := r.URL.Query().Get("profile_id"); raw != "" {
			ownerID, err = strconv.ParseInt(raw, 10, 64)
			if err != nil || ownerID <= 0 {
				writeMessage(w, http.StatusBadRequest, "Invalid profile id")
				return
			}
		}

		if err := h.svc.DeleteTransaction(r.Context(), kind, id, ownerID); err != nil {
			writeServiceError(w, err, kind.Label()+" record not found")
			return
		}
		writeMessage(w, http.StatusOK, kind.Label()+" record deleted successfully")
	}
}
