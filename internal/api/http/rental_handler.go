package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"pos-backend/internal/domain"
)

func (s *Server) handleProcessRental(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "missing credentials"})
		return
	}

	var req domain.RentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	rental, err := s.rentals.ProcessRental(r.Context(), claims.EmployeeID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (s *Server) handleGetRental(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeBadRequest(w, "invalid rental id")
		return
	}

	rental, err := s.rentals.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (s *Server) handleRentalsByCustomer(w http.ResponseWriter, r *http.Request) {
	phone, ok := phoneFromPath(w, r)
	if !ok {
		return
	}

	rentals, err := s.rentals.ListRentalsByCustomer(r.Context(), phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rentals": rentals})
}

func (s *Server) handleOutstandingRentals(w http.ResponseWriter, r *http.Request) {
	phone, ok := phoneFromPath(w, r)
	if !ok {
		return
	}

	lines, err := s.rentals.ListOutstanding(r.Context(), phone)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"outstanding": lines})
}

func phoneFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	phone := strings.TrimSpace(mux.Vars(r)["phone"])
	if phone == "" {
		writeBadRequest(w, "customer phone is required")
		return "", false
	}
	return phone, true
}
