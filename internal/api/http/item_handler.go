package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

type createItemRequest struct {
	ItemID     int32  `json:"itemId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int32  `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	item, err := s.inventory.CreateItem(r.Context(), req.ItemID, req.Name, req.PriceCents, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.inventory.ListItems(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleSearchItems(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeBadRequest(w, "name query parameter is required")
		return
	}

	items, err := s.inventory.SearchItems(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleLowStockItems(w http.ResponseWriter, r *http.Request) {
	threshold := int32(5)
	if raw := strings.TrimSpace(r.URL.Query().Get("threshold")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 0 {
			writeBadRequest(w, "invalid threshold")
			return
		}
		threshold = int32(parsed)
	}

	items, err := s.inventory.ListLowStockItems(r.Context(), threshold)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}

	item, err := s.inventory.GetItemByItemID(r.Context(), itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleUpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDFromPath(w, r)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	item, err := s.inventory.UpdateItemQuantity(r.Context(), itemID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func itemIDFromPath(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["itemID"]
	parsed, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		writeBadRequest(w, "invalid item id")
		return 0, false
	}
	return int32(parsed), true
}
