package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"pos-backend/internal/security"
	"pos-backend/internal/service"
)

// Server bundles the services exposed over HTTP.
type Server struct {
	auth      service.AuthService
	employees service.EmployeeService
	inventory service.InventoryService
	sales     service.SaleService
	rentals   service.RentalService
	returns   service.ReturnService
	tokens    security.TokenManager
}

func NewServer(
	auth service.AuthService,
	employees service.EmployeeService,
	inventory service.InventoryService,
	sales service.SaleService,
	rentals service.RentalService,
	returns service.ReturnService,
	tokens security.TokenManager,
) *Server {
	return &Server{
		auth:      auth,
		employees: employees,
		inventory: inventory,
		sales:     sales,
		rentals:   rentals,
		returns:   returns,
		tokens:    tokens,
	}
}

// Router builds the full route table. Everything except login and the
// health probe sits behind the JWT middleware.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/login", s.handleLogin).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware(s.tokens))

	api.HandleFunc("/items", s.handleCreateItem).Methods(http.MethodPost)
	api.HandleFunc("/items", s.handleListItems).Methods(http.MethodGet)
	api.HandleFunc("/items/search", s.handleSearchItems).Methods(http.MethodGet)
	api.HandleFunc("/items/low-stock", s.handleLowStockItems).Methods(http.MethodGet)
	api.HandleFunc("/items/{itemID:[0-9]+}", s.handleGetItem).Methods(http.MethodGet)
	api.HandleFunc("/items/{itemID:[0-9]+}/quantity", s.handleUpdateItemQuantity).Methods(http.MethodPut)

	api.HandleFunc("/sales", s.handleProcessSale).Methods(http.MethodPost)
	api.HandleFunc("/sales", s.handleListMySales).Methods(http.MethodGet)
	api.HandleFunc("/sales/{id}", s.handleGetSale).Methods(http.MethodGet)

	api.HandleFunc("/rentals", s.handleProcessRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/outstanding/{phone}", s.handleOutstandingRentals).Methods(http.MethodGet)
	api.HandleFunc("/rentals/customer/{phone}", s.handleRentalsByCustomer).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", s.handleGetRental).Methods(http.MethodGet)

	api.HandleFunc("/returns", s.handleProcessReturn).Methods(http.MethodPost)
	api.HandleFunc("/returns/{id}", s.handleGetReturn).Methods(http.MethodGet)

	api.HandleFunc("/employees", s.handleCreateEmployee).Methods(http.MethodPost)
	api.HandleFunc("/employees", s.handleListEmployees).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id}", s.handleGetEmployee).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id}", s.handleUpdateEmployee).Methods(http.MethodPut)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok": true,
		"at": time.Now().UTC().Format(time.RFC3339),
	})
}
