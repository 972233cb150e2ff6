package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/smartlabo/labostock/internal/models"
	"github.com/smartlabo/labostock/internal/store"
	"github.com/smartlabo/labostock/internal/websocket"
)

// Router wraps the mux router, the store and the notification hub.
type Router struct {
	*mux.Router
	store *store.Store
	hub   *websocket.Hub
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(st *store.Store, hub *websocket.Hub, frontendDir string) *Router {
	r := &Router{
		Router: mux.NewRouter(),
		store:  st,
		hub:    hub,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/state", r.getState).Methods("GET")
	api.HandleFunc("/alerts", r.listLowStock).Methods("GET")

	// Materials
	api.HandleFunc("/materials", r.listMaterials).Methods("GET")
	api.HandleFunc("/materials", r.createMaterial).Methods("POST")
	api.HandleFunc("/materials/{id}", r.getMaterial).Methods("GET")
	api.HandleFunc("/materials/{id}", r.updateMaterial).Methods("PUT")
	api.HandleFunc("/materials/{id}", r.deleteMaterial).Methods("DELETE")
	api.HandleFunc("/materials/{id}/stock", r.updateStock).Methods("POST")

	// Categories
	api.HandleFunc("/categories", r.listCategories).Methods("GET")
	api.HandleFunc("/categories", r.createCategory).Methods("POST")
	api.HandleFunc("/categories/{id}", r.updateCategory).Methods("PUT")
	api.HandleFunc("/categories/{id}", r.deleteCategory).Methods("DELETE")

	// Movement log (read-only, stock changes go through the materials routes)
	api.HandleFunc("/movements", r.listMovements).Methods("GET")

	// Orders
	api.HandleFunc("/orders", r.listOrders).Methods("GET")
	api.HandleFunc("/orders", r.createOrder).Methods("POST")
	api.HandleFunc("/orders/{id}", r.updateOrder).Methods("PUT")
	api.HandleFunc("/orders/{id}", r.deleteOrder).Methods("DELETE")
	api.HandleFunc("/orders/{id}/receive", r.receiveOrder).Methods("POST")

	// Reservations
	api.HandleFunc("/reservations", r.listReservations).Methods("GET")
	api.HandleFunc("/reservations", r.createReservation).Methods("POST")
	api.HandleFunc("/reservations/{id}/status", r.updateReservationStatus).Methods("PUT")
	api.HandleFunc("/reservations/{id}", r.deleteReservation).Methods("DELETE")

	// Personnel, rooms, labs
	api.HandleFunc("/personnel", r.listPersonnel).Methods("GET")
	api.HandleFunc("/personnel", r.createPersonnel).Methods("POST")
	api.HandleFunc("/personnel/{id}", r.updatePersonnel).Methods("PUT")
	api.HandleFunc("/personnel/{id}", r.deletePersonnel).Methods("DELETE")
	api.HandleFunc("/rooms", r.listRooms).Methods("GET")
	api.HandleFunc("/rooms", r.createRoom).Methods("POST")
	api.HandleFunc("/rooms/{id}", r.updateRoom).Methods("PUT")
	api.HandleFunc("/rooms/{id}", r.deleteRoom).Methods("DELETE")
	api.HandleFunc("/labs", r.listLabs).Methods("GET")
	api.HandleFunc("/labs", r.createLab).Methods("POST")
	api.HandleFunc("/labs/{id}", r.updateLab).Methods("PUT")
	api.HandleFunc("/labs/{id}", r.deleteLab).Methods("DELETE")

	// Settings singleton
	api.HandleFunc("/settings", r.getSettings).Methods("GET")
	api.HandleFunc("/settings", r.updateSettings).Methods("PUT")

	// Reports, exports, bulk import
	api.HandleFunc("/reports/inventory.pdf", r.inventoryReport).Methods("GET")
	api.HandleFunc("/reports/movements.pdf", r.movementsReport).Methods("GET")
	api.HandleFunc("/reports/labels.pdf", r.materialLabels).Methods("GET")
	api.HandleFunc("/export/materials.xlsx", r.exportMaterials).Methods("GET")
	api.HandleFunc("/export/movements.xlsx", r.exportMovements).Methods("GET")
	api.HandleFunc("/import/materials", r.importMaterials).Methods("POST")

	// Live state notifications for open UI pages
	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		websocket.ServeWS(hub, w, req)
	})

	// Static UI files
	if frontendDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(frontendDir)))
	}

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// getState returns the full snapshot the UI renders from
func (r *Router) getState(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.store.State())
}

// listLowStock returns the materials at or below their alert threshold
func (r *Router) listLowStock(w http.ResponseWriter, req *http.Request) {
	materials := store.LowStock(r.store.State())
	if materials == nil {
		materials = []models.Material{}
	}
	respondJSON(w, http.StatusOK, materials)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
