package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/smartlabo/labostock/internal/models"
	"github.com/smartlabo/labostock/internal/store"
)

// getSettings returns the singleton institutional settings
func (r *Router) getSettings(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.store.State().Settings)
}

// updateSettings replaces the singleton institutional settings
func (r *Router) updateSettings(w http.ResponseWriter, req *http.Request) {
	var s models.Settings
	if err := json.NewDecoder(req.Body).Decode(&s); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	r.store.Dispatch(store.UpdateSettings{Settings: s})
	respondJSON(w, http.StatusOK, s)
}
