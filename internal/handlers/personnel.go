package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/smartlabo/labostock/internal/models"
	"github.com/smartlabo/labostock/internal/store"
)

// listPersonnel returns all staff records
func (r *Router) listPersonnel(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.store.State().Personnel)
}

// createPersonnel adds a staff record
func (r *Router) createPersonnel(w http.ResponseWriter, req *http.Request) {
	var p models.Personnel
	if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := p.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	p.ID = uuid.NewString()
	r.store.Dispatch(store.AddPersonnel{Personnel: p})
	respondJSON(w, http.StatusCreated, p)
}

// updatePersonnel replaces a staff record wholesale
func (r *Router) updatePersonnel(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	var p models.Personnel
	if err := json.NewDecoder(req.Body).Decode(&p); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	p.ID = id
	if err := p.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if r.store.PersonnelName(id) == store.UnknownPersonnel {
		respondError(w, http.StatusNotFound, "Personnel introuvable")
		return
	}
	r.store.Dispatch(store.UpdatePersonnel{Personnel: p})
	respondJSON(w, http.StatusOK, p)
}

// deletePersonnel removes a staff record
func (r *Router) deletePersonnel(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if r.store.PersonnelName(id) == store.UnknownPersonnel {
		respondError(w, http.StatusNotFound, "Personnel introuvable")
		return
	}
	r.store.Dispatch(store.DeletePersonnel{ID: id})
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
