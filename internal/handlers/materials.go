package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/smartlabo/labostock/internal/models"
	"github.com/smartlabo/labostock/internal/store"
)

// listMaterials returns all materials
func (r *Router) listMaterials(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.store.State().Materials)
}

// getMaterial returns a single material
func (r *Router) getMaterial(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	for _, m := range r.store.State().Materials {
		if m.ID == id {
			respondJSON(w, http.StatusOK, m)
			return
		}
	}
	respondError(w, http.StatusNotFound, "Matériel introuvable")
}

// createMaterial validates the form payload and dispatches the addition
func (r *Router) createMaterial(w http.ResponseWriter, req *http.Request) {
	var m models.Material
	if err := json.NewDecoder(req.Body).Decode(&m); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if m.Unit == "" {
		m.Unit = models.UnitUnite
	}
	if m.Etat == "" {
		m.Etat = models.EtatBon
	}
	if err := m.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if r.store.CategoryName(m.CategoryID) == store.UnknownCategory {
		respondError(w, http.StatusBadRequest, "Catégorie inconnue")
		return
	}
	now := time.Now().UTC()
	m.ID = uuid.NewString()
	m.DateSaisie = now
	m.DateModification = now
	r.store.Dispatch(store.AddMaterial{Material: m})
	respondJSON(w, http.StatusCreated, m)
}

// updateMaterial replaces a material record wholesale
func (r *Router) updateMaterial(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	var m models.Material
	if err := json.NewDecoder(req.Body).Decode(&m); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	m.ID = id
	if err := m.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	existing := findMaterial(r.store.State(), id)
	if existing == nil {
		respondError(w, http.StatusNotFound, "Matériel introuvable")
		return
	}
	m.DateSaisie = existing.DateSaisie
	m.DateModification = time.Now().UTC()
	r.store.Dispatch(store.UpdateMaterial{Material: m})
	respondJSON(w, http.StatusOK, m)
}

// deleteMaterial hard-deletes a material; its movements stay as history
func (r *Router) deleteMaterial(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if findMaterial(r.store.State(), id) == nil {
		respondError(w, http.StatusNotFound, "Matériel introuvable")
		return
	}
	r.store.Dispatch(store.DeleteMaterial{ID: id})
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// stockRequest is the stock movement form payload
type stockRequest struct {
	Type     models.MovementType `json:"type"`
	Quantity int                 `json:"quantity"`
	Notes    string              `json:"notes"`
}

// updateStock validates a stock movement and dispatches the combined
// quantity-change-plus-audit-log transition
func (r *Router) updateStock(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	var body stockRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if !body.Type.Valid() {
		respondError(w, http.StatusBadRequest, "Type de mouvement inconnu")
		return
	}
	material := findMaterial(r.store.State(), id)
	if material == nil {
		respondError(w, http.StatusNotFound, "Matériel introuvable")
		return
	}
	switch body.Type {
	case models.MovementEntree, models.MovementSortie:
		if body.Quantity <= 0 {
			respondError(w, http.StatusBadRequest, "La quantité doit être positive")
			return
		}
	case models.MovementAjustement:
		if body.Quantity < 0 {
			respondError(w, http.StatusBadRequest, "La quantité ne peut pas être négative")
			return
		}
	}
	if body.Type == models.MovementSortie && body.Quantity > material.Quantity {
		respondError(w, http.StatusConflict, "Stock insuffisant pour cette sortie")
		return
	}
	state := r.store.Dispatch(store.UpdateStock{
		MaterialID: id,
		Type:       body.Type,
		Quantity:   body.Quantity,
		Notes:      body.Notes,
	})
	respondJSON(w, http.StatusOK, findMaterial(state, id))
}

func findMaterial(state models.AppState, id string) *models.Material {
	for i := range state.Materials {
		if state.Materials[i].ID == id {
			return &state.Materials[i]
		}
	}
	return nil
}
