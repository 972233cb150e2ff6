package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/smartlabo/labostock/internal/models"
	"github.com/smartlabo/labostock/internal/store"
)

// listCategories returns all categories
func (r *Router) listCategories(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.store.State().Categories)
}

// createCategory adds a category
func (r *Router) createCategory(w http.ResponseWriter, req *http.Request) {
	var c models.Category
	if err := json.NewDecoder(req.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := c.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	c.ID = uuid.NewString()
	r.store.Dispatch(store.AddCategory{Category: c})
	respondJSON(w, http.StatusCreated, c)
}

// updateCategory renames a category
func (r *Router) updateCategory(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	var c models.Category
	if err := json.NewDecoder(req.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	c.ID = id
	if err := c.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if r.store.CategoryName(id) == store.UnknownCategory {
		respondError(w, http.StatusNotFound, "Catégorie introuvable")
		return
	}
	r.store.Dispatch(store.UpdateCategory{Category: c})
	respondJSON(w, http.StatusOK, c)
}

// deleteCategory removes a category unless materials still reference it
func (r *Router) deleteCategory(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	state := r.store.State()
	if store.CategoryName(state, id) == store.UnknownCategory {
		respondError(w, http.StatusNotFound, "Catégorie introuvable")
		return
	}
	for _, m := range state.Materials {
		if m.CategoryID == id {
			respondError(w, http.StatusConflict, "Catégorie utilisée par des matériels existants")
			return
		}
	}
	r.store.Dispatch(store.DeleteCategory{ID: id})
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
