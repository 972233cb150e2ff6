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

// listOrders returns all purchase orders
func (r *Router) listOrders(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.store.State().Orders)
}

// createOrder validates and adds a purchase order
func (r *Router) createOrder(w http.ResponseWriter, req *http.Request) {
	var o models.Order
	if err := json.NewDecoder(req.Body).Decode(&o); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if o.Status == "" {
		o.Status = models.OrderEnAttente
	}
	if err := o.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	o.ID = uuid.NewString()
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now().UTC()
	}
	snapshotItemNames(r.store.State(), &o)
	r.store.Dispatch(store.AddOrder{Order: o})
	respondJSON(w, http.StatusCreated, o)
}

// updateOrder replaces an order wholesale; a status change into "Reçu"
// applies the stock receipt atomically inside the reducer
func (r *Router) updateOrder(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	var o models.Order
	if err := json.NewDecoder(req.Body).Decode(&o); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	o.ID = id
	if err := o.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if findOrder(r.store.State(), id) == nil {
		respondError(w, http.StatusNotFound, "Commande introuvable")
		return
	}
	snapshotItemNames(r.store.State(), &o)
	r.store.Dispatch(store.UpdateOrder{Order: o})
	respondJSON(w, http.StatusOK, o)
}

// deleteOrder removes an order
func (r *Router) deleteOrder(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if findOrder(r.store.State(), id) == nil {
		respondError(w, http.StatusNotFound, "Commande introuvable")
		return
	}
	r.store.Dispatch(store.DeleteOrder{ID: id})
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// receiveOrder marks an order as received, increasing stock and logging
// Entrée movements in the same transition
func (r *Router) receiveOrder(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	existing := findOrder(r.store.State(), id)
	if existing == nil {
		respondError(w, http.StatusNotFound, "Commande introuvable")
		return
	}
	if existing.Status == models.OrderRecu {
		respondError(w, http.StatusConflict, "Commande déjà reçue")
		return
	}
	if existing.Status == models.OrderAnnule {
		respondError(w, http.StatusConflict, "Commande annulée")
		return
	}
	received := *existing
	received.Status = models.OrderRecu
	state := r.store.Dispatch(store.UpdateOrder{Order: received})
	respondJSON(w, http.StatusOK, findOrder(state, id))
}

// snapshotItemNames fills each item's denormalized name from the live
// material so the order stays readable after renames or deletions.
func snapshotItemNames(state models.AppState, o *models.Order) {
	for i := range o.Items {
		if o.Items[i].MaterialName != "" {
			continue
		}
		if m := findMaterial(state, o.Items[i].MaterialID); m != nil {
			o.Items[i].MaterialName = m.Name
		}
	}
}

func findOrder(state models.AppState, id string) *models.Order {
	for i := range state.Orders {
		if state.Orders[i].ID == id {
			return &state.Orders[i]
		}
	}
	return nil
}
