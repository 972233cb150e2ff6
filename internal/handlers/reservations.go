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

// listReservations returns all reservations, newest first
func (r *Router) listReservations(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.store.State().Reservations)
}

// createReservation validates and records a material request
func (r *Router) createReservation(w http.ResponseWriter, req *http.Request) {
	var res models.Reservation
	if err := json.NewDecoder(req.Body).Decode(&res); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := res.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	state := r.store.State()
	if res.PersonnelID != "" && store.PersonnelName(state, res.PersonnelID) == store.UnknownPersonnel {
		respondError(w, http.StatusBadRequest, "Personnel inconnu")
		return
	}
	res.ID = uuid.NewString()
	res.Status = models.ReservationEnAttente
	if res.RequestDate.IsZero() {
		res.RequestDate = time.Now().UTC()
	}
	r.store.Dispatch(store.AddReservation{Reservation: res})
	respondJSON(w, http.StatusCreated, res)
}

// statusRequest is the approval form payload
type statusRequest struct {
	Status models.ReservationStatus `json:"status"`
}

// updateReservationStatus applies an approval decision; it never touches
// stock, the reservation is a request record only
func (r *Router) updateReservationStatus(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	var body statusRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if !body.Status.Valid() {
		respondError(w, http.StatusBadRequest, "Statut de réservation inconnu")
		return
	}
	if findReservation(r.store.State(), id) == nil {
		respondError(w, http.StatusNotFound, "Réservation introuvable")
		return
	}
	state := r.store.Dispatch(store.UpdateReservationStatus{ID: id, Status: body.Status})
	respondJSON(w, http.StatusOK, findReservation(state, id))
}

// deleteReservation removes a reservation
func (r *Router) deleteReservation(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if findReservation(r.store.State(), id) == nil {
		respondError(w, http.StatusNotFound, "Réservation introuvable")
		return
	}
	r.store.Dispatch(store.DeleteReservation{ID: id})
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func findReservation(state models.AppState, id string) *models.Reservation {
	for i := range state.Reservations {
		if state.Reservations[i].ID == id {
			return &state.Reservations[i]
		}
	}
	return nil
}
