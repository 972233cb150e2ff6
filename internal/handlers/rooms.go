package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/smartlabo/labostock/internal/models"
	"github.com/smartlabo/labostock/internal/store"
)

// listRooms returns all rooms
func (r *Router) listRooms(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.store.State().Rooms)
}

// createRoom adds a room
func (r *Router) createRoom(w http.ResponseWriter, req *http.Request) {
	var room models.Room
	if err := json.NewDecoder(req.Body).Decode(&room); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := room.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	room.ID = uuid.NewString()
	r.store.Dispatch(store.AddRoom{Room: room})
	respondJSON(w, http.StatusCreated, room)
}

// updateRoom renames a room
func (r *Router) updateRoom(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	var room models.Room
	if err := json.NewDecoder(req.Body).Decode(&room); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	room.ID = id
	if err := room.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if findRoom(r.store.State(), id) == nil {
		respondError(w, http.StatusNotFound, "Salle introuvable")
		return
	}
	r.store.Dispatch(store.UpdateRoom{Room: room})
	respondJSON(w, http.StatusOK, room)
}

// deleteRoom removes a room
func (r *Router) deleteRoom(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if findRoom(r.store.State(), id) == nil {
		respondError(w, http.StatusNotFound, "Salle introuvable")
		return
	}
	r.store.Dispatch(store.DeleteRoom{ID: id})
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

// listLabs returns all labs
func (r *Router) listLabs(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.store.State().Labs)
}

// createLab adds a lab
func (r *Router) createLab(w http.ResponseWriter, req *http.Request) {
	var lab models.Lab
	if err := json.NewDecoder(req.Body).Decode(&lab); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := lab.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	lab.ID = uuid.NewString()
	r.store.Dispatch(store.AddLab{Lab: lab})
	respondJSON(w, http.StatusCreated, lab)
}

// updateLab renames a lab
func (r *Router) updateLab(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	var lab models.Lab
	if err := json.NewDecoder(req.Body).Decode(&lab); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	lab.ID = id
	if err := lab.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if findLab(r.store.State(), id) == nil {
		respondError(w, http.StatusNotFound, "Laboratoire introuvable")
		return
	}
	r.store.Dispatch(store.UpdateLab{Lab: lab})
	respondJSON(w, http.StatusOK, lab)
}

// deleteLab removes a lab
func (r *Router) deleteLab(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]
	if findLab(r.store.State(), id) == nil {
		respondError(w, http.StatusNotFound, "Laboratoire introuvable")
		return
	}
	r.store.Dispatch(store.DeleteLab{ID: id})
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func findRoom(state models.AppState, id string) *models.Room {
	for i := range state.Rooms {
		if state.Rooms[i].ID == id {
			return &state.Rooms[i]
		}
	}
	return nil
}

func findLab(state models.AppState, id string) *models.Lab {
	for i := range state.Labs {
		if state.Labs[i].ID == id {
			return &state.Labs[i]
		}
	}
	return nil
}
