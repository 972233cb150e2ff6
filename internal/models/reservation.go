package models

import (
	"fmt"
	"time"
)

// ReservationStatus describes where a material request is in its lifecycle.
type ReservationStatus string

const (
	ReservationEnAttente ReservationStatus = "En attente"
	ReservationValidee   ReservationStatus = "Validée"
	ReservationRefusee   ReservationStatus = "Refusée"
	ReservationRetiree   ReservationStatus = "Retirée"
)

// Valid reports whether s is one of the declared reservation statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationEnAttente, ReservationValidee, ReservationRefusee, ReservationRetiree:
		return true
	}
	return false
}

// ReservationItem is one requested material line.
type ReservationItem struct {
	MaterialID string `json:"materialId"`
	Quantity   int    `json:"quantity"`
}

// Reservation is a request to hold materials for a future date. It is a
// request record only: approving or refusing it never touches stock.
// PersonnelID is optional; Demandeur carries the free-text requester name
// when the request does not come from registered personnel.
type Reservation struct {
	ID            string            `json:"id"`
	Demandeur     string            `json:"demandeur"`
	PersonnelID   string            `json:"personnelId,omitempty"`
	RequestDate   time.Time         `json:"requestDate"`
	ScheduledDate time.Time         `json:"scheduledDate"`
	Status        ReservationStatus `json:"status"`
	Items         []ReservationItem `json:"items"`
	Notes         string            `json:"notes"`
}

// Validate checks the boundary invariants before a reservation enters the store.
func (r *Reservation) Validate() error {
	if r.Demandeur == "" && r.PersonnelID == "" {
		return fmt.Errorf("le demandeur est requis")
	}
	if len(r.Items) == 0 {
		return fmt.Errorf("la réservation doit contenir au moins un article")
	}
	for i, it := range r.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("article %d: la quantité doit être positive", i+1)
		}
	}
	return nil
}
