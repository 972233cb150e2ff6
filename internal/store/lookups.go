package store

import "github.com/smartlabo/labostock/internal/models"

// Sentinels returned for unresolved foreign keys. Lookups never fail.
const (
	UnknownCategory  = "Inconnue"
	UnknownPersonnel = "Inconnu"
)

// CategoryName resolves a category id to its display name.
func CategoryName(state models.AppState, id string) string {
	for _, c := range state.Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return UnknownCategory
}

// PersonnelName resolves a personnel id to its display name.
func PersonnelName(state models.AppState, id string) string {
	for _, p := range state.Personnel {
		if p.ID == id {
			return p.Nom
		}
	}
	return UnknownPersonnel
}

// RequesterName resolves the display name of a reservation's requester:
// the linked personnel when set, otherwise the free-text demandeur.
func RequesterName(state models.AppState, r models.Reservation) string {
	if r.PersonnelID != "" {
		return PersonnelName(state, r.PersonnelID)
	}
	return r.Demandeur
}

// LowStock returns the materials at or below their alert threshold.
func LowStock(state models.AppState) []models.Material {
	var out []models.Material
	for _, m := range state.Materials {
		if m.LowStock() {
			out = append(out, m)
		}
	}
	return out
}

// CategoryName is the store-level convenience over the current snapshot.
func (s *Store) CategoryName(id string) string {
	return CategoryName(s.State(), id)
}

// PersonnelName is the store-level convenience over the current snapshot.
func (s *Store) PersonnelName(id string) string {
	return PersonnelName(s.State(), id)
}
