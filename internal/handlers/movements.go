package handlers

import (
	"net/http"
	"time"

	"github.com/smartlabo/labostock/internal/models"
)

// listMovements returns the audit log, newest first, optionally filtered
// by ?type= and the ?from=/?to= date range (2006-01-02)
func (r *Router) listMovements(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	movementType := models.MovementType(q.Get("type"))
	from, to, err := parseDateRange(q.Get("from"), q.Get("to"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Format de date invalide (AAAA-MM-JJ attendu)")
		return
	}

	out := []models.Movement{}
	for _, mv := range r.store.State().Movements {
		if movementType != "" && mv.Type != movementType {
			continue
		}
		if !from.IsZero() && mv.Date.Before(from) {
			continue
		}
		if !to.IsZero() && mv.Date.After(to) {
			continue
		}
		out = append(out, mv)
	}
	respondJSON(w, http.StatusOK, out)
}

// parseDateRange parses inclusive day bounds; empty strings are open ends.
func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			return from, to, err
		}
	}
	if toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			return from, to, err
		}
		// Include the whole end day
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}
