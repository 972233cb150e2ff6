package store

import (
	"testing"

	"github.com/smartlabo/labostock/internal/models"
)

func TestCategoryNameSentinel(t *testing.T) {
	state := testState()

	if got := CategoryName(state, "c1"); got != "Produit Chimique" {
		t.Errorf("CategoryName(c1) = %q", got)
	}
	if got := CategoryName(state, "deleted-long-ago"); got != UnknownCategory {
		t.Errorf("unknown category = %q, want %q", got, UnknownCategory)
	}
	if got := CategoryName(models.AppState{}, "c1"); got != UnknownCategory {
		t.Errorf("empty state lookup = %q, want %q", got, UnknownCategory)
	}
}

func TestPersonnelNameSentinel(t *testing.T) {
	state := testState()

	if got := PersonnelName(state, "p1"); got != "Mme Rakoto" {
		t.Errorf("PersonnelName(p1) = %q", got)
	}
	if got := PersonnelName(state, "nobody"); got != UnknownPersonnel {
		t.Errorf("unknown personnel = %q, want %q", got, UnknownPersonnel)
	}
}

func TestRequesterName(t *testing.T) {
	state := testState()

	r := models.Reservation{PersonnelID: "p1"}
	if got := RequesterName(state, r); got != "Mme Rakoto" {
		t.Errorf("RequesterName via personnel = %q", got)
	}
	r = models.Reservation{Demandeur: "Visiteur"}
	if got := RequesterName(state, r); got != "Visiteur" {
		t.Errorf("RequesterName free text = %q", got)
	}
}

func TestLowStock(t *testing.T) {
	state := testState() // m1: 20/5, m2: 100/20

	if low := LowStock(state); len(low) != 0 {
		t.Fatalf("no material should be low, got %d", len(low))
	}

	state = Reduce(state, UpdateStock{MaterialID: "m1", Type: models.MovementSortie, Quantity: 15})
	low := LowStock(state)
	if len(low) != 1 || low[0].ID != "m1" {
		t.Fatalf("m1 at threshold must be flagged, got %v", low)
	}
}
