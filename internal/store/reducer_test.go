package store

import (
	"testing"
	"time"

	"github.com/smartlabo/labostock/internal/models"
)

type bogusAction struct{}

func (bogusAction) isAction() {}

func testState() models.AppState {
	day := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	return models.AppState{
		Categories: []models.Category{
			{ID: "c1", Name: "Produit Chimique"},
			{ID: "c2", Name: "Matériel SVT"},
		},
		Materials: []models.Material{
			{
				ID: "m1", NumFiche: "CHM-010", Name: "Éthanol 95%",
				CategoryID: "c1", Quantity: 20, AlertThreshold: 5,
				Unit: models.UnitLitre, Etat: models.EtatBon,
				DateSaisie: day, DateModification: day,
			},
			{
				ID: "m2", NumFiche: "SVT-003", Name: "Lame porte-objet",
				CategoryID: "c2", Quantity: 100, AlertThreshold: 20,
				Unit: models.UnitBoite, Etat: models.EtatNeuf,
				DateSaisie: day, DateModification: day,
			},
		},
		Movements: []models.Movement{
			{ID: "mv1", MaterialID: "m1", MaterialName: "Éthanol 95%",
				Type: models.MovementEntree, Quantity: 20, Date: day},
		},
		Orders: []models.Order{
			{ID: "o1", Supplier: "Fournisseur Local", OrderDate: day,
				Status: models.OrderEnAttente,
				Items:  []models.OrderItem{{MaterialID: "m1", MaterialName: "Éthanol 95%", Quantity: 5}}},
		},
		Reservations: []models.Reservation{
			{ID: "r1", Demandeur: "M. Rabe", RequestDate: day,
				Status: models.ReservationEnAttente,
				Items:  []models.ReservationItem{{MaterialID: "m1", Quantity: 2}}},
		},
		Personnel: []models.Personnel{
			{ID: "p1", Nom: "Mme Rakoto", Role: models.RoleTechnicien, Labo: "Chimie"},
		},
		Rooms:    []models.Room{{ID: "rm1", Name: "Salle 101"}},
		Labs:     []models.Lab{{ID: "l1", Name: "Labo Chimie"}},
		Settings: models.Settings{SchoolName: "Lycée Test", Region: "Analamanga"},
	}
}

func materialQty(t *testing.T, state models.AppState, id string) int {
	t.Helper()
	for _, m := range state.Materials {
		if m.ID == id {
			return m.Quantity
		}
	}
	t.Fatalf("material %s not found", id)
	return 0
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	state := testState()
	next := Reduce(state, UpdateStock{MaterialID: "m1", Type: models.MovementSortie, Quantity: 3})

	if got := materialQty(t, state, "m1"); got != 20 {
		t.Errorf("input state mutated: m1 quantity = %d, want 20", got)
	}
	if len(state.Movements) != 1 {
		t.Errorf("input movement log mutated: len = %d, want 1", len(state.Movements))
	}
	if got := materialQty(t, next, "m1"); got != 17 {
		t.Errorf("next state m1 quantity = %d, want 17", got)
	}

	// Untouched collections keep referential identity with the input.
	if &next.Orders[0] != &state.Orders[0] {
		t.Error("orders were copied even though the action never touched them")
	}
	if &next.Reservations[0] != &state.Reservations[0] {
		t.Error("reservations were copied even though the action never touched them")
	}
	if &next.Personnel[0] != &state.Personnel[0] {
		t.Error("personnel was copied even though the action never touched it")
	}
}

func TestUnknownActionReturnsStateUnchanged(t *testing.T) {
	state := testState()
	next := Reduce(state, bogusAction{})
	if &next.Materials[0] != &state.Materials[0] || len(next.Movements) != len(state.Movements) {
		t.Error("unknown action changed the state")
	}
}

func TestSortieRejectsUnderflow(t *testing.T) {
	state := testState() // m1 has quantity 20, threshold 5

	state = Reduce(state, UpdateStock{MaterialID: "m1", Type: models.MovementSortie, Quantity: 15})
	if got := materialQty(t, state, "m1"); got != 5 {
		t.Fatalf("after Sortie 15: quantity = %d, want 5", got)
	}

	next := Reduce(state, UpdateStock{MaterialID: "m1", Type: models.MovementSortie, Quantity: 10})
	if got := materialQty(t, next, "m1"); got != 5 {
		t.Errorf("underflowing Sortie applied: quantity = %d, want 5", got)
	}
	if len(next.Movements) != len(state.Movements) {
		t.Errorf("underflowing Sortie logged a movement")
	}
}

func TestEntreePrependsMovementWithMagnitude(t *testing.T) {
	state := testState()
	next := Reduce(state, UpdateStock{MaterialID: "m1", Type: models.MovementEntree, Quantity: 7, Notes: "livraison"})

	if got := materialQty(t, next, "m1"); got != 27 {
		t.Errorf("quantity = %d, want 27", got)
	}
	if len(next.Movements) != 2 {
		t.Fatalf("movements len = %d, want 2", len(next.Movements))
	}
	mv := next.Movements[0] // newest first
	if mv.Type != models.MovementEntree || mv.Quantity != 7 {
		t.Errorf("logged movement = %s/%d, want Entrée/7", mv.Type, mv.Quantity)
	}
	if mv.MaterialName != "Éthanol 95%" {
		t.Errorf("movement name snapshot = %q", mv.MaterialName)
	}
	if next.Movements[1].ID != "mv1" {
		t.Error("existing movement displaced, log must be newest-first append-only")
	}
}

func TestAjustementRecordsNewTotal(t *testing.T) {
	state := testState()
	next := Reduce(state, UpdateStock{MaterialID: "m1", Type: models.MovementAjustement, Quantity: 42})
	if got := materialQty(t, next, "m1"); got != 42 {
		t.Errorf("quantity = %d, want 42", got)
	}
	if mv := next.Movements[0]; mv.Quantity != 42 {
		t.Errorf("Ajustement movement quantity = %d, want the entered total 42", mv.Quantity)
	}

	rejected := Reduce(state, UpdateStock{MaterialID: "m1", Type: models.MovementAjustement, Quantity: -1})
	if got := materialQty(t, rejected, "m1"); got != 20 {
		t.Errorf("negative Ajustement applied: quantity = %d, want 20", got)
	}
}

func TestUpdateStockUnknownMaterialNoOp(t *testing.T) {
	state := testState()
	next := Reduce(state, UpdateStock{MaterialID: "nope", Type: models.MovementEntree, Quantity: 5})
	if len(next.Movements) != 1 {
		t.Error("movement logged for unknown material")
	}
}

func TestMovementLogAppendOnly(t *testing.T) {
	state := testState()
	next := Reduce(state, AddMovement{Movement: models.Movement{
		ID: "mv2", MaterialID: "m2", MaterialName: "Lame porte-objet",
		Type: models.MovementSortie, Quantity: 4, Date: time.Now().UTC(),
	}})
	if len(next.Movements) != len(state.Movements)+1 {
		t.Fatalf("movements len = %d, want %d", len(next.Movements), len(state.Movements)+1)
	}
	if next.Movements[0].ID != "mv2" {
		t.Error("new movement must be prepended (newest first)")
	}
	if next.Movements[1] != state.Movements[0] {
		t.Error("existing movement record altered")
	}
}

func TestOrderReceiptAppliesStockOnce(t *testing.T) {
	state := testState()

	received := state.Orders[0]
	received.Status = models.OrderRecu
	next := Reduce(state, UpdateOrder{Order: received})

	if got := materialQty(t, next, "m1"); got != 25 {
		t.Errorf("after receipt: quantity = %d, want 25", got)
	}
	var entries []models.Movement
	for _, mv := range next.Movements {
		if mv.Type == models.MovementEntree && mv.MaterialID == "m1" && mv.Quantity == 5 {
			entries = append(entries, mv)
		}
	}
	if len(entries) != 1 {
		t.Fatalf("receipt logged %d Entrée movements, want exactly 1", len(entries))
	}
	t.Logf("receipt note: %s", entries[0].Notes)

	// Re-saving an already received order must not re-apply the stock.
	again := Reduce(next, UpdateOrder{Order: received})
	if got := materialQty(t, again, "m1"); got != 25 {
		t.Errorf("second receipt re-applied stock: quantity = %d, want 25", got)
	}
	if len(again.Movements) != len(next.Movements) {
		t.Error("second receipt logged extra movements")
	}
}

func TestOrderReceiptSkipsDeletedMaterials(t *testing.T) {
	state := testState()
	state = Reduce(state, DeleteMaterial{ID: "m1"})

	received := state.Orders[0]
	received.Status = models.OrderRecu
	next := Reduce(state, UpdateOrder{Order: received})

	if next.Orders[0].Status != models.OrderRecu {
		t.Error("status transition lost")
	}
	if len(next.Movements) != len(state.Movements) {
		t.Error("movement logged for a deleted material")
	}
}

func TestDeleteMaterialKeepsHistory(t *testing.T) {
	state := testState()
	next := Reduce(state, DeleteMaterial{ID: "m1"})

	if len(next.Materials) != 1 {
		t.Fatalf("materials len = %d, want 1", len(next.Materials))
	}
	if len(next.Movements) != 1 || next.Movements[0].MaterialID != "m1" {
		t.Error("historical movement lost on material deletion")
	}
	if next.Movements[0].MaterialName != "Éthanol 95%" {
		t.Error("movement name snapshot lost")
	}
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	state := testState()

	next := Reduce(state, DeleteCategory{ID: "c1"}) // referenced by m1
	if len(next.Categories) != 2 {
		t.Error("referenced category was deleted")
	}

	next = Reduce(state, DeleteMaterial{ID: "m1"})
	next = Reduce(next, DeleteCategory{ID: "c1"})
	if len(next.Categories) != 1 {
		t.Error("unreferenced category not deleted")
	}
}

func TestAddReservationDefaultsStatus(t *testing.T) {
	state := testState()
	next := Reduce(state, AddReservation{Reservation: models.Reservation{
		ID: "r2", Demandeur: "Mme Hery",
		Items: []models.ReservationItem{{MaterialID: "m2", Quantity: 10}},
	}})
	if next.Reservations[0].ID != "r2" {
		t.Fatal("reservation must be prepended")
	}
	if next.Reservations[0].Status != models.ReservationEnAttente {
		t.Errorf("default status = %q, want En attente", next.Reservations[0].Status)
	}
}

func TestReservationStatusChangeNeverTouchesStock(t *testing.T) {
	state := testState()
	next := Reduce(state, UpdateReservationStatus{ID: "r1", Status: models.ReservationValidee})

	if next.Reservations[0].Status != models.ReservationValidee {
		t.Errorf("status = %q, want Validée", next.Reservations[0].Status)
	}
	if next.Reservations[0].Demandeur != "M. Rabe" {
		t.Error("fields other than status were replaced")
	}
	if got := materialQty(t, next, "m1"); got != 20 {
		t.Errorf("reservation approval changed stock: %d", got)
	}
	if &next.Materials[0] != &state.Materials[0] {
		t.Error("materials copied by a reservation status change")
	}

	bad := Reduce(state, UpdateReservationStatus{ID: "r1", Status: "Peut-être"})
	if bad.Reservations[0].Status != models.ReservationEnAttente {
		t.Error("invalid status accepted")
	}
}

func TestEntityCRUD(t *testing.T) {
	state := testState()

	state = Reduce(state, AddPersonnel{Personnel: models.Personnel{ID: "p2", Nom: "M. Naina", Role: models.RoleEnseignant}})
	state = Reduce(state, UpdatePersonnel{Personnel: models.Personnel{ID: "p2", Nom: "M. Naina R.", Role: models.RoleEnseignant}})
	if state.Personnel[1].Nom != "M. Naina R." {
		t.Errorf("personnel update lost: %q", state.Personnel[1].Nom)
	}
	state = Reduce(state, DeletePersonnel{ID: "p2"})
	if len(state.Personnel) != 1 {
		t.Error("personnel delete lost")
	}

	state = Reduce(state, AddRoom{Room: models.Room{ID: "rm2", Name: "Salle 202"}})
	state = Reduce(state, UpdateRoom{Room: models.Room{ID: "rm2", Name: "Salle 203"}})
	state = Reduce(state, AddLab{Lab: models.Lab{ID: "l2", Name: "Labo Physique"}})
	if len(state.Rooms) != 2 || state.Rooms[1].Name != "Salle 203" || len(state.Labs) != 2 {
		t.Error("room/lab CRUD broken")
	}

	state = Reduce(state, UpdateSettings{Settings: models.Settings{SchoolName: "CEG Ambohipo", Region: "Itasy"}})
	if state.Settings.SchoolName != "CEG Ambohipo" {
		t.Error("settings replacement lost")
	}

	// Wholesale update of an unknown id is a no-op.
	state = Reduce(state, UpdateMaterial{Material: models.Material{ID: "ghost", Name: "X", CategoryID: "c1"}})
	if len(state.Materials) != 2 {
		t.Error("update of unknown material created a record")
	}
}
