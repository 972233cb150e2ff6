package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartlabo/labostock/internal/models"
	"github.com/smartlabo/labostock/internal/storage"
	"github.com/smartlabo/labostock/internal/store"
	"github.com/smartlabo/labostock/internal/websocket"
)

func newTestRouter(t *testing.T) (*Router, *store.Store) {
	t.Helper()
	st := store.Open(storage.NewMemoryStore())
	hub := websocket.NewHub()
	go hub.Run()
	return NewRouter(st, hub, ""), st
}

func doJSON(t *testing.T, router *Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, "GET", "/health", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestGetStateReturnsSeededSnapshot(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, "GET", "/api/state", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var state models.AppState
	decodeBody(t, rec, &state)
	if len(state.Categories) != 6 {
		t.Errorf("categories = %d, want the 6 starter categories", len(state.Categories))
	}
	if len(state.Materials) == 0 {
		t.Error("expected starter materials in the snapshot")
	}
}

func TestCreateMaterial(t *testing.T) {
	router, st := newTestRouter(t)
	rec := doJSON(t, router, "POST", "/api/materials", map[string]interface{}{
		"name":           "Éprouvette 100ml",
		"categoryId":     models.SeedCategoryChimie,
		"quantity":       40,
		"alertThreshold": 8,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created models.Material
	decodeBody(t, rec, &created)
	if created.ID == "" {
		t.Error("created material has no id")
	}
	if created.Unit != models.UnitUnite || created.Etat != models.EtatBon {
		t.Errorf("defaults not applied: unit=%s etat=%s", created.Unit, created.Etat)
	}
	if findMaterial(st.State(), created.ID) == nil {
		t.Error("created material not in store state")
	}
}

func TestCreateMaterialRejectsUnknownCategory(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, "POST", "/api/materials", map[string]interface{}{
		"name":       "Objet sans catégorie",
		"categoryId": "cat-does-not-exist",
		"quantity":   1,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateStockSortie(t *testing.T) {
	router, st := newTestRouter(t)
	before := findMaterial(st.State(), "mat-becher-250").Quantity

	rec := doJSON(t, router, "POST", "/api/materials/mat-becher-250/stock", stockRequest{
		Type: models.MovementSortie, Quantity: 5, Notes: "TP chimie",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var updated models.Material
	decodeBody(t, rec, &updated)
	if updated.Quantity != before-5 {
		t.Errorf("quantity = %d, want %d", updated.Quantity, before-5)
	}
	state := st.State()
	if len(state.Movements) != 1 || state.Movements[0].Type != models.MovementSortie {
		t.Fatalf("movement not logged: %+v", state.Movements)
	}
	if state.Movements[0].Quantity != 5 {
		t.Errorf("movement quantity = %d, want the magnitude 5", state.Movements[0].Quantity)
	}
}

func TestUpdateStockSortieRejectsUnderflow(t *testing.T) {
	router, st := newTestRouter(t)
	before := st.State()

	rec := doJSON(t, router, "POST", "/api/materials/mat-hcl-1m/stock", stockRequest{
		Type: models.MovementSortie, Quantity: 999,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409, body %s", rec.Code, rec.Body.String())
	}
	after := st.State()
	if findMaterial(after, "mat-hcl-1m").Quantity != findMaterial(before, "mat-hcl-1m").Quantity {
		t.Error("rejected sortie changed the stock")
	}
	if len(after.Movements) != len(before.Movements) {
		t.Error("rejected sortie logged a movement")
	}
}

func TestUpdateStockUnknownMaterial(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, "POST", "/api/materials/no-such-id/stock", stockRequest{
		Type: models.MovementEntree, Quantity: 1,
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	router, st := newTestRouter(t)
	rec := doJSON(t, router, "DELETE", "/api/categories/"+models.SeedCategoryChimie, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409, body %s", rec.Code, rec.Body.String())
	}
	if len(st.State().Categories) != 6 {
		t.Error("blocked deletion still removed the category")
	}

	// Unreferenced categories delete normally.
	rec = doJSON(t, router, "DELETE", "/api/categories/"+models.SeedCategoryAutre, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if len(st.State().Categories) != 5 {
		t.Error("unreferenced category was not removed")
	}
}

func TestOrderReceiveFlow(t *testing.T) {
	router, st := newTestRouter(t)
	before := findMaterial(st.State(), "mat-multimetre").Quantity

	rec := doJSON(t, router, "POST", "/api/orders", map[string]interface{}{
		"supplier": "Fournisseur Scientifique SARL",
		"items": []map[string]interface{}{
			{"materialId": "mat-multimetre", "quantity": 4},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create order: status = %d, body %s", rec.Code, rec.Body.String())
	}
	var order models.Order
	decodeBody(t, rec, &order)
	if order.Status != models.OrderEnAttente {
		t.Errorf("status = %s, want default En attente", order.Status)
	}
	if order.Items[0].MaterialName != "Multimètre" {
		t.Errorf("item name = %q, want snapshot of the material name", order.Items[0].MaterialName)
	}

	rec = doJSON(t, router, "POST", fmt.Sprintf("/api/orders/%s/receive", order.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("receive: status = %d, body %s", rec.Code, rec.Body.String())
	}
	state := st.State()
	if got := findMaterial(state, "mat-multimetre").Quantity; got != before+4 {
		t.Errorf("quantity after receipt = %d, want %d", got, before+4)
	}
	if len(state.Movements) != 1 || state.Movements[0].Type != models.MovementEntree {
		t.Fatalf("receipt did not log an Entrée movement: %+v", state.Movements)
	}

	// Receiving twice must not re-apply the stock.
	rec = doJSON(t, router, "POST", fmt.Sprintf("/api/orders/%s/receive", order.ID), nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("second receive: status = %d, want 409", rec.Code)
	}
	if got := findMaterial(st.State(), "mat-multimetre").Quantity; got != before+4 {
		t.Errorf("second receive changed stock to %d", got)
	}
}

func TestReservationStatusUpdate(t *testing.T) {
	router, st := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/reservations", map[string]interface{}{
		"demandeur": "M. Andrianina",
		"items": []map[string]interface{}{
			{"materialId": "mat-becher-250", "quantity": 10},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create reservation: status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res models.Reservation
	decodeBody(t, rec, &res)
	if res.Status != models.ReservationEnAttente {
		t.Errorf("status = %s, want default En attente", res.Status)
	}

	before := findMaterial(st.State(), "mat-becher-250").Quantity
	rec = doJSON(t, router, "PUT", fmt.Sprintf("/api/reservations/%s/status", res.ID), map[string]string{
		"status": string(models.ReservationValidee),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status: status = %d, body %s", rec.Code, rec.Body.String())
	}
	state := st.State()
	if state.Reservations[0].Status != models.ReservationValidee {
		t.Errorf("reservation status = %s", state.Reservations[0].Status)
	}
	if findMaterial(state, "mat-becher-250").Quantity != before {
		t.Error("reservation validation touched the stock")
	}
}

func TestLowStockAlerts(t *testing.T) {
	router, st := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/api/alerts", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var alerts []models.Material
	decodeBody(t, rec, &alerts)
	if len(alerts) != 0 {
		t.Fatalf("seed data should start above thresholds, got %d alerts", len(alerts))
	}

	// Drain a material down to its threshold and check it surfaces.
	m := findMaterial(st.State(), "mat-hcl-1m")
	doJSON(t, router, "POST", "/api/materials/mat-hcl-1m/stock", stockRequest{
		Type: models.MovementSortie, Quantity: m.Quantity - m.AlertThreshold,
	})
	rec = doJSON(t, router, "GET", "/api/alerts", nil)
	decodeBody(t, rec, &alerts)
	if len(alerts) != 1 || alerts[0].ID != "mat-hcl-1m" {
		t.Errorf("alerts = %+v, want mat-hcl-1m only", alerts)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "PUT", "/api/settings", models.Settings{
		SchoolName: "Lycée Jules Ferry", Region: "Analamanga",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, "GET", "/api/settings", nil)
	var s models.Settings
	decodeBody(t, rec, &s)
	if s.SchoolName != "Lycée Jules Ferry" || s.Region != "Analamanga" {
		t.Errorf("settings = %+v", s)
	}
}

func TestInventoryReportEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, "GET", "/api/reports/inventory.pdf", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF document")
	}
}

func TestExportMaterialsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, "GET", "/api/export/materials.xlsx", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Error("body is not a zip-based workbook")
	}
}
