package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartlabo/labostock/internal/models"
)

// Reduce is the pure state-transition function: (state, action) -> next
// state. It never mutates its input; collections it does not touch are
// carried over as-is, touched collections are replaced by fresh slices.
// It is total over the action set: unrecognized actions and unsatisfied
// preconditions return the state unchanged, never an error.
func Reduce(state models.AppState, action Action) models.AppState {
	switch a := action.(type) {
	case AddMaterial:
		state.Materials = appended(state.Materials, a.Material)

	case UpdateMaterial:
		if i := indexOf(state.Materials, a.Material.ID, materialID); i >= 0 {
			state.Materials = replaceAt(state.Materials, i, a.Material)
		}

	case DeleteMaterial:
		if i := indexOf(state.Materials, a.ID, materialID); i >= 0 {
			state.Materials = removeAt(state.Materials, i)
		}

	case AddMovement:
		state.Movements = prepended(state.Movements, a.Movement)

	case UpdateStock:
		state = applyStock(state, a)

	case AddCategory:
		state.Categories = appended(state.Categories, a.Category)

	case UpdateCategory:
		if i := indexOf(state.Categories, a.Category.ID, categoryID); i >= 0 {
			state.Categories = replaceAt(state.Categories, i, a.Category)
		}

	case DeleteCategory:
		for _, m := range state.Materials {
			if m.CategoryID == a.ID {
				// Still referenced: deletion is blocked.
				return state
			}
		}
		if i := indexOf(state.Categories, a.ID, categoryID); i >= 0 {
			state.Categories = removeAt(state.Categories, i)
		}

	case AddOrder:
		state.Orders = appended(state.Orders, a.Order)

	case UpdateOrder:
		i := indexOf(state.Orders, a.Order.ID, orderID)
		if i < 0 {
			return state
		}
		prev := state.Orders[i]
		state.Orders = replaceAt(state.Orders, i, a.Order)
		if a.Order.Status == models.OrderRecu && prev.Status != models.OrderRecu {
			state = receiveOrder(state, a.Order)
		}

	case DeleteOrder:
		if i := indexOf(state.Orders, a.ID, orderID); i >= 0 {
			state.Orders = removeAt(state.Orders, i)
		}

	case AddReservation:
		r := a.Reservation
		if r.Status == "" {
			r.Status = models.ReservationEnAttente
		}
		state.Reservations = prepended(state.Reservations, r)

	case UpdateReservationStatus:
		if !a.Status.Valid() {
			return state
		}
		if i := indexOf(state.Reservations, a.ID, reservationID); i >= 0 {
			r := state.Reservations[i]
			r.Status = a.Status
			state.Reservations = replaceAt(state.Reservations, i, r)
		}

	case DeleteReservation:
		if i := indexOf(state.Reservations, a.ID, reservationID); i >= 0 {
			state.Reservations = removeAt(state.Reservations, i)
		}

	case AddPersonnel:
		state.Personnel = appended(state.Personnel, a.Personnel)

	case UpdatePersonnel:
		if i := indexOf(state.Personnel, a.Personnel.ID, personnelID); i >= 0 {
			state.Personnel = replaceAt(state.Personnel, i, a.Personnel)
		}

	case DeletePersonnel:
		if i := indexOf(state.Personnel, a.ID, personnelID); i >= 0 {
			state.Personnel = removeAt(state.Personnel, i)
		}

	case AddRoom:
		state.Rooms = appended(state.Rooms, a.Room)

	case UpdateRoom:
		if i := indexOf(state.Rooms, a.Room.ID, roomID); i >= 0 {
			state.Rooms = replaceAt(state.Rooms, i, a.Room)
		}

	case DeleteRoom:
		if i := indexOf(state.Rooms, a.ID, roomID); i >= 0 {
			state.Rooms = removeAt(state.Rooms, i)
		}

	case AddLab:
		state.Labs = appended(state.Labs, a.Lab)

	case UpdateLab:
		if i := indexOf(state.Labs, a.Lab.ID, labID); i >= 0 {
			state.Labs = replaceAt(state.Labs, i, a.Lab)
		}

	case DeleteLab:
		if i := indexOf(state.Labs, a.ID, labID); i >= 0 {
			state.Labs = removeAt(state.Labs, i)
		}

	case UpdateSettings:
		state.Settings = a.Settings

	case ReplaceState:
		state = a.State
	}

	return state
}

// applyStock performs the combined quantity change + audit log append.
// Invalid transitions (unknown material, unknown type, non-positive
// magnitude, Sortie underflow, negative Ajustement target) leave the
// state unchanged.
func applyStock(state models.AppState, a UpdateStock) models.AppState {
	i := indexOf(state.Materials, a.MaterialID, materialID)
	if i < 0 {
		return state
	}
	mat := state.Materials[i]

	var next int
	switch a.Type {
	case models.MovementEntree:
		if a.Quantity <= 0 {
			return state
		}
		next = mat.Quantity + a.Quantity
	case models.MovementSortie:
		if a.Quantity <= 0 || a.Quantity > mat.Quantity {
			return state
		}
		next = mat.Quantity - a.Quantity
	case models.MovementAjustement:
		if a.Quantity < 0 {
			return state
		}
		next = a.Quantity
	default:
		return state
	}

	now := time.Now().UTC()
	mat.Quantity = next
	mat.DateModification = now
	state.Materials = replaceAt(state.Materials, i, mat)
	state.Movements = prepended(state.Movements, models.Movement{
		ID:           uuid.NewString(),
		MaterialID:   mat.ID,
		MaterialName: mat.Name,
		Type:         a.Type,
		Quantity:     a.Quantity,
		Date:         now,
		Notes:        a.Notes,
	})
	return state
}

// receiveOrder applies the cross-entity side effect of an order becoming
// "Reçu": each item's material gains the ordered quantity and an Entrée
// movement referencing the order is logged. Items pointing at deleted
// materials are skipped.
func receiveOrder(state models.AppState, order models.Order) models.AppState {
	now := time.Now().UTC()
	materials := state.Materials
	movements := state.Movements
	for _, item := range order.Items {
		i := indexOf(materials, item.MaterialID, materialID)
		if i < 0 || item.Quantity <= 0 {
			continue
		}
		mat := materials[i]
		mat.Quantity += item.Quantity
		mat.DateModification = now
		materials = replaceAt(materials, i, mat)
		movements = prepended(movements, models.Movement{
			ID:           uuid.NewString(),
			MaterialID:   mat.ID,
			MaterialName: mat.Name,
			Type:         models.MovementEntree,
			Quantity:     item.Quantity,
			Date:         now,
			Notes:        fmt.Sprintf("Réception commande %s (%s)", order.ID, order.Supplier),
		})
	}
	state.Materials = materials
	state.Movements = movements
	return state
}

func materialID(m models.Material) string       { return m.ID }
func categoryID(c models.Category) string       { return c.ID }
func orderID(o models.Order) string             { return o.ID }
func reservationID(r models.Reservation) string { return r.ID }
func personnelID(p models.Personnel) string     { return p.ID }
func roomID(r models.Room) string               { return r.ID }
func labID(l models.Lab) string                 { return l.ID }

func indexOf[T any](list []T, id string, idOf func(T) string) int {
	for i, v := range list {
		if idOf(v) == id {
			return i
		}
	}
	return -1
}

// replaceAt copies the slice and swaps one element, leaving the input
// slice untouched.
func replaceAt[T any](list []T, i int, v T) []T {
	out := make([]T, len(list))
	copy(out, list)
	out[i] = v
	return out
}

func removeAt[T any](list []T, i int) []T {
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

func appended[T any](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, v)
}

func prepended[T any](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, v)
	return append(out, list...)
}
