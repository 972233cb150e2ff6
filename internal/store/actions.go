package store

import "github.com/smartlabo/labostock/internal/models"

// Action is a state-transition request handled by Reduce. The set is
// closed: every action type lives in this file and carries its fully
// formed payload.
type Action interface {
	isAction()
}

// AddMaterial appends a material. The payload must carry a fresh id;
// uniqueness is the dispatching form's responsibility.
type AddMaterial struct {
	Material models.Material
}

// UpdateMaterial replaces the matching material wholesale. Unknown ids are
// a no-op.
type UpdateMaterial struct {
	Material models.Material
}

// DeleteMaterial removes the matching material. Historical movements and
// order lines keep their stale materialId and name snapshot.
type DeleteMaterial struct {
	ID string
}

// AddMovement prepends a fully formed movement (manual log entry).
type AddMovement struct {
	Movement models.Movement
}

// UpdateStock records a stock change and adjusts the material's live
// quantity in the same transition. Entrée adds the magnitude, Sortie
// subtracts it (rejected when it would underflow), Ajustement sets the
// quantity to the given absolute value (rejected when negative).
type UpdateStock struct {
	MaterialID string
	Type       models.MovementType
	Quantity   int
	Notes      string
}

// AddCategory appends a category.
type AddCategory struct {
	Category models.Category
}

// UpdateCategory replaces the matching category wholesale.
type UpdateCategory struct {
	Category models.Category
}

// DeleteCategory removes the matching category. It is a no-op while any
// material still references the category (blocked-deletion policy).
type DeleteCategory struct {
	ID string
}

// AddOrder appends a purchase order.
type AddOrder struct {
	Order models.Order
}

// UpdateOrder replaces the matching order wholesale. Transitioning the
// status into "Reçu" from any other status atomically increases each
// item's material stock and logs an Entrée movement referencing the
// order; re-saving an already received order applies no stock effect.
type UpdateOrder struct {
	Order models.Order
}

// DeleteOrder removes the matching order.
type DeleteOrder struct {
	ID string
}

// AddReservation prepends a reservation, defaulting its status to
// "En attente" when unset.
type AddReservation struct {
	Reservation models.Reservation
}

// UpdateReservationStatus replaces only the status field of the matching
// reservation. It never touches stock.
type UpdateReservationStatus struct {
	ID     string
	Status models.ReservationStatus
}

// DeleteReservation removes the matching reservation.
type DeleteReservation struct {
	ID string
}

// AddPersonnel appends a staff record.
type AddPersonnel struct {
	Personnel models.Personnel
}

// UpdatePersonnel replaces the matching staff record wholesale.
type UpdatePersonnel struct {
	Personnel models.Personnel
}

// DeletePersonnel removes the matching staff record.
type DeletePersonnel struct {
	ID string
}

// AddRoom appends a room.
type AddRoom struct {
	Room models.Room
}

// UpdateRoom replaces the matching room wholesale.
type UpdateRoom struct {
	Room models.Room
}

// DeleteRoom removes the matching room.
type DeleteRoom struct {
	ID string
}

// AddLab appends a lab.
type AddLab struct {
	Lab models.Lab
}

// UpdateLab replaces the matching lab wholesale.
type UpdateLab struct {
	Lab models.Lab
}

// DeleteLab removes the matching lab.
type DeleteLab struct {
	ID string
}

// UpdateSettings replaces the singleton settings.
type UpdateSettings struct {
	Settings models.Settings
}

// ReplaceState swaps the whole state (rehydration path).
type ReplaceState struct {
	State models.AppState
}

func (AddMaterial) isAction()             {}
func (UpdateMaterial) isAction()          {}
func (DeleteMaterial) isAction()          {}
func (AddMovement) isAction()             {}
func (UpdateStock) isAction()             {}
func (AddCategory) isAction()             {}
func (UpdateCategory) isAction()          {}
func (DeleteCategory) isAction()          {}
func (AddOrder) isAction()                {}
func (UpdateOrder) isAction()             {}
func (DeleteOrder) isAction()             {}
func (AddReservation) isAction()          {}
func (UpdateReservationStatus) isAction() {}
func (DeleteReservation) isAction()       {}
func (AddPersonnel) isAction()            {}
func (UpdatePersonnel) isAction()         {}
func (DeletePersonnel) isAction()         {}
func (AddRoom) isAction()                 {}
func (UpdateRoom) isAction()              {}
func (DeleteRoom) isAction()              {}
func (AddLab) isAction()                  {}
func (UpdateLab) isAction()               {}
func (DeleteLab) isAction()               {}
func (UpdateSettings) isAction()          {}
func (ReplaceState) isAction()            {}
