package models

import "time"

// MovementType describes the direction of a stock movement.
type MovementType string

const (
	MovementEntree     MovementType = "Entrée"
	MovementSortie     MovementType = "Sortie"
	MovementAjustement MovementType = "Ajustement"
)

// Valid reports whether t is one of the declared movement types.
func (t MovementType) Valid() bool {
	switch t {
	case MovementEntree, MovementSortie, MovementAjustement:
		return true
	}
	return false
}

// Movement is one audited stock change. The log is append-only and kept
// newest-first. MaterialName is a snapshot taken at movement time so the
// audit trail stays readable after the material is renamed or deleted.
//
// Quantity convention: Entrée and Sortie record the entered magnitude;
// Ajustement records the entered new-total value.
type Movement struct {
	ID           string       `json:"id"`
	MaterialID   string       `json:"materialId"` // soft reference, survives material deletion
	MaterialName string       `json:"materialName"`
	Type         MovementType `json:"type"`
	Quantity     int          `json:"quantity"`
	Date         time.Time    `json:"date"`
	Notes        string       `json:"notes"`
}
