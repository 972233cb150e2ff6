package models

import (
	"fmt"
	"time"
)

// Unit enumerates the stock-keeping units used in the lab.
type Unit string

const (
	UnitUnite      Unit = "Unité"
	UnitLitre      Unit = "Litre"
	UnitKilogramme Unit = "Kilogramme"
	UnitGramme     Unit = "Gramme"
	UnitMillilitre Unit = "Millilitre"
	UnitBoite      Unit = "Boîte"
)

// Valid reports whether u is one of the declared units.
func (u Unit) Valid() bool {
	switch u {
	case UnitUnite, UnitLitre, UnitKilogramme, UnitGramme, UnitMillilitre, UnitBoite:
		return true
	}
	return false
}

// Etat describes the physical condition of a material.
type Etat string

const (
	EtatNeuf        Etat = "Neuf"
	EtatBon         Etat = "Bon"
	EtatAReparer    Etat = "À réparer"
	EtatHorsService Etat = "Hors service"
)

// Valid reports whether e is one of the declared conditions.
func (e Etat) Valid() bool {
	switch e {
	case EtatNeuf, EtatBon, EtatAReparer, EtatHorsService:
		return true
	}
	return false
}

// Material is a stocked inventory item (equipment or consumable).
type Material struct {
	ID          string `json:"id"`
	NumFiche    string `json:"num_fiche"` // user-facing inventory code, not guaranteed unique
	Name        string `json:"name"`
	Description string `json:"description"`
	Brand       string `json:"brand"`
	CategoryID  string `json:"categoryId"`
	Quantity    int    `json:"quantity"`
	Unit        Unit   `json:"unit"`
	Etat        Etat   `json:"etat"`
	Observation string `json:"observation"`
	// AlertThreshold is the quantity at or below which the material is
	// flagged as low stock in derived views.
	AlertThreshold   int       `json:"alertThreshold"`
	Location         string    `json:"location"`
	DateSaisie       time.Time `json:"date_saisie"`
	DateModification time.Time `json:"date_modification"`
}

// Validate checks the boundary invariants before a material enters the store.
func (m *Material) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("le nom du matériel est requis")
	}
	if m.CategoryID == "" {
		return fmt.Errorf("la catégorie est requise")
	}
	if m.Quantity < 0 {
		return fmt.Errorf("la quantité ne peut pas être négative")
	}
	if m.AlertThreshold < 0 {
		return fmt.Errorf("le seuil d'alerte ne peut pas être négatif")
	}
	if m.Unit != "" && !m.Unit.Valid() {
		return fmt.Errorf("unité inconnue: %s", m.Unit)
	}
	if m.Etat != "" && !m.Etat.Valid() {
		return fmt.Errorf("état inconnu: %s", m.Etat)
	}
	return nil
}

// LowStock reports whether the quantity has fallen to the alert threshold.
func (m *Material) LowStock() bool {
	return m.Quantity <= m.AlertThreshold
}
