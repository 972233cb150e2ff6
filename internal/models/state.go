package models

import "time"

// AppState is the aggregate document owned by the store. It is persisted as
// a single JSON document and only ever replaced wholesale, never mutated in
// place.
type AppState struct {
	Materials    []Material    `json:"materials"`
	Categories   []Category    `json:"categories"`
	Movements    []Movement    `json:"movements"`
	Orders       []Order       `json:"orders"`
	Reservations []Reservation `json:"reservations"`
	Personnel    []Personnel   `json:"personnel"`
	Rooms        []Room        `json:"rooms"`
	Labs         []Lab         `json:"labs"`
	Settings     Settings      `json:"configuration"`
}

// Seed category ids, referenced by the starter materials.
const (
	SeedCategoryPhysique      = "cat-materiel-physique"
	SeedCategoryChimie        = "cat-materiel-chimie"
	SeedCategoryProduitChimie = "cat-produit-chimique"
	SeedCategorySVT           = "cat-materiel-svt"
	SeedCategoryProduitSVT    = "cat-produit-svt"
	SeedCategoryAutre         = "cat-autre"
)

// DefaultState returns the seed state used when storage is empty or corrupt.
// It is not re-applied on later boots.
func DefaultState() AppState {
	now := time.Now().UTC()
	return AppState{
		Categories: []Category{
			{ID: SeedCategoryPhysique, Name: "Matériel Physique"},
			{ID: SeedCategoryChimie, Name: "Matériel Chimie"},
			{ID: SeedCategoryProduitChimie, Name: "Produit Chimique"},
			{ID: SeedCategorySVT, Name: "Matériel SVT"},
			{ID: SeedCategoryProduitSVT, Name: "Produit SVT"},
			{ID: SeedCategoryAutre, Name: "Autre"},
		},
		Materials: []Material{
			{
				ID: "mat-becher-250", NumFiche: "CHM-001", Name: "Bécher 250ml",
				Description: "Verrerie de laboratoire", Brand: "Pyrex",
				CategoryID: SeedCategoryChimie, Quantity: 50, AlertThreshold: 10,
				Unit: UnitUnite, Etat: EtatBon, Location: "Étagère A1",
				DateSaisie: now, DateModification: now,
			},
			{
				ID: "mat-multimetre", NumFiche: "PHY-001", Name: "Multimètre",
				Description: "Appareil de mesure électrique", Brand: "Fluke",
				CategoryID: SeedCategoryPhysique, Quantity: 15, AlertThreshold: 5,
				Unit: UnitUnite, Etat: EtatNeuf, Location: "Armoire B2",
				DateSaisie: now, DateModification: now,
			},
			{
				ID: "mat-hcl-1m", NumFiche: "PRC-001", Name: "Acide Chlorhydrique",
				Description: "Solution 1M", Brand: "Sigma-Aldrich",
				CategoryID: SeedCategoryProduitChimie, Quantity: 5, AlertThreshold: 2,
				Unit: UnitLitre, Etat: EtatBon, Location: "Hotte",
				DateSaisie: now, DateModification: now,
			},
			{
				ID: "mat-microscope", NumFiche: "SVT-001", Name: "Microscope",
				Description: "Microscope optique", Brand: "Olympus",
				CategoryID: SeedCategorySVT, Quantity: 12, AlertThreshold: 3,
				Unit: UnitUnite, Etat: EtatBon, Location: "Table 3",
				DateSaisie: now, DateModification: now,
			},
		},
		Movements:    []Movement{},
		Orders:       []Order{},
		Reservations: []Reservation{},
		Personnel:    []Personnel{},
		Rooms:        []Room{},
		Labs:         []Lab{},
		Settings:     Settings{},
	}
}
