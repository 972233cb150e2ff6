package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/smartlabo/labostock/internal/models"
	"github.com/smartlabo/labostock/internal/store"
)

// Required bulk-import columns. Optional: num_fiche, unit, location,
// brand, description, etat, observation.
var requiredColumns = []string{"name", "categoryName", "quantity", "alertThreshold"}

// RowError reports why one spreadsheet row was skipped. Row numbers are
// 1-based as displayed in the spreadsheet application.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarizes a bulk import: valid rows are applied even when
// others fail (partial-success semantics).
type ImportResult struct {
	Added   int        `json:"added"`
	Updated int        `json:"updated"`
	Errors  []RowError `json:"errors"`
}

// ImportMaterials parses a spreadsheet against the given snapshot and
// returns the actions to dispatch plus the per-row outcome. A row whose
// num_fiche matches an existing material updates it, otherwise a new
// material is created. Rows missing required fields or naming an unknown
// category are skipped and reported.
func ImportMaterials(r io.Reader, state models.AppState) ([]store.Action, ImportResult, error) {
	var result ImportResult

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, result, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, result, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, result, fmt.Errorf("empty workbook")
	}

	columns := make(map[string]int)
	for i, h := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[strings.ToLower(required)]; !ok {
			return nil, result, fmt.Errorf("missing required column %q", required)
		}
	}

	categoryByName := make(map[string]string, len(state.Categories))
	for _, c := range state.Categories {
		categoryByName[c.Name] = c.ID
	}
	ficheIndex := make(map[string]models.Material, len(state.Materials))
	for _, m := range state.Materials {
		if m.NumFiche != "" {
			if _, seen := ficheIndex[m.NumFiche]; !seen {
				ficheIndex[m.NumFiche] = m
			}
		}
	}

	cell := func(row []string, name string) string {
		i, ok := columns[strings.ToLower(name)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var actions []store.Action
	now := time.Now().UTC()

	for n, row := range rows[1:] {
		rowNum := n + 2

		name := cell(row, "name")
		categoryName := cell(row, "categoryName")
		if name == "" || categoryName == "" {
			result.Errors = append(result.Errors, RowError{rowNum, "champs requis manquants (name, categoryName)"})
			continue
		}
		categoryID, ok := categoryByName[categoryName]
		if !ok {
			result.Errors = append(result.Errors, RowError{rowNum, fmt.Sprintf("catégorie inconnue: %s", categoryName)})
			continue
		}
		quantity, err := strconv.Atoi(cell(row, "quantity"))
		if err != nil || quantity < 0 {
			result.Errors = append(result.Errors, RowError{rowNum, "quantité invalide"})
			continue
		}
		threshold, err := strconv.Atoi(cell(row, "alertThreshold"))
		if err != nil || threshold < 0 {
			result.Errors = append(result.Errors, RowError{rowNum, "seuil d'alerte invalide"})
			continue
		}
		unit := models.Unit(cell(row, "unit"))
		if unit == "" {
			unit = models.UnitUnite
		} else if !unit.Valid() {
			result.Errors = append(result.Errors, RowError{rowNum, fmt.Sprintf("unité inconnue: %s", unit)})
			continue
		}
		etat := models.Etat(cell(row, "etat"))
		if etat != "" && !etat.Valid() {
			result.Errors = append(result.Errors, RowError{rowNum, fmt.Sprintf("état inconnu: %s", etat)})
			continue
		}

		fiche := cell(row, "num_fiche")
		if existing, ok := ficheIndex[fiche]; fiche != "" && ok {
			updated := existing
			updated.Name = name
			updated.CategoryID = categoryID
			updated.Quantity = quantity
			updated.AlertThreshold = threshold
			updated.Unit = unit
			if etat != "" {
				updated.Etat = etat
			}
			if v := cell(row, "location"); v != "" {
				updated.Location = v
			}
			if v := cell(row, "brand"); v != "" {
				updated.Brand = v
			}
			if v := cell(row, "description"); v != "" {
				updated.Description = v
			}
			if v := cell(row, "observation"); v != "" {
				updated.Observation = v
			}
			updated.DateModification = now
			ficheIndex[fiche] = updated
			actions = append(actions, store.UpdateMaterial{Material: updated})
			result.Updated++
			continue
		}

		material := models.Material{
			ID:               uuid.NewString(),
			NumFiche:         fiche,
			Name:             name,
			CategoryID:       categoryID,
			Quantity:         quantity,
			AlertThreshold:   threshold,
			Unit:             unit,
			Etat:             etat,
			Location:         cell(row, "location"),
			Brand:            cell(row, "brand"),
			Description:      cell(row, "description"),
			Observation:      cell(row, "observation"),
			DateSaisie:       now,
			DateModification: now,
		}
		if fiche != "" {
			ficheIndex[fiche] = material
		}
		actions = append(actions, store.AddMaterial{Material: material})
		result.Added++
	}

	return actions, result, nil
}
