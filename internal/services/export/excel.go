// Package export renders the store's snapshot as spreadsheet files and
// implements the bulk material import.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/smartlabo/labostock/internal/models"
	"github.com/smartlabo/labostock/internal/store"
)

var materialHeaders = []string{
	"N° fiche", "Désignation", "Catégorie", "Quantité", "Unité",
	"Seuil d'alerte", "État", "Emplacement", "Marque", "Description",
	"Observation", "Date de saisie",
}

var movementHeaders = []string{
	"Date", "Matériel", "Type", "Quantité", "Notes",
}

func headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	return style
}

func writeHeaders(f *excelize.File, sheet string, headers []string) {
	style := headerStyle(f)
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}

// MaterialsWorkbook flattens the materials into one styled sheet with
// French column headers.
func MaterialsWorkbook(state models.AppState) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Matériels"
	f.SetSheetName("Sheet1", sheet)
	writeHeaders(f, sheet, materialHeaders)

	for i, m := range state.Materials {
		row := i + 2
		values := []interface{}{
			m.NumFiche,
			m.Name,
			store.CategoryName(state, m.CategoryID),
			m.Quantity,
			string(m.Unit),
			m.AlertThreshold,
			string(m.Etat),
			m.Location,
			m.Brand,
			m.Description,
			m.Observation,
			m.DateSaisie.Format("02/01/2006"),
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
		}
	}
	return f, nil
}

// MovementsWorkbook flattens the movement log into one styled sheet,
// newest first as stored.
func MovementsWorkbook(state models.AppState) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Mouvements"
	f.SetSheetName("Sheet1", sheet)
	writeHeaders(f, sheet, movementHeaders)

	for i, mv := range state.Movements {
		row := i + 2
		values := []interface{}{
			mv.Date.Format("02/01/2006 15:04"),
			mv.MaterialName,
			string(mv.Type),
			mv.Quantity,
			mv.Notes,
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), v)
		}
	}
	return f, nil
}

// FileTimestamp formats the suggested download name suffix.
func FileTimestamp(t time.Time) string {
	return t.Format("2006-01-02")
}
