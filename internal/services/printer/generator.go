package printer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/smartlabo/labostock/internal/models"
	"github.com/smartlabo/labostock/internal/store"
)

// LabelConfig holds the grid layout for QR label sheets.
type LabelConfig struct {
	Cols       int     `json:"cols"`
	Rows       int     `json:"rows"`
	MarginTop  float64 `json:"marginTop"`
	MarginLeft float64 `json:"marginLeft"`
	GapX       float64 `json:"gapX"`
	GapY       float64 `json:"gapY"`
}

// DefaultLabelConfig is a 3x8 sheet matching common A4 label paper.
func DefaultLabelConfig() LabelConfig {
	return LabelConfig{Cols: 3, Rows: 8, MarginTop: 10, MarginLeft: 7, GapX: 2.5, GapY: 0}
}

// newReport starts an A4 page with the institutional title block: school
// name, region and generation date.
func newReport(settings models.Settings, title string) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	school := settings.SchoolName
	if school == "" {
		school = "Laboratoire scolaire"
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 7, tr(school), "", 1, "C", false, 0, "")
	if settings.Region != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 5, tr(settings.Region), "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Généré le %s", time.Now().Format("02/01/2006 15:04"))), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	return pdf, tr
}

func tableHeader(pdf *gofpdf.Fpdf, tr func(string) string, widths []float64, headers []string) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
}

// InventoryReport renders the materials table, optionally filtered to one
// category, as a printable PDF.
func InventoryReport(state models.AppState, categoryID string) ([]byte, error) {
	title := "Inventaire du matériel"
	if categoryID != "" {
		title = fmt.Sprintf("Inventaire: %s", store.CategoryName(state, categoryID))
	}
	pdf, tr := newReport(state.Settings, title)

	widths := []float64{22, 48, 32, 16, 20, 22, 30}
	headers := []string{"N° fiche", "Désignation", "Catégorie", "Qté", "Unité", "État", "Emplacement"}
	tableHeader(pdf, tr, widths, headers)

	for _, m := range state.Materials {
		if categoryID != "" && m.CategoryID != categoryID {
			continue
		}
		if pdf.GetY() > 270 {
			pdf.AddPage()
			tableHeader(pdf, tr, widths, headers)
		}
		cells := []string{
			m.NumFiche,
			m.Name,
			store.CategoryName(state, m.CategoryID),
			fmt.Sprintf("%d", m.Quantity),
			string(m.Unit),
			string(m.Etat),
			m.Location,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render inventory report: %w", err)
	}
	return buf.Bytes(), nil
}

// MovementsReport renders the movement log, optionally restricted to a
// date range (zero times are open-ended), as a printable PDF.
func MovementsReport(state models.AppState, from, to time.Time) ([]byte, error) {
	pdf, tr := newReport(state.Settings, "Journal des mouvements de stock")

	widths := []float64{28, 52, 26, 16, 68}
	headers := []string{"Date", "Matériel", "Type", "Qté", "Notes"}
	tableHeader(pdf, tr, widths, headers)

	for _, mv := range state.Movements {
		if !from.IsZero() && mv.Date.Before(from) {
			continue
		}
		if !to.IsZero() && mv.Date.After(to) {
			continue
		}
		if pdf.GetY() > 270 {
			pdf.AddPage()
			tableHeader(pdf, tr, widths, headers)
		}
		cells := []string{
			mv.Date.Format("02/01/2006 15:04"),
			mv.MaterialName,
			string(mv.Type),
			fmt.Sprintf("%d", mv.Quantity),
			mv.Notes,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render movements report: %w", err)
	}
	return buf.Bytes(), nil
}

// MaterialLabels creates a sheet of QR shelf labels, one per material. The
// QR payload carries the opaque id so a scan resolves the live record; the
// printed text shows the fiche code and name.
func MaterialLabels(materials []models.Material, cfg LabelConfig) ([]byte, error) {
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		cfg = DefaultLabelConfig()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Arial", "B", 10)

	pageWidth, pageHeight := 210.0, 297.0
	totalGapX := float64(cfg.Cols-1) * cfg.GapX
	totalGapY := float64(cfg.Rows-1) * cfg.GapY
	availW := pageWidth - (cfg.MarginLeft * 2)
	availH := pageHeight - (cfg.MarginTop * 2)
	labelW := (availW - totalGapX) / float64(cfg.Cols)
	labelH := (availH - totalGapY) / float64(cfg.Rows)

	labelsPerPage := cfg.Cols * cfg.Rows

	for i, m := range materials {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		indexOnPage := i % labelsPerPage
		col := indexOnPage % cfg.Cols
		row := indexOnPage / cfg.Cols

		x := cfg.MarginLeft + float64(col)*(labelW+cfg.GapX)
		y := cfg.MarginTop + float64(row)*(labelH+cfg.GapY)

		qrPng, err := qrcode.Encode(fmt.Sprintf("LABO/%s", m.ID), qrcode.Low, 256)
		if err != nil {
			return nil, fmt.Errorf("encode label for %s: %w", m.ID, err)
		}

		imgName := fmt.Sprintf("qr_%d", i)
		imgOptions := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		_ = pdf.RegisterImageOptionsReader(imgName, imgOptions, bytes.NewReader(qrPng))

		qrSize := labelH * 0.6
		if qrSize > labelW {
			qrSize = labelW * 0.9
		}
		qrX := x + (labelW-qrSize)/2
		qrY := y + (labelH-qrSize)/2 - 3

		pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, imgOptions, 0, "")

		pdf.SetXY(x, y+labelH-10)
		pdf.SetFontSize(8)
		pdf.CellFormat(labelW, 4, tr(m.NumFiche), "", 0, "C", false, 0, "")
		pdf.SetXY(x, y+labelH-6)
		pdf.SetFontSize(7)
		pdf.CellFormat(labelW, 4, tr(m.Name), "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render labels: %w", err)
	}
	return buf.Bytes(), nil
}
