package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/smartlabo/labostock/internal/models"
	"github.com/smartlabo/labostock/internal/services/export"
	"github.com/smartlabo/labostock/internal/services/printer"
)

const maxImportSize = 10 << 20 // 10MB

// inventoryReport streams the printable materials PDF, optionally
// filtered by ?category=
func (r *Router) inventoryReport(w http.ResponseWriter, req *http.Request) {
	pdf, err := printer.InventoryReport(r.store.State(), req.URL.Query().Get("category"))
	if err != nil {
		log.Printf("⚠️ Report generation failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Échec de la génération du rapport")
		return
	}
	servePDF(w, "inventaire", pdf)
}

// movementsReport streams the printable movement log PDF for the
// ?from=/?to= date range
func (r *Router) movementsReport(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()
	from, to, err := parseDateRange(q.Get("from"), q.Get("to"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Format de date invalide (AAAA-MM-JJ attendu)")
		return
	}
	pdf, err := printer.MovementsReport(r.store.State(), from, to)
	if err != nil {
		log.Printf("⚠️ Report generation failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Échec de la génération du rapport")
		return
	}
	servePDF(w, "mouvements", pdf)
}

// materialLabels streams a QR label sheet, optionally for one ?category=
func (r *Router) materialLabels(w http.ResponseWriter, req *http.Request) {
	state := r.store.State()
	categoryID := req.URL.Query().Get("category")
	materials := []models.Material{}
	for _, m := range state.Materials {
		if categoryID == "" || m.CategoryID == categoryID {
			materials = append(materials, m)
		}
	}
	pdf, err := printer.MaterialLabels(materials, printer.DefaultLabelConfig())
	if err != nil {
		log.Printf("⚠️ Label generation failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Échec de la génération des étiquettes")
		return
	}
	servePDF(w, "etiquettes", pdf)
}

// exportMaterials streams the materials spreadsheet
func (r *Router) exportMaterials(w http.ResponseWriter, req *http.Request) {
	f, err := export.MaterialsWorkbook(r.store.State())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Échec de l'export")
		return
	}
	serveWorkbook(w, "materiels", func(out io.Writer) (int64, error) { return f.WriteTo(out) })
}

// exportMovements streams the movement log spreadsheet
func (r *Router) exportMovements(w http.ResponseWriter, req *http.Request) {
	f, err := export.MovementsWorkbook(r.store.State())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Échec de l'export")
		return
	}
	serveWorkbook(w, "mouvements", func(out io.Writer) (int64, error) { return f.WriteTo(out) })
}

// importMaterials applies a bulk material spreadsheet with partial-success
// semantics and returns the per-row outcome summary
func (r *Router) importMaterials(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseMultipartForm(maxImportSize); err != nil {
		respondError(w, http.StatusBadRequest, "Fichier manquant ou trop volumineux")
		return
	}
	file, _, err := req.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Le champ 'file' est requis")
		return
	}
	defer file.Close()

	actions, result, err := export.ImportMaterials(file, r.store.State())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, action := range actions {
		r.store.Dispatch(action)
	}
	log.Printf("📥 Import: %d ajoutés, %d mis à jour, %d erreurs", result.Added, result.Updated, len(result.Errors))
	respondJSON(w, http.StatusOK, result)
}

func servePDF(w http.ResponseWriter, name string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s-%s.pdf", name, export.FileTimestamp(time.Now())))
	w.Write(data)
}

func serveWorkbook(w http.ResponseWriter, name string, writeTo func(io.Writer) (int64, error)) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s-%s.xlsx", name, export.FileTimestamp(time.Now())))
	if _, err := writeTo(w); err != nil {
		log.Printf("⚠️ Export stream failed: %v", err)
	}
}
