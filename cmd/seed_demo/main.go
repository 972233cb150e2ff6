package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/smartlabo/labostock/internal/config"
	"github.com/smartlabo/labostock/internal/database"
	"github.com/smartlabo/labostock/internal/models"
	"github.com/smartlabo/labostock/internal/storage"
	"github.com/smartlabo/labostock/internal/store"
)

func main() {
	fmt.Println("🌱 LaboStock Demo Data Seeder")
	fmt.Println("=============================")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	var adapter storage.Adapter
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := database.Connect(cfg.Database)
		if err != nil {
			log.Fatalf("❌ Failed to connect to database: %v", err)
		}
		defer db.Close()
		adapter, err = storage.NewPostgresStore(db)
		if err != nil {
			log.Fatalf("❌ Failed to init document storage: %v", err)
		}
	default:
		adapter, err = storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("❌ Failed to init file storage: %v", err)
		}
	}

	st := store.Open(adapter)
	state := st.State()
	fmt.Printf("✅ Storage opened (%s)\n\n", cfg.StorageDriver)

	if len(state.Movements) > 0 || len(state.Orders) > 0 {
		fmt.Printf("⚠️  Storage already has %d mouvements and %d commandes. Overwrite? (y/N): ",
			len(state.Movements), len(state.Orders))
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("❌ Aborted. Storage not modified.")
			return
		}
		fmt.Println("🗑️  Resetting to seed state...")
		st.Dispatch(store.ReplaceState{State: models.DefaultState()})
	}

	fmt.Println("📦 Creating demo data...")
	now := time.Now().UTC()

	// Staff
	fmt.Println("👥 Creating personnel...")
	staff := []models.Personnel{
		{ID: uuid.NewString(), Nom: "Mme Rakotomalala", Role: models.RoleTechnicien, Labo: "Chimie"},
		{ID: uuid.NewString(), Nom: "M. Andrianarison", Role: models.RoleEnseignant, Labo: "Physique"},
		{ID: uuid.NewString(), Nom: "Mme Rasoanaivo", Role: models.RoleEnseignant, Labo: "SVT"},
	}
	for _, p := range staff {
		st.Dispatch(store.AddPersonnel{Personnel: p})
		fmt.Printf("   ✓ %s (%s)\n", p.Nom, p.Role)
	}

	// Rooms and labs
	fmt.Println("🏫 Creating rooms and labs...")
	for _, name := range []string{"Salle 101", "Salle 102", "Amphithéâtre"} {
		st.Dispatch(store.AddRoom{Room: models.Room{ID: uuid.NewString(), Name: name}})
		fmt.Printf("   ✓ %s\n", name)
	}
	for _, name := range []string{"Labo Chimie", "Labo Physique", "Labo SVT"} {
		st.Dispatch(store.AddLab{Lab: models.Lab{ID: uuid.NewString(), Name: name}})
		fmt.Printf("   ✓ %s\n", name)
	}

	// Stock movements against the seed materials
	fmt.Println("🔄 Creating stock movements...")
	state = st.State()
	if len(state.Materials) >= 2 {
		st.Dispatch(store.UpdateStock{
			MaterialID: state.Materials[0].ID,
			Type:       models.MovementEntree,
			Quantity:   10,
			Notes:      "Livraison de rentrée",
		})
		st.Dispatch(store.UpdateStock{
			MaterialID: state.Materials[1].ID,
			Type:       models.MovementSortie,
			Quantity:   2,
			Notes:      "TP classe de 2nde",
		})
		fmt.Println("   ✓ 2 mouvements enregistrés")
	}

	// A pending order and a received one
	fmt.Println("🧾 Creating orders...")
	state = st.State()
	if len(state.Materials) > 0 {
		mat := state.Materials[0]
		pending := models.Order{
			ID:        uuid.NewString(),
			Supplier:  "Fournisseur Local",
			OrderDate: now,
			Status:    models.OrderEnAttente,
			Items:     []models.OrderItem{{MaterialID: mat.ID, MaterialName: mat.Name, Quantity: 20}},
		}
		st.Dispatch(store.AddOrder{Order: pending})

		received := pending
		received.ID = uuid.NewString()
		received.Supplier = "Sigma-Aldrich"
		st.Dispatch(store.AddOrder{Order: received})
		received.Status = models.OrderRecu
		st.Dispatch(store.UpdateOrder{Order: received})
		fmt.Println("   ✓ 1 commande en attente, 1 commande reçue")
	}

	// A reservation awaiting approval
	fmt.Println("📅 Creating reservation...")
	state = st.State()
	if len(state.Materials) > 0 && len(state.Personnel) > 0 {
		st.Dispatch(store.AddReservation{Reservation: models.Reservation{
			ID:            uuid.NewString(),
			PersonnelID:   state.Personnel[0].ID,
			RequestDate:   now,
			ScheduledDate: now.AddDate(0, 0, 7),
			Items:         []models.ReservationItem{{MaterialID: state.Materials[0].ID, Quantity: 6}},
			Notes:         "TP titrage acide-base",
		}})
		fmt.Println("   ✓ 1 réservation en attente")
	}

	// Institutional settings shown on reports
	st.Dispatch(store.UpdateSettings{Settings: models.Settings{
		SchoolName: "Lycée Jules Ferry",
		Region:     "Analamanga",
	}})

	state = st.State()
	fmt.Println()
	fmt.Printf("✅ Done: %d matériels, %d mouvements, %d commandes, %d réservations, %d personnels\n",
		len(state.Materials), len(state.Movements), len(state.Orders),
		len(state.Reservations), len(state.Personnel))
}
