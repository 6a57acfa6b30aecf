package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/acmays/shelter-dashboard/config"
	"github.com/acmays/shelter-dashboard/controllers"
	"github.com/acmays/shelter-dashboard/database"
	"github.com/acmays/shelter-dashboard/dataset"
	auditmiddleware "github.com/acmays/shelter-dashboard/middleware"
	"github.com/acmays/shelter-dashboard/repositories"
	"github.com/acmays/shelter-dashboard/services"
)

func main() {
	importCSV := flag.Bool("import", false, "import the CSV dataset into the document store and exit")
	flag.Parse()

	// Load environment variables from .env file, if present
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	// The dashboard keeps working from the CSV dataset even when the
	// document store is unreachable, so a failed connect is not fatal
	mongoUp := true
	if err := database.InitializeDatabase(cfg.Mongo.URI(), cfg.Mongo.Database, cfg.Mongo.Collection); err != nil {
		log.Printf("⚠️  Document store unavailable, record management disabled: %v", err)
		mongoUp = false
	}
	defer database.Close()

	// Initialize repositories
	animals := database.GetCollection(cfg.Mongo.Database, cfg.Mongo.Collection)
	audit := database.GetCollection(cfg.Mongo.Database, repositories.AuditCollection)
	repos := repositories.NewRepositories(animals, audit)

	// Load the working dataset from the shelter outcomes export
	working := dataset.Prepare(dataset.Load(cfg.CSVPath))

	// Initialize services
	srvs := services.NewServices(repos, working)

	if *importCSV {
		if !mongoUp {
			log.Fatal("Cannot import: document store is unavailable")
		}
		runImport(srvs, cfg.CSVPath)
		return
	}

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs)

	// Set up router
	r, err := setupRouter(ctrl, repos)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	fmt.Printf("🐾 Shelter dashboard starting on port %s\n", cfg.Port)
	fmt.Printf("📂 Visit: http://localhost:%s\n", cfg.Port)
	fmt.Printf("📊 Dataset: %d animals from %s\n", len(working), cfg.CSVPath)

	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// runImport seeds the document store from the CSV export
func runImport(srvs *services.Services, path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	inserted, err := srvs.Animal.ImportCSV(ctx, path)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	fmt.Printf("✅ Imported %d records from %s\n", inserted, path)
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, repos *repositories.Repositories) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	// Session middleware, used to remember the last filter state
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "shelter_session",
		Gclifetime:     3600, // Session lifetime in seconds
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// Audit trail for mutating requests
	r.Use(auditmiddleware.AuditLogger(repos.Audit))

	// Dashboard routes
	r.Get("/", ctrl.Dashboard.Index)
	r.Get("/api/locations", ctrl.Dashboard.Locations)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "shelter-dashboard"}`)
	})

	// Record management routes
	r.Route("/animals", func(r chi.Router) {
		r.Get("/", ctrl.Animals.Index)
		r.Post("/", ctrl.Animals.Create)
		r.Get("/{id}/edit", ctrl.Animals.Edit)
		r.Post("/{id}", ctrl.Animals.Update)
		r.Post("/{id}/delete", ctrl.Animals.Delete)
	})

	return r, nil
}
