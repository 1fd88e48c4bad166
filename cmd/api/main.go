package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/Kishansuresh/pds-track/internal/modules/ledger"
	"github.com/Kishansuresh/pds-track/internal/modules/ops"
	"github.com/Kishansuresh/pds-track/internal/modules/report"
	"github.com/Kishansuresh/pds-track/internal/modules/shipment"
	"github.com/Kishansuresh/pds-track/internal/modules/stock"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Stock ───────────────────────────────────────────────
	warehouseRepo := stock.NewWarehousePostgresRepository(db)
	shopRepo := stock.NewShopPostgresRepository(db)
	stockService := stock.NewService(warehouseRepo, shopRepo)
	stock.NewHandler(stockService).RegisterRoutes(router)

	// ── Shipments ───────────────────────────────────────────
	tracker := shipment.NewTracker(shipment.DefaultTransitDuration, shipment.DefaultCompleteDuration)
	shipmentRepo := shipment.NewPostgresRepository(db)
	shipmentService := shipment.NewService(shipmentRepo)
	shipment.NewHandler(shipmentService, tracker).RegisterRoutes(router)

	// ── Transaction Ledger ──────────────────────────────────
	ledgerRepo := ledger.NewPostgresRepository(db)
	ledgerService := ledger.NewService(ledgerRepo)
	ledger.NewHandler(ledgerService).RegisterRoutes(router)

	// ── Complaints ──────────────────────────────────────────
	reportRepo := report.NewPostgresRepository(db)
	reportService := report.NewService(reportRepo)
	report.NewHandler(reportService).RegisterRoutes(router)

	// ── Dashboard Driver ────────────────────────────────────
	driver := ops.NewDriver(stockService, shipmentService, ledgerService, reportService, tracker)
	if err := driver.Refresh(context.Background()); err != nil {
		log.Fatal(err)
	}
	ops.NewHandler(driver).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("PDS Track API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
