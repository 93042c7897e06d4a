package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/voltara/merchant-api/internal/commission"
	commissionStore "github.com/voltara/merchant-api/internal/commission/store"
	"github.com/voltara/merchant-api/internal/config"
	"github.com/voltara/merchant-api/internal/database"
	"github.com/voltara/merchant-api/internal/employee"
	employeeStore "github.com/voltara/merchant-api/internal/employee/store"
	"github.com/voltara/merchant-api/internal/gateway"
	portalHttp "github.com/voltara/merchant-api/internal/http"
	commissionHandler "github.com/voltara/merchant-api/internal/http/commission"
	employeeHandler "github.com/voltara/merchant-api/internal/http/employee"
	invoiceHandler "github.com/voltara/merchant-api/internal/http/invoice"
	"github.com/voltara/merchant-api/internal/invoice"
	invoiceStore "github.com/voltara/merchant-api/internal/invoice/store"
	"github.com/voltara/merchant-api/internal/upload"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		pixGateway  = gateway.NewPixClient(cfg.Gateway.PixBaseURL, cfg.Gateway.APIKey, cfg.Gateway.Timeout)
		cardGateway = gateway.NewCardClient(cfg.Gateway.CardBaseURL, cfg.Gateway.APIKey, cfg.Gateway.Timeout)
		uploads     = upload.NewStore(cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
	)

	var (
		commissionService = commission.NewService(commissionStore.New(db))
		invoiceService    = invoice.NewService(invoiceStore.New(db), pixGateway, cardGateway)
		employeeService   = employee.NewService(employeeStore.New(db))
	)

	var (
		commissionH = commissionHandler.NewHandler(commissionService, uploads)
		invoiceH    = invoiceHandler.NewHandler(invoiceService)
		employeeH   = employeeHandler.NewHandler(employeeService)
	)

	router := portalHttp.New(cfg.Auth.JWTSecret, cfg.Gateway.WebhookSecret, commissionH, invoiceH, employeeH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
