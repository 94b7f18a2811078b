package main

import (
	"context"
	"log"
	"os"

	adminservice "ride-hail-admin/internal/admin-service"
	"ride-hail-admin/internal/config"
	"ride-hail-admin/internal/mylogger"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: app <admin-service>")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := mylogger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	switch os.Args[1] {
	case "admin-service":
		appLogger.Action("admin_service_starting").Info("Admin dashboard service starting up")
		if err := adminservice.Execute(context.Background(), appLogger, cfg); err != nil {
			appLogger.Error("admin service exited with error", err)
			os.Exit(1)
		}
	default:
		log.Fatalf("unknown service %q", os.Args[1])
	}
}
