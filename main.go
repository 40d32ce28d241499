package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"checkout_bot/application/checkout"
	"checkout_bot/infrastructure/browser"
	"checkout_bot/infrastructure/config"
	"checkout_bot/infrastructure/logging"
	"checkout_bot/presentation/httpapi"
)

func main() {
	// .env file is optional
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.Setup(cfg.InstanceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	launcher, err := browser.NewLauncher(browser.Options{
		ActionTimeout: cfg.ActionTimeout,
		MaxSessions:   cfg.MaxSessions,
		Headless:      cfg.Headless,
	}, log)
	if err != nil {
		log.Fatalf("Failed to start browser driver: %v", err)
	}
	defer launcher.Close()

	orch := checkout.NewOrchestrator(launcher, cfg.CheckoutURL, log)
	router := httpapi.NewRouter(orch, cfg.RequestsPerSec, log)

	log.Infof("listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
