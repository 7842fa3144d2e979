package main

import (
	"log"
	"net/http"

	"github.com/api-sage/bankist-ledger/internal/adapter/http/controller"
	"github.com/api-sage/bankist-ledger/internal/adapter/http/middleware"
	"github.com/api-sage/bankist-ledger/internal/adapter/http/router"
	"github.com/api-sage/bankist-ledger/internal/adapter/repository/memory"
	"github.com/api-sage/bankist-ledger/internal/config"
	"github.com/api-sage/bankist-ledger/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	directory, err := memory.NewAccountDirectory(memory.DefaultSeed())
	if err != nil {
		log.Fatalf("seed account directory: %v", err)
	}

	session := services.NewSession()
	ledgerService := services.NewLedgerService(directory, session)
	ledgerController := controller.NewLedgerController(ledgerService)

	mux := router.New(ledgerController, middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey))

	log.Printf("bankist ledger listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
