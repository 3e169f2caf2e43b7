package main

import (
	"github.com/joho/godotenv"

	"github.com/SEP491/FitBridge-Web-sub001/internal/config"
	"github.com/SEP491/FitBridge-Web-sub001/internal/handler"
	"github.com/SEP491/FitBridge-Web-sub001/internal/infra/orderapi"
	"github.com/SEP491/FitBridge-Web-sub001/internal/server"
	"github.com/SEP491/FitBridge-Web-sub001/internal/usecase"
)

func main() {
	// .env is for local development only
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	orders := orderapi.NewClient(cfg.OrderAPIBaseURL, cfg.OrderAPIToken, cfg.OrderAPITimeout)

	sessions := usecase.NewSessionManager(orders, cfg.DefaultPageSize)

	orderH := handler.NewOrderHandler(sessions, cfg.DefaultPageSize)

	e := server.New(cfg, orderH)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(e, addr); err != nil {
		panic(err)
	}
}
