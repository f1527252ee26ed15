package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/northflank-guides/go-with-postgres/internal/api"
	"github.com/northflank-guides/go-with-postgres/internal/config"
	"github.com/northflank-guides/go-with-postgres/internal/db"
)

const addr = "0.0.0.0:8080"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := db.Connect(ctx, config.Load().DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.EnsureTable(ctx); err != nil {
		log.Fatal(err)
	}

	if err := api.NewServer(db).StartServer(ctx, addr); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Server stopped.")
}
