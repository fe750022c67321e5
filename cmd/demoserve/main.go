package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/Kush-Singh-26/demoserve/internal/config"
	"github.com/Kush-Singh-26/demoserve/internal/server"
)

func main() {
	cfg := config.Load(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	srv := server.New(cfg)
	if err := srv.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
