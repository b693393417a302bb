// Command server runs the call history HTTP API together with the in-process
// sync and trash-sweep scheduler.
//
// Flags:
//
//	-migrate  apply pending database migrations before serving
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/callhistory-backend/internal/app"
)

func main() {
	migrate := flag.Bool("migrate", false, "apply pending migrations before serving")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, app.Options{Migrate: *migrate}); err != nil {
		log.Fatalf("server: %v", err)
	}
}
