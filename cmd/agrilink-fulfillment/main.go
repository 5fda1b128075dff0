package main

import (
	"context"
	"os/signal"
	"syscall"

	"agrilink-fulfillment/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container := app.MustBuildContainer(ctx)

	// the release sweep shares the in-memory stores, so it runs in-process
	go app.NewWorkerRunner().MustRun(container)

	app.MustRun(container)
}
