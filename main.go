package main

import (
	"context"

	"github.com/Sayed24/Employee-Management-System/internal/bootstrap"
	"github.com/Sayed24/Employee-Management-System/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		panic(err)
	}

	logger.InfoLog(ctx, "Employee roster manager ready")
	if err := app.Run(); err != nil {
		logger.ErrorLog(ctx, "Server stopped: %v", err)
		panic(err)
	}
}
