package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/nimeshabuddhika/churn-prediction-api/pkg"
	"github.com/nimeshabuddhika/churn-prediction-api/services/churn-api/app"
	"go.uber.org/zap"
)

// @title           Customer Churn Prediction API
// @version         1.0
// @description     Scores customer profiles with the offline-trained churn model.
// @BasePath        /
func main() {
	// Initialize logger
	pkg.InitLogger()
	logger := pkg.Logger

	// SIGINT/SIGTERM cancel ctx and start a graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.NewApp(logger)
	if err != nil {
		logger.Fatal("failed to initialize app", zap.Error(err))
	}

	if err = a.Run(ctx); err != nil {
		a.Logger.Error("server stopped with error", zap.Error(err))
	}

	// Flush logs before exit
	_ = a.Logger.Sync()
	a.Close()
}
