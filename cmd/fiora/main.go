package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"fiora/internal/app"
	"fiora/internal/config"
	"fiora/internal/logger"

	"fyne.io/fyne/v2"
)

func main() {
	cfg, cfgErr := config.Load()

	appLogger := logger.NewConsoleLogger(cfg.Log.Level)
	if cfgErr != nil {
		appLogger.Warning("main", "config load failed, using defaults", map[string]interface{}{
			"error": cfgErr.Error(),
		})
	}

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	setupGracefulShutdown(application, appLogger)

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	log.Println("Application terminated successfully")
}

// setupGracefulShutdown routes SIGINT/SIGTERM through the same quit path
// as the window close button.
func setupGracefulShutdown(application *app.Application, appLogger logger.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		appLogger.Info("main", "system signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		fyne.Do(application.Quit)
	}()
}
