package main

import (
	"time"

	"tracekit/internal/classifier"
	"tracekit/internal/config"
	"tracekit/internal/database"
	"tracekit/internal/logging"
	"tracekit/internal/models"
	"tracekit/internal/router"
	"tracekit/internal/services"

	"go.uber.org/zap"
)

func main() {
	log, err := logging.Init(logging.DefaultOptions("."))
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	database.Init(log)

	letters, err := models.LoadLetterSet(config.Conf.Letters.Path)
	if err != nil {
		log.Fatal("Failed to load letter definitions", zap.Error(err))
	}
	log.Info("Letter set loaded", zap.Int("letters", len(letters.Letters)))

	var clf classifier.Classifier
	if url := config.Conf.Classifier.URL; url != "" {
		timeout := time.Duration(config.Conf.Classifier.TimeoutMs) * time.Millisecond
		clf = classifier.NewHTTPClassifier(url, timeout)
		log.Info("Using external character classifier", zap.String("url", url))
	} else {
		log.Info("No classifier configured, predictions will be placeholders")
	}

	services.NewRetention(log).Start()

	r := router.Setup(log, letters, clf)

	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
