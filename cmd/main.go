package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"flare-filter/config"
	app "flare-filter/internal/application"
	"flare-filter/internal/container"
	"flare-filter/internal/infrastructure/storage"
	"flare-filter/internal/infrastructure/vision"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	paths := os.Args[1:]
	if len(paths) == 0 {
		log.Fatal("Usage: flare-filter <image> [image ...]")
	}

	// Собираем детектор и сервисы приложения
	detector := vision.NewFlareDetector(cfg.Detection)
	results := storage.NewMemoryResultRepository()
	appContainer := container.New(detector, results)

	images := make([]app.BatchImage, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Failed to read %s: %v", path, err)
		}
		images = append(images, app.BatchImage{Path: path, Data: data})
	}

	items, summary, err := appContainer.Classifier.ClassifyBatch(context.Background(), images)
	if err != nil {
		log.Fatalf("Classification error: %v", err)
	}

	// Для каждого изображения печатаем "1" (блик) или "0" в порядке входа
	for _, item := range items {
		if item.Err != nil {
			log.Printf("Failed to classify %s: %v", item.Path, item.Err)
			fmt.Println("0")
			continue
		}
		fmt.Println(item.Result.Label())
	}

	log.Printf("flares - %d, good - %d, failed - %d", summary.Flares, summary.Good, summary.Failed)
}
