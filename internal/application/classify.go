package app

import (
	"context"
	"errors"
	"log"

	"flare-filter/internal/domain/entity"
	"flare-filter/internal/domain/port"
)

// ClassifierService прогоняет изображение через эвристики в фиксированном
// порядке: общая засветка → круглые пятна → лучи. Первая сработавшая
// эвристика останавливает проверку, остальные не запускаются.
// Порядок выбран от дешёвой и уверенной проверки к дорогой.
type ClassifierService struct {
	detector port.FlareDetector
	results  port.ResultRepository
}

// BatchImage — входное изображение пакетной классификации.
type BatchImage struct {
	Path string
	Data []byte
}

// BatchItem — итог классификации одного изображения в пакете.
type BatchItem struct {
	Path   string
	Result *entity.ClassificationResult
	Err    error
}

// NewClassifierService создаёт сервис классификации бликов.
func NewClassifierService(detector port.FlareDetector, results port.ResultRepository) *ClassifierService {
	return &ClassifierService{
		detector: detector,
		results:  results,
	}
}

// Classify классифицирует одно изображение. Ошибка отдельной эвристики —
// неубедительный результат: логируем и переходим к следующей, а не
// прерываем проверку. Экспериментальная эвристика дуг не вызывается.
func (s *ClassifierService) Classify(ctx context.Context, imageData []byte) (*entity.ClassificationResult, error) {
	if s.detector == nil {
		return nil, errors.New("detector is not configured")
	}

	failed := 0

	lots, err := s.detector.IsFlareLots(ctx, imageData)
	if err != nil {
		log.Printf("lots-of-light heuristic failed: %v", err)
		failed++
	} else if lots {
		return &entity.ClassificationResult{IsFlare: true, Heuristic: entity.HeuristicLotsOfLight}, nil
	}

	elliptical, err := s.detector.IsFlareElliptical(ctx, imageData)
	if err != nil {
		log.Printf("elliptical heuristic failed: %v", err)
		failed++
	} else if elliptical {
		return &entity.ClassificationResult{IsFlare: true, Heuristic: entity.HeuristicElliptical}, nil
	}

	rays, err := s.detector.IsFlareRays(ctx, imageData)
	if err != nil {
		log.Printf("rays heuristic failed: %v", err)
		failed++
	} else if rays > 0 {
		return &entity.ClassificationResult{IsFlare: true, Heuristic: entity.HeuristicRays, RayCount: rays}, nil
	}

	if failed == 3 {
		return nil, errors.New("all heuristics failed")
	}

	return &entity.ClassificationResult{}, nil
}

// ClassifyBatch классифицирует изображения по очереди, сохраняя частичные
// результаты: отказ на одном изображении не теряет итоги остальных.
func (s *ClassifierService) ClassifyBatch(ctx context.Context, images []BatchImage) ([]BatchItem, entity.BatchSummary, error) {
	if s.detector == nil {
		return nil, entity.BatchSummary{}, errors.New("detector is not configured")
	}

	items := make([]BatchItem, 0, len(images))
	var summary entity.BatchSummary

	for _, img := range images {
		result, err := s.Classify(ctx, img.Data)
		if err != nil {
			summary.Failed++
			items = append(items, BatchItem{Path: img.Path, Err: err})
			continue
		}

		if s.results != nil {
			if err := s.results.Save(ctx, img.Path, result); err != nil {
				log.Printf("failed to save result for %s: %v", img.Path, err)
			}
		}

		if result.IsFlare {
			summary.Flares++
		} else {
			summary.Good++
		}
		items = append(items, BatchItem{Path: img.Path, Result: result})
	}

	return items, summary, nil
}
