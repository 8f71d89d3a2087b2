package port

import (
	"context"

	"flare-filter/internal/domain/entity"
)

// ResultRepository интерфейс хранилища результатов пакетной классификации.
// Сохраняет частичные результаты: отказ на одном изображении не теряет
// итоги уже обработанных.
type ResultRepository interface {
	// Save сохраняет результат классификации изображения по его пути
	Save(ctx context.Context, path string, result *entity.ClassificationResult) error

	// Get возвращает результат по пути; ok == false, если результата нет
	Get(ctx context.Context, path string) (*entity.ClassificationResult, bool)

	// All возвращает все сохранённые результаты по путям
	All(ctx context.Context) map[string]*entity.ClassificationResult
}
