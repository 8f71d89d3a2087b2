package storage

import (
	"context"
	"sync"

	"flare-filter/internal/domain/entity"
	"flare-filter/internal/domain/port"
)

// MemoryResultRepository in-memory хранилище результатов классификации
type MemoryResultRepository struct {
	mu      sync.RWMutex
	results map[string]*entity.ClassificationResult
}

// NewMemoryResultRepository создаёт новое in-memory хранилище
func NewMemoryResultRepository() *MemoryResultRepository {
	return &MemoryResultRepository{
		results: make(map[string]*entity.ClassificationResult),
	}
}

// Save сохраняет результат классификации изображения по его пути
func (r *MemoryResultRepository) Save(ctx context.Context, path string, result *entity.ClassificationResult) error {
	r.mu.Lock()
	r.results[path] = result
	r.mu.Unlock()

	return nil
}

// Get возвращает результат по пути; ok == false, если результата нет
func (r *MemoryResultRepository) Get(ctx context.Context, path string) (*entity.ClassificationResult, bool) {
	r.mu.RLock()
	result, exists := r.results[path]
	r.mu.RUnlock()

	return result, exists
}

// All возвращает все сохранённые результаты по путям
func (r *MemoryResultRepository) All(ctx context.Context) map[string]*entity.ClassificationResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*entity.ClassificationResult, len(r.results))
	for path, result := range r.results {
		out[path] = result
	}

	return out
}

// Проверка реализации интерфейса
var _ port.ResultRepository = (*MemoryResultRepository)(nil)
