//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"flare-filter/internal/domain/port"
)

// FlareDetector — заглушка детектора для сборки без OpenCV.
type FlareDetector struct {
	params Params
}

// NewFlareDetector создаёт детектор-заглушку (без OpenCV).
func NewFlareDetector(params Params) *FlareDetector {
	return &FlareDetector{params: params}
}

// IsFlareLots возвращает ошибку, если сборка без тега gocv.
func (d *FlareDetector) IsFlareLots(ctx context.Context, imageData []byte) (bool, error) {
	_ = ctx
	_ = imageData
	return false, errors.New("gocv build tag is not enabled")
}

// IsFlareElliptical возвращает ошибку, если сборка без тега gocv.
func (d *FlareDetector) IsFlareElliptical(ctx context.Context, imageData []byte) (bool, error) {
	_ = ctx
	_ = imageData
	return false, errors.New("gocv build tag is not enabled")
}

// IsFlareRays возвращает ошибку, если сборка без тега gocv.
func (d *FlareDetector) IsFlareRays(ctx context.Context, imageData []byte) (int, error) {
	_ = ctx
	_ = imageData
	return 0, errors.New("gocv build tag is not enabled")
}

// IsFlareArcs возвращает ошибку, если сборка без тега gocv.
func (d *FlareDetector) IsFlareArcs(ctx context.Context, imageData []byte) (bool, error) {
	_ = ctx
	_ = imageData
	return false, errors.New("gocv build tag is not enabled")
}

// Проверка реализации интерфейса
var _ port.FlareDetector = (*FlareDetector)(nil)
