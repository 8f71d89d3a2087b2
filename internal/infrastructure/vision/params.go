package vision

// Params — неизменяемый набор порогов детектора бликов.
// Значения по умолчанию откалиброваны на дневных уличных фотографиях;
// меняются только через конфигурацию, не в рантайме.
type Params struct {
	// Эвристика общей засветки
	LotsCutoff   float32 // порог бинаризации (почти белые пиксели)
	LotsMaxRatio float64 // доля белых пикселей, выше которой кадр считается засвеченным

	// Эвристика круглых пятен
	EllipticalCutoff   float32 // порог бинаризации
	BlobMinArea        float64 // минимальная площадь пятна, px²
	BlobMinCircularity float64 // 4·π·S / P²
	BlobMinConvexity   float64 // площадь / площадь выпуклой оболочки
	BlobMinInertia     float64 // отношение малой оси к большой

	// Эвристика лучей
	RaysCutoff      float32 // порог бинаризации
	RaysFaintCutoff float32 // смягчённый порог для тёмных кадров
	RaysFaintRatio  float64 // доля белого, ниже которой включается смягчение
	BandMin         float64 // нижняя граница диагонального сектора, градусы
	BandMax         float64 // верхняя граница диагонального сектора, градусы
	FaintBandMin    float64 // нижняя граница сектора при смягчении
	FaintBandMax    float64 // верхняя граница сектора при смягчении
	HoughVotes      int     // минимум голосов аккумулятора
	HoughMinLength  float32 // минимальная длина отрезка, px
	HoughMaxGap     float32 // максимальный разрыв внутри отрезка, px

	// Экспериментальная эвристика дуг
	ArcsCutoff          float32 // порог бинаризации после размытия
	ArcsBlurSize        int     // сторона ядра усредняющего размытия
	ArcsErodeIterations int     // число итераций эрозии
	ArcsInverseRatio    float64 // обратное разрешение аккумулятора (dp)
	ArcsMinCenterDist   float64 // минимальное расстояние между центрами

	DebugDir string // каталог для отладочных артефактов; пусто — не писать
}

// DefaultParams возвращает пороги по умолчанию.
func DefaultParams() Params {
	return Params{
		LotsCutoff:   240,
		LotsMaxRatio: 0.15,

		EllipticalCutoff:   220,
		BlobMinArea:        100,
		BlobMinCircularity: 0.5,
		BlobMinConvexity:   0.95,
		BlobMinInertia:     0.2,

		RaysCutoff:      220,
		RaysFaintCutoff: 180,
		RaysFaintRatio:  0.01,
		BandMin:         30,
		BandMax:         60,
		FaintBandMin:    15,
		FaintBandMax:    75,
		HoughVotes:      100,
		HoughMinLength:  80,
		HoughMaxGap:     0,

		ArcsCutoff:          240,
		ArcsBlurSize:        20,
		ArcsErodeIterations: 6,
		ArcsInverseRatio:    1.1,
		ArcsMinCenterDist:   100,
	}
}

// inDiagonalBand сообщает, попадает ли угол в диагональный сектор.
// Отрицательная ветка намеренно шире положительной: исторически детектор
// принимает углы до -2·bandMax, и перекалибровка этой асимметрии
// меняет долю срабатываний на реальных кадрах.
func inDiagonalBand(angle, bandMin, bandMax float64) bool {
	if angle >= bandMin && angle <= bandMax {
		return true
	}
	return angle <= -bandMin && angle >= -2*bandMax
}
