package port

import "context"

// FlareDetector интерфейс набора эвристик поиска бликов.
// Каждая эвристика независима: работает на собственной копии изображения
// и не хранит состояния между вызовами.
type FlareDetector interface {
	// IsFlareLots проверяет долю засвеченных пикселей во всём кадре
	IsFlareLots(ctx context.Context, imageData []byte) (bool, error)

	// IsFlareElliptical ищет компактные круглые яркие пятна
	IsFlareElliptical(ctx context.Context, imageData []byte) (bool, error)

	// IsFlareRays возвращает число найденных диагональных световых отрезков;
	// классификатор трактует любое ненулевое значение как блик
	IsFlareRays(ctx context.Context, imageData []byte) (int, error)

	// IsFlareArcs ищет дуги на сильно размытом и эродированном изображении.
	// Экспериментальная эвристика: даёт слишком много ложных срабатываний,
	// поэтому классификатор её НЕ вызывает. Оставлена намеренно — для
	// изолированных запусков и дальнейшей калибровки, а не по недосмотру.
	IsFlareArcs(ctx context.Context, imageData []byte) (bool, error)
}
