package entity

// Heuristic идентификатор эвристики, обнаружившей блик
type Heuristic string

const (
	HeuristicNone        Heuristic = ""              // ни одна эвристика не сработала
	HeuristicLotsOfLight Heuristic = "lots_of_light" // слишком большая доля засвеченных пикселей
	HeuristicElliptical  Heuristic = "elliptical"    // компактное круглое яркое пятно
	HeuristicRays        Heuristic = "rays"          // диагональные световые лучи
)

// ClassificationResult хранит итог классификации одного изображения.
type ClassificationResult struct {
	IsFlare   bool      // флаг наличия блика
	Heuristic Heuristic // какая эвристика сработала первой
	RayCount  int       // число диагональных отрезков (заполняет эвристика лучей)
}

// Label возвращает метку для вывода: "1" для блика, "0" для чистого кадра.
func (r ClassificationResult) Label() string {
	if r.IsFlare {
		return "1"
	}
	return "0"
}

// BatchSummary — счётчики по итогам пакетной классификации.
type BatchSummary struct {
	Flares int // изображений с бликом
	Good   int // чистых изображений
	Failed int // изображений, которые не удалось обработать
}
