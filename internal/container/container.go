package container

import (
	app "flare-filter/internal/application"
	"flare-filter/internal/domain/port"
)

type Container struct {
	Classifier *app.ClassifierService
}

func New(detector port.FlareDetector, results port.ResultRepository) *Container {
	classifier := app.NewClassifierService(detector, results)

	return &Container{
		Classifier: classifier,
	}
}
