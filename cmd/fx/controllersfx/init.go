package controllersfx

import (
	"go.uber.org/fx"

	"tripmate/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPackingController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewCurrencyController))
