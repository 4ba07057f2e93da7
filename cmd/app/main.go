package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripmate/cmd/fx/controllersfx"
	"tripmate/cmd/fx/currencyfx"
	"tripmate/cmd/fx/dbfx"
	"tripmate/cmd/fx/itineraryfx"
	"tripmate/cmd/fx/packingfx"
	"tripmate/internal/api/controllers"
	"tripmate/pkg/middleware"
	"tripmate/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		dbfx.Module,
		packingfx.Module,
		itineraryfx.Module,
		currencyfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	packingController *controllers.PackingController,
	itineraryController *controllers.ItineraryController,
	currencyController *controllers.CurrencyController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, packingController, itineraryController, currencyController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	packingController *controllers.PackingController,
	itineraryController *controllers.ItineraryController,
	currencyController *controllers.CurrencyController) {

	r.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "TripMate API is running!")
	})

	tripTypes := r.Group("/trip-types")
	tripTypes.GET("", packingController.ListTripTypesHandler)
	tripTypes.GET("/:id", packingController.GetTripTypeHandler)
	tripTypes.POST("/:id/items", packingController.AddItemHandler)
	tripTypes.PUT("/:id/items/:itemId", packingController.UpdateItemHandler)
	tripTypes.DELETE("/:id/items/:itemId", packingController.DeleteItemHandler)

	events := r.Group("/events")
	events.GET("", itineraryController.ListEventsHandler)
	events.POST("", itineraryController.CreateEventHandler)
	events.PUT("/:id", itineraryController.UpdateEventHandler)
	events.DELETE("/:id", itineraryController.DeleteEventHandler)

	r.GET("/currencies", currencyController.ListCurrenciesHandler)
	r.GET("/exchange-rates", currencyController.ListRatesHandler)
	r.POST("/convert", currencyController.ConvertHandler)
	r.PUT("/exchange-rates/:from/:to", currencyController.UpdateRateHandler)
}
