package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"globetrotter/cmd/fx/accountfx"
	"globetrotter/cmd/fx/activityfx"
	"globetrotter/cmd/fx/budgetfx"
	"globetrotter/cmd/fx/cityfx"
	"globetrotter/cmd/fx/configfx"
	"globetrotter/cmd/fx/dbfx"
	"globetrotter/cmd/fx/stopfx"
	"globetrotter/cmd/fx/tripfx"
	"globetrotter/internal/api/controllers"
	"globetrotter/internal/config"
	"globetrotter/pkg/middleware"
	"globetrotter/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	app := fx.New(
		configfx.Module,
		dbfx.Module,
		accountfx.Module,
		tripfx.Module,
		stopfx.Module,
		activityfx.Module,
		cityfx.Module,
		budgetfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on port %s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
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
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	stopController *controllers.StopController,
	activityController *controllers.ActivityController,
	cityController *controllers.CityController,
	budgetController *controllers.BudgetController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	RegisterRoutes(r, jwtManager,
		authController, tripController, stopController,
		activityController, cityController, budgetController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	jwtManager *utils.JWTManager,
	authController *controllers.AuthController,
	tripController *controllers.TripController,
	stopController *controllers.StopController,
	activityController *controllers.ActivityController,
	cityController *controllers.CityController,
	budgetController *controllers.BudgetController) {

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "GlobeTrotter backend is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", authController.Signup)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/me", middleware.JWTAuthMiddleware(jwtManager), authController.Me)

	api.GET("/cities", cityController.SearchCities)

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware(jwtManager))

	protected.GET("/trips", tripController.ListTrips)
	protected.POST("/trips", tripController.CreateTrip)
	protected.GET("/trips/:id", tripController.GetTrip)
	protected.PUT("/trips/:id", tripController.UpdateTrip)
	protected.DELETE("/trips/:id", tripController.DeleteTrip)
	protected.GET("/trips/:id/stops", stopController.ListStops)
	protected.POST("/trips/:id/stops", stopController.AddStop)
	protected.GET("/trips/:id/budget", budgetController.GetTripBudget)

	protected.DELETE("/stops/:id", stopController.DeleteStop)
	protected.GET("/stops/:id/activities", activityController.ListActivities)
	protected.POST("/stops/:id/activities", activityController.AddActivity)

	protected.DELETE("/activities/:id", activityController.DeleteActivity)
}
