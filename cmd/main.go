package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/propwise/manager-api/internal/app"
	"github.com/propwise/manager-api/internal/config"
	"github.com/propwise/manager-api/internal/controllers"
	"github.com/propwise/manager-api/internal/middleware"
	"github.com/propwise/manager-api/internal/repositories"
	"github.com/propwise/manager-api/internal/routes"
	"github.com/propwise/manager-api/internal/services"
	"github.com/propwise/manager-api/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	managerRepo := repositories.NewManagerRepository(application.DB)
	unitRepo := repositories.NewUnitRepository(application.DB)
	apartmentUnitRepo := repositories.NewApartmentUnitRepository(application.DB)
	rateLimitRepo := repositories.NewRateLimitRepository(application.DB)

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	tokenService := services.NewTokenService(cfg)
	authService := services.NewManagerAuthService(managerRepo, tokenService, cfg)
	rateLimiterService := services.NewRateLimiterService(rateLimitRepo, cfg)
	rateLimitCleanupService := services.NewRateLimitCleanupService(rateLimitRepo)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	authController := controllers.NewManagerAuthController(authService, cfg)
	unitController := controllers.NewUnitController(unitRepo, apartmentUnitRepo)
	healthController := controllers.NewHealthController(application)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()
	router.Use(middleware.RateLimitMiddleware(rateLimiterService))

	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods("GET")

	router.HandleFunc(routes.ManagerSignUp, authController.SignUp).Methods("POST")
	router.HandleFunc(routes.ManagerLogin, authController.Login).Methods("POST")
	router.HandleFunc(routes.ManagerCurrent, authController.Current).Methods("GET")
	router.HandleFunc(routes.ManagerCurrentByEmail, authController.CurrentByEmail).Methods("POST")
	router.HandleFunc(routes.ManagerSignOut, authController.SignOut).Methods("POST")
	router.HandleFunc(routes.ManagerSignUpGoogle, authController.SignUpGoogle).Methods("POST")

	router.HandleFunc(routes.Units, unitController.GetAllUnits).Methods("GET")
	router.HandleFunc(routes.ApartmentUnits, unitController.GetAllApartmentUnits).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondFail(w, http.StatusNotFound,
			fmt.Sprintf("Cannot find %s on this server.", r.URL.Path))
	})

	//----------------------------------------------------------------------
	// Daily cleanup via cron
	//----------------------------------------------------------------------
	c := cron.New()

	_, schErr := c.AddFunc("15 3 * * *", func() {
		if e := rateLimitCleanupService.CleanupDaily(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled rate limit counter cleanup failed")
		}
	})
	if schErr != nil {
		utils.Logger.WithError(schErr).Fatal("Failed to schedule rate limit counter cleanup job")
	}

	c.Start()

	//----------------------------------------------------------------------
	// CORS & server
	//----------------------------------------------------------------------
	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
