package main

import (
	"fmt"
	"log"
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/config"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/database"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/handlers"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/jobs"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/repository"
	cronjobs "github.com/vanessawarbeck/Ecocoins-sub000/internal/scheduler"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/services"
	"github.com/vanessawarbeck/Ecocoins-sub000/internal/storage"
	"github.com/vanessawarbeck/Ecocoins-sub000/pkg/logger"
	"github.com/vanessawarbeck/Ecocoins-sub000/pkg/middleware"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	store := storage.NewMongoStore(db)

	// --- Repositories ---
	challengeRepo := repository.NewChallengeRepository(store)
	ledgerRepo := repository.NewLedgerRepository(store)

	// --- Services ---
	rewardService := services.NewRewardService(ledgerRepo)
	challengeService := services.NewChallengeService(challengeRepo, rewardService)
	pointsService := services.NewPointsService(ledgerRepo)
	actionService := services.NewActionService(challengeService, rewardService)

	// --- Handlers ---
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	actionHandler := handlers.NewActionHandler(actionService)
	pointsHandler := handlers.NewPointsHandler(rewardService, pointsService)

	// Hourly deadline visibility scan
	deadlineScanner := jobs.NewDeadlineScanner(challengeService)
	cronjobs.StartChallengeCronJobs(deadlineScanner)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Challenge routes
	challengeRoutes := router.PathPrefix("/challenges").Subrouter()
	challengeRoutes.HandleFunc("", challengeHandler.GetChallengesHandler).Methods("GET")
	challengeRoutes.HandleFunc("/{id}/start", challengeHandler.StartChallengeHandler).Methods("POST")
	challengeRoutes.HandleFunc("/{id}/cancel", challengeHandler.CancelChallengeHandler).Methods("POST")
	challengeRoutes.HandleFunc("/{id}/time-remaining", challengeHandler.TimeRemainingHandler).Methods("GET")

	// Eco action completion
	router.HandleFunc("/actions", actionHandler.CompleteActionHandler).Methods("POST")

	// Points routes
	pointsRoutes := router.PathPrefix("/points").Subrouter()
	pointsRoutes.HandleFunc("/transactions", pointsHandler.GetTransactionsHandler).Methods("GET")
	pointsRoutes.HandleFunc("/transactions", pointsHandler.AddTransactionHandler).Methods("POST")
	pointsRoutes.HandleFunc("/summary", pointsHandler.GetSummaryHandler).Methods("GET")
	pointsRoutes.HandleFunc("/redeem", pointsHandler.RedeemHandler).Methods("POST")

	// Operational endpoints
	middleware.InitPrometheus()
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	// Apply middleware for logging, metrics and rate limiting
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.MonitorMiddleware)
	router.Use(middleware.RateLimitMiddleware)
	go middleware.CleanupVisitors()

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(gorillaHandlers.RecoveryHandler()(router))

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
