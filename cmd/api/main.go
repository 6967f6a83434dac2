package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/adapters/cache"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/adapters/handler"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/adapters/middleware"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/adapters/repository"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/config"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/services"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	log.Println("Authenticated with Redis successfully")

	accountRepo := repository.NewAccountRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	childRepo := repository.NewChildRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	interestRepo := repository.NewInterestRepository(db)

	listingCache := cache.NewRedisListingCache(redisClient)

	tokenService := services.NewJWTTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(accountRepo, tokenService)
	verificationService := services.NewVerificationService(verificationRepo, listingCache)
	childService := services.NewChildService(childRepo, listingCache)
	donationService := services.NewDonationService(donationRepo)
	interestService := services.NewInterestService(interestRepo)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	authHandler := handler.NewAuthHandler(authService)
	verificationHandler := handler.NewVerificationHandler(verificationService)
	adminHandler := handler.NewAdminHandler(verificationService)
	childHandler := handler.NewChildHandler(childService)
	donationHandler := handler.NewDonationHandler(donationService)
	interestHandler := handler.NewInterestHandler(interestService)
	publicHandler := handler.NewPublicHandler(childService, interestService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	mux := http.NewServeMux()

	// Health endpoints (OpenShift compatible)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.HandleFunc("GET /health/live", healthHandler.Live)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Public endpoints
	mux.HandleFunc("POST /register", authHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("POST /admin/login", authHandler.AdminLogin)
	mux.HandleFunc("GET /child/{id}", childHandler.GetChildByID)
	mux.HandleFunc("GET /hobbies", childHandler.GetHobbies)
	mux.HandleFunc("GET /children", publicHandler.ListChildren)
	mux.HandleFunc("GET /children/{id}", publicHandler.GetChildByID)
	mux.HandleFunc("POST /express-interest", publicHandler.ExpressInterest)
	mux.HandleFunc("GET /orphanage/{id}/donations", donationHandler.GetDonationInfo)

	// Orphanage endpoints
	mux.HandleFunc("POST /setup-account", authMiddleware.RequireAuth(verificationHandler.SetupAccount))
	mux.HandleFunc("GET /orphanage-account", authMiddleware.RequireAuth(verificationHandler.GetAccount))
	mux.HandleFunc("GET /orphanage-status", authMiddleware.RequireAuth(verificationHandler.GetStatus))
	mux.HandleFunc("POST /add-child", authMiddleware.RequireAuth(childHandler.AddChild))
	mux.HandleFunc("GET /get-children", authMiddleware.RequireAuth(childHandler.GetChildren))
	mux.HandleFunc("GET /submissions", authMiddleware.RequireAuth(interestHandler.GetSubmissions))
	mux.HandleFunc("POST /add-donation-info", authMiddleware.RequireAuth(donationHandler.AddDonationInfo))

	// Admin endpoints
	mux.HandleFunc("POST /orphanage/verify", authMiddleware.RequireAdmin(adminHandler.Verify))
	mux.HandleFunc("GET /orphanages-requests", authMiddleware.RequireAdmin(adminHandler.ListRequests))
	mux.HandleFunc("GET /orphanages-requests/{id}", authMiddleware.RequireAdmin(adminHandler.GetRequestByID))

	chain := middleware.CORSMiddleware(cfg.AllowedOrigins)(middleware.Metrics(mux))

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, chain); err != nil {
		log.Fatalf("Could not start server: %s\n", err)
	}
}
