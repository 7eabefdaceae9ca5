package main

import (
	"auction-house/config"
	"auction-house/controllers"
	_ "auction-house/docs"
	"auction-house/middleware"
	"auction-house/repositories"
	"auction-house/routes"
	"auction-house/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// @title Auction House API
// @version 1.0
// @description Online auction backend: products, bids, and users.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.LoadConfig()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	cache := config.ConnectRedis(cfg)
	if cache != nil {
		defer cache.Close()
	}

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	bidRepo := repositories.NewBidRepository(db)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userSvc := services.NewUserService(userRepo)
	productSvc := services.NewProductService(productRepo)
	bidSvc := services.NewBidService(bidRepo, productRepo)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLoggerMiddleware)
	router.Use(middleware.CORSMiddleware())

	routes.SetupRoutes(router, routes.Controllers{
		Auth:    controllers.NewAuthController(authSvc),
		User:    controllers.NewUserController(userSvc),
		Product: controllers.NewProductController(productSvc, cache),
		Bid:     controllers.NewBidController(bidSvc, cache),
	}, cfg.JWTSecret)

	port := ":" + cfg.Port
	log.WithFields(log.Fields{
		"port":        cfg.Port,
		"environment": cfg.AppEnv,
	}).Info("Server starting")

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
