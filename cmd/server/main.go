package main

import (
	"database/sql"
	"net/http"

	"apparel-be/internal/address"
	"apparel-be/internal/cart"
	"apparel-be/internal/category"
	"apparel-be/internal/config"
	"apparel-be/internal/db"
	"apparel-be/internal/handlers"
	"apparel-be/internal/logger"
	"apparel-be/internal/order"
	"apparel-be/internal/payment"
	"apparel-be/internal/product"
	"apparel-be/internal/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// seams for tests
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(database)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

// newServer wires repositories, services, and the HTTP router.
func newServer(database *sql.DB) *gin.Engine {
	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	addressRepo := address.NewRepository(database)
	addressSvc := address.NewService(addressRepo)

	orderRepo := order.NewRepository(database, productRepo)
	orderSvc := order.NewService(orderRepo, cartRepo, addressRepo)

	paymentRepo := payment.NewRepository(database)
	paymentSvc := payment.NewService(paymentRepo, orderRepo)

	categoryRepo := category.NewRepository(database)
	categorySvc := category.NewService(categoryRepo)

	h := handlers.New(productSvc, cartSvc, addressSvc, orderSvc, paymentSvc, categorySvc)

	return routes.SetupRouter(h)
}
