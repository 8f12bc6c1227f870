package main

import (
	"log"
	"os"

	"github.com/ashu-89/FoodOrderingApp-BackEnd-1/internal/db"
	"github.com/ashu-89/FoodOrderingApp-BackEnd-1/internal/repository"
	"github.com/ashu-89/FoodOrderingApp-BackEnd-1/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	// ======================
	// INFRA
	// ======================
	_ = godotenv.Load()

	pool, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// REPOSITORIES
	// ======================
	customerRepo := repository.NewCustomerRepository(pool)
	customerAuthRepo := repository.NewCustomerAuthRepository(pool)

	// ======================
	// SERVICES
	// ======================
	crypto := services.NewPasswordCrypto()
	tokens := services.NewTokenIssuer()
	authSvc := services.NewAuthService(customerRepo, customerAuthRepo, crypto, tokens)
	customerSvc := services.NewCustomerService(customerRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerCustomerRoutes(api, authSvc, customerSvc)

	// ======================
	// SERVER
	// ======================
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
