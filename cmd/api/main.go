package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/pulsehr/pulsehr-backend-go/internal/config"
	appHTTP "github.com/pulsehr/pulsehr-backend-go/internal/handler/http"
	"github.com/pulsehr/pulsehr-backend-go/internal/pkg/database"
	"github.com/pulsehr/pulsehr-backend-go/internal/pkg/jwt"
	"github.com/pulsehr/pulsehr-backend-go/internal/repository/postgresql"
	authService "github.com/pulsehr/pulsehr-backend-go/internal/service/auth"
	dashboardService "github.com/pulsehr/pulsehr-backend-go/internal/service/dashboard"
	employeeDashboardService "github.com/pulsehr/pulsehr-backend-go/internal/service/employee_dashboard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	profileRepo := postgresql.NewProfileRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	employeeDashboardRepo := postgresql.NewEmployeeDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(profileRepo, jwtService)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, profileRepo, cfg.Review.Period)
	employeeDashboardSvc := employeeDashboardService.NewEmployeeDashboardService(employeeDashboardRepo, profileRepo, cfg.Review.Period)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	employeeDashboardHandler := appHTTP.NewEmployeeDashboardHandler(employeeDashboardSvc)

	router := appHTTP.NewRouter(cfg, jwtService, authHandler, dashboardHandler, employeeDashboardHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
