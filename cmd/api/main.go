package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/config"
	appHTTP "github.com/developnetgeometry/ot-scribe-sub002/internal/handler/http"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/cron"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/database"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/email"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/holidayapi"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/jwt"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/oauth"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/sse"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/repository/postgresql"
	authService "github.com/developnetgeometry/ot-scribe-sub002/internal/service/auth"
	companyService "github.com/developnetgeometry/ot-scribe-sub002/internal/service/company"
	dashboardService "github.com/developnetgeometry/ot-scribe-sub002/internal/service/dashboard"
	employeeService "github.com/developnetgeometry/ot-scribe-sub002/internal/service/employee"
	holidayService "github.com/developnetgeometry/ot-scribe-sub002/internal/service/holiday"
	masterService "github.com/developnetgeometry/ot-scribe-sub002/internal/service/master"
	notificationService "github.com/developnetgeometry/ot-scribe-sub002/internal/service/notification"
	overtimeService "github.com/developnetgeometry/ot-scribe-sub002/internal/service/overtime"
	reportService "github.com/developnetgeometry/ot-scribe-sub002/internal/service/report"
	thresholdService "github.com/developnetgeometry/ot-scribe-sub002/internal/service/threshold"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	tokenRepo := postgresql.NewTokenRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	thresholdRepo := postgresql.NewThresholdRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	holidayClient := holidayapi.NewClient(cfg.HolidayAPI)
	hub := sse.NewHub()

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub)
	authSvc := authService.NewAuthService(userRepo, tokenRepo, jwtService, notificationSvc)
	companySvc := companyService.NewCompanyService(companyRepo)
	departmentSvc := masterService.NewDepartmentService(departmentRepo)
	positionSvc := masterService.NewPositionService(positionRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, tokenRepo, companyRepo, emailSvc, cfg.App.FrontendURL)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, holidayClient, notificationSvc)
	thresholdSvc := thresholdService.NewThresholdService(thresholdRepo)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, employeeRepo, positionRepo, thresholdRepo, userRepo, notificationSvc, emailSvc)
	reportSvc := reportService.NewReportService(reportRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService, googleService, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	masterHandler := appHTTP.NewMasterHandler(companySvc, departmentSvc, positionSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc, thresholdSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, jwtService, hub)
	reportHandler := appHTTP.NewReportHandler(reportSvc, dashboardSvc)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("holiday-sync", cfg.HolidayAPI.SyncInterval, func(ctx context.Context) error {
		_, err := holidaySvc.SyncYear(ctx, time.Now().Year())
		return err
	})
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		masterHandler,
		overtimeHandler,
		holidayHandler,
		notificationHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
