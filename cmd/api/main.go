package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/shiftpulse/timeclock-backend-go/internal/config"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/notification"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftpulse/timeclock-backend-go/internal/fixtures"
	appHTTP "github.com/shiftpulse/timeclock-backend-go/internal/handler/http"
	"github.com/shiftpulse/timeclock-backend-go/internal/pkg/cron"
	"github.com/shiftpulse/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftpulse/timeclock-backend-go/internal/pkg/email"
	"github.com/shiftpulse/timeclock-backend-go/internal/repository/memory"
	"github.com/shiftpulse/timeclock-backend-go/internal/repository/postgresql"
	notificationService "github.com/shiftpulse/timeclock-backend-go/internal/service/notification"
	punchService "github.com/shiftpulse/timeclock-backend-go/internal/service/punch"
	reportService "github.com/shiftpulse/timeclock-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var (
		employeeRepo     employee.Repository
		punchRepo        punch.Repository
		notificationRepo notification.Repository
	)

	switch cfg.App.StorageDriver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		defer db.Close()

		ctx := context.Background()
		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			log.Fatal("Failed to ensure schema: ", err)
		}
		if err := postgresql.SeedEmployees(ctx, db, fixtures.DefaultDirectory()); err != nil {
			log.Fatal("Failed to seed employees: ", err)
		}

		employeeRepo = postgresql.NewEmployeeRepository(db)
		punchRepo = postgresql.NewPunchRepository(db)
		notificationRepo = postgresql.NewNotificationRepository(db)
	default:
		employeeRepo = memory.NewEmployeeRepository(fixtures.DefaultDirectory())
		punchRepo = memory.NewPunchRepository(employeeRepo)
		notificationRepo = memory.NewNotificationRepository()
	}

	emailService := email.NewEmailService(cfg.SMTP)

	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, punchRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, employeeRepo, emailService)

	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		punchHandler,
		employeeHandler,
		reportHandler,
		notificationHandler,
	)

	scheduler := cron.NewScheduler()
	latenessJobs := cron.NewLatenessJobs(
		employeeRepo,
		punchRepo,
		notificationSvc,
		cfg.Monitor.CutoffHour,
		cfg.Monitor.SweepInterval,
	)
	latenessJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()
	if err := srv.Shutdown(context.Background()); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
