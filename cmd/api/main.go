package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/asistpro/attendance-backend-go/internal/config"
	appHTTP "github.com/asistpro/attendance-backend-go/internal/handler/http"
	"github.com/asistpro/attendance-backend-go/internal/pkg/database"
	"github.com/asistpro/attendance-backend-go/internal/pkg/events"
	"github.com/asistpro/attendance-backend-go/internal/pkg/jwt"
	"github.com/asistpro/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/asistpro/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/asistpro/attendance-backend-go/internal/service/employee"
	reportService "github.com/asistpro/attendance-backend-go/internal/service/report"
	settingService "github.com/asistpro/attendance-backend-go/internal/service/setting"
	shiftService "github.com/asistpro/attendance-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	hub := events.NewHub()

	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		cfg.Attendance,
		attendanceRepo,
		employeeRepo,
		shiftRepo,
		settingRepo,
		hub,
	)
	reportSvc := reportService.NewReportService(
		cfg.Attendance,
		attendanceRepo,
		employeeRepo,
		shiftRepo,
		settingRepo,
	)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, shiftRepo, hub)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, employeeRepo)
	settingSvc := settingService.NewSettingService(settingRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	settingHandler := appHTTP.NewSettingHandler(settingSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		reportHandler,
		employeeHandler,
		shiftHandler,
		settingHandler,
		eventsHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
	db.Close()
}
