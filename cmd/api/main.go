package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/restolab/staffpoint-backend-go/internal/config"
	appHTTP "github.com/restolab/staffpoint-backend-go/internal/handler/http"
	"github.com/restolab/staffpoint-backend-go/internal/pkg/cron"
	"github.com/restolab/staffpoint-backend-go/internal/pkg/database"
	"github.com/restolab/staffpoint-backend-go/internal/pkg/jwt"
	"github.com/restolab/staffpoint-backend-go/internal/pkg/sse"
	"github.com/restolab/staffpoint-backend-go/internal/repository/postgresql"
	attendanceService "github.com/restolab/staffpoint-backend-go/internal/service/attendance"
	authService "github.com/restolab/staffpoint-backend-go/internal/service/auth"
	employeeService "github.com/restolab/staffpoint-backend-go/internal/service/employee"
	"github.com/restolab/staffpoint-backend-go/internal/service/geofence"
	shiftService "github.com/restolab/staffpoint-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	location, err := time.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		log.Fatal("Invalid TIMEZONE: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	site := geofence.Site{
		Latitude:     cfg.Site.Latitude,
		Longitude:    cfg.Site.Longitude,
		RadiusMeters: cfg.Site.RadiusMeters,
	}

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		employeeRepo,
		shiftRepo,
		site,
		cfg.Attendance.AllowedLateMinutes,
		location,
		hub,
	)

	// Kiosk-side geofence indicator
	source := geofence.FixedSource{
		Latitude:   cfg.Site.KioskLatitude,
		Longitude:  cfg.Site.KioskLongitude,
		Configured: cfg.Site.KioskPosition,
	}
	monitor := geofence.NewMonitor(source, site, cfg.Site.SampleInterval, hub)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	defer cancelMonitor()
	go monitor.Run(monitorCtx)

	// Nightly cleanup for logs left open past their day
	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, shiftRepo, location).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	geofenceHandler := appHTTP.NewGeofenceHandler(monitor)
	eventsHandler := appHTTP.NewEventsHandler(hub, jwtService)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		employeeHandler,
		shiftHandler,
		geofenceHandler,
		eventsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
