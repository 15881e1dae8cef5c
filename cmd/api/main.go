package main

import (
	"fmt"
	"net/http"

	"github.com/csi515/beautyhub-backend-go/internal/config"
	appHTTP "github.com/csi515/beautyhub-backend-go/internal/handler/http"
	"github.com/csi515/beautyhub-backend-go/internal/pkg/database"
	"github.com/csi515/beautyhub-backend-go/internal/pkg/jwt"
	"github.com/csi515/beautyhub-backend-go/internal/repository/postgresql"
	attendanceService "github.com/csi515/beautyhub-backend-go/internal/service/attendance"
	authService "github.com/csi515/beautyhub-backend-go/internal/service/auth"
	scheduleService "github.com/csi515/beautyhub-backend-go/internal/service/schedule"
	staffService "github.com/csi515/beautyhub-backend-go/internal/service/staff"
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

	staffRepo := postgresql.NewStaffRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(cfg.Auth, jwtService)
	staffSvc := staffService.NewStaffService(staffRepo)
	attendanceSvc := attendanceService.NewAttendanceService(recordRepo, staffRepo, cfg.Attendance)
	scheduleSvc := scheduleService.NewScheduleService(recordRepo, staffRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		jwtService,
		authHandler,
		staffHandler,
		attendanceHandler,
		scheduleHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
