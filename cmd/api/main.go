package main

import (
	"fmt"
	"net/http"

	"github.com/orbit-hr/hr-backend-go/internal/config"
	appHTTP "github.com/orbit-hr/hr-backend-go/internal/handler/http"
	"github.com/orbit-hr/hr-backend-go/internal/pkg/cron"
	"github.com/orbit-hr/hr-backend-go/internal/pkg/database"
	"github.com/orbit-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/orbit-hr/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/orbit-hr/hr-backend-go/internal/service/attendance"
	authService "github.com/orbit-hr/hr-backend-go/internal/service/auth"
	custodyService "github.com/orbit-hr/hr-backend-go/internal/service/custody"
	employeeService "github.com/orbit-hr/hr-backend-go/internal/service/employee"
	leaveService "github.com/orbit-hr/hr-backend-go/internal/service/leave"
	payrollService "github.com/orbit-hr/hr-backend-go/internal/service/payroll"
	userService "github.com/orbit-hr/hr-backend-go/internal/service/user"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	custodyRepo := postgresql.NewCustodyRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	userSvc := userService.NewUserService(db, userRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, cfg.App.WorkStart)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	custodySvc := custodyService.NewCustodyService(custodyRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	custodyHandler := appHTTP.NewCustodyHandler(custodySvc)

	scheduler := cron.NewScheduler()
	cron.NewPayrollJobs(payrollSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		authHandler,
		userHandler,
		employeeHandler,
		attendanceHandler,
		payrollHandler,
		leaveHandler,
		custodyHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
