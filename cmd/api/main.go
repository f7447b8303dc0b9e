package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cmlabs-hris/payroll-engine-go/internal/config"
	"github.com/cmlabs-hris/payroll-engine-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/payroll-engine-go/internal/handler/http"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-engine-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/payroll-engine-go/internal/repository/postgresql"
	overtimeService "github.com/cmlabs-hris/payroll-engine-go/internal/service/overtime"
	payrollService "github.com/cmlabs-hris/payroll-engine-go/internal/service/payroll"
	statutoryService "github.com/cmlabs-hris/payroll-engine-go/internal/service/statutory"
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
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	statutoryCalc, err := statutoryService.NewCalculator(fixtures.DefaultStatutoryTables())
	if err != nil {
		log.Fatal("Invalid statutory tables:", err)
	}

	payrollSvc := payrollService.NewPayrollService(
		cfg.Payroll,
		payrollRepo, employeeRepo, attendanceRepo, overtimeRepo, leaveRepo, holidayRepo,
		statutoryCalc,
	)
	overtimeSvc := overtimeService.NewOvertimeService(cfg.Payroll, overtimeRepo)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)

	router := appHTTP.NewRouter(JWTService, payrollHandler, overtimeHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
