package main

import (
	"fmt"
	"net/http"

	"github.com/transwerk/personal-backend-go/internal/config"
	appHTTP "github.com/transwerk/personal-backend-go/internal/handler/http"
	"github.com/transwerk/personal-backend-go/internal/pkg/database"
	"github.com/transwerk/personal-backend-go/internal/pkg/jwt"
	"github.com/transwerk/personal-backend-go/internal/repository/postgresql"
	authService "github.com/transwerk/personal-backend-go/internal/service/auth"
	dashboardService "github.com/transwerk/personal-backend-go/internal/service/dashboard"
	documentService "github.com/transwerk/personal-backend-go/internal/service/document"
	employeeService "github.com/transwerk/personal-backend-go/internal/service/employee"
	leaveService "github.com/transwerk/personal-backend-go/internal/service/leave"
	paymentService "github.com/transwerk/personal-backend-go/internal/service/payment"
	payrollService "github.com/transwerk/personal-backend-go/internal/service/payroll"
	reportService "github.com/transwerk/personal-backend-go/internal/service/report"
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
	jwtRepo := postgresql.NewJWTRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, jwtRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	paymentSvc := paymentService.NewPaymentService(paymentRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, paymentRepo, leaveRepo)
	documentSvc := documentService.NewDocumentService(documentRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, paymentRepo, leaveRepo, documentRepo)
	reportSvc := reportService.NewReportService(employeeRepo, paymentRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, FrontendURL: cfg.App.FrontendURL},
		jwtSvc,
		appHTTP.NewAuthHandler(jwtSvc, authSvc),
		appHTTP.NewEmployeeHandler(employeeSvc, payrollSvc),
		appHTTP.NewPaymentHandler(paymentSvc, payrollSvc),
		appHTTP.NewDocumentHandler(documentSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
