package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/nexhr/hr-panel-go/internal/config"
	appHTTP "github.com/nexhr/hr-panel-go/internal/handler/http"
	"github.com/nexhr/hr-panel-go/internal/pkg/cron"
	"github.com/nexhr/hr-panel-go/internal/pkg/database"
	"github.com/nexhr/hr-panel-go/internal/pkg/email"
	"github.com/nexhr/hr-panel-go/internal/pkg/jwt"
	"github.com/nexhr/hr-panel-go/internal/pkg/pdf"
	"github.com/nexhr/hr-panel-go/internal/pkg/storage"
	"github.com/nexhr/hr-panel-go/internal/repository/postgresql"
	attendanceService "github.com/nexhr/hr-panel-go/internal/service/attendance"
	authService "github.com/nexhr/hr-panel-go/internal/service/auth"
	catalogService "github.com/nexhr/hr-panel-go/internal/service/catalog"
	certificateService "github.com/nexhr/hr-panel-go/internal/service/certificate"
	documentService "github.com/nexhr/hr-panel-go/internal/service/document"
	employeeService "github.com/nexhr/hr-panel-go/internal/service/employee"
	salarySlipService "github.com/nexhr/hr-panel-go/internal/service/salaryslip"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salarySlipRepo := postgresql.NewSalarySlipRepository(db)
	certificateRepo := postgresql.NewCertificateRepository(db)
	catalogRepo := postgresql.NewCatalogRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	exporter := pdf.NewExporter()

	txRunner := postgresql.NewTxRunner(db)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(txRunner, employeeRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(txRunner, attendanceRepo, employeeRepo)
	salarySlipSvc := salarySlipService.NewSalarySlipService(salarySlipRepo, employeeRepo, exporter, fileStorage, emailService, cfg.Company)
	certificateSvc := certificateService.NewCertificateService(certificateRepo, exporter, emailService, cfg.Company)
	catalogSvc := catalogService.NewCatalogService(catalogRepo)
	documentSvc := documentService.NewDocumentService(employeeRepo, exporter, cfg.Company)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("close-out-previous-day", time.Hour, attendanceService.CloseOutPreviousDayJob(attendanceSvc))
	scheduler.AddJob("mark-weekly-holiday", 6*time.Hour, attendanceService.MarkWeeklyHolidayJob(attendanceSvc))
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(jwtService, authSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		SalarySlip:  appHTTP.NewSalarySlipHandler(salarySlipSvc),
		Certificate: appHTTP.NewCertificateHandler(certificateSvc),
		Catalog:     appHTTP.NewCatalogHandler(catalogSvc),
		Document:    appHTTP.NewDocumentHandler(documentSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
