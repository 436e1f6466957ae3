package main

import (
	"fmt"
	"net/http"

	"github.com/rosterly/rosterly-backend-go/internal/config"
	"github.com/rosterly/rosterly-backend-go/internal/domain/tenant"
	appHTTP "github.com/rosterly/rosterly-backend-go/internal/handler/http"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/database"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/jwt"
	"github.com/rosterly/rosterly-backend-go/internal/repository/postgresql"
	payrunService "github.com/rosterly/rosterly-backend-go/internal/service/payrun"
	rateService "github.com/rosterly/rosterly-backend-go/internal/service/rate"
	scheduleService "github.com/rosterly/rosterly-backend-go/internal/service/schedule"
	tenantService "github.com/rosterly/rosterly-backend-go/internal/service/tenant"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	staffRepo := postgresql.NewStaffRepository(db)
	tenantRepo := postgresql.NewTenantRepository(db)
	rateRepo := postgresql.NewRateRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	payRunRepo := postgresql.NewPayRunRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fallbackPolicy := tenant.DefaultPayrollPolicy(
		cfg.Payroll.DefaultOvertimeMultiplier,
		cfg.Payroll.DefaultOvertimeThresholdHours,
	)

	payRunSvc := payrunService.NewPayRunService(payRunRepo, staffRepo, rateRepo, timesheetRepo, tenantRepo, fallbackPolicy)
	rateSvc := rateService.NewRateService(rateRepo, staffRepo)
	scheduleSvc := scheduleService.NewScheduleService(shiftRepo, staffRepo)
	tenantSvc := tenantService.NewTenantService(tenantRepo, fallbackPolicy)

	payRunHandler := appHTTP.NewPayRunHandler(payRunSvc)
	rateHandler := appHTTP.NewRateHandler(rateSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	tenantHandler := appHTTP.NewTenantHandler(tenantSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App,
		payRunHandler,
		rateHandler,
		scheduleHandler,
		tenantHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
