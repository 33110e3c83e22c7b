package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/emptrack/emptrack-backend-go/internal/config"
	"github.com/emptrack/emptrack-backend-go/internal/domain/attendance"
	"github.com/emptrack/emptrack-backend-go/internal/domain/employee"
	"github.com/emptrack/emptrack-backend-go/internal/domain/leave"
	"github.com/emptrack/emptrack-backend-go/internal/domain/record/complaint"
	"github.com/emptrack/emptrack-backend-go/internal/domain/record/location"
	"github.com/emptrack/emptrack-backend-go/internal/domain/record/salary"
	"github.com/emptrack/emptrack-backend-go/internal/domain/user"
	appHTTP "github.com/emptrack/emptrack-backend-go/internal/handler/http"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/database"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/jwt"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/storage"
	"github.com/emptrack/emptrack-backend-go/internal/repository/mongodb"
	"github.com/emptrack/emptrack-backend-go/internal/repository/postgresql"
	attendanceService "github.com/emptrack/emptrack-backend-go/internal/service/attendance"
	serviceAuth "github.com/emptrack/emptrack-backend-go/internal/service/auth"
	dashboardService "github.com/emptrack/emptrack-backend-go/internal/service/dashboard"
	employeeService "github.com/emptrack/emptrack-backend-go/internal/service/employee"
	"github.com/emptrack/emptrack-backend-go/internal/service/file"
	leaveService "github.com/emptrack/emptrack-backend-go/internal/service/leave"
	recordService "github.com/emptrack/emptrack-backend-go/internal/service/record"
)

// repositories is the record store as seen by the services.
type repositories struct {
	user       user.UserRepository
	employee   employee.EmployeeRepository
	attendance attendance.AttendanceRepository
	leave      leave.LeaveRequestRepository
	complaint  complaint.ComplaintRepository
	salary     salary.SalaryRepository
	location   location.LocationRepository
	close      func()
}

func openRepositories(cfg *config.Config) (repositories, error) {
	switch cfg.App.StoreDriver {
	case config.StoreDriverMongo:
		db, err := database.NewMongoDB(cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return repositories{}, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = db.Close(context.Background())
			return repositories{}, err
		}
		return repositories{
			user:       mongodb.NewUserRepository(db),
			employee:   mongodb.NewEmployeeRepository(db),
			attendance: mongodb.NewAttendanceRepository(db),
			leave:      mongodb.NewLeaveRequestRepository(db),
			complaint:  mongodb.NewComplaintRepository(db),
			salary:     mongodb.NewSalaryRepository(db),
			location:   mongodb.NewLocationRepository(db),
			close:      func() { _ = db.Close(context.Background()) },
		}, nil

	default:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			user:       postgresql.NewUserRepository(db),
			employee:   postgresql.NewEmployeeRepository(db),
			attendance: postgresql.NewAttendanceRepository(db),
			leave:      postgresql.NewLeaveRequestRepository(db),
			complaint:  postgresql.NewComplaintRepository(db),
			salary:     postgresql.NewSalaryRepository(db),
			location:   postgresql.NewLocationRepository(db),
			close:      db.Close,
		}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	repos, err := openRepositories(cfg)
	if err != nil {
		log.Fatal("Error connecting to record store: ", err)
	}
	defer repos.close()

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	loc := cfg.Location()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileSvc := file.NewFileService(fileStorage)
	authSvc := serviceAuth.NewAuthService(repos.user, JWTService)
	employeeSvc := employeeService.NewEmployeeService(repos.employee)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employee, fileSvc, loc)
	leaveSvc := leaveService.NewLeaveService(repos.leave)
	recordSvc := recordService.NewRecordService(repos.complaint, repos.salary, repos.location)
	dashboardSvc := dashboardService.NewDashboardService(repos.employee, repos.attendance, repos.salary, loc)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, loc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	recordHandler := appHTTP.NewRecordHandler(recordSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Env:            cfg.App.Env,
			LogLevel:       cfg.SlogLevel(),
			UploadsDir:     cfg.Storage.BasePath,
		},
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		recordHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("Server running", "addr", "http://localhost"+port, "store", cfg.App.StoreDriver, "timezone", loc.String())
	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("Server error", "error", err)
	}
}
