package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/cadet-records-api/api/swagger"
	"github.com/noah-isme/cadet-records-api/internal/handler"
	"github.com/noah-isme/cadet-records-api/internal/reconcile"
	"github.com/noah-isme/cadet-records-api/internal/repository"
	"github.com/noah-isme/cadet-records-api/internal/service"
	"github.com/noah-isme/cadet-records-api/pkg/cache"
	"github.com/noah-isme/cadet-records-api/pkg/config"
	"github.com/noah-isme/cadet-records-api/pkg/database"
	"github.com/noah-isme/cadet-records-api/pkg/logger"
)

// @title Cadet Records API
// @version 1.0.0
// @description Course, team, student and leadership records with nested family and discipline history.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	ctx := context.Background()

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db, cfg.Database.Driver); err != nil {
			_ = db.Close()
			return err
		}
	}

	redisClient, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		redisClient = nil
	}

	metrics := service.NewMetricsService()
	validate := service.NewValidator()
	engine := reconcile.NewEngine(logr, reconcile.WithObserver(metrics))

	users := repository.NewUserRepository(db)
	students := repository.NewStudentRepository(db)
	family := repository.NewFamilyMemberRepository(db)
	discipline := repository.NewDisciplineRecordRepository(db)
	leadership := repository.NewLeadershipRepository(db)
	staff := repository.NewLeadershipStaffRepository(db)
	courses := repository.NewCourseRepository(db)
	teams := repository.NewTeamRepository(db)
	tags := repository.NewTagRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, "cadet")

	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, redisClient != nil)
	authSvc := service.NewAuthService(users, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	studentSvc := service.NewStudentService(students, family, discipline, teams, engine, cacheSvc, validate, logr)
	leadershipSvc := service.NewLeadershipService(leadership, staff, courses, engine, validate, logr, cfg.Records.CascadeLeadershipStaff)
	teamSvc := service.NewTeamService(teams, courses, validate, logr)
	courseSvc := service.NewCourseService(courses, teams, validate, logr, service.CourseConfig{
		TeamsPerIntake: cfg.Courses.TeamsPerIntake,
		MaxLevel:       cfg.Courses.MaxLevel,
	})
	tagSvc := service.NewTagService(tags, validate, logr)
	rosterSvc := service.NewRosterService(studentSvc, teams, logr)

	checks := map[string]handler.Pinger{
		"database": func(ctx context.Context) error { return database.Ping(ctx, db) },
	}
	if redisClient != nil {
		checks["redis"] = cacheRepo.Ping
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handler.NewRouter(handler.RouterOptions{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
		Logger:         logr,
		Tokens:         authSvc,
		Requests:       metrics,
	}, handler.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		Students:   handler.NewStudentHandler(studentSvc),
		Leadership: handler.NewLeadershipHandler(leadershipSvc),
		Teams:      handler.NewTeamHandler(teamSvc, rosterSvc),
		Courses:    handler.NewCourseHandler(courseSvc),
		Tags:       handler.NewTagHandler(tagSvc),
		Metrics:    handler.NewMetricsHandler(metrics, checks),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		serverErrors <- srv.ListenAndServe()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	var serveErr error
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr = fmt.Errorf("listen: %w", err)
		}
	case sig := <-signals:
		logr.Info("shutdown requested", zap.String("signal", sig.String()))
	}

	return errors.Join(serveErr, shutdown(srv, db, redisClient, logr))
}

// shutdown closes the HTTP server, the store and the redis client in that order.
func shutdown(srv *http.Server, db *sqlx.DB, redisClient *redis.Client, logr *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http: %w", err))
	}
	if err := db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	logr.Info("server stopped")
	return errors.Join(errs...)
}
