package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/okulsys/ders-programi-api/api/swagger"
	"github.com/okulsys/ders-programi-api/internal/handler"
	"github.com/okulsys/ders-programi-api/internal/middleware"
	"github.com/okulsys/ders-programi-api/internal/repository"
	"github.com/okulsys/ders-programi-api/internal/service"
	"github.com/okulsys/ders-programi-api/pkg/cache"
	"github.com/okulsys/ders-programi-api/pkg/config"
	"github.com/okulsys/ders-programi-api/pkg/database"
	"github.com/okulsys/ders-programi-api/pkg/logger"
	corsmiddleware "github.com/okulsys/ders-programi-api/pkg/middleware/cors"
	reqidmiddleware "github.com/okulsys/ders-programi-api/pkg/middleware/requestid"
)

// @title Ders Programı API
// @version 1.0.0
// @description Weekly timetable scheduling and conflict validation for K-12 schools
// @BasePath /
// @schemes http

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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, class view cache disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	teacherRepo := repository.NewTeacherRepository(db)
	classRepo := repository.NewClassRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)

	var cacheRepo *repository.CacheRepository
	if redisClient != nil {
		cacheRepo = repository.NewCacheRepository(redisClient, logr)
	}

	timetableSvc := newTimetableService(timetableRepo, teacherRepo, classRepo, subjectRepo, cacheRepo, metricsSvc, cfg, validate, logr)
	teacherSvc := service.NewTeacherService(teacherRepo, timetableRepo, validate, logr)
	classSvc := service.NewClassService(classRepo, teacherRepo, validate, logr)
	subjectSvc := service.NewSubjectService(subjectRepo, validate, logr)
	generatorSvc := service.NewGeneratorService(teacherRepo, classRepo, subjectRepo, timetableSvc, cfg.Scheduler, validate, logr)

	teacherHandler := handler.NewTeacherHandler(teacherSvc)
	classHandler := handler.NewClassHandler(classSvc)
	subjectHandler := handler.NewSubjectHandler(subjectSvc)
	timetableHandler := handler.NewTimetableHandler(timetableSvc, metricsSvc)
	generatorHandler := handler.NewGeneratorHandler(generatorSvc, metricsSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/status", metricsHandler.Status)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	teachers := api.Group("/teachers")
	teachers.GET("", teacherHandler.List)
	teachers.POST("", teacherHandler.Create)
	teachers.GET("/:id", teacherHandler.Get)
	teachers.PUT("/:id", teacherHandler.Update)
	teachers.DELETE("/:id", teacherHandler.Delete)

	classes := api.Group("/classes")
	classes.GET("", classHandler.List)
	classes.POST("", classHandler.Create)
	classes.GET("/:id", classHandler.Get)
	classes.PUT("/:id", classHandler.Update)
	classes.DELETE("/:id", classHandler.Delete)

	subjects := api.Group("/subjects")
	subjects.GET("", subjectHandler.List)
	subjects.POST("", subjectHandler.Create)
	subjects.GET("/:id", subjectHandler.Get)
	subjects.PUT("/:id", subjectHandler.Update)
	subjects.DELETE("/:id", subjectHandler.Delete)

	timetables := api.Group("/timetables")
	timetables.GET("", timetableHandler.List)
	timetables.GET("/check-slot", timetableHandler.CheckSlot)
	timetables.GET("/timeplan", timetableHandler.TimePlan)
	timetables.POST("/bulk-delete", timetableHandler.BulkDelete)
	timetables.GET("/teachers/:id", timetableHandler.GetTeacher)
	timetables.GET("/teachers/:id/export", timetableHandler.ExportTeacher)
	timetables.PUT("/teachers/:id", timetableHandler.SaveTeacher)
	timetables.DELETE("/teachers/:id", timetableHandler.DeleteTeacher)
	timetables.GET("/classes/:id", timetableHandler.ClassView)
	timetables.PUT("/classes/:id", timetableHandler.SaveClass)

	if cfg.Scheduler.Enabled {
		generator := api.Group("/generator")
		generator.POST("/generate", generatorHandler.Generate)
		generator.POST("/apply", generatorHandler.Apply)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newTimetableService(
	timetableRepo *repository.TimetableRepository,
	teacherRepo *repository.TeacherRepository,
	classRepo *repository.ClassRepository,
	subjectRepo *repository.SubjectRepository,
	cacheRepo *repository.CacheRepository,
	metricsSvc *service.MetricsService,
	cfg *config.Config,
	validate *validator.Validate,
	logr *zap.Logger,
) *service.TimetableService {
	projection := cfg.Projection
	var cacheSvc *service.CacheService
	if cacheRepo != nil {
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, projection.CacheTTL, logr, projection.CacheEnabled)
	} else {
		projection.CacheEnabled = false
	}
	return service.NewTimetableService(timetableRepo, teacherRepo, classRepo, subjectRepo, cacheSvc, projection, validate, logr)
}
