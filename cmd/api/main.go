// @title Lumina API
// @version 1.0
// @description Course generation, adaptive lessons and learner progress for Lumina.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "lumina/cmd/api/docs"
	"lumina/internal/catalog"
	"lumina/internal/config"
	"lumina/internal/generator"
	"lumina/internal/handler"
	"lumina/internal/logger"
	"lumina/internal/middleware"
	"lumina/internal/service"
	"lumina/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ValidateServer(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := storage.Open(startCtx, cfg)
	cancelStart()
	if err != nil {
		appLogger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer store.Close()

	cat, err := catalog.Load()
	if err != nil {
		appLogger.Fatal("Failed to load content catalog", zap.Error(err))
	}
	appLogger.Info("Content catalog loaded",
		zap.Int("subjects", len(cat.Tags())),
		zap.Int("dictionary_entries", len(cat.Keys())),
	)

	genLogger := appLogger.Named("generator")
	courseGen := generator.NewCourseGenerator(cat,
		generator.WithLatency(cfg.Generator.CourseLatency),
		generator.WithLogger(genLogger),
	)
	adaptiveGen := generator.NewAdaptiveGenerator(
		generator.WithLatency(cfg.Generator.AdaptiveLatency),
		generator.WithLogger(genLogger),
	)
	tutor := generator.NewTutor(generator.WithLatency(cfg.Generator.TutorLatency))

	profileService := service.NewProfileService(store.Cache)
	progressService := service.NewProgressService(store.Cache)
	courseService := service.NewCourseService(courseGen, cat, store.Courses)
	lessonService := service.NewLessonService(store.Courses, adaptiveGen, progressService)
	tutorService := service.NewTutorService(tutor)
	authService, err := service.NewAuthService(store.Courses, profileService, cfg.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := store.Cache.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	handler.RegisterRoutes(app, handler.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Profile: handler.NewProfileHandler(profileService, progressService),
		Course:  handler.NewCourseHandler(courseService),
		Lesson:  handler.NewLessonHandler(lessonService),
		Tutor:   handler.NewTutorHandler(tutorService),
	}, middleware.Protected(authService))

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("storage", cfg.Storage.Driver),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
