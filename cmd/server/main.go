package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/course-booking/internal/config"
	"github.com/iliyamo/course-booking/internal/database"
	"github.com/iliyamo/course-booking/internal/handler"
	"github.com/iliyamo/course-booking/internal/middleware"
	"github.com/iliyamo/course-booking/internal/model"
	"github.com/iliyamo/course-booking/internal/queue"
	"github.com/iliyamo/course-booking/internal/repository"
	"github.com/iliyamo/course-booking/internal/router"
	"github.com/iliyamo/course-booking/internal/utils"
)

func main() {
	_ = godotenv.Load() // .env is optional; real environments set vars directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("apply schema: %v", err)
	}

	courseRepo := repository.NewCourseRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	adminRepo := repository.NewAdminRepo(db)

	seedAdmin(ctx, adminRepo, cfg)

	// Redis is optional: a nil client turns cache and rate limiting into
	// pass-through middleware.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	courseHandler := handler.NewCourseHandler(courseRepo)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	locationHandler := handler.NewLocationHandler(locationRepo)
	catalogHandler := handler.NewCatalogHandler(courseRepo, categoryRepo, locationRepo)
	bookingHandler := handler.NewBookingHandler(bookingRepo, courseRepo)
	authHandler := handler.NewAuthHandler(cfg, adminRepo)

	e := echo.New()
	router.RegisterPublic(e, courseHandler, categoryHandler, locationHandler,
		catalogHandler, bookingHandler, authHandler, cacheMW, rateMW)
	router.RegisterAdmin(e, courseHandler, categoryHandler, locationHandler, cfg.JWTSecret)

	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// seedAdmin inserts the env-configured admin account when both credentials
// are present. INSERT IGNORE keeps restarts idempotent.
func seedAdmin(ctx context.Context, admins *repository.AdminRepo, cfg config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("no admin credentials configured; write endpoints unreachable until seeded")
		return
	}
	hash, err := utils.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}
	if err := admins.Seed(ctx, &model.Admin{
		ID:           uuid.NewString(),
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
	}); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
}
