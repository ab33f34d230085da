package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "dealtrack/internal/adapter/http"
	appmw "dealtrack/internal/adapter/middleware"
	"dealtrack/internal/adapter/repository/mysql"
	"dealtrack/internal/config"
	"dealtrack/internal/dealsource"
	"dealtrack/internal/infrastructure/cache"
	"dealtrack/internal/infrastructure/db"
	commentuc "dealtrack/internal/usecase/comment"
	dealuc "dealtrack/internal/usecase/deal"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	dealRepo := mysql.NewDealRepository(gdb)
	commentRepo := mysql.NewCommentRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)

	var assets dealsource.AssetFetcher = dealsource.FileAsset{Path: cfg.CSVAssetPath}
	if cfg.CSVAssetURL != "" {
		assets = dealsource.NewHTTPAsset(cfg.CSVAssetURL, cfg.HTTPTimeout)
	}
	loader := dealsource.NewLoader(dealsource.RepositoryRemote{Repo: dealRepo}, assets)

	dealUC := dealuc.NewUsecase(dealRepo, loader)
	commentUC := commentuc.NewUsecase(dealRepo, commentRepo)

	h := httpadp.NewHandler()
	dealH := httpadp.NewDealHandler(dealUC)
	commentH := httpadp.NewCommentHandler(commentUC)
	authH := httpadp.NewAuthHandler(userRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api", appmw.JWTAuth([]byte(cfg.JWTSecret)))
	if rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB); err != nil {
		log.Printf("redis unavailable, idempotency disabled: %v", err)
	} else {
		api.Use(appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	// routes
	api.GET("/auth/user", authH.CurrentUser)

	api.GET("/deals", dealH.ListDeals)
	api.POST("/deals", dealH.CreateDeal)
	api.GET("/deals/:id", dealH.GetDeal)
	api.PATCH("/deals/:id", dealH.UpdateDeal)
	api.DELETE("/deals/:id", dealH.DeleteDeal)

	api.GET("/deals/:id/comments", commentH.ListComments)
	api.POST("/deals/:id/comments", commentH.CreateComment)
	api.PATCH("/comments/:id", commentH.UpdateComment)
	api.DELETE("/comments/:id", commentH.DeleteComment)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
