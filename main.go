// Package main bookstore API.
//
// @title           Bookstore API
// @version         1.0
// @description     Bookstore service (auth, catalog, profiles).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/VirakOTAKU/book-selling-platform/app/echoServer"
	authctrl "github.com/VirakOTAKU/book-selling-platform/app/echoServer/controller/auth"
	bookctrl "github.com/VirakOTAKU/book-selling-platform/app/echoServer/controller/book"
	userctrl "github.com/VirakOTAKU/book-selling-platform/app/echoServer/controller/user"
	"github.com/VirakOTAKU/book-selling-platform/app/echoServer/validation"
	"github.com/VirakOTAKU/book-selling-platform/config"
	bookrepo "github.com/VirakOTAKU/book-selling-platform/repository/book"
	metadatarepo "github.com/VirakOTAKU/book-selling-platform/repository/metadata"
	userrepo "github.com/VirakOTAKU/book-selling-platform/repository/user"
	authsvc "github.com/VirakOTAKU/book-selling-platform/service/auth"
	booksvc "github.com/VirakOTAKU/book-selling-platform/service/book"
	usersvc "github.com/VirakOTAKU/book-selling-platform/service/user"
	"github.com/VirakOTAKU/book-selling-platform/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// storage: postgres when DATABASE_URL is set, in-memory otherwise
	var (
		ur userrepo.Repo
		br bookrepo.Repo
	)
	if cfg.DatabaseURL != "" {
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("db connect failed", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		ur = userrepo.New(db)
		br = bookrepo.New(db)
		log.Info("storage backend", "kind", "postgres")
	} else {
		ur = userrepo.NewMemory()
		br = bookrepo.NewMemory()
		log.Info("storage backend", "kind", "memory")
	}
	mr := metadatarepo.NewHTTP(cfg.ApiNinjasKey)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	bs := booksvc.New(br, mr)
	us := usersvc.New(ur)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	userC := &userctrl.Controller{Svc: us, V: v, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()
	e.HTTPErrorHandler = echoServer.ErrorHandler(cfg.StaticDir, log)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if st, err := os.Stat(cfg.StaticDir); err == nil && st.IsDir() {
		e.Static("/", cfg.StaticDir)
	}

	echoServer.Register(e, echoServer.C{
		Auth: authC,
		Book: bookC,
		User: userC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
