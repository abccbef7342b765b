package main

import (
	"fmt"
	"os"
	"promo-tracking-backend/cmd/qr-tracking/apis"
	"promo-tracking-backend/cmd/qr-tracking/model"
	"promo-tracking-backend/cmd/qr-tracking/repository"
	"strings"

	"github.com/goforj/godump"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const serviceName = "qr-tracking-service"

type EnvCfg struct {
	Port       int    `envconfig:"PORT" default:"8081"`
	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBPath     string `envconfig:"DB_PATH" default:"database/app.db"`
	DBHost     string `envconfig:"DB_HOST"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	StaticDir  string `envconfig:"STATIC_DIR" default:"static"`
	APIKey     string `envconfig:"API_KEY"`
	Debug      bool   `envconfig:"DEBUG"`
}

func openDatabase(cfg EnvCfg) (*gorm.DB, error) {

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	if cfg.DBDriver == "postgres" {
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
		)
		return gorm.Open(postgres.Open(dsn), gormCfg)
	}

	return gorm.Open(sqlite.Open(cfg.DBPath), gormCfg)
}

func main() {

	err := os.Setenv("TZ", "UTC")
	if err != nil {
		panic(err)
	}

	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}

	var cfg EnvCfg
	err = envconfig.Process("QR_TRACKING", &cfg)
	if err != nil {
		logrus.WithError(err).Fatal("invalid environment configuration")
	}

	if cfg.Debug {
		godump.Dump(cfg)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}

	models := []interface{}{
		&model.User{},
		&model.QRCode{},
		&model.QRScan{},
		&model.UserSubscription{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			logrus.WithError(err).Fatal("auto migration failed")
		}
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	rootg := e.Group("")
	apig := rootg.Group("/api", apis.APIKeyAuth(cfg.APIKey))

	apis.
		NewHealthCheckAPI(serviceName).
		Setup(rootg)

	apis.
		NewUserAPI(repository.NewUserRepo(db)).
		Setup(apig)

	qrRepo := repository.NewQRCodeRepo(db)

	apis.
		NewQRCodeAPI(qrRepo).
		Setup(apig)

	apis.
		NewScanAPI(qrRepo).
		Setup(apig)

	apis.
		NewSubscriptionAPI(repository.NewSubscriptionRepo(db)).
		Setup(apig)

	// Unmatched paths serve the SPA bundle, falling back to index.html.
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  cfg.StaticDir,
		Index: "index.html",
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/api") || p == "/health"
		},
	}))

	logrus.WithField("port", cfg.Port).Info("starting " + serviceName)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
