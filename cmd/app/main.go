package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"parcelmarket/cmd"
	httpadapter "parcelmarket/internal/adapters/in/http"
	"parcelmarket/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	gormDB, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := cmd.MigrateDatabase(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateBroadcastPendingParcelsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateParcelCommandHandler(),
		app.CreateNotifyCarriersCommandHandler(),
		app.CreateAcceptParcelCommandHandler(),
		app.CreateSubmitMeasurementsCommandHandler(),
		app.CreateRecordStopArrivalCommandHandler(),
		app.CreateUpdateParcelStatusCommandHandler(),
		app.CreateTopupBalanceCommandHandler(),
		app.CreateAddAddressCommandHandler(),
		app.CreateDeleteAddressCommandHandler(),
		app.CreateUpdateCarrierProfileCommandHandler(),
		app.CreateTrackParcelQueryHandler(),
		app.CreateGetAvailableParcelsQueryHandler(),
		app.CreateGetBalanceQueryHandler(),
		app.CreateGetTransactionsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
