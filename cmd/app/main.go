package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"flowgic/cmd"
	flowgichttp "flowgic/internal/adapters/in/http"
	"flowgic/internal/adapters/out/postgres/eventrepo"
	"flowgic/internal/adapters/out/postgres/financialrepo"
	"flowgic/internal/adapters/out/postgres/orderrepo"
	"flowgic/internal/adapters/out/postgres/vehiclerepo"
	"flowgic/internal/generated/servers"
	"flowgic/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if configs.DelayScanEnabled {
		delayScan := jobs.NewDelayScanJob(app.CreateMarkOverdueOrdersCommandHandler(), logger)
		if err := delayScan.Start(); err != nil {
			log.Fatalf("Failed to start delay scan job: %v", err)
		}
		defer delayScan.Stop()
	}

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		DelayScanEnabled: os.Getenv("DELAY_SCAN_ENABLED") == "true",
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&financialrepo.FinancialDTO{},
		&eventrepo.OrderEventDTO{},
		&vehiclerepo.VehicleDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Validator = flowgichttp.NewRequestValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := flowgichttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateAssignOrderCommandHandler(),
		app.CreateMarkOrderViewedCommandHandler(),
		app.CreateEnsureFinancialCommandHandler(),
		app.CreateApplyPaymentCommandHandler(),
		app.CreateUpdateFinancialsCommandHandler(),
		app.CreateCreateVehicleCommandHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetOrderSummaryQueryHandler(),
		app.CreateGetOrderHistoryQueryHandler(),
		app.CreateGetAvailableVehiclesQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
