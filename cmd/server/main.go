package main

import (
	"github.com/sirupsen/logrus"

	"socialnet/backend/internal/config"
	"socialnet/backend/internal/database"
	"socialnet/backend/internal/logger"
	"socialnet/backend/internal/monitoring"
	"socialnet/backend/internal/router"

	// Swagger imports
	_ "socialnet/backend/docs" // This is important for swag to find the generated docs
)

func init() {
	logger.InitLogger()
	config.LoadConfig()
}

// @title           Socialnet API
// @version         1.0
// @description     This is the API for the Socialnet service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	monitoring.RegisterMetrics()

	r := router.Setup()

	logrus.Infof("Server is running on :%s", config.AppConfig.Port)
	logrus.Info("Swagger UI is available at /swagger/index.html")
	logrus.Fatal(r.Run(":" + config.AppConfig.Port))
}
