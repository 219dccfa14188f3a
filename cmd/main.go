package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/pizzaria-api/docs"
	"github.com/franciscosanchezn/pizzaria-api/internal/config"
	"github.com/franciscosanchezn/pizzaria-api/internal/controllers"
	"github.com/franciscosanchezn/pizzaria-api/internal/database"
	"github.com/franciscosanchezn/pizzaria-api/internal/middleware"
	"github.com/franciscosanchezn/pizzaria-api/internal/services"
	"github.com/franciscosanchezn/pizzaria-api/internal/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

var (
	db            *gorm.DB
	configuration *config.Config
)

// @title Pizzaria API
// @version 1.0
// @description Pizzaria order management: menu, customers and orders
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", configuration.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    configuration.OTelEndpoint,
		ServiceName: configuration.ServiceName,
	})
	checkPanicErr(err)

	// Initialize database connection
	setupDatabase(ctx, configuration)

	// Initialize services and controllers
	pizzaService := services.NewPizzaService(db)
	customerService := services.NewCustomerService(db)
	orderService := services.NewOrderService(db)

	if configuration.SeedMenu {
		seedMenu(ctx, pizzaService)
	}

	// Initialize Gin router
	router := setupRouter(
		controllers.NewPizzaController(pizzaService),
		controllers.NewCustomerController(customerService, orderService),
		controllers.NewOrderController(orderService),
	)

	// Start the server
	srv := &http.Server{
		Addr:              fmt.Sprintf("%v:%d", configuration.Host, configuration.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received, draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shut down")
	}
	if err := database.Close(db); err != nil {
		log.WithError(err).Warn("Failed to close database pool")
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.WithError(err).Warn("Failed to flush telemetry")
	}
	log.Info("Server stopped")
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment.
// LOG_LEVEL overrides the environment default when it holds a valid level.
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
		gin.SetMode(gin.ReleaseMode)
	default:
		log.SetLevel(log.InfoLevel)
	}

	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}
	database.SetLevel(log.GetLevel())
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// setupDatabase connects to the store and prepares the schema. An unreachable store does
// not stop the process: requests fail until the background retry succeeds.
func setupDatabase(ctx context.Context, conf *config.Config) {
	var err error
	db, err = database.InitDatabase(ctx, conf.Database)
	if db == nil {
		checkPanicErr(err)
	}
	if err != nil {
		log.WithError(err).Error("Database unavailable, serving requests and retrying schema setup in background")
		go func() {
			if err := database.EnsureSchemaWithRetry(ctx, db); err != nil {
				log.WithError(err).Warn("Schema setup abandoned")
			}
		}()
		return
	}

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.WithError(err).Error("Schema setup failed, retrying in background")
		go func() {
			if err := database.EnsureSchemaWithRetry(ctx, db); err != nil {
				log.WithError(err).Warn("Schema setup abandoned")
			}
		}()
	}
}

// seedMenu fills an empty catalog with the default menu
func seedMenu(ctx context.Context, pizzaService services.PizzaService) {
	if err := pizzaService.SeedMenu(ctx); err != nil {
		log.WithError(err).Warn("Failed to seed menu")
		return
	}
	log.Info("Menu seeding finished")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(pizzas controllers.PizzaController, customers controllers.CustomerController, orders controllers.OrderController) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		otelgin.Middleware(configuration.ServiceName),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.CORS(configuration.CORSAllowedOrigins),
	)

	// Define routes
	setupRoutes(router, pizzas, customers, orders)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, pizzas controllers.PizzaController, customers controllers.CustomerController, orders controllers.OrderController) {
	router.GET("/", rootHandler)

	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	controllers.RegisterRoutes(router, pizzas, customers, orders)

	if info, err := os.Stat(configuration.StaticDir); err == nil && info.IsDir() {
		log.WithField("static_dir", configuration.StaticDir).Info("Serving static files")
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(configuration.StaticDir))))
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// rootHandler answers the plain-text liveness check
func rootHandler(c *gin.Context) {
	c.String(http.StatusOK, "API da Pizzaria funcionando")
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running and the database answers
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	status, code, dbStatus := "healthy", http.StatusOK, "up"
	if err := database.Ping(c.Request.Context(), db); err != nil {
		log.WithError(err).Warn("Health check database ping failed")
		status, code, dbStatus = "degraded", http.StatusServiceUnavailable, "down"
	}

	c.JSON(code, gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   configuration.ServiceName,
	})
}
