package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/playden/backend/docs"
	"github.com/playden/backend/internal/config"
	"github.com/playden/backend/internal/database"
	"github.com/playden/backend/internal/handlers"
	mW "github.com/playden/backend/internal/middleware"
	"github.com/playden/backend/internal/services"
	"github.com/playden/backend/internal/store"
	"github.com/playden/backend/internal/store/filestore"
	"github.com/playden/backend/internal/store/pgstore"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title PlayDen POS API
// @version 1.0
// @description Point-of-sale API for a walk-in gaming lounge
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	// Initialize config
	viper.SetConfigFile(".env") // explicitly point to .env file
	viper.AutomaticEnv()        // allow environment variables to override .env

	viper.SetEnvPrefix("")

	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("storage.driver", "STORAGE_DRIVER")

	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.name", "DATABASE_NAME")
	viper.BindEnv("database.ssl_mode", "DATABASE_SSL_MODE")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Config file not found, using defaults: %v", err)
	}

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("storage.driver", "json")

	// Initialize Swagger docs
	docs.SwaggerInfo.Title = "PlayDen POS API"
	docs.SwaggerInfo.Description = "Point-of-sale API for a walk-in gaming lounge"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + viper.GetString("server.port")
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	cfg := config.LoadPOSConfig()

	// Storage backend: flat JSON files for a single counter, postgres when
	// several tills share one lounge.
	var st store.Store
	switch driver := viper.GetString("storage.driver"); driver {
	case "json":
		fs, err := filestore.New(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to open data dir: %v", err)
		}
		st = fs
		log.Printf("Using JSON file storage in %s", cfg.DataDir)
	case "postgres":
		db := database.InitDatabase()
		defer db.Close()
		pg, err := pgstore.New(db)
		if err != nil {
			log.Fatalf("Failed to initialize postgres store: %v", err)
		}
		st = pg
		log.Println("Using postgres storage")
	default:
		log.Fatalf("Unknown storage driver %q (want json or postgres)", driver)
	}

	redisClient := database.InitRedis()
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Initialize services
	catalog, err := services.NewCatalogService(st, cfg.Stations)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	sessions, err := st.LoadSessions()
	if err != nil {
		log.Fatalf("Failed to load sessions: %v", err)
	}
	if len(sessions) > 0 {
		log.Printf("Restored %d active session(s) from storage", len(sessions))
	}
	ledger := services.NewSessionLedger(sessions)

	users, err := st.LoadUsers()
	if err != nil {
		log.Fatalf("Failed to load users: %v", err)
	}
	userService := services.NewUserService(users)

	billing := services.NewBillingEngine(cfg.LoyaltyRate, cfg.FallbackHourlyRate)
	invoices := services.NewInvoiceService(cfg.InvoiceDir, cfg.SofficeBin, cfg.UPIVPA, cfg.LoungeName)

	posService := services.NewPOSService(catalog, ledger, userService, billing, invoices, st, redisClient)
	posHandler := handlers.NewPOSHandler(posService)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mW.SecurityHeaders)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Access-Control-Allow-Origin"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:"+viper.GetString("server.port")+"/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/games", posHandler.ListGames)
		r.Post("/games/price", posHandler.UpdatePrice)

		r.Get("/stations", posHandler.GetStations)
		r.Get("/sessions", posHandler.GetSessions)
		r.Post("/sessions/start", posHandler.StartSession)
		r.Post("/sessions/end", posHandler.EndSession)

		r.Get("/users/{mobile}", posHandler.GetUser)
		r.Get("/invoices", posHandler.ListInvoices)
		r.Get("/invoices/{invoiceID}/qr", posHandler.GetInvoiceQR)
	})

	// Rendered invoices, then the counter UI as the catch-all
	r.Handle("/invoices/*", http.StripPrefix("/invoices/", mW.InvoiceFileServer(cfg.InvoiceDir)))
	r.Handle("/*", mW.StaticFileServer(cfg.StaticDir))

	port := os.Getenv("PORT")
	if port == "" {
		port = viper.GetString("server.port")
	}

	// Start server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server stopped")
}
