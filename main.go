package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/controller"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/repository"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/core/service"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/infrastructure/db"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/infrastructure/db/adapter"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/infrastructure/logger"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/infrastructure/metrics"
	"github.com/Thanaphat465415241003/book-tracker-app/internal/infrastructure/token"
	"github.com/Thanaphat465415241003/book-tracker-app/pkg/responder"

	_ "github.com/Thanaphat465415241003/book-tracker-app/docs"
)

// @title Book Tracker API
// @version 1.0
// @description REST API for a personal book tracker: registration, login, profile and book management

// @host localhost:5000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	lg, err := logger.Init(logger.ConfigFromEnv())
	if err != nil {
		os.Stderr.WriteString("failed to init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer lg.Sync()
	sugar := lg.Sugar()

	if err := godotenv.Load(); err != nil {
		sugar.Warnf("couldn't load .env file: %v", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		sugar.Fatal("JWT_SECRET environment variable is required but not set")
	}

	dbConn, err := db.NewPostgresDB(sugar)
	if err != nil {
		sugar.Fatalf("failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	if err := db.RunMigrations(dbConn, sugar); err != nil {
		sugar.Fatalf("failed to run migrations: %v", err)
	}

	sqlAdapter := adapter.NewSQLAdapter(dbConn)
	tokenAuth := token.New([]byte(jwtSecret))
	jsonResponder := responder.NewJSONResponder()

	userRepo := repository.NewUserRepository(sqlAdapter)
	bookRepo := repository.NewBookRepository(sqlAdapter)

	authController := controller.NewAuthController(service.NewAuthService(userRepo, tokenAuth), jsonResponder, sugar)
	userController := controller.NewUserController(service.NewUserService(userRepo), jsonResponder, sugar)
	bookController := controller.NewBookController(service.NewBookService(bookRepo), jsonResponder, sugar)

	r := setupRouter(tokenAuth, jsonResponder, authController, userController, bookController)

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":5000"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sugar.Infow("server started", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("could not start server: %v", err)
		}
	}()

	<-done
	sugar.Info("server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		sugar.Errorf("server shutdown failed: %v", err)
	}

	sugar.Info("server stopped gracefully")
}

func setupRouter(
	tokenAuth *token.Auth,
	jsonResponder responder.Responder,
	authController *controller.AuthController,
	userController *controller.UserController,
	bookController *controller.BookController,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.HTTPMetricsMiddleware)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.Handler())

	// Swagger
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:5000/swagger/doc.json"),
	))

	r.Get("/api/health", func(w http.ResponseWriter, req *http.Request) {
		jsonResponder.Respond(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth routes
	r.Group(func(r chi.Router) {
		r.Post("/api/users/register", authController.Register)
		r.Post("/api/users/login", authController.Login)
	})

	// Profile routes
	r.Group(func(r chi.Router) {
		r.Use(tokenAuth.Middleware(jsonResponder))
		r.Get("/api/users/profile", userController.GetProfile)
		r.Put("/api/users/profile", userController.UpdateProfile)
	})

	// Book routes
	r.Group(func(r chi.Router) {
		r.Use(tokenAuth.Middleware(jsonResponder))
		r.Get("/api/books", bookController.ListBooks)
		r.Post("/api/books", bookController.AddBook)
		r.Put("/api/books/{id}", bookController.UpdateBook)
		r.Delete("/api/books/{id}", bookController.DeleteBook)
	})

	return r
}
