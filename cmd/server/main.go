package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"github.com/pressly/goose/v3"

	"Parlor/internal/api/middleware"
	"Parlor/internal/api/routes"
	"Parlor/internal/config"
	"Parlor/internal/core/auth"
	"Parlor/internal/core/bookmarks"
	"Parlor/internal/core/comments"
	"Parlor/internal/core/likes"
	"Parlor/internal/core/newsfeed"
	"Parlor/internal/core/posts"
	"Parlor/internal/core/reposts"
	"Parlor/internal/core/subscriptions"
	"Parlor/internal/core/users"
	postgresRepo "Parlor/internal/db/postgres"
	redisStore "Parlor/internal/db/redis"
	"Parlor/internal/events"
	"Parlor/internal/mail"
	"Parlor/internal/notify"
	"Parlor/internal/security"
	"Parlor/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, "internal/db/migrations"); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	rdb, err := redisStore.NewClient(ctx, redisStore.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatal("Failed to connect to redis:", err)
	}
	defer rdb.Close()

	// Events are optional: without NATS_URL they are dropped
	var publisher events.Publisher = events.NopPublisher{}
	var nc *nats.Conn
	if cfg.NatsURL != "" {
		nc, err = nats.Connect(cfg.NatsURL, nats.Name("parlor-server"))
		if err != nil {
			log.Fatal("Failed to connect to nats:", err)
		}
		defer func() { _ = nc.Drain() }()
		publisher = events.NewNatsPublisher(nc, logger)
		log.Printf("Publishing events to %s", cfg.NatsURL)
	}

	hasher := security.NewArgon2Hasher(nil)
	tokens, err := security.NewJWTProvider(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
	if err != nil {
		log.Fatal("Failed to initialize token provider:", err)
	}
	mailer := mail.New(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	}, logger)

	// Initialize repositories and services
	userRepo := postgresRepo.NewUserRepository(db)
	postRepo := postgresRepo.NewPostRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)
	subscriptionRepo := postgresRepo.NewSubscriptionRepository(db)
	likeRepo := postgresRepo.NewLikeRepository(db)
	repostRepo := postgresRepo.NewRepostRepository(db)
	bookmarkRepo := postgresRepo.NewBookmarkRepository(db)
	feedRepo := postgresRepo.NewFeedRepository(db)

	userService := users.NewUserService(userRepo, logger)
	authService := auth.NewAuthService(
		userService,
		userRepo,
		hasher,
		tokens,
		redisStore.NewResetTokenStore(rdb),
		mailer,
		publisher,
		auth.Config{ResetURLBase: cfg.ResetURLBase, ResetTokenTTL: cfg.ResetTokenTTL},
		logger,
	)
	postService := posts.NewPostService(postRepo, publisher, logger)
	commentService := comments.NewCommentService(commentRepo, publisher, logger)
	subscriptionService := subscriptions.NewSubscriptionService(subscriptionRepo, postgresRepo.NewUserLookup(db), publisher, logger)
	likeService := likes.NewLikeService(likeRepo, publisher, logger)
	repostService := reposts.NewRepostService(repostRepo, publisher, logger)
	bookmarkService := bookmarks.NewBookmarkService(bookmarkRepo)
	feedService := newsfeed.NewFeedService(subscriptionRepo, feedRepo, userRepo, logger)

	if nc != nil {
		consumer := events.NewConsumer(nc, "parlor-notify", logger)
		notify.NewNotifier(userRepo, mailer, logger).Register(consumer)
		go func() {
			if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("Event consumer stopped: %v", err)
			}
		}()
	}

	authMiddleware := middleware.NewJWTAuthMiddleware(tokens)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, 1*time.Minute)
	r.Use(rateLimiter.Middleware)

	writeLimiter := middleware.NewWriteLimiter(cfg.WriteLimitPerSec, cfg.WriteLimitBurst)

	r.Route("/api", func(r chi.Router) {
		// Identity is resolved once; routes that need it add RequireAuth
		r.Use(authMiddleware.OptionalAuth)
		r.Use(writeLimiter.Middleware)

		routes.RegisterAuthRoutes(r, authService, authMiddleware)
		routes.RegisterUserRoutes(r, userService, authMiddleware)
		routes.RegisterPostRoutes(r, postService, authMiddleware)
		routes.RegisterCommentRoutes(r, commentService, authMiddleware)
		routes.RegisterSubscriptionRoutes(r, subscriptionService, authMiddleware)
		routes.RegisterLikeRoutes(r, likeService, authMiddleware)
		routes.RegisterRepostRoutes(r, repostService, authMiddleware)
		routes.RegisterBookmarkRoutes(r, bookmarkService, authMiddleware)
		routes.RegisterFeedRoutes(r, feedService, authMiddleware)
	})

	// Landing page for emailed reset links
	templates, err := web.NewTemplates()
	if err != nil {
		log.Fatal("Failed to load templates:", err)
	}
	webHandlers := web.NewHandlers(templates, authService)
	r.Get("/reset-password", webHandlers.ResetPasswordPageHandler)
	r.With(writeLimiter.Middleware).Post("/reset-password", webHandlers.ResetPasswordSubmitHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Parlor starting on port %s (%s)", cfg.Port, cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProd() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
