package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/gw-movie-catalog/internal/breaker"
	"github.com/sbilibin2017/gw-movie-catalog/internal/handlers"
	"github.com/sbilibin2017/gw-movie-catalog/internal/jwt"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
	"github.com/sbilibin2017/gw-movie-catalog/internal/middlewares"
	"github.com/sbilibin2017/gw-movie-catalog/internal/repositories"
	"github.com/sbilibin2017/gw-movie-catalog/internal/services"
	"github.com/sbilibin2017/gw-movie-catalog/internal/workers"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

const uploadsPath = "/uploads"

// @title gw-movie-catalog API
// @version 1.0.0
// @description Movie catalogue with reviews, ratings and watchlists
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// app holds the services the router is built from.
type app struct {
	db        *sqlx.DB
	access    *jwt.JWT
	auth      *services.AuthService
	movies    *services.MovieService
	reviews   *services.ReviewService
	watchlist *services.WatchListService
	rankings  *services.RankingService
}

// run initializes the logger, database, Redis, the optional search index and
// event stream, the outbox relay and the HTTP server, and blocks until a
// shutdown signal arrives or a component fails.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	movieRepo := repositories.NewMovieRepository(db, txGetter)
	genreRepo := repositories.NewGenreRepository(db, txGetter)
	reviewRepo := repositories.NewReviewRepository(db, txGetter)
	watchListRepo := repositories.NewWatchListRepository(db, txGetter)
	outboxRepo := repositories.NewOutboxRepository(db, txGetter)
	movieCacheRepo := repositories.NewMovieCacheRepository(rdb, cfg.RedisExp)
	rankingRepo := repositories.NewRankingRepository(rdb)

	cacheSink := workers.NewCacheSink(movieCacheRepo, rankingRepo)
	sinks := []workers.Sink{cacheSink}
	movieOpts := []services.MovieServiceOpt{services.WithDetailCache(movieCacheRepo)}

	// Optional Elasticsearch mirror
	if len(cfg.ElasticAddresses) > 0 {
		es, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: cfg.ElasticAddresses,
			Username:  cfg.ElasticUsername,
			Password:  cfg.ElasticPassword,
		})
		if err != nil {
			return fmt.Errorf("Elasticsearch client error: %w", err)
		}
		searchRepo := repositories.NewMovieSearchRepository(es, cfg.ElasticIndex)
		if err := searchRepo.EnsureIndex(ctx); err != nil {
			// listing falls back to PostgreSQL until the index becomes reachable
			logger.Log.Warnw("failed to ensure search index", "index", cfg.ElasticIndex, "error", err)
		}
		movieOpts = append(movieOpts, services.WithSearch(searchRepo, breaker.Config{Name: "search-listing"}))
		sinks = append(sinks, workers.NewSearchSink(searchRepo, breaker.Config{Name: "search-sink"}))
		logger.Log.Infow("Elasticsearch mirror enabled", "addresses", cfg.ElasticAddresses, "index", cfg.ElasticIndex)
	}

	// Optional Kafka event stream
	if len(cfg.KafkaBrokers) > 0 {
		kafkaWriter := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		}
		defer kafkaWriter.Close()
		sinks = append(sinks, workers.NewEventSink(kafkaWriter))
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Tokens
	access := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))
	refresh := jwt.New(jwt.WithSecretKey(cfg.JWTRefreshSecretKey), jwt.WithExpiration(cfg.JWTRefreshExp))

	// Services
	thumbnails := services.NewThumbnailStore(cfg.UploadDir, uploadsPath, cfg.UploadMaxBytes, cfg.UploadWidth, cfg.UploadQuality)
	a := &app{
		db:        db,
		access:    access,
		auth:      services.NewAuthService(userReadRepo, userWriteRepo, access, refresh),
		movies:    services.NewMovieService(movieRepo, genreRepo, reviewRepo, outboxRepo, thumbnails, movieOpts...),
		reviews:   services.NewReviewService(movieRepo, reviewRepo, outboxRepo, services.WithDetailEviction(movieCacheRepo)),
		watchlist: services.NewWatchListService(movieRepo, watchListRepo),
		rankings:  services.NewRankingService(rankingRepo, movieRepo, genreRepo),
	}

	relay := workers.NewRelay(outboxRepo, movieRepo, genreRepo, sinks,
		workers.WithInterval(cfg.OutboxInterval),
		workers.WithBatchSize(cfg.OutboxBatchSize),
		workers.WithMaxAttempts(cfg.OutboxMaxAttempts),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(cfg, a),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctxShutdown)

	g.Go(func() error {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return relay.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires the middleware stack and every route.
func newRouter(cfg *config, a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(cfg.RateLimitRequests, cfg.RateLimitWindow))
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	tx := middlewares.TxMiddleware(a.db)
	auth := middlewares.AuthMiddleware(a.access)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.With(tx).Post("/users/register", handlers.NewRegisterHandler(a.auth))
		r.Post("/users/login", handlers.NewLoginHandler(a.auth, cfg.JWTRefreshExp))
		r.Post("/users/refresh", handlers.NewRefreshHandler(a.auth))
		r.Post("/users/logout", handlers.NewLogoutHandler())

		r.Get("/movies", handlers.NewListMoviesHandler(a.movies))
		r.Get("/movies/top", handlers.NewTopMoviesHandler(a.rankings))
		r.Get("/movies/popular", handlers.NewPopularMoviesHandler(a.rankings))
		r.Get("/genres", handlers.NewGenresHandler(a.movies))
		r.Get("/movie/{id}", handlers.NewGetMovieHandler(a.movies))
		r.Get("/{id}/reviews", handlers.NewListReviewsHandler(a.reviews))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Get("/usermovie", handlers.NewOwnedMoviesHandler(a.movies))
			r.Get("/watchlist", handlers.NewListWatchListHandler(a.watchlist))

			r.Group(func(r chi.Router) {
				r.Use(tx)

				r.Post("/usermovie", handlers.NewCreateMovieHandler(a.movies))
				r.Put("/usermovie/{id}", handlers.NewUpdateMovieHandler(a.movies))
				r.Delete("/usermovie/{id}", handlers.NewDeleteMovieHandler(a.movies))

				r.Post("/{id}/review", handlers.NewSubmitReviewHandler(a.reviews))
				r.Delete("/{id}/review", handlers.NewDeleteReviewHandler(a.reviews))

				r.Post("/watchlist", handlers.NewAddWatchListHandler(a.watchlist))
				r.Delete("/watchlist/{id}", handlers.NewRemoveWatchListHandler(a.watchlist))
			})
		})
	})

	r.Handle(uploadsPath+"/*", http.StripPrefix(uploadsPath+"/", http.FileServer(http.Dir(cfg.UploadDir))))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}
