package main

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"pawmart/internal/config"
	"pawmart/internal/platform/mongodb"
	"pawmart/pkg/httpx"
	"pawmart/pkg/idempotency"
	"pawmart/pkg/logging"
	"pawmart/pkg/shutdown"

	adminapp "pawmart/internal/admin/application"
	adminhttp "pawmart/internal/admin/infrastructure/http"
	adminmongo "pawmart/internal/admin/infrastructure/mongo"
	cartapp "pawmart/internal/cart/application"
	carthttp "pawmart/internal/cart/infrastructure/http"
	cartmongo "pawmart/internal/cart/infrastructure/mongo"
	catalogapp "pawmart/internal/catalog/application"
	cataloghttp "pawmart/internal/catalog/infrastructure/http"
	catalogmongo "pawmart/internal/catalog/infrastructure/mongo"
	contentapp "pawmart/internal/content/application"
	contenthttp "pawmart/internal/content/infrastructure/http"
	contentmongo "pawmart/internal/content/infrastructure/mongo"
	orderapp "pawmart/internal/order/application"
	orderhttp "pawmart/internal/order/infrastructure/http"
	ordermongo "pawmart/internal/order/infrastructure/mongo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel)

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Mongo setup
	db, err := mongodb.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Error("mongo connect failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	// Redis backs the order idempotency guard
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	idemStore := idempotency.NewStore(rdb, cfg.IdempotencyTTL)

	// Repositories
	productRepo := catalogmongo.NewProductRepository(db)
	categoryRepo := catalogmongo.NewCategoryRepository(db)
	cartRepo := cartmongo.NewRepository(db)
	orderRepo := ordermongo.NewRepository(db)
	articleRepo := contentmongo.NewArticleRepository(db)
	testimonialRepo := contentmongo.NewTestimonialRepository(db)
	blogRepo := contentmongo.NewBlogRepository(db)
	adminRepo := adminmongo.NewAdminRepository(db)
	statsRepo := adminmongo.NewStatsRepository(db)

	for _, ensure := range []func(context.Context) error{
		cartRepo.EnsureIndexes,
		orderRepo.EnsureIndexes,
		blogRepo.EnsureIndexes,
		adminRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Error("index setup failed", "err", err)
			os.Exit(1)
		}
	}

	if cfg.SeedOnBoot {
		if err := mongodb.NewSeeder(log, db).Run(ctx); err != nil {
			log.Error("seeding failed", "err", err)
			os.Exit(1)
		}
	}

	// Services
	catalogSvc := catalogapp.NewService(log, productRepo, categoryRepo)
	cartSvc := cartapp.NewService(log, cartRepo, productRepo)
	orderSvc := orderapp.NewService(log, orderRepo, cartRepo, productRepo)
	contentSvc := contentapp.NewService(log, articleRepo, testimonialRepo, blogRepo, categoryNamer{catalogSvc})
	adminSvc := adminapp.NewService(log, adminRepo, statsRepo, cfg.JWTSecret)

	// Handlers
	catalogHandler := cataloghttp.NewHandler(log, catalogSvc)
	cartHandler := carthttp.NewHandler(log, cartSvc)
	orderHandler := orderhttp.NewHandler(log, orderSvc)
	contentHandler := contenthttp.NewHandler(log, contentSvc)
	adminHandler := adminhttp.NewHandler(log, adminSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Mount("/products", catalogHandler.ProductRoutes())
		api.Mount("/categories", catalogHandler.CategoryRoutes())
		api.Mount("/cart", cartHandler.Routes())
		api.With(idempotency.Middleware(log, idemStore, "orders")).
			Mount("/orders", orderHandler.Routes())
		api.Mount("/health", contentHandler.HealthRoutes())
		api.Mount("/blog", contentHandler.BlogRoutes())

		api.Route("/admin", func(ar chi.Router) {
			ar.Group(func(g chi.Router) {
				g.Use(adminHandler.RequireAuth)
				g.Mount("/stats", adminHandler.StatsRoutes())
				g.Mount("/products", catalogHandler.AdminProductRoutes())
				g.Mount("/categories", catalogHandler.AdminCategoryRoutes())
				g.Mount("/health", contentHandler.AdminHealthRoutes())
				g.Mount("/blog", contentHandler.AdminBlogRoutes())
			})
			ar.Mount("/", adminHandler.AuthRoutes())
		})
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("pawmart api shutdown complete")
}

// categoryNamer lets blog posts denormalize catalog category names
// without the content context importing catalog internals.
type categoryNamer struct {
	catalog *catalogapp.Service
}

func (n categoryNamer) CategoryName(ctx context.Context, id int) (string, error) {
	c, err := n.catalog.GetCategory(ctx, id)
	if err != nil {
		return "", err
	}
	return c.Name, nil
}
