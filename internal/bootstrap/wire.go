package bootstrap

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/acmehq/dashboard/services/billing-service/internal/application/account"
	"github.com/acmehq/dashboard/services/billing-service/internal/application/invoice"
	"github.com/acmehq/dashboard/services/billing-service/internal/config"
	"github.com/acmehq/dashboard/services/billing-service/internal/infrastructure/caching/redis"
	"github.com/acmehq/dashboard/services/billing-service/internal/infrastructure/db/postgres"
	"github.com/acmehq/dashboard/services/billing-service/internal/infrastructure/security"
	"github.com/acmehq/dashboard/services/billing-service/internal/logger"
	"github.com/acmehq/dashboard/services/billing-service/internal/transport/http/handlers"
	"github.com/acmehq/dashboard/services/billing-service/internal/transport/http/middleware"
	"github.com/acmehq/dashboard/services/billing-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing.
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(dsn string, debug bool) (DB, error)

	NewCache func(addr string) (Cache, error)

	NewRouter func(router.Deps) (http.Handler, error)
}

// DB is what bootstrap needs from config.NewDB; handlers and repos see the
// concrete *sql.DB through defaultDeps.
type DB interface {
	Close() error
}

type Cache interface {
	invoice.Cache
	Close() error
}

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB: func(dsn string, debug bool) (DB, error) {
			return config.NewDB(dsn, debug)
		},
		NewCache: func(addr string) (Cache, error) {
			return redis.New(addr)
		},
		NewRouter: router.New,
	}
}

/*
========================
 Core bootstrap logic
========================
*/

type clockUTC struct{}

func (clockUTC) Now() time.Time { return time.Now().UTC() }

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db
	db, err := deps.NewDB(cfg.DatabaseURL, cfg.DBDebug)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	sqlDB, err := asSQLDB(db)
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	userRepo := postgres.NewUserRepo(sqlDB)
	invoiceRepo := postgres.NewInvoiceRepo(sqlDB)

	// 2) cache (best-effort: the listing cache is an optimization, not a
	// dependency)
	var cache invoice.Cache
	if cfg.RedisAddr != "" && deps.NewCache != nil {
		c, err := deps.NewCache(cfg.RedisAddr)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; listing cache disabled")
		} else {
			logger.Logger.Info().Msg("redis connected")
			cache = c
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	// 3) security
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, "billing-service")

	// 4) application services
	accountSvc := account.NewService(userRepo, hasher, signer, account.Config{
		AccessTTL: cfg.AccessTokenTTL,
	})
	invoiceSvc := invoice.New(invoiceRepo, clockUTC{}, cache, 0, 0)

	// 5) transport
	authMW := middleware.NewAuth(signer)

	h, err := deps.NewRouter(router.Deps{
		Health:   handlers.NewHealthHandler(sqlDB),
		Account:  handlers.NewAccountHandler(accountSvc, "/login"),
		Invoices: handlers.NewInvoicesHandler(invoiceSvc),
		AuthMW:   authMW.Require,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() { runCleanup(cleanupFns) }
	return srv, cleanup, nil
}

func asSQLDB(db DB) (*sql.DB, error) {
	sqlDB, ok := db.(*sql.DB)
	if !ok {
		return nil, errors.New("bootstrap: NewDB did not return *sql.DB")
	}
	return sqlDB, nil
}

func runCleanup(fns []func()) {
	// close in reverse acquisition order
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
