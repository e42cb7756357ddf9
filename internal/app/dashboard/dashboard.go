package dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/staking-bank/internal/apiclient"
	"github.com/magabrotheeeer/staking-bank/internal/config"
	"github.com/magabrotheeeer/staking-bank/internal/http/handlers/admin"
	"github.com/magabrotheeeer/staking-bank/internal/lib/sl"
	"github.com/magabrotheeeer/staking-bank/internal/query"
	"github.com/magabrotheeeer/staking-bank/internal/session"
	"github.com/magabrotheeeer/staking-bank/internal/state"
	"github.com/magabrotheeeer/staking-bank/internal/tokenstore"
)

// App локальный дашборд поверх удалённого API.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	session *session.Session
	screens admin.Screens
	tokens  tokenstore.Store
}

// New собирает зависимости дашборда. Сессия еще не инициализирована, это делает Run.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "dashboard.New"

	tokens, err := tokenstore.New(ctx, cfg.TokenStorage, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client := apiclient.New(cfg.API, tokens, logger, apiclient.WithMetrics(apiclient.NewMetrics(reg)))
	store := state.NewStore(state.Initial(), logger)
	sess := session.New(client, tokens, store, logger)

	screens := admin.Screens{
		Users:       query.NewUserManagement(ctx, client, sess, cfg.Search, logger),
		Investments: query.NewInvestmentRequests(ctx, client, sess, cfg.Search, logger),
		Withdrawals: query.NewWithdrawalRequests(ctx, client, sess, cfg.Search, logger),
		Newsletter:  query.NewNewsletter(ctx, client, cfg.Search, logger),
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg.RateLimit, sess, screens, reg)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	logger.Debug("dashboard assembled", sl.Op(op), slog.String("api", client.BaseURL()))

	return &App{
		server:  srv,
		logger:  logger,
		session: sess,
		screens: screens,
		tokens:  tokens,
	}, nil
}

// Handler возвращает корневой обработчик, используется в тестах.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run инициализирует сессию и обслуживает HTTP до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	go a.session.Bootstrap(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	a.screens.Users.Close()
	a.screens.Investments.Close()
	a.screens.Withdrawals.Close()
	a.screens.Newsletter.Close()

	if c, ok := a.tokens.(io.Closer); ok {
		if err := c.Close(); err != nil {
			a.logger.Error("failed to close token storage", sl.Err(err))
		}
	}
}
