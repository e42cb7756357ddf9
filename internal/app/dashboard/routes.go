// Package dashboard собирает локальный дашборд: сессию, экраны поиска и HTTP-маршруты.
package dashboard

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/staking-bank/internal/config"
	"github.com/magabrotheeeer/staking-bank/internal/http/handlers/account"
	"github.com/magabrotheeeer/staking-bank/internal/http/handlers/admin"
	"github.com/magabrotheeeer/staking-bank/internal/http/handlers/investments"
	"github.com/magabrotheeeer/staking-bank/internal/http/handlers/newsletter"
	"github.com/magabrotheeeer/staking-bank/internal/http/handlers/withdrawals"
	"github.com/magabrotheeeer/staking-bank/internal/http/middlewarectx"
	"github.com/magabrotheeeer/staking-bank/internal/session"
)

// RegisterRoutes регистрирует все маршруты дашборда.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg config.RateLimit, sess *session.Session, screens admin.Screens, gatherer prometheus.Gatherer) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.RateLimitMiddleware(logger, cfg),
	)

	accountHandler := account.New(logger, sess)
	investmentsHandler := investments.New(logger, sess)
	withdrawalsHandler := withdrawals.New(logger, sess)
	adminHandler := admin.New(logger, sess, screens)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/session", accountHandler.Session)
		r.Post("/auth/login", accountHandler.Login)
		r.Post("/auth/register", accountHandler.Register)
		r.Post("/auth/forgot-password", accountHandler.ForgotPassword)
		r.Post("/auth/verify-email/{token}", accountHandler.VerifyEmail)
		r.Post("/auth/logout", accountHandler.Logout)
		r.Post("/newsletter", newsletter.New(logger, sess).ServeHTTP)
		r.Get("/investments/projection", investmentsHandler.Projection)

		// Группа с активной сессией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RequireAuth(logger, sess))
			r.Put("/profile", accountHandler.UpdateProfile)
			r.Get("/investments", investmentsHandler.List)
			r.Post("/investments", investmentsHandler.Create)
			r.Post("/investments/{id}/claim", investmentsHandler.Claim)
			r.Get("/withdrawals", withdrawalsHandler.List)
			r.Post("/withdrawals", withdrawalsHandler.Create)
		})

		// Группа администратора
		r.Route("/admin", func(r chi.Router) {
			r.Use(middlewarectx.RequireAdmin(logger, sess))
			r.Get("/queue", adminHandler.Queue)
			r.Put("/config/{asset}", adminHandler.UpdateRoiRate)

			r.Get("/users", adminHandler.Users)
			r.Put("/users/search", adminHandler.SearchUsers)
			r.Put("/users/{id}/admin", adminHandler.SetAdmin)
			r.Put("/users/{id}/block", adminHandler.ToggleBlock)
			r.Put("/users/{id}/password", adminHandler.ResetPassword)

			r.Get("/investments", adminHandler.Investments)
			r.Put("/investments/search", adminHandler.SearchInvestments)
			r.Put("/investments/{id}/approve", adminHandler.ApproveInvestment)
			r.Put("/investments/{id}/reject", adminHandler.RejectInvestment)
			r.Put("/investments/{id}/wallet", adminHandler.UpdateWallet)

			r.Get("/withdrawals", adminHandler.Withdrawals)
			r.Put("/withdrawals/search", adminHandler.SearchWithdrawals)
			r.Put("/withdrawals/{id}/approve", adminHandler.ApproveWithdrawal)
			r.Put("/withdrawals/{id}/reject", adminHandler.RejectWithdrawal)

			r.Get("/newsletter", adminHandler.Subscribers)
			r.Put("/newsletter/search", adminHandler.SearchSubscribers)
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
