// Package middlewarectx содержит HTTP middleware дашборда: ограничение
// частоты запросов и проверку состояния сессии перед вызовом обработчика.
//
// В отличие от сервера, дашборд не принимает токен от клиента: токен хранится
// в сессии процесса, поэтому проверяется снимок её состояния.
package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/staking-bank/internal/http/response"
	"github.com/magabrotheeeer/staking-bank/internal/state"
)

// StateSource отдаёт снимок состояния сессии.
type StateSource interface {
	State() state.State
}

// RequireAuth пропускает запрос только при активной сессии, иначе 401.
func RequireAuth(log *slog.Logger, src StateSource) func(http.Handler) http.Handler {
	return guard(log, src, "middlewarectx.RequireAuth", func(st state.State) (int, string, bool) {
		if !st.Authenticated() {
			return http.StatusUnauthorized, "not authenticated", false
		}
		return 0, "", true
	})
}

// RequireAdmin пропускает запрос только для администратора: 401 без сессии, 403 без прав.
func RequireAdmin(log *slog.Logger, src StateSource) func(http.Handler) http.Handler {
	return guard(log, src, "middlewarectx.RequireAdmin", func(st state.State) (int, string, bool) {
		switch {
		case !st.Authenticated():
			return http.StatusUnauthorized, "not authenticated", false
		case !st.IsAdmin():
			return http.StatusForbidden, "admin access required", false
		}
		return 0, "", true
	})
}

func guard(log *slog.Logger, src StateSource, op string, check func(state.State) (int, string, bool)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code, msg, ok := check(src.State())
			if !ok {
				log.Warn(msg,
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				render.Status(r, code)
				render.JSON(w, r, response.Error(msg))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
