// Package account реализует HTTP-обработчики сессии дашборда: вход,
// регистрацию, сброс пароля, подтверждение почты, профиль и выход.
//
// Токен, полученный при входе, остаётся в хранилище процесса и наружу не отдаётся.
package account

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/staking-bank/internal/http/request"
	"github.com/magabrotheeeer/staking-bank/internal/http/response"
	"github.com/magabrotheeeer/staking-bank/internal/models"
	"github.com/magabrotheeeer/staking-bank/internal/state"
)

// Service описывает действия сессии, нужные обработчикам.
type Service interface {
	State() state.State
	Login(ctx context.Context, email, password string) models.Result
	Register(ctx context.Context, name, email, password string) models.Result
	ForgotPassword(ctx context.Context, email, newPassword string) models.Result
	VerifyEmail(ctx context.Context, token string) models.Result
	UpdateUserProfile(ctx context.Context, patch models.UserPatch) models.Result
	Logout() models.Result
}

// Handler обработчики аккаунта.
type Handler struct {
	log      *slog.Logger
	svc      Service
	validate *validator.Validate
}

// New создает Handler.
func New(log *slog.Logger, svc Service) *Handler {
	return &Handler{
		log:      log,
		svc:      svc,
		validate: validator.New(),
	}
}

// SessionView публичная часть состояния сессии.
type SessionView struct {
	User            *models.User    `json:"user"`
	Loading         bool            `json:"loading"`
	IsAdmin         bool            `json:"isAdmin"`
	RoiRates        models.RoiRates `json:"roiRates"`
	ConfigUpdatedAt *time.Time      `json:"configUpdatedAt,omitempty"`
}

func (h *Handler) logger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// Session godoc
// @Summary Текущая сессия
// @Description Возвращает пользователя, флаг загрузки и действующие ставки ROI.
// @Tags Session
// @Produce json
// @Success 200 {object} response.Response{data=SessionView}
// @Router /session [get]
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	st := h.svc.State()
	render.JSON(w, r, response.StatusOKWithData(SessionView{
		User:            st.User,
		Loading:         st.Loading,
		IsAdmin:         st.IsAdmin(),
		RoiRates:        st.RoiRates,
		ConfigUpdatedAt: st.ConfigUpdatedAt,
	}))
}

// Login godoc
// @Summary Вход
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.Credentials true "Учетные данные"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.account.Login")

	var req models.Credentials
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}
	res := h.svc.Login(r.Context(), req.Email, req.Password)
	log.Info("login attempt finished", slog.Bool("success", res.Success))
	response.Result(w, r, res)
}

// Register godoc
// @Summary Регистрация
// @Description Создает аккаунт, сессия не начинается до подтверждения почты.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.Registration true "Данные регистрации"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.account.Register")

	var req models.Registration
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}
	response.Result(w, r, h.svc.Register(r.Context(), req.Name, req.Email, req.Password))
}

// ForgotPassword godoc
// @Summary Сброс пароля
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.PasswordReset true "Почта и новый пароль"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Router /auth/forgot-password [post]
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.account.ForgotPassword")

	var req models.PasswordReset
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}
	response.Result(w, r, h.svc.ForgotPassword(r.Context(), req.Email, req.Password))
}

// VerifyEmail godoc
// @Summary Подтверждение почты
// @Tags Auth
// @Produce json
// @Param token path string true "Токен из письма"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Router /auth/verify-email/{token} [post]
func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	response.Result(w, r, h.svc.VerifyEmail(r.Context(), chi.URLParam(r, "token")))
}

// Logout godoc
// @Summary Выход
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response{data=models.Result}
// @Router /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.logger(r, "handlers.account.Logout").Info("logout")
	response.Result(w, r, h.svc.Logout())
}

// UpdateProfile godoc
// @Summary Обновление профиля
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body models.UserPatch true "Изменяемые поля"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Router /profile [put]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.account.UpdateProfile")

	var patch models.UserPatch
	if !request.Bind(w, r, log, h.validate, &patch) {
		return
	}
	response.Result(w, r, h.svc.UpdateUserProfile(r.Context(), patch))
}
