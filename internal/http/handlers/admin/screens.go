package admin

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/staking-bank/internal/http/request"
	"github.com/magabrotheeeer/staking-bank/internal/http/response"
	"github.com/magabrotheeeer/staking-bank/internal/lib/sl"
	"github.com/magabrotheeeer/staking-bank/internal/models"
	"github.com/magabrotheeeer/staking-bank/internal/query"
)

// screen общие операции экранов поиска.
type screen[T any] interface {
	Search(term string)
	Load(term string) error
	SetPage(page int)
	SetPageSize(size int)
	View() query.Page[T]
}

// list загружает строки, если передан search, применяет пагинацию и отдает страницу.
func list[T any](h *Handler, w http.ResponseWriter, r *http.Request, op string, s screen[T]) {
	log := h.logger(r, op)

	q := r.URL.Query()
	if q.Has("search") {
		if err := s.Load(q.Get("search")); err != nil {
			log.Error("failed to load screen", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to load data"))
			return
		}
	}
	page, size := pageParams(r)
	if size > 0 {
		s.SetPageSize(size)
	}
	if page > 0 {
		s.SetPage(page)
	}

	view := s.View()
	if view.Items == nil {
		view.Items = []T{}
	}
	log.Debug("screen view", slog.Int("total", view.Total), slog.Int("page", view.Page))
	render.JSON(w, r, response.StatusOKWithData(view))
}

// SearchRequest строка поиска, набираемая пользователем.
type SearchRequest struct {
	Term string `json:"term"`
}

// search планирует отложенный запрос, ответ придет в следующем GET.
func search[T any](h *Handler, w http.ResponseWriter, r *http.Request, op string, s screen[T]) {
	log := h.logger(r, op)

	var req SearchRequest
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}
	s.Search(req.Term)
	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, response.StatusOKWithData(map[string]string{"term": req.Term}))
}

// Users godoc
// @Summary Пользователи
// @Tags Admin
// @Produce json
// @Param search query string false "Поиск; при наличии параметра данные перезагружаются"
// @Param role query string false "admin, user или blocked"
// @Param page query int false "Страница"
// @Param size query int false "Размер страницы: 5, 10, 20, 50"
// @Success 200 {object} response.Response{data=query.Page[models.User]}
// @Failure 502 {object} response.ErrorResponse
// @Router /admin/users [get]
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("role") {
		h.screens.Users.FilterRole(query.Role(r.URL.Query().Get("role")))
	}
	list[models.User](h, w, r, "handlers.admin.Users", h.screens.Users)
}

// SearchUsers godoc
// @Summary Поиск пользователей по мере ввода
// @Tags Admin
// @Accept json
// @Param request body SearchRequest true "Строка поиска"
// @Success 202 {object} response.Response
// @Router /admin/users/search [put]
func (h *Handler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	search[models.User](h, w, r, "handlers.admin.SearchUsers", h.screens.Users)
}

// AdminRequest новая роль пользователя.
type AdminRequest struct {
	IsAdmin bool `json:"isAdmin"`
}

// SetAdmin godoc
// @Summary Выдать или отозвать права администратора
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "ID пользователя"
// @Param request body AdminRequest true "Роль"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Router /admin/users/{id}/admin [put]
func (h *Handler) SetAdmin(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.admin.SetAdmin")

	var req AdminRequest
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}
	response.Result(w, r, h.screens.Users.SetAdmin(r.Context(), chi.URLParam(r, "id"), req.IsAdmin))
}

// ToggleBlock godoc
// @Summary Заблокировать или разблокировать пользователя
// @Tags Admin
// @Produce json
// @Param id path string true "ID пользователя"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Router /admin/users/{id}/block [put]
func (h *Handler) ToggleBlock(w http.ResponseWriter, r *http.Request) {
	response.Result(w, r, h.screens.Users.ToggleBlock(r.Context(), chi.URLParam(r, "id")))
}

// PasswordRequest новый пароль пользователя.
type PasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// ResetPassword godoc
// @Summary Задать пользователю пароль
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "ID пользователя"
// @Param request body PasswordRequest true "Пароль"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /admin/users/{id}/password [put]
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.admin.ResetPassword")

	var req PasswordRequest
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}
	response.Result(w, r, h.screens.Users.ResetPassword(r.Context(), chi.URLParam(r, "id"), req.Password))
}

// Investments godoc
// @Summary Все инвестиции
// @Tags Admin
// @Produce json
// @Param search query string false "Поиск"
// @Param status query string false "Статус"
// @Param method query string false "Актив"
// @Param page query int false "Страница"
// @Param size query int false "Размер страницы"
// @Success 200 {object} response.Response{data=query.Page[models.Investment]}
// @Failure 502 {object} response.ErrorResponse
// @Router /admin/investments [get]
func (h *Handler) Investments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Has("status") || q.Has("method") {
		h.screens.Investments.Filter(query.InvestmentFilter{
			Status: models.InvestmentStatus(q.Get("status")),
			Method: models.Asset(q.Get("method")),
		})
	}
	list[models.Investment](h, w, r, "handlers.admin.Investments", h.screens.Investments)
}

// SearchInvestments godoc
// @Summary Поиск инвестиций по мере ввода
// @Tags Admin
// @Accept json
// @Param request body SearchRequest true "Строка поиска"
// @Success 202 {object} response.Response
// @Router /admin/investments/search [put]
func (h *Handler) SearchInvestments(w http.ResponseWriter, r *http.Request) {
	search[models.Investment](h, w, r, "handlers.admin.SearchInvestments", h.screens.Investments)
}

// Withdrawals godoc
// @Summary Все выводы
// @Tags Admin
// @Produce json
// @Param search query string false "Поиск"
// @Param status query string false "Статус"
// @Param method query string false "Актив"
// @Param sos query bool false "Только SOS"
// @Param page query int false "Страница"
// @Param size query int false "Размер страницы"
// @Success 200 {object} response.Response{data=query.Page[models.Transaction]}
// @Failure 502 {object} response.ErrorResponse
// @Router /admin/withdrawals [get]
func (h *Handler) Withdrawals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Has("status") || q.Has("method") || q.Has("sos") {
		sos, _ := strconv.ParseBool(q.Get("sos"))
		h.screens.Withdrawals.Filter(query.WithdrawalFilter{
			Status:  models.TransactionStatus(q.Get("status")),
			Method:  models.Asset(q.Get("method")),
			SosOnly: sos,
		})
	}
	list[models.Transaction](h, w, r, "handlers.admin.Withdrawals", h.screens.Withdrawals)
}

// SearchWithdrawals godoc
// @Summary Поиск выводов по мере ввода
// @Tags Admin
// @Accept json
// @Param request body SearchRequest true "Строка поиска"
// @Success 202 {object} response.Response
// @Router /admin/withdrawals/search [put]
func (h *Handler) SearchWithdrawals(w http.ResponseWriter, r *http.Request) {
	search[models.Transaction](h, w, r, "handlers.admin.SearchWithdrawals", h.screens.Withdrawals)
}

// Subscribers godoc
// @Summary Подписчики рассылки
// @Tags Admin
// @Produce json
// @Param search query string false "Поиск по email"
// @Param page query int false "Страница"
// @Param size query int false "Размер страницы"
// @Success 200 {object} response.Response{data=query.Page[models.NewsletterSubscriber]}
// @Failure 502 {object} response.ErrorResponse
// @Router /admin/newsletter [get]
func (h *Handler) Subscribers(w http.ResponseWriter, r *http.Request) {
	list[models.NewsletterSubscriber](h, w, r, "handlers.admin.Subscribers", h.screens.Newsletter)
}

// SearchSubscribers godoc
// @Summary Поиск подписчиков по мере ввода
// @Tags Admin
// @Accept json
// @Param request body SearchRequest true "Строка поиска"
// @Success 202 {object} response.Response
// @Router /admin/newsletter/search [put]
func (h *Handler) SearchSubscribers(w http.ResponseWriter, r *http.Request) {
	search[models.NewsletterSubscriber](h, w, r, "handlers.admin.SearchSubscribers", h.screens.Newsletter)
}
