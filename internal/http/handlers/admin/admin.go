// Package admin реализует HTTP-обработчики администратора: очереди заявок,
// настройку ставок ROI и экраны поиска пользователей, инвестиций, выводов и подписчиков.
package admin

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/staking-bank/internal/http/request"
	"github.com/magabrotheeeer/staking-bank/internal/http/response"
	"github.com/magabrotheeeer/staking-bank/internal/models"
	"github.com/magabrotheeeer/staking-bank/internal/query"
	"github.com/magabrotheeeer/staking-bank/internal/state"
)

// Service описывает действия сессии, которые не привязаны к экрану поиска.
type Service interface {
	State() state.State
	UpdateRoiRate(ctx context.Context, asset models.Asset, patch models.AssetConfigPatch) models.Result
}

// Screens экраны поиска администратора.
type Screens struct {
	Users       *query.UserManagement
	Investments *query.InvestmentRequests
	Withdrawals *query.WithdrawalRequests
	Newsletter  *query.Newsletter
}

// Handler обработчики администратора.
type Handler struct {
	log      *slog.Logger
	svc      Service
	screens  Screens
	validate *validator.Validate
}

// New создает Handler.
func New(log *slog.Logger, svc Service, screens Screens) *Handler {
	return &Handler{
		log:      log,
		svc:      svc,
		screens:  screens,
		validate: validator.New(),
	}
}

func (h *Handler) logger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// QueueView очереди заявок, ожидающих решения.
type QueueView struct {
	Investments []models.Investment  `json:"investments"`
	Withdrawals []models.Transaction `json:"withdrawals"`
}

// Queue godoc
// @Summary Очереди на рассмотрение
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response{data=QueueView}
// @Failure 403 {object} response.ErrorResponse
// @Router /admin/queue [get]
func (h *Handler) Queue(w http.ResponseWriter, r *http.Request) {
	st := h.svc.State()
	view := QueueView{
		Investments: st.PendingInvestments,
		Withdrawals: st.PendingWithdrawals,
	}
	if view.Investments == nil {
		view.Investments = []models.Investment{}
	}
	if view.Withdrawals == nil {
		view.Withdrawals = []models.Transaction{}
	}
	render.JSON(w, r, response.StatusOKWithData(view))
}

// ApproveInvestment godoc
// @Summary Одобрить инвестицию
// @Tags Admin
// @Produce json
// @Param id path string true "ID инвестиции"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Router /admin/investments/{id}/approve [put]
func (h *Handler) ApproveInvestment(w http.ResponseWriter, r *http.Request) {
	response.Result(w, r, h.screens.Investments.Approve(r.Context(), chi.URLParam(r, "id")))
}

// RejectInvestment godoc
// @Summary Отклонить инвестицию
// @Tags Admin
// @Produce json
// @Param id path string true "ID инвестиции"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Router /admin/investments/{id}/reject [put]
func (h *Handler) RejectInvestment(w http.ResponseWriter, r *http.Request) {
	response.Result(w, r, h.screens.Investments.Reject(r.Context(), chi.URLParam(r, "id")))
}

// WalletRequest новый адрес получателя.
type WalletRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required"`
}

// UpdateWallet godoc
// @Summary Изменить адрес получателя в заявке
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "ID инвестиции"
// @Param request body WalletRequest true "Адрес"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /admin/investments/{id}/wallet [put]
func (h *Handler) UpdateWallet(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.admin.UpdateWallet")

	var req WalletRequest
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}
	response.Result(w, r, h.screens.Investments.UpdateWallet(r.Context(), chi.URLParam(r, "id"), req.WalletAddress))
}

// ApproveWithdrawal godoc
// @Summary Одобрить вывод
// @Tags Admin
// @Produce json
// @Param id path string true "ID вывода"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Router /admin/withdrawals/{id}/approve [put]
func (h *Handler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	response.Result(w, r, h.screens.Withdrawals.Approve(r.Context(), chi.URLParam(r, "id")))
}

// RejectWithdrawal godoc
// @Summary Отклонить вывод
// @Tags Admin
// @Produce json
// @Param id path string true "ID вывода"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Router /admin/withdrawals/{id}/reject [put]
func (h *Handler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	response.Result(w, r, h.screens.Withdrawals.Reject(r.Context(), chi.URLParam(r, "id")))
}

// UpdateRoiRate godoc
// @Summary Изменить настройки актива
// @Description Изменение видно сразу, при ошибке сервера прежние настройки восстанавливаются.
// @Tags Admin
// @Accept json
// @Produce json
// @Param asset path string true "Актив"
// @Param request body models.AssetConfigPatch true "Патч"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Router /admin/config/{asset} [put]
func (h *Handler) UpdateRoiRate(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.admin.UpdateRoiRate")

	var patch models.AssetConfigPatch
	if !request.Bind(w, r, log, h.validate, &patch) {
		return
	}
	asset := models.Asset(chi.URLParam(r, "asset"))
	res := h.svc.UpdateRoiRate(r.Context(), asset, patch)
	log.Info("roi rate update handled", slog.String("asset", string(asset)), slog.Bool("success", res.Success))
	response.Result(w, r, res)
}

// pageParams читает page и size из строки запроса, нули означают «не менять».
func pageParams(r *http.Request) (page, size int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	size, _ = strconv.Atoi(r.URL.Query().Get("size"))
	return page, size
}
