// Package withdrawals реализует HTTP-обработчики заявок на вывод пользователя.
package withdrawals

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/staking-bank/internal/http/request"
	"github.com/magabrotheeeer/staking-bank/internal/http/response"
	"github.com/magabrotheeeer/staking-bank/internal/models"
	"github.com/magabrotheeeer/staking-bank/internal/state"
)

// Service описывает действия сессии над выводами.
type Service interface {
	State() state.State
	RequestWithdrawal(ctx context.Context, req models.WithdrawalRequest) models.Result
}

// Handler обработчики выводов.
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

// List godoc
// @Summary Выводы пользователя
// @Tags Withdrawals
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Transaction}
// @Router /withdrawals [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items := h.svc.State().Transactions
	if items == nil {
		items = []models.Transaction{}
	}
	render.JSON(w, r, response.StatusOKWithData(items))
}

// Create godoc
// @Summary Заявка на вывод
// @Description Обычный вывод ограничен балансом, SOS-вывод суммой вложений.
// @Tags Withdrawals
// @Accept json
// @Produce json
// @Param request body models.WithdrawalRequest true "Заявка"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /withdrawals [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.withdrawals.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.WithdrawalRequest
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}
	res := h.svc.RequestWithdrawal(r.Context(), req)
	log.Info("withdrawal request handled", slog.Bool("sos", req.IsSos), slog.Bool("success", res.Success))
	response.Result(w, r, res)
}
