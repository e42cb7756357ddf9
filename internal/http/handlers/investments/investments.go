// Package investments реализует HTTP-обработчики инвестиций пользователя:
// список, создание заявки, claim дохода и прогноз доходности.
package investments

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/staking-bank/internal/http/request"
	"github.com/magabrotheeeer/staking-bank/internal/http/response"
	"github.com/magabrotheeeer/staking-bank/internal/lib/sl"
	"github.com/magabrotheeeer/staking-bank/internal/models"
	"github.com/magabrotheeeer/staking-bank/internal/roi"
	"github.com/magabrotheeeer/staking-bank/internal/state"
)

// Service описывает действия сессии над инвестициями.
type Service interface {
	State() state.State
	AddInvestment(ctx context.Context, req models.InvestmentRequest) models.Result
	ClaimROI(ctx context.Context, investmentID string) models.Result
}

// Handler обработчики инвестиций.
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
// @Summary Инвестиции пользователя
// @Tags Investments
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Investment}
// @Router /investments [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items := h.svc.State().Investments
	if items == nil {
		items = []models.Investment{}
	}
	render.JSON(w, r, response.StatusOKWithData(items))
}

// Create godoc
// @Summary Заявка на инвестицию
// @Description Если адрес получателя не указан, берется адрес актива и сети из конфигурации.
// @Tags Investments
// @Accept json
// @Produce json
// @Param request body models.InvestmentRequest true "Заявка"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /investments [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.investments.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.InvestmentRequest
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}
	if req.ReceiverWalletAddress == "" {
		req.ReceiverWalletAddress = h.svc.State().RoiRates[req.Method].WalletFor(req.Network)
	}

	res := h.svc.AddInvestment(r.Context(), req)
	log.Info("investment request handled",
		slog.String("method", string(req.Method)),
		slog.Bool("success", res.Success),
	)
	response.Result(w, r, res)
}

// Claim godoc
// @Summary Claim дохода
// @Tags Investments
// @Produce json
// @Param id path string true "ID инвестиции"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Router /investments/{id}/claim [post]
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	response.Result(w, r, h.svc.ClaimROI(r.Context(), chi.URLParam(r, "id")))
}

// EstimateView прогноз на один горизонт.
type EstimateView struct {
	Horizon     roi.Horizon `json:"horizon"`
	RatePercent string      `json:"ratePercent"`
	Return      string      `json:"return"`
}

// ProjectionView прогноз доходности.
type ProjectionView struct {
	Asset         models.Asset   `json:"asset"`
	Amount        string         `json:"amount"`
	Rate          float64        `json:"rate"`
	Period        models.Period  `json:"period"`
	Return        string         `json:"return"`
	MaturityValue string         `json:"maturityValue"`
	Estimates     []EstimateView `json:"estimates"`
}

// Projection godoc
// @Summary Прогноз доходности
// @Tags Investments
// @Produce json
// @Param asset query string true "Актив, например USDT"
// @Param amount query string true "Сумма"
// @Success 200 {object} response.Response{data=ProjectionView}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /investments/projection [get]
func (h *Handler) Projection(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.investments.Projection"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	asset := models.Asset(r.URL.Query().Get("asset"))
	cfg, ok := h.svc.State().RoiRates[asset]
	if !ok {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("unknown asset"))
		return
	}

	p, err := roi.Project(r.URL.Query().Get("amount"), asset, cfg)
	if err != nil {
		log.Error("failed to build projection", sl.Err(err))
		msg := "failed to build projection"
		if errors.Is(err, roi.ErrInvalidAmount) {
			msg = "invalid amount"
		}
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(msg))
		return
	}

	view := ProjectionView{
		Asset:         asset,
		Amount:        roi.Format(p.Amount),
		Rate:          cfg.Rate,
		Period:        p.Period,
		Return:        roi.Format(p.Return()),
		MaturityValue: roi.Format(p.MaturityValue()),
	}
	for _, e := range p.Estimates {
		view.Estimates = append(view.Estimates, EstimateView{
			Horizon:     e.Horizon,
			RatePercent: roi.Format(e.RatePercent),
			Return:      roi.Format(e.Return),
		})
	}
	render.JSON(w, r, response.StatusOKWithData(view))
}
