// Package newsletter реализует публичную подписку на рассылку.
package newsletter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/staking-bank/internal/http/request"
	"github.com/magabrotheeeer/staking-bank/internal/http/response"
	"github.com/magabrotheeeer/staking-bank/internal/models"
)

// Service описывает подписку на рассылку.
type Service interface {
	SubscribeNewsletter(ctx context.Context, email string) models.Result
}

// Handler обработчик подписки.
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

// ServeHTTP godoc
// @Summary Подписка на рассылку
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body models.NewsletterRequest true "Email"
// @Success 200 {object} response.Response{data=models.Result}
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /newsletter [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.newsletter"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.NewsletterRequest
	if !request.Bind(w, r, log, h.validate, &req) {
		return
	}
	response.Result(w, r, h.svc.SubscribeNewsletter(r.Context(), req.Email))
}
