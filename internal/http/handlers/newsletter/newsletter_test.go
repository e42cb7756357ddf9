package newsletter

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/staking-bank/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) SubscribeNewsletter(ctx context.Context, email string) models.Result {
	return m.Called(ctx, email).Get(0).(models.Result)
}

func TestHandler_ServeHTTP(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	t.Run("subscribed", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("SubscribeNewsletter", mock.Anything, "a@b.io").Return(models.OK("Subscribed")).Once()

		req := httptest.NewRequest(http.MethodPost, "/newsletter", bytes.NewBufferString(`{"email":"a@b.io"}`))
		rr := httptest.NewRecorder()
		New(log, svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Subscribed")
		svc.AssertExpectations(t)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := new(ServiceMock)

		req := httptest.NewRequest(http.MethodPost, "/newsletter", bytes.NewBufferString(`{"email":"nope"}`))
		rr := httptest.NewRecorder()
		New(log, svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		svc.AssertNotCalled(t, "SubscribeNewsletter", mock.Anything, mock.Anything)
	})

	t.Run("already subscribed", func(t *testing.T) {
		svc := new(ServiceMock)
		svc.On("SubscribeNewsletter", mock.Anything, "a@b.io").Return(models.Fail("Email already subscribed")).Once()

		req := httptest.NewRequest(http.MethodPost, "/newsletter", bytes.NewBufferString(`{"email":"a@b.io"}`))
		rr := httptest.NewRecorder()
		New(log, svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Email already subscribed")
	})
}
