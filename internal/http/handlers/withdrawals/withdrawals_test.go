package withdrawals

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/staking-bank/internal/http/response"
	"github.com/magabrotheeeer/staking-bank/internal/models"
	"github.com/magabrotheeeer/staking-bank/internal/state"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) State() state.State {
	return m.Called().Get(0).(state.State)
}

func (m *ServiceMock) RequestWithdrawal(ctx context.Context, req models.WithdrawalRequest) models.Result {
	return m.Called(ctx, req).Get(0).(models.Result)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestHandler_ListEmpty(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("State").Return(state.Initial())
	h := New(newNoopLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/withdrawals", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"data":[]`)
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		result     *models.Result
		wantStatus int
		wantError  string
	}{
		{
			name:       "success",
			body:       `{"method":"USDT","amount":50,"walletAddress":"TWallet"}`,
			result:     &models.Result{Success: true, Message: "Withdrawal request submitted"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "insufficient balance",
			body:       `{"method":"USDT","amount":5000,"walletAddress":"TWallet","isSos":true}`,
			result:     &models.Result{Success: false, Message: "Insufficient balance"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Insufficient balance",
		},
		{
			name:       "invalid json",
			body:       `{"method":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
		{
			name:       "missing wallet",
			body:       `{"method":"USDT","amount":50}`,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.result != nil {
				svc.On("RequestWithdrawal", mock.Anything, mock.AnythingOfType("models.WithdrawalRequest")).
					Return(*tt.result).Once()
			}
			h := New(newNoopLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/withdrawals", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			h.Create(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			var resp response.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, resp.Error)
			}
			svc.AssertExpectations(t)
		})
	}
}
