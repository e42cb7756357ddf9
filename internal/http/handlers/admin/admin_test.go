package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/staking-bank/internal/config"
	"github.com/magabrotheeeer/staking-bank/internal/models"
	"github.com/magabrotheeeer/staking-bank/internal/query"
	"github.com/magabrotheeeer/staking-bank/internal/state"
)

// SessionMock реализует Service и действия экранов.
type SessionMock struct {
	mock.Mock
}

func (m *SessionMock) State() state.State {
	return m.Called().Get(0).(state.State)
}

func (m *SessionMock) UpdateRoiRate(ctx context.Context, asset models.Asset, patch models.AssetConfigPatch) models.Result {
	return m.Called(ctx, asset, patch).Get(0).(models.Result)
}

func (m *SessionMock) SetAdmin(ctx context.Context, id string, isAdmin bool) models.Result {
	return m.Called(ctx, id, isAdmin).Get(0).(models.Result)
}

func (m *SessionMock) ToggleBlock(ctx context.Context, id string) (models.Result, bool) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Result), args.Bool(1)
}

func (m *SessionMock) ResetUserPassword(ctx context.Context, id, password string) models.Result {
	return m.Called(ctx, id, password).Get(0).(models.Result)
}

func (m *SessionMock) ApproveInvestment(ctx context.Context, id string) models.Result {
	return m.Called(ctx, id).Get(0).(models.Result)
}

func (m *SessionMock) RejectInvestment(ctx context.Context, id string) models.Result {
	return m.Called(ctx, id).Get(0).(models.Result)
}

func (m *SessionMock) UpdateRequestWallet(ctx context.Context, id, wallet string) models.Result {
	return m.Called(ctx, id, wallet).Get(0).(models.Result)
}

func (m *SessionMock) ApproveWithdrawal(ctx context.Context, id string) models.Result {
	return m.Called(ctx, id).Get(0).(models.Result)
}

func (m *SessionMock) RejectWithdrawal(ctx context.Context, id string) models.Result {
	return m.Called(ctx, id).Get(0).(models.Result)
}

// BackendMock реализует источники данных экранов.
type BackendMock struct {
	mock.Mock
}

func (m *BackendMock) ListUsers(ctx context.Context, search string) ([]models.User, error) {
	args := m.Called(ctx, search)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *BackendMock) ListAllInvestments(ctx context.Context, search string) ([]models.Investment, error) {
	args := m.Called(ctx, search)
	items, _ := args.Get(0).([]models.Investment)
	return items, args.Error(1)
}

func (m *BackendMock) ListAllTransactions(ctx context.Context, search string) ([]models.Transaction, error) {
	args := m.Called(ctx, search)
	items, _ := args.Get(0).([]models.Transaction)
	return items, args.Error(1)
}

func (m *BackendMock) ListSubscribers(ctx context.Context) ([]models.NewsletterSubscriber, error) {
	args := m.Called(ctx)
	subs, _ := args.Get(0).([]models.NewsletterSubscriber)
	return subs, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newHandler(t *testing.T, sess *SessionMock, backend *BackendMock) *Handler {
	t.Helper()
	ctx := context.Background()
	cfg := config.Search{Debounce: 10 * time.Millisecond, PageSize: 10}
	log := newNoopLogger()
	screens := Screens{
		Users:       query.NewUserManagement(ctx, backend, sess, cfg, log),
		Investments: query.NewInvestmentRequests(ctx, backend, sess, cfg, log),
		Withdrawals: query.NewWithdrawalRequests(ctx, backend, sess, cfg, log),
		Newsletter:  query.NewNewsletter(ctx, backend, cfg, log),
	}
	t.Cleanup(func() {
		screens.Users.Close()
		screens.Investments.Close()
		screens.Withdrawals.Close()
		screens.Newsletter.Close()
	})
	return New(log, sess, screens)
}

func withParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	data, ok := got["data"].(map[string]any)
	require.True(t, ok, "response has no data: %v", got)
	return data
}

func TestHandler_UsersSearchAndPage(t *testing.T) {
	sess, backend := new(SessionMock), new(BackendMock)
	users := make([]models.User, 7)
	for i := range users {
		users[i] = models.User{ID: string(rune('a' + i)), IsAdmin: i == 0}
	}
	backend.On("ListUsers", mock.Anything, "jo").Return(users, nil).Once()
	h := newHandler(t, sess, backend)

	rec := httptest.NewRecorder()
	h.Users(rec, httptest.NewRequest(http.MethodGet, "/admin/users?search=jo&size=5&page=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, float64(7), data["total"])
	assert.Equal(t, float64(2), data["page"])
	assert.Len(t, data["items"], 2)
	assert.Equal(t, "jo", data["term"])

	rec = httptest.NewRecorder()
	h.Users(rec, httptest.NewRequest(http.MethodGet, "/admin/users?role=admin", nil))
	data = decodeData(t, rec)
	assert.Equal(t, float64(1), data["total"])
	backend.AssertNumberOfCalls(t, "ListUsers", 1)
}

func TestHandler_UsersBackendFailure(t *testing.T) {
	sess, backend := new(SessionMock), new(BackendMock)
	backend.On("ListUsers", mock.Anything, "").Return(nil, assert.AnError).Once()
	h := newHandler(t, sess, backend)

	rec := httptest.NewRecorder()
	h.Users(rec, httptest.NewRequest(http.MethodGet, "/admin/users?search=", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandler_SearchUsersIsDebounced(t *testing.T) {
	sess, backend := new(SessionMock), new(BackendMock)
	backend.On("ListUsers", mock.Anything, "ann").Return([]models.User{{ID: "u1"}}, nil).Once()
	h := newHandler(t, sess, backend)

	for _, term := range []string{"a", "an", "ann"} {
		body, _ := json.Marshal(SearchRequest{Term: term})
		rec := httptest.NewRecorder()
		h.SearchUsers(rec, httptest.NewRequest(http.MethodPut, "/admin/users/search", bytes.NewReader(body)))
		require.Equal(t, http.StatusAccepted, rec.Code)
	}

	require.Eventually(t, func() bool {
		rec := httptest.NewRecorder()
		h.Users(rec, httptest.NewRequest(http.MethodGet, "/admin/users", nil))
		data := decodeData(t, rec)
		return data["loading"] == false && data["total"] == float64(1)
	}, time.Second, 10*time.Millisecond)
	backend.AssertNumberOfCalls(t, "ListUsers", 1)
}

func TestHandler_ApproveInvestmentUpdatesRow(t *testing.T) {
	sess, backend := new(SessionMock), new(BackendMock)
	backend.On("ListAllInvestments", mock.Anything, "").
		Return([]models.Investment{{ID: "i1", Status: models.InvestmentPending}}, nil).Once()
	sess.On("ApproveInvestment", mock.Anything, "i1").Return(models.OK("Investment approved")).Once()
	h := newHandler(t, sess, backend)

	rec := httptest.NewRecorder()
	h.Investments(rec, httptest.NewRequest(http.MethodGet, "/admin/investments?search=", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ApproveInvestment(rec, withParams(httptest.NewRequest(http.MethodPut, "/admin/investments/i1/approve", nil), "id", "i1"))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Investments(rec, httptest.NewRequest(http.MethodGet, "/admin/investments?status=Active", nil))
	data := decodeData(t, rec)
	items := data["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Active", items[0].(map[string]any)["status"])
	sess.AssertExpectations(t)
}

func TestHandler_UpdateRoiRate(t *testing.T) {
	sess, backend := new(SessionMock), new(BackendMock)
	rate := 6.5
	sess.On("UpdateRoiRate", mock.Anything, models.Asset("USDT"), models.AssetConfigPatch{Rate: &rate}).
		Return(models.Fail("Failed to update ROI rate")).Once()
	h := newHandler(t, sess, backend)

	req := httptest.NewRequest(http.MethodPut, "/admin/config/USDT", bytes.NewReader([]byte(`{"rate":6.5}`)))
	rec := httptest.NewRecorder()
	h.UpdateRoiRate(rec, withParams(req, "asset", "USDT"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	sess.AssertExpectations(t)
}

func TestHandler_ResetPasswordValidation(t *testing.T) {
	sess, backend := new(SessionMock), new(BackendMock)
	h := newHandler(t, sess, backend)

	req := httptest.NewRequest(http.MethodPut, "/admin/users/u2/password", bytes.NewReader([]byte(`{"password":"123"}`)))
	rec := httptest.NewRecorder()
	h.ResetPassword(rec, withParams(req, "id", "u2"))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	sess.AssertNotCalled(t, "ResetUserPassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_Queue(t *testing.T) {
	sess, backend := new(SessionMock), new(BackendMock)
	st := state.Initial()
	st.PendingInvestments = []models.Investment{{ID: "i1"}}
	sess.On("State").Return(st)
	h := newHandler(t, sess, backend)

	rec := httptest.NewRecorder()
	h.Queue(rec, httptest.NewRequest(http.MethodGet, "/admin/queue", nil))

	data := decodeData(t, rec)
	assert.Len(t, data["investments"], 1)
	assert.Empty(t, data["withdrawals"])
}
