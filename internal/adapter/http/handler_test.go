package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"viralizza/internal/adapter/memory"
	"viralizza/internal/adapter/usecase"
	"viralizza/internal/core/domain"
	"viralizza/internal/core/port"
	"viralizza/internal/core/port/mocks"
	"viralizza/internal/metrics"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{port.ErrCampaignNotFound, http.StatusNotFound},
		{port.ErrSubmissionNotFound, http.StatusNotFound},
		{port.ErrDuplicateURL, http.StatusConflict},
		{port.ErrCampaignClosed, http.StatusConflict},
		{port.ErrPostLimitReached, http.StatusConflict},
		{port.ErrUserCapReached, http.StatusConflict},
		{port.ErrInvalidTransition, http.StatusConflict},
		{port.ErrPlatformNotAllowed, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: mismatch", port.ErrInvalidURL), http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: bad", port.ErrInvalidCampaign), http.StatusUnprocessableEntity},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusOf(tt.err), tt.err.Error())
	}
}

func TestHandler_ProposeSubmission(t *testing.T) {
	svc := mocks.NewMockPayoutUseCase(t)
	h := NewHandler(svc, nil, testLogger).Router()

	svc.EXPECT().
		ProposeSubmission(mock.Anything, port.ProposeReq{CampaignID: 3, UserID: "u1", URL: "https://www.tiktok.com/@a/video/1"}).
		Return(&domain.Submission{ID: 9, CampaignID: 3, UserID: "u1", Status: domain.SubmissionPending, Platform: domain.PlatformTikTok}, nil).
		Once()
	rec := do(t, h, http.MethodPost, "/api/v1/campaigns/3/submissions", `{"user_id":"u1","url":"https://www.tiktok.com/@a/video/1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var got submissionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.EqualValues(t, 9, got.ID)
	assert.Equal(t, domain.SubmissionPending, got.Status)

	svc.EXPECT().ProposeSubmission(mock.Anything, mock.Anything).Return(nil, port.ErrDuplicateURL).Once()
	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/3/submissions", `{"user_id":"u1","url":"https://www.tiktok.com/@a/video/1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), port.ErrDuplicateURL.Error())

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/3/submissions", `{"user_id":"u1","url":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "url: url")

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/3/submissions", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/abc/submissions", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_InternalErrorsAreHidden(t *testing.T) {
	svc := mocks.NewMockPayoutUseCase(t)
	h := NewHandler(svc, nil, testLogger).Router()

	svc.EXPECT().ListCampaigns(mock.Anything).Return(nil, fmt.Errorf("pq: password authentication failed")).Once()
	rec := do(t, h, http.MethodGet, "/api/v1/campaigns", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestHandler_Transitions(t *testing.T) {
	svc := mocks.NewMockPayoutUseCase(t)
	h := NewHandler(svc, nil, testLogger).Router()

	svc.EXPECT().Approve(mock.Anything, int64(5)).Return(&domain.Submission{ID: 5, Status: domain.SubmissionApproved}, nil).Once()
	svc.EXPECT().Reject(mock.Anything, int64(6)).Return(nil, port.ErrInvalidTransition).Once()
	svc.EXPECT().Remove(mock.Anything, int64(7)).Return(nil, port.ErrSubmissionNotFound).Once()

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/v1/submissions/5/approve", "").Code)
	assert.Equal(t, http.StatusConflict, do(t, h, http.MethodPost, "/api/v1/submissions/6/reject", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPost, "/api/v1/submissions/7/remove", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/v1/submissions/0/approve", "").Code)
}

// TestHandler_EndToEnd runs the API against the real use case and the
// in-memory ledger.
func TestHandler_EndToEnd(t *testing.T) {
	ledger := memory.NewLedger()
	svc := usecase.NewPayoutUseCase(ledger, nil, nil, nil, usecase.Options{Logger: testLogger})
	m := metrics.New()
	h := NewHandler(svc, m, testLogger).Router()

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns", `{
		"name": "Launch Week",
		"rate_per_1000": 800,
		"budget": 167000,
		"max_payout_per_user": 50000,
		"max_posts_per_user": 2,
		"allowed_platforms": ["tiktok", "youtube"]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var c campaignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "launch-week", c.Slug)
	assert.EqualValues(t, 167_000, c.Remaining)

	base := fmt.Sprintf("/api/v1/campaigns/%d", c.ID)
	rec = do(t, h, http.MethodPost, base+"/submissions", `{"user_id":"u1","url":"https://www.instagram.com/reel/abc"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/submissions", `{"user_id":"u1","url":"https://youtu.be/abc123"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var s submissionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))

	rec = do(t, h, http.MethodPost, fmt.Sprintf("/api/v1/submissions/%d/approve", s.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	ledger.PutAccount(domain.Account{CampaignID: c.ID, UserID: "u1", PaidKz: 1600, TotalViewsPaid: 2000})
	rec = do(t, h, http.MethodGet, base+"/leaderboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var lb domain.Leaderboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lb))
	require.Len(t, lb.Entries, 1)
	assert.Equal(t, "u1", lb.Entries[0].UserID)

	rec = do(t, h, http.MethodDelete, base+"/users/u1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/end", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, domain.CampaignEnded, c.Status)

	rec = do(t, h, http.MethodGet, "/api/v1/campaigns/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "viralizza_http_requests_total")
	assert.Contains(t, rec.Body.String(), `route="/api/v1/campaigns/{id}/submissions"`)
}

func TestHandler_CreateCampaignValidation(t *testing.T) {
	svc := mocks.NewMockPayoutUseCase(t)
	h := NewHandler(svc, nil, testLogger).Router()

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns", `{"name":"x","rate_per_1000":800,"budget":100,"max_payout_per_user":800,"allowed_platforms":["myspace"]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "budget: gtefield")
	assert.Contains(t, resp.Fields, "allowed_platforms[0]: oneof")
}
