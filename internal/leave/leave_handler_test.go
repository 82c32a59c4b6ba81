package leave_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/leavebalance"
	"go-leave/internal/shared/principal"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeLeaveService struct {
	leave.Service
	createFn        func(ctx context.Context, membershipID string, req leave.CreateLeaveRequest, requester principal.User) (leave.LeaveResponse, error)
	reviewFn        func(ctx context.Context, companyID, leaveID string, req leave.ReviewLeaveRequest, requester principal.User) (leave.LeaveResponse, error)
	companyLeavesFn func(ctx context.Context, companyID string, filter leave.CompanyLeavesFilter, requester principal.User) ([]leave.LeaveResponse, error)
	calendarFn      func(ctx context.Context, companyID, from, to string, requester principal.User) ([]leave.CalendarEntryResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, membershipID string, req leave.CreateLeaveRequest, requester principal.User) (leave.LeaveResponse, error) {
	return f.createFn(ctx, membershipID, req, requester)
}

func (f *fakeLeaveService) Review(ctx context.Context, companyID, leaveID string, req leave.ReviewLeaveRequest, requester principal.User) (leave.LeaveResponse, error) {
	return f.reviewFn(ctx, companyID, leaveID, req, requester)
}

func (f *fakeLeaveService) GetCompanyLeaves(ctx context.Context, companyID string, filter leave.CompanyLeavesFilter, requester principal.User) ([]leave.LeaveResponse, error) {
	return f.companyLeavesFn(ctx, companyID, filter, requester)
}

func (f *fakeLeaveService) GetLeaveCalendar(ctx context.Context, companyID, from, to string, requester principal.User) ([]leave.CalendarEntryResponse, error) {
	return f.calendarFn(ctx, companyID, from, to, requester)
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newLeaveRouter(svc leave.Service, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setUser := func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
	leave.RegisterRoutes(r.Group("/api/v1"), leave.NewHandler(svc, zap.NewNop()), nil, setUser)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLeaveHandler_Create(t *testing.T) {
	membershipID := uuid.NewString()
	userID := uuid.NewString()
	path := "/api/v1/memberships/" + membershipID + "/leaves"

	t.Run("created", func(t *testing.T) {
		svc := &fakeLeaveService{createFn: func(_ context.Context, mid string, req leave.CreateLeaveRequest, requester principal.User) (leave.LeaveResponse, error) {
			assert.Equal(t, membershipID, mid)
			assert.Equal(t, userID, requester.ID)
			assert.Equal(t, leave.HalfDayMorning, *req.HalfDayPeriod)
			return leave.LeaveResponse{ID: uuid.NewString(), Status: leave.StatusPending, Days: decimal.RequireFromString("0.5")}, nil
		}}

		w := doJSON(newLeaveRouter(svc, userID), http.MethodPost, path,
			`{"type":"PAID","startDate":"2024-01-01","endDate":"2024-01-01","halfDayPeriod":"MORNING"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Contains(t, string(env.Data), `"days":"0.5"`)
	})

	t.Run("binding rejects unknown half day", func(t *testing.T) {
		svc := &fakeLeaveService{createFn: func(context.Context, string, leave.CreateLeaveRequest, principal.User) (leave.LeaveResponse, error) {
			t.Fatal("service must not be called")
			return leave.LeaveResponse{}, nil
		}}

		w := doJSON(newLeaveRouter(svc, userID), http.MethodPost, path,
			`{"type":"PAID","startDate":"2024-01-01","endDate":"2024-01-01","halfDayPeriod":"EVENING"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("overlap maps to conflict", func(t *testing.T) {
		svc := &fakeLeaveService{createFn: func(context.Context, string, leave.CreateLeaveRequest, principal.User) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{}, leaveerrors.ErrLeaveOverlap
		}}

		w := doJSON(newLeaveRouter(svc, userID), http.MethodPost, path,
			`{"type":"RTT","startDate":"2024-01-01","endDate":"2024-01-02"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestLeaveHandler_Review(t *testing.T) {
	companyID := uuid.NewString()
	leaveID := uuid.NewString()
	path := "/api/v1/companies/" + companyID + "/leaves/" + leaveID + "/review"

	t.Run("not pending", func(t *testing.T) {
		svc := &fakeLeaveService{reviewFn: func(_ context.Context, cid, lid string, req leave.ReviewLeaveRequest, _ principal.User) (leave.LeaveResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, leaveID, lid)
			assert.Equal(t, leave.StatusApproved, req.Status)
			return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotPending
		}}

		w := doJSON(newLeaveRouter(svc, uuid.NewString()), http.MethodPost, path, `{"status":"APPROVED"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
		assert.Equal(t, "CONFLICT", env.Error.Code)
	})

	t.Run("status must be a review outcome", func(t *testing.T) {
		svc := &fakeLeaveService{reviewFn: func(context.Context, string, string, leave.ReviewLeaveRequest, principal.User) (leave.LeaveResponse, error) {
			t.Fatal("service must not be called")
			return leave.LeaveResponse{}, nil
		}}

		w := doJSON(newLeaveRouter(svc, uuid.NewString()), http.MethodPost, path, `{"status":"PENDING"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_CompanyReads(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("status filter and pagination", func(t *testing.T) {
		rows := make([]leave.LeaveResponse, 7)
		for i := range rows {
			rows[i] = leave.LeaveResponse{ID: uuid.NewString(), Type: leavebalance.LeaveTypePaid}
		}
		svc := &fakeLeaveService{companyLeavesFn: func(_ context.Context, _ string, filter leave.CompanyLeavesFilter, _ principal.User) ([]leave.LeaveResponse, error) {
			assert.Equal(t, "APPROVED", filter.Status)
			return rows, nil
		}}

		w := httptest.NewRecorder()
		newLeaveRouter(svc, uuid.NewString()).ServeHTTP(w,
			httptest.NewRequest(http.MethodGet, "/api/v1/companies/"+companyID+"/leaves?status=APPROVED&page=2&page_size=5", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var items []leave.LeaveResponse
		assert.NoError(t, json.Unmarshal(env.Data, &items))
		assert.Len(t, items, 2)
	})

	t.Run("calendar requires range", func(t *testing.T) {
		called := false
		svc := &fakeLeaveService{calendarFn: func(_ context.Context, _ string, from, to string, _ principal.User) ([]leave.CalendarEntryResponse, error) {
			called = true
			assert.Equal(t, "2024-02-01", from)
			assert.Equal(t, "2024-02-29", to)
			return []leave.CalendarEntryResponse{}, nil
		}}
		r := newLeaveRouter(svc, uuid.NewString())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/companies/"+companyID+"/leaves/calendar?from=2024-02-01", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/companies/"+companyID+"/leaves/calendar?from=2024-02-01&to=2024-02-29", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
	})
}
