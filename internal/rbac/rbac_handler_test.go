package rbac

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	enforceFn func(req EnforceRequest) (bool, error)
}

func (f *fakeService) Enforce(req EnforceRequest) (bool, error) {
	return f.enforceFn(req)
}

func (f *fakeService) Can(role, resource, action string) bool {
	ok, err := f.enforceFn(EnforceRequest{Role: role, Resource: resource, Action: action})
	return err == nil && ok
}

func (f *fakeService) Permissions(role string) ([]PermissionResponse, error) {
	return []PermissionResponse{{Resource: ResourceLeave, Action: ActionCreate}}, nil
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		handler := NewHandler(&fakeService{enforceFn: func(req EnforceRequest) (bool, error) {
			assert.Equal(t, RoleManager, req.Role)
			return true, nil
		}})
		router := gin.New()
		router.POST("/rbac/enforce", handler.Enforce)

		body, _ := json.Marshal(EnforceRequest{Role: RoleManager, Resource: ResourceLeave, Action: ActionReview})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var env envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var got EnforceResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.True(t, got.Allowed)
	})

	t.Run("negative invalid role", func(t *testing.T) {
		handler := NewHandler(&fakeService{})
		router := gin.New()
		router.POST("/rbac/enforce", handler.Enforce)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewReader([]byte(`{"role":"ROOT","resource":"leave","action":"review"}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative service error", func(t *testing.T) {
		handler := NewHandler(&fakeService{enforceFn: func(req EnforceRequest) (bool, error) {
			return false, errors.New("boom")
		}})
		router := gin.New()
		router.POST("/rbac/enforce", handler.Enforce)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewReader([]byte(`{"role":"EMPLOYEE","resource":"leave","action":"create"}`)))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var env envelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	})
}

func TestHandler_Permissions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(&fakeService{})
	router := gin.New()
	router.GET("/rbac/roles/:role/permissions", handler.Permissions)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/roles/employee/permissions", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/roles/guest/permissions", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
