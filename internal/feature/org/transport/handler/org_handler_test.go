package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentity "wordford/internal/feature/auth/domain/entity"
	"wordford/internal/feature/org/domain/entity"
	"wordford/internal/feature/org/usecase"
	jwtmw "wordford/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockOrgUsecase struct {
	CreateFunc func(ctx context.Context, ownerID uint, name string) (*entity.Org, error)
	GetFunc    func(ctx context.Context, id uint) (*entity.Org, error)
	DeleteFunc func(ctx context.Context, id uint) error
}

func (m *mockOrgUsecase) Create(ctx context.Context, ownerID uint, name string) (*entity.Org, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ownerID, name)
	}
	return &entity.Org{ID: 1, Name: name, OwnerID: ownerID}, nil
}

func (m *mockOrgUsecase) Get(ctx context.Context, id uint) (*entity.Org, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, usecase.ErrOrgNotFound
}

func (m *mockOrgUsecase) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// asUser stands in for RequireUser.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserKey, &authentity.User{ID: id, Email: "a@b.com"})
	}
}

func newRouter(uc OrgUsecase) *gin.Engine {
	h := NewOrgHandler(uc)
	r := gin.New()
	g := r.Group("/api", asUser(7))
	g.PUT("/orgs", h.Create)
	g.GET("/orgs/:id", h.Get)
	g.DELETE("/orgs/:id", h.Delete)
	return r
}

func TestOrgHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createFunc func(ctx context.Context, ownerID uint, name string) (*entity.Org, error)
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"name":"home"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "blank name",
			body: `{"name":"  "}`,
			createFunc: func(context.Context, uint, string) (*entity.Org, error) {
				return nil, usecase.ErrEmptyName
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"name":"home"}`,
			createFunc: func(context.Context, uint, string) (*entity.Org, error) {
				return nil, errors.New("disk full")
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&mockOrgUsecase{CreateFunc: tt.createFunc})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/orgs", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "home", body["name"])
				assert.Equal(t, float64(7), body["owner_id"])
			}
		})
	}
}

func TestOrgHandler_Create_Unauthenticated(t *testing.T) {
	h := NewOrgHandler(&mockOrgUsecase{})
	r := gin.New()
	r.PUT("/api/orgs", h.Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/orgs", bytes.NewBufferString(`{"name":"home"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrgHandler_GetAndDelete(t *testing.T) {
	uc := &mockOrgUsecase{
		GetFunc: func(_ context.Context, id uint) (*entity.Org, error) {
			switch id {
			case 1:
				return &entity.Org{ID: 1, Name: "home", OwnerID: 7}, nil
			case 2:
				return nil, errors.New("connection reset")
			}
			return nil, usecase.ErrOrgNotFound
		},
		DeleteFunc: func(_ context.Context, id uint) error {
			if id == 1 {
				return nil
			}
			return usecase.ErrOrgNotFound
		},
	}
	r := newRouter(uc)

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{method: http.MethodGet, path: "/api/orgs/1", wantStatus: http.StatusOK},
		{method: http.MethodGet, path: "/api/orgs/2", wantStatus: http.StatusInternalServerError},
		{method: http.MethodGet, path: "/api/orgs/3", wantStatus: http.StatusNotFound},
		{method: http.MethodGet, path: "/api/orgs/abc", wantStatus: http.StatusBadRequest},
		{method: http.MethodDelete, path: "/api/orgs/1", wantStatus: http.StatusNoContent},
		{method: http.MethodDelete, path: "/api/orgs/3", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
