package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-esyleave/internal/user"
	usererrors "go-esyleave/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeUserService struct {
	listFn   func(ctx context.Context) ([]user.EmployeeResponse, error)
	addFn    func(ctx context.Context, req user.CreateEmployeeRequest) (user.EmployeeResponse, error)
	updateFn func(ctx context.Context, id string, req user.UpdateEmployeeRequest) (user.EmployeeResponse, error)
	removeFn func(ctx context.Context, id string) error
}

func (f *fakeUserService) List(ctx context.Context) ([]user.EmployeeResponse, error) {
	return f.listFn(ctx)
}
func (f *fakeUserService) Add(ctx context.Context, req user.CreateEmployeeRequest) (user.EmployeeResponse, error) {
	return f.addFn(ctx, req)
}
func (f *fakeUserService) Update(ctx context.Context, id string, req user.UpdateEmployeeRequest) (user.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeUserService) Remove(ctx context.Context, id string) error {
	return f.removeFn(ctx, id)
}

func newRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := user.NewHandler(svc)
	r.GET("/employees", h.List)
	r.POST("/employees", h.Create)
	r.PUT("/employees/:id", h.Update)
	r.DELETE("/employees/:id", h.Delete)
	return r
}

func TestUserHandler_List(t *testing.T) {
	svc := &fakeUserService{
		listFn: func(ctx context.Context) ([]user.EmployeeResponse, error) {
			return []user.EmployeeResponse{{ID: "emp-1", Name: "John Smith"}}, nil
		},
	}
	r := newRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var list []user.EmployeeResponse
	assert.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)
	assert.Equal(t, "emp-1", list[0].ID)
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeUserService{
			addFn: func(ctx context.Context, req user.CreateEmployeeRequest) (user.EmployeeResponse, error) {
				assert.Equal(t, "ravi", req.Username)
				return user.EmployeeResponse{ID: "emp-9", Username: req.Username, Role: user.RoleEmployee}, nil
			},
		}
		r := newRouter(svc)

		body := `{"name":"Ravi Kumar","email":"ravi@example.com","username":"ravi","department":"Finance","password":"secret"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative missing fields", func(t *testing.T) {
		svc := &fakeUserService{
			addFn: func(ctx context.Context, req user.CreateEmployeeRequest) (user.EmployeeResponse, error) {
				t.Fatal("service must not be called on invalid input")
				return user.EmployeeResponse{}, nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"name":"X"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
	})

	t.Run("negative duplicate username", func(t *testing.T) {
		svc := &fakeUserService{
			addFn: func(ctx context.Context, req user.CreateEmployeeRequest) (user.EmployeeResponse, error) {
				return user.EmployeeResponse{}, usererrors.ErrUsernameTaken
			},
		}
		r := newRouter(svc)

		body := `{"name":"Ravi Kumar","email":"ravi@example.com","username":"john","department":"Finance","password":"secret"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, usererrors.ErrUsernameTaken.Code, env.Error.Code)
	})
}

func TestUserHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeUserService{
			removeFn: func(ctx context.Context, id string) error {
				assert.Equal(t, "emp-1", id)
				return nil
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/employees/emp-1", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative unknown id", func(t *testing.T) {
		svc := &fakeUserService{
			removeFn: func(ctx context.Context, id string) error {
				return usererrors.ErrEmployeeNotFound
			},
		}
		r := newRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/employees/emp-404", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, usererrors.ErrEmployeeNotFound.Code, env.Error.Code)
	})
}
