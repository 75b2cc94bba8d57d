package bootstrap

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/config"
	"github.com/yigit/campus/internal/middleware"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
}

type harness struct {
	t      *testing.T
	router *gin.Engine
	deps   *Dependencies
	token  string
}

func newHarness(t *testing.T, authEnabled bool) *harness {
	t.Helper()

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	cfg.Server.Mode = "test"
	cfg.Auth.Enabled = authEnabled
	cfg.Auth.Secret = "test-secret"

	lgr := zerolog.Nop()
	university, err := SetupUniversity(cfg, lgr)
	require.NoError(t, err)
	deps, err := BuildDependencies(cfg, university, lgr)
	require.NoError(t, err)

	h := &harness{t: t, router: SetupRouter(cfg, deps, lgr), deps: deps}
	if authEnabled {
		h.token, _, err = deps.JWTService.GenerateToken("registrar", models.RoleRegistrar)
		require.NoError(t, err)
	}
	return h
}

func (h *harness) do(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	h.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(h.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func alice() gin.H { return gin.H{"name": "Alice", "age": 20, "specialization": "CS"} }
func bob() gin.H { return gin.H{"name": "Bob", "age": 40, "department": "CS"} }
func carol() gin.H { return gin.H{"name": "Carol", "age": 19, "specialization": "CS"} }

func Test_API_StudentScenario(t *testing.T) {
	h := newHarness(t, false)

	rec, _ := h.do(http.MethodPost, "/api/v1/students", alice())
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))

	rec, env := h.do(http.MethodGet, "/api/v1/students", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"Alice","age":20,"specialization":"CS"}]`, string(env.Data))

	rec, _ = h.do(http.MethodPost, "/api/v1/students/graduate", alice())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = h.do(http.MethodGet, "/api/v1/students", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	rec, env = h.do(http.MethodPost, "/api/v1/students/graduate", alice())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RES_001", env.Error.Code)
	assert.Equal(t, "Student not found", env.Error.Message)
}

func Test_API_TeacherScenario(t *testing.T) {
	h := newHarness(t, false)

	rec, _ := h.do(http.MethodPost, "/api/v1/teachers", bob())
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env := h.do(http.MethodGet, "/api/v1/teachers", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"Bob","age":40,"department":"CS"}]`, string(env.Data))

	rec, _ = h.do(http.MethodPost, "/api/v1/teachers/fire", bob())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = h.do(http.MethodPost, "/api/v1/teachers/fire", bob())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Teacher not found", env.Error.Message)
}

func Test_API_CourseScenario(t *testing.T) {
	h := newHarness(t, false)

	rec, env := h.do(http.MethodPost, "/api/v1/courses", gin.H{"name": "Algorithms", "teacher": bob()})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"name":"Algorithms","teacher":{"name":"Bob","age":40,"department":"CS"},"students":[]}`, string(env.Data))

	rec, _ = h.do(http.MethodPost, "/api/v1/courses/Algorithms/students", carol())
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env = h.do(http.MethodGet, "/api/v1/courses/Algorithms/students", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"Carol","age":19,"specialization":"CS"}]`, string(env.Data))

	rec, _ = h.do(http.MethodPost, "/api/v1/courses/Algorithms/students/remove", carol())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = h.do(http.MethodGet, "/api/v1/courses/Algorithms", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"Algorithms","teacher":{"name":"Bob","age":40,"department":"CS"},"students":[]}`, string(env.Data))

	rec, _ = h.do(http.MethodPost, "/api/v1/courses/Algorithms/students/remove", carol())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = h.do(http.MethodDelete, "/api/v1/courses/Algorithms", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = h.do(http.MethodDelete, "/api/v1/courses/Algorithms", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Course not found", env.Error.Message)

	rec, env = h.do(http.MethodGet, "/api/v1/courses", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func Test_API_ValidationErrors(t *testing.T) {
	h := newHarness(t, false)

	rec, env := h.do(http.MethodPost, "/api/v1/students", gin.H{"age": 20})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VAL_001", env.Error.Code)
	assert.Equal(t, "Name", env.Error.Field)

	rec, env = h.do(http.MethodPost, "/api/v1/teachers", gin.H{"name": "Bob", "age": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Age", env.Error.Field)

	rec, _ = h.do(http.MethodPost, "/api/v1/courses", gin.H{"name": "Algorithms", "teacher": gin.H{"age": 40}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_API_AuthGuardsWrites(t *testing.T) {
	h := newHarness(t, true)

	rec, _ := h.do(http.MethodPost, "/api/v1/students", alice())
	assert.Equal(t, http.StatusCreated, rec.Code)

	token := h.token

	h.token = ""
	rec, env := h.do(http.MethodPost, "/api/v1/students", alice())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_007", env.Error.Code)

	rec, _ = h.do(http.MethodGet, "/api/v1/students", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	viewer, _, err := h.deps.JWTService.GenerateToken("viewer", models.RoleViewer)
	require.NoError(t, err)
	h.token = viewer
	rec, env = h.do(http.MethodPost, "/api/v1/students", alice())
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "AUTH_009", env.Error.Code)

	h.token = token + "tampered"
	rec, env = h.do(http.MethodPost, "/api/v1/students", alice())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "AUTH_005", env.Error.Code)

	assert.Len(t, h.deps.University.Students(), 1)
}

func Test_API_Health(t *testing.T) {
	h := newHarness(t, false)

	rec, env := h.do(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func Test_SetupUniversity_WithSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("teachers:\n  - name: Bob\n    age: 40\n    department: CS\n"), 0o600))

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	cfg.Seed.Path = path

	u, err := SetupUniversity(cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []models.Teacher{models.NewTeacher("Bob", 40, "CS")}, u.Teachers())

	cfg.Seed.Path = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = SetupUniversity(cfg, zerolog.Nop())
	assert.Error(t, err)
}

func Test_NewJWTService_FallsBackOnBadExpiration(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	cfg.Auth.Secret = "x"
	cfg.Auth.TokenExpiration = "eventually"

	_, expiresAt, err := NewJWTService(cfg).GenerateToken("registrar", models.RoleRegistrar)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)
}
