package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/BruksfildServices01/flatmate-finder/internal/audit"
	"github.com/BruksfildServices01/flatmate-finder/internal/auth"
	"github.com/BruksfildServices01/flatmate-finder/internal/config"
	"github.com/BruksfildServices01/flatmate-finder/internal/infra/memstore"
	"github.com/BruksfildServices01/flatmate-finder/internal/metrics"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
	"github.com/BruksfildServices01/flatmate-finder/internal/ratelimit"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
	store  *memstore.Store
	tokens *auth.TokenManager
}

func testConfig() *config.Config {
	return &config.Config{
		Env:             "test",
		Port:            "0",
		DatabaseURL:     config.MemoryDatabaseURL,
		FrontendURL:     "https://flatmate.example.com",
		JWTSecret:       "test-secret",
		JWTExpiresIn:    time.Hour,
		RateLimitMax:    1000,
		RateLimitWindow: time.Minute,
		BodyLimitBytes:  1 << 20,
		UploadMaxBytes:  1 << 20,
	}
}

func newTestServer(t *testing.T, tweak func(*config.Config)) *testServer {
	t.Helper()

	cfg := testConfig()
	if tweak != nil {
		tweak(cfg)
	}

	log := zaptest.NewLogger(t)
	store := memstore.New()
	repos := MemoryRepositories(store)

	dispatcher := audit.NewDispatcher(audit.New(repos.Audit), log)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = dispatcher.Close(ctx)
	})

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiresIn)

	engine := NewEngine(Deps{
		Config:      cfg,
		Log:         log,
		Location:    time.UTC,
		Repos:       repos,
		Audit:       dispatcher,
		Tokens:      tokens,
		Revocations: auth.NewMemoryRevocations(),
		Limiter:     ratelimit.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow),
		Metrics:     metrics.New(prometheus.NewRegistry()),
	})

	return &testServer{t: t, engine: engine, store: store, tokens: tokens}
}

type response struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// data returns body.data as an object.
func (r response) data() map[string]any {
	d, _ := r.Body["data"].(map[string]any)
	return d
}

func (r response) list() []any {
	d, _ := r.Body["data"].([]any)
	return d
}

func (s *testServer) do(method, path, token string, body any, headers ...string) response {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	return s.serve(req)
}

func (s *testServer) serve(req *http.Request) response {
	s.t.Helper()

	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	out := response{Code: rec.Code, Header: rec.Header()}
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(rec.Body.Bytes(), &out.Body)
	}
	return out
}

// register creates an account and returns its token and id.
func (s *testServer) register(name, email, password string) (string, string) {
	s.t.Helper()

	res := s.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(s.t, http.StatusCreated, res.Code, res.Body)

	user := res.Body["user"].(map[string]any)
	return res.Body["token"].(string), user["_id"].(string)
}

// admin stores an admin account directly and returns a token for it.
func (s *testServer) admin(email string) string {
	s.t.Helper()

	u := &models.User{Name: "Admin", Email: email, Role: models.RoleAdmin}
	require.NoError(s.t, s.store.Users().Create(s.t.Context(), u))
	token, err := s.tokens.Issue(u)
	require.NoError(s.t, err)
	return token
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()

	res := s.do(http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(s.t, http.StatusOK, res.Code, res.Body)
	return res.Body["token"].(string)
}

func listingBody(overrides map[string]any) map[string]any {
	body := map[string]any{
		"title":         "Sunny room near the park",
		"description":   "A bright private room in a quiet shared flat.",
		"location":      "Bandra West, Mumbai",
		"price":         50000,
		"bedrooms":      2,
		"bathrooms":     1,
		"roommates":     map[string]any{"current": 1, "max": 2},
		"images":        []string{"https://images.example.com/room.jpg"},
		"amenities":     []string{"wifi", "furnished"},
		"roomType":      "Private Room",
		"availableFrom": "2030-01-01",
	}
	for k, v := range overrides {
		body[k] = v
	}
	return body
}

func (s *testServer) createListing(token string, overrides map[string]any) string {
	s.t.Helper()

	res := s.do(http.MethodPost, "/api/listings", token, listingBody(overrides))
	require.Equal(s.t, http.StatusCreated, res.Code, res.Body)
	return res.data()["_id"].(string)
}

func bookingBody(listingID string) map[string]any {
	return map[string]any{
		"listing":     listingID,
		"viewingDate": "2030-02-01",
		"viewingTime": "14:30",
		"moveInDate":  "2030-03-01",
		"message":     "Would love to see the room",
		"phoneNumber": "+44 7123 456789",
	}
}

func roommateBody(overrides map[string]any) map[string]any {
	body := map[string]any{
		"title":          "Looking for a tidy flatmate",
		"bio":            "Software engineer, quiet during the week.",
		"location":       "South Mumbai",
		"preferredAreas": []string{"Bandra", "Khar"},
		"budget":         map[string]any{"min": 30000, "max": 40000},
		"roomType":       "Private Room",
		"moveInDate":     "2030-04-01",
	}
	for k, v := range overrides {
		body[k] = v
	}
	return body
}
