package endpoints

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quorum-Code/profanitycheck/internal/auth"
	"github.com/Quorum-Code/profanitycheck/internal/cache"
	"github.com/Quorum-Code/profanitycheck/internal/database"
	"github.com/Quorum-Code/profanitycheck/internal/logging"
	"github.com/Quorum-Code/profanitycheck/internal/repository"
	"github.com/Quorum-Code/profanitycheck/internal/service"
)

const testSecret = "test_secret_key"

func newTestConfig(t *testing.T) *ApiConfig {
	t.Helper()

	logger := logging.Discard()
	db := database.InitCleanDB([]string{"damn", "shit", "dick", "twat", "twatting"})
	require.NoError(t, db.CreateAdmin("admin@example.com", "hunter2"))

	list := repository.NewProfanityListRepository(db, cache.NewMemoryCache(), time.Hour, logger)

	return &ApiConfig{
		Db:             db,
		ProfanityList:  list,
		Profanity:      service.NewProfanityService(list, logger),
		Logger:         logger,
		JWTSecret:      testSecret,
		MaxUploadBytes: 64,
	}
}

func uploadRequest(t *testing.T, filename string, content string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/uploadfile", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) service.Result {
	t.Helper()

	result := service.Result{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestUploadFile(t *testing.T) {
	tests := map[string]struct {
		filename string
		content  string
		status   int
		contains bool
		count    int
	}{
		"valid file": {
			filename: "test.txt",
			content:  "This is the expected file contents!",
			status:   http.StatusOK,
		},
		"profane file": {
			filename: "test.txt",
			content:  "small dick with little shit. damn",
			status:   http.StatusUnprocessableEntity,
			contains: true,
			count:    3,
		},
		"wrong type": {
			filename: "test.pdf",
			content:  "This is the test text for PDF file.",
			status:   http.StatusBadRequest,
		},
		"empty file": {
			filename: "test.txt",
			content:  "",
			status:   http.StatusBadRequest,
		},
		"too big": {
			filename: "test.txt",
			content:  strings.Repeat("a", 65),
			status:   http.StatusBadRequest,
		},
		"no file": {
			status: http.StatusBadRequest,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := newTestConfig(t)
			rec := httptest.NewRecorder()

			cfg.UploadFile(rec, uploadRequest(t, test.filename, test.content))

			assert.Equal(t, test.status, rec.Code)
			if test.status == http.StatusBadRequest {
				assert.Contains(t, rec.Body.String(), "error")
				return
			}

			result := decodeResult(t, rec)
			assert.Equal(t, test.contains, result.ContainsProfanity)
			assert.Equal(t, test.count, result.ProfanityWordCount)
		})
	}
}

func TestPostCheck(t *testing.T) {
	cfg := newTestConfig(t)

	rec := httptest.NewRecorder()
	body := `{"text": "twat twatting", "remove_partial_matches": true}`
	cfg.PostCheck(rec, httptest.NewRequest(http.MethodPost, "/api/check", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeResult(t, rec)
	assert.True(t, result.ContainsProfanity)
	assert.Equal(t, []string{"twatting"}, result.Profanities)

	rec = httptest.NewRecorder()
	cfg.PostCheck(rec, httptest.NewRequest(http.MethodPost, "/api/check", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfanityList(t *testing.T) {
	cfg := newTestConfig(t)

	rec := httptest.NewRecorder()
	cfg.GetProfanityList(rec, httptest.NewRequest(http.MethodGet, "/profanitylist", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	words := []string{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &words))
	assert.Equal(t, []string{"damn", "shit", "dick", "twat", "twatting"}, words)

	tests := []struct {
		name    string
		handler http.HandlerFunc
		method  string
		query   string
		status  int
	}{
		{name: "add", handler: cfg.PostProfanity, method: http.MethodPost, query: "?profanity=Penis", status: http.StatusOK},
		{name: "add again", handler: cfg.PostProfanity, method: http.MethodPost, query: "?profanity=penis", status: http.StatusBadRequest},
		{name: "add empty", handler: cfg.PostProfanity, method: http.MethodPost, query: "", status: http.StatusBadRequest},
		{name: "delete", handler: cfg.DeleteProfanity, method: http.MethodDelete, query: "?profanity=damn", status: http.StatusOK},
		{name: "delete again", handler: cfg.DeleteProfanity, method: http.MethodDelete, query: "?profanity=damn", status: http.StatusBadRequest},
	}

	for _, test := range tests {
		rec := httptest.NewRecorder()
		test.handler(rec, httptest.NewRequest(test.method, "/profanitylist"+test.query, nil))
		assert.Equal(t, test.status, rec.Code, test.name)
	}

	assert.Equal(t, []string{"shit", "dick", "twat", "twatting", "penis"}, cfg.Db.GetBannedWords())
}

func TestRequireAdmin(t *testing.T) {
	cfg := newTestConfig(t)
	called := false
	handler := cfg.RequireAdmin(func(resp http.ResponseWriter, req *http.Request) {
		called = true
		resp.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/profanitylist", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	pair, err := auth.MakeTokenPair("admin@example.com", testSecret)
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/profanitylist", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	handler(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/profanitylist", nil)
	req.Header.Set("Authorization", "Bearer "+pair.Token)
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireAdminWithoutSecret(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.JWTSecret = ""
	called := false
	handler := cfg.RequireAdmin(func(resp http.ResponseWriter, req *http.Request) {
		called = true
	})

	forged, err := auth.MakeToken("attacker", auth.AccessIssuer, "", time.Hour)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/profanitylist?profanity=kerfuffle", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.NotContains(t, cfg.Db.GetBannedWords(), "kerfuffle")

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	cfg.PostRefresh(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRefreshRevoke(t *testing.T) {
	cfg := newTestConfig(t)

	rec := httptest.NewRecorder()
	cfg.PostLoginHandler(rec, httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email": "admin@example.com", "password": "wrong"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	cfg.PostLoginHandler(rec, httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email": "admin@example.com", "password": "hunter2"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	pair := auth.TokenPair{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pair))
	assert.True(t, cfg.Db.IsValidRefreshToken(pair.RefreshToken))

	refresh := func() int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
		req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
		cfg.PostRefresh(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, refresh())

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/revoke", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	cfg.PostRevoke(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, http.StatusUnauthorized, refresh())
}

func TestLoginWithoutSecret(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.JWTSecret = ""

	rec := httptest.NewRecorder()
	cfg.PostLoginHandler(rec, httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email": "admin@example.com", "password": "hunter2"}`)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMiddlewareRecover(t *testing.T) {
	handler := MiddlewareRecover(logging.Discard(), http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"statusCode": 500, "message": "Internal Server Error."}`, rec.Body.String())
}

func TestMiddlewareRequestLog(t *testing.T) {
	handler := MiddlewareRequestLog(logging.Discard(), http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		resp.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "given-id")
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "given-id", rec.Header().Get(requestIDHeader))
}

func TestMetrics(t *testing.T) {
	cfg := newTestConfig(t)
	handler := cfg.MiddlewareMetricsInc(http.HandlerFunc(cfg.HealthzHandler))

	for i := 0; i < 3; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/healthz", nil))
	}

	rec := httptest.NewRecorder()
	cfg.GetMetricsHandler(rec, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))
	assert.Equal(t, "Hits: 3", rec.Body.String())

	cfg.MiddlewareMetricsReset(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/reset", nil))
	assert.Equal(t, int64(0), cfg.Hits.Load())
}
