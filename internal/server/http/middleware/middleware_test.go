package middleware

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/pawshope/internal/server/http/dto"
	testhelpers "github.com/polkiloo/pawshope/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestAdminRequired(t *testing.T) {
	verifier := testhelpers.CredentialVerifierStub{User: "admin", Password: "secret"}

	cases := []struct {
		name     string
		verifier CredentialVerifier
		user     string
		password string
		setAuth  bool
		status   int
	}{
		{name: "no verifier", verifier: nil, status: http.StatusOK},
		{name: "disabled", verifier: testhelpers.CredentialVerifierStub{Disabled: true}, status: http.StatusOK},
		{name: "missing credentials", verifier: verifier, status: http.StatusUnauthorized},
		{name: "wrong password", verifier: verifier, user: "admin", password: "nope", setAuth: true, status: http.StatusUnauthorized},
		{name: "valid", verifier: verifier, user: "admin", password: "secret", setAuth: true, status: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", AdminRequired(tc.verifier), func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.setAuth {
				req.SetBasicAuth(tc.user, tc.password)
			}
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, resp.Code)
			}
			if tc.status == http.StatusUnauthorized {
				if !strings.HasPrefix(resp.Header().Get("WWW-Authenticate"), "Basic ") {
					t.Fatalf("expected basic challenge, got %q", resp.Header().Get("WWW-Authenticate"))
				}
				var body dto.ErrorResponse
				if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil || body.Error != "Unauthorized" {
					t.Fatalf("unexpected body %q", resp.Body.String())
				}
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeaders())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	for _, kv := range securityHeaders {
		if got := resp.Header().Get(kv[0]); got != kv[1] {
			t.Errorf("header %s: expected %q, got %q", kv[0], kv[1], got)
		}
	}
	if resp.Header().Get("Content-Security-Policy") != "" {
		t.Errorf("content security policy must not be set")
	}
}

func TestRecovery(t *testing.T) {
	cases := []struct {
		name        string
		development bool
		message     string
	}{
		{name: "production hides panic", development: false, message: "Something went wrong"},
		{name: "development exposes panic", development: true, message: "kaboom"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Recovery(discardLogger(), tc.development))
			router.GET("/", func(*gin.Context) { panic("kaboom") })

			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

			if resp.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", resp.Code)
			}
			var body dto.PanicResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error != "Internal Server Error" || body.Message != tc.message {
				t.Fatalf("unexpected body %+v", body)
			}
		})
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("payload"))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest(0))
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(buf.Bytes()))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if body != "payload" {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("plain")))
	resp = httptest.NewRecorder()
	body = ""
	router.ServeHTTP(resp, req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for corrupt gzip, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("compressed?"))
	req.Header.Set("Content-Encoding", "br")
	resp = httptest.NewRecorder()
	body = ""
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnsupportedMediaType || body != "" {
		t.Fatalf("expected 415 without reaching handler, got %d %q", resp.Code, body)
	}
}

func TestDecompressRequestLimitsBody(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest(4))
	var readErr error
	router.POST("/", func(c *gin.Context) {
		_, readErr = io.ReadAll(c.Request.Body)
		c.Status(http.StatusOK)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("too long")))
	if readErr == nil {
		t.Fatal("expected oversized body to fail")
	}
}

func TestRequestLogger(t *testing.T) {
	var levels []slog.Level
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			levels = append(levels, a.Value.Any().(slog.Level))
		}
		return a
	}})
	logger := slog.New(handler)

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	for _, p := range []string{"/ok", "/bad", "/fail"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	want := []slog.Level{slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	if len(levels) != len(want) {
		t.Fatalf("expected %d log lines, got %d", len(want), len(levels))
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Fatalf("line %d: expected %v, got %v", i, want[i], levels[i])
		}
	}
}

func TestRequestLoggerRequestID(t *testing.T) {
	var ids []string
	handler := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == "request_id" {
			ids = append(ids, a.Value.String())
		}
		return a
	}})

	router := gin.New()
	router.Use(RequestLogger(slog.New(handler)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "trace-42")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if got := resp.Header().Get(RequestIDHeader); got != "trace-42" {
		t.Fatalf("expected inbound request id echoed, got %q", got)
	}

	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ok", nil))
	generated := resp.Header().Get(RequestIDHeader)
	if len(generated) != 36 {
		t.Fatalf("expected generated uuid, got %q", generated)
	}

	if len(ids) != 2 || ids[0] != "trace-42" || ids[1] != generated {
		t.Fatalf("unexpected logged ids %v", ids)
	}
}
