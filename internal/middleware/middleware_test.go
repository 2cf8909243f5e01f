package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "moneytracker/internal/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doRequest(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name          string
		configuredKey string
		requestKey    string
		wantStatus    int
	}{
		{name: "valid_api_key", configuredKey: "secret-key", requestKey: "secret-key", wantStatus: http.StatusOK},
		{name: "invalid_api_key", configuredKey: "secret-key", requestKey: "wrong-key", wantStatus: http.StatusUnauthorized},
		{name: "missing_api_key", configuredKey: "secret-key", requestKey: "", wantStatus: http.StatusUnauthorized},
		{name: "partial_match_rejected", configuredKey: "secret-key", requestKey: "secret", wantStatus: http.StatusUnauthorized},
		{name: "open_when_unconfigured", configuredKey: "", requestKey: "", wantStatus: http.StatusOK},
		{name: "open_ignores_sent_key", configuredKey: "", requestKey: "any-key", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler(), APIKeyAuth(tt.configuredKey))
			r.GET("/test", okHandler)

			headers := map[string]string{}
			if tt.requestKey != "" {
				headers[APIKeyHeader] = tt.requestKey
			}
			rec := doRequest(r, http.MethodGet, "/test", headers)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			body := parseBody(t, rec)
			if tt.wantStatus == http.StatusUnauthorized {
				if body["code"] != "UNAUTHORIZED" || body["success"] != false {
					t.Errorf("unexpected error body: %v", body)
				}
			} else if body["status"] != "ok" {
				t.Errorf("expected handler to be reached, got %v", body)
			}
		})
	}
}

func TestAPIKeyAuthWithoutErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(APIKeyAuth("secret-key"))
	r.GET("/test", okHandler)

	rec := doRequest(r, http.MethodGet, "/test", map[string]string{})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("handler should not run, got body %q", rec.Body.String())
	}
}

func TestErrorHandler(t *testing.T) {
	t.Run("app_error", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/test", func(c *gin.Context) {
			_ = c.Error(apperrors.ErrTransactionNotFound)
		})

		rec := doRequest(r, http.MethodGet, "/test", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		body := parseBody(t, rec)
		if body["code"] != "NOT_FOUND" || body["message"] != "Transaction not found" {
			t.Errorf("unexpected body: %v", body)
		}
	})

	t.Run("unexpected_error", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/test", func(c *gin.Context) {
			_ = c.Error(errors.New("boom"))
		})

		rec := doRequest(r, http.MethodGet, "/test", nil)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		if body := parseBody(t, rec); body["message"] == "boom" {
			t.Error("internal error details leaked")
		}
	})
}

func TestNotFound(t *testing.T) {
	r := gin.New()
	r.NoRoute(NotFound())

	rec := doRequest(r, http.MethodGet, "/nowhere", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if body := parseBody(t, rec); body["message"] != "Route not found" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/test", okHandler)

	t.Run("preflight", func(t *testing.T) {
		rec := doRequest(r, http.MethodOptions, "/test", nil)
		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", rec.Code)
		}
		if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("missing allow-origin header")
		}
	})

	t.Run("simple_request", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/test", nil)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": RequestID(c)})
	})

	t.Run("issues_id", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/test", nil)
		id := rec.Header().Get(requestIDHeader)
		if id == "" {
			t.Fatal("expected a request id header")
		}
		if body := parseBody(t, rec); body["request_id"] != id {
			t.Errorf("context id %v differs from header %s", body["request_id"], id)
		}
	})

	t.Run("reuses_valid_incoming_id", func(t *testing.T) {
		const incoming = "0190a7b2-3c4d-7e5f-8a9b-0c1d2e3f4a5b"
		rec := doRequest(r, http.MethodGet, "/test", map[string]string{requestIDHeader: incoming})
		if got := rec.Header().Get(requestIDHeader); got != incoming {
			t.Errorf("expected %s, got %s", incoming, got)
		}
	})

	t.Run("replaces_invalid_incoming_id", func(t *testing.T) {
		rec := doRequest(r, http.MethodGet, "/test", map[string]string{requestIDHeader: "not-a-uuid"})
		if got := rec.Header().Get(requestIDHeader); got == "not-a-uuid" {
			t.Error("expected invalid id to be replaced")
		}
	})
}
