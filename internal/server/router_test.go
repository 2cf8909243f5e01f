package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"moneytracker/internal/config"
	"moneytracker/internal/logger"
	"moneytracker/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "")
}

type testApp struct {
	t      *testing.T
	router *gin.Engine
	apiKey string
}

func setupApp(t *testing.T, apiKey string) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	cfg := &config.Config{
		Port:     "0",
		Env:      "test",
		APIKey:   apiKey,
		Location: time.UTC,
		Locale:   language.English,
	}
	return &testApp{t: t, router: NewRouter(cfg, db), apiKey: apiKey}
}

func (a *testApp) do(method, path, body string) (int, map[string]interface{}) {
	a.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("X-API-Key", a.apiKey)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var result map[string]interface{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
			a.t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
		}
	}
	return rec.Code, result
}

func (a *testApp) create(body string) string {
	a.t.Helper()

	code, result := a.do("POST", "/api/transactions", body)
	if code != http.StatusCreated {
		a.t.Fatalf("create failed with %d: %v", code, result)
	}
	return result["data"].(map[string]interface{})["_id"].(string)
}

func (a *testApp) stats() map[string]interface{} {
	a.t.Helper()

	code, result := a.do("GET", "/api/stats", "")
	if code != http.StatusOK {
		a.t.Fatalf("stats failed with %d: %v", code, result)
	}
	return result["data"].(map[string]interface{})
}

func TestTransactionLifecycle(t *testing.T) {
	app := setupApp(t, "")

	incomeID := app.create(`{"type":"income","amount":100,"categoryId":13,"description":"Salary","date":"2025-11-02T09:00:00Z"}`)
	expenseID := app.create(`{"type":"expense","amount":40,"categoryId":1,"description":"Groceries","date":"2025-11-03T18:00:00Z"}`)

	stats := app.stats()
	if stats["income"].(float64) != 100 || stats["expenses"].(float64) != 40 ||
		stats["balance"].(float64) != 60 || stats["totalTransactions"].(float64) != 2 {
		t.Fatalf("unexpected stats: %v", stats)
	}

	code, list := app.do("GET", "/api/transactions", "")
	if code != http.StatusOK {
		t.Fatalf("list failed with %d", code)
	}
	data := list["data"].([]interface{})
	if len(data) != 2 || data[0].(map[string]interface{})["_id"] != expenseID {
		t.Fatalf("expected newest first, got %v", data)
	}

	code, got := app.do("GET", "/api/transactions/"+incomeID, "")
	if code != http.StatusOK || got["data"].(map[string]interface{})["description"] != "Salary" {
		t.Fatalf("get failed with %d: %v", code, got)
	}

	code, updated := app.do("PUT", "/api/transactions/"+expenseID, `{"amount":55.5}`)
	if code != http.StatusOK {
		t.Fatalf("update failed with %d: %v", code, updated)
	}
	if app.stats()["balance"].(float64) != 44.5 {
		t.Errorf("expected balance 44.5 after update")
	}

	code, deleted := app.do("DELETE", "/api/transactions/"+expenseID, "")
	if code != http.StatusOK || deleted["success"] != true {
		t.Fatalf("delete failed with %d: %v", code, deleted)
	}
	if app.stats()["totalTransactions"].(float64) != 1 {
		t.Errorf("expected 1 transaction after delete")
	}

	code, _ = app.do("GET", "/api/transactions/"+expenseID, "")
	if code != http.StatusNotFound {
		t.Errorf("expected 404 for deleted record, got %d", code)
	}
}

func TestNegativeAmountLeavesStoreUnchanged(t *testing.T) {
	app := setupApp(t, "")
	app.create(`{"type":"income","amount":10,"categoryId":13}`)

	code, result := app.do("POST", "/api/transactions", `{"type":"expense","amount":-5,"categoryId":1}`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if result["success"] != false || result["code"] != "VALIDATION_ERROR" {
		t.Errorf("unexpected error body: %v", result)
	}
	if app.stats()["totalTransactions"].(float64) != 1 {
		t.Error("store changed after rejected create")
	}
}

func TestDeleteUnknownLeavesStoreUnchanged(t *testing.T) {
	app := setupApp(t, "")
	app.create(`{"type":"income","amount":10,"categoryId":13}`)

	code, result := app.do("DELETE", "/api/transactions/0190a7b2-3c4d-7e5f-8a9b-0c1d2e3f4a5b", "")
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if result["code"] != "NOT_FOUND" {
		t.Errorf("unexpected error body: %v", result)
	}
	if app.stats()["totalTransactions"].(float64) != 1 {
		t.Error("store changed after failed delete")
	}
}

func TestDateRange(t *testing.T) {
	app := setupApp(t, "")
	app.create(`{"type":"expense","amount":10,"categoryId":1,"date":"2025-10-01T12:00:00Z"}`)
	app.create(`{"type":"expense","amount":20,"categoryId":1,"date":"2025-10-31T22:00:00Z"}`)
	app.create(`{"type":"expense","amount":30,"categoryId":1,"date":"2025-11-05T12:00:00Z"}`)

	code, result := app.do("GET", "/api/transactions/range/2025-10-01/2025-10-31", "")
	if code != http.StatusOK {
		t.Fatalf("range failed with %d: %v", code, result)
	}
	if n := len(result["data"].([]interface{})); n != 2 {
		t.Errorf("expected the 2 October records, got %d", n)
	}

	code, _ = app.do("GET", "/api/transactions/range/2025-11-30/2025-10-01", "")
	if code != http.StatusBadRequest {
		t.Errorf("expected 400 for inverted range, got %d", code)
	}
}

func TestStatsConsistency(t *testing.T) {
	app := setupApp(t, "")
	for _, body := range []string{
		`{"type":"income","amount":0.1,"categoryId":13}`,
		`{"type":"income","amount":0.2,"categoryId":14}`,
		`{"type":"expense","amount":0.3,"categoryId":1}`,
		`{"type":"expense","amount":19.99,"categoryId":2}`,
	} {
		app.create(body)
	}

	code, result := app.do("GET", "/api/stats/consistency", "")
	if code != http.StatusOK {
		t.Fatalf("consistency failed with %d", code)
	}
	if result["data"].(map[string]interface{})["consistent"] != true {
		t.Errorf("expected consistent totals, got %v", result["data"])
	}
}

func TestSearchAndHistory(t *testing.T) {
	app := setupApp(t, "")
	app.create(`{"type":"expense","amount":12,"categoryId":2,"description":"Bus pass","date":"2025-11-19T08:00:00Z"}`)
	app.create(`{"type":"expense","amount":45.2,"categoryId":1,"description":"Groceries","date":"2025-11-20T10:00:00Z"}`)
	app.create(`{"type":"income","amount":2500,"categoryId":13,"description":"Salary","date":"2025-11-20T09:00:00Z"}`)

	code, result := app.do("GET", "/api/transactions/search?type=expense&sort=amount&order=desc", "")
	if code != http.StatusOK {
		t.Fatalf("search failed with %d: %v", code, result)
	}
	data := result["data"].([]interface{})
	if len(data) != 2 || data[0].(map[string]interface{})["description"] != "Groceries" {
		t.Errorf("unexpected search result: %v", data)
	}
	if result["total_items"].(float64) != 2 {
		t.Errorf("expected 2 total items, got %v", result["total_items"])
	}

	code, result = app.do("GET", "/api/transactions/history?now=2025-11-20T12:00:00Z&q=PASS", "")
	if code != http.StatusOK {
		t.Fatalf("history failed with %d: %v", code, result)
	}
	buckets := result["data"].([]interface{})
	if len(buckets) != 1 || buckets[0].(map[string]interface{})["label"] != "Yesterday" {
		t.Errorf("unexpected buckets: %v", buckets)
	}

	code, result = app.do("GET", "/api/stats/month?now=2025-11-20", "")
	if code != http.StatusOK {
		t.Fatalf("month stats failed with %d", code)
	}
	if result["data"].(map[string]interface{})["totalTransactions"].(float64) != 3 {
		t.Errorf("unexpected month stats: %v", result["data"])
	}
}

func TestSearchRejectsOversizedPage(t *testing.T) {
	app := setupApp(t, "")
	app.create(`{"type":"expense","amount":12,"categoryId":2,"description":"Bus pass"}`)

	code, result := app.do("GET", "/api/transactions/search?page=4611686018427387904&page_size=100", "")
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %v", code, result)
	}
	if result["code"] != "VALIDATION_ERROR" || result["message"] == "" || result["message"] == nil {
		t.Errorf("expected a validation error with a message, got %v", result)
	}

	code, result = app.do("GET", "/api/transactions/search?page=1000000&page_size=100", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200 for the last allowed page, got %d: %v", code, result)
	}
	if n := len(result["data"].([]interface{})); n != 0 {
		t.Errorf("expected an empty page, got %d items", n)
	}
}

func TestAPIKeyProtection(t *testing.T) {
	app := setupApp(t, "secret")

	code, _ := app.do("GET", "/api/transactions", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200 with key, got %d", code)
	}

	app.apiKey = ""
	code, result := app.do("GET", "/api/transactions", "")
	if code != http.StatusUnauthorized || result["code"] != "UNAUTHORIZED" {
		t.Errorf("expected 401 without key, got %d: %v", code, result)
	}

	code, _ = app.do("GET", "/api/health", "")
	if code != http.StatusOK {
		t.Errorf("expected open health check, got %d", code)
	}
}

func TestSystemRoutes(t *testing.T) {
	app := setupApp(t, "")

	code, result := app.do("GET", "/", "")
	if code != http.StatusOK || result["message"] != "Money Tracker API" {
		t.Errorf("unexpected banner %d: %v", code, result)
	}

	code, result = app.do("GET", "/api/nowhere", "")
	if code != http.StatusNotFound || result["message"] != "Route not found" {
		t.Errorf("expected route-not-found body, got %d: %v", code, result)
	}

	code, _ = app.do("GET", "/api/categories/13", "")
	if code != http.StatusOK {
		t.Errorf("expected category lookup to succeed, got %d", code)
	}
}
