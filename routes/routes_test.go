package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/NutritionScanner/nutrivision-backend/config"
	"github.com/NutritionScanner/nutrivision-backend/models"
)

type stubSummarizer struct{}

func (stubSummarizer) Summarize(_ context.Context, foodItem string) (models.NutritionRecord, error) {
	rec := models.PlaceholderRecord(foodItem)
	rec.Summary = "stub summary"
	return rec, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.AppConfig{
		HuggingFaceToken: "test-token",
		GoogleProjectID:  "test-project",
		GoogleLocation:   "test-location",
		JWTSecret:        "test-secret",
	}
	return SetupRouter(cfg, db, stubSummarizer{})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRootWelcome(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAISummaryEndpointReturnsFullRecord(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodGet, "/ai-summary/quinoa", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var rec map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec["food_item"] != "quinoa" || rec["summary"] != "stub summary" {
		t.Errorf("record = %v", rec)
	}
	// Every canonical key is present even for a mostly placeholder record.
	for _, key := range []string{
		"calories", "protein", "carbohydrates", "fats", "fiber", "sugar",
		"health_rating", "average_serving_size", "calories_per_serving",
		"serving_notes", "nutriscore", "ingredients",
	} {
		if _, ok := rec[key]; !ok {
			t.Errorf("response missing field %q", key)
		}
	}
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"username": "alice", "password": "hunter22", "age": 30,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/login", gin.H{
		"username": "alice", "password": "hunter22",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}
	var loginResp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("unmarshal login: %v", err)
	}
	if loginResp["access_token"] == "" || loginResp["token_type"] != "bearer" {
		t.Errorf("login response = %v", loginResp)
	}

	w = doJSON(t, r, http.MethodPost, "/login", gin.H{
		"username": "alice", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad login status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/user?username=alice", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile status = %d", w.Code)
	}
	var profile map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
		t.Fatalf("unmarshal profile: %v", err)
	}
	if profile["username"] != "alice" {
		t.Errorf("profile = %v", profile)
	}
	if _, ok := profile["password"]; ok {
		t.Error("profile exposes password")
	}

	w = doJSON(t, r, http.MethodGet, "/user?username=ghost", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing user status = %d", w.Code)
	}
}

func TestDuplicateRegistrationRejected(t *testing.T) {
	r := newTestRouter(t)

	body := gin.H{"username": "bob", "password": "pw"}
	if w := doJSON(t, r, http.MethodPost, "/register", body); w.Code != http.StatusOK {
		t.Fatalf("first register status = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/register", body); w.Code != http.StatusBadRequest {
		t.Errorf("second register status = %d, want 400", w.Code)
	}
}

func TestDetectionFeedRequiresToken(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodGet, "/ws/detections", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
