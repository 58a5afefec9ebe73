package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/refap3/sudokututor/pkg/config"
)

const easyPuzzle = "003020600\n900305001\n001806400\n008102900\n700000008\n006708200\n002609500\n800203009\n005010300"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{Port: "8080"}
	RegisterRoutes(r, cfg)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	router := setupRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %v", resp["status"])
	}
}

func TestSolveHandler_Solved(t *testing.T) {
	router := setupRouter()
	w := postJSON(t, router, "/api/solve", PuzzleRequest{Puzzle: easyPuzzle})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["outcome"] != "Solved" {
		t.Errorf("expected outcome Solved, got %v", resp["outcome"])
	}
}

func TestSolveHandler_InvalidBoard(t *testing.T) {
	router := setupRouter()
	dup := "550020600\n900305001\n001806400\n008102900\n700000008\n006708200\n002609500\n800203009\n005010300"
	w := postJSON(t, router, "/api/solve", PuzzleRequest{Puzzle: dup})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["outcome"] != "InvalidInitialBoard" {
		t.Errorf("expected outcome InvalidInitialBoard, got %v", resp["outcome"])
	}
}

func TestRateHandler(t *testing.T) {
	router := setupRouter()
	w := postJSON(t, router, "/api/rate", PuzzleRequest{Puzzle: easyPuzzle})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["tier"] != float64(1) {
		t.Errorf("expected tier 1, got %v", resp["tier"])
	}
}

func TestGenerateHandler(t *testing.T) {
	router := setupRouter()
	seed := int64(7)
	w := postJSON(t, router, "/api/generate", GenerateRequest{Tier: 1, MaxAttempts: 50, Seed: &seed})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["puzzle"] == nil {
		t.Error("expected a puzzle in the response")
	}
}

func TestGenerateHandler_InvalidTier(t *testing.T) {
	router := setupRouter()
	w := postJSON(t, router, "/api/generate", GenerateRequest{Tier: 9})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestValidateHandler(t *testing.T) {
	router := setupRouter()
	w := postJSON(t, router, "/api/validate", PuzzleRequest{Puzzle: easyPuzzle})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["unique"] != true {
		t.Errorf("expected unique true, got %v", resp["unique"])
	}
}

func TestBruteForceHandler(t *testing.T) {
	router := setupRouter()
	w := postJSON(t, router, "/api/brute-force", PuzzleRequest{Puzzle: easyPuzzle})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["solved"] != true {
		t.Errorf("expected solved true, got %v", resp["solved"])
	}
}
