package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"learningapp/internal/application/usecase"
	"learningapp/internal/fixture"
	"learningapp/internal/infrastructure/repository"
	"learningapp/internal/logger"
	"learningapp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("debug")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}

	catalogRepo := repository.NewCatalogRepository(fixture.Books())
	credRepo := repository.NewCredentialRepository(fixture.MockUsers())

	// Нулевые задержки, чтобы тесты не ждали мок-таймеры
	authUC := usecase.NewAuthUseCase(credRepo, 0, 0, log)
	catalogUC := usecase.NewCatalogUseCase(catalogRepo)
	screens := usecase.NewScreenManager(catalogRepo)

	return NewRouter(
		NewAuthHandler(authUC),
		NewCatalogHandler(catalogUC),
		NewScreenHandler(screens),
		middleware.NewRateLimiter(nil),
		"",
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
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

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{"email": "test@example.com", "password": "password123"})
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if resp["name"] != "John Doe" {
		t.Fatalf("want John Doe, got %v", resp["name"])
	}
	if resp["message"] != "Hello John Doe!" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{"email": "test@example.com", "password": "wrongpass"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", w.Code)
	}
	if decode(t, w)["error"] != "Invalid email or password" {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{"email": "", "password": "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
	if decode(t, w)["error"] != "Please fill in all fields" {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}

func TestRegisterEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"full_name":        "A",
		"email":            "a@b.com",
		"password":         "abcdef",
		"confirm_password": "abcdef",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d: %s", w.Code, w.Body.String())
	}
	if decode(t, w)["message"] != "Account created successfully!" {
		t.Fatalf("unexpected message: %s", w.Body.String())
	}

	// Оба нарушения сразу — побеждает mismatch, не too-short
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"full_name":        "A",
		"email":            "a@b.com",
		"password":         "ab",
		"confirm_password": "cd",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
	if decode(t, w)["error"] != "Passwords do not match" {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{
		"full_name":        "A",
		"email":            "a@b.com",
		"password":         "ab",
		"confirm_password": "ab",
	})
	if decode(t, w)["error"] != "Password must be at least 6 characters long" {
		t.Fatalf("unexpected error body: %s", w.Body.String())
	}
}

func TestBooksEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/books", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	var listResp struct {
		Books []struct {
			ID string `json:"id"`
		} `json:"books"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"plant", "animal", "biology"}
	if len(listResp.Books) != len(want) {
		t.Fatalf("want %d books, got %d", len(want), len(listResp.Books))
	}
	for i, id := range want {
		if listResp.Books[i].ID != id {
			t.Fatalf("book %d: want %q, got %q", i, id, listResp.Books[i].ID)
		}
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/books/plant", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/books/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}

func TestScreenLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/screens", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("mount: want 201, got %d", w.Code)
	}
	screenID, _ := decode(t, w)["screen_id"].(string)
	if screenID == "" {
		t.Fatalf("no screen_id in response: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/screens/"+screenID+"/select", gin.H{"book_id": "plant"})
	if w.Code != http.StatusOK {
		t.Fatalf("select: want 200, got %d: %s", w.Code, w.Body.String())
	}
	if decode(t, w)["mode"] != "drilldown" {
		t.Fatalf("expected drilldown: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/screens/"+screenID+"/toggle", gin.H{"chapter_id": "chapter1"})
	resp := decode(t, w)
	expanded, _ := resp["expanded_chapter_ids"].([]interface{})
	if len(expanded) != 1 || expanded[0] != "chapter1" {
		t.Fatalf("expected [chapter1], got %v", resp["expanded_chapter_ids"])
	}

	// Повторный выбор той же книги сбрасывает раскрытие
	w = doJSON(t, r, http.MethodPost, "/api/v1/screens/"+screenID+"/select", gin.H{"book_id": "plant"})
	resp = decode(t, w)
	expanded, _ = resp["expanded_chapter_ids"].([]interface{})
	if len(expanded) != 0 {
		t.Fatalf("re-select must clear expansion, got %v", resp["expanded_chapter_ids"])
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/screens/"+screenID+"/deselect", nil)
	if decode(t, w)["mode"] != "browsing" {
		t.Fatalf("expected browsing after deselect: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/screens/"+screenID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("unmount: want 204, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/screens/"+screenID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("view after unmount: want 404, got %d", w.Code)
	}
}
