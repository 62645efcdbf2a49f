package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Minhaj-beep/teer-api/internal/config"
	"github.com/Minhaj-beep/teer-api/internal/handlers"
	"github.com/Minhaj-beep/teer-api/internal/repositories/memory"
	"github.com/Minhaj-beep/teer-api/internal/services"
	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
	}
	gameRepo := memory.NewGameRepository()
	userRepo := memory.NewUserRepository()

	gameService := services.NewGameService(gameRepo, cfg)
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, cfg)

	if _, err := userService.CreateUser(context.Background(), "admin", "admin-pass", true); err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}

	router := SetupRouter(cfg, HandlerDependencies{
		AuthHandler: handlers.NewAuthHandler(authService),
		UserHandler: handlers.NewUserHandler(userService),
		GameHandler: handlers.NewGameHandler(gameService),
	})

	// Log in through the API so the tests exercise the real token path.
	res := perform(router, http.MethodPost, "/users/login", `{"name":"admin","pass":"admin-pass"}`, "")
	if res.Code != http.StatusOK {
		t.Fatalf("Expected login to succeed, but got %d: %s", res.Code, res.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(res.Body.Bytes(), &login); err != nil {
		t.Fatalf("Expected a login response, but got %v", err)
	}
	return router, login.Token
}

func perform(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func createGame(t *testing.T, router *gin.Engine, token, name, date string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"prize":80,"date":%q,"time":"18:00"}`, name, date)
	res := perform(router, http.MethodPost, "/games", body, token)
	if res.Code != http.StatusCreated {
		t.Fatalf("Expected 201, but got %d: %s", res.Code, res.Body.String())
	}
	var game struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(res.Body.Bytes(), &game); err != nil {
		t.Fatalf("Expected a game response, but got %v", err)
	}
	return game.ID
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)
	res := perform(router, http.MethodGet, "/health", "", "")
	if res.Code != http.StatusOK {
		t.Errorf("Expected 200, but got %d", res.Code)
	}
}

func TestGameRoutes(t *testing.T) {
	router, token := newTestRouter(t)
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	t.Run("mutations require a token", func(t *testing.T) {
		res := perform(router, http.MethodPost, "/games", `{"name":"x","prize":80,"date":"2030-01-01","time":"18:00"}`, "")
		if res.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401, but got %d", res.Code)
		}
	})

	t.Run("create returns the derived fields", func(t *testing.T) {
		body := fmt.Sprintf(`{"name":"Evening Round","prize":80,"date":%q,"time":"18:00"}`, tomorrow)
		res := perform(router, http.MethodPost, "/games", body, token)
		if res.Code != http.StatusCreated {
			t.Fatalf("Expected 201, but got %d: %s", res.Code, res.Body.String())
		}
		var view map[string]json.RawMessage
		if err := json.Unmarshal(res.Body.Bytes(), &view); err != nil {
			t.Fatalf("Expected a game view, but got %v", err)
		}
		for _, field := range []string{"totalAmount", "lowestAmountNumber", "highestAmountNumber", "totalGiveAway"} {
			if _, ok := view[field]; !ok {
				t.Errorf("Expected the response to carry %q", field)
			}
		}
	})

	t.Run("create rejects an out-of-range prize", func(t *testing.T) {
		body := fmt.Sprintf(`{"name":"Bad","prize":100,"date":%q,"time":"18:00"}`, tomorrow)
		res := perform(router, http.MethodPost, "/games", body, token)
		if res.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, but got %d: %s", res.Code, res.Body.String())
		}
	})

	t.Run("unknown game returns 404", func(t *testing.T) {
		res := perform(router, http.MethodGet, "/games/64b1f0c3d1a2b3c4d5e6f7a8", "", "")
		if res.Code != http.StatusNotFound {
			t.Errorf("Expected 404, but got %d", res.Code)
		}
	})

	t.Run("ticket update accumulates while the window is open", func(t *testing.T) {
		id := createGame(t, router, token, "Open Round", tomorrow)
		res := perform(router, http.MethodPatch, "/games/"+id+"/ticket",
			`{"numbers":[{"number":"07","amount":12},{"number":"07","amount":3}]}`, token)
		if res.Code != http.StatusOK {
			t.Fatalf("Expected 200, but got %d: %s", res.Code, res.Body.String())
		}
		var view struct {
			TotalAmount float64 `json:"totalAmount"`
		}
		if err := json.Unmarshal(res.Body.Bytes(), &view); err != nil {
			t.Fatalf("Expected a game view, but got %v", err)
		}
		if view.TotalAmount != 15 {
			t.Errorf("Expected total 15, but got %v", view.TotalAmount)
		}
	})

	t.Run("ticket update after the draw is forbidden", func(t *testing.T) {
		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		id := createGame(t, router, token, "Closed Round", yesterday)
		res := perform(router, http.MethodPatch, "/games/"+id+"/ticket",
			`{"numbers":[{"number":"07","amount":12}]}`, token)
		if res.Code != http.StatusForbidden {
			t.Errorf("Expected 403, but got %d: %s", res.Code, res.Body.String())
		}
	})

	t.Run("totals aggregate across games", func(t *testing.T) {
		res := perform(router, http.MethodGet, "/games/count/total", "", "")
		if res.Code != http.StatusOK {
			t.Fatalf("Expected 200, but got %d", res.Code)
		}
		var report struct {
			TotalGames  int     `json:"totalGames"`
			TotalSale   float64 `json:"totalSale"`
			TotalProfit float64 `json:"totalProfit"`
		}
		if err := json.Unmarshal(res.Body.Bytes(), &report); err != nil {
			t.Fatalf("Expected a report, but got %v", err)
		}
		if report.TotalGames == 0 {
			t.Error("Expected at least one game in the report")
		}
		if report.TotalSale != 15 {
			t.Errorf("Expected sale 15, but got %v", report.TotalSale)
		}
	})
}

func TestUserRoutes(t *testing.T) {
	router, token := newTestRouter(t)

	t.Run("status lookup is public", func(t *testing.T) {
		res := perform(router, http.MethodGet, "/users/status?name=admin", "", "")
		if res.Code != http.StatusOK {
			t.Fatalf("Expected 200, but got %d", res.Code)
		}
		var status struct {
			Name   string `json:"name"`
			Status bool   `json:"status"`
		}
		if err := json.Unmarshal(res.Body.Bytes(), &status); err != nil {
			t.Fatalf("Expected a status response, but got %v", err)
		}
		if status.Name != "admin" || !status.Status {
			t.Errorf("Expected admin/active, but got %+v", status)
		}
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		res := perform(router, http.MethodPost, "/users", `{"name":"admin","pass":"another-pass"}`, token)
		if res.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, but got %d: %s", res.Code, res.Body.String())
		}
	})

	t.Run("inactive user cannot log in", func(t *testing.T) {
		res := perform(router, http.MethodPost, "/users", `{"name":"carol","pass":"carol-pass","status":false}`, token)
		if res.Code != http.StatusCreated {
			t.Fatalf("Expected 201, but got %d: %s", res.Code, res.Body.String())
		}
		res = perform(router, http.MethodPost, "/users/login", `{"name":"carol","pass":"carol-pass"}`, "")
		if res.Code != http.StatusForbidden {
			t.Errorf("Expected 403, but got %d: %s", res.Code, res.Body.String())
		}
	})

	t.Run("credentials never appear in responses", func(t *testing.T) {
		res := perform(router, http.MethodGet, "/users", "", token)
		if res.Code != http.StatusOK {
			t.Fatalf("Expected 200, but got %d", res.Code)
		}
		if bytes.Contains(res.Body.Bytes(), []byte("pass")) {
			t.Errorf("Expected no credential material in the response, but got %s", res.Body.String())
		}
	})
}
