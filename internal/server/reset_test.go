package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResetTokenHandler(t *testing.T) {
	t.Run("Routes", func(t *testing.T) {
		handler := NewResetTokenHandler()
		routes := handler.Routes()
		if len(routes) != 1 || routes[0] != "/reset" {
			t.Errorf("expected [/reset], got %v", routes)
		}
	})

	t.Run("captures the token from the reset link", func(t *testing.T) {
		handler := NewResetTokenHandler()

		req := httptest.NewRequest(http.MethodGet, "/reset?token=tok-123", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Reset Link Received") {
			t.Error("expected the confirmation page")
		}

		result := <-handler.Result()
		if result.Error() != nil {
			t.Fatalf("expected no error, got %v", result.Error())
		}
		if result.Token != "tok-123" {
			t.Errorf("expected token tok-123, got %q", result.Token)
		}
	})

	t.Run("reports a missing token", func(t *testing.T) {
		handler := NewResetTokenHandler()

		req := httptest.NewRequest(http.MethodGet, "/reset", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}

		result := <-handler.Result()
		if result.Error() == nil {
			t.Error("expected an error for a tokenless link")
		}
	})

	t.Run("rejects a second callback", func(t *testing.T) {
		handler := NewResetTokenHandler()

		first := httptest.NewRequest(http.MethodGet, "/reset?token=first", nil)
		handler.ServeHTTP(httptest.NewRecorder(), first)

		second := httptest.NewRequest(http.MethodGet, "/reset?token=second", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, second)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400 for the repeat callback, got %d", rec.Code)
		}

		result := <-handler.Result()
		if result.Token != "first" {
			t.Errorf("expected the first token to win, got %q", result.Token)
		}

		// Channel is closed after the single send.
		if _, open := <-handler.Result(); open {
			t.Error("expected the result channel to be closed")
		}
	})
}

func TestBasicRouter(t *testing.T) {
	t.Run("registers handler routes", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handler(NewResetTokenHandler())

		req := httptest.NewRequest(http.MethodGet, "/reset?token=abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", rec.Code)
		}
	})

	t.Run("enforces the method on Handle", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle(http.MethodPost, "/submit", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/submit", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected status 405, got %d", rec.Code)
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submit", nil))
		if rec.Code != http.StatusCreated {
			t.Errorf("expected status 201, got %d", rec.Code)
		}
	})

	t.Run("applies middleware in registration order", func(t *testing.T) {
		router := NewBasicRouter()
		var order []string
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "outer")
				next.ServeHTTP(w, r)
			})
		})
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "inner")
				next.ServeHTTP(w, r)
			})
		})
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}))

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

		want := []string{"outer", "inner", "handler"}
		for i, step := range want {
			if i >= len(order) || order[i] != step {
				t.Fatalf("expected order %v, got %v", want, order)
			}
		}
	})
}
