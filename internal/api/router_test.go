package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tripfolio/backend/internal/config"
	"github.com/tripfolio/backend/internal/storage/sqlite"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tempDir, err := os.MkdirTemp("", "tripfolio-api-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		Port:   "0",
		DBPath: filepath.Join(tempDir, "test.db"),
		JWT:    config.JWTConfig{Secret: "test-secret"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	return NewRouter(cfg, store)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, email string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		req.Header.Set("X-User-Email", email)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestTripRoutes(t *testing.T) {
	router := newTestRouter(t)

	t.Run("health", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
	})

	t.Run("list bootstraps the default trip", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/v1/trips?owner_email=alice@example.com", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		out := decode(t, rec)
		if out["defaultTripId"] == "" {
			t.Error("Expected a defaultTripId")
		}
		trips, ok := out["trips"].([]any)
		if !ok || len(trips) != 1 {
			t.Errorf("Expected one bootstrap trip, got %v", out["trips"])
		}
	})

	t.Run("mutations without identity are 401", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/v1/trips", "", map[string]string{"name": "X"})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("Expected 401, got %d", rec.Code)
		}
		if got := decode(t, rec)["error"]; got != "auth_required" {
			t.Errorf("Expected auth_required, got %v", got)
		}
	})

	t.Run("create, update, and fetch a trip", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/v1/trips", "alice@example.com", map[string]string{"name": "Japan"})
		if rec.Code != http.StatusOK {
			t.Fatalf("Create failed: %d %s", rec.Code, rec.Body.String())
		}
		tripID, _ := decode(t, rec)["id"].(string)
		if tripID == "" {
			t.Fatal("Expected a trip id")
		}

		rec = doJSON(t, router, http.MethodPatch, "/v1/trips/"+tripID, "alice@example.com", map[string]string{
			"name": "Japan 2026", "start_date": "2026-04-01", "end_date": "2026-04-05",
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("Update failed: %d %s", rec.Code, rec.Body.String())
		}

		rec = doJSON(t, router, http.MethodGet, "/v1/trips/"+tripID, "", nil)
		out := decode(t, rec)
		trip, _ := out["trip"].(map[string]any)
		if trip["name"] != "Japan 2026" || trip["start_date"] != "2026-04-01" {
			t.Errorf("Unexpected trip payload: %v", trip)
		}
	})

	t.Run("foreign mutation is 403", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/v1/trips", "alice@example.com", map[string]string{"name": "Private"})
		tripID, _ := decode(t, rec)["id"].(string)

		rec = doJSON(t, router, http.MethodPatch, "/v1/trips/"+tripID, "mallory@example.com", map[string]string{"name": "Mine now"})
		if rec.Code != http.StatusForbidden {
			t.Fatalf("Expected 403, got %d", rec.Code)
		}
		if got := decode(t, rec)["error"]; got != "forbidden" {
			t.Errorf("Expected forbidden, got %v", got)
		}
	})

	t.Run("unknown trip is 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/v1/trips/no-such-trip", "", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("Expected 404, got %d", rec.Code)
		}
		if got := decode(t, rec)["error"]; got != "not_found" {
			t.Errorf("Expected not_found, got %v", got)
		}
	})
}

func TestItemRoutes(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/trips", "alice@example.com", map[string]string{"name": "Rome"})
	tripID, _ := decode(t, rec)["id"].(string)
	if tripID == "" {
		t.Fatalf("Trip create failed: %s", rec.Body.String())
	}

	t.Run("add item with inline place", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/v1/trips/"+tripID+"/items", "alice@example.com", map[string]any{
			"place_id": "p-colosseum",
			"day":      1,
			"note":     "book ahead",
			"place":    map[string]any{"id": "p-colosseum", "name": "Colosseum", "category": "sight", "rating": 4.7},
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("Add item failed: %d %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("missing place_id is 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/v1/trips/"+tripID+"/items", "alice@example.com", map[string]any{"day": 1})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", rec.Code)
		}
	})

	t.Run("patch echoes the note, null when cleared", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/v1/trips/"+tripID+"/items", "", nil)
		items, _ := decode(t, rec)["items"].([]any)
		if len(items) != 1 {
			t.Fatalf("Expected 1 item, got %d", len(items))
		}
		itemID, _ := items[0].(map[string]any)["id"].(string)

		rec = doJSON(t, router, http.MethodPatch, "/v1/trips/"+tripID+"/items/"+itemID, "alice@example.com", map[string]any{"note": "skip the line"})
		if rec.Code != http.StatusOK {
			t.Fatalf("Patch failed: %d %s", rec.Code, rec.Body.String())
		}
		if got := decode(t, rec)["note"]; got != "skip the line" {
			t.Errorf("Expected echoed note, got %v", got)
		}

		rec = doJSON(t, router, http.MethodPatch, "/v1/trips/"+tripID+"/items/"+itemID, "alice@example.com", map[string]any{"note": ""})
		if got, present := decode(t, rec)["note"]; !present || got != nil {
			t.Errorf("Expected null note after clearing, got %v", got)
		}
	})

	t.Run("reorder round-trips through the list", func(t *testing.T) {
		for _, placeID := range []string{"p-pantheon", "p-forum"} {
			rec := doJSON(t, router, http.MethodPost, "/v1/trips/"+tripID+"/items", "alice@example.com", map[string]any{"place_id": placeID, "day": 1})
			if rec.Code != http.StatusOK {
				t.Fatalf("Add item failed: %s", rec.Body.String())
			}
		}

		rec := doJSON(t, router, http.MethodGet, "/v1/trips/"+tripID+"/items", "", nil)
		items, _ := decode(t, rec)["items"].([]any)
		var ids []string
		for _, it := range items {
			ids = append(ids, it.(map[string]any)["id"].(string))
		}

		want := []string{ids[2], ids[0], ids[1]}
		rec = doJSON(t, router, http.MethodPost, "/v1/trips/"+tripID+"/reorder", "alice@example.com", map[string]any{"day": 1, "order": want})
		if rec.Code != http.StatusOK {
			t.Fatalf("Reorder failed: %d %s", rec.Code, rec.Body.String())
		}

		rec = doJSON(t, router, http.MethodGet, "/v1/trips/"+tripID+"/items", "", nil)
		items, _ = decode(t, rec)["items"].([]any)
		for i, wantID := range want {
			if got := items[i].(map[string]any)["id"]; got != wantID {
				t.Errorf("Position %d: expected %s, got %v", i, wantID, got)
			}
		}
	})
}

func TestShareAndExportRoutes(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/trips", "alice@example.com", map[string]string{"name": "Açores"})
	tripID, _ := decode(t, rec)["id"].(string)
	doJSON(t, router, http.MethodPatch, "/v1/trips/"+tripID, "alice@example.com", map[string]string{
		"start_date": "2026-07-01", "end_date": "2026-07-03",
	})
	doJSON(t, router, http.MethodPost, "/v1/trips/"+tripID+"/items", "alice@example.com", map[string]any{
		"place_id": "p-lagoa", "day": 2, "note": "hike early",
		"place": map[string]any{"id": "p-lagoa", "name": "Lagoa do Fogo", "category": "nature", "rating": 4.9},
	})

	t.Run("share link lifecycle over HTTP", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPatch, "/v1/trips/"+tripID+"/share", "alice@example.com", map[string]any{"make_public": true})
		if rec.Code != http.StatusOK {
			t.Fatalf("Publish failed: %d %s", rec.Code, rec.Body.String())
		}
		shareID, _ := decode(t, rec)["share_id"].(string)
		if shareID == "" {
			t.Fatal("Expected a share_id")
		}

		rec = doJSON(t, router, http.MethodGet, "/v1/share/"+shareID, "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("Resolve failed: %d %s", rec.Code, rec.Body.String())
		}
		if strings.Contains(rec.Body.String(), "alice@example.com") {
			t.Error("Share view leaks the owner email")
		}

		rec = doJSON(t, router, http.MethodPatch, "/v1/trips/"+tripID+"/share", "alice@example.com", map[string]any{"make_public": false})
		if rec.Code != http.StatusOK {
			t.Fatalf("Unpublish failed: %d", rec.Code)
		}
		rec = doJSON(t, router, http.MethodGet, "/v1/share/"+shareID, "", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404 after unpublish, got %d", rec.Code)
		}
	})

	t.Run("csv export", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/v1/trips/"+tripID+"/export.csv", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("CSV export failed: %d %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Errorf("Expected text/csv, got %q", ct)
		}
		body := rec.Body.String()
		if !strings.HasPrefix(body, "day,name,category,rating,note") {
			t.Errorf("Unexpected CSV header: %q", body)
		}
		if !strings.Contains(body, "Lagoa do Fogo") {
			t.Errorf("CSV missing item row: %q", body)
		}
	})

	t.Run("ics export", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/v1/trips/"+tripID+"/export.ics", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("ICS export failed: %d %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
			t.Errorf("Expected text/calendar, got %q", ct)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "20260702") {
			t.Errorf("Unexpected ICS body: %q", body)
		}
	})
}

func TestFavoriteAndProfileRoutes(t *testing.T) {
	router := newTestRouter(t)

	t.Run("favorites are per identity and idempotent", func(t *testing.T) {
		body := map[string]any{
			"place_id": "p-museum",
			"place":    map[string]any{"id": "p-museum", "name": "Louvre", "category": "museum"},
		}
		for i := 0; i < 2; i++ {
			rec := doJSON(t, router, http.MethodPost, "/v1/favorites", "alice@example.com", body)
			if rec.Code != http.StatusOK {
				t.Fatalf("Add favorite failed: %d %s", rec.Code, rec.Body.String())
			}
		}

		rec := doJSON(t, router, http.MethodGet, "/v1/favorites", "alice@example.com", nil)
		favorites, _ := decode(t, rec)["favorites"].([]any)
		if len(favorites) != 1 {
			t.Fatalf("Expected 1 favorite, got %d", len(favorites))
		}

		rec = doJSON(t, router, http.MethodGet, "/v1/favorites", "bob@example.com", nil)
		if favorites, _ := decode(t, rec)["favorites"].([]any); len(favorites) != 0 {
			t.Errorf("Expected bob to have no favorites, got %d", len(favorites))
		}

		rec = doJSON(t, router, http.MethodDelete, "/v1/favorites/p-museum", "alice@example.com", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("Remove favorite failed: %d", rec.Code)
		}
	})

	t.Run("profile put then get", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/v1/profile", "alice@example.com", nil)
		if got := decode(t, rec)["profile"]; got != nil {
			t.Errorf("Expected null profile, got %v", got)
		}

		rec = doJSON(t, router, http.MethodPut, "/v1/profile", "alice@example.com", map[string]string{
			"display_name": "Alice", "home_base": "Porto", "bio": "weekend hiker",
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("Put profile failed: %d %s", rec.Code, rec.Body.String())
		}

		rec = doJSON(t, router, http.MethodGet, "/v1/profile", "alice@example.com", nil)
		profile, _ := decode(t, rec)["profile"].(map[string]any)
		if profile["display_name"] != "Alice" || profile["home_base"] != "Porto" {
			t.Errorf("Unexpected profile: %v", profile)
		}

		rec = doJSON(t, router, http.MethodDelete, "/v1/profile", "alice@example.com", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("Delete profile failed: %d", rec.Code)
		}
	})

	t.Run("ai suggest without a key is 501", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/v1/ai/suggest", "alice@example.com", map[string]string{"prompt": "two days in Rome"})
		if rec.Code != http.StatusNotImplemented {
			t.Fatalf("Expected 501, got %d: %s", rec.Code, rec.Body.String())
		}
		if got := decode(t, rec)["error"]; got != "ai_disabled" {
			t.Errorf("Expected ai_disabled, got %v", got)
		}
	})
}
