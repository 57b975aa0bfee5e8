package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/fretstudio/api/internal/handler"
	"github.com/fretstudio/api/internal/library"
	"github.com/fretstudio/api/internal/service"
	"github.com/fretstudio/api/internal/store"
)

// testApp holds all components needed for testing
type testApp struct {
	app  *fiber.App
	repo *library.Repository
}

// setupApp creates a Fiber app identical to main.go, backed by a throwaway
// data directory seeded with the default library.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	fileStore, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { fileStore.Close() })

	repo := library.NewRepository(library.Defaults(), fileStore)
	if err := repo.Flush(); err != nil {
		t.Fatalf("failed to seed test store: %v", err)
	}

	validate := validator.New()

	// Services
	theoryService := service.NewTheoryService(repo)
	snapshotService := service.NewSnapshotService(repo, validate)

	// Handlers
	theoryHandler := handler.NewTheoryHandler(theoryService, 24)
	scaleHandler := handler.NewScaleHandler(repo, validate)
	chordTypeHandler := handler.NewChordTypeHandler(repo, validate)
	tuningHandler := handler.NewTuningHandler(repo, validate)
	voicingHandler := handler.NewVoicingHandler(repo, validate)
	snapshotHandler := handler.NewSnapshotHandler(snapshotService)

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Theory routes
	app.Get("/notes/:root/:chordType", theoryHandler.ChordNotes)
	app.Get("/fretboard/scale", theoryHandler.ScaleFretboard)
	app.Get("/fretboard/chord", theoryHandler.ChordFretboard)

	// Scale routes
	app.Get("/scales", scaleHandler.List)
	app.Post("/scales", scaleHandler.Upsert)
	app.Delete("/scales/:name", scaleHandler.Delete)
	app.Post("/scales/:name/reorder", scaleHandler.Reorder)
	app.Get("/scales/:root/:name/notes", theoryHandler.ScaleNotes)
	app.Get("/scales/:root/:name/chords", theoryHandler.DiatonicChords)

	// Chord type routes
	app.Get("/chord-types", chordTypeHandler.List)
	app.Post("/chord-types", chordTypeHandler.Upsert)
	app.Delete("/chord-types/:name", chordTypeHandler.Delete)
	app.Post("/chord-types/:name/reorder", chordTypeHandler.Reorder)

	// Tuning routes
	app.Get("/tunings", tuningHandler.List)
	app.Post("/tunings", tuningHandler.Upsert)
	app.Delete("/tunings/:name", tuningHandler.Delete)
	app.Post("/tunings/:name/reorder", tuningHandler.Reorder)

	// Voicing routes
	app.Get("/voicings/:tuning/:chordType/:root", voicingHandler.List)
	app.Post("/voicings/:tuning/:chordType/:root", voicingHandler.Upsert)
	app.Delete("/voicings/:tuning/:chordType/:root/:name", voicingHandler.Delete)
	app.Post("/voicings/:tuning/:chordType/:root/:name/reorder", voicingHandler.Reorder)

	// Snapshot routes
	app.Get("/library/export", snapshotHandler.Export)
	app.Post("/library/import", snapshotHandler.Import)

	return &testApp{app: app, repo: repo}
}

// doRequest is a helper to perform HTTP requests against the test app.
func doRequest(app *fiber.App, method, path string, body string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, path, bodyReader)
	if err != nil {
		return nil, err
	}

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return app.Test(req, -1)
}

// readBody reads and returns the response body as a string.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(b)
}

// parseJSON parses response body into a map.
func parseJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	body := readBody(t, resp)
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, body)
	}
	return result
}

// parseJSONArray parses response body into a slice.
func parseJSONArray(t *testing.T, resp *http.Response) []interface{} {
	t.Helper()
	body := readBody(t, resp)
	var result []interface{}
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, body)
	}
	return result
}

// assertStatus checks the HTTP status code.
func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

// stringItems converts a parsed JSON array of strings.
func stringItems(t *testing.T, items []interface{}) []string {
	t.Helper()
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			t.Fatalf("expected string item, got %T", item)
		}
		out = append(out, s)
	}
	return out
}

// urlEscape encodes a library name for use in a path segment.
func urlEscape(s string) string {
	return url.PathEscape(s)
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
