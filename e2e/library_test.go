package e2e

import (
	"net/http"
	"testing"
)

func listNames(t *testing.T, ta *testApp, path string) []string {
	t.Helper()
	resp, err := doRequest(ta.app, http.MethodGet, path, "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)
	items := parseJSONArray(t, resp)
	names := make([]string, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			t.Fatalf("expected object item, got %T", item)
		}
		names = append(names, obj["name"].(string))
	}
	return names
}

func TestScaleCRUD(t *testing.T) {
	ta := setupApp(t)

	if names := listNames(t, ta, "/scales"); !contains(names, "Major") {
		t.Fatalf("default scales missing: %v", names)
	}

	body := `{"name":"Blues","intervals":[3,2,1,1,3,2],"allowed_chord_types":["Major","Minor"]}`
	resp, err := doRequest(ta.app, http.MethodPost, "/scales", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusCreated)

	if names := listNames(t, ta, "/scales"); !contains(names, "Blues") {
		t.Errorf("Blues not created: %v", names)
	}

	resp, err = doRequest(ta.app, http.MethodDelete, "/scales/Blues", "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNoContent)

	resp, err = doRequest(ta.app, http.MethodDelete, "/scales/Blues", "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNotFound)
}

func TestScaleValidation(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, http.MethodPost, "/scales", `{"name":"Broken"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusBadRequest)

	body := parseJSON(t, resp)
	errObj, ok := body["error"].(map[string]interface{})
	if !ok || errObj["code"] != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR envelope, got %v", body)
	}
}

func TestScaleReorder(t *testing.T) {
	ta := setupApp(t)

	before := listNames(t, ta, "/scales")
	resp, err := doRequest(ta.app, http.MethodPost, "/scales/"+urlEscape(before[1])+"/reorder", `{"direction":"up"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	after := listNames(t, ta, "/scales")
	if after[0] != before[1] || after[1] != before[0] {
		t.Errorf("reorder up failed: %v -> %v", before, after)
	}

	// Boundary move is a no-op, not an error.
	resp, err = doRequest(ta.app, http.MethodPost, "/scales/"+urlEscape(after[0])+"/reorder", `{"direction":"up"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)
	if again := listNames(t, ta, "/scales"); again[0] != after[0] {
		t.Errorf("boundary reorder changed order: %v", again)
	}

	// Direction outside {up, down} is rejected.
	resp, err = doRequest(ta.app, http.MethodPost, "/scales/"+urlEscape(after[0])+"/reorder", `{"direction":"sideways"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusBadRequest)
}

func TestChordTypeNormalizationAndCascade(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, http.MethodPost, "/chord-types", `{"name":"sus4","intervals":[0,5,7]}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusCreated)
	created := parseJSON(t, resp)
	if created["name"] != "Sus4" {
		t.Errorf("name not normalized: %v", created["name"])
	}

	// Cascade initialized the subtree under every tuning: a voicing can be
	// stored right away.
	voicing := `{"name":"Open","difficulty":"easy","fingering":[{"string":3,"fret":0}]}`
	resp, err = doRequest(ta.app, http.MethodPost, "/voicings/Standard%20Guitar/Sus4/D", voicing)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusCreated)

	// Removing the chord type removes the subtree again.
	resp, err = doRequest(ta.app, http.MethodDelete, "/chord-types/Sus4", "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNoContent)

	resp, err = doRequest(ta.app, http.MethodPost, "/voicings/Standard%20Guitar/Sus4/D", voicing)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNotFound)
}

func TestTuningCascade(t *testing.T) {
	ta := setupApp(t)

	body := `{"name":"Open D","notes":["D","A","D","F#","A","D"]}`
	resp, err := doRequest(ta.app, http.MethodPost, "/tunings", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusCreated)

	voicing := `{"name":"Open","difficulty":"easy","fingering":[{"string":6,"fret":0}]}`
	resp, err = doRequest(ta.app, http.MethodPost, "/voicings/Open%20D/Major/D", voicing)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusCreated)

	resp, err = doRequest(ta.app, http.MethodDelete, "/tunings/Open%20D", "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNoContent)

	// The whole subtree went with the tuning.
	resp, err = doRequest(ta.app, http.MethodPost, "/voicings/Open%20D/Major/D", voicing)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNotFound)
}

func TestTuningValidation(t *testing.T) {
	ta := setupApp(t)

	resp, err := doRequest(ta.app, http.MethodPost, "/tunings", `{"name":"Bad","notes":["E","Q"]}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusBadRequest)
}
