package e2e

import (
	"net/http"
	"testing"
)

const voicingPath = "/voicings/Standard%20Guitar/Major/C"

func postVoicing(t *testing.T, ta *testApp, body string) {
	t.Helper()
	resp, err := doRequest(ta.app, http.MethodPost, voicingPath, body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusCreated)
}

func voicingList(t *testing.T, ta *testApp) []map[string]interface{} {
	t.Helper()
	resp, err := doRequest(ta.app, http.MethodGet, voicingPath, "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)
	items := parseJSONArray(t, resp)
	out := make([]map[string]interface{}, len(items))
	for i, item := range items {
		out[i] = item.(map[string]interface{})
	}
	return out
}

func TestVoicingLifecycle(t *testing.T) {
	ta := setupApp(t)

	if got := voicingList(t, ta); len(got) != 0 {
		t.Fatalf("expected no voicings initially, got %v", got)
	}

	// Difficulty arrives capitalized and is normalized on the way in.
	postVoicing(t, ta, `{"name":"Open","difficulty":"Easy","fingering":[{"string":5,"fret":3},{"string":4,"fret":2},{"string":2,"fret":1}]}`)
	postVoicing(t, ta, `{"name":"Barre","difficulty":"hard","fingering":[{"string":6,"fret":8},{"string":5,"fret":10}]}`)

	voicings := voicingList(t, ta)
	if len(voicings) != 2 {
		t.Fatalf("expected 2 voicings, got %d", len(voicings))
	}
	if voicings[0]["difficulty"] != "easy" {
		t.Errorf("difficulty not normalized: %v", voicings[0]["difficulty"])
	}

	// Upsert with a matching name replaces in place.
	postVoicing(t, ta, `{"name":"Open","difficulty":"medium","fingering":[{"string":5,"fret":3}]}`)
	voicings = voicingList(t, ta)
	if len(voicings) != 2 {
		t.Fatalf("upsert duplicated the voicing: %d entries", len(voicings))
	}
	if voicings[0]["name"] != "Open" || voicings[0]["difficulty"] != "medium" {
		t.Errorf("upsert did not replace in place: %v", voicings[0])
	}

	resp, err := doRequest(ta.app, http.MethodDelete, voicingPath+"/Open", "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNoContent)

	resp, err = doRequest(ta.app, http.MethodDelete, voicingPath+"/Open", "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNotFound)
}

func TestVoicingUninitializedPath(t *testing.T) {
	ta := setupApp(t)

	body := `{"name":"Open","difficulty":"easy","fingering":[{"string":1,"fret":0}]}`
	resp, err := doRequest(ta.app, http.MethodPost, "/voicings/No%20Such%20Tuning/Major/C", body)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNotFound)
}

func TestVoicingValidation(t *testing.T) {
	ta := setupApp(t)

	// Unknown difficulty value.
	resp, err := doRequest(ta.app, http.MethodPost, voicingPath,
		`{"name":"Open","difficulty":"impossible","fingering":[{"string":1,"fret":0}]}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusBadRequest)

	// Empty fingering.
	resp, err = doRequest(ta.app, http.MethodPost, voicingPath,
		`{"name":"Open","difficulty":"easy","fingering":[]}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusBadRequest)
}

func TestVoicingReorder(t *testing.T) {
	ta := setupApp(t)

	for _, name := range []string{"First", "Second", "Third"} {
		postVoicing(t, ta, `{"name":"`+name+`","difficulty":"easy","fingering":[{"string":1,"fret":0}]}`)
	}

	resp, err := doRequest(ta.app, http.MethodPost, voicingPath+"/Third/reorder", `{"direction":"up"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)

	voicings := voicingList(t, ta)
	if voicings[1]["name"] != "Third" {
		t.Errorf("reorder up failed: %v", voicings)
	}

	// Boundary moves are no-ops.
	resp, err = doRequest(ta.app, http.MethodPost, voicingPath+"/First/reorder", `{"direction":"up"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusOK)
	if voicings = voicingList(t, ta); voicings[0]["name"] != "First" {
		t.Errorf("boundary reorder changed order: %v", voicings)
	}

	resp, err = doRequest(ta.app, http.MethodPost, voicingPath+"/Ghost/reorder", `{"direction":"down"}`)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	assertStatus(t, resp, http.StatusNotFound)
}
