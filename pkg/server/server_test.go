package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/utensils/hexalith/pkg/errors"
	"github.com/utensils/hexalith/pkg/pipeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := New(pipeline.NewRunner(nil, nil, nil), nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, buf.Bytes()
}

func TestIndex(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		t.Errorf("Content-Type = %q, want text/html", resp.Header.Get("Content-Type"))
	}
	if !bytes.Contains(body, []byte("/generate")) {
		t.Error("index page should reference /generate")
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	var h healthResponse
	if err := json.Unmarshal(body, &h); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if h.Status != "ok" || h.Build.Version == "" {
		t.Errorf("health = %+v, want status ok and a version", h)
	}
	if got := resp.Header.Get("Server"); !strings.HasPrefix(got, "hexalith/") {
		t.Errorf("Server header = %q, want hexalith/<version>", got)
	}
}

func TestSVGEndpoint(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/svg/12345?theme=blues&shapes=4&grid_size=3&opacity=0.5&overlap=false")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	if got := resp.Header.Get("Content-Type"); got != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", got)
	}
	if got := resp.Header.Get("Cache-Control"); got != "public, max-age=86400" {
		t.Errorf("Cache-Control = %q", got)
	}
	if got := resp.Header.Get("X-Hexalith-Seed"); got != "12345" {
		t.Errorf("X-Hexalith-Seed = %q, want 12345", got)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS header missing")
	}
	if !bytes.HasPrefix(body, []byte("<svg")) {
		t.Errorf("body does not start with <svg: %.40q", body)
	}
	if n := bytes.Count(body, []byte(`class="shape"`)); n != 4 {
		t.Errorf("shape paths = %d, want 4", n)
	}

	// Same request, same bytes.
	_, again := get(t, ts.URL+"/svg/12345?theme=blues&shapes=4&grid_size=3&opacity=0.5&overlap=false")
	if !bytes.Equal(body, again) {
		t.Error("repeated request returned different SVG")
	}
}

func TestPNGAndJSONEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/png/7?width=64&height=64")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("png status = %d, body %s", resp.StatusCode, body)
	}
	if !bytes.HasPrefix(body, []byte("\x89PNG")) {
		t.Error("png body missing signature")
	}

	resp, body = get(t, ts.URL+"/json/7")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("json status = %d", resp.StatusCode)
	}
	var doc struct {
		Seed   uint64            `json:"seed"`
		Shapes []json.RawMessage `json:"shapes"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Seed != 7 || len(doc.Shapes) != 3 {
		t.Errorf("json seed %d shapes %d, want 7 and 3", doc.Seed, len(doc.Shapes))
	}
}

func TestUUIDOverridesPathSeed(t *testing.T) {
	ts := newTestServer(t)
	const id = "123e4567-e89b-12d3-a456-426614174000"
	_, a := get(t, ts.URL+"/svg/1?uuid="+id)
	_, b := get(t, ts.URL+"/svg/2?uuid="+id)
	if !bytes.Equal(a, b) {
		t.Error("uuid should override the path seed")
	}
}

func TestBadRequests(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		path  string
		code  errors.Code
		field string
	}{
		{"/svg/12345?grid_size=9", errors.ErrCodeInvalidParameter, "grid_density"},
		{"/svg/12345?grid_size=1", errors.ErrCodeInvalidParameter, "grid_density"},
		{"/svg/12345?opacity=2", errors.ErrCodeInvalidParameter, "opacity"},
		{"/svg/12345?opacity=abc", errors.ErrCodeInvalidParameter, "opacity"},
		{"/svg/12345?theme=neon", errors.ErrCodeInvalidParameter, "theme"},
		{"/svg/12345?overlap=maybe", errors.ErrCodeInvalidParameter, "overlap"},
		{"/svg/abc", errors.ErrCodeInvalidParameter, "seed"},
		{"/png/1?uuid=nope", errors.ErrCodeSeedDerivation, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", resp.StatusCode, body)
			}
			var e errorResponse
			if err := json.Unmarshal(body, &e); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if e.Code != tt.code {
				t.Errorf("code = %s, want %s", e.Code, tt.code)
			}
			if e.Field != tt.field {
				t.Errorf("field = %q, want %q", e.Field, tt.field)
			}
			if e.Message == "" {
				t.Error("message should not be empty")
			}
		})
	}
}

func TestNoRoomForShapes(t *testing.T) {
	ts := newTestServer(t)
	// 30 disjoint shapes cannot fit in the 24 cells of a density-2 grid.
	resp, body := get(t, ts.URL+"/svg/1?shapes=30&grid_size=2&overlap=false")
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body %s)", resp.StatusCode, body)
	}
	var e errorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if e.Code != errors.ErrCodeShapeGrowthExhausted {
		t.Errorf("code = %s, want %s", e.Code, errors.ErrCodeShapeGrowthExhausted)
	}
	if !strings.Contains(e.Message, "no room left") {
		t.Errorf("message = %q, want the growth failure", e.Message)
	}

	resp, body = get(t, ts.URL+"/svg/1?shapes=30&grid_size=2&overlap=true")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("overlap: status = %d, want 200 (body %s)", resp.StatusCode, body)
	}
}

func TestGenerate(t *testing.T) {
	ts := newTestServer(t)
	tests := []struct {
		name     string
		body     string
		wantSeed uint64 // 0 means any
	}{
		{"numeric seed", `{"seed": 42}`, 42},
		{"string seed", `{"seed": "12345", "theme": "reds"}`, 12345},
		{"empty seed", `{"seed": ""}`, 0},
		{"no body", ``, 0},
		{"junk seed", `{"seed": "abc"}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/generate", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}
			var out generateResponse
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				t.Fatal(err)
			}
			if tt.wantSeed != 0 && out.Seed != tt.wantSeed {
				t.Errorf("seed = %d, want %d", out.Seed, tt.wantSeed)
			}
		})
	}
}

func TestGenerateRejectsInvalidParams(t *testing.T) {
	ts := newTestServer(t)
	for _, body := range []string{`{"grid_size": 12}`, `{"theme": "neon"}`, `{not json`} {
		resp, err := http.Post(ts.URL+"/generate", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("POST %s: status = %d, want 400", body, resp.StatusCode)
		}
	}
}

func TestThemes(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/themes")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var themes []themeResponse
	if err := json.Unmarshal(body, &themes); err != nil {
		t.Fatal(err)
	}
	if len(themes) != 7 {
		t.Fatalf("themes = %d, want 7", len(themes))
	}
	if themes[0].Name != "mesos" || len(themes[0].Colors) == 0 {
		t.Errorf("first theme = %+v, want mesos with colors", themes[0])
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)
	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/generate", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("preflight missing CORS header")
	}
}
