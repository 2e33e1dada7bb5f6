package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const fixture = `# graft graph v1
vertex 0 "app"
vertex 1 "lib"
vertex 2 "core"
edge 0 1 "imports"
edge 1 2 "imports"
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(nil).Router())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, path, body string) (int, string) {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "text/plain", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(data)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestStats(t *testing.T) {
	ts := newTestServer(t)
	status, body := post(t, ts, "/v1/stats", fixture)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var got statsResponse
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Vertices != 3 || got.Edges != 2 {
		t.Errorf("stats = %d/%d, want 3/2", got.Vertices, got.Edges)
	}
	if len(got.Sources) != 1 || got.Sources[0] != 0 {
		t.Errorf("sources = %v, want [0]", got.Sources)
	}
	if len(got.Sinks) != 1 || got.Sinks[0] != 2 {
		t.Errorf("sinks = %v, want [2]", got.Sinks)
	}
	if got.MaxOut != 1 || got.MaxIn != 1 {
		t.Errorf("degrees = %d/%d, want 1/1", got.MaxOut, got.MaxIn)
	}
}

func TestFmtCanonicalizes(t *testing.T) {
	ts := newTestServer(t)

	// The same graph with noise - extra comments and blank lines - must
	// canonicalize to the exact fixture bytes.
	noisy := "# anything\n\n" + strings.ReplaceAll(fixture, "# graft graph v1\n", "")
	status, body := post(t, ts, "/v1/fmt", noisy)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body != fixture {
		t.Errorf("canonical form =\n%s\nwant\n%s", body, fixture)
	}
}

func TestDOT(t *testing.T) {
	ts := newTestServer(t)
	status, body := post(t, ts, "/v1/dot", fixture)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	for _, want := range []string{"digraph G {", "0 -> 1", "1 -> 2"} {
		if !strings.Contains(body, want) {
			t.Errorf("DOT body missing %q:\n%s", want, body)
		}
	}
}

func TestMalformedInput(t *testing.T) {
	ts := newTestServer(t)
	status, body := post(t, ts, "/v1/stats", "vertex nope\n")
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	var errBody map[string]string
	if err := json.Unmarshal([]byte(body), &errBody); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if !strings.Contains(errBody["error"], "line 1") {
		t.Errorf("error %q should name the offending line", errBody["error"])
	}
}

func TestEmptyGraph(t *testing.T) {
	ts := newTestServer(t)
	status, body := post(t, ts, "/v1/stats", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var got statsResponse
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Vertices != 0 || got.Edges != 0 {
		t.Errorf("stats = %d/%d, want 0/0", got.Vertices, got.Edges)
	}
}
