package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matzehuels/treestruct/pkg/store"
)

func newTestServer(t *testing.T) (*Server, store.Store) {
	t.Helper()
	s := store.NewMemoryStore()
	return NewServer(s, nil), s
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func createDoc(t *testing.T, srv http.Handler) store.Document {
	t.Helper()
	rec := doJSON(t, srv, http.MethodPost, "/trees", map[string]any{
		"name": "sample",
		"trees": []map[string]any{
			{"data": "root", "children": []map[string]any{
				{"data": "child", "children": []map[string]any{}},
			}},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body)
	}
	var doc store.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode created doc: %v", err)
	}
	if doc.ID == "" {
		t.Fatal("created doc has no ID")
	}
	return doc
}

func TestCreateAndGet(t *testing.T) {
	srv, _ := newTestServer(t)
	doc := createDoc(t, srv)

	rec := doJSON(t, srv, http.MethodGet, "/trees/"+doc.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var got store.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "sample" || len(got.Trees) != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestList(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/trees", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("empty list = %s, want []", got)
	}

	createDoc(t, srv)
	rec = doJSON(t, srv, http.MethodGet, "/trees", nil)
	var docs []store.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &docs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("list = %d docs, want 1", len(docs))
	}
}

func TestPut(t *testing.T) {
	srv, _ := newTestServer(t)
	doc := createDoc(t, srv)

	rec := doJSON(t, srv, http.MethodPut, "/trees/"+doc.ID, map[string]any{
		"name":  "renamed",
		"trees": []map[string]any{{"data": 1, "children": []map[string]any{}}},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, body %s", rec.Code, rec.Body)
	}
	var got store.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "renamed" || got.ID != doc.ID {
		t.Errorf("got %+v", got)
	}
}

func TestDelete(t *testing.T) {
	srv, _ := newTestServer(t)
	doc := createDoc(t, srv)

	rec := doJSON(t, srv, http.MethodDelete, "/trees/"+doc.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = doJSON(t, srv, http.MethodGet, "/trees/"+doc.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/trees/absent", "/trees/absent/dot", "/trees/absent/svg"} {
		rec := doJSON(t, srv, http.MethodGet, path, nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "error") {
			t.Errorf("GET %s body = %s, want JSON error", path, rec.Body)
		}
	}
}

func TestBadBody(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/trees", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDOTEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	doc := createDoc(t, srv)

	rec := doJSON(t, srv, http.MethodGet, "/trees/"+doc.ID+"/dot", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("dot status = %d", rec.Code)
	}
	dot := rec.Body.String()
	if !strings.Contains(dot, `"root" -> "child";`) {
		t.Errorf("dot output missing edge:\n%s", dot)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/vnd.graphviz" {
		t.Errorf("content type = %q", got)
	}
}
