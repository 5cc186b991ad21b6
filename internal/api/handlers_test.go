package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avillaseca/redlab/internal/content"
)

// scriptStub feeds canned bridge outputs into the content service.
type scriptStub struct {
	outputs []string
	errs    []error
}

func (s *scriptStub) Run(_ context.Context, args ...string) ([]byte, error) {
	if len(s.outputs) == 0 {
		return nil, errors.New("no canned output")
	}
	out, err := s.outputs[0], s.errs[0]
	s.outputs = s.outputs[1:]
	s.errs = s.errs[1:]
	return []byte(out), err
}

func (s *scriptStub) add(out string, err error) {
	s.outputs = append(s.outputs, out)
	s.errs = append(s.errs, err)
}

func newTestServer(stub *scriptStub) *Server {
	return NewServer(content.NewService(stub, nil))
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&scriptStub{})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestContentUpdate_ServesAndCaches(t *testing.T) {
	stub := &scriptStub{}
	stub.add(`{"success": true, "timestamp": "2026-08-28T10:00:00Z", "updates": {"threats": {"summary": "s", "citations": []}}}`, nil)
	srv := newTestServer(stub)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content-update", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}

	var first content.ContentUpdate
	if err := json.Unmarshal(rec.Body.Bytes(), &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !first.Success || first.Cached {
		t.Fatalf("unexpected first response: %+v", first)
	}

	// Second request is served from cache; the stub has no more outputs,
	// so a script run would fail loudly.
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content-update", nil))

	var second content.ContentUpdate
	if err := json.Unmarshal(rec.Body.Bytes(), &second); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !second.Cached {
		t.Fatalf("expected cached response: %+v", second)
	}
}

func TestContentUpdate_RefreshParamForcesFetch(t *testing.T) {
	stub := &scriptStub{}
	stub.add(`{"success": true, "timestamp": "t"}`, nil)
	stub.add(`{"success": true, "timestamp": "t2"}`, nil)
	srv := newTestServer(stub)

	srv.Router().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/content-update", nil))

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content-update?refresh=true", nil))

	var update content.ContentUpdate
	if err := json.Unmarshal(rec.Body.Bytes(), &update); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if update.Cached || update.Timestamp != "t2" {
		t.Fatalf("expected fresh fetch, got %+v", update)
	}
}

func TestContentUpdate_FailureWithoutCacheIs500(t *testing.T) {
	stub := &scriptStub{}
	stub.add("", errors.New("boom"))
	srv := newTestServer(stub)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content-update", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestContentUpdate_FailureWithCacheIs200WithWarning(t *testing.T) {
	stub := &scriptStub{}
	stub.add(`{"success": true, "timestamp": "t"}`, nil)
	stub.add("", errors.New("boom"))
	srv := newTestServer(stub)

	srv.Router().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/content-update", nil))

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content-update?refresh=true", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var update content.ContentUpdate
	if err := json.Unmarshal(rec.Body.Bytes(), &update); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if update.Warning == "" {
		t.Fatalf("expected warning on stale fallback: %+v", update)
	}
}

func TestNotebookQuery_RequiresQuery(t *testing.T) {
	srv := newTestServer(&scriptStub{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notebook/query", strings.NewReader(`{}`))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestNotebookQuery_Success(t *testing.T) {
	stub := &scriptStub{}
	stub.add(`{"success": true, "content": ["an answer"]}`, nil)
	srv := newTestServer(stub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notebook/query",
		strings.NewReader(`{"query": "what changed?", "notebook_id": "nb-1"}`))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}

	var result content.QueryResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.Success || len(result.Content) != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestNotebookQuery_BadJSON(t *testing.T) {
	srv := newTestServer(&scriptStub{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/notebook/query", strings.NewReader(`{not json`))
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}
