package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	lv "github.com/reoring/liskvalidator"
)

func heightSchema(t *testing.T) *lv.Schema {
	t.Helper()
	c := lv.NewCompiler()
	err := c.AddSchema("/header", map[string]any{
		"type":     "object",
		"required": []any{"height"},
		"properties": map[string]any{
			"height": map[string]any{"dataType": "uint32", "fieldNumber": 1},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c.MustCompile("/header")
}

func TestValidate_PassesValidData(t *testing.T) {
	var seen any
	h := Validate(heightSchema(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = DataFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"height": 12}`)))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	m, ok := seen.(map[string]any)
	if !ok || m["height"] != json.Number("12") {
		t.Fatalf("data in context = %#v", seen)
	}
}

func TestValidate_RejectsInvalidData(t *testing.T) {
	h := Validate(heightSchema(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"height": -1}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload struct {
		Errors []struct {
			Keyword      string `json:"keyword"`
			InstancePath string `json:"instancePath"`
			Message      string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload.Errors) != 1 {
		t.Fatalf("errors = %+v", payload.Errors)
	}
	e := payload.Errors[0]
	if e.Keyword != "dataType" || e.InstancePath != "/height" || e.Message != "Property '/height' should be of type 'uint32'" {
		t.Fatalf("unexpected error %+v", e)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed body status = %d", rec.Code)
	}
}

type failingBody struct{}

func (failingBody) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestValidate_BodyReadErrors(t *testing.T) {
	h := Validate(heightSchema(t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run")
	}))

	rec := httptest.NewRecorder()
	large := `{"height": 1, "pad": "` + strings.Repeat("x", int(DefaultMaxBodyBytes)) + `"}`
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(large)))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("oversized body status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", failingBody{}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("failed read status = %d", rec.Code)
	}
}
