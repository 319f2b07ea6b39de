package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"

	j "github.com/goccy/go-json"

	lv "github.com/reoring/liskvalidator"
)

// DefaultMaxBodyBytes bounds request bodies read by Validate.
const DefaultMaxBodyBytes int64 = 1 << 20

type ctxKeyData struct{}

// ContextWithData attaches validated request data to the context.
func ContextWithData(ctx context.Context, data any) context.Context {
	return context.WithValue(ctx, ctxKeyData{}, data)
}

// DataFromContext retrieves data stored by ContextWithData.
func DataFromContext(ctx context.Context) (any, bool) {
	v := ctx.Value(ctxKeyData{})
	return v, v != nil
}

// ErrorPayload shapes validation errors for JSON responses.
func ErrorPayload(errs []lv.ErrorObject) map[string]any {
	items := make([]map[string]any, 0, len(errs))
	for _, e := range errs {
		item := map[string]any{
			"keyword":      e.Keyword,
			"instancePath": e.InstancePath,
			"schemaPath":   e.SchemaPath,
			"message":      lv.FormatError(e),
		}
		if e.Params != nil {
			item["params"] = e.Params.Map()
		}
		items = append(items, item)
	}
	return map[string]any{"errors": items}
}

// Validate decodes JSON request bodies and validates them against s.
// Invalid requests are answered with 400 and an ErrorPayload; valid data is
// available to next through DataFromContext.
func Validate(s *lv.Schema) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, DefaultMaxBodyBytes))
			if err != nil {
				status := http.StatusBadRequest
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					status = http.StatusRequestEntityTooLarge
				}
				writeJSON(w, status, map[string]any{"error": err.Error()})
				return
			}
			data, err := lv.DecodeJSON(body)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
				return
			}
			if err := s.Validate(data); err != nil {
				if ve, ok := lv.AsValidationError(err); ok {
					writeJSON(w, http.StatusBadRequest, ErrorPayload(ve.Errors()))
					return
				}
				writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithData(r.Context(), data)))
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = j.NewEncoder(w).Encode(v)
}
