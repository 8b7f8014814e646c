package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-route-handler/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a trace id and a child logger carrying it to the
// request context. An incoming X-Trace-ID header is reused.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := utils.WithTraceID(r.Context(), traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
