package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/studio-backend/internal/notify"
)

type eventPublisher interface {
	Publish(e notify.Event)
}

// Notify turns successful mutations on auto-dispatched routes into change
// events. Deletes are described by a snapshot taken before the handler runs;
// creates and updates by the response body. A mutating action on a single
// object (borrow, set_active, upload_image, ...) is an update of that object
// and is described by its state after the handler.
func Notify(events eventPublisher, snaps notify.Snapshotters, logger *slog.Logger) Middleware {
	log := logger.With("component", "notify_interceptor")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			op, ok := notify.OperationFromMethod(r.Method)
			if !ok || !strings.HasPrefix(r.URL.Path, "/api/") {
				next.ServeHTTP(w, r)
				return
			}
			rt, ok := notify.Resolve(r.URL.Path)
			if !ok || rt.Policy != notify.PolicyAuto {
				next.ServeHTTP(w, r)
				return
			}

			id, hasID := rt.ParseID(r.URL.Path)
			action := rt.ActionOf(r.URL.Path)
			memberAction := hasID && action != ""
			if memberAction {
				op = notify.OpUpdate
			}

			ctx := r.Context()
			if op == notify.OpDelete && hasID {
				var h *notify.Holder
				ctx, h = notify.WithHolder(ctx)
				if p, err := snaps.Take(ctx, rt.Kind, id); err != nil {
					log.WarnContext(ctx, "pre-delete snapshot",
						slog.String("kind", string(rt.Kind)),
						slog.Int64("id", id),
						slog.String("error", err.Error()),
					)
				} else {
					h.Set(p)
				}
				r = r.WithContext(ctx)
			}

			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(cw, r)
			if cw.status < 200 || cw.status >= 300 {
				return
			}

			var payload notify.Payload
			switch {
			case op == notify.OpDelete:
				if h := notify.HolderFromCtx(ctx); h != nil {
					payload = h.Get()
				}
				if payload == nil {
					payload = notify.Unknown(rt.Kind, id)
				}
			case memberAction:
				p, err := snaps.Take(ctx, rt.Kind, id)
				if err != nil {
					log.WarnContext(ctx, "post-action snapshot",
						slog.String("kind", string(rt.Kind)),
						slog.Int64("id", id),
						slog.String("error", err.Error()),
					)
					p = notify.Decode(rt.Kind, action, cw.body.Bytes())
				}
				payload = p
			default:
				payload = notify.Decode(rt.Kind, action, cw.body.Bytes())
			}

			e := notify.NewEvent(ctx, op, payload)
			e.Path = r.URL.Path
			e.Method = r.Method
			events.Publish(e)
		})
	}
}

// captureWriter records the status and a copy of the body.
type captureWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (w *captureWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
