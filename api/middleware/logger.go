package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/capmon/capmon"
	"github.com/capmon/capmon/api"
)

type requestLog struct {
	logger capmon.Logger
	line   string
	start  time.Time
}

// GetLoggerEntry returns request scoped logger set by RequestLogger
func GetLoggerEntry(request *http.Request) capmon.Logger {
	return request.Context().Value(middleware.LogEntryCtxKey).(*requestLog).logger
}

// RequestLogger logs every request with its status, size and duration.
// Server errors are logged with the error text of the rendered ErrorResponse.
// Panics are recovered as 500 unless response is already started, http.ErrAbortHandler is panicked further.
func RequestLogger(logger capmon.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(writer http.ResponseWriter, request *http.Request) {
			entry := newRequestLog(logger, request)
			capture := &errorCapture{ResponseWriter: writer}
			wrapWriter := middleware.NewWrapResponseWriter(capture, request.ProtoMajor)

			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler { //nolint
						panic(rvr)
					}
					// response already started can't be replaced with error
					if wrapWriter.Status() == 0 {
						render.Render(wrapWriter, request, api.ErrorInternalServer(fmt.Errorf("internal Server Error"))) //nolint
					}
					entry.finish(wrapWriter, fmt.Sprintf("Panic: %+v\n%s", rvr, debug.Stack()))
					return
				}
				entry.finish(wrapWriter, capture.errorText())
			}()

			ctx := context.WithValue(request.Context(), middleware.LogEntryCtxKey, entry)
			next.ServeHTTP(wrapWriter, request.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}

func newRequestLog(logger capmon.Logger, request *http.Request) *requestLog {
	scheme := "http"
	if request.TLS != nil {
		scheme = "https"
	}
	uri := scheme + "://" + request.Host + request.RequestURI

	log := logger.Clone()
	log.Fields(map[string]interface{}{
		"context":          "http",
		"http.method":      request.Method,
		"http.uri":         uri,
		"http.protocol":    request.Proto,
		"http.remote_addr": request.RemoteAddr,
	})

	return &requestLog{
		logger: log,
		line:   fmt.Sprintf("%q from %s", request.Method+" "+uri+" "+request.Proto, request.RemoteAddr),
		start:  time.Now(),
	}
}

func (entry *requestLog) finish(writer middleware.WrapResponseWriter, problem string) {
	status := writer.Status()
	if status == 0 {
		status = http.StatusOK
	}
	elapsed := time.Since(entry.start)

	log := entry.logger
	log.Int("http.http_status", status)
	log.Int("http.content_length", writer.BytesWritten())
	log.Int64("elapsed_time_ms", elapsed.Milliseconds())

	message := fmt.Sprintf("%s - %03d %dB in %s", entry.line, status, writer.BytesWritten(), elapsed)
	if status < http.StatusInternalServerError && problem == "" {
		log.Info().Msg(message)
		return
	}
	if problem != "" {
		message += " - Error : " + problem
	}
	log.Error().Msg(message)
}

// errorCapture keeps response body only for server errors, it is needed to log ErrorResponse text.
type errorCapture struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *errorCapture) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *errorCapture) Write(buf []byte) (int, error) {
	n, err := w.ResponseWriter.Write(buf)
	if w.status >= http.StatusInternalServerError {
		w.body.Write(buf[:n])
	}
	return n, err
}

func (w *errorCapture) errorText() string {
	errResp := &api.ErrorResponse{}
	if err := json.NewDecoder(&w.body).Decode(errResp); err != nil {
		return ""
	}
	return errResp.ErrorText
}
