package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
)

// heldWriter keeps the handler's status and body in memory so the session can be
// persisted before anything reaches the client. Headers go straight to the
// underlying writer's map; nothing is sent until release.
type heldWriter struct {
	gin.ResponseWriter
	status  int
	body    bytes.Buffer
	written bool
}

func holdResponse(w gin.ResponseWriter) *heldWriter {
	return &heldWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *heldWriter) WriteHeader(code int) {
	if code > 0 && !w.written {
		w.status = code
	}
}

func (w *heldWriter) WriteHeaderNow() { w.written = true }

func (w *heldWriter) Write(b []byte) (int, error) {
	w.written = true
	return w.body.Write(b)
}

func (w *heldWriter) WriteString(s string) (int, error) {
	w.written = true
	return w.body.WriteString(s)
}

func (w *heldWriter) Status() int   { return w.status }
func (w *heldWriter) Written() bool { return w.written }

func (w *heldWriter) Size() int {
	if !w.written {
		return -1
	}
	return w.body.Len()
}

// Flush is a no-op: flushing would send the response before the session is saved.
func (w *heldWriter) Flush() {}

// release sends the held response through the underlying writer.
func (w *heldWriter) release() {
	w.ResponseWriter.WriteHeader(w.status)
	if w.body.Len() == 0 {
		w.ResponseWriter.WriteHeaderNow()
		return
	}
	_, _ = w.ResponseWriter.Write(w.body.Bytes())
}
