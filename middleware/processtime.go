package middleware

import (
	"net/http"
	"strconv"
	"time"
)

// ProcessTimeHeader carries the elapsed handler time in seconds.
const ProcessTimeHeader = "X-Process-Time"

// ProcessTime measures the wrapped handler with a monotonic clock and
// stamps the elapsed seconds on the response as X-Process-Time. The
// header is stamped just before the first response byte, so it covers
// the time up to the moment the handler commits its response.
func ProcessTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		hw := &headerWriter{ResponseWriter: w, stamp: func(h http.Header) {
			elapsed := time.Since(start).Seconds()
			h.Set(ProcessTimeHeader, strconv.FormatFloat(elapsed, 'f', 6, 64))
		}}

		next.ServeHTTP(hw, r)
	})
}
