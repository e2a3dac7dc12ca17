package middleware

import (
	"net/http"
	"strconv"

	"github.com/forgo/batteries/querycount"
)

// QueryCountHeader carries the number of database statements executed
// while serving the request.
const QueryCountHeader = "X-DB-Query-Count"

// QueryCount installs a per-request statement counter into the request
// context and stamps the final count on the response as
// X-DB-Query-Count. Instrumented database clients (querycount.WrapDriver,
// the database package) increment the counter as a side effect of every
// statement they run with the request context.
//
// The header is stamped just before the first response byte; statements
// executed after the handler starts writing are still counted in the
// context but no longer visible in the header.
func QueryCount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		counter := &querycount.Counter{}
		ctx := querycount.WithCounter(r.Context(), counter)

		hw := &headerWriter{ResponseWriter: w, stamp: func(h http.Header) {
			h.Set(QueryCountHeader, strconv.FormatInt(counter.Count(), 10))
		}}

		next.ServeHTTP(hw, r.WithContext(ctx))
	})
}
