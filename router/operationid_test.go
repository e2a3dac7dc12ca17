package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		method, pattern string
		want            string
	}{
		{"GET", "/", "get"},
		{"GET", "/widgets", "get_widgets"},
		{"POST", "/widgets", "post_widgets"},
		{"GET", "/widgets/{widgetId}", "get_widgets__widgetId"},
		{"GET", "/users/{user_id}/posts", "get_users__user_id__posts"},
		{"DELETE", "/users/{user_id}/posts/{post_id}", "delete_users__user_id__posts__post_id"},
		{"GET", "/v1/health-check", "get_v1_health_check"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, OperationID(tc.method, tc.pattern),
			"%s %s", tc.method, tc.pattern)
	}
}

func TestUseRoutePathAsOperationIDs_OverwritesAllRoutes(t *testing.T) {
	t.Parallel()

	rt := New()
	rt.HandleFunc("GET", "/widgets", noop).Named("listWidgets")
	rt.HandleFunc("POST", "/widgets", noop)
	rt.HandleFunc("GET", "/widgets/{widgetId}", noop)

	UseRoutePathAsOperationIDs(rt)

	routes := rt.Routes()
	require.Len(t, routes, 3)
	assert.Equal(t, "get_widgets", routes[0].OperationID)
	assert.Equal(t, "post_widgets", routes[1].OperationID)
	assert.Equal(t, "get_widgets__widgetId", routes[2].OperationID)
}

func TestUseRoutePathAsOperationIDs_Idempotent(t *testing.T) {
	t.Parallel()

	rt := New()
	rt.HandleFunc("GET", "/widgets/{widgetId}", noop)
	rt.HandleFunc("PATCH", "/widgets/{widgetId}", noop)

	UseRoutePathAsOperationIDs(rt)
	first := make([]string, 0, 2)
	for _, route := range rt.Routes() {
		first = append(first, route.OperationID)
	}

	UseRoutePathAsOperationIDs(rt)
	for i, route := range rt.Routes() {
		assert.Equal(t, first[i], route.OperationID, "second run changed route %d", i)
	}
}

func TestUseRoutePathAsOperationIDs_LateRoutesKeepTheirIDs(t *testing.T) {
	t.Parallel()

	rt := New()
	rt.HandleFunc("GET", "/widgets", noop)
	UseRoutePathAsOperationIDs(rt)

	// Registered after the pass: keeps its declared id. The rewriter
	// cannot detect this; running it again is the caller's job.
	late := rt.HandleFunc("GET", "/gadgets", noop).Named("listGadgets")
	assert.Equal(t, "listGadgets", late.OperationID)

	UseRoutePathAsOperationIDs(rt)
	assert.Equal(t, "get_gadgets", late.OperationID)
}

func TestUseRoutePathAsOperationIDs_WarnOptionDoesNotAlterIDs(t *testing.T) {
	t.Parallel()

	rt := New()
	rt.HandleFunc("GET", "/widgets", noop).Named("fetchAllTheWidgets")

	UseRoutePathAsOperationIDs(rt, WarnOnNameMismatch())

	assert.Equal(t, "get_widgets", rt.Routes()[0].OperationID)
}

var _ http.Handler = (*Router)(nil)
