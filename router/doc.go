// Package router wraps http.ServeMux with a route registry whose
// entries carry machine-readable operation ids for client-code
// generators.
//
// Routes register with an explicit method and pattern:
//
//	rt := router.New()
//	rt.HandleFunc("GET", "/widgets/{widgetId}", getWidget).Named("getWidget")
//	rt.HandleFunc("POST", "/widgets", createWidget)
//
//	router.UseRoutePathAsOperationIDs(rt)
//
// UseRoutePathAsOperationIDs derives every operation id from the method
// and path template, e.g. GET /widgets/{widgetId} becomes
// "get_widgets__widgetId". The pass must run after all routes are
// registered; routes added afterwards keep whatever operation id they
// were given. That ordering is a caller contract the rewriter cannot
// detect.
package router
