package serverapp

import (
	"net/http"

	"github.com/gorilla/mux"
)

type RouteDoc struct {
	Method      string `json:"method"`
	Pattern     string `json:"pattern"`
	Summary     string `json:"summary,omitempty"`
	ExampleBody string `json:"example_body,omitempty"`
}

type RouteRegistry struct {
	routes []RouteDoc
}

func (rr *RouteRegistry) Add(doc RouteDoc) {
	rr.routes = append(rr.routes, doc)
}

func (rr *RouteRegistry) List() []RouteDoc {
	out := make([]RouteDoc, len(rr.routes))
	copy(out, rr.routes)
	return out
}

// handle registers h on r and documents it in rr.
func handle(r *mux.Router, rr *RouteRegistry, method, pattern, summary, exampleBody string, h http.HandlerFunc) {
	rr.Add(RouteDoc{Method: method, Pattern: pattern, Summary: summary, ExampleBody: exampleBody})
	r.HandleFunc(pattern, h).Methods(method)
}
