package server

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	APIPathPrefix = "/api/v1"
)

var (
	paramTypePats = map[string]string{
		"uuid": "[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}",
	}
)

// p is a quick parameter in a URI, made very small to ease readability in
// route listings.
func p(nameType string) string {
	var name string
	var pat string

	parts := strings.SplitN(nameType, ":", 2)
	name = parts[0]
	if len(parts) == 2 {
		// if the type is a name in the paramTypePats map use that, else treat
		// it as a normal pattern
		pat = parts[1]

		if translatedPat, ok := paramTypePats[parts[1]]; ok {
			pat = translatedPat
		}
	}

	if pat == "" {
		return "{" + name + "}"
	}
	return "{" + name + ":" + pat + "}"
}

func newRouter(ts TaleServer) chi.Router {
	r := chi.NewRouter()

	r.Mount(APIPathPrefix, newAPIRouter(ts))

	return r
}

func newAPIRouter(ts TaleServer) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", ts.ep(ts.doEndpoint_Login_POST))
	r.Delete("/login/"+p("id:uuid"), ts.epID(ts.doEndpoint_LoginID_DELETE))
	r.Post("/tokens", ts.ep(ts.doEndpoint_Token_POST))

	r.Route("/users", func(r chi.Router) {
		r.Get("/", ts.ep(ts.doEndpoint_Users_GET))
		r.Post("/", ts.ep(ts.doEndpoint_Users_POST))
		r.Route("/"+p("id:uuid"), func(r chi.Router) {
			r.Get("/", ts.epID(ts.doEndpoint_UsersID_GET))
			r.Patch("/", ts.epID(ts.doEndpoint_UsersID_PATCH))
			r.Delete("/", ts.epID(ts.doEndpoint_UsersID_DELETE))
		})
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", ts.ep(ts.doEndpoint_Sessions_POST))
		r.Route("/"+p("id:uuid"), func(r chi.Router) {
			r.Get("/", ts.epID(ts.doEndpoint_SessionsID_GET))
			r.Delete("/", ts.epID(ts.doEndpoint_SessionsID_DELETE))
			r.Get("/commands", ts.epID(ts.doEndpoint_SessionsIDCommands_GET))
			r.Post("/commands", ts.epID(ts.doEndpoint_SessionsIDCommands_POST))
		})
	})

	r.Get("/info", ts.ep(ts.doEndpoint_Info_GET))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		jsonNotFound().writeResponse(w, req)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		time.Sleep(ts.unauthedDelay)
		jsonMethodNotAllowed(req).writeResponse(w, req)
	})

	return r
}

// ep adapts an endpoint function to an http.HandlerFunc. Panics become
// HTTP-500s, and unauthorized results are delayed to slow down brute-force
// attempts.
func (ts TaleServer) ep(endpoint func(req *http.Request) endpointResult) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer panicTo500(w, req)

		result := endpoint(req)
		if result.status == http.StatusUnauthorized {
			time.Sleep(ts.unauthedDelay)
		}
		result.writeResponse(w, req)
	}
}

// epID is ep for endpoints keyed on a UUID path parameter named id.
func (ts TaleServer) epID(endpoint func(req *http.Request, id uuid.UUID) endpointResult) http.HandlerFunc {
	return ts.ep(func(req *http.Request) endpointResult {
		id, err := uuid.Parse(chi.URLParam(req, "id"))
		if err != nil {
			return jsonBadRequest("id: not a valid UUID", "bad id path param: %s", err.Error())
		}
		return endpoint(req, id)
	})
}

func panicTo500(w http.ResponseWriter, req *http.Request) (panicRecovered bool) {
	if panicErr := recover(); panicErr != nil {
		textErr(
			http.StatusInternalServerError,
			"An internal server error occurred",
			fmt.Sprintf("panic: %v\nSTACK TRACE: %s", panicErr, string(debug.Stack())),
		).writeResponse(w, req)
		return true
	}
	return false
}
