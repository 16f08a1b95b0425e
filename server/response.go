package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// endpointResult is what an endpoint function hands back: a status, a body,
// and an internal message that is logged but never shown to the user.
type endpointResult struct {
	isErr       bool
	isJSON      bool
	status      int
	internalMsg string
	resp        interface{}
	hdrs        [][2]string
}

// ErrorResponse is the body of every JSON error response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// jsonOK returns an endpointResult containing an HTTP-200 along with a more
// detailed message (if desired; if none is provided it defaults to a generic
// one) that is not displayed to the user.
func jsonOK(respObj interface{}, internalMsg ...interface{}) endpointResult {
	return jsonResponse(http.StatusOK, respObj, internalMsgOr("OK", internalMsg))
}

// jsonCreated is like jsonOK but with an HTTP-201.
func jsonCreated(respObj interface{}, internalMsg ...interface{}) endpointResult {
	return jsonResponse(http.StatusCreated, respObj, internalMsgOr("created", internalMsg))
}

// jsonNoContent returns an endpointResult containing an HTTP-204 and no body.
func jsonNoContent(internalMsg ...interface{}) endpointResult {
	return jsonResponse(http.StatusNoContent, nil, internalMsgOr("no content", internalMsg))
}

// jsonBadRequest returns an endpointResult containing an HTTP-400 along with
// the given user-facing message.
func jsonBadRequest(userMsg string, internalMsg ...interface{}) endpointResult {
	return jsonErr(http.StatusBadRequest, userMsg, internalMsgOr("bad request", internalMsg))
}

// jsonConflict returns an endpointResult containing an HTTP-409 along with
// the given user-facing message.
func jsonConflict(userMsg string, internalMsg ...interface{}) endpointResult {
	return jsonErr(http.StatusConflict, userMsg, internalMsgOr("conflict", internalMsg))
}

// jsonMethodNotAllowed returns an endpointResult containing an HTTP-405 for
// the method of the given request.
func jsonMethodNotAllowed(req *http.Request, internalMsg ...interface{}) endpointResult {
	userMsg := fmt.Sprintf("Method %s is not allowed for %s", req.Method, req.URL.Path)
	return jsonErr(http.StatusMethodNotAllowed, userMsg, internalMsgOr("method not allowed", internalMsg))
}

// jsonNotFound returns an endpointResult containing an HTTP-404.
func jsonNotFound(internalMsg ...interface{}) endpointResult {
	return jsonErr(http.StatusNotFound, "The requested resource was not found", internalMsgOr("not found", internalMsg))
}

// jsonForbidden returns an endpointResult containing an HTTP-403.
func jsonForbidden(internalMsg ...interface{}) endpointResult {
	return jsonErr(http.StatusForbidden, "You don't have permission to do that", internalMsgOr("forbidden", internalMsg))
}

// jsonUnauthorized returns an endpointResult containing an HTTP-401 response
// along with the proper WWW-Authenticate header.
func jsonUnauthorized(userMsg string, internalMsg ...interface{}) endpointResult {
	if userMsg == "" {
		userMsg = "You are not authorized to do that"
	}

	return jsonErr(http.StatusUnauthorized, userMsg, internalMsgOr("unauthorized", internalMsg)).
		withHeader("WWW-Authenticate", `Bearer realm="Tale server", charset="utf-8"`)
}

// jsonInternalServerError returns an endpointResult containing an HTTP-500
// along with a generic user-facing message; the detail goes only to the log.
func jsonInternalServerError(internalMsg ...interface{}) endpointResult {
	return jsonErr(http.StatusInternalServerError, "An internal server error occurred", internalMsgOr("internal server error", internalMsg))
}

// internalMsgOr formats the variadic internal message arguments endpoints
// pass around, or gives back the default when none were provided. The first
// argument must be a string and is used as the format string for the rest.
func internalMsgOr(def string, internalMsg []interface{}) string {
	if len(internalMsg) < 1 {
		return def
	}
	format := internalMsg[0].(string)
	return fmt.Sprintf(format, internalMsg[1:]...)
}

// if status is http.StatusNoContent, respObj will not be read and may be nil.
func jsonResponse(status int, respObj interface{}, internalMsg string) endpointResult {
	return endpointResult{
		isJSON:      true,
		isErr:       false,
		status:      status,
		internalMsg: internalMsg,
		resp:        respObj,
	}
}

func jsonErr(status int, userMsg, internalMsg string) endpointResult {
	return endpointResult{
		isJSON:      true,
		isErr:       true,
		status:      status,
		internalMsg: internalMsg,
		resp: ErrorResponse{
			Error:  userMsg,
			Status: status,
		},
	}
}

// textErr is like jsonErr but writes the output as plain text.
func textErr(status int, userMsg, internalMsg string) endpointResult {
	return endpointResult{
		isJSON:      false,
		isErr:       true,
		status:      status,
		internalMsg: internalMsg,
		resp:        userMsg,
	}
}

func (r endpointResult) withHeader(name, val string) endpointResult {
	r.hdrs = append(r.hdrs, [2]string{name, val})
	return r
}

func (r endpointResult) writeResponse(w http.ResponseWriter, req *http.Request) {
	// if this hasn't been properly created, output error directly and do not
	// try to read properties
	if r.status == 0 {
		logHTTPResponse("ERROR", req, http.StatusInternalServerError, "endpoint result was never populated")
		http.Error(w, "An internal server error occurred", http.StatusInternalServerError)
		return
	}

	var respJSON []byte
	if r.isJSON && r.status != http.StatusNoContent {
		var err error
		respJSON, err = json.Marshal(r.resp)
		if err != nil {
			res := jsonErr(http.StatusInternalServerError, "An internal server error occurred", "could not marshal JSON response: "+err.Error())
			res.writeResponse(w, req)
			return
		}
	}

	if r.isErr {
		logHTTPResponse("ERROR", req, r.status, r.internalMsg)
	} else {
		logHTTPResponse("INFO", req, r.status, r.internalMsg)
	}

	var respBytes []byte

	if r.isJSON {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		respBytes = respJSON
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		if r.status != http.StatusNoContent {
			respBytes = []byte(fmt.Sprintf("%v", r.resp))
		}
	}

	for i := range r.hdrs {
		w.Header().Set(r.hdrs[i][0], r.hdrs[i][1])
	}

	w.WriteHeader(r.status)

	if r.status != http.StatusNoContent {
		w.Write(respBytes)
	}
}

func logHTTPResponse(level string, req *http.Request, respStatus int, msg string) {
	if len(level) > 5 {
		level = level[0:5]
	}

	for len(level) < 5 {
		level += " "
	}

	// the ephemeral port on the client end is not interesting
	remoteAddrParts := strings.SplitN(req.RemoteAddr, ":", 2)
	remoteIP := remoteAddrParts[0]

	log.Printf("%s %s %s %s: HTTP-%d %s", level, remoteIP, req.Method, req.URL.Path, respStatus, msg)
}
