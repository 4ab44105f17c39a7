package responder

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/certograph/harness/internal/models"
)

// calledAtLayout renders timestamps as UTC ISO-8601 with microsecond
// precision and a trailing Z, e.g. "2024-09-11T15:51:05.809722Z".
const calledAtLayout = "2006-01-02T15:04:05.000000Z"

// Handler fabricates HTTP responses described by the request's query string.
// It binds to every method and every path; dispatch happens on the query
// directives alone. When the client does not override the body, the response
// is a JSON echo record describing the request as observed.
type Handler struct{}

// NewHandler creates a new responder handler
func NewHandler() *Handler {
	return &Handler{}
}

// ServeHTTP implements http.Handler interface
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Panic recovery to ensure the responder remains operational
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("PANIC: Recovered from panic in ServeHTTP: %v", rec)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
	}()

	startTime := time.Now()

	// Read and capture the request body
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	r.Body.Close()

	params, err := parseParams(r.URL.RawQuery)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	status := http.StatusOK
	if params.set.StatusCode != nil {
		status = *params.set.StatusCode
		// WriteHeader rejects codes outside this range by panicking
		if status < 100 || status > 999 {
			http.Error(w, "invalid status_code: out of range", http.StatusBadRequest)
			return
		}
	}

	if !params.set.NoHeaders {
		for _, hd := range params.responseHeaders {
			w.Header().Set(hd.name, hd.value)
		}
	}

	// The delay runs after validation and before any response byte.
	// A client that disconnects mid-delay gets nothing.
	if !sleep(r.Context(), delayFor(params.set)) {
		return
	}

	var responseBody []byte
	switch {
	case params.hasBody:
		responseBody = params.responseBody
	case params.set.NoBody:
		responseBody = nil
	default:
		record := h.buildRecord(r, requestBody, params, startTime)
		// The implicit Content-Type applies only on the echo path and
		// only when the headers directive did not already set one
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}
		responseBody, err = json.Marshal(record)
		if err != nil {
			log.Printf("ERROR: Failed to encode echo record: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(status)
	if len(responseBody) > 0 {
		w.Write(responseBody)
	}
}

// buildRecord assembles the echo record for the observed request.
func (h *Handler) buildRecord(r *http.Request, requestBody []byte, params *requestParams, startTime time.Time) models.RequestRecord {
	return models.RequestRecord{
		Protocol:       r.Proto,
		Method:         r.Method,
		UserAgent:      r.UserAgent(),
		ClientAddress:  r.RemoteAddr,
		Host:           r.Host,
		URLPath:        r.RequestURI,
		ContentType:    r.Header.Get("Content-Type"),
		ContentLength:  len(requestBody),
		RequestBody:    base64.StdEncoding.EncodeToString(requestBody),
		FoundHeaders:   findHeaders(r.Header, params.expectedNames),
		Params:         params.set,
		ResponderAPIID: uuid.NewString(),
		CalledAt:       startTime.UTC().Format(calledAtLayout),
		ExecutionTime:  time.Since(startTime).String(),
	}
}
