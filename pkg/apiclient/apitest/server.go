// Package apitest provides a fake bookstore backend for service tests.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"bookstore-storefront/pkg/apiclient"
)

// Call is one request recorded by the fake backend
type Call struct {
	Method   string
	Path     string
	RawQuery string
	Auth     string
	Body     []byte
}

// Decode unmarshals the recorded JSON body
func (c Call) Decode(dest interface{}) error {
	return json.Unmarshal(c.Body, dest)
}

type Server struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  []Call
}

// NewServer starts a fake backend; it is closed when the test ends
func NewServer(t testing.TB) *Server {
	s := &Server{routes: make(map[string]http.HandlerFunc)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	key := r.Method + " " + r.URL.Path

	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Auth:     r.Header.Get("Authorization"),
		Body:     body,
	})
	h, ok := s.routes[key]
	s.mu.Unlock()

	if !ok {
		WriteEnvelope(w, http.StatusNotFound, "route not found: "+key, nil)
		return
	}
	h(w, r)
}

// Handle registers a custom handler for method + path
func (s *Server) Handle(method, path string, h http.HandlerFunc) {
	s.mu.Lock()
	s.routes[method+" "+path] = h
	s.mu.Unlock()
}

// OK answers method + path with a 200 envelope carrying data
func (s *Server) OK(method, path string, data interface{}) {
	s.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		WriteEnvelope(w, http.StatusOK, "OK", data)
	})
}

// Fail answers method + path with an error envelope
func (s *Server) Fail(method, path string, status int, message string) {
	s.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		WriteEnvelope(w, status, message, nil)
	})
}

// Sequence answers successive calls with successive payloads; the last one repeats
func (s *Server) Sequence(method, path string, data ...interface{}) {
	var mu sync.Mutex
	i := 0
	s.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		d := data[i]
		if i < len(data)-1 {
			i++
		}
		mu.Unlock()
		WriteEnvelope(w, http.StatusOK, "OK", d)
	})
}

// Calls returns recorded calls for method + path ("" matches any)
func (s *Server) Calls(method, path string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Call
	for _, c := range s.calls {
		if (method == "" || c.Method == method) && (path == "" || c.Path == path) {
			out = append(out, c)
		}
	}
	return out
}

// Client returns an API client pointed at the fake backend
func (s *Server) Client(opts ...apiclient.Option) *apiclient.Client {
	return apiclient.New(s.URL, opts...)
}

// WriteEnvelope writes {statusCode, error, message, data}
func WriteEnvelope(w http.ResponseWriter, status int, message string, data interface{}) {
	var errField *string
	if status >= http.StatusBadRequest {
		e := http.StatusText(status)
		errField = &e
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"statusCode": status,
		"error":      errField,
		"message":    message,
		"data":       data,
	})
}
