package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// ApiMock is a stub HTTP server standing in for upstream providers (the
// exchange rate feed and the PDF renderer). Responses are configured per
// method and path; every request is recorded for later assertions. Paths may
// contain "*" segments to match any value.
type ApiMock struct {
	mu       sync.Mutex
	server   *httptest.Server
	stubs    map[string]map[int]stubResponse
	defaults map[string]stubResponse
	requests map[string][]recordedRequest
}

type stubResponse struct {
	status int
	body   any
}

type recordedRequest struct {
	body    map[string]any
	headers map[string]string
	queries map[string]string
}

// NewApiServer creates an unstarted stub server.
func NewApiServer() *ApiMock {
	return &ApiMock{
		stubs:    map[string]map[int]stubResponse{},
		defaults: map[string]stubResponse{},
		requests: map[string][]recordedRequest{},
	}
}

// Start brings the stub server up on a random local port.
func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

// GetUrl returns the base URL of the running stub server.
func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

// SetResponse configures the response for the nth call to method+path. An
// index of -1 sets the default used when no indexed response matches.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	if index == -1 {
		a.defaults[key] = stubResponse{status: status, body: response}
		return
	}
	if a.stubs[key] == nil {
		a.stubs[key] = map[int]stubResponse{}
	}
	a.stubs[key][index] = stubResponse{status: status, body: response}
}

// GetRequestBody returns the JSON body of the nth recorded request to
// method+path, or nil when no such request was seen.
func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	recorded := a.requests[method+path]
	if index < 0 || index >= len(recorded) {
		return nil
	}
	return recorded[index].body
}

// RequestCount returns how many requests were recorded for method+path.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests[method+path])
}

// ClearRequests drops the recorded requests for method+path.
func (a *ApiMock) ClearRequests(method, path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.requests, method+path)
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := r.Method + r.URL.Path

	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if body == nil {
		body = map[string]any{}
	}

	headers := map[string]string{}
	for name, values := range r.Header {
		headers[name] = values[0]
	}
	queries := map[string]string{}
	for name, values := range r.URL.Query() {
		queries[name] = values[0]
	}

	index := len(a.requests[key])
	a.requests[key] = append(a.requests[key], recordedRequest{
		body:    body,
		headers: headers,
		queries: queries,
	})

	response := a.responseFor(r.Method, r.URL.Path, index)
	payload, _ := json.Marshal(response.body)
	w.WriteHeader(response.status)
	_, _ = w.Write(payload)
}

// responseFor resolves the stubbed response: an indexed stub first, then the
// route default. Unconfigured routes answer 200 with an empty object.
func (a *ApiMock) responseFor(method, path string, index int) stubResponse {
	if key, ok := a.matchKey(a.stubKeys(), method, path); ok {
		if stub, ok := a.stubs[key][index]; ok {
			return stub
		}
	}
	if key, ok := a.matchKey(a.defaultKeys(), method, path); ok {
		return a.defaults[key]
	}
	return stubResponse{status: http.StatusOK, body: map[string]any{}}
}

func (a *ApiMock) stubKeys() []string {
	keys := make([]string, 0, len(a.stubs))
	for key := range a.stubs {
		keys = append(keys, key)
	}
	return keys
}

func (a *ApiMock) defaultKeys() []string {
	keys := make([]string, 0, len(a.defaults))
	for key := range a.defaults {
		keys = append(keys, key)
	}
	return keys
}

// matchKey finds a configured method+path key matching the request, either
// exactly or via "*" path segments.
func (a *ApiMock) matchKey(keys []string, method, path string) (string, bool) {
	exact := method + path
	for _, key := range keys {
		if key == exact {
			return key, true
		}
	}

	for _, key := range keys {
		if !strings.HasPrefix(key, method) {
			continue
		}
		if matchPath(strings.TrimPrefix(key, method), path) {
			return key, true
		}
	}
	return "", false
}

func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if len(patternParts) != len(pathParts) {
		return false
	}
	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}
