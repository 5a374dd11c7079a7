package integrationtests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"auction-web/internal/backend"
	"auction-web/internal/config"
	"auction-web/internal/repository"
	"auction-web/internal/server"
	"auction-web/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// FakeBackend is the auction backend as the page server sees it. Tests add
// routes to Engine before calling Start.
type FakeBackend struct {
	Engine *gin.Engine

	mu         sync.Mutex
	calls      map[string]int
	bodies     map[string][]byte
	requestIDs []string
	cookies    []string
}

func NewFakeBackend() *FakeBackend {
	gin.SetMode(gin.TestMode)
	fb := &FakeBackend{
		Engine: gin.New(),
		calls:  make(map[string]int),
		bodies: make(map[string][]byte),
	}
	fb.Engine.Use(fb.record)
	return fb
}

func (fb *FakeBackend) record(c *gin.Context) {
	raw, _ := c.GetRawData()
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	key := c.Request.Method + " " + c.Request.URL.Path
	fb.mu.Lock()
	fb.calls[key]++
	fb.bodies[key] = raw
	fb.requestIDs = append(fb.requestIDs, c.GetHeader(backend.HeaderRequestID))
	fb.cookies = append(fb.cookies, c.GetHeader("Cookie"))
	fb.mu.Unlock()

	c.Next()
}

// Start serves the routes added so far and returns the base URL
func (fb *FakeBackend) Start(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(fb.Engine)
	t.Cleanup(srv.Close)
	return srv.URL
}

// Calls returns how often method+path was requested
func (fb *FakeBackend) Calls(method, path string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.calls[method+" "+path]
}

// JSONBody decodes the last body sent to method+path
func (fb *FakeBackend) JSONBody(t *testing.T, method, path string) map[string]any {
	t.Helper()
	fb.mu.Lock()
	raw := fb.bodies[method+" "+path]
	fb.mu.Unlock()

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

// FormBody parses the last form body sent to method+path
func (fb *FakeBackend) FormBody(t *testing.T, method, path string) url.Values {
	t.Helper()
	fb.mu.Lock()
	raw := fb.bodies[method+" "+path]
	fb.mu.Unlock()

	values, err := url.ParseQuery(string(raw))
	require.NoError(t, err)
	return values
}

// LastRequestID is the X-Request-ID of the latest backend call
func (fb *FakeBackend) LastRequestID() string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if len(fb.requestIDs) == 0 {
		return ""
	}
	return fb.requestIDs[len(fb.requestIDs)-1]
}

// LastCookie is the Cookie header of the latest backend call
func (fb *FakeBackend) LastCookie() string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if len(fb.cookies) == 0 {
		return ""
	}
	return fb.cookies[len(fb.cookies)-1]
}

// SetupPageServer wires the page server to the backend at baseURL
func SetupPageServer(t *testing.T, baseURL string) (*gin.Engine, *repository.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.DefaultConfig()
	cfg.Backend.URL = baseURL
	cfg.Lists.Timeout = "2s"

	client, err := backend.NewClient(baseURL, 5*time.Second)
	require.NoError(t, err)

	repo := repository.NewMemoryRepo()
	return server.SetupRouter(server.NewHandlers(cfg, client, repo)), repo
}

// Browser is one visitor: a page session plus the backend login cookie
type Browser struct {
	router    *gin.Engine
	sessionID string
}

func NewBrowser(router *gin.Engine) *Browser {
	return &Browser{router: router, sessionID: utils.GenerateID()}
}

func (b *Browser) do(method, target, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.AddCookie(&http.Cookie{Name: server.SessionCookie, Value: b.sessionID})
	req.AddCookie(&http.Cookie{Name: "JSESSIONID", Value: "visitor-1"})

	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)
	return w
}

func (b *Browser) Get(target string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, target, "", nil)
}

func (b *Browser) PostForm(target string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, target, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

func (b *Browser) PostJSON(t *testing.T, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return b.do(http.MethodPost, target, "application/json", bytes.NewReader(raw))
}

// ParseResponse decodes the page server's JSON envelope
func ParseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// Data returns the envelope's data object
func Data(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := ParseResponse(t, w)["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %s", w.Body.String())
	return data
}
