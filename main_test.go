package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/metrics"
)

type stubRelay struct {
	mu    sync.Mutex
	err   error
	sent  []contact.Fields
	block chan struct{}
}

func (r *stubRelay) Send(ctx context.Context, f contact.Fields) error {
	r.mu.Lock()
	r.sent = append(r.sent, f)
	block := r.block
	r.mu.Unlock()
	if block != nil {
		<-block
	}
	return r.err
}

func (r *stubRelay) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

type formResponse struct {
	Fields contact.Fields `json:"fields"`
	Status contact.Status `json:"status"`
}

func setupServer(t *testing.T, relay *stubRelay) (*server, *gin.Engine) {
	gin.SetMode(gin.TestMode)

	store, err := metrics.Open("file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := config.Config{
		TemplateGlob:   "templates/*",
		SessionTTL:     time.Minute,
		AllowedOrigins: []string{"http://localhost:5173"},
		AdminUsername:  "root",
		AdminPassword:  "hunter2",
	}
	noTimer := contact.WithAfterFunc(func(time.Duration, func()) func() bool { return func() bool { return true } })
	s := newServer(cfg, relay, store, noTimer)
	t.Cleanup(s.sessions.Close)
	return s, s.router(gin.New())
}

func do(r http.Handler, method, path string, form url.Values, cookies []*http.Cookie, accept string) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeForm(t *testing.T, w *httptest.ResponseRecorder) formResponse {
	var resp formResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func validForm() url.Values {
	return url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}}
}

// --------------------- Pages ---------------------
func TestIndex_RendersProjectsAndForm(t *testing.T) {
	_, r := setupServer(t, &stubRelay{})

	w := do(r, http.MethodGet, "/", nil, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Portfolio")
	assert.Contains(t, body, `id="contact-form"`)
	assert.Contains(t, body, "Send Message")
	assert.Contains(t, body, "<svg")

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)
}

func TestHealthz(t *testing.T) {
	_, r := setupServer(t, &stubRelay{})
	w := do(r, http.MethodGet, "/healthz", nil, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

// --------------------- Contact ---------------------
func TestContact_SubmitSuccess(t *testing.T) {
	relay := &stubRelay{}
	_, r := setupServer(t, relay)

	w := do(r, http.MethodPost, "/contact", validForm(), nil, "application/json")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeForm(t, w)
	assert.Equal(t, contact.Fields{}, resp.Fields)
	assert.True(t, resp.Status.Submitted)
	assert.False(t, resp.Status.Submitting)
	require.NotNil(t, resp.Status.Info.Message)
	assert.Equal(t, "Message sent successfully!", *resp.Status.Info.Message)
	assert.Equal(t, []contact.Fields{{Name: "Ada", Email: "ada@example.com", Message: "Hi"}}, relay.sent)
}

func TestContact_SubmitFailureKeepsFields(t *testing.T) {
	relay := &stubRelay{err: &contact.StatusError{Code: http.StatusInternalServerError}}
	_, r := setupServer(t, relay)

	w := do(r, http.MethodPost, "/contact", validForm(), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "An error occurred. Please try again later.")
	assert.Contains(t, body, `value="Ada"`)
	assert.Contains(t, body, "status-message error")
}

func TestContact_InvalidSubmitIsSilent(t *testing.T) {
	relay := &stubRelay{}
	_, r := setupServer(t, relay)

	form := validForm()
	form.Set("email", "ada@example")
	w := do(r, http.MethodPost, "/contact", form, nil, "application/json")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeForm(t, w)
	assert.Equal(t, "ada@example", resp.Fields.Email)
	assert.Equal(t, contact.Status{}, resp.Status)
	assert.Zero(t, relay.count())
}

func TestContact_FieldUpdatesPersistAcrossRequests(t *testing.T) {
	relay := &stubRelay{}
	_, r := setupServer(t, relay)

	w := do(r, http.MethodGet, "/contact-form", nil, nil, "")
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	for field, value := range map[string]string{"name": "Ada", "email": "ada@example.com"} {
		w = do(r, http.MethodPost, "/contact/field", url.Values{"id": {field}, "value": {value}}, cookies, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
	// hx-include form: value arrives under the field's own name
	w = do(r, http.MethodPost, "/contact/field", url.Values{"id": {"message"}, "message": {"Hi"}}, cookies, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/contact/status", nil, cookies, "application/json")
	resp := decodeForm(t, w)
	assert.Equal(t, contact.Fields{Name: "Ada", Email: "ada@example.com", Message: "Hi"}, resp.Fields)

	w = do(r, http.MethodPost, "/contact", url.Values{}, cookies, "application/json")
	resp = decodeForm(t, w)
	assert.True(t, resp.Status.Submitted)
	assert.Equal(t, 1, relay.count())
}

func TestContact_UnknownField(t *testing.T) {
	_, r := setupServer(t, &stubRelay{})

	w := do(r, http.MethodPost, "/contact/field", url.Values{"id": {"phone"}, "value": {"555"}}, nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown form field")
}

func TestContact_ConflictWhileSubmitting(t *testing.T) {
	relay := &stubRelay{block: make(chan struct{})}
	_, r := setupServer(t, relay)

	w := do(r, http.MethodGet, "/contact-form", nil, nil, "")
	cookies := w.Result().Cookies()

	done := make(chan *httptest.ResponseRecorder)
	go func() {
		done <- do(r, http.MethodPost, "/contact", validForm(), cookies, "application/json")
	}()
	require.Eventually(t, func() bool { return relay.count() == 1 }, time.Second, 5*time.Millisecond)

	w = do(r, http.MethodPost, "/contact", validForm(), cookies, "application/json")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.True(t, decodeForm(t, w).Status.Submitting)

	close(relay.block)
	first := <-done
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, relay.count())
}

func TestContact_SessionsAreIsolated(t *testing.T) {
	_, r := setupServer(t, &stubRelay{})

	a := do(r, http.MethodGet, "/contact-form", nil, nil, "").Result().Cookies()
	b := do(r, http.MethodGet, "/contact-form", nil, nil, "").Result().Cookies()

	do(r, http.MethodPost, "/contact/field", url.Values{"id": {"name"}, "value": {"Ada"}}, a, "")

	resp := decodeForm(t, do(r, http.MethodGet, "/contact/status", nil, b, "application/json"))
	assert.Empty(t, resp.Fields.Name)
	resp = decodeForm(t, do(r, http.MethodGet, "/contact/status", nil, a, "application/json"))
	assert.Equal(t, "Ada", resp.Fields.Name)
}

func TestContact_CORSPreflight(t *testing.T) {
	_, r := setupServer(t, &stubRelay{})

	req := httptest.NewRequest(http.MethodOptions, "/contact", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestContact_OutcomesCounted(t *testing.T) {
	relay := &stubRelay{}
	s, r := setupServer(t, relay)

	do(r, http.MethodPost, "/contact", validForm(), nil, "")
	relay.err = errors.New("offline")
	do(r, http.MethodPost, "/contact", validForm(), nil, "")

	stats, err := s.metrics.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.MessagesSent)
	assert.EqualValues(t, 1, stats.MessagesFailed)
}

func TestContact_SessionCookieRefreshed(t *testing.T) {
	_, r := setupServer(t, &stubRelay{})

	first := do(r, http.MethodGet, "/contact-form", nil, nil, "").Result().Cookies()
	require.Len(t, first, 1)

	w := do(r, http.MethodGet, "/contact/status", nil, first, "")
	again := w.Result().Cookies()
	require.Len(t, again, 1)
	assert.Equal(t, sessionCookie, again[0].Name)
	assert.Equal(t, first[0].Value, again[0].Value, "existing session keeps its id")
	assert.Equal(t, 60, again[0].MaxAge)
}

func TestContact_FormDisablesButtonInFlight(t *testing.T) {
	_, r := setupServer(t, &stubRelay{})

	body := do(r, http.MethodGet, "/contact-form", nil, nil, "").Body.String()
	assert.Contains(t, body, `hx-disabled-elt="find button"`)
}

func TestTimelineFragments(t *testing.T) {
	_, r := setupServer(t, &stubRelay{})

	w := do(r, http.MethodGet, "/work-content", nil, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="work-content"`)
	for _, e := range WorkHistory {
		assert.Contains(t, w.Body.String(), e.Organization)
	}

	w = do(r, http.MethodGet, "/education-content", nil, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	for _, e := range Education {
		assert.Contains(t, w.Body.String(), e.Title)
		for _, b := range e.BulletPoints {
			assert.Contains(t, w.Body.String(), b)
		}
	}
}
