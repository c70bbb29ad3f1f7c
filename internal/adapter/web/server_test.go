package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"watcher/internal/domain/entity"
	"watcher/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
)

type fakeModerator struct {
	outcome entity.Outcome
	urls    []string
	// block until the run context ends
	wait bool
}

func (m *fakeModerator) Moderate(ctx context.Context, url string) entity.Outcome {
	m.urls = append(m.urls, url)
	if m.wait {
		<-ctx.Done()
		return entity.Outcome{URL: url, Err: ctx.Err()}
	}
	out := m.outcome
	out.URL = url
	return out
}

func newTestServer(m *fakeModerator, metrics http.Handler) *httptest.Server {
	return httptest.NewServer(NewServer(Config{Metrics: metrics}, m, logger.NewNop()))
}

func TestIndex(t *testing.T) {
	srv := newTestServer(&fakeModerator{}, nil)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	body := readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "WATCHER")
	assert.Contains(t, body, "Agentic Content Moderator")
	assert.Contains(t, body, "Start Moderation")
	assert.Contains(t, body, "Problematic Content")
	assert.Contains(t, body, `data-state="idle"`)
}

func TestStaticScript(t *testing.T) {
	srv := newTestServer(&fakeModerator{}, nil)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/static/app.js")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Running")
}

func TestModerate_JSON(t *testing.T) {
	m := &fakeModerator{outcome: entity.Outcome{RunID: "run-1", Report: `{"problematic_content": []}`, Steps: 3}}
	srv := newTestServer(m, nil)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/moderate", "application/json", strings.NewReader(`{"url": " https://example.com "}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got moderateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, []string{"https://example.com"}, m.urls)
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, `{"problematic_content": []}`, got.Text)
	assert.Equal(t, `{"problematic_content": []}`, got.Report)
	assert.Empty(t, got.Error)
	assert.Contains(t, got.HTML, `<code class="language-json">`)
}

func TestModerate_JSONError(t *testing.T) {
	m := &fakeModerator{outcome: entity.Outcome{RunID: "run-2", Err: errors.New("timeout")}}
	srv := newTestServer(m, nil)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/moderate", "application/json", strings.NewReader(`{"url": "https://example.com"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var got moderateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Error generating scenarios: timeout", got.Text)
	assert.Equal(t, "timeout", got.Error)
}

func TestModerate_Form(t *testing.T) {
	m := &fakeModerator{outcome: entity.Outcome{Report: `{"problematic_content": [{"item": "<script>", "reason": "spam"}]}`}}
	srv := newTestServer(m, nil)
	defer srv.Close()

	resp, err := http.PostForm(srv.URL+"/moderate", url.Values{"url": {"https://example.com/shop"}})
	require.NoError(t, err)
	defer resp.Body.Close()

	body := readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"https://example.com/shop"}, m.urls)
	assert.Contains(t, body, "https://example.com/shop</textarea>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, `"item": "<script>"`)
}

func TestModerate_MissingURL(t *testing.T) {
	m := &fakeModerator{}
	srv := newTestServer(m, nil)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/moderate", "application/json", strings.NewReader(`{"url": "  "}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var got moderateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "url is required", got.Error)
	assert.Equal(t, "url is required", got.HTML)
	assert.Empty(t, m.urls)

	resp2, err := http.PostForm(srv.URL+"/moderate", url.Values{})
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
	assert.Contains(t, readBody(t, resp2), "url is required")
}

func TestModerate_RunTimeout(t *testing.T) {
	m := &fakeModerator{wait: true}
	srv := httptest.NewServer(NewServer(Config{RunTimeout: 50 * time.Millisecond}, m, logger.NewNop()))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/moderate", "application/json", strings.NewReader(`{"url": "https://example.com"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got moderateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Error generating scenarios: context deadline exceeded", got.Text)
}

func TestHealthAndMetrics(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("watcher_actions_total 0"))
	})
	srv := newTestServer(&fakeModerator{}, metrics)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, "ok", readBody(t, resp))
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	assert.Contains(t, readBody(t, resp), "watcher_actions_total")
	resp.Body.Close()
}

func TestRenderOutput(t *testing.T) {
	md := goldmark.New()

	out, err := renderOutput(md, "Error generating scenarios: timeout")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<pre><code>Error generating scenarios: timeout\n</code></pre>")

	out, err = renderOutput(md, "report with ``` fence inside")
	require.NoError(t, err)
	assert.Contains(t, string(out), "report with ``` fence inside")

	out, err = renderOutput(md, "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFenceFor(t *testing.T) {
	assert.Equal(t, "```", fenceFor("plain"))
	assert.Equal(t, "````", fenceFor("a ``` b"))
	assert.Equal(t, "`````", fenceFor("````"))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
