package http_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Employees-api/internal/interfaces/http"
	"github.com/jhoicas/Employees-api/pkg/logger"
)

var methodLabel = regexp.MustCompile(`method="([^"]*)"`)

func TestMetrics_MetodoNoSeCorrompeEntrePeticiones(t *testing.T) {
	app := buildTestApp(t, "", nil)

	for i := 0; i < 3; i++ {
		get(t, app, "/employees", "").Body.Close()
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodHead, "/employees", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	for i := 0; i < 3; i++ {
		get(t, app, "/employees/1", "").Body.Close()
	}

	resp = get(t, app, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	seen := map[string]bool{}
	sc := bufio.NewScanner(resp.Body)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "employees_api_http_requests_total{") {
			continue
		}
		m := methodLabel.FindStringSubmatch(line)
		require.Len(t, m, 2, line)
		seen[m[1]] = true
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, seen)
}

func TestRequestLogger_IncluyeRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	app := fiber.New()
	app.Use(apphttp.RequestID(), apphttp.RequestLogger(log))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-42")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/ping", entry["route"])
	assert.EqualValues(t, 200, entry["status"])
}
