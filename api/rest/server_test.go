package rest

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yqhp/postfix/internal/batch"
	"yqhp/postfix/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.DefaultConfig().Server
	cfg.MaxExpressionLength = 64
	cfg.MaxBatchSize = 3
	return NewServer(&cfg, batch.NewProcessor(batch.Options{Workers: 2}, nil), nil)
}

func doJSON(t *testing.T, server *Server, method, path, body string) (int, []byte, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data, resp.Header.Get(fiber.HeaderXRequestID)
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/health", "/api/v1/health"} {
		status, body, _ := doJSON(t, server, "GET", path, "")
		assert.Equal(t, fiber.StatusOK, status)

		var result HealthResponse
		require.NoError(t, json.Unmarshal(body, &result))
		assert.Equal(t, "healthy", result.Status)
		assert.NotEmpty(t, result.Timestamp)
	}
}

func TestReadyCheck(t *testing.T) {
	server := newTestServer(t)

	status, body, _ := doJSON(t, server, "GET", "/ready", "")
	assert.Equal(t, fiber.StatusOK, status)

	var result ReadyResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.True(t, result.Ready)
	assert.Equal(t, "ready", result.Status)
}

func TestConvert(t *testing.T) {
	server := newTestServer(t)

	status, body, header := doJSON(t, server, "POST", "/api/v1/convert", `{"expression":"( 1 + 2 ) * 3"}`)
	require.Equal(t, fiber.StatusOK, status, string(body))

	var result ConvertResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "( 1 + 2 ) * 3", result.Infix)
	assert.Equal(t, "1 2 + 3 *", result.Postfix)
	assert.Equal(t, []string{"1", "2", "+", "3", "*"}, result.Tokens)

	_, err := uuid.Parse(result.RequestID)
	assert.NoError(t, err)
	assert.Equal(t, header, result.RequestID)
}

func TestConvert_Errors(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name     string
		body     string
		status   int
		code     string
		position *int
	}{
		{
			name:   "malformed body",
			body:   `{"expression":`,
			status: fiber.StatusBadRequest,
			code:   "invalid_request",
		},
		{
			name:   "too long",
			body:   `{"expression":"` + strings.Repeat("1 + ", 20) + `1"}`,
			status: fiber.StatusBadRequest,
			code:   "expression_too_long",
		},
		{
			name:     "invalid token",
			body:     `{"expression":"1 + a"}`,
			status:   fiber.StatusUnprocessableEntity,
			code:     "invalid_token",
			position: intPtr(4),
		},
		{
			name:     "unclosed bracket",
			body:     `{"expression":"( 1 + 2"}`,
			status:   fiber.StatusUnprocessableEntity,
			code:     "mismatched_bracket",
			position: intPtr(0),
		},
		{
			name:     "stray closing bracket",
			body:     `{"expression":"1 + 2 )"}`,
			status:   fiber.StatusUnprocessableEntity,
			code:     "mismatched_bracket",
			position: intPtr(6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body, _ := doJSON(t, server, "POST", "/api/v1/convert", tt.body)
			assert.Equal(t, tt.status, status, string(body))

			var result ErrorResponse
			require.NoError(t, json.Unmarshal(body, &result))
			assert.Equal(t, tt.code, result.Error)
			assert.NotEmpty(t, result.Message)
			assert.Equal(t, tt.position, result.Position)
		})
	}
}

func TestConvertBatch(t *testing.T) {
	server := newTestServer(t)

	status, body, _ := doJSON(t, server, "POST", "/api/v1/convert/batch",
		`{"expressions":["1 + 2","[ 1 + 2 ] * 3","1 ]"]}`)
	require.Equal(t, fiber.StatusOK, status, string(body))

	var result BatchResponse
	require.NoError(t, json.Unmarshal(body, &result))
	require.Len(t, result.Results, 3)
	assert.Equal(t, "1 2 +", result.Results[0].Postfix)
	assert.Equal(t, "1 2 + 3 *", result.Results[1].Postfix)
	assert.True(t, result.Results[2].Failed())
	assert.Equal(t, batch.Summary{Total: 3, Converted: 2, Failed: 1}, result.Summary)
	assert.NotEmpty(t, result.RequestID)
}

func TestConvertBatch_FailFast(t *testing.T) {
	cfg := config.DefaultConfig().Server
	server := NewServer(&cfg, batch.NewProcessor(batch.Options{Workers: 1, FailFast: true}, nil), nil)

	status, body, _ := doJSON(t, server, "POST", "/api/v1/convert/batch", `{"expressions":["1 + 2","1 + x"]}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	var result ErrorResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "invalid_token", result.Error)
	assert.True(t, strings.HasPrefix(result.Message, "line 2: "))
}

func TestConvertBatch_Rejected(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"empty", `{"expressions":[]}`, "invalid_request"},
		{"too large", `{"expressions":["1","2","3","4"]}`, "batch_too_large"},
		{"malformed", `not json`, "invalid_request"},
		{"expression too long", `{"expressions":["1 + 2","` + strings.Repeat("1 + ", 20) + `1"]}`, "expression_too_long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body, _ := doJSON(t, server, "POST", "/api/v1/convert/batch", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)

			var result ErrorResponse
			require.NoError(t, json.Unmarshal(body, &result))
			assert.Equal(t, tt.code, result.Error)
		})
	}
}

func TestConvertBatch_LengthLimitMatchesConvert(t *testing.T) {
	cfg := config.DefaultConfig().Server
	cfg.MaxExpressionLength = 5
	server := NewServer(&cfg, nil, nil)
	long := strings.Repeat("1 + ", 100) + "1"

	status, _, _ := doJSON(t, server, "POST", "/api/v1/convert", `{"expression":"`+long+`"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body, _ := doJSON(t, server, "POST", "/api/v1/convert/batch", `{"expressions":["1 + 2","`+long+`"]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	var result ErrorResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "expression_too_long", result.Error)
	assert.Contains(t, result.Message, "Expression 2")

	status, _, _ = doJSON(t, server, "POST", "/api/v1/convert/batch", `{"expressions":["1 + 2","3"]}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestNotFound(t *testing.T) {
	server := newTestServer(t)

	status, body, _ := doJSON(t, server, "GET", "/api/v1/nope", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	var result ErrorResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "error_404", result.Error)
}

func TestCORS(t *testing.T) {
	cfg := config.DefaultConfig().Server
	cfg.EnableCORS = true
	server := NewServer(&cfg, nil, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	resp, err := server.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func intPtr(v int) *int {
	return &v
}
