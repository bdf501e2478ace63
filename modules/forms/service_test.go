package forms_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClusterLabs/striker-testinput/modules/forms"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newServer(t *testing.T, opts ...forms.ServiceOption) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Mount("/api/forms", forms.NewService(forms.Default(), opts...).Handle())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) (int, envelope) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestService_List(t *testing.T) {
	t.Parallel()

	srv := newServer(t)
	resp, err := http.Get(srv.URL + "/api/forms")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env struct {
		Data []forms.FormSummary `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Len(t, env.Data, 6)
	assert.Equal(t, "fence", env.Data[0].ID)
	assert.Equal(t, "Manage fence device", env.Data[0].Title)
	assert.Contains(t, env.Data[0].Fields, forms.Field{ID: "macAddress", Label: "MAC address"})
}

func TestService_Validate(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	srv := newServer(t, forms.WithLogger(slog.New(slog.NewTextHandler(buf, nil))), forms.WithMaxBodyBytes(512))

	t.Run("gateway scenario", func(t *testing.T) {
		status, env := post(t, srv, "/api/forms/host-network-init/validate",
			`{"inputs":{"gateway":{"value":"not-an-ip"}}}`)
		require.Equal(t, http.StatusOK, status)

		var data forms.ValidateResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.False(t, data.OK)
		assert.Equal(t, map[string]string{"gateway": "Gateway should be a valid IPv4 address."}, data.Messages)
		require.Len(t, data.Batches, 1)
		assert.Equal(t, "gateway", data.Batches[0].ID)
	})

	t.Run("numbers and overrides", func(t *testing.T) {
		status, env := post(t, srv, "/api/forms/server/validate",
			`{"inputs":{"cpuCores":{"value":12,"max":8,"displayMax":"8 (host limit)"},"memoryMiB":{"value":"2048"}}}`)
		require.Equal(t, http.StatusOK, status)

		var data forms.ValidateResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, map[string]string{"cpuCores": "CPU cores is expected to be between 1 and 8 (host limit)."}, data.Messages)
	})

	t.Run("test all with exclusions", func(t *testing.T) {
		status, env := post(t, srv, "/api/forms/ups/validate",
			`{"inputs":{"name":{"value":"ups01"}},"isTestAll":true,"excludeTestIds":["agent"],"excludeTestIdsPattern":"^ip"}`)
		require.Equal(t, http.StatusOK, status)

		var data forms.ValidateResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.True(t, data.OK)
		require.Len(t, data.Batches, 1)
		assert.Equal(t, "name", data.Batches[0].ID)
	})

	t.Run("unknown form", func(t *testing.T) {
		status, env := post(t, srv, "/api/forms/nope/validate", `{"inputs":{}}`)
		assert.Equal(t, http.StatusNotFound, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "not_found", env.Error.Code)
	})

	t.Run("bad body", func(t *testing.T) {
		status, env := post(t, srv, "/api/forms/ups/validate", `{"inputs":{},"unknown":true}`)
		assert.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "bad_request", env.Error.Code)
	})

	t.Run("bad exclude pattern", func(t *testing.T) {
		status, _ := post(t, srv, "/api/forms/ups/validate", `{"excludeTestIdsPattern":"("}`)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("body too large", func(t *testing.T) {
		body := `{"inputs":{"name":{"value":"` + strings.Repeat("a", 600) + `"}}}`
		status, _ := post(t, srv, "/api/forms/ups/validate", body)
		assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	})

	assert.Contains(t, buf.String(), "form validated")
	assert.Contains(t, buf.String(), "form_id=host-network-init")
}

func TestService_PatternCache(t *testing.T) {
	t.Parallel()

	srv := newServer(t, forms.WithPatternCacheSize(1), forms.WithPatternCacheSize(0))

	for _, pattern := range []string{"^ip", "^ip", "^agent", "^ip"} {
		status, env := post(t, srv, "/api/forms/ups/validate",
			`{"isTestAll":true,"inputs":{"name":{"value":"ups01"},"ipAddress":{"value":"10.0.0.1"},"agent":{"value":"apc"}},"excludeTestIdsPattern":"`+pattern+`"}`)
		require.Equal(t, http.StatusOK, status, pattern)

		var data forms.ValidateResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.True(t, data.OK)
		assert.Len(t, data.Batches, 2, pattern)
	}
}
