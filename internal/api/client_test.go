package api_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	libErr "github.com/amberstream/lib-exposure-go/error"
	"github.com/amberstream/lib-exposure-go/internal/api"
	"github.com/amberstream/lib-exposure-go/internal/config"
	"github.com/amberstream/lib-exposure-go/model"
)

func testBatch() *model.EventBatch {
	return &model.EventBatch{
		SessionID:    "s1",
		DispatchTime: 42,
		Payloads:     []json.RawMessage{json.RawMessage(`{"EventType":"Playback.Created"}`)},
	}
}

func newTestClient(t *testing.T, baseURL string) *api.Client {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.BaseURL = baseURL
	cfg.Customer = "cu"
	cfg.BusinessUnit = "bu"
	cfg.SessionToken = "session-token"

	return api.New(&cfg, nil, nil)
}

func TestPlayDecodesEntitlement(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/customer/cu/businessunit/bu/entitlement/asset-1/play", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"playToken":"t","mediaLocator":"m"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ent, err := client.Play(context.Background(), "asset-1")
	require.NoError(t, err)

	require.NotNil(t, ent.PlayToken)
	assert.Equal(t, "t", *ent.PlayToken)
	require.NotNil(t, ent.MediaLocator)
	assert.Equal(t, "m", *ent.MediaLocator)
	assert.Nil(t, ent.Fairplay)
	assert.Nil(t, ent.EDRM)
}

func TestPlayServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"httpCode":403,"message":"NOT_ENTITLED"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Play(context.Background(), "asset-1")
	require.Error(t, err)

	var srvErr *libErr.ServerError
	require.True(t, errors.As(err, &srvErr))
	assert.Equal(t, http.StatusForbidden, srvErr.Code)
	assert.Equal(t, "NOT_ENTITLED", srvErr.Message)
}

func TestPlayUnstructuredError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream gone`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Play(context.Background(), "asset-1")
	require.Error(t, err)

	var apiErr *libErr.ApiError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestPlayNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Play(context.Background(), "asset-1")
	require.Error(t, err)

	var netErr *libErr.NetworkError
	assert.True(t, errors.As(err, &netErr))
	assert.True(t, libErr.IsConnectionError(err))
}

func TestEPGDecodesPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/customer/cu/businessunit/bu/epg/ch1", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("from"))
		assert.NotEmpty(t, r.URL.Query().Get("to"))

		_, _ = w.Write([]byte(`{"channelId":"ch1","programs":[{"programId":"p1","assetId":"a1","channelId":"ch1","startTime":"2026-08-25T10:00:00Z","endTime":"2026-08-25T11:00:00Z"}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	from := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	page, err := client.EPG(context.Background(), "ch1", from, to)
	require.NoError(t, err)
	assert.Equal(t, "ch1", page.ChannelID)
	require.Len(t, page.Programs, 1)
	assert.Equal(t, "p1", page.Programs[0].ProgramID)
}

func TestFetchCertificateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`<fps><checksum>x</checksum><version>2</version><hostname>h</hostname><cert>QkFTRTY0</cert></fps>`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	cert, err := client.FetchCertificate(context.Background(), server.URL+"/certificate")
	require.NoError(t, err)
	assert.Equal(t, []byte("BASE64"), cert)
}

func TestFetchCertificateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<error><code>500</code><message>boom</message></error>`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchCertificate(context.Background(), server.URL+"/certificate")
	require.Error(t, err)

	var srvErr *libErr.ServerError
	require.True(t, errors.As(err, &srvErr))
	assert.Equal(t, 500, srvErr.Code)
	assert.Equal(t, "boom", srvErr.Message)
}

func TestFetchContentKeyContext(t *testing.T) {
	spc := []byte{0x01, 0x02, 0x03, 0xff}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-type"))
		assert.Equal(t, "play-token", r.Header.Get("X-Play-Token"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, base64.StdEncoding.EncodeToString(spc), string(body))

		_, _ = w.Write([]byte(`<fps><ckc>a2V5Ynl0ZXM=</ckc></fps>`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ckc, err := client.FetchContentKeyContext(context.Background(), server.URL+"/license", spc, "play-token")
	require.NoError(t, err)
	assert.Equal(t, []byte("keybytes"), ckc)
}

func TestFetchContentKeyContextParseFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not an envelope`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchContentKeyContext(context.Background(), server.URL+"/license", []byte("spc"), "t")
	require.Error(t, err)
	assert.True(t, errors.Is(err, libErr.ErrParseFailure))
}

func TestSendEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/customer/cu/businessunit/bu/eventsink/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"sessionId":"s1","dispatchTime":42,"payload":[{"EventType":"Playback.Created"}]}`, string(body))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.SendEvents(context.Background(), testBatch())
	require.NoError(t, err)
}

func TestSendEventsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"httpCode":500,"message":"sink down"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.SendEvents(context.Background(), testBatch())
	require.Error(t, err)

	var srvErr *libErr.ServerError
	require.True(t, errors.As(err, &srvErr))
	assert.Equal(t, "sink down", srvErr.Message)
}
