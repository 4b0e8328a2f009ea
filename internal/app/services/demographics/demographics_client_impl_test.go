package demographics

import (
	"context"
	"io"
	"mrn-validator-service/internal/app/models"
	"mrn-validator-service/internal/pkg/exceptions"
	"mrn-validator-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient() *demographicsClient {
	return NewDemographicsClient(2*time.Second, 0, zap.NewNop()).(*demographicsClient)
}

func TestDemographicsClient_FetchBatch_Success(t *testing.T) {
	var received models.DemographicsBatchRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		assert.NoError(t, err)
		assert.Equal(t, "tok-123", token)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"result":[
			{"mrn":"111","firstName":"A","lastName":"B","zip":"02139"},
			{"mrn":"333","firstName":"Old"},
			{"firstName":"NoMrn"},
			{"mrn":42},
			{"mrn":"333","firstName":"New"}
		]}`))
	}))
	defer server.Close()

	batch, err := newTestClient().FetchBatch(context.Background(), []string{"111", "222", "333", "111"}, "tok-123", server.URL)
	require.NoError(t, err)

	assert.Equal(t, []string{"111", "222", "333", "111"}, received.Mrns)
	assert.Len(t, batch, 2)
	assert.True(t, batch.Contains("111"))
	assert.False(t, batch.Contains("222"))
	assert.Equal(t, "New", batch["333"]["firstName"])
	assert.Equal(t, "02139", batch["111"]["zip"])
}

func TestDemographicsClient_FetchBatch_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind exceptions.Kind
	}{
		{name: "service unavailable", status: http.StatusServiceUnavailable, body: `{"result":[]}`, wantKind: exceptions.KindClientBadStatus},
		{name: "unauthorized", status: http.StatusUnauthorized, wantKind: exceptions.KindClientBadStatus},
		{name: "malformed json", status: http.StatusOK, body: `{"result":[`, wantKind: exceptions.KindClientMalformedResponse},
		{name: "missing result", status: http.StatusOK, body: `{"data":[]}`, wantKind: exceptions.KindClientMalformedResponse},
		{name: "null result", status: http.StatusOK, body: `{"result":null}`, wantKind: exceptions.KindClientMalformedResponse},
		{name: "result not an array", status: http.StatusOK, body: `{"result":"oops"}`, wantKind: exceptions.KindClientMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			batch, err := newTestClient().FetchBatch(context.Background(), []string{"111"}, "tok", server.URL)
			assert.Nil(t, batch)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, exceptions.KindOf(err))
			assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCodeOf(err))
		})
	}
}

func TestDemographicsClient_FetchBatch_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[]}`))
	}))
	defer server.Close()

	batch, err := newTestClient().FetchBatch(context.Background(), []string{"111"}, "tok", server.URL)
	require.NoError(t, err)
	assert.Empty(t, batch)
}

func TestDemographicsClient_FetchBatch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	client := NewDemographicsClient(50*time.Millisecond, 0, zap.NewNop())
	_, err := client.FetchBatch(context.Background(), []string{"111"}, "tok", server.URL)
	require.Error(t, err)
	assert.Equal(t, exceptions.KindClientTransport, exceptions.KindOf(err))
}

func TestDemographicsClient_FetchBatch_InvalidEndpoint(t *testing.T) {
	_, err := newTestClient().FetchBatch(context.Background(), []string{"111"}, "tok", "://not-a-url")
	require.Error(t, err)
	assert.Equal(t, exceptions.KindClientTransport, exceptions.KindOf(err))
}

func TestDemographicsClient_FetchBatch_LimiterCancelled(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"result":[]}`))
	}))
	defer server.Close()

	client := NewDemographicsClient(time.Second, 1, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchBatch(ctx, []string{"111"}, "tok", server.URL)
	require.Error(t, err)
	assert.Equal(t, exceptions.KindClientTransport, exceptions.KindOf(err))
	assert.Zero(t, calls)
}
