package inflowwclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/chatter-metrics-api/internal/config"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
	"github.com/vfg2006/chatter-metrics-api/pkg/retry"
)

func newTestClient(baseURL string, sleeps *[]time.Duration) *InflowwClient {
	cfg := &config.Config{
		Infloww: config.Infloww{
			BaseURL:     baseURL,
			AccessToken: "test-token",
			MaxRetries:  3,
			PageLimit:   50,
		},
	}

	return &InflowwClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		policy: retry.Policy{
			MaxAttempts: cfg.Infloww.MaxRetries,
			BaseDelay:   2 * time.Second,
			Retryable:   isRetryable,
			Sleep: func(d time.Duration) {
				if sleeps != nil {
					*sleeps = append(*sleeps, d)
				}
			},
		},
	}
}

func testFilters() *domain.ReportFilters {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	return &domain.ReportFilters{StartDate: &start, EndDate: &end}
}

func TestGetChattersUsage_ConcatenaTodasAsPaginas(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		switch r.URL.Query().Get("cursor") {
		case "":
			fmt.Fprint(w, `{"items":[{"chatter_id":"ch-1"}],"cursor":"p2"}`)
		case "p2":
			fmt.Fprint(w, `{"items":[{"chatter_id":"ch-2"}],"cursor":"p3"}`)
		case "p3":
			fmt.Fprint(w, `{"items":[{"chatter_id":"ch-3"}],"cursor":"p4"}`)
		case "p4":
			fmt.Fprint(w, `{"items":[{"chatter_id":"ch-4"}]}`)
		default:
			t.Fatalf("cursor inesperado: %s", r.URL.Query().Get("cursor"))
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)

	result, err := client.GetChattersUsage(testFilters())
	require.NoError(t, err)

	assert.False(t, result.Partial)
	assert.Equal(t, 4, result.Pages)
	require.Len(t, result.Items, 4)

	// A ordem das páginas é preservada
	assert.Equal(t, "ch-1", result.Items[0].ChatterID)
	assert.Equal(t, "ch-2", result.Items[1].ChatterID)
	assert.Equal(t, "ch-3", result.Items[2].ChatterID)
	assert.Equal(t, "ch-4", result.Items[3].ChatterID)
	assert.Equal(t, 4, requests)
}

func TestGetChattersUsage_RetentaMesmaPaginaApos429(t *testing.T) {
	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"items":[{"chatter_id":"ch-1","sold_messages_price_sum":100}]}`)
	}))
	defer server.Close()

	var sleeps []time.Duration
	client := newTestClient(server.URL, &sleeps)

	result, err := client.GetChattersUsage(testFilters())
	require.NoError(t, err)

	assert.False(t, result.Partial)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "ch-1", result.Items[0].ChatterID)

	// Exatamente 2 pausas de backoff: 1×2s e 2×2s
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, sleeps)
	assert.Equal(t, 3, attempts)
}

func TestGetChattersUsage_EsgotaTentativasDevolveParcial(t *testing.T) {
	pages := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("cursor") == "" {
			pages++
			fmt.Fprint(w, `{"items":[{"chatter_id":"ch-1"}],"cursor":"p2"}`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var sleeps []time.Duration
	client := newTestClient(server.URL, &sleeps)

	result, err := client.GetChattersUsage(testFilters())
	require.NoError(t, err)

	// A primeira página fica acumulada; a segunda esgota as tentativas
	assert.True(t, result.Partial)
	assert.Equal(t, PartialRetriesExhausted, result.Reason)
	require.Len(t, result.Items, 1)
	assert.Len(t, sleeps, 2)
}

func TestGetAccountChattersUsage_404AbortaSemErro(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	var sleeps []time.Duration
	client := newTestClient(server.URL, &sleeps)

	result, err := client.GetAccountChattersUsage("acc-1", testFilters())
	require.NoError(t, err)

	assert.True(t, result.Partial)
	assert.Equal(t, PartialUpstreamRejected, result.Reason)
	assert.Empty(t, result.Items)
	// Rejeição permanente não entra no ciclo de backoff
	assert.Empty(t, sleeps)
}

func TestGetChattersUsage_PayloadSemItemsPropagaErro(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"cursor":"p2"}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)

	_, err := client.GetChattersUsage(testFilters())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestGetAccountTransactions_ListaVaziaNaoEParcial(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	result, err := client.GetAccountTransactions("acc-1", start, end)
	require.NoError(t, err)

	assert.False(t, result.Partial)
	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.Pages)
}
