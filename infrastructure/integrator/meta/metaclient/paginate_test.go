package metaclient

import (
	stdjson "encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-sync-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-sync-api/internal/config"
)

func newTestClient() *MetaClient {
	cfg := &config.Config{}
	return &MetaClient{
		Cfg:          cfg,
		TokenManager: NewTokenManager(cfg),
		httpClient:   &http.Client{},
	}
}

func TestFetchAllPages_WalksAllCursors(t *testing.T) {
	requests := 0
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch r.URL.Query().Get("after") {
		case "":
			fmt.Fprintf(w, `{"data":[{"id":"1"},{"id":"2"}],"paging":{"next":"%s?after=p2"}}`, server.URL)
		case "p2":
			fmt.Fprintf(w, `{"data":[{"id":"3"}],"paging":{"next":"%s?after=p3"}}`, server.URL)
		default:
			// Última página: sem cursor next
			fmt.Fprint(w, `{"data":[{"id":"4"}],"paging":{}}`)
		}
	}))
	defer server.Close()

	client := newTestClient()

	items, err := client.fetchAllPages(server.URL, 15)

	assert.NoError(t, err)
	assert.Len(t, items, 4)
	assert.Equal(t, 3, requests)
}

func TestFetchAllPages_StopsAtPageCeiling(t *testing.T) {
	requests := 0
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		// Sempre oferece próxima página: só o teto encerra a caminhada
		fmt.Fprintf(w, `{"data":[{"id":"x"}],"paging":{"next":"%s?after=again"}}`, server.URL)
	}))
	defer server.Close()

	client := newTestClient()

	items, err := client.fetchAllPages(server.URL, 3)

	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 3, requests)
}

// Falha no meio da caminhada devolve o parcial acumulado sem erro
func TestFetchAllPages_MidWalkFailureReturnsPartial(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("after") == "" {
			fmt.Fprintf(w, `{"data":[{"id":"1"},{"id":"2"}],"paging":{"next":"%s?after=p2"}}`, server.URL)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "falha transitória")
	}))
	defer server.Close()

	client := newTestClient()

	items, err := client.fetchAllPages(server.URL, 15)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
}

// Falha na primeira página é fatal: não há o que sincronizar
func TestFetchAllPages_FirstPageFailureIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "indisponível")
	}))
	defer server.Close()

	client := newTestClient()

	items, err := client.fetchAllPages(server.URL, 15)

	assert.Error(t, err)
	assert.Empty(t, items)
}

func TestFetchAllPages_EnvelopeErrorOnFirstPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Status 200 com erro no envelope, como a API Graph costuma responder
		fmt.Fprint(w, `{"data":[],"error":{"message":"Unsupported request","code":100}}`)
	}))
	defer server.Close()

	client := newTestClient()

	items, err := client.fetchAllPages(server.URL, 15)

	assert.Error(t, err)
	assert.Empty(t, items)
	assert.Contains(t, err.Error(), "Unsupported request")
}

func TestFetchAllPages_EnvelopeErrorMidWalkReturnsPartial(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("after") == "" {
			fmt.Fprintf(w, `{"data":[{"id":"1"}],"paging":{"next":"%s?after=p2"}}`, server.URL)
			return
		}
		fmt.Fprint(w, `{"error":{"message":"rate limit","code":613}}`)
	}))
	defer server.Close()

	client := newTestClient()

	items, err := client.fetchAllPages(server.URL, 15)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
}

func rawItems(docs ...string) []stdjson.RawMessage {
	items := make([]stdjson.RawMessage, 0, len(docs))
	for _, doc := range docs {
		items = append(items, stdjson.RawMessage(doc))
	}
	return items
}

func TestDecodePage_SkipsMalformedItems(t *testing.T) {
	items := rawItems(
		`{"id":"c1","name":"Campanha","effective_status":"ACTIVE"}`,
		`"não sou um objeto"`,
		`{"id":"c2","name":"Outra"}`,
	)

	campaigns := decodePage[metadomain.Campaign](items)

	assert.Len(t, campaigns, 2)
	assert.Equal(t, "c1", campaigns[0].ID)
	assert.Equal(t, "c2", campaigns[1].ID)
}
