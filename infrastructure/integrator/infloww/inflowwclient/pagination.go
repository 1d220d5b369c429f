package inflowwclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/chatter-metrics-api/pkg/retry"
)

// PartialReason explica por que um resultado paginado veio incompleto
type PartialReason string

const (
	PartialNone             PartialReason = ""
	PartialRetriesExhausted PartialReason = "retries_exhausted"
	PartialUpstreamRejected PartialReason = "upstream_rejected"
)

// PageResult é o resultado de uma paginação completa contra o provedor.
// A busca nunca devolve erro por indisponibilidade transitória: quando as
// tentativas se esgotam o acumulado é devolvido com Partial=true, e cabe
// ao chamador decidir o que fazer com um resultado degradado. Um conjunto
// vazio é ambíguo (sem dados ou coleta degradada); o campo Reason remove
// a ambiguidade.
type PageResult[T any] struct {
	Items   []T
	Partial bool
	Reason  PartialReason
	Pages   int
}

// ErrMalformedPayload sinaliza quebra de contrato do provedor: um 2xx sem
// o campo items. Diferente das falhas transitórias, este erro se propaga.
var ErrMalformedPayload = pkgerrors.New("resposta do provedor sem o campo items")

// statusError carrega o status HTTP de uma resposta não-2xx
type statusError struct {
	StatusCode int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("provedor de métricas respondeu status %d", e.StatusCode)
}

// isRetryable decide o que entra no ciclo de backoff: 429, 5xx e erros de
// transporte. Qualquer outro 4xx é rejeição permanente. Quebra de contrato
// nunca é retentada.
func isRetryable(err error) bool {
	if pkgerrors.Is(err, ErrMalformedPayload) {
		return false
	}

	var se *statusError
	if pkgerrors.As(err, &se) {
		return se.StatusCode == http.StatusTooManyRequests || se.StatusCode >= 500
	}

	return true
}

// rawPage separa o envelope da página. Items fica como RawMessage para
// distinguir o campo ausente (quebra de contrato) de uma lista vazia.
type rawPage struct {
	Items  json.RawMessage `json:"items"`
	Cursor string          `json:"cursor"`
}

// fetchAllPages segue a convenção de cursor do provedor acumulando os itens
// de todas as páginas. O retry com backoff acontece por página, sempre sobre
// a mesma página (o cursor não é reiniciado).
func fetchAllPages[T any](c *InflowwClient, endpoint string, query url.Values) (PageResult[T], error) {
	var result PageResult[T]

	cursor := ""
	for {
		pageQuery := cloneValues(query)
		if cursor != "" {
			pageQuery.Set("cursor", cursor)
		}

		page, err := retry.Do(c.policy, func() (*rawPage, error) {
			return c.getPage(endpoint, pageQuery)
		})
		if err != nil {
			if pkgerrors.Is(err, ErrMalformedPayload) {
				return result, err
			}

			// Degradação transitória ou rejeição permanente: devolve o que
			// foi acumulado até aqui, sem erro. O aviso fica no log para o
			// operador, não na resposta.
			result.Partial = true
			result.Reason = PartialRetriesExhausted

			var se *statusError
			if pkgerrors.As(err, &se) && !isRetryable(err) {
				result.Reason = PartialUpstreamRejected
			}

			logrus.WithFields(logrus.Fields{
				"endpoint": endpoint,
				"pages":    result.Pages,
				"items":    len(result.Items),
				"reason":   result.Reason,
				"error":    err.Error(),
			}).Warn("infloww: pagination degraded, returning partial result")

			return result, nil
		}

		var items []T
		if err := json.Unmarshal(page.Items, &items); err != nil {
			return result, pkgerrors.Wrap(ErrMalformedPayload, err.Error())
		}

		result.Items = append(result.Items, items...)
		result.Pages++

		if page.Cursor == "" {
			return result, nil
		}
		cursor = page.Cursor
	}
}

// getPage executa uma única requisição de página
func (c *InflowwClient) getPage(endpoint string, query url.Values) (*rawPage, error) {
	requestURL := fmt.Sprintf(
		"%s%s?%s",
		strings.TrimRight(c.cfg.Infloww.BaseURL, "/"),
		endpoint,
		query.Encode(),
	)

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.Infloww.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Erro de transporte entra no mesmo ciclo de backoff dos 5xx
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, &statusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var page rawPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, pkgerrors.Wrap(ErrMalformedPayload, err.Error())
	}

	if page.Items == nil {
		return nil, ErrMalformedPayload
	}

	return &page, nil
}

func cloneValues(in url.Values) url.Values {
	out := make(url.Values, len(in))
	for key, values := range in {
		out[key] = append([]string(nil), values...)
	}
	return out
}
