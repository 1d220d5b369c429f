package inflowwclient

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	inflowwdomain "github.com/vfg2006/chatter-metrics-api/infrastructure/integrator/infloww/domain"
)

// GetAccountTransactions busca o feed de transações de uma conta no período
func (c *InflowwClient) GetAccountTransactions(accountID string, start, end time.Time) (TransactionsResult, error) {
	endpoint := fmt.Sprintf("/v2/accounts/%s/transactions", url.PathEscape(accountID))

	query := url.Values{}
	query.Set("start", start.UTC().Format(time.RFC3339))
	query.Set("end", end.UTC().Format(time.RFC3339))
	query.Set("limit", strconv.Itoa(c.cfg.Infloww.PageLimit))

	return fetchAllPages[inflowwdomain.Transaction](c, endpoint, query)
}
