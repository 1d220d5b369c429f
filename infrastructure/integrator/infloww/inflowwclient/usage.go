package inflowwclient

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	inflowwdomain "github.com/vfg2006/chatter-metrics-api/infrastructure/integrator/infloww/domain"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
)

// GetChattersUsage busca a visão global de uso por chatter no período
func (c *InflowwClient) GetChattersUsage(filters *domain.ReportFilters) (UsageResult, error) {
	return fetchAllPages[inflowwdomain.UsageRecord](c, "/v2/metrics/chatters/usage", c.usageQuery(filters))
}

// GetAccountChattersUsage busca a visão de uso escopada por conta.
// O provedor pode responder 404 para contas sem suporte a essa visão;
// nesse caso o resultado volta vazio e parcial, e o chamador decide
// se recorre à visão global.
func (c *InflowwClient) GetAccountChattersUsage(accountID string, filters *domain.ReportFilters) (UsageResult, error) {
	endpoint := fmt.Sprintf("/v2/accounts/%s/chatters/usage", url.PathEscape(accountID))
	return fetchAllPages[inflowwdomain.UsageRecord](c, endpoint, c.usageQuery(filters))
}

func (c *InflowwClient) usageQuery(filters *domain.ReportFilters) url.Values {
	query := url.Values{}
	query.Set("from", filters.StartDate.Format(time.DateOnly))
	query.Set("to", filters.EndDate.Format(time.DateOnly))
	query.Set("offset", "0")
	query.Set("limit", strconv.Itoa(c.cfg.Infloww.PageLimit))
	return query
}
