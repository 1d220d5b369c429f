package reporting

import (
	inflowwdomain "github.com/vfg2006/chatter-metrics-api/infrastructure/integrator/infloww/domain"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
	"github.com/vfg2006/chatter-metrics-api/pkg/utils"
)

// Normalize converte um registro bruto de uso na métrica canônica por
// chatter. Função pura, sem I/O: a identidade do chatter já passou pelo
// filtro do roster e o impact_percentage fica em zero até a passada de
// ranking.
func Normalize(record *inflowwdomain.UsageRecord, filters *domain.ReportFilters) *domain.ChatterMetrics {
	grossTotal := record.SoldMessagesPriceSum + record.TipsAmountSum + record.SoldPostsPriceSum
	totalNet := utils.RoundWithTwoDecimalPlace(grossTotal * (1 - domain.PlatformFeeRate))

	conversionRate := 0.0
	if record.PaidMessagesSentCount > 0 {
		conversionRate = utils.RoundWithTwoDecimalPlace(
			float64(record.PaidMessagesSoldCount) / float64(record.PaidMessagesSentCount) * 100,
		)
	}

	revenuePerMessage := 0.0
	if record.MessagesSentCount > 0 {
		revenuePerMessage = utils.RoundWithTwoDecimalPlace(totalNet / float64(record.MessagesSentCount))
	}

	return &domain.ChatterMetrics{
		ChatterID:   record.ChatterID,
		ChatterName: record.ChatterName,
		PeriodStart: filters.StartDate,
		PeriodEnd:   filters.EndDate,
		Revenue: domain.RevenueMetrics{
			TotalNet:          totalNet,
			SoldMessagesGross: utils.RoundWithTwoDecimalPlace(record.SoldMessagesPriceSum),
			TipsGross:         utils.RoundWithTwoDecimalPlace(record.TipsAmountSum),
			SoldPostsGross:    utils.RoundWithTwoDecimalPlace(record.SoldPostsPriceSum),
		},
		Messages: domain.MessageMetrics{
			Sent:          record.MessagesSentCount,
			AIGenerated:   record.AIMessagesCount,
			Media:         record.MediaMessagesCount,
			PaidSent:      record.PaidMessagesSentCount,
			PaidSold:      record.PaidMessagesSoldCount,
			Words:         record.WordsCount,
			FansContacted: record.FansContactedCount,
			Posts:         record.PostsCount,
		},
		Performance: domain.PerformanceMetrics{
			// O provedor entrega segundos; o dashboard exibe minutos
			AvgReplyTimeMinutes:        utils.RoundWithTwoDecimalPlace(record.AvgResponseTimeSeconds / 60),
			AvgPurchaseIntervalMinutes: utils.RoundWithTwoDecimalPlace(record.AvgPurchaseIntervalSeconds / 60),
			RevenuePerMessage:          revenuePerMessage,
			ConversionRate:             conversionRate,
		},
		Chargebacks: domain.ChargebackMetrics{
			Count:  record.ChargebacksCount,
			Amount: utils.RoundWithTwoDecimalPlace(record.ChargebacksAmountSum),
		},
	}
}
