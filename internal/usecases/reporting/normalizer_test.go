package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	inflowwdomain "github.com/vfg2006/chatter-metrics-api/infrastructure/integrator/infloww/domain"
	"github.com/vfg2006/chatter-metrics-api/internal/domain"
)

func periodFilters() *domain.ReportFilters {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	return &domain.ReportFilters{StartDate: &start, EndDate: &end}
}

func TestNormalize_ReceitaLiquidaAplicaTaxaDaPlataforma(t *testing.T) {
	record := &inflowwdomain.UsageRecord{
		ChatterID:            "ch-1",
		ChatterName:          "Carlos",
		SoldMessagesPriceSum: 100.0,
		TipsAmountSum:        25.0,
		SoldPostsPriceSum:    10.0,
	}

	m := Normalize(record, periodFilters())

	// (100 + 25 + 10) × 0.8
	assert.Equal(t, 108.0, m.Revenue.TotalNet)
	assert.Equal(t, 100.0, m.Revenue.SoldMessagesGross)
	assert.Equal(t, 25.0, m.Revenue.TipsGross)
	assert.Equal(t, 10.0, m.Revenue.SoldPostsGross)

	// O impacto só é preenchido na passada de ranking
	assert.Equal(t, 0.0, m.Revenue.ImpactPercentage)
}

func TestNormalize_ArredondaParaDuasCasas(t *testing.T) {
	record := &inflowwdomain.UsageRecord{
		ChatterID:            "ch-1",
		SoldMessagesPriceSum: 10.057,
	}

	m := Normalize(record, periodFilters())

	// 10.057 × 0.8 = 8.0456 → 8.05
	assert.Equal(t, 8.05, m.Revenue.TotalNet)
}

func TestNormalize_TaxaDeConversao(t *testing.T) {
	record := &inflowwdomain.UsageRecord{
		ChatterID:             "ch-1",
		PaidMessagesSentCount: 40,
		PaidMessagesSoldCount: 10,
	}

	m := Normalize(record, periodFilters())
	assert.Equal(t, 25.0, m.Performance.ConversionRate)
}

func TestNormalize_SemMensagensPagasConversaoZero(t *testing.T) {
	record := &inflowwdomain.UsageRecord{
		ChatterID:             "ch-1",
		PaidMessagesSoldCount: 5,
	}

	m := Normalize(record, periodFilters())
	assert.Equal(t, 0.0, m.Performance.ConversionRate)
}

func TestNormalize_ReceitaPorMensagem(t *testing.T) {
	record := &inflowwdomain.UsageRecord{
		ChatterID:            "ch-1",
		SoldMessagesPriceSum: 100.0,
		MessagesSentCount:    32,
	}

	m := Normalize(record, periodFilters())

	// 80.0 / 32 = 2.5
	assert.Equal(t, 2.5, m.Performance.RevenuePerMessage)
}

func TestNormalize_SemMensagensReceitaPorMensagemZero(t *testing.T) {
	record := &inflowwdomain.UsageRecord{
		ChatterID:            "ch-1",
		SoldMessagesPriceSum: 100.0,
	}

	m := Normalize(record, periodFilters())
	assert.Equal(t, 0.0, m.Performance.RevenuePerMessage)
}

func TestNormalize_ConverteSegundosParaMinutos(t *testing.T) {
	record := &inflowwdomain.UsageRecord{
		ChatterID:                  "ch-1",
		AvgResponseTimeSeconds:     150,
		AvgPurchaseIntervalSeconds: 61,
	}

	m := Normalize(record, periodFilters())

	assert.Equal(t, 2.5, m.Performance.AvgReplyTimeMinutes)
	assert.Equal(t, 1.02, m.Performance.AvgPurchaseIntervalMinutes)
}
