package ranking

import (
	"sort"

	"github.com/vfg2006/chatter-metrics-api/pkg/utils"
)

// Rankable é implementado pelos registros que participam da passada de
// ranking (chatters ou contas)
type Rankable interface {
	NetTotal() float64
	SetImpactPercentage(float64)
}

// Apply ordena a lista por receita líquida decrescente e calcula a fatia
// percentual de cada entrada sobre o total. A ordenação é estável: empates
// mantêm a ordem de chegada. Quando o total não é positivo, todas as fatias
// ficam em zero. A passada é idempotente e opera só em memória.
func Apply[T Rankable](items []T) {
	total := 0.0
	for _, item := range items {
		total += item.NetTotal()
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].NetTotal() > items[j].NetTotal()
	})

	for _, item := range items {
		if total > 0 {
			item.SetImpactPercentage(utils.RoundWithTwoDecimalPlace(item.NetTotal() / total * 100))
		} else {
			item.SetImpactPercentage(0)
		}
	}
}
