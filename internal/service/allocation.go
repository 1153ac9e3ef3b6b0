package service

import (
	"question-bank/internal/domain"
	"question-bank/internal/util"
)

// AllocateTypeCounts splits total across the question types by the given
// distribution using largest-remainder rounding. Ties are broken in
// canonical type order (mcq, tf, fib), so the split is deterministic and
// the counts always sum to total.
func AllocateTypeCounts(total int, dist domain.Distribution) map[domain.QuestionType]int {
	keys := make([]string, len(domain.QuestionTypeOrder))
	for i, qt := range domain.QuestionTypeOrder {
		keys[i] = string(qt)
	}
	raw := util.Apportion(total, keys, dist)

	counts := make(map[domain.QuestionType]int, len(raw))
	for _, qt := range domain.QuestionTypeOrder {
		counts[qt] = raw[string(qt)]
	}
	return counts
}
