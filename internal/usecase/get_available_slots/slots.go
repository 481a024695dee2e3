package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// discretize раскладывает интервалы допустимого начала записи в сетку с шагом step.
// Сетка привязана к полуночи дня: первое время интервала округляется вверх
// до ближайшего узла, затем добавляется каждый узел t <= конца интервала.
//
// Пример: шаг 15 минут, интервал 10:17-11:00 → 10:30, 10:45, 11:00
func discretize(intervals []domain.TimeWindow, step time.Duration) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if step <= 0 {
		return slots
	}

	seen := make(map[int]struct{})
	for _, iv := range intervals {
		if iv.End.Before(iv.Start) {
			continue
		}

		for t := ceilToGrid(iv.Start, step); !t.After(iv.End); t = t.Add(step) {
			// интервал не выходит за пределы суток, но шаг может
			if !domain.IsSameDay(t, iv.Start) {
				break
			}
			ts := types.NewTimeString(t)
			if _, ok := seen[ts.Minutes()]; ok {
				continue
			}
			seen[ts.Minutes()] = struct{}{}
			slots = append(slots, ts)
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].IsBefore(slots[j])
	})
	return slots
}

// ceilToGrid ближайший узел сетки (от полуночи дня t) не раньше t
func ceilToGrid(t time.Time, step time.Duration) time.Time {
	midnight := domain.StartOfDay(t)
	offset := t.Sub(midnight)
	rem := offset % step
	if rem == 0 {
		return t
	}
	return t.Add(step - rem)
}
