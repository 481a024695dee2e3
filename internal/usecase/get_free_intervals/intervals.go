package get_free_intervals

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// buildGaps строит диапазоны допустимого начала записи внутри окна работы точки,
// не пересекающиеся с занятыми слотами.
//
// Конец каждого диапазона сдвинут на duration назад: запись, начатая в любой момент
// диапазона, закончится не позже следующей записи и не позже закрытия.
// Записи, уже закончившиеся к now, пропускаются.
func buildGaps(opening domain.TimeWindow, booked []domain.TimeWindow, duration time.Duration, now time.Time) []domain.TimeWindow {
	gaps := make([]domain.TimeWindow, 0, len(booked)+1)
	if opening.IsEmpty() {
		return gaps
	}

	sorted := make([]domain.TimeWindow, len(booked))
	copy(sorted, booked)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	timeFrom := domain.MaxTime(opening.Start, now)
	for _, slot := range sorted {
		if slot.End.Before(now) {
			continue
		}

		gapEnd := domain.MinTime(slot.Start, opening.End).Add(-duration)
		if !gapEnd.Before(timeFrom) {
			gaps = append(gaps, domain.NewTimeWindow(timeFrom, gapEnd))
		}
		// слоты могут пересекаться, поэтому timeFrom только растёт
		timeFrom = domain.MaxTime(timeFrom, slot.End)
	}

	gapEnd := opening.End.Add(-duration)
	if !gapEnd.Before(timeFrom) {
		gaps = append(gaps, domain.NewTimeWindow(timeFrom, gapEnd))
	}

	return gaps
}

// staffCandidates рабочее окно мастера как диапазон допустимого начала записи.
// Начало окна не раньше now, конец сдвинут на duration назад.
// Пустой список - мастер в этот день недоступен.
func staffCandidates(working domain.TimeWindow, duration time.Duration, now time.Time) []domain.TimeWindow {
	if working.IsEmpty() {
		return []domain.TimeWindow{}
	}

	start := domain.MaxTime(working.Start, now)
	if !working.End.After(start) {
		return []domain.TimeWindow{}
	}

	lastStart := working.End.Add(-duration)
	if lastStart.Before(start) {
		return []domain.TimeWindow{}
	}

	return []domain.TimeWindow{domain.NewTimeWindow(start, lastStart)}
}

func bookedSlots(appointments []*domain.Appointment) []domain.TimeWindow {
	slots := make([]domain.TimeWindow, 0, len(appointments))
	for _, a := range appointments {
		if a == nil || !a.IsActive() {
			continue
		}
		slots = append(slots, a.BookedSlot())
	}
	return slots
}
