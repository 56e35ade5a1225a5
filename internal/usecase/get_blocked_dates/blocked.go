package get_blocked_dates

import (
	"time"

	"github.com/closer-platform/availability-service/internal/domain"
)

// computeBlockedRanges вычисляет диапазоны дат, недоступные для выбора
// в календаре бронирования.
//
// Базовые правила: прошлое всегда заблокировано, как и даты за пределами
// горизонта бронирования. При предварительно выбранной дате начала вокруг
// неё применяется скользящее окно максимальной длительности: нельзя выбрать
// конец позже start + maxDuration и начало раньше start − maxDuration.
// Граница end − maxDuration добавляется только при выбранной дате конца.
//
// Чистая функция: текущее время передаётся явно, порядок диапазонов в
// результате детерминирован.
func computeBlockedRanges(
	settings domain.BookingSettings,
	isMember bool,
	start, end *time.Time,
	now time.Time,
) []domain.BlockedDateRange {
	horizon := settings.HorizonFor(isMember)
	maxDuration := settings.DurationFor(isMember)

	blocked := make([]domain.BlockedDateRange, 0, 5)

	// Прошлое недоступно
	nowCopy := now
	blocked = append(blocked, domain.BlockedDateRange{Before: &nowCopy})

	// Даты за горизонтом бронирования недоступны
	horizonEnd := now.AddDate(0, 0, horizon)
	blocked = append(blocked, domain.BlockedDateRange{After: &horizonEnd})

	if start != nil {
		// Окно длительности вокруг выбранного начала
		afterStart := start.AddDate(0, 0, maxDuration)
		blocked = append(blocked, domain.BlockedDateRange{After: &afterStart})

		if end != nil {
			beforeEnd := end.AddDate(0, 0, -maxDuration)
			blocked = append(blocked, domain.BlockedDateRange{Before: &beforeEnd})
		}

		beforeStart := start.AddDate(0, 0, -maxDuration)
		blocked = append(blocked, domain.BlockedDateRange{Before: &beforeStart})
	}

	return blocked
}
