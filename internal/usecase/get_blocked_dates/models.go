package get_blocked_dates

import (
	"time"

	"github.com/closer-platform/availability-service/internal/domain"
)

// Request запрос на получение заблокированных дат
// Start/End - предварительно выбранные пользователем даты в календаре,
// вокруг которых применяется скользящее окно максимальной длительности
type Request struct {
	UserID int64      `json:"userId"`
	Start  *time.Time `json:"start,omitempty"`
	End    *time.Time `json:"end,omitempty"`
}

// BlockedRange один диапазон заблокированных дат
// Либо закрытый интервал [From, To], либо открытый Before/After сентинел
type BlockedRange struct {
	From   *string `json:"from,omitempty"`
	To     *string `json:"to,omitempty"`
	Before *string `json:"before,omitempty"`
	After  *string `json:"after,omitempty"`
}

// Response список заблокированных диапазонов для календаря
type Response struct {
	IsMember bool           `json:"isMember"`
	Blocked  []BlockedRange `json:"blocked"`
}

// Методы конвертации

func toResponse(ranges []domain.BlockedDateRange, isMember bool) *Response {
	resp := &Response{
		IsMember: isMember,
		Blocked:  make([]BlockedRange, 0, len(ranges)),
	}

	for _, r := range ranges {
		resp.Blocked = append(resp.Blocked, BlockedRange{
			From:   formatDate(r.From),
			To:     formatDate(r.To),
			Before: formatDate(r.Before),
			After:  formatDate(r.After),
		})
	}

	return resp
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}
