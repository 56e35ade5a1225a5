package get_blocked_dates

import (
	"time"

	"github.com/closer-platform/availability-service/internal/domain"
	getBlockedDates "github.com/closer-platform/availability-service/internal/usecase/get_blocked_dates"
)

// BlockedDatesResponse HTTP response model
type BlockedDatesResponse struct {
	IsMember bool           `json:"isMember"`
	Blocked  []BlockedRange `json:"blocked"`
}

// BlockedRange один диапазон заблокированных дат
type BlockedRange struct {
	From   *string `json:"from,omitempty"`
	To     *string `json:"to,omitempty"`
	Before *string `json:"before,omitempty"`
	After  *string `json:"after,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBlockedDates.Response) *BlockedDatesResponse {
	blocked := make([]BlockedRange, len(resp.Blocked))
	for i, r := range resp.Blocked {
		blocked[i] = BlockedRange{
			From:   r.From,
			To:     r.To,
			Before: r.Before,
			After:  r.After,
		}
	}

	return &BlockedDatesResponse{
		IsMember: resp.IsMember,
		Blocked:  blocked,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(userID int64, startStr, endStr string) (*getBlockedDates.Request, error) {
	req := &getBlockedDates.Request{UserID: userID}

	if startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return nil, err
		}
		req.Start = &start
	}

	if endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return nil, err
		}
		req.End = &end
	}

	return req, nil
}
