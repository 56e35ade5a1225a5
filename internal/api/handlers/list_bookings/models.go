package list_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/closer-platform/availability-service/internal/domain"
	"github.com/closer-platform/availability-service/internal/service/bookings/models"
)

// ToServiceRequest создает запрос сервиса из query параметров
func ToServiceRequest(userID int64, query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		UserID:    userID,
		TimeFrame: query.Get("timeFrame"),
	}

	if fromStr := query.Get("fromDate"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.FromDate = &from
	}

	if toStr := query.Get("toDate"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		req.ToDate = &to
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if includeStr := query.Get("includeInactive"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = include
	}

	if ownStr := query.Get("own"); ownStr != "" {
		own, err := strconv.ParseBool(ownStr)
		if err != nil {
			return nil, err
		}
		req.OwnOnly = own
	}

	return req, nil
}
