package get_blocked_dates

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return ErrInvalidUserID
	}

	if req.Start != nil && req.End != nil && req.Start.After(*req.End) {
		return ErrInvalidDateRange
	}

	return nil
}
