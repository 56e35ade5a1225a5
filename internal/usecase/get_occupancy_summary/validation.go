package get_occupancy_summary

func validateRequest(req *Request) error {
	if req.FromDate != nil && req.ToDate != nil && req.FromDate.After(*req.ToDate) {
		return ErrInvalidDateRange
	}

	return nil
}
