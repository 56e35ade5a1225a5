package update_booking_status

// UpdateStatusRequest HTTP request model
// Целевой статус определяет действие: confirmed, rejected или cancelled
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"` // Обязательна при status=cancelled
}
