package memberservice

// Member модель пользователя из MemberService
type Member struct {
	ID       int64    `json:"id"`
	Email    string   `json:"email"`
	IsMember bool     `json:"is_member"` // Держатель активного членства
	Roles    []string `json:"roles"`     // admin, space-host, steward, member
}

// HasRole проверяет наличие роли у пользователя
func (m *Member) HasRole(role string) bool {
	for _, r := range m.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от MemberService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
