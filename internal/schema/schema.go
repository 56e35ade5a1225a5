// Package schema holds the bundled config schema of the platform.
// The schema is a static, versioned in-memory structure - it is not fetched
// over the wire. Stored config documents are merged against it on every read,
// so categories and field sets can evolve without database migrations.
package schema

import "github.com/closer-platform/availability-service/internal/domain"

// Descriptions возвращает схему всех категорий конфигурации.
// Числовые дефолты объявлены как float64, чтобы совпадать с типами значений
// после json.Unmarshal сохранённых документов.
func Descriptions() []domain.ConfigDescription {
	return []domain.ConfigDescription{
		{
			Slug: "general",
			Fields: []domain.FieldDescription{
				{Name: "enabled", Type: domain.FieldTypeBoolean, Default: true},
				{Name: "platformName", Type: domain.FieldTypeText, Default: ""},
				{Name: "platformLegalAddress", Type: domain.FieldTypeText, Default: ""},
				{Name: "visitorsGuide", Type: domain.FieldTypeText, Default: ""},
				{
					Name:    "amenities",
					Type:    domain.FieldTypeArray,
					Default: []interface{}{},
					Element: &domain.ElementSchema{Primitive: domain.FieldTypeText},
				},
			},
		},
		{
			Slug: domain.SlugBooking,
			Fields: []domain.FieldDescription{
				{Name: "enabled", Type: domain.FieldTypeBoolean, Default: true},
				{Name: "maxBookingHorizon", Type: domain.FieldTypeNumber, Default: float64(domain.DefaultMaxBookingHorizon)},
				{Name: "memberMaxBookingHorizon", Type: domain.FieldTypeNumber, Default: float64(domain.DefaultMemberMaxBookingHorizon)},
				{Name: "maxDuration", Type: domain.FieldTypeNumber, Default: float64(domain.DefaultMaxDuration)},
				{Name: "memberMaxDuration", Type: domain.FieldTypeNumber, Default: float64(domain.DefaultMemberMaxDuration)},
				{Name: "utilityFiatCur", Type: domain.FieldTypeText, Default: "EUR"},
				{
					// Скидки на длительное проживание; дефолтов нет,
					// элемент синтезируется из типов полей
					Name:    "discounts",
					Type:    domain.FieldTypeArray,
					Element: &domain.ElementSchema{
						Fields: []domain.FieldDescription{
							{Name: "name", Type: domain.FieldTypeText},
							{Name: "durationThreshold", Type: domain.FieldTypeNumber},
							{Name: "percent", Type: domain.FieldTypeNumber},
							{Name: "membersOnly", Type: domain.FieldTypeBoolean},
						},
					},
				},
			},
		},
		{
			Slug: domain.SlugEmails,
			Fields: []domain.FieldDescription{
				{Name: "enabled", Type: domain.FieldTypeBoolean, Default: true},
				{Name: "senderName", Type: domain.FieldTypeText, Default: ""},
				{
					Name: "templates",
					Type: domain.FieldTypeArray,
					// Дефолтные шаблоны; новые элементы автоматически
					// дописываются существующим арендаторам при merge
					Default: []interface{}{
						emailTemplate("booking-request", "Your booking request", "We received your booking request."),
						emailTemplate("booking-confirmation", "Your booking is confirmed", "See you soon!"),
						emailTemplate("booking-cancelled", "Your booking was cancelled", "Your booking has been cancelled."),
						emailTemplate("booking-rejected", "Your booking was declined", "Unfortunately we had to decline your booking."),
						emailTemplate("checkin-reminder", "Check-in is coming up", "Your stay starts soon."),
					},
					Element: &domain.ElementSchema{
						Fields: []domain.FieldDescription{
							{Name: "name", Type: domain.FieldTypeText},
							{Name: "subject", Type: domain.FieldTypeText},
							{Name: "body", Type: domain.FieldTypeText},
						},
					},
				},
			},
		},
	}
}

func emailTemplate(name, subject, body string) map[string]interface{} {
	return map[string]interface{}{
		"name":    name,
		"subject": subject,
		"body":    body,
	}
}
