package domain

// Default booking settings, applied when the booking config category
// carries no stored overrides
const (
	DefaultMaxBookingHorizon       = 90  // days
	DefaultMemberMaxBookingHorizon = 365 // days
	DefaultMaxDuration             = 14  // days
	DefaultMemberMaxDuration       = 30  // days
)

// Business validation constants
const (
	MinBookingHorizonDays = 1
	MaxBookingHorizonDays = 730
	MinDurationDays       = 1
	MaxDurationDays       = 365
	MaxGuestsPerBooking   = 100
	MaxCancellationReasonLength = 500
)

// Config category slugs with special handling
const (
	// SlugEmails is the only category with additive default migration:
	// newly introduced templates are appended to stored arrays by name
	SlugEmails = "emails"

	// SlugBooking holds the horizon/duration settings
	SlugBooking = "booking"
)

// FieldNameEnabled is forced to false for categories entirely absent from
// storage, regardless of the schema default
const FieldNameEnabled = "enabled"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих вместимость
// Используется при фильтрации для подсчёта занятости
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusRejected,
}

// ActiveStatuses список статусов, занимающих вместимость
var ActiveStatuses = []BookingStatus{
	StatusOpen,
	StatusPending,
	StatusConfirmed,
	StatusPaid,
	StatusCheckedIn,
	StatusCheckedOut,
}
