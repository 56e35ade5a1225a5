package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/closer-platform/availability-service/internal/domain"
	"github.com/closer-platform/availability-service/internal/integrations/memberservice"
)

// Mock структуры

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

type MockConfigProvider struct {
	mock.Mock
}

func (m *MockConfigProvider) BookingSettings(ctx context.Context) (*domain.BookingSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingSettings), args.Error(1)
}

type MockMemberServiceClient struct {
	mock.Mock
}

func (m *MockMemberServiceClient) GetMemberWithGracefulDegradation(ctx context.Context, userID int64) (*memberservice.Member, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*memberservice.Member), args.Error(1)
}

// MockTransactionManager выполняет fn без реальной транзакции
type MockTransactionManager struct{}

func (m *MockTransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// FixedTimeProvider возвращает фиксированное время
type FixedTimeProvider struct {
	Time time.Time
}

func (p *FixedTimeProvider) Now() time.Time {
	return p.Time
}

// Вспомогательные функции

func newTestUseCase(
	bookingRepo *MockBookingRepository,
	listingRepo *MockListingRepository,
	configProvider *MockConfigProvider,
	memberClient *MockMemberServiceClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookingRepo, listingRepo, configProvider, memberClient, &MockTransactionManager{}, &noopLogger{})
	uc.timeProvider = &FixedTimeProvider{Time: now}
	return uc
}

type noopLogger struct{}

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

func defaultSettings() *domain.BookingSettings {
	return &domain.BookingSettings{
		MaxBookingHorizon:       90,
		MemberMaxBookingHorizon: 365,
		MaxDuration:             14,
		MemberMaxDuration:       30,
	}
}

func validRequest(now time.Time) *Request {
	return &Request{
		UserID:    7,
		ListingID: 1,
		Start:     now.AddDate(0, 0, 3),
		End:       now.AddDate(0, 0, 6),
		Adults:    2,
	}
}

// Тесты

func TestCreateBooking_Success(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	bookingRepo := new(MockBookingRepository)
	listingRepo := new(MockListingRepository)
	configProvider := new(MockConfigProvider)
	memberClient := new(MockMemberServiceClient)

	configProvider.On("BookingSettings", mock.Anything).Return(defaultSettings(), nil)
	memberClient.On("GetMemberWithGracefulDegradation", mock.Anything, int64(7)).
		Return(&memberservice.Member{ID: 7, IsMember: true}, nil)
	listingRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Listing{ID: 1, Quantity: 2, Beds: 2}, nil)
	bookingRepo.On("GetWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Booking{ID: 42, UserID: 7, ListingID: 1, Status: domain.StatusPending, Adults: 2}, nil)

	uc := newTestUseCase(bookingRepo, listingRepo, configProvider, memberClient, now)

	resp, err := uc.Execute(context.Background(), validRequest(now))

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.True(t, resp.IsMember)
	bookingRepo.AssertExpectations(t)
}

func TestCreateBooking_NoCapacity(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	bookingRepo := new(MockBookingRepository)
	listingRepo := new(MockListingRepository)
	configProvider := new(MockConfigProvider)
	memberClient := new(MockMemberServiceClient)

	configProvider.On("BookingSettings", mock.Anything).Return(defaultSettings(), nil)
	memberClient.On("GetMemberWithGracefulDegradation", mock.Anything, int64(7)).
		Return(nil, memberservice.ErrMemberNotFound)
	// Shared-листинг на 4 юнита, 3 уже заняты
	listingRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Listing{ID: 1, Quantity: 2, Beds: 2}, nil)
	bookingRepo.On("GetWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Booking{{ID: 5, ListingID: 1, Adults: 3}}, nil)

	uc := newTestUseCase(bookingRepo, listingRepo, configProvider, memberClient, now)

	_, err := uc.Execute(context.Background(), validRequest(now))

	assert.ErrorIs(t, err, ErrNoCapacity)
	bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_BeyondHorizon(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	bookingRepo := new(MockBookingRepository)
	listingRepo := new(MockListingRepository)
	configProvider := new(MockConfigProvider)
	memberClient := new(MockMemberServiceClient)

	configProvider.On("BookingSettings", mock.Anything).Return(defaultSettings(), nil)
	// Не-участник: горизонт 90 дней
	memberClient.On("GetMemberWithGracefulDegradation", mock.Anything, int64(7)).
		Return(&memberservice.Member{ID: 7, IsMember: false}, nil)

	req := validRequest(now)
	req.Start = now.AddDate(0, 0, 120)
	req.End = now.AddDate(0, 0, 123)

	uc := newTestUseCase(bookingRepo, listingRepo, configProvider, memberClient, now)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrBeyondHorizon)
}

func TestCreateBooking_MemberHorizonAllowsFurther(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	bookingRepo := new(MockBookingRepository)
	listingRepo := new(MockListingRepository)
	configProvider := new(MockConfigProvider)
	memberClient := new(MockMemberServiceClient)

	configProvider.On("BookingSettings", mock.Anything).Return(defaultSettings(), nil)
	memberClient.On("GetMemberWithGracefulDegradation", mock.Anything, int64(7)).
		Return(&memberservice.Member{ID: 7, IsMember: true}, nil)
	listingRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Listing{ID: 1, Quantity: 1, Beds: 2}, nil)
	bookingRepo.On("GetWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Booking{ID: 43, Status: domain.StatusPending}, nil)

	req := validRequest(now)
	req.Start = now.AddDate(0, 0, 120)
	req.End = now.AddDate(0, 0, 123)

	uc := newTestUseCase(bookingRepo, listingRepo, configProvider, memberClient, now)

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestCreateBooking_DurationExceeded(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	bookingRepo := new(MockBookingRepository)
	listingRepo := new(MockListingRepository)
	configProvider := new(MockConfigProvider)
	memberClient := new(MockMemberServiceClient)

	configProvider.On("BookingSettings", mock.Anything).Return(defaultSettings(), nil)
	memberClient.On("GetMemberWithGracefulDegradation", mock.Anything, int64(7)).
		Return(&memberservice.Member{ID: 7, IsMember: false}, nil)

	req := validRequest(now)
	req.End = req.Start.AddDate(0, 0, 20) // больше 14 дней для не-участника

	uc := newTestUseCase(bookingRepo, listingRepo, configProvider, memberClient, now)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDurationExceeded)
}

func TestCreateBooking_ServiceDegradedFallsBackToNonMember(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	bookingRepo := new(MockBookingRepository)
	listingRepo := new(MockListingRepository)
	configProvider := new(MockConfigProvider)
	memberClient := new(MockMemberServiceClient)

	configProvider.On("BookingSettings", mock.Anything).Return(defaultSettings(), nil)
	memberClient.On("GetMemberWithGracefulDegradation", mock.Anything, int64(7)).
		Return(nil, memberservice.ErrServiceDegraded)

	// Дата в пределах горизонта участника, но за пределами горизонта
	// не-участника: при деградации сервиса действует строгое правило
	req := validRequest(now)
	req.Start = now.AddDate(0, 0, 120)
	req.End = now.AddDate(0, 0, 123)

	uc := newTestUseCase(bookingRepo, listingRepo, configProvider, memberClient, now)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrBeyondHorizon)
}

func TestCreateBooking_InvalidInput(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(new(MockBookingRepository), new(MockListingRepository),
		new(MockConfigProvider), new(MockMemberServiceClient), now)

	req := validRequest(now)
	req.Adults = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidGuestCount)

	req = validRequest(now)
	req.End = req.Start
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
