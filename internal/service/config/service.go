package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/closer-platform/availability-service/internal/domain"
	configdocRepo "github.com/closer-platform/availability-service/internal/infra/storage/configdoc"
	memberClient "github.com/closer-platform/availability-service/internal/integrations/memberservice"
	"github.com/closer-platform/availability-service/internal/service/config/models"
)

// Роли, которым разрешено редактировать конфигурацию платформы
const (
	roleAdmin     = "admin"
	roleSpaceHost = "space-host"
)

// Service сервис для работы с конфигурацией платформы
// Отдаёт документы, разрешённые против бандлированной схемы (см. Merge)
type Service struct {
	schema       []domain.ConfigDescription
	configRepo   ConfigRepository
	memberClient MemberServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	schema []domain.ConfigDescription,
	configRepo ConfigRepository,
	memberClient MemberServiceClient,
	logger Logger,
) *Service {
	return &Service{
		schema:       schema,
		configRepo:   configRepo,
		memberClient: memberClient,
		logger:       logger,
	}
}

// GetResolved получает разрешённый документ одной категории
// Публичный метод - категории без сохранённого документа отдаются
// с дефолтами схемы (и enabled=false)
func (s *Service) GetResolved(ctx context.Context, slug string) (*models.ConfigDocumentResponse, error) {
	s.logger.Info("GetResolved: fetching config slug=%s", slug)

	desc, ok := s.findDescription(slug)
	if !ok {
		s.logger.Warn("GetResolved: unknown config category slug=%s", slug)
		return nil, ErrUnknownCategory
	}

	stored, err := s.configRepo.GetBySlug(ctx, slug)
	if err != nil && !errors.Is(err, configdocRepo.ErrDocumentNotFound) {
		s.logger.Error("GetResolved: repository error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetResolved - repository error: %v", ErrInternal, err)
	}

	resolved := MergeCategory(desc, stored)

	s.logger.Info("GetResolved: successfully resolved config slug=%s (stored=%t)", slug, stored != nil)
	return models.FromDomainDocument(resolved), nil
}

// GetAllResolved получает разрешённые документы всех категорий схемы
func (s *Service) GetAllResolved(ctx context.Context) (*models.ConfigListResponse, error) {
	s.logger.Info("GetAllResolved: fetching all config categories")

	stored, err := s.configRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAllResolved: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllResolved - repository error: %v", ErrInternal, err)
	}

	resolved := Merge(s.schema, stored)

	s.logger.Info("GetAllResolved: successfully resolved %d categories", len(resolved))
	return models.FromDomainDocumentList(resolved), nil
}

// Update сохраняет значение категории и возвращает повторно разрешённый документ
// Доступно только администраторам платформы
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigDocumentResponse, error) {
	s.logger.Info("Update: updating config slug=%s by user=%d", req.Slug, req.UserID)

	desc, ok := s.findDescription(req.Slug)
	if !ok {
		s.logger.Warn("Update: unknown config category slug=%s", req.Slug)
		return nil, ErrUnknownCategory
	}

	if req.Value == nil {
		s.logger.Warn("Update: empty value for slug=%s", req.Slug)
		return nil, fmt.Errorf("%w: value is required", ErrInvalidInput)
	}

	// Проверяем права доступа (только администратор платформы)
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	stored, err := s.configRepo.Upsert(ctx, req.Slug, req.Value)
	if err != nil {
		s.logger.Error("Update: repository error for slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Отдаём то, что увидят читатели: сохранённое значение, разрешённое
	// против актуальной схемы
	resolved := MergeCategory(desc, stored)

	s.logger.Info("Update: successfully updated config slug=%s", req.Slug)
	return models.FromDomainDocument(resolved), nil
}

// BookingSettings извлекает настройки бронирования из разрешённой
// категории booking
func (s *Service) BookingSettings(ctx context.Context) (*domain.BookingSettings, error) {
	desc, ok := s.findDescription(domain.SlugBooking)
	if !ok {
		// Категория booking всегда присутствует в бандлированной схеме
		return nil, fmt.Errorf("%w: booking category missing from schema", ErrInternal)
	}

	stored, err := s.configRepo.GetBySlug(ctx, domain.SlugBooking)
	if err != nil && !errors.Is(err, configdocRepo.ErrDocumentNotFound) {
		s.logger.Error("BookingSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: BookingSettings - repository error: %v", ErrInternal, err)
	}

	resolved := MergeCategory(desc, stored)

	return &domain.BookingSettings{
		MaxBookingHorizon:       intValue(resolved.Value["maxBookingHorizon"], domain.DefaultMaxBookingHorizon),
		MemberMaxBookingHorizon: intValue(resolved.Value["memberMaxBookingHorizon"], domain.DefaultMemberMaxBookingHorizon),
		MaxDuration:             intValue(resolved.Value["maxDuration"], domain.DefaultMaxDuration),
		MemberMaxDuration:       intValue(resolved.Value["memberMaxDuration"], domain.DefaultMemberMaxDuration),
	}, nil
}

// Вспомогательные методы

func (s *Service) findDescription(slug string) (domain.ConfigDescription, bool) {
	for _, desc := range s.schema {
		if desc.Slug == slug {
			return desc, true
		}
	}
	return domain.ConfigDescription{}, false
}

// checkAdminAccess проверяет, что пользователь является администратором платформы
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	member, err := s.memberClient.GetMember(ctx, userID)
	if err != nil {
		if errors.Is(err, memberClient.ErrMemberNotFound) {
			s.logger.Warn("checkAdminAccess: user=%d not found", userID)
			return ErrMemberNotFound
		}
		s.logger.Error("checkAdminAccess: failed to get member user=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get member: %v", ErrInternal, err)
	}

	if member.HasRole(roleAdmin) || member.HasRole(roleSpaceHost) {
		return nil
	}

	s.logger.Warn("checkAdminAccess: user=%d has no admin role", userID)
	return ErrAccessDenied
}

// intValue извлекает целое из значения конфигурации
// Числа из JSON приходят как float64
func intValue(v interface{}, def int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return def
	}
}
