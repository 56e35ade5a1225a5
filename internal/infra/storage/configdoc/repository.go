package configdoc

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/closer-platform/availability-service/internal/domain"
	"github.com/closer-platform/availability-service/pkg/dbmetrics"
	"github.com/closer-platform/availability-service/pkg/psqlbuilder"
)

// Repository репозиторий документов конфигурации
// Документы хранятся как slug -> JSONB value; значение может быть частичным
// (старая версия схемы) - дополнение дефолтами выполняет сервисный слой
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySlug получает документ конфигурации по slug категории
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.ConfigDocument, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slug", "value", "created_at", "updated_at").
		From("config_documents").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	doc, err := scanDocument(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// GetAll получает все сохранённые документы конфигурации
func (r *Repository) GetAll(ctx context.Context) ([]*domain.ConfigDocument, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("slug", "value", "created_at", "updated_at").
		From("config_documents").
		OrderBy("slug ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	docs := make([]*domain.ConfigDocument, 0)

	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return docs, nil
}

// Upsert сохраняет значение категории (INSERT ... ON CONFLICT DO UPDATE)
func (r *Repository) Upsert(ctx context.Context, slug string, value map[string]interface{}) (*domain.ConfigDocument, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - marshal value: %v", ErrEncodeValue, err)
	}

	query, args, err := psqlbuilder.Insert("config_documents").
		Columns("slug", "value").
		Values(slug, raw).
		Suffix("ON CONFLICT (slug) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return &domain.ConfigDocument{
		Slug:      slug,
		Value:     value,
		CreatedAt: createdAt.Time,
		UpdatedAt: updatedAt.Time,
	}, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDocument(row rowScanner) (*domain.ConfigDocument, error) {
	var doc domain.ConfigDocument
	var raw []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(&doc.Slug, &raw, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanDocument - scan row: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(raw, &doc.Value); err != nil {
		return nil, fmt.Errorf("%w: scanDocument - unmarshal value for slug=%s: %v", ErrDecodeValue, doc.Slug, err)
	}

	doc.CreatedAt = createdAt.Time
	doc.UpdatedAt = updatedAt.Time

	return &doc, nil
}
