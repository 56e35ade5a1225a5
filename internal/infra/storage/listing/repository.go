package listing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/closer-platform/availability-service/internal/domain"
	"github.com/closer-platform/availability-service/pkg/dbmetrics"
	"github.com/closer-platform/availability-service/pkg/psqlbuilder"
)

var listingColumns = []string{
	"id",
	"name",
	"price_duration",
	"quantity",
	"beds",
	"private",
	"working_hours_start",
	"working_hours_end",
	"available_for",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения листингов
// Листинги управляются админкой платформы, этот сервис их только читает
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория листингов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает листинг по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(listingColumns...).
		From("listings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	listing, err := scanListing(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan listing: %v", ErrScanRow, err)
	}

	return listing, nil
}

// List получает все листинги платформы
func (r *Repository) List(ctx context.Context) ([]*domain.Listing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(listingColumns...).
		From("listings").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	listings := make([]*domain.Listing, 0)

	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return listings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (*domain.Listing, error) {
	var listing domain.Listing
	var priceDuration sql.NullString
	var availableFor pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&listing.ID,
		&listing.Name,
		&priceDuration,
		&listing.Quantity,
		&listing.Beds,
		&listing.Private,
		&listing.WorkingHoursStart,
		&listing.WorkingHoursEnd,
		&availableFor,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// NULL price_duration трактуется как nightly (IsNightly обрабатывает "")
	listing.PriceDuration = domain.PriceDuration(priceDuration.String)
	listing.AvailableFor = availableFor
	listing.CreatedAt = createdAt.Time
	listing.UpdatedAt = updatedAt.Time

	return &listing, nil
}
