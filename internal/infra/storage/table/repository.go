package table

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения столов
// Столами управляет отдельная админка, этот сервис их только читает
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает стол по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "zone", "seat_count", "is_active").
		From("tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var table domain.Table
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&table.ID,
		&table.Zone,
		&table.SeatCount,
		&table.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan table: %v", ErrScanRow, err)
	}

	return &table, nil
}

// GetActiveWithCapacity получает активные столы, вмещающие компанию из partySize гостей
// Сортировка по вместимости, затем по id - автоподбор берёт первый свободный,
// поэтому порядок определяет детерминированность выбора
func (r *Repository) GetActiveWithCapacity(ctx context.Context, partySize int) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "zone", "seat_count", "is_active").
		From("tables").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.GtOrEq{"seat_count": partySize}).
		OrderBy("seat_count ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveWithCapacity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveWithCapacity - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)
	for rows.Next() {
		var table domain.Table
		if err := rows.Scan(&table.ID, &table.Zone, &table.SeatCount, &table.IsActive); err != nil {
			return nil, fmt.Errorf("%w: GetActiveWithCapacity - scan table: %v", ErrScanRow, err)
		}
		tables = append(tables, &table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveWithCapacity - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}
