package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

// settingsRowID настройки ресторана - одна строка с фиксированным id
const settingsRowID = 1

// Repository репозиторий настроек ресторана
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает настройки ресторана
// Возвращает ErrSettingsNotFound, если строка не создана - подстановку
// дефолтов делает сервисный слой, репозиторий дефолты не хранит
func (r *Repository) Get(ctx context.Context) (*domain.OperatingSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"opening_time",
		"closing_time",
		"last_booking_time",
		"min_advance_hours",
		"reservation_duration_hours",
		"timezone",
	).
		From("restaurant_settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.OperatingSettings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.OpeningTime,
		&s.ClosingTime,
		&s.LastBookingTime,
		&s.MinAdvanceHours,
		&s.ReservationDurationHours,
		&s.Timezone,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Upsert создает или обновляет настройки ресторана
func (r *Repository) Upsert(ctx context.Context, s *domain.OperatingSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("restaurant_settings").
		Columns(
			"id",
			"opening_time",
			"closing_time",
			"last_booking_time",
			"min_advance_hours",
			"reservation_duration_hours",
			"timezone",
		).
		Values(
			settingsRowID,
			s.OpeningTime,
			s.ClosingTime,
			s.LastBookingTime,
			s.MinAdvanceHours,
			s.ReservationDurationHours,
			s.Timezone,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			opening_time = EXCLUDED.opening_time,
			closing_time = EXCLUDED.closing_time,
			last_booking_time = EXCLUDED.last_booking_time,
			min_advance_hours = EXCLUDED.min_advance_hours,
			reservation_duration_hours = EXCLUDED.reservation_duration_hours,
			timezone = EXCLUDED.timezone,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
