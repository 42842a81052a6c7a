package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// selectTable выбирает стол для брони автоматически
//
// Кандидаты приходят отсортированными по вместимости, затем по id
// (так их отдаёт репозиторий), поэтому выбирается наименьший подходящий
// свободный стол, а при равной вместимости - с меньшим id. Выбор
// детерминирован для фиксированной занятости
//
// Возвращает nil, если все кандидаты заняты пересекающимися бронями
func selectTable(
	candidates []*domain.Table,
	date time.Time,
	req *Request,
	settings domain.OperatingSettings,
	occupiedByTable map[int64][]domain.Interval,
) *domain.Table {
	for _, table := range candidates {
		candidate, err := domain.NewInterval(table.ID, date, req.StartTime, settings.ReservationDurationHours, settings.Location())
		if err != nil {
			continue
		}
		if !domain.HasOverlap(candidate, occupiedByTable[table.ID]) {
			return table
		}
	}
	return nil
}
