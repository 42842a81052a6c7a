package get_day_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// generateStartTimes генерирует все кандидатные времена начала слотов:
// от времени открытия до последнего времени брони ВКЛЮЧИТЕЛЬНО,
// с фиксированным шагом domain.SlotStepMinutes
// Время закрытия слоты не ограничивает - последняя бронь может
// заканчиваться ровно в закрытие
func generateStartTimes(settings domain.OperatingSettings) []types.TimeString {
	starts := make([]types.TimeString, 0)

	current := settings.OpeningTime
	for !current.IsAfter(settings.LastBookingTime) {
		starts = append(starts, current)

		// Шаг за границу суток означает конец дня: AddMinutes не
		// представляет 24:00, иначе сетка зациклится через полночь
		next, err := current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return starts
}

// buildSlots размечает кандидатные слоты доступностью
//
// Правило минимального уведомления доминирует: слот, начинающийся раньше
// now + minAdvanceHours, помечается too_late независимо от того, сколько
// столов на него свободно
func buildSlots(
	settings domain.OperatingSettings,
	date time.Time,
	now time.Time,
	candidates []*domain.Table,
	occupiedByTable map[int64][]domain.Interval,
) ([]Slot, error) {
	starts := generateStartTimes(settings)

	loc := settings.Location()
	minAllowed := now.Add(time.Duration(settings.MinAdvanceHours) * time.Hour)

	slots := make([]Slot, 0, len(starts))

	for _, start := range starts {
		slotStart, err := start.At(date, loc)
		if err != nil {
			return nil, err
		}

		if slotStart.Before(minAllowed) {
			slots = append(slots, Slot{
				StartTime:           start,
				IsAvailable:         false,
				AvailableTableCount: 0,
				Reason:              ptr.Ptr(domain.SlotReasonTooLate),
			})
			continue
		}

		freeCount := countFreeTables(start, date, settings, candidates, occupiedByTable)
		if freeCount == 0 {
			slots = append(slots, Slot{
				StartTime:           start,
				IsAvailable:         false,
				AvailableTableCount: 0,
				Reason:              ptr.Ptr(domain.SlotReasonFullyBooked),
			})
			continue
		}

		slots = append(slots, Slot{
			StartTime:           start,
			IsAvailable:         true,
			AvailableTableCount: freeCount,
		})
	}

	return slots, nil
}

// countFreeTables считает столы-кандидаты без пересекающихся броней на слот
func countFreeTables(
	start types.TimeString,
	date time.Time,
	settings domain.OperatingSettings,
	candidates []*domain.Table,
	occupiedByTable map[int64][]domain.Interval,
) int {
	count := 0

	for _, table := range candidates {
		candidate, err := domain.NewInterval(table.ID, date, start, settings.ReservationDurationHours, settings.Location())
		if err != nil {
			continue
		}
		if !domain.HasOverlap(candidate, occupiedByTable[table.ID]) {
			count++
		}
	}

	return count
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
