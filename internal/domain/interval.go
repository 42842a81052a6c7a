package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Interval полуоткрытый интервал времени [Start, End), занятый бронью на конкретном столе
// Вычисляется из бронирований на лету, не хранится в БД
type Interval struct {
	TableID int64
	Start   time.Time
	End     time.Time
}

// Overlaps returns true if the two intervals actually overlap
// Граничащие интервалы (один заканчивается ровно там, где начинается другой)
// пересечением НЕ считаются:
//   - бронь 18:00-20:00 и запрос 19:00-21:00 → пересекаются
//   - бронь 18:00-20:00 и запрос 20:00-22:00 → не пересекаются
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// NewInterval строит интервал брони: дата + время начала в таймзоне ресторана,
// длительность в часах
func NewInterval(tableID int64, date time.Time, start types.TimeString, durationHours int, loc *time.Location) (Interval, error) {
	startAt, err := start.At(date, loc)
	if err != nil {
		return Interval{}, err
	}
	return Interval{
		TableID: tableID,
		Start:   startAt,
		End:     startAt.Add(time.Duration(durationHours) * time.Hour),
	}, nil
}

// IntervalsFromReservations строит интервалы занятости из бронирований
// Брони без назначенного стола пропускаются - они ещё не занимают ресурс
func IntervalsFromReservations(reservations []*Reservation, durationHours int, loc *time.Location) []Interval {
	intervals := make([]Interval, 0, len(reservations))
	for _, r := range reservations {
		if r.TableID == nil {
			continue
		}
		iv, err := NewInterval(*r.TableID, r.Date, r.StartTime, durationHours, loc)
		if err != nil {
			continue
		}
		intervals = append(intervals, iv)
	}
	return intervals
}

// IntervalsByTable группирует интервалы по столам
func IntervalsByTable(intervals []Interval) map[int64][]Interval {
	byTable := make(map[int64][]Interval, len(intervals))
	for _, iv := range intervals {
		byTable[iv.TableID] = append(byTable[iv.TableID], iv)
	}
	return byTable
}

// HasOverlap returns true if candidate overlaps any of the given intervals
func HasOverlap(candidate Interval, intervals []Interval) bool {
	for _, iv := range intervals {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}
