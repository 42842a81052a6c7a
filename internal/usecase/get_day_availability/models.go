package get_day_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса сетки доступности
type Request struct {
	Date      time.Time // Дата, на которую строится сетка (без времени)
	PartySize int       // Количество гостей
}

// Response сетка доступности на день
// Для фиксированных входных данных результат детерминирован:
// повторный запрос при неизменной занятости возвращает идентичную сетку
type Response struct {
	Date            time.Time
	WorkingHours    domain.WorkingHours
	MinAdvanceHours int
	Slots           []Slot
}

// Slot модель слота в сетке
type Slot struct {
	StartTime           types.TimeString
	IsAvailable         bool
	AvailableTableCount int
	Reason              *domain.SlotReason // nil для доступного слота
}
