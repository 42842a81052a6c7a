package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getDayAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/get_day_availability"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingPartySize = "количество гостей обязательно"
	msgInvalidPartySize = "некорректное количество гостей"
)

type Handler struct {
	useCase GetDayAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetDayAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{date}
// Query params: partySize (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	// Извлекаем partySize из query параметров
	partySizeStr := r.URL.Query().Get("partySize")
	if partySizeStr == "" {
		h.logger.Warn("GET /availability/{date} - Missing party size")
		handlers.RespondBadRequest(w, msgMissingPartySize)
		return
	}

	partySize, err := strconv.Atoi(partySizeStr)
	if err != nil {
		h.logger.Warn("GET /availability/{date} - Invalid party size: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPartySize)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(dateStr, partySize)
	if err != nil {
		h.logger.Warn("GET /availability/{date} - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDayAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/{date} - Invalid input: date=%s, party_size=%d", dateStr, partySize)
			handlers.RespondBadRequest(w, msgInvalidPartySize)

		default:
			h.logger.Error("GET /availability/{date} - Failed to get availability: date=%s, party_size=%d, error=%v",
				dateStr, partySize, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability/{date} - Availability retrieved successfully: date=%s, party_size=%d, slots_count=%d",
		dateStr, partySize, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
