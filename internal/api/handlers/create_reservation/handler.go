package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidReservationAt = "некорректная дата бронирования"
	msgTooLateToBook        = "слишком поздно для бронирования на это время"
	msgOutsideWorkingHours  = "время вне рабочих часов ресторана"
	msgTableNotFound        = "стол не найден"
	msgTableTooSmall        = "стол не вмещает указанное количество гостей"
	msgTableNotAvailable    = "стол занят на выбранное время"
	msgNoTablesAvailable    = "нет свободных столов на выбранное время"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid reservation date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidReservationAt)

		case errors.Is(err, createReservation.ErrTooLateToBook):
			h.logger.Warn("POST /reservations - Too late to book: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createReservation.ErrOutsideWorkingHours):
			h.logger.Warn("POST /reservations - Outside working hours: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createReservation.ErrTableNotFound):
			h.logger.Warn("POST /reservations - Table not found: table_id=%v", req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createReservation.ErrTableTooSmall):
			h.logger.Warn("POST /reservations - Table too small: table_id=%v, party_size=%d", req.TableID, req.PartySize)
			handlers.RespondError(w, http.StatusConflict, msgTableTooSmall)

		case errors.Is(err, createReservation.ErrTableNotAvailable):
			h.logger.Warn("POST /reservations - Table not available: table_id=%v, date=%s, time=%s",
				req.TableID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgTableNotAvailable)

		case errors.Is(err, createReservation.ErrNoTablesAvailable):
			h.logger.Warn("POST /reservations - No tables available: date=%s, time=%s, party_size=%d",
				req.Date, req.StartTime, req.PartySize)
			handlers.RespondError(w, http.StatusConflict, msgNoTablesAvailable)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, table_id=%d, deposit=%.2f",
		result.ID, result.TableID, result.DepositAmount)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
