package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Client клиент для отправки уведомлений о бронях в Telegram чат ресторана
// Уведомления best-effort: ошибки отправки логируются и не влияют
// на результат операции, после которой они отправляются
type Client struct {
	apiURL     string
	token      string
	chatID     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
// При пустых token или chatID клиент работает в mock-режиме:
// сообщение пишется в лог вместо отправки
func NewClient(apiURL, token, chatID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		apiURL: strings.TrimRight(apiURL, "/"),
		token:  token,
		chatID: chatID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendReservationConfirmed отправляет уведомление о подтверждённой брони
func (c *Client) SendReservationConfirmed(ctx context.Context, n *ConfirmedReservation) error {
	message := formatConfirmedMessage(n)

	if c.token == "" || c.chatID == "" {
		c.log.Info("SendReservationConfirmed: mock mode, notification for reservation id=%d:\n%s",
			n.ReservationID, message)
		return nil
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.apiURL, c.token)

	body, err := json.Marshal(sendMessageRequest{
		ChatID: c.chatID,
		Text:   message,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrSendFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d: %s", ErrSendFailed, resp.StatusCode, respBody)
	}

	var result sendMessageResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrSendFailed, err)
	}
	if !result.OK {
		return fmt.Errorf("%w: telegram api error: %s", ErrSendFailed, result.Description)
	}

	c.log.Info("SendReservationConfirmed: notification sent for reservation id=%d", n.ReservationID)
	return nil
}

// formatConfirmedMessage собирает текст уведомления для чата ресторана
func formatConfirmedMessage(n *ConfirmedReservation) string {
	var b strings.Builder

	b.WriteString("🔔 БРОНЬ ПОДТВЕРЖДЕНА!\n\n")
	b.WriteString(fmt.Sprintf("📅 Дата: %s\n", n.Date.Format("02.01.2006")))
	b.WriteString(fmt.Sprintf("⏰ Время: %s\n", n.StartTime))
	b.WriteString(fmt.Sprintf("👥 Гостей: %d\n", n.PartySize))
	b.WriteString(fmt.Sprintf("👤 Имя: %s\n", n.GuestName))
	b.WriteString(fmt.Sprintf("📞 Телефон: %s\n", n.GuestPhone))

	if n.TableID != nil {
		b.WriteString(fmt.Sprintf("🪑 Стол №%d (%s)\n", *n.TableID, zoneName(n.Zone)))
		if n.SeatCount != nil {
			b.WriteString(fmt.Sprintf("💺 Мест: %d\n", *n.SeatCount))
		}
	}

	b.WriteString(fmt.Sprintf("💰 Депозит: %.0f₽", n.DepositAmount))

	return b.String()
}

func zoneName(zone *domain.Zone) string {
	if zone == nil {
		return "Не указан"
	}
	switch *zone {
	case domain.ZoneHall1:
		return "1 зал"
	case domain.ZoneHall2:
		return "2 зал"
	case domain.ZoneTerrace:
		return "терраса"
	default:
		return string(*zone)
	}
}
