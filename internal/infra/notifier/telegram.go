package notifier

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"reminder-scheduler/internal/domain/reminder"
	"reminder-scheduler/internal/pkg/config"
	"reminder-scheduler/internal/pkg/errs"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

var ErrTelegramAPI = errs.New("telegram api error")

// TelegramNotifier sends reminders through the Bot API sendMessage method.
// The owner id is used as the chat id.
type TelegramNotifier struct {
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
}

func NewTelegramNotifier(cfg config.Config, logger *slog.Logger) *TelegramNotifier {
	tg := cfg.Telegram
	return &TelegramNotifier{
		endpoint: strings.TrimRight(tg.BaseURL, "/") + "/bot" + tg.BotToken + "/sendMessage",
		client:   &http.Client{Timeout: tg.Timeout},
		limiter:  rate.NewLimiter(rate.Limit(tg.RatePerSecond), max(tg.Burst, 1)),
		logger:   logger,
	}
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
	Parameters  *struct {
		RetryAfter int `json:"retry_after,omitempty"`
	} `json:"parameters,omitempty"`
}

func (n *TelegramNotifier) Send(ctx context.Context, ownerID reminder.OwnerID, message string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return errs.Wrap(err, "telegram rate limit wait")
	}

	body, err := json.Marshal(sendMessageRequest{ChatID: ownerID.Int64(), Text: message})
	if err != nil {
		return errs.Wrap(err, "marshal telegram request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "build telegram request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		// the URL carries the bot token; keep it out of logs
		return errs.New("send telegram message: " + redact(err.Error(), n.endpoint))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Wrap(err, "read telegram response")
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return errs.Wrapf(err, "parse telegram response (status %d)", resp.StatusCode)
	}
	if !apiResp.OK {
		msg := fmt.Sprintf("status %d: %s", resp.StatusCode, apiResp.Description)
		if apiResp.Parameters != nil && apiResp.Parameters.RetryAfter > 0 {
			msg += fmt.Sprintf(" (retry after %ds)", apiResp.Parameters.RetryAfter)
		}
		return errs.Wrap(ErrTelegramAPI, msg)
	}

	n.logger.Debug("telegram message sent", slog.String("owner_id", ownerID.String()))
	return nil
}

func redact(s, endpoint string) string {
	return strings.ReplaceAll(s, endpoint, "<telegram endpoint>")
}
