package companion

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"focuscam-be/internal/entity"
	"focuscam-be/internal/pkg/logger"
)

// INotifier hands freshly-issued credentials to the desktop companion app,
// which listens on a loopback port while waiting for a browser login.
type INotifier interface {
	NotifyLogin(ctx context.Context, user *entity.User) error
}

type loginPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Uid         string `json:"uid"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}

type notifier struct {
	callbackURL string
	client      *http.Client
	logger      logger.ILogger
}

func NewNotifier(callbackURL string, log logger.ILogger) INotifier {
	return &notifier{
		callbackURL: callbackURL,
		client:      &http.Client{Timeout: 3 * time.Second},
		logger:      log,
	}
}

// NotifyLogin posts the account details to the companion callback endpoint.
// The companion is frequently not running; failures are logged and swallowed
// so a browser login never breaks because the desktop app is closed.
func (n *notifier) NotifyLogin(ctx context.Context, user *entity.User) error {
	payload := loginPayload{
		Name:        user.DisplayName,
		Email:       user.Email,
		Uid:         user.Id.String(),
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt.UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.callbackURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("Companion", "Companion callback unreachable", map[string]interface{}{
			"url":   n.callbackURL,
			"error": err.Error(),
		})
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		n.logger.Warn("Companion", "Companion callback rejected login payload", map[string]interface{}{
			"url":    n.callbackURL,
			"status": resp.StatusCode,
		})
		return nil
	}

	n.logger.Info("Companion", "Companion notified of login", map[string]interface{}{
		"user_id": user.Id.String(),
	})
	return nil
}
