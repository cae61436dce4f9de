package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/civicshield/evacuation_system/internal/config"
	"github.com/sirupsen/logrus"
)

// HTTPAlertDispatcher отправляет городские оповещения через внешний SMS-шлюз.
// Шлюз сам разворачивает оповещение по получателям, привязанным к городу.
type HTTPAlertDispatcher struct {
	cfg        *config.Config
	logger     *logrus.Logger
	httpClient *http.Client
}

// NewHTTPAlertDispatcher создает новый HTTPAlertDispatcher
func NewHTTPAlertDispatcher(cfg *config.Config, logger *logrus.Logger) *HTTPAlertDispatcher {
	return &HTTPAlertDispatcher{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

type cityAlertPayload struct {
	City    string `json:"city"`
	Message string `json:"message"`
}

// DispatchCityAlert рассылает оповещение об активации зоны всем жителям города.
// Без настроенного шлюза оповещение только логируется (режим заглушки).
func (d *HTTPAlertDispatcher) DispatchCityAlert(ctx context.Context, city string) error {
	log := d.logger.WithField("city", city)

	if d.cfg.AlertGatewayURL == "" {
		log.Infof("[Alert Mock] Danger zone alert for city: %s", city)
		return nil
	}

	payload := cityAlertPayload{
		City:    city,
		Message: fmt.Sprintf("ALERT: %s has been marked as a danger zone due to multiple incidents. Please stay safe and avoid the area if possible.", city),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal city alert: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", d.cfg.AlertGatewayURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create city alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.cfg.AlertGatewayKey != "" {
		req.Header.Set("Authorization", "Bearer "+d.cfg.AlertGatewayKey)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send city alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("city alert gateway returned status %d", resp.StatusCode)
	}

	log.Info("City alert dispatched successfully")
	return nil
}
