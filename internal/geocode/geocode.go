package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Client - шлюз к внешнему геокодеру (Nominatim-совместимый API).
// Любая ошибка или таймаут трактуются как «адрес не разрешён» (ok=false),
// вызывающая операция при этом продолжается без координат.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient создает клиент геокодера с ограниченным таймаутом
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
}

// Geocode разрешает адрес в координаты. Медленный или недоступный
// геокодер не должен останавливать ядро, поэтому запрос живет не
// дольше настроенного таймаута.
func (c *Client) Geocode(ctx context.Context, address string) (lat, lon float64, ok bool) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "geocode",
		"address":   address,
	})
	if address == "" || c.baseURL == "" {
		return 0, 0, false
	}

	reqURL := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", c.baseURL, url.QueryEscape(address))

	var results []searchResult
	if err := c.getJSON(ctx, reqURL, &results); err != nil {
		log.WithError(err).Warn("Geocoding request failed, proceeding without coordinates")
		return 0, 0, false
	}
	if len(results) == 0 {
		log.Debug("Geocoder returned no results")
		return 0, 0, false
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLon != nil {
		log.Warn("Geocoder returned malformed coordinates")
		return 0, 0, false
	}
	return lat, lon, true
}

// ReverseGeocode разрешает координаты в отображаемый адрес
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (string, bool) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "geocode",
		"lat":       lat,
		"lon":       lon,
	})
	if c.baseURL == "" {
		return "", false
	}

	reqURL := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f", c.baseURL, lat, lon)

	var result reverseResult
	if err := c.getJSON(ctx, reqURL, &result); err != nil {
		log.WithError(err).Warn("Reverse geocoding request failed")
		return "", false
	}
	if result.DisplayName == "" {
		return "", false
	}
	return result.DisplayName, true
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "fleet-coordination-system")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder responded with status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode geocoder response: %w", err)
	}
	return nil
}
