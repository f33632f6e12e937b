package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/addonhub/addonhub/internal/config"
)

func apiGet(cfg *config.ClientConfig, path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, cfg.Server+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.Token)
	return http.DefaultClient.Do(req)
}

func apiPost(cfg *config.ClientConfig, path, contentType string, body []byte) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, cfg.Server+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.Token)
	req.Header.Set("Content-Type", contentType)
	return http.DefaultClient.Do(req)
}

// decodeResponse reads the response body into v, surfacing non-JSON error
// bodies (proxies, wrong server) as readable errors.
func decodeResponse(resp *http.Response, v any) error {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("unexpected response (%d): %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return nil
}
