// Package revalidate notifies the frontend that a path's cached data is
// stale. The signal is fire-and-forget: the core neither awaits nor
// retries it, and a failure never fails the mutation that triggered it.
package revalidate

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"portfolio-app/config"

	"github.com/rs/zerolog/log"
)

var client = &http.Client{Timeout: 5 * time.Second}

// Path signals the revalidation hook for one frontend path. Returns
// immediately; delivery happens in the background.
func Path(path string) {
	if config.REVALIDATE_URL == "" {
		return
	}
	go send(path)
}

func send(path string) {
	body, err := json.Marshal(map[string]string{"path": path})
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("revalidate: encode payload")
		return
	}

	req, err := http.NewRequest(http.MethodPost, config.REVALIDATE_URL, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("revalidate: build request")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if config.REVALIDATE_SECRET != "" {
		req.Header.Set("X-Revalidate-Secret", config.REVALIDATE_SECRET)
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("revalidate: request failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("revalidate: hook rejected")
	}
}
