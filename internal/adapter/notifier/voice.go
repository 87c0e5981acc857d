package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"taskcall/internal/core/ports"
)

// VoiceClient places outbound calls through a JSON voice-call provider.
// The provider's transport details stay behind this adapter; callers only
// see the CallNotifier port.
type VoiceClient struct {
	baseURL    string
	apiKey     string
	callerID   string
	httpClient *http.Client
}

var _ ports.CallNotifier = (*VoiceClient)(nil)

func NewVoiceClient(baseURL, apiKey, callerID string) *VoiceClient {
	return &VoiceClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		callerID:   callerID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type callRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Message string `json:"message"`
}

type callError struct {
	Message string `json:"message"`
}

func (c *VoiceClient) PlaceCall(ctx context.Context, phoneNumber, message string) error {
	payload, err := json.Marshal(callRequest{
		From:    c.callerID,
		To:      phoneNumber,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("encode call request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/calls", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build call request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("place call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("call provider status %d", resp.StatusCode)
		}

		var provErr callError
		if err := json.Unmarshal(body, &provErr); err == nil && provErr.Message != "" {
			return fmt.Errorf("call provider: %s", provErr.Message)
		}
		return fmt.Errorf("call provider status %d", resp.StatusCode)
	}

	return nil
}
