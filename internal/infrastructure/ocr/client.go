// Package ocr is a client for an external text-recognition service.
// Optical recognition itself is out of process; this client posts image
// bytes and receives the recognized plain text.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/linklens/backend/internal/domain"
)

// Client calls the text-recognition HTTP service
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an OCR client for the given service base URL
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

// recognizeResponse is the service's response payload
type recognizeResponse struct {
	Text string `json:"text"`
}

// RecognizeText submits image bytes and returns the recognized text
func (c *Client) RecognizeText(ctx context.Context, image []byte) (string, error) {
	if c.baseURL == "" {
		return "", domain.ErrOCRUnavailable
	}

	endpoint := fmt.Sprintf("%s/v1/recognize", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(image))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("User-Agent", "LinkLens/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrOCRFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[OCR] Service error - Status: %d, Body: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("%w: status %d", domain.ErrOCRFailure, resp.StatusCode)
	}

	var recognized recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&recognized); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return recognized.Text, nil
}
