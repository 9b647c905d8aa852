package delivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Message is the delivery boundary contract: a composed mail with one
// spreadsheet attachment
type Message struct {
	To        string
	Subject   string
	Text      string
	FileName  string
	FileBytes []byte
}

// Client submits messages to the mail relay endpoint as multipart form data
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// sendResponse represents the relay's JSON response
type sendResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewClient creates a new delivery client
func NewClient(endpoint string, logger *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// Send transmits the message. Any non-2xx status, malformed response or
// success=false reply is a delivery failure.
func (c *Client) Send(msg Message) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"to":      msg.To,
		"subject": msg.Subject,
		"text":    msg.Text,
		"name":    msg.FileName,
	}
	for field, value := range fields {
		if err := writer.WriteField(field, value); err != nil {
			return fmt.Errorf("failed to build form field %s: %w", field, err)
		}
	}

	part, err := writer.CreateFormFile("file", msg.FileName)
	if err != nil {
		return fmt.Errorf("failed to attach file: %w", err)
	}
	if _, err := part.Write(msg.FileBytes); err != nil {
		return fmt.Errorf("failed to attach file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c.logger.Info("Sending report",
		zap.String("to", msg.To),
		zap.String("file", msg.FileName),
		zap.Int("attachment_bytes", len(msg.FileBytes)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delivery request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read delivery response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delivery failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var result sendResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return fmt.Errorf("malformed delivery response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("delivery rejected: %s", result.Message)
	}

	c.logger.Info("Report delivered",
		zap.String("to", msg.To),
		zap.String("message", result.Message))

	return nil
}
