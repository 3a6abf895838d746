// Package email sends reminder notifications through an EmailJS-style
// transactional email widget.
//
// The widget is fire-and-forget: a 200 response means the request was
// accepted, not that the mail was delivered. Transient server errors are
// retried with backoff inside a single Send call; across sweep cycles the
// caller retries indefinitely by leaving the reminder unmarked.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// Message carries the template fields of one reminder notification.
type Message struct {
	Crop    string `json:"crop"`
	Note    string `json:"note"`
	Date    string `json:"date"`
	Country string `json:"country"`
	ToEmail string `json:"to_email"`
}

// Sender sends a single notification. Implemented by Client; tests provide
// fakes.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Client struct {
	apiURL     string
	serviceID  string
	templateID string
	httpClient *http.Client
}

// NewClient returns a Client posting to the given widget endpoint with the
// given service and template identifiers.
func NewClient(apiURL, serviceID, templateID string) *Client {
	return &Client{
		apiURL:     apiURL,
		serviceID:  serviceID,
		templateID: templateID,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type sendRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	MessageID      string  `json:"message_id"`
	TemplateParams Message `json:"template_params"`
}

// Send posts msg to the widget. Responses in the 5xx range are treated as
// transient and retried up to three attempts with fibonacci backoff; any
// other non-200 status fails immediately.
func (c *Client) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     c.templateID,
		MessageID:      uuid.NewString(),
		TemplateParams: msg,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email request: %w", err)
	}

	backoff := retry.WithMaxRetries(2, retry.NewFibonacci(200*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		return c.post(ctx, body)
	})
}

func (c *Client) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return retry.RetryableError(fmt.Errorf("email request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	b, _ := io.ReadAll(resp.Body)
	sendErr := fmt.Errorf("email service returned %s: %s", resp.Status, string(b))
	if resp.StatusCode >= http.StatusInternalServerError {
		return retry.RetryableError(sendErr)
	}
	return sendErr
}
