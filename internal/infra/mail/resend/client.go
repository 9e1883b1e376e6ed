package resend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/visionlane/vision-board/internal/domain/mail"
)

const defaultEndpoint = "https://api.resend.com/emails"

// Client sends transactional email through the Resend HTTP API as a
// multipart form: from/to/subject/html fields plus one PDF attachment.
type Client struct {
	apiKey   string
	from     string
	endpoint string
	http     *http.Client
}

func NewClient(apiKey, from string) *Client {
	return &Client{
		apiKey:   apiKey,
		from:     from,
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithEndpoint is used by tests to point at a local server.
func NewClientWithEndpoint(apiKey, from, endpoint string) *Client {
	c := NewClient(apiKey, from)
	c.endpoint = endpoint
	return c
}

// Send delivers one message. Only success/failure is consumed from the
// response; there is no retry here.
func (c *Client) Send(ctx context.Context, m mail.Message) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	fields := map[string]string{
		"from":    c.from,
		"to":      m.To,
		"subject": m.Subject,
		"html":    m.HTMLBody,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("building email form: %w", err)
		}
	}
	if len(m.Attachment) > 0 {
		part, err := w.CreateFormFile("attachment", m.AttachmentName)
		if err != nil {
			return fmt.Errorf("building email attachment: %w", err)
		}
		if _, err := part.Write(m.Attachment); err != nil {
			return fmt.Errorf("building email attachment: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email delivery failed: status %d: %s", resp.StatusCode, detail)
	}
	return nil
}
