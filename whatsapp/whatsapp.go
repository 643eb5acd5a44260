// Outbound WhatsApp delivery through the Twilio Messages REST API.
package whatsapp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"avisame/config"

	"go.uber.org/zap"
)

const apiBase = "https://api.twilio.com/2010-04-01"

type Client struct {
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

func New(cfg config.Twilio, logger *zap.SugaredLogger) *Client {
	return &Client{
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       cfg.From,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.Named("whatsapp"),
	}
}

// From returns the configured sending number.
func (c *Client) From() string {
	return c.from
}

// Send posts one message to the provider. Blocking, no retries.
func (c *Client) Send(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("From", c.from)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", apiBase, c.accountSID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))

	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)

	if err != nil {
		return fmt.Errorf("send whatsapp message: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(respBody))
	}

	c.logger.With(zap.String("to", to)).Info("Message sent")

	return nil
}
