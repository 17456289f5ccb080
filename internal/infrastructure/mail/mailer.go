// Package mail is the boundary to the transactional-email provider.
// Sends are fire-and-forget: a failure surfaces to the caller once and is
// never retried here.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"crewcall/internal/config"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

var ErrSendFailed = errors.New("failed to send email")

type Sender interface {
	SendVerificationCode(ctx context.Context, to, code string) error
}

type Client struct {
	apiURL  string
	apiKey  string
	from    string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewClient(cfg config.MailConfig, logger *zap.Logger) *Client {
	return &Client{
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		from:   cfg.FromAddress,
		http:   &http.Client{Timeout: 10 * time.Second},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "mail",
			Timeout: 30 * time.Second,
		}),
		logger: logger.Named("mail"),
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (c *Client) SendVerificationCode(ctx context.Context, to, code string) error {
	// Without a configured provider the code is only logged; useful for
	// local development, where no mail should leave the machine.
	if c.apiURL == "" {
		c.logger.Info("mail provider not configured, skipping send",
			zap.String("to", to),
			zap.String("code", code),
		)
		return nil
	}

	body := sendRequest{
		From:    c.from,
		To:      to,
		Subject: "Your verification code",
		Text:    fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code),
	}

	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.post(ctx, body)
	})
	if err != nil {
		c.logger.Warn("verification mail failed", zap.Error(err), zap.String("to", to))
		return ErrSendFailed
	}
	return nil
}

func (c *Client) post(ctx context.Context, body sendRequest) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail provider returned %d", resp.StatusCode)
	}
	return nil
}
