package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/apidon/hermes/internal/entities"
)

// ErrUnexpectedStatus returned for any non-2xx provider response.
var ErrUnexpectedStatus = fmt.Errorf("unexpected status")

const maxResponseSize = 1 << 20

type client struct {
	http    *http.Client
	cb      *gobreaker.CircuitBreaker[[]byte]
	baseURL string
	apiKey  string
}

// NewClient creates a provider service client. Requests go through a
// circuit breaker so a flapping provider does not hold every handler for
// the full timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "provider-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &client{
		http:    &http.Client{Timeout: timeout},
		cb:      cb,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type provideFeedRequest struct {
	Username     string    `json:"username"`
	ProviderName string    `json:"providerName"`
	StartsAt     time.Time `json:"startTime"`
}

type provideFeedResponse struct {
	PostPaths []string `json:"postDocPathArray"`
}

func (c *client) ProvideFeed(ctx context.Context, actor, providerName string, startsAt time.Time) ([]string, error) {
	body, err := c.post(ctx, "provideFeed", provideFeedRequest{
		Username:     actor,
		ProviderName: providerName,
		StartsAt:     startsAt,
	})
	if err != nil {
		return nil, err
	}

	var resp provideFeedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return resp.PostPaths, nil
}

type dealRequest struct {
	Username     string       `json:"username"`
	ProviderName string       `json:"providerName"`
	Ledger       []LedgerItem `json:"interactions"`
}

func (c *client) Deal(ctx context.Context, actor, providerName string, ledger []entities.LedgerEntry) (*Deal, error) {
	body, err := c.post(ctx, "deal", dealRequest{
		Username:     actor,
		ProviderName: providerName,
		Ledger:       toLedgerItems(ledger),
	})
	if err != nil {
		return nil, err
	}

	var d Deal
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &d, nil
}

type finishWithdrawRequest struct {
	Username     string    `json:"username"`
	ProviderName string    `json:"providerName"`
	StartsAt     time.Time `json:"startTime"`
}

func (c *client) FinishWithdraw(ctx context.Context, actor, providerName string, startsAt time.Time) error {
	_, err := c.post(ctx, "finishWithdraw", finishWithdrawRequest{
		Username:     actor,
		ProviderName: providerName,
		StartsAt:     startsAt,
	})

	return err
}

type classificationRequest struct {
	Username string `json:"username"`
	PostPath string `json:"postDocPath"`
}

func (c *client) SendLikeAction(ctx context.Context, actor, postPath string) error {
	_, err := c.post(ctx, "classification/likeAction", classificationRequest{Username: actor, PostPath: postPath})
	return err
}

func (c *client) SendCommentAction(ctx context.Context, actor, postPath string) error {
	_, err := c.post(ctx, "classification/commentAction", classificationRequest{Username: actor, PostPath: postPath})
	return err
}

func (c *client) SendPostUploadAction(ctx context.Context, actor, postPath string) error {
	_, err := c.post(ctx, "classification/postUploadAction", classificationRequest{Username: actor, PostPath: postPath})
	return err
}

func (c *client) post(ctx context.Context, endpoint string, reqBody interface{}) ([]byte, error) {
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	return c.cb.Execute(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			fmt.Sprintf("%s/%s", c.baseURL, endpoint), bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", c.apiKey)

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to send request: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return nil, fmt.Errorf("%w: %s %d", ErrUnexpectedStatus, endpoint, resp.StatusCode)
		}

		return body, nil
	})
}
