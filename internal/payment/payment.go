// Package payment contains a client for the blockchain payment contract gateway.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"time"
)

//go:generate mockgen -destination=./mock/payment.go -package=mock -source=payment.go

// ErrUnexpectedStatus returned for any non-2xx gateway response.
var ErrUnexpectedStatus = fmt.Errorf("unexpected status")

// Receipt is the confirmed withdrawal transaction.
type Receipt struct {
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
}

// Contract submits yield payouts to the payment contract. Withdraw blocks
// until the transaction has one confirmation.
type Contract interface {
	Withdraw(ctx context.Context, amountWei *big.Int, payoutAddress string) (*Receipt, error)
}

type contract struct {
	http    *http.Client
	baseURL string
}

// NewContract creates a payment gateway client. The timeout must cover the
// confirmation wait, not only the submit.
func NewContract(baseURL string, timeout time.Duration) Contract {
	return &contract{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

type withdrawRequest struct {
	AmountWei     string `json:"amountWei"`
	PayoutAddress string `json:"payoutAddress"`
}

func (c *contract) Withdraw(ctx context.Context, amountWei *big.Int, payoutAddress string) (*Receipt, error) {
	b, err := json.Marshal(withdrawRequest{
		AmountWei:     amountWei.String(),
		PayoutAddress: payoutAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/withdraw", c.baseURL), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var r Receipt
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("failed to decode receipt: %w", err)
	}

	return &r, nil
}
