// Package provider contains a client for the external data provider service.
package provider

import (
	"context"
	"time"

	"github.com/apidon/hermes/internal/entities"
)

//go:generate mockgen -destination=./mock/provider.go -package=mock -source=provider.go

// Deal is the provider's answer to an enrollment request: the subscription
// window it granted and the yield accrued so far.
type Deal struct {
	ProviderName string    `json:"providerName"`
	StartsAt     time.Time `json:"startsAt"`
	EndsAt       time.Time `json:"endsAt"`
	Yield        int64     `json:"yield"`
}

// LedgerItem is one interaction handed to the provider during deal negotiation.
type LedgerItem struct {
	Kind       string    `json:"kind"`
	PostPath   string    `json:"postPath"`
	RecordedAt time.Time `json:"recordedAt"`
}

// Client talks to the data provider microservice. Non-2xx responses are
// hard failures of the calling operation.
type Client interface {
	ProvideFeed(ctx context.Context, actor, providerName string, startsAt time.Time) ([]string, error)
	Deal(ctx context.Context, actor, providerName string, ledger []entities.LedgerEntry) (*Deal, error)
	FinishWithdraw(ctx context.Context, actor, providerName string, startsAt time.Time) error

	SendLikeAction(ctx context.Context, actor, postPath string) error
	SendCommentAction(ctx context.Context, actor, postPath string) error
	SendPostUploadAction(ctx context.Context, actor, postPath string) error
}

func toLedgerItems(ledger []entities.LedgerEntry) []LedgerItem {
	out := make([]LedgerItem, len(ledger))
	for i, e := range ledger {
		out[i] = LedgerItem{
			Kind:       string(e.Kind),
			PostPath:   e.PostPath,
			RecordedAt: e.RecordedAt,
		}
	}

	return out
}
