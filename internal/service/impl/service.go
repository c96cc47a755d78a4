// Package impl is implementation of service interface.
package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/apidon/hermes/internal/entities"
	"github.com/apidon/hermes/internal/keymutex"
	"github.com/apidon/hermes/internal/payment"
	"github.com/apidon/hermes/internal/provider"
	"github.com/apidon/hermes/internal/service"
	"github.com/apidon/hermes/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

const classificationTimeout = 10 * time.Second

type srv struct {
	s  storage.Storage
	p  provider.Client
	pc payment.Contract
	km *keymutex.KeyedMutex

	now func() time.Time
}

// New creates new instance of service.
func New(s storage.Storage, p provider.Client, pc payment.Contract) service.Service {
	return &srv{
		s:   s,
		p:   p,
		pc:  pc,
		km:  keymutex.New(),
		now: time.Now,
	}
}

func (s *srv) GetProfile(ctx context.Context, username string) (*entities.Actor, error) {
	a, err := s.s.GetActor(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}

	return a, nil
}

// fanOut issues the sub-writes of one logical interaction concurrently and
// joins them. Success is reported only when every sub-write succeeded; on
// partial failure completed writes stay in place, no rollback is attempted.
func (s *srv) fanOut(ctx context.Context, writes ...func(ctx context.Context) error) error {
	var gr errgroup.Group

	for _, w := range writes {
		w := w
		gr.Go(func() error {
			return w(ctx)
		})
	}

	return gr.Wait()
}

// withActorLock serializes critical sections per actor within this process.
// Mutual exclusion across instances is not provided.
func (s *srv) withActorLock(actor string, f func() error) error {
	return s.km.Do(actor, f)
}

// classify forwards an interaction to the provider's classification
// endpoint, fire-and-forget. A failure never affects the interaction which
// triggered it.
func (s *srv) classify(actor, postPath string, send func(ctx context.Context, actor, postPath string) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), classificationTimeout)
		defer cancel()

		if err := send(ctx, actor, postPath); err != nil {
			log.WithError(err).WithField("actor", actor).Warn("failed to send classification event")
		}
	}()
}

func postPath(id entities.PostID) string {
	return fmt.Sprintf("posts/%s/%s", id.Owner, id.UUID)
}

func frenletPath(id string) string {
	return fmt.Sprintf("frenlets/%s", id)
}

func parsePostPath(path string) (entities.PostID, error) {
	p := strings.Split(path, "/")
	if len(p) != 3 || p[0] != "posts" || p[1] == "" || p[2] == "" {
		return entities.PostID{}, fmt.Errorf("invalid post path %q", path)
	}

	return entities.PostID{Owner: p[1], UUID: p[2]}, nil
}
