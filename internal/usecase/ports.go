package usecase

import (
	"context"

	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
)

// OfferNotifier delivers an offer message to one user's channel.
// Delivery is fire-and-forget: the core never retries and a failed send does
// not roll back the persisted request.
type OfferNotifier interface {
	NotifyOffer(ctx context.Context, recipientID int64, request *model.MembershipRequest) error
}

// OfferLocker provides mutual exclusion for the check-then-act sequence of an
// offer submission. Acquire blocks for a bounded time and returns the release
// function, or an error when the lock could not be taken in time.
type OfferLocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
