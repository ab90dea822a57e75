// Package messaging delivers offer notifications over Redis pub/sub.
package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teamforge-app/teamforge-backend/internal/domain/model"
	"github.com/teamforge-app/teamforge-backend/pkg/messaging"
	"go.uber.org/zap"
)

// DefaultOfferChannelPattern is the per-user offer channel; %d is the
// recipient user id.
const DefaultOfferChannelPattern = "user/%d/offers"

// OfferEvent is the payload published to a recipient's channel.
type OfferEvent struct {
	EventID     string    `json:"event_id"`
	RequestID   int64     `json:"request_id"`
	RequestType string    `json:"request_type"`
	UserID      int64     `json:"user_id"`
	TeamID      int64     `json:"team_id"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// RedisOfferNotifier publishes offer events to per-user channels,
// at-most-once with no delivery confirmation.
type RedisOfferNotifier struct {
	redisClient    messaging.RedisClient
	channelPattern string
	logger         *zap.Logger
}

// NewRedisOfferNotifier creates a notifier on an existing Redis client.
func NewRedisOfferNotifier(client messaging.RedisClient, channelPattern string, logger *zap.Logger) *RedisOfferNotifier {
	if channelPattern == "" {
		channelPattern = DefaultOfferChannelPattern
	}
	return &RedisOfferNotifier{
		redisClient:    client,
		channelPattern: channelPattern,
		logger:         logger,
	}
}

// NotifyOffer publishes one event to the recipient's channel.
func (n *RedisOfferNotifier) NotifyOffer(ctx context.Context, recipientID int64, request *model.MembershipRequest) error {
	event := OfferEvent{
		EventID:     uuid.NewString(),
		RequestID:   request.ID,
		RequestType: string(request.RequestType),
		UserID:      request.UserID,
		TeamID:      request.TeamID,
		Message:     request.Message,
		CreatedAt:   request.CreatedAt,
	}

	channel := fmt.Sprintf(n.channelPattern, recipientID)
	if err := n.redisClient.Publish(ctx, channel, event); err != nil {
		return fmt.Errorf("failed to publish offer event: %w", err)
	}

	n.logger.Debug("Offer event published",
		zap.String("channel", channel),
		zap.Int64("request_id", request.ID))

	return nil
}
