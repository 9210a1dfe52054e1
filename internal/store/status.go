package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StatusCheck is a heartbeat-style record written by API clients.
type StatusCheck struct {
	ID         string    `bson:"id" json:"id"`
	ClientName string    `bson:"client_name" json:"clientName"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// CreateStatusCheck persists a new status check document.
func (s *Store) CreateStatusCheck(ctx context.Context, check *StatusCheck) error {
	if _, err := s.statusChecks.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

// ListStatusChecks returns all status checks in natural store order,
// capped at the fetch limit.
func (s *Store) ListStatusChecks(ctx context.Context) ([]*StatusCheck, error) {
	cursor, err := s.statusChecks.Find(ctx, bson.M{}, options.Find().SetLimit(fetchLimit))
	if err != nil {
		return nil, fmt.Errorf("find status checks: %w", err)
	}

	checks := make([]*StatusCheck, 0)
	if err := cursor.All(ctx, &checks); err != nil {
		return nil, fmt.Errorf("decode status checks: %w", err)
	}

	return checks, nil
}
