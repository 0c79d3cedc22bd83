package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lakshita-01/devPulse/internal/domain"
)

// InviteRepository defines persistence access for invite links.
type InviteRepository interface {
	Create(ctx context.Context, invite *domain.Invite) error
	GetByToken(ctx context.Context, token string) (*domain.Invite, error)
}

type inviteRepository struct {
	coll *mongo.Collection
}

// NewInviteRepository returns a MongoDB-backed implementation.
func NewInviteRepository(db *mongo.Database) InviteRepository {
	return &inviteRepository{coll: db.Collection("invites")}
}

func (r *inviteRepository) Create(ctx context.Context, invite *domain.Invite) error {
	_, err := r.coll.InsertOne(ctx, invite)
	return err
}

func (r *inviteRepository) GetByToken(ctx context.Context, token string) (*domain.Invite, error) {
	var invite domain.Invite
	if err := r.coll.FindOne(ctx, bson.M{"token": token}).Decode(&invite); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &invite, nil
}
