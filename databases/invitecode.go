package databases

// go generate: mockery --name InviteCodeDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkist/founders-club-api/models"
)

const inviteCodeName = "founders_invite_codes"

// InviteCodeDatabase contains the methods to use with the invite code database
type InviteCodeDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.InviteCode, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.InviteCode, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	InsertOne(ctx context.Context, inviteCode models.InviteCode, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error)
}

type inviteCodeDatabase struct {
	db DatabaseHelper
}

// NewInviteCodeDatabase initializes a new instance of invite code database with the provided db connection
func NewInviteCodeDatabase(db DatabaseHelper) InviteCodeDatabase {
	return &inviteCodeDatabase{
		db: db,
	}
}

func (c *inviteCodeDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.InviteCode, error) {
	inviteCode := &models.InviteCode{}
	err := c.db.Collection(inviteCodeName).FindOne(ctx, filter, opts...).Decode(&inviteCode)
	if err != nil {
		return nil, err
	}
	return inviteCode, nil
}

func (c *inviteCodeDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.InviteCode, error) {
	var inviteCodes []models.InviteCode
	cur, err := c.db.Collection(inviteCodeName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&inviteCodes)
	if err != nil {
		return nil, err
	}
	return inviteCodes, nil
}

func (c *inviteCodeDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	count, err := c.db.Collection(inviteCodeName).CountDocuments(ctx, filter, opts...)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (c *inviteCodeDatabase) InsertOne(ctx context.Context, inviteCode models.InviteCode, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(inviteCodeName).InsertOne(ctx, inviteCode, opts...)
}

func (c *inviteCodeDatabase) DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error) {
	return c.db.Collection(inviteCodeName).DeleteMany(ctx, filter, opts...)
}
