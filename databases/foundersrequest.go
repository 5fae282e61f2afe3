package databases

// go generate: mockery --name FoundersRequestDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkist/founders-club-api/models"
)

const foundersRequestName = "founders_requests"

// FoundersRequestDatabase contains the methods to use with the founders requests database
type FoundersRequestDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.FoundersRequest, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.FoundersRequest, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	InsertOne(ctx context.Context, request models.FoundersRequest, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

type foundersRequestDatabase struct {
	db DatabaseHelper
}

// NewFoundersRequestDatabase initializes a new instance of founders request database with the provided db connection
func NewFoundersRequestDatabase(db DatabaseHelper) FoundersRequestDatabase {
	return &foundersRequestDatabase{
		db: db,
	}
}

func (c *foundersRequestDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.FoundersRequest, error) {
	request := &models.FoundersRequest{}
	err := c.db.Collection(foundersRequestName).FindOne(ctx, filter, opts...).Decode(&request)
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (c *foundersRequestDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.FoundersRequest, error) {
	var requests []models.FoundersRequest
	cur, err := c.db.Collection(foundersRequestName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&requests)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *foundersRequestDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	count, err := c.db.Collection(foundersRequestName).CountDocuments(ctx, filter, opts...)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (c *foundersRequestDatabase) InsertOne(ctx context.Context, request models.FoundersRequest, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(foundersRequestName).InsertOne(ctx, request, opts...)
}

func (c *foundersRequestDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return c.db.Collection(foundersRequestName).UpdateOne(ctx, filter, update, opts...)
}
