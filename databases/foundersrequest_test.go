package databases_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linkist/founders-club-api/config"
	"github.com/linkist/founders-club-api/databases"
	"github.com/linkist/founders-club-api/databases/mocks"
	"github.com/linkist/founders-club-api/models"
)

func TestNewFoundersRequestDatabase(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := config.New()

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	requestDB := databases.NewFoundersRequestDatabase(db)

	assert.NotEmpty(t, requestDB)
}

func TestFoundersRequestDatabase_FindOne(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.FoundersRequest)
		(*arg).Email = "jane@x.com"
		(*arg).Status = models.FoundersRequestStatusPending
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": true}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": false}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "founders_requests").Return(collectionHelper)

	// Create new database with mocked Database interface
	requestDba := databases.NewFoundersRequestDatabase(dbHelper)

	// Call method with defined filter, that in our mocked function returns
	// mocked-error
	request, err := requestDba.FindOne(context.Background(), bson.M{"error": true})

	assert.Empty(t, request)
	assert.EqualError(t, err, "mocked-error")

	// Now call the same function with different filter for correct result
	request, err = requestDba.FindOne(context.Background(), bson.M{"error": false})

	assert.Equal(t, "jane@x.com", request.Email)
	assert.NoError(t, err)
}

func TestFoundersRequestDatabase_CountDocuments(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("CountDocuments", context.Background(), bson.M{"error": true}).
		Return(int64(0), errors.New("mocked-error"))

	collectionHelper.(*mocks.CollectionHelper).
		On("CountDocuments", context.Background(), bson.M{"error": false}).
		Return(int64(7), nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "founders_requests").Return(collectionHelper)

	requestDba := databases.NewFoundersRequestDatabase(dbHelper)

	count, err := requestDba.CountDocuments(context.Background(), bson.M{"error": true})

	assert.Zero(t, count)
	assert.EqualError(t, err, "mocked-error")

	count, err = requestDba.CountDocuments(context.Background(), bson.M{"error": false})

	assert.Equal(t, int64(7), count)
	assert.NoError(t, err)
}

func TestFoundersRequestDatabase_InsertOne(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	insertResult := &mocks.InsertOneResultHelper{}

	request := models.FoundersRequest{Email: "jane@x.com", Status: models.FoundersRequestStatusPending}

	collectionHelper.(*mocks.CollectionHelper).
		On("InsertOne", context.Background(), request).
		Return(insertResult, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "founders_requests").Return(collectionHelper)

	requestDba := databases.NewFoundersRequestDatabase(dbHelper)

	res, err := requestDba.InsertOne(context.Background(), request)

	assert.NotNil(t, res)
	assert.NoError(t, err)
}

func TestFoundersRequestDatabase_UpdateOne(t *testing.T) {
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	filter := bson.M{"status": "pending"}
	update := bson.M{"$set": bson.M{"status": "approved"}}

	collectionHelper.(*mocks.CollectionHelper).
		On("UpdateOne", context.Background(), filter, update).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "founders_requests").Return(collectionHelper)

	requestDba := databases.NewFoundersRequestDatabase(dbHelper)

	res, err := requestDba.UpdateOne(context.Background(), filter, update)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
}
