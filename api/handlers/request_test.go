package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linkist/founders-club-api/api/handlers"
	"github.com/linkist/founders-club-api/databases"
	mocksdb "github.com/linkist/founders-club-api/databases/mocks"
	"github.com/linkist/founders-club-api/models"
)

func newFoundersRequestHandler(conn *mocksdb.CollectionHelper) handlers.FoundersRequest {
	db := &mocksdb.DatabaseHelper{}
	db.On("Collection", "founders_requests").Return(conn)
	return handlers.FoundersRequest{DB: databases.NewFoundersRequestDatabase(db)}
}

func TestFoundersRequest_CreateFoundersRequestHandler(t *testing.T) {
	body := `{"fullName":"Jane Doe","email":"JANE@X.COM","phone":"+1 555","profession":"Designer"}`
	req, err := http.NewRequest("POST", "/founders/request", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	conn := &mocksdb.CollectionHelper{}
	insertResult := &mocksdb.InsertOneResultHelper{}

	var inserted models.FoundersRequest
	conn.On("CountDocuments", mock.Anything, bson.M{"email": "jane@x.com", "status": "pending"}).Return(int64(0), nil)
	conn.On("CountDocuments", mock.Anything, bson.M{"email": "jane@x.com", "status": "approved"}).Return(int64(0), nil)
	conn.On("InsertOne", mock.Anything, mock.Anything).Return(insertResult, nil).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(models.FoundersRequest)
	})

	u := newFoundersRequestHandler(conn)

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.CreateFoundersRequestHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.CreateFoundersRequestResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.RequestID)

	// stored row is normalized and pending
	assert.Equal(t, "jane@x.com", inserted.Email)
	assert.Equal(t, "Jane Doe", inserted.FullName)
	assert.Equal(t, models.FoundersRequestStatusPending, inserted.Status)
	assert.WithinDuration(t, time.Now(), inserted.CreatedAt, 5*time.Second)
	assert.Equal(t, inserted.ID.Hex(), resp.RequestID)
}

func TestFoundersRequest_CreateFoundersRequestHandlerMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing fullName", `{"email":"jane@x.com","phone":"+1 555","profession":"Designer"}`},
		{"missing email", `{"fullName":"Jane Doe","phone":"+1 555","profession":"Designer"}`},
		{"missing phone", `{"fullName":"Jane Doe","email":"jane@x.com","profession":"Designer"}`},
		{"missing profession", `{"fullName":"Jane Doe","email":"jane@x.com","phone":"+1 555"}`},
		{"whitespace only", `{"fullName":"   ","email":"jane@x.com","phone":"+1 555","profession":"Designer"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/founders/request", bytes.NewBufferString(tt.body))
			if err != nil {
				t.Fatal(err)
			}

			u := newFoundersRequestHandler(&mocksdb.CollectionHelper{})

			rr := httptest.NewRecorder()
			http.HandlerFunc(u.CreateFoundersRequestHandler).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var resp models.ErrorResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Contains(t, resp.Error, "required")
		})
	}
}

func TestFoundersRequest_CreateFoundersRequestHandlerInvalidEmail(t *testing.T) {
	for _, email := range []string{"nope", "a@b", "a b@c.com", "@x.com"} {
		body, _ := json.Marshal(models.CreateFoundersRequestRequest{
			FullName: "Jane Doe", Email: email, Phone: "+1 555", Profession: "Designer",
		})
		req, err := http.NewRequest("POST", "/founders/request", bytes.NewBuffer(body))
		if err != nil {
			t.Fatal(err)
		}

		u := newFoundersRequestHandler(&mocksdb.CollectionHelper{})

		rr := httptest.NewRecorder()
		http.HandlerFunc(u.CreateFoundersRequestHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "email %q should be rejected", email)
	}
}

func TestFoundersRequest_CreateFoundersRequestHandlerPendingConflict(t *testing.T) {
	body := `{"fullName":"Jane Doe","email":"jane@x.com","phone":"+1 555","profession":"Designer"}`
	req, err := http.NewRequest("POST", "/founders/request", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	conn := &mocksdb.CollectionHelper{}
	conn.On("CountDocuments", mock.Anything, bson.M{"email": "jane@x.com", "status": "pending"}).Return(int64(1), nil)

	u := newFoundersRequestHandler(conn)

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.CreateFoundersRequestHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp models.ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "already pending")
	conn.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestFoundersRequest_CreateFoundersRequestHandlerApprovedConflict(t *testing.T) {
	body := `{"fullName":"Jane Doe","email":"jane@x.com","phone":"+1 555","profession":"Designer"}`
	req, err := http.NewRequest("POST", "/founders/request", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	conn := &mocksdb.CollectionHelper{}
	conn.On("CountDocuments", mock.Anything, bson.M{"email": "jane@x.com", "status": "pending"}).Return(int64(0), nil)
	conn.On("CountDocuments", mock.Anything, bson.M{"email": "jane@x.com", "status": "approved"}).Return(int64(1), nil)

	u := newFoundersRequestHandler(conn)

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.CreateFoundersRequestHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp models.ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "already a founders club member")
	conn.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestFoundersRequest_CreateFoundersRequestHandlerStoreError(t *testing.T) {
	body := `{"fullName":"Jane Doe","email":"jane@x.com","phone":"+1 555","profession":"Designer"}`
	req, err := http.NewRequest("POST", "/founders/request", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	conn := &mocksdb.CollectionHelper{}
	conn.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), errors.New("mocked-error"))

	u := newFoundersRequestHandler(conn)

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.CreateFoundersRequestHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestFoundersRequest_FoundersRequestStatusHandlerMissingEmail(t *testing.T) {
	req, err := http.NewRequest("GET", "/founders/request", nil)
	if err != nil {
		t.Fatal(err)
	}

	u := newFoundersRequestHandler(&mocksdb.CollectionHelper{})

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.FoundersRequestStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFoundersRequest_FoundersRequestStatusHandlerNoRequest(t *testing.T) {
	req, err := http.NewRequest("GET", "/founders/request?email=jane@x.com", nil)
	if err != nil {
		t.Fatal(err)
	}

	conn := &mocksdb.CollectionHelper{}
	singleResult := &mocksdb.SingleResultHelper{}
	singleResult.On("Decode", mock.Anything).Return(mongo.ErrNoDocuments)
	conn.On("FindOne", mock.Anything, mock.Anything, mock.Anything).Return(singleResult)

	u := newFoundersRequestHandler(conn)

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.FoundersRequestStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.FoundersRequestStatusResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.HasRequest)
	assert.Empty(t, resp.Status)
}

func TestFoundersRequest_FoundersRequestStatusHandlerFound(t *testing.T) {
	req, err := http.NewRequest("GET", "/founders/request?email=JANE@X.COM", nil)
	if err != nil {
		t.Fatal(err)
	}

	createdAt := time.Now().Add(-time.Hour).Truncate(time.Millisecond)

	conn := &mocksdb.CollectionHelper{}
	singleResult := &mocksdb.SingleResultHelper{}
	singleResult.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.FoundersRequest)
		(*arg).Status = models.FoundersRequestStatusPending
		(*arg).CreatedAt = createdAt
	})
	conn.On("FindOne", mock.Anything, bson.M{"email": "jane@x.com"}, mock.Anything).Return(singleResult)

	u := newFoundersRequestHandler(conn)

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.FoundersRequestStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.FoundersRequestStatusResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.HasRequest)
	assert.Equal(t, models.FoundersRequestStatusPending, resp.Status)
	assert.NotNil(t, resp.CreatedAt)
	assert.WithinDuration(t, createdAt, *resp.CreatedAt, time.Second)
}

func TestFoundersRequest_FoundersRequestStatusHandlerStoreError(t *testing.T) {
	req, err := http.NewRequest("GET", "/founders/request?email=jane@x.com", nil)
	if err != nil {
		t.Fatal(err)
	}

	conn := &mocksdb.CollectionHelper{}
	singleResult := &mocksdb.SingleResultHelper{}
	singleResult.On("Decode", mock.Anything).Return(errors.New("mocked-error"))
	conn.On("FindOne", mock.Anything, mock.Anything, mock.Anything).Return(singleResult)

	u := newFoundersRequestHandler(conn)

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.FoundersRequestStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
