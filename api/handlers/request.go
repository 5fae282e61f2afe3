package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkist/founders-club-api/api"
	"github.com/linkist/founders-club-api/config"
	"github.com/linkist/founders-club-api/databases"
	"github.com/linkist/founders-club-api/models"
)

// FoundersRequest handles founders request intake and status lookups
type FoundersRequest struct {
	DB databases.FoundersRequestDatabase
}

// basic local@domain.tld shape, the form does the heavy lifting client-side
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CreateFoundersRequestHandler accepts a new founders club request from the landing page
func (f FoundersRequest) CreateFoundersRequestHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var body models.CreateFoundersRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	fullName := strings.TrimSpace(body.FullName)
	email := strings.TrimSpace(strings.ToLower(body.Email))
	phone := strings.TrimSpace(body.Phone)
	profession := strings.TrimSpace(body.Profession)
	note := strings.TrimSpace(body.Note)

	if fullName == "" || email == "" || phone == "" || profession == "" {
		config.ErrorStatus("fullName, email, phone and profession are required", http.StatusBadRequest, w, nil)
		return
	}
	if !emailPattern.MatchString(email) {
		config.ErrorStatus("email address is invalid", http.StatusBadRequest, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	pending, err := f.DB.CountDocuments(ctx, bson.M{"email": email, "status": models.FoundersRequestStatusPending})
	if err != nil {
		config.ErrorStatus("failed to check existing requests", http.StatusInternalServerError, w, err)
		return
	}
	if pending > 0 {
		config.ErrorStatus("a request for this email is already pending review", http.StatusBadRequest, w, nil)
		return
	}

	approved, err := f.DB.CountDocuments(ctx, bson.M{"email": email, "status": models.FoundersRequestStatusApproved})
	if err != nil {
		config.ErrorStatus("failed to check existing requests", http.StatusInternalServerError, w, err)
		return
	}
	if approved > 0 {
		config.ErrorStatus("this email is already a founders club member", http.StatusBadRequest, w, nil)
		return
	}

	newRequest := models.FoundersRequest{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		Email:      email,
		Phone:      phone,
		Profession: profession,
		Note:       note,
		Status:     models.FoundersRequestStatusPending,
		CreatedAt:  time.Now(),
	}
	_, err = f.DB.InsertOne(ctx, newRequest)
	if err != nil {
		config.ErrorStatus("failed to create founders request", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.CreateFoundersRequestResponse{
		Success:   true,
		RequestID: newRequest.ID.Hex(),
	})
}

// FoundersRequestStatusHandler returns the status of the most recent request for an email
func (f FoundersRequest) FoundersRequestStatusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	email := r.URL.Query().Get("email")
	if email == "" {
		config.ErrorStatus("email is required", http.StatusBadRequest, w, nil)
		return
	}
	email = strings.TrimSpace(strings.ToLower(email))

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	request, err := f.DB.FindOne(ctx, bson.M{"email": email}, opts)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(models.FoundersRequestStatusResponse{
				Success:    true,
				HasRequest: false,
			})
			return
		}
		config.ErrorStatus("failed to find founders request", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.FoundersRequestStatusResponse{
		Success:    true,
		HasRequest: true,
		Status:     request.Status,
		CreatedAt:  &request.CreatedAt,
	})
}
