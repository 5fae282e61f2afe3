package handlers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/linkist/founders-club-api/api"
	"github.com/linkist/founders-club-api/config"
	"github.com/linkist/founders-club-api/databases"
)

// InviteCode exported for testing purposes
type InviteCode struct {
	DB databases.InviteCodeDatabase
}

// InviteCodeByCodeHandler returns an invite code by its code
func (i InviteCode) InviteCodeByCodeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	inviteCode := r.URL.Query().Get("code")
	if inviteCode == "" {
		config.ErrorStatus("invite code is required", http.StatusBadRequest, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	filter := bson.M{"code": inviteCode}
	codeData, err := i.DB.FindOne(ctx, filter)
	if err != nil {
		config.ErrorStatus("failed to find invite code", http.StatusNotFound, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(codeData)
}
