package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/linkist/founders-club-api/api"
	"github.com/linkist/founders-club-api/config"
	"github.com/linkist/founders-club-api/databases"
	"github.com/linkist/founders-club-api/mailer"
	"github.com/linkist/founders-club-api/models"
	templates "github.com/linkist/founders-club-api/templates/html"
)

const (
	inviteCodePrefix = "FC-"
	inviteCodeLength = 8
	// excludes I, O, 0 and 1 so codes stay easy to read and type
	inviteCodeAlphabet    = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	inviteCodeMaxAttempts = 10
	inviteCodeTTL         = 72 * time.Hour
)

// Approval handles founders request approvals and invite code issuance
type Approval struct {
	RDB    databases.FoundersRequestDatabase
	ICDB   databases.InviteCodeDatabase
	Mailer mailer.Sender
	Config config.Config
}

// ApproveFoundersRequestHandler approves a pending request, issues an invite code
// and emails it to the requester
func (a Approval) ApproveFoundersRequestHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var body models.ApproveFoundersRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if body.RequestID == "" {
		config.ErrorStatus("requestId is required", http.StatusBadRequest, w, nil)
		return
	}

	oid, err := primitive.ObjectIDFromHex(body.RequestID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	request, err := a.RDB.FindOne(ctx, bson.M{"_id": oid})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("founders request not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to find founders request", http.StatusInternalServerError, w, err)
		return
	}
	if request.Status != models.FoundersRequestStatusPending {
		config.ErrorStatus("founders request has already been processed", http.StatusBadRequest, w, nil)
		return
	}

	code, err := a.generateUniqueCode(ctx)
	if err != nil {
		config.ErrorStatus("failed to generate a unique invite code", http.StatusInternalServerError, w, err)
		return
	}

	now := time.Now()
	expiresAt := now.Add(inviteCodeTTL)
	invite := models.InviteCode{
		ID:        primitive.NewObjectID(),
		Code:      code,
		Email:     request.Email,
		Phone:     request.Phone,
		RequestID: request.ID,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	_, err = a.ICDB.InsertOne(ctx, invite)
	if err != nil {
		config.ErrorStatus("failed to store invite code", http.StatusInternalServerError, w, err)
		return
	}

	// The code is durably issued at this point. The status flip is conditional on
	// the request still being pending, so a concurrent approval cannot flip twice;
	// a failed flip is reported as a warning rather than failing the approval,
	// since a stale status beats a duplicate code.
	warning := ""
	res, err := a.RDB.UpdateOne(ctx,
		bson.M{"_id": oid, "status": models.FoundersRequestStatusPending},
		bson.M{"$set": bson.M{"status": models.FoundersRequestStatusApproved}},
	)
	if err != nil || res == nil || res.MatchedCount == 0 {
		zap.S().Warnw("invite code issued but request status not updated",
			"requestId", body.RequestID,
			"code", code,
			"error", err,
		)
		warning = "invite code issued but the request status was not updated"
	}

	a.sendInviteEmail(ctx, request.FullName, request.Email, code, expiresAt)

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.ApproveFoundersRequestResponse{
		Success:   true,
		Code:      code,
		ExpiresAt: expiresAt,
		Warning:   warning,
	})
}

// generateUniqueCode draws candidate codes until one is unused, bounded at
// inviteCodeMaxAttempts. With 32^8 combinations a collision is already rare.
func (a Approval) generateUniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < inviteCodeMaxAttempts; attempt++ {
		code := newInviteCode()
		count, err := a.ICDB.CountDocuments(ctx, bson.M{"code": code})
		if err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
		zap.S().Warnw("invite code collision, regenerating", "attempt", attempt+1)
	}
	return "", fmt.Errorf("no unique invite code after %d attempts", inviteCodeMaxAttempts)
}

func newInviteCode() string {
	b := make([]byte, inviteCodeLength)
	for i := range b {
		b[i] = inviteCodeAlphabet[rand.Intn(len(inviteCodeAlphabet))]
	}
	return inviteCodePrefix + string(b)
}

// sendInviteEmail is best-effort: a failed send is logged and swallowed, the code
// has already been issued
func (a Approval) sendInviteEmail(ctx context.Context, fullName, email, code string, expiresAt time.Time) {
	expiresText := expiresAt.UTC().Format("January 2, 2006 at 3:04 PM MST")
	plain := fmt.Sprintf(
		"Your Founders Club invite code is %s. It is valid until %s. "+
			"Enter it during checkout on linkist.com to claim founder pricing, early feature access, "+
			"a founders badge and a direct line to the product team.",
		code, expiresText,
	)
	msg := mailer.Message{
		ToName:    fullName,
		ToEmail:   email,
		Subject:   "Your Founders Club Invite Code — Linkist",
		PlainText: plain,
		HTML:      templates.RenderInviteCodeEmail(fullName, code, expiresText, a.Config.PublicWebBaseURL),
	}
	if err := a.Mailer.Send(ctx, msg); err != nil {
		zap.S().Errorw("failed to send invite email", "email", email, "error", err)
	}
}
