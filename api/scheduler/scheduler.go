package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/linkist/founders-club-api/config"
	"github.com/linkist/founders-club-api/databases"
	"github.com/linkist/founders-club-api/mailer"
	"github.com/linkist/founders-club-api/models"
	templates "github.com/linkist/founders-club-api/templates/html"
)

// jobTimeout bounds each background job's store and mail calls
const jobTimeout = time.Minute

// purgeAfter is how long past expiry an invite code is kept before cleanup.
// Expiry itself stays advisory; the redemption flow checks it.
const purgeAfter = 30 * 24 * time.Hour

// Scheduler handles periodic background jobs for the founders club workflow
type Scheduler struct {
	cron   *cron.Cron
	FRDB   databases.FoundersRequestDatabase
	ICDB   databases.InviteCodeDatabase
	Mailer mailer.Sender
	Conf   *config.Config
}

// New creates a new scheduler instance
func New(frDB databases.FoundersRequestDatabase, icDB databases.InviteCodeDatabase, sender mailer.Sender, conf *config.Config) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		FRDB:   frDB,
		ICDB:   icDB,
		Mailer: sender,
		Conf:   conf,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Pending review digest daily at 8 AM UTC
	_, err := s.cron.AddFunc("0 8 * * *", s.SendPendingDigest)
	if err != nil {
		zap.S().Errorw("failed to register pending digest job", "error", err)
	}

	// Purge long-expired invite codes daily at 3 AM UTC
	_, err = s.cron.AddFunc("0 3 * * *", s.PurgeExpiredInviteCodes)
	if err != nil {
		zap.S().Errorw("failed to register invite code purge job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Founders club scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Founders club scheduler stopped")
}

// SendPendingDigest emails the configured admin address a summary of requests
// waiting for review. Skipped when nothing is pending or no address is set.
func (s *Scheduler) SendPendingDigest() {
	if s.Conf.AdminDigestEmail == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	count, err := s.FRDB.CountDocuments(ctx, bson.M{"status": models.FoundersRequestStatusPending})
	if err != nil {
		zap.S().Errorw("failed to count pending founders requests", "error", err)
		return
	}
	if count == 0 {
		zap.S().Debug("no pending founders requests, skipping digest")
		return
	}

	consoleLink := strings.TrimRight(s.Conf.PublicWebBaseURL, "/") + "/admin/founders"
	msg := mailer.Message{
		ToEmail:   s.Conf.AdminDigestEmail,
		Subject:   fmt.Sprintf("Founders Club: %d request(s) pending review", count),
		PlainText: fmt.Sprintf("There are %d founders club request(s) waiting for review: %s", count, consoleLink),
		HTML:      templates.RenderPendingDigest(count, consoleLink),
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		zap.S().Errorw("failed to send pending digest", "error", err)
		return
	}
	zap.S().Infow("pending digest sent", "pending", count, "to", s.Conf.AdminDigestEmail)
}

// PurgeExpiredInviteCodes deletes invite codes whose expiry is long past
func (s *Scheduler) PurgeExpiredInviteCodes() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	cutoff := time.Now().Add(-purgeAfter)
	deleted, err := s.ICDB.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lt": cutoff}})
	if err != nil {
		zap.S().Errorw("failed to purge expired invite codes", "error", err)
		return
	}
	if deleted > 0 {
		zap.S().Infow("purged expired invite codes", "count", deleted)
	}
}
