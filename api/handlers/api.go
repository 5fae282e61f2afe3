package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linkist/founders-club-api/api"
	"github.com/linkist/founders-club-api/api/scheduler"
	"github.com/linkist/founders-club-api/config"
	"github.com/linkist/founders-club-api/databases"
	"github.com/linkist/founders-club-api/mailer"
	"github.com/linkist/founders-club-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Mailer    mailer.Sender
	Metrics   *api.MetricsCollector
	dbHelper  databases.DatabaseHelper
	scheduler *scheduler.Scheduler
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()
	r.Use(api.MetricsMiddleware(a.Metrics))
	r.Use(api.TimeoutMiddleware(30 * time.Second))

	fr := FoundersRequest{DB: databases.NewFoundersRequestDatabase(a.dbHelper)}
	ap := Approval{
		RDB:    databases.NewFoundersRequestDatabase(a.dbHelper),
		ICDB:   databases.NewInviteCodeDatabase(a.dbHelper),
		Mailer: a.Mailer,
		Config: a.Config,
	}
	ic := InviteCode{DB: databases.NewInviteCodeDatabase(a.dbHelper)}
	adm := Admin{
		ADB:    databases.NewAdminDatabase(a.dbHelper),
		RDB:    databases.NewAdminResetDatabase(a.dbHelper),
		FRDB:   databases.NewFoundersRequestDatabase(a.dbHelper),
		Mailer: a.Mailer,
		Config: a.Config,
	}
	m := Metrics{Collector: a.Metrics}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	r.Handle("/founders/request", http.HandlerFunc(fr.CreateFoundersRequestHandler)).Methods("POST")
	r.Handle("/founders/request", http.HandlerFunc(fr.FoundersRequestStatusHandler)).Methods("GET")
	r.Handle("/founders/approve", api.AdminMiddleware(http.HandlerFunc(ap.ApproveFoundersRequestHandler))).Methods("POST")
	r.Handle("/founders/invite-code", http.HandlerFunc(ic.InviteCodeByCodeHandler)).Methods("GET")

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/admin/login", http.HandlerFunc(adm.AdminLoginHandler)).Methods("POST")
	apiCreate.Handle("/admin/forgot-password", http.HandlerFunc(adm.AdminForgotPasswordHandler)).Methods("POST")
	apiCreate.Handle("/admin/reset-password", http.HandlerFunc(adm.AdminResetPasswordHandler)).Methods("POST")
	apiCreate.Handle("/admin/founders/requests", api.AdminMiddleware(http.HandlerFunc(adm.ListFoundersRequestsHandler))).Methods("GET")
	apiCreate.Handle("/admin/metrics", api.AdminMiddleware(http.HandlerFunc(m.MetricsHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("founders-club-api has connected to the database")

	if err := databases.EnsureHeadAdmin(a.dbHelper); err != nil {
		zap.S().With(err).Warn("failed to bootstrap head admin")
	}

	// store and mail clients are built once here and handed to the handlers
	a.Mailer = mailer.NewSendgridSender(&a.Config)
	a.Metrics = api.NewMetricsCollector()

	a.scheduler = scheduler.New(
		databases.NewFoundersRequestDatabase(a.dbHelper),
		databases.NewInviteCodeDatabase(a.dbHelper),
		a.Mailer,
		&a.Config,
	)
	a.scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
