package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/linkist/founders-club-api/models"
)

// Config holds the project config values
type Config struct {
	URL              string
	DatabaseName     string
	BaseURL          string
	Port             string
	SendgridAPIKey   string
	MailFromName     string
	MailFromAddress  string
	AdminDigestEmail string
	PublicWebBaseURL string
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:              os.Getenv("DB_URI"),
		DatabaseName:     os.Getenv("DB_NAME"),
		BaseURL:          os.Getenv("BASE_URL"),
		Port:             os.Getenv("PORT"),
		SendgridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		MailFromName:     getEnv("MAIL_FROM_NAME", "Linkist"),
		MailFromAddress:  getEnv("MAIL_FROM_ADDRESS", "no-reply@linkist.com"),
		AdminDigestEmail: os.Getenv("ADMIN_DIGEST_EMAIL"),
		PublicWebBaseURL: getEnv("PUBLIC_WEB_BASE_URL", "https://www.linkist.com"),
	}

}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// given message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	errText := message
	if err != nil {
		errText = fmt.Sprintf("%s: %v", message, err)
	}
	w.WriteHeader(httpStatusCode)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Success: false, Error: errText})
}
