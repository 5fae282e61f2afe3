package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.URL)
	assert.Equal(t, "test", conf.DatabaseName)
}

func TestNewDefaults(t *testing.T) {
	os.Unsetenv("MAIL_FROM_NAME")
	os.Unsetenv("MAIL_FROM_ADDRESS")
	conf := New()

	assert.Equal(t, "Linkist", conf.MailFromName)
	assert.Equal(t, "no-reply@linkist.com", conf.MailFromAddress)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "error it borked: bad request", body["error"])
}

func TestErrorStatusNilErr(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("store unavailable", http.StatusInternalServerError, rr, nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "store unavailable", body["error"])
}
