package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/linkist/founders-club-api/api"
)

var a App

func executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	if expected != actual {
		t.Errorf("Expected response code %d. Got %d\n", expected, actual)
	}
}

func setupRouter() {
	a.Metrics = api.NewMetricsCollector()
	a.Router = a.New()
}

func TestUnknownRoute(t *testing.T) {
	setupRouter()
	req, _ := http.NewRequest("GET", "/asdf", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusNotFound, response.Code)
}

func TestHealthCheckRoute(t *testing.T) {
	setupRouter()
	req, _ := http.NewRequest("GET", "/health", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	if !strings.Contains(response.Body.String(), "alive") {
		t.Errorf("Expected 'alive' in the reponse. Got '%s'", response.Body.String())
	}
}

func TestApp_ApproveRouteUnauthorized(t *testing.T) {
	setupRouter()
	req, _ := http.NewRequest("POST", "/founders/approve", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}

func TestApp_AdminRequestsRouteUnauthorized(t *testing.T) {
	setupRouter()
	req, _ := http.NewRequest("GET", "/api/v1/admin/founders/requests", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}

func TestApp_AdminMetricsRouteUnauthorized(t *testing.T) {
	setupRouter()
	req, _ := http.NewRequest("GET", "/api/v1/admin/metrics", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}
