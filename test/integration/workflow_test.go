package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hromada/hromada-api/internal/auth"
	"github.com/hromada/hromada-api/internal/config"
	"github.com/hromada/hromada-api/internal/handler"
	"github.com/hromada/hromada-api/internal/mailer"
	"github.com/hromada/hromada-api/internal/server"
	"github.com/hromada/hromada-api/internal/service"
	"github.com/hromada/hromada-api/internal/storage"
	"github.com/hromada/hromada-api/pkg/logger"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.NewNop()
	repo, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: "8080",
			Host: "0.0.0.0",
		},
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret",
			SessionTTL: time.Hour,
			CookieName: "hromada_session",
		},
		RateLimit: config.RateLimitConfig{
			SubmissionsPerHour: 100,
			DonationsPerMinute: 100,
			ContactsPerMinute:  100,
		},
	}

	mail := mailer.NewNop()
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)

	submissionService := service.NewSubmissionService(repo, mail, log)
	reviewService := service.NewReviewService(repo, mail, log)
	projectService := service.NewProjectService(repo, log)
	donationService := service.NewDonationService(repo, mail, log)
	wireTransferService := service.NewWireTransferService(repo, log)
	contactService := service.NewContactService(repo, mail, log)
	userService := service.NewUserService(repo, log)
	newsletterService := service.NewNewsletterService(repo, log)

	seedUsers(t, userService)

	handlers := server.Handlers{
		Health:       handler.NewHealthHandler(),
		Auth:         handler.NewAuthHandler(userService, tokens, cfg.Auth.CookieName, log),
		Submission:   handler.NewSubmissionHandler(submissionService, reviewService, log),
		Partner:      handler.NewPartnerHandler(submissionService, log),
		Project:      handler.NewProjectHandler(projectService, log),
		Donation:     handler.NewDonationHandler(donationService, log),
		WireTransfer: handler.NewWireTransferHandler(wireTransferService, log),
		Contact:      handler.NewContactHandler(contactService, log),
		User:         handler.NewUserHandler(userService, log),
		Newsletter:   handler.NewNewsletterHandler(newsletterService, log),
	}

	srv := server.New(cfg, log, tokens, handlers)
	return httptest.NewServer(srv.Handler())
}

func seedUsers(t *testing.T, users service.UserService) {
	t.Helper()
	ctx := context.Background()

	accounts := []service.CreateUserInput{
		{Email: "admin@example.org", Password: "admin-pass-1", Name: "Admin", Role: "ADMIN"},
		{Email: "manager@example.org", Password: "manager-pass-1", Name: "Manager", Role: "NONPROFIT_MANAGER"},
		{Email: "partner@example.org", Password: "partner-pass-1", Name: "Partner", Role: "PARTNER"},
	}
	for _, in := range accounts {
		_, err := users.Create(ctx, in)
		require.NoError(t, err)
	}
}

// login returns a client whose cookie jar holds a session for the
// given account.
func login(t *testing.T, baseURL, email, password string) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	status, body := doJSON(t, client, http.MethodPost, baseURL+"/api/auth/login", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status, "login failed: %v", body)
	return client
}

func doJSON(t *testing.T, client *http.Client, method, url string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), "response was not JSON: %s", raw)
	}
	return resp.StatusCode, body
}

func submissionPayload() map[string]interface{} {
	return map[string]interface{}{
		"municipalityName":  "Kharkiv City Council",
		"municipalityEmail": "energy@kharkiv.gov.ua",
		"facilityName":      "Children's Hospital #5",
		"category":          "HOSPITAL",
		"projectType":       "solar",
		"briefDescription":  "Solar backup power for the ICU",
		"fullDescription":   "The hospital loses grid power during shelling and needs an independent supply.",
		"urgency":           "CRITICAL",
		"estimatedCostUsd":  "50000.50",
		"cityName":          "Kharkiv",
		"cityLatitude":      "49.9935",
		"cityLongitude":     "36.2304",
		"contactName":       "Olena Kovalenko",
		"contactEmail":      "o.kovalenko@kharkiv.gov.ua",
	}
}

func TestHealthCheck(t *testing.T) {
	srv := setupTestServer(t)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSubmissionReviewFlow(t *testing.T) {
	srv := setupTestServer(t)
	defer srv.Close()

	anon := &http.Client{}

	// Anyone can submit a project.
	status, body := doJSON(t, anon, http.MethodPost, srv.URL+"/api/projects/submissions", submissionPayload())
	require.Equal(t, http.StatusOK, status)
	submissionID := body["submissionId"].(string)
	require.NotEmpty(t, submissionID)

	// The review queue is admin-only.
	status, _ = doJSON(t, anon, http.MethodGet, srv.URL+"/api/projects/submissions", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	partner := login(t, srv.URL, "partner@example.org", "partner-pass-1")
	status, _ = doJSON(t, partner, http.MethodGet, srv.URL+"/api/projects/submissions", nil)
	assert.Equal(t, http.StatusForbidden, status)

	admin := login(t, srv.URL, "admin@example.org", "admin-pass-1")
	status, body = doJSON(t, admin, http.MethodGet, srv.URL+"/api/projects/submissions", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["submissions"], 1)

	// Approve publishes the project.
	status, body = doJSON(t, admin, http.MethodPatch, srv.URL+"/api/projects/submissions/"+submissionID, map[string]interface{}{
		"action": "approve",
	})
	require.Equal(t, http.StatusOK, status)
	projectID := body["projectId"].(string)
	assert.Equal(t, "Project approved and published", body["message"])

	// Approving again is rejected, not silently repeated.
	status, body = doJSON(t, admin, http.MethodPatch, srv.URL+"/api/projects/submissions/"+submissionID, map[string]interface{}{
		"action": "approve",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "already been processed")

	// The published project is publicly visible.
	status, body = doJSON(t, anon, http.MethodGet, srv.URL+"/api/projects/"+projectID, nil)
	require.Equal(t, http.StatusOK, status)
	project := body["project"].(map[string]interface{})
	assert.Equal(t, "OPEN", project["status"])
	assert.Equal(t, "Children's Hospital #5", project["facilityName"])
	assert.Equal(t, 50000.50, project["estimatedCostUsd"])
}

func TestRejectRequiresReason(t *testing.T) {
	srv := setupTestServer(t)
	defer srv.Close()

	anon := &http.Client{}
	status, body := doJSON(t, anon, http.MethodPost, srv.URL+"/api/projects/submissions", submissionPayload())
	require.Equal(t, http.StatusOK, status)
	submissionID := body["submissionId"].(string)

	admin := login(t, srv.URL, "admin@example.org", "admin-pass-1")

	status, _ = doJSON(t, admin, http.MethodPatch, srv.URL+"/api/projects/submissions/"+submissionID, map[string]interface{}{
		"action": "reject",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = doJSON(t, admin, http.MethodPatch, srv.URL+"/api/projects/submissions/"+submissionID, map[string]interface{}{
		"action":          "reject",
		"rejectionReason": "Outside program scope",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Submission rejected", body["message"])
}

func TestPartnerSelfService(t *testing.T) {
	srv := setupTestServer(t)
	defer srv.Close()

	partner := login(t, srv.URL, "partner@example.org", "partner-pass-1")

	status, body := doJSON(t, partner, http.MethodPost, srv.URL+"/api/partner/projects", submissionPayload())
	require.Equal(t, http.StatusOK, status)
	submissionID := body["submissionId"].(string)

	status, body = doJSON(t, partner, http.MethodGet, srv.URL+"/api/partner/projects", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["submissions"], 1)

	// Partners can edit their pending submissions; a numeric sent as a
	// raw JSON number coerces the same as a string.
	status, body = doJSON(t, partner, http.MethodPatch, srv.URL+"/api/partner/projects/"+submissionID, map[string]interface{}{
		"facilityName":     "Children's Hospital No. 5",
		"estimatedCostUsd": 75000,
	})
	require.Equal(t, http.StatusOK, status)
	updated := body["submission"].(map[string]interface{})
	assert.Equal(t, "Children's Hospital No. 5", updated["facilityName"])
	assert.Equal(t, 75000.0, updated["estimatedCostUsd"])

	// Review-only fields in a partner patch are silently dropped, never
	// applied.
	status, body = doJSON(t, partner, http.MethodPatch, srv.URL+"/api/partner/projects/"+submissionID, map[string]interface{}{
		"status":            "APPROVED",
		"submittedByUserId": "someone-else",
	})
	require.Equal(t, http.StatusOK, status)
	updated = body["submission"].(map[string]interface{})
	assert.Equal(t, "PENDING", updated["status"])
	assert.NotEqual(t, "someone-else", updated["submittedByUserId"])

	admin := login(t, srv.URL, "admin@example.org", "admin-pass-1")
	status, body = doJSON(t, admin, http.MethodPatch, srv.URL+"/api/projects/submissions/"+submissionID, map[string]interface{}{
		"action": "approve",
	})
	require.Equal(t, http.StatusOK, status)

	// Once reviewed, edits are refused.
	status, body = doJSON(t, partner, http.MethodPatch, srv.URL+"/api/partner/projects/"+submissionID, map[string]interface{}{
		"facilityName": "Too late",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "pending submissions")
}

func TestDonationLifecycle(t *testing.T) {
	srv := setupTestServer(t)
	defer srv.Close()

	anon := &http.Client{}

	status, body := doJSON(t, anon, http.MethodPost, srv.URL+"/api/donations/confirm", map[string]interface{}{
		"projectId":     "general",
		"paymentMethod": "wire",
		"donorName":     "Jane Smith",
		"donorEmail":    "jane@example.org",
		"amount":        "1000",
	})
	require.Equal(t, http.StatusCreated, status)
	donationID := body["donationId"].(string)
	assert.Equal(t, true, body["isNewDonor"])

	// A second confirmation from the same email is a returning donor.
	status, body = doJSON(t, anon, http.MethodPost, srv.URL+"/api/donations/confirm", map[string]interface{}{
		"projectId":     "general",
		"paymentMethod": "daf",
		"donorName":     "Jane Smith",
		"donorEmail":    "JANE@example.org",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, false, body["isNewDonor"])

	manager := login(t, srv.URL, "manager@example.org", "manager-pass-1")

	// PENDING_CONFIRMATION cannot jump straight to COMPLETED.
	status, body = doJSON(t, manager, http.MethodPatch, srv.URL+"/api/donations/"+donationID+"/status", map[string]interface{}{
		"status": "COMPLETED",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "cannot transition")

	for _, next := range []string{"RECEIVED", "FORWARDED", "COMPLETED"} {
		status, body = doJSON(t, manager, http.MethodPatch, srv.URL+"/api/donations/"+donationID+"/status", map[string]interface{}{
			"status": next,
		})
		require.Equal(t, http.StatusOK, status, "transition to %s: %v", next, body)
		donation := body["donation"].(map[string]interface{})
		assert.Equal(t, next, donation["status"])
	}
}

func TestDonorDonations(t *testing.T) {
	srv := setupTestServer(t)
	defer srv.Close()

	anon := &http.Client{}

	// A donation confirmed under an existing account's email lands in
	// that account's donation view.
	status, _ := doJSON(t, anon, http.MethodPost, srv.URL+"/api/donations/confirm", map[string]interface{}{
		"projectId":     "general",
		"paymentMethod": "wire",
		"donorName":     "Admin",
		"donorEmail":    "admin@example.org",
		"amount":        "2500",
		"internalNotes": "should never surface",
	})
	require.Equal(t, http.StatusCreated, status)

	status, _ = doJSON(t, anon, http.MethodGet, srv.URL+"/api/donor/donations", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	partner := login(t, srv.URL, "partner@example.org", "partner-pass-1")
	status, _ = doJSON(t, partner, http.MethodGet, srv.URL+"/api/donor/donations", nil)
	assert.Equal(t, http.StatusForbidden, status)

	admin := login(t, srv.URL, "admin@example.org", "admin-pass-1")
	status, body := doJSON(t, admin, http.MethodGet, srv.URL+"/api/donor/donations", nil)
	require.Equal(t, http.StatusOK, status)
	donations := body["donations"].([]interface{})
	require.Len(t, donations, 1)

	donation := donations[0].(map[string]interface{})
	assert.Equal(t, "General Fund", donation["projectName"])
	assert.Equal(t, 2500.0, donation["amount"])
	assert.Equal(t, "PENDING_CONFIRMATION", donation["status"])
	// The donor view never carries internal fields.
	_, present := donation["internalNotes"]
	assert.False(t, present)
	_, present = donation["donorEmail"]
	assert.False(t, present)
}

func TestWireTransferEndpoints(t *testing.T) {
	srv := setupTestServer(t)
	defer srv.Close()

	manager := login(t, srv.URL, "manager@example.org", "manager-pass-1")

	status, body := doJSON(t, manager, http.MethodPost, srv.URL+"/api/wire-transfers", map[string]interface{}{
		"referenceNumber": "WT-2026-001",
		"recipientName":   "Kharkiv City Council",
		"projectName":     "Children's Hospital #5",
		"amountUsd":       48000,
	})
	require.Equal(t, http.StatusOK, status)
	transfer := body["transfer"].(map[string]interface{})
	transferID := transfer["id"].(string)
	assert.Equal(t, "PENDING", transfer["status"])

	status, body = doJSON(t, manager, http.MethodPatch, srv.URL+"/api/wire-transfers/"+transferID+"/status", map[string]interface{}{
		"status": "INITIATED",
	})
	require.Equal(t, http.StatusOK, status)

	// Transfers are hidden from partners.
	partner := login(t, srv.URL, "partner@example.org", "partner-pass-1")
	status, _ = doJSON(t, partner, http.MethodGet, srv.URL+"/api/wire-transfers/list", nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestContactFlow(t *testing.T) {
	srv := setupTestServer(t)
	defer srv.Close()

	anon := &http.Client{}
	admin := login(t, srv.URL, "admin@example.org", "admin-pass-1")

	// Publish a project to ask about.
	status, body := doJSON(t, anon, http.MethodPost, srv.URL+"/api/projects/submissions", submissionPayload())
	require.Equal(t, http.StatusOK, status)
	status, body = doJSON(t, admin, http.MethodPatch, srv.URL+"/api/projects/submissions/"+body["submissionId"].(string), map[string]interface{}{
		"action": "approve",
	})
	require.Equal(t, http.StatusOK, status)
	projectID := body["projectId"].(string)

	status, body = doJSON(t, anon, http.MethodPost, srv.URL+"/api/contact", map[string]interface{}{
		"projectId": projectID,
		"name":      "Jane Smith",
		"email":     "jane@example.org",
		"message":   "We would like to fund this project.",
	})
	require.Equal(t, http.StatusOK, status)
	contactID := body["contactId"].(string)

	// An inquiry about an unknown project is a 404.
	status, _ = doJSON(t, anon, http.MethodPost, srv.URL+"/api/contact", map[string]interface{}{
		"projectId": "nonexistent",
		"name":      "Jane Smith",
		"email":     "jane@example.org",
		"message":   "Hello",
	})
	assert.Equal(t, http.StatusNotFound, status)

	// handled must be an explicit boolean.
	status, body = doJSON(t, admin, http.MethodPatch, srv.URL+"/api/contact/"+contactID, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "handled must be a boolean", body["error"])

	status, body = doJSON(t, admin, http.MethodPatch, srv.URL+"/api/contact/"+contactID, map[string]interface{}{
		"handled": true,
	})
	require.Equal(t, http.StatusOK, status)
	contact := body["contact"].(map[string]interface{})
	assert.Equal(t, true, contact["handled"])
}

func TestAuthSession(t *testing.T) {
	srv := setupTestServer(t)
	defer srv.Close()

	anon := &http.Client{}
	status, body := doJSON(t, anon, http.MethodGet, srv.URL+"/api/auth/status", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["authenticated"])

	status, _ = doJSON(t, anon, http.MethodPost, srv.URL+"/api/auth/login", map[string]interface{}{
		"email":    "admin@example.org",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	admin := login(t, srv.URL, "admin@example.org", "admin-pass-1")
	status, body = doJSON(t, admin, http.MethodGet, srv.URL+"/api/auth/status", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["authenticated"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "ADMIN", user["role"])

	status, _ = doJSON(t, admin, http.MethodPost, srv.URL+"/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, status)

	status, body = doJSON(t, admin, http.MethodGet, srv.URL+"/api/auth/status", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["authenticated"])
}

func TestNewsletterFlow(t *testing.T) {
	srv := setupTestServer(t)
	defer srv.Close()

	anon := &http.Client{}

	status, _ := doJSON(t, anon, http.MethodPost, srv.URL+"/api/newsletter", map[string]interface{}{
		"email": "donor@example.org",
	})
	require.Equal(t, http.StatusOK, status)

	admin := login(t, srv.URL, "admin@example.org", "admin-pass-1")
	status, body := doJSON(t, admin, http.MethodGet, srv.URL+"/api/admin/subscribers", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["subscribers"], 1)

	status, _ = doJSON(t, anon, http.MethodPost, srv.URL+"/api/newsletter/unsubscribe", map[string]interface{}{
		"email": "donor@example.org",
	})
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, anon, http.MethodPost, srv.URL+"/api/newsletter/unsubscribe", map[string]interface{}{
		"email": "never@example.org",
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUserManagement(t *testing.T) {
	srv := setupTestServer(t)
	defer srv.Close()

	admin := login(t, srv.URL, "admin@example.org", "admin-pass-1")

	status, body := doJSON(t, admin, http.MethodPost, srv.URL+"/api/admin/users", map[string]interface{}{
		"email":    "new-partner@example.org",
		"password": "secret-pass-1",
		"name":     "New Partner",
		"role":     "PARTNER",
	})
	require.Equal(t, http.StatusOK, status)
	user := body["user"].(map[string]interface{})
	userID := user["id"].(string)
	// Password material never leaves the server.
	_, leaked := user["passwordHash"]
	assert.False(t, leaked)

	status, _ = doJSON(t, admin, http.MethodPost, srv.URL+"/api/admin/users", map[string]interface{}{
		"email":    "new-partner@example.org",
		"password": "secret-pass-1",
		"name":     "Dup",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, body = doJSON(t, admin, http.MethodPatch, srv.URL+fmt.Sprintf("/api/admin/users/%s", userID), map[string]interface{}{
		"role": "NONPROFIT_MANAGER",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "NONPROFIT_MANAGER", body["user"].(map[string]interface{})["role"])

	status, _ = doJSON(t, admin, http.MethodDelete, srv.URL+"/api/admin/users/"+userID, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, admin, http.MethodGet, srv.URL+"/api/admin/users/"+userID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
