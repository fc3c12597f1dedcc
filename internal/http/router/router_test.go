package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agrimarket/negotiation-api/internal/auth"
	"github.com/agrimarket/negotiation-api/internal/config"
	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/http/handler"
	"github.com/agrimarket/negotiation-api/internal/http/middleware"
	"github.com/agrimarket/negotiation-api/internal/http/router"
	"github.com/agrimarket/negotiation-api/internal/repository"
	"github.com/agrimarket/negotiation-api/internal/service"
	"github.com/agrimarket/negotiation-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testAPIKey    = "back-office-key"
	testJWTSecret = "router-test-secret"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	settings := service.DefaultSettings()

	cfg := &config.Config{
		App:       config.AppConfig{Name: "test", Environment: "development", Port: 8080},
		Auth:      config.AuthConfig{JWTSecret: testJWTSecret, APIKey: testAPIKey},
		Server:    config.ServerConfig{RequestTimeout: 30},
		RateLimit: config.RateLimitConfig{Enabled: false, RequestsPerMinute: 100, RequestsPerMinuteAuth: 100},
	}

	campaignRepo := repository.NewCampaignRepository(db)
	bidRepo := repository.NewBidRepository(db)
	contractRepo := repository.NewContractRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	campaignService := service.NewCampaignService(campaignRepo, bidRepo, settings, logger)
	contractService := service.NewContractService(db, contractRepo, repository.NewContractStageEventRepository(db), notificationRepo, settings, logger)
	negotiationService := service.NewNegotiationService(db, campaignRepo, bidRepo, repository.NewBidEventRepository(db), notificationRepo, contractService, settings, logger)
	projectionService := service.NewProjectionService(campaignRepo, bidRepo, contractRepo, logger)
	notificationService := service.NewNotificationService(notificationRepo, settings, logger)

	rt := router.NewRouter(
		cfg,
		logger,
		db,
		auth.NewMiddleware(&cfg.Auth, logger),
		middleware.NewRateLimiter(&cfg.RateLimit, logger),
		handler.NewCampaignHandler(campaignService, negotiationService, projectionService, logger),
		handler.NewBidHandler(negotiationService, contractService, logger),
		handler.NewContractHandler(contractService, logger),
		handler.NewPartyHandler(projectionService, logger),
		handler.NewNotificationHandler(notificationService, logger),
	)
	return rt.Setup()
}

func TestRouter_Health(t *testing.T) {
	h := newTestHandler(t)

	for _, path := range []string{"/health", "/health/db", "/health/ready"} {
		t.Run(path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_RequiresAuthentication(t *testing.T) {
	h := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns", nil)
	req.Header.Set(auth.HeaderAPIKey, "wrong")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRouter_NegotiationFlow(t *testing.T) {
	h := newTestHandler(t)

	token, err := auth.IssueToken(testJWTSecret, "", &auth.PartyContext{
		PartyID:     "buyer-1",
		Role:        domain.PartyRoleBuyer,
		DisplayName: "Punjab Mills",
	}, time.Hour)
	require.NoError(t, err)

	asBuyer := func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	asFarmer := func(req *http.Request) {
		req.Header.Set(auth.HeaderAPIKey, testAPIKey)
		req.Header.Set(auth.HeaderPartyID, "farmer-1")
		req.Header.Set(auth.HeaderPartyRole, "farmer")
	}
	send := func(as func(*http.Request), method, path string, body interface{}) *httptest.ResponseRecorder {
		raw, _ := json.Marshal(body)
		req := httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		as(req)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	rr := send(asBuyer, http.MethodPost, "/api/v1/campaigns", map[string]interface{}{
		"title":     "Basmati for export",
		"crop":      "Rice",
		"location":  "Karnal",
		"startDate": "2026-11-01T00:00:00Z",
		"endDate":   "2026-12-15T00:00:00Z",
		"quantity":  200,
		"unit":      "quintal",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var campaign domain.CampaignDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &campaign))
	assert.Equal(t, "Punjab Mills", campaign.CreatorName)

	rr = send(asFarmer, http.MethodPost, "/api/v1/campaigns/"+campaign.ID.String()+"/bids", map[string]interface{}{
		"pricePerUnit": 4200,
		"quantity":     200,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var bid domain.BidDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bid))

	rr = send(asBuyer, http.MethodPost, "/api/v1/bids/"+bid.ID.String()+"/actions", map[string]interface{}{
		"action": "accept",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = send(asFarmer, http.MethodGet, "/api/v1/me/contracts", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var contracts []domain.ContractDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &contracts))
	require.Len(t, contracts, 1)
	assert.True(t, contracts[0].AgreedPrice.Equal(testutil.Dec("840000")))
}
