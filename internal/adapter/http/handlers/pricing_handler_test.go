package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinica_billing/internal/adapter/http/handlers/mocks"
	"clinica_billing/internal/domain/entities"
	"clinica_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPricingRouter(h *PricingHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/pricing/resolve", h.ResolvePrice)
	r.POST("/v1/pricing/resolve/batch", h.ResolvePriceBatch)
	r.POST("/v1/pricing/clinic-prices", h.SetClinicPrice)
	r.POST("/v1/pricing/default-prices", h.SetDefaultPrice)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPricingHandler_ResolvePrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		w := doJSON(t, r, "/v1/pricing/resolve", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed service date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		w := doJSON(t, r, "/v1/pricing/resolve", `{"clinic_id":"C1","code":"80053","service_date":"10/03/2026"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase invalid input maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		uc.EXPECT().Resolve(gomock.Any(), "C1", "80053", gomock.Any()).
			Return(entities.ResolutionResult{}, usecase.ErrInvalidCode)

		w := doJSON(t, r, "/v1/pricing/resolve", `{"clinic_id":"C1","code":"80053","service_date":"2026-03-10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		serviceDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().Resolve(gomock.Any(), "C1", "80053", serviceDate).
			Return(entities.ResolutionResult{
				Price:      58.00,
				Source:     entities.SourceOrganizationDefault,
				Confidence: entities.ConfidenceHigh,
				Note:       "price record d1 effective from 2024-01-01",
			}, nil)

		w := doJSON(t, r, "/v1/pricing/resolve", `{"clinic_id":"C1","code":"80053","service_date":"2026-03-10"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body["price"] != 58.00 || body["source"] != "organization_default" || body["confidence"] != "high" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestPricingHandler_ResolvePriceBatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success with per-code entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		uc.EXPECT().ResolveBatch(gomock.Any(), "C1", []string{"80053", "99999"}, gomock.Any()).
			Return(map[string]entities.ResolutionResult{
				"80053": {Price: 58.00, Source: entities.SourceClinicOverride, Confidence: entities.ConfidenceHigh},
				"99999": {Price: 0, Source: entities.SourceSuggestedEstimate, Confidence: entities.ConfidenceLow, Note: "no price data found for this code; needs manual pricing"},
			}, nil)

		w := doJSON(t, r, "/v1/pricing/resolve/batch", `{"clinic_id":"C1","codes":["80053","99999"],"service_date":"2026-03-10"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var body struct {
			Results map[string]struct {
				Price      float64 `json:"price"`
				Confidence string  `json:"confidence"`
			} `json:"results"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if len(body.Results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(body.Results))
		}
		if body.Results["99999"].Confidence != "low" {
			t.Fatalf("expected low confidence fallback entry, got %+v", body.Results["99999"])
		}
	})

	t.Run("missing codes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		w := doJSON(t, r, "/v1/pricing/resolve/batch", `{"clinic_id":"C1","service_date":"2026-03-10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPricingHandler_SetClinicPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("zero price is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		uc.EXPECT().SetClinicPrice(gomock.Any(), "C1", "80053", 0.0, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)).
			Return(nil)

		w := doJSON(t, r, "/v1/pricing/clinic-prices", `{"clinic_id":"C1","code":"80053","price":0,"effective_from":"2026-03-10"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("store failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		uc.EXPECT().SetClinicPrice(gomock.Any(), "C1", "80053", 62.50, gomock.Any()).
			Return(errors.New("insert price record: store down"))

		w := doJSON(t, r, "/v1/pricing/clinic-prices", `{"clinic_id":"C1","code":"80053","price":62.50,"effective_from":"2026-03-10"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("missing price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		w := doJSON(t, r, "/v1/pricing/clinic-prices", `{"clinic_id":"C1","code":"80053","effective_from":"2026-03-10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPricingHandler_SetDefaultPrice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		uc.EXPECT().SetOrganizationDefaultPrice(gomock.Any(), "80053", 60.00, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)).
			Return(nil)

		w := doJSON(t, r, "/v1/pricing/default-prices", `{"code":"80053","price":60,"effective_from":"2026-03-10"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}

		var body struct {
			ScopeID string `json:"scope_id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if body.ScopeID != entities.OrganizationDefaultScopeID {
			t.Fatalf("expected sentinel scope, got %s", body.ScopeID)
		}
	})

	t.Run("usecase invalid code maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		r := newPricingRouter(NewPricingHandler(uc))

		uc.EXPECT().SetOrganizationDefaultPrice(gomock.Any(), "x", 60.00, gomock.Any()).
			Return(usecase.ErrInvalidCode)

		w := doJSON(t, r, "/v1/pricing/default-prices", `{"code":"x","price":60,"effective_from":"2026-03-10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
