//go:build unit

package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"coupon-admin/internal/domain/category"
	"coupon-admin/internal/domain/coupon"
	"coupon-admin/internal/domain/store"
	"coupon-admin/internal/infra"
	"coupon-admin/internal/infra/backend"
	"coupon-admin/internal/pkg/config"
	"coupon-admin/internal/pkg/ptr"
	"coupon-admin/internal/pkg/requestid"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type recorded struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	handler  http.HandlerFunc
	last     *recorded
	calls    int
	client   *backend.Client
	registry *prometheus.Registry
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.last = nil
	s.calls = 0
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.calls++
		s.last = &recorded{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Header: r.Header.Clone(), Body: body}
		s.handler(w, r)
	}))

	s.registry = prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := backend.NewClient(
		config.BackendConfig{BaseURL: s.server.URL + "/api/", Timeout: 5 * time.Second},
		nil,
		backend.NewMetrics(s.registry),
		logger,
	)
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) respond(status int, body string) {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (s *ClientTestSuite) TestNewClientRejectsBadBaseURL() {
	_, err := backend.NewClient(config.BackendConfig{BaseURL: "not a url"}, nil, nil, nil)
	s.Error(err)
}

func (s *ClientTestSuite) TestFetchStores() {
	s.Run("success: returns stores", func() {
		s.respond(http.StatusOK, `{"stores":[{"_id":"s1","name":"Acme","trackingUrl":"https://acme.example","short_description":"Tools"}]}`)

		stores, err := s.client.FetchStores(s.T().Context())
		s.Require().NoError(err)
		s.Equal([]store.Store{{ID: "s1", Name: "Acme", TrackingURL: "https://acme.example", ShortDescription: "Tools"}}, stores)
		s.Equal(http.MethodGet, s.last.Method)
		s.Equal("/api/stores", s.last.Path)
		s.Equal("application/json", s.last.Header.Get("Content-Type"))
		s.Empty(s.last.Header.Get("Authorization"))
	})

	s.Run("success: missing stores field yields empty slice", func() {
		s.respond(http.StatusOK, `{"status":"ok"}`)

		stores, err := s.client.FetchStores(s.T().Context())
		s.Require().NoError(err)
		s.NotNil(stores)
		s.Empty(stores)
	})

	s.Run("error: generic message when server gives none", func() {
		s.respond(http.StatusInternalServerError, `oops`)

		_, err := s.client.FetchStores(s.T().Context())
		s.Require().Error(err)
		s.True(infra.IsKind(err, infra.KindStatus))
		s.Equal("Failed to fetch stores", infra.Message(err, ""))
		s.False(backend.IsAborted(err))
	})

	s.Run("error: server message wins", func() {
		s.respond(http.StatusServiceUnavailable, `{"message":"maintenance"}`)

		_, err := s.client.FetchStores(s.T().Context())
		s.Equal("maintenance", infra.Message(err, ""))
	})

	s.Run("error: undecodable body", func() {
		s.respond(http.StatusOK, `{"stores":"nope"}`)

		_, err := s.client.FetchStores(s.T().Context())
		s.True(infra.IsKind(err, infra.KindDecode))
	})
}

func (s *ClientTestSuite) TestFetchStoresCancellation() {
	started := make(chan struct{})
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}

	ctx, cancel := context.WithCancel(s.T().Context())
	go func() {
		<-started
		cancel()
	}()

	_, err := s.client.FetchStores(ctx)
	s.Require().Error(err)
	s.True(backend.IsAborted(err))
	s.Equal(1.0, s.counter("fetch_stores", "aborted"))
}

func (s *ClientTestSuite) TestTransportFailure() {
	s.server.Close()

	_, err := s.client.FetchStores(s.T().Context())
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindTransport))
	s.False(backend.IsAborted(err))
	s.Equal("Failed to fetch stores", infra.Message(err, ""))
}

func (s *ClientTestSuite) TestCreateAndDeleteStore() {
	s.Run("create sends bearer token and body", func() {
		s.respond(http.StatusCreated, `{"data":{"_id":"s9","name":"Acme"}}`)

		created, err := s.client.CreateStore(s.T().Context(), store.CreateInput{Name: "Acme", TrackingURL: "https://acme.example", ShortDescription: "Tools"}, "tok")
		s.Require().NoError(err)
		s.Equal("s9", created.ID)
		s.Equal(http.MethodPost, s.last.Method)
		s.Equal("/api/stores", s.last.Path)
		s.Equal("Bearer tok", s.last.Header.Get("Authorization"))

		var sent map[string]any
		s.Require().NoError(json.Unmarshal(s.last.Body, &sent))
		s.Equal("Acme", sent["name"])
		s.Equal("https://acme.example", sent["trackingUrl"])
		s.Equal("Tools", sent["short_description"])
	})

	s.Run("create decodes a keyed body", func() {
		s.respond(http.StatusCreated, `{"store":{"_id":"s10","name":"Beta"}}`)

		created, err := s.client.CreateStore(s.T().Context(), store.CreateInput{Name: "Beta"}, "tok")
		s.Require().NoError(err)
		s.Equal("s10", created.ID)
	})

	s.Run("delete targets the id path", func() {
		s.respond(http.StatusOK, `{"message":"deleted"}`)

		s.Require().NoError(s.client.DeleteStore(s.T().Context(), "64b7f0c2e1a2b3c4d5e6f708", "tok"))
		s.Equal(http.MethodDelete, s.last.Method)
		s.Equal("/api/stores/64b7f0c2e1a2b3c4d5e6f708", s.last.Path)
		s.Equal("Bearer tok", s.last.Header.Get("Authorization"))
	})

	s.Run("delete unauthorized", func() {
		s.respond(http.StatusUnauthorized, `{"message":"Not authorized"}`)

		err := s.client.DeleteStore(s.T().Context(), "64b7f0c2e1a2b3c4d5e6f708", "bad")
		s.True(infra.IsKind(err, infra.KindUnauthorized))
		s.Equal("Not authorized", infra.Message(err, ""))
	})
}

func (s *ClientTestSuite) TestFetchCoupons() {
	s.Run("decodes denormalized store", func() {
		s.respond(http.StatusOK, `{"data":[{"_id":"c1","offerDetails":"10% off","active":true,"isValid":true,"featuredForHome":false,"store":{"_id":"s1","name":"Acme","trackingUrl":"https://acme.example"}}]}`)

		coupons, err := s.client.FetchCoupons(s.T().Context(), coupon.ListParams{})
		s.Require().NoError(err)
		want := []coupon.Coupon{{
			ID:           "c1",
			OfferDetails: "10% off",
			Active:       true,
			IsValid:      true,
			Store:        coupon.StoreRef{ID: "s1", Name: "Acme", TrackingURL: "https://acme.example"},
		}}
		if diff := cmp.Diff(want, coupons); diff != "" {
			s.Failf("coupons mismatch", "(-want +got):\n%s", diff)
		}
		s.Empty(s.last.Query)
	})

	s.Run("forwards set filters only", func() {
		s.respond(http.StatusOK, `{"data":[]}`)

		_, err := s.client.FetchCoupons(s.T().Context(), coupon.ListParams{
			Filter: coupon.Filter{Store: "s1", IsValid: true},
			Page:   2,
		})
		s.Require().NoError(err)
		want := url.Values{"store": {"s1"}, "isValid": {"true"}, "page": {"2"}}
		if diff := cmp.Diff(want, s.last.Query); diff != "" {
			s.Failf("query mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("blank and date-only expirations do not fail the list", func() {
		s.respond(http.StatusOK, `{"data":[`+
			`{"_id":"c1","offerDetails":"10% off","store":"s1","expirationDate":""},`+
			`{"_id":"c2","offerDetails":"20% off","store":"s1","expirationDate":"2025-12-31"},`+
			`{"_id":"c3","offerDetails":"30% off","store":"s1","expirationDate":"2025-12-31T18:30:00.000Z"}]}`)

		coupons, err := s.client.FetchCoupons(s.T().Context(), coupon.ListParams{})
		s.Require().NoError(err)
		want := []coupon.Coupon{
			{ID: "c1", OfferDetails: "10% off", Store: coupon.StoreRef{ID: "s1"}},
			{ID: "c2", OfferDetails: "20% off", Store: coupon.StoreRef{ID: "s1"}, ExpirationDate: ptr.Of(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))},
			{ID: "c3", OfferDetails: "30% off", Store: coupon.StoreRef{ID: "s1"}, ExpirationDate: ptr.Of(time.Date(2025, 12, 31, 18, 30, 0, 0, time.UTC))},
		}
		if diff := cmp.Diff(want, coupons); diff != "" {
			s.Failf("coupons mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("missing data yields empty slice", func() {
		s.respond(http.StatusOK, `{}`)

		coupons, err := s.client.FetchCoupons(s.T().Context(), coupon.ListParams{})
		s.Require().NoError(err)
		s.NotNil(coupons)
		s.Empty(coupons)
	})
}

func (s *ClientTestSuite) TestCouponMutations() {
	s.Run("create", func() {
		s.respond(http.StatusCreated, `{"data":{"_id":"c2","offerDetails":"50% off","store":"s1"}}`)

		created, err := s.client.CreateCoupon(s.T().Context(), coupon.CreateInput{OfferDetails: "50% off", Store: "s1", Active: true}, "tok")
		s.Require().NoError(err)
		s.Equal("c2", created.ID)
		s.Equal("s1", created.Store.ID)
		s.Equal("Bearer tok", s.last.Header.Get("Authorization"))
	})

	s.Run("create failure uses fallback", func() {
		s.respond(http.StatusBadRequest, `{}`)

		_, err := s.client.CreateCoupon(s.T().Context(), coupon.CreateInput{}, "tok")
		s.Equal("Failed to create coupon", infra.Message(err, ""))
	})

	s.Run("delete", func() {
		s.respond(http.StatusNoContent, ``)

		s.Require().NoError(s.client.DeleteCoupon(s.T().Context(), "64b7f0c2e1a2b3c4d5e6f708", "tok"))
		s.Equal(http.MethodDelete, s.last.Method)
		s.Equal("/api/coupons/64b7f0c2e1a2b3c4d5e6f708", s.last.Path)
	})

	s.Run("delete missing coupon", func() {
		s.respond(http.StatusNotFound, `{"message":"Coupon not found"}`)

		err := s.client.DeleteCoupon(s.T().Context(), "64b7f0c2e1a2b3c4d5e6f708", "tok")
		s.True(infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("track needs no token", func() {
		s.respond(http.StatusOK, `{"hits":4}`)

		s.Require().NoError(s.client.TrackCoupon(s.T().Context(), "64b7f0c2e1a2b3c4d5e6f708"))
		s.Equal(http.MethodPost, s.last.Method)
		s.Equal("/api/coupons/64b7f0c2e1a2b3c4d5e6f708/track", s.last.Path)
		s.Empty(s.last.Header.Get("Authorization"))
	})
}

func (s *ClientTestSuite) TestFetchCategories() {
	s.Run("defaults page and limit, omits active", func() {
		s.respond(http.StatusOK, `{"data":{"categories":[{"_id":"k1","name":"Fashion","active":true,"order":2}],"totalCategories":1,"currentPage":1,"totalPages":1}}`)

		page, err := s.client.FetchCategories(s.T().Context(), category.ListParams{})
		s.Require().NoError(err)
		s.Equal(url.Values{"page": {"1"}, "limit": {"50"}}, s.last.Query)
		s.Equal(&category.Page{
			Categories:      []category.Category{{ID: "k1", Name: "Fashion", Active: true, Order: 2}},
			TotalCategories: 1,
			CurrentPage:     1,
			TotalPages:      1,
		}, page)
	})

	s.Run("sends active when set", func() {
		s.respond(http.StatusOK, `{"data":{"categories":[],"currentPage":2,"totalPages":2}}`)

		_, err := s.client.FetchCategories(s.T().Context(), category.ListParams{Page: 2, Limit: 10, Active: ptr.Of(false)})
		s.Require().NoError(err)
		s.Equal(url.Values{"page": {"2"}, "limit": {"10"}, "active": {"false"}}, s.last.Query)
	})

	s.Run("status error carries server message", func() {
		s.respond(http.StatusBadRequest, `{"message":"limit too large"}`)

		_, err := s.client.FetchCategories(s.T().Context(), category.ListParams{})
		s.Equal("limit too large", infra.Message(err, ""))
	})

	s.Run("missing envelope yields empty page", func() {
		s.respond(http.StatusOK, `{}`)

		page, err := s.client.FetchCategories(s.T().Context(), category.ListParams{Page: 3})
		s.Require().NoError(err)
		s.Equal(3, page.CurrentPage)
		s.NotNil(page.Categories)
	})
}

func (s *ClientTestSuite) TestCategoryLookupAndCreate() {
	s.respond(http.StatusOK, `{"data":{"_id":"k1","name":"Fashion"}}`)
	found, err := s.client.GetCategory(s.T().Context(), "64b7f0c2e1a2b3c4d5e6f708")
	s.Require().NoError(err)
	s.Equal("Fashion", found.Name)
	s.Equal("/api/categories/64b7f0c2e1a2b3c4d5e6f708", s.last.Path)

	s.respond(http.StatusCreated, `{"data":{"_id":"k2","name":"Travel","active":true}}`)
	created, err := s.client.CreateCategory(s.T().Context(), category.CreateInput{Name: "Travel"}, "tok")
	s.Require().NoError(err)
	s.Equal("k2", created.ID)
	s.Equal("Bearer tok", s.last.Header.Get("Authorization"))
}

func (s *ClientTestSuite) TestLogin() {
	s.Run("success", func() {
		s.respond(http.StatusOK, `{"token":"jwt-token"}`)

		token, err := s.client.Login(s.T().Context(), "admin@example.com", "secret123")
		s.Require().NoError(err)
		s.Equal("jwt-token", token)
		s.Equal("/api/auth/login", s.last.Path)
		s.JSONEq(`{"email":"admin@example.com","password":"secret123"}`, string(s.last.Body))
	})

	s.Run("server message", func() {
		s.respond(http.StatusUnauthorized, `{"message":"Incorrect email or password"}`)

		_, err := s.client.Login(s.T().Context(), "admin@example.com", "bad")
		s.Equal("Incorrect email or password", infra.Message(err, ""))
	})

	s.Run("fallback message", func() {
		s.respond(http.StatusInternalServerError, ``)

		_, err := s.client.Login(s.T().Context(), "admin@example.com", "bad")
		s.Equal("Login failed", infra.Message(err, ""))
	})

	s.Run("missing token", func() {
		s.respond(http.StatusOK, `{}`)

		_, err := s.client.Login(s.T().Context(), "admin@example.com", "secret123")
		s.True(infra.IsKind(err, infra.KindDecode))
	})
}

func (s *ClientTestSuite) TestForwardsRequestIDAndCountsCalls() {
	s.respond(http.StatusOK, `{"stores":[]}`)

	ctx := requestid.WithContext(s.T().Context(), "req-123")
	_, err := s.client.FetchStores(ctx)
	s.Require().NoError(err)
	s.Equal("req-123", s.last.Header.Get(requestid.Header))
	s.Equal(1.0, s.counter("fetch_stores", "200"))

	count, err := promtest.GatherAndCount(s.registry, "coupon_admin_backend_requests_total")
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *ClientTestSuite) counter(op, code string) float64 {
	mfs, err := s.registry.Gather()
	s.Require().NoError(err)
	for _, mf := range mfs {
		if mf.GetName() != "coupon_admin_backend_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["operation"] == op && labels["code"] == code {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}
