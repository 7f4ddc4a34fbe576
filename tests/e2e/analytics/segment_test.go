//go:build e2e

package analytics_test

import (
	"net/http"
	"testing"
	"time"

	"closet-by-era/internal/domain/user"
	"closet-by-era/internal/handler/dto/response"
	"closet-by-era/tests/common/authtest"
	"closet-by-era/tests/common/dbtest"
	"closet-by-era/tests/common/httptest"
	"closet-by-era/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const segmentsURL = "/api/admin/analytics/segments"

type AnalyticsSuite struct {
	e2e.SharedSuite
}

func (s *AnalyticsSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAnalyticsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AnalyticsSuite))
}

func (s *AnalyticsSuite) TestSegments() {
	s.Run("Normal case: report scores customers with completed orders", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		now := time.Now()
		frequent := dbtest.CreateTestCustomer(t, s.DB, "Freya", "Quent", "freya@example.com")
		for i := 0; i < 5; i++ {
			dbtest.CreateTestOrder(t, s.DB, frequent, 200, "completed", now.AddDate(0, 0, -i*7))
		}

		lapsed := dbtest.CreateTestCustomer(t, s.DB, "Lars", "Olden", "lars@example.com")
		dbtest.CreateTestOrder(t, s.DB, lapsed, 40, "completed", now.AddDate(0, -10, 0))

		// Only pending orders: must not appear in the report at all
		browser := dbtest.CreateTestCustomer(t, s.DB, "Bree", "Window", "bree@example.com")
		dbtest.CreateTestOrder(t, s.DB, browser, 500, "pending", now)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, segmentsURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var report response.SegmentReportResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &report))

		require.Len(t, report.Customers, 2, "customers without completed orders are excluded")
		require.Len(t, report.Segments, 7, "every segment card is always present")
		require.False(t, report.GeneratedAt.IsZero())

		byEmail := make(map[string]response.CustomerRFMResponse)
		for _, c := range report.Customers {
			byEmail[c.Email] = c
		}
		require.Contains(t, byEmail, "freya@example.com")
		require.Contains(t, byEmail, "lars@example.com")
		require.NotContains(t, byEmail, "bree@example.com")

		require.Equal(t, 5, byEmail["freya@example.com"].Frequency)
		require.InDelta(t, 1000.0, byEmail["freya@example.com"].Monetary, 1e-9)
		require.Greater(t,
			byEmail["freya@example.com"].RScore,
			byEmail["lars@example.com"].RScore,
			"the recent buyer outranks the lapsed one on recency")

		total := 0
		for _, card := range report.Segments {
			total += card.Count
		}
		require.Equal(t, 2, total, "segment counts add up to the scored population")
	})

	s.Run("Normal case: empty store still returns all seven segments", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, segmentsURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var report response.SegmentReportResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &report))
		require.Empty(t, report.Customers)
		require.Len(t, report.Segments, 7)
		for _, card := range report.Segments {
			require.Equal(t, 0, card.Count)
			require.Zero(t, card.AvgMonetary)
			require.Zero(t, card.AvgFrequency)
		}
	})

	s.Run("Error case: requires an admin role", func() {
		t := s.T()

		customerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "shopper@example.com", string(user.RoleCustomer))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, segmentsURL, nil, customerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
