package cron

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"dancehub-backend/middleware"
	"dancehub-backend/models"
	"dancehub-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	stripe "github.com/stripe/stripe-go/v82"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func setupCronRouter() *gin.Engine {
	r := testutils.SetupTestRouter()
	r.GET("/cron/process-community-openings", middleware.CronAuth(), ProcessCommunityOpenings)
	return r
}

func cronRequest(secret string) (*httptest.ResponseRecorder, *http.Request) {
	req, _ := http.NewRequest(http.MethodGet, "/cron/process-community-openings", nil)
	if secret != "" {
		req.Header.Set("Authorization", "Bearer "+secret)
	}
	return httptest.NewRecorder(), req
}

func openableCommunityRows(mock sqlmock.Sqlmock) *sqlmock.Rows {
	openingDate := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return mock.NewRows([]string{"id", "slug", "name", "status", "opening_date", "stripe_account_id", "stripe_price_id"}).
		AddRow("community-uuid", "studio-x", "Studio X", string(models.CommunityPreRegistration), openingDate, "acct_1", "price_1")
}

func TestProcessCommunityOpenings_Unauthorized(t *testing.T) {
	t.Setenv("CRON_SECRET", "topsecret")

	r := setupCronRouter()

	resp, req := cronRequest("")
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp, req = cronRequest("wrong-secret")
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestProcessCommunityOpenings_OpensCommunity(t *testing.T) {
	t.Setenv("CRON_SECRET", "topsecret")

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	restore := testutils.SwapPayments(&testutils.FakePayments{
		GetSubscriptionFn: func(id string, stripeAccount string) (*stripe.Subscription, error) {
			assert.Equal(t, "sub_1", id)
			return &stripe.Subscription{ID: id, Status: stripe.SubscriptionStatusActive}, nil
		},
	})
	defer restore()

	mock.ExpectQuery(`SELECT \* FROM "communities" WHERE status = \$1 AND opening_date IS NOT NULL AND opening_date <= \$2`).
		WillReturnRows(openableCommunityRows(mock))
	mock.ExpectQuery(`SELECT \* FROM "memberships" WHERE community_id = \$1 AND status = \$2`).
		WillReturnRows(mock.NewRows([]string{"id", "community_id", "user_id", "status", "stripe_subscription_id"}).
			AddRow("membership-uuid", "community-uuid", "user-uuid", string(models.MembershipPreRegistered), "sub_1"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "communities" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "email"}).AddRow("user-uuid", "u1@example.com"))

	r := setupCronRouter()
	resp, req := cronRequest("topsecret")
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Message   string            `json:"message"`
		Processed int               `json:"processed"`
		Results   []CommunityResult `json:"results"`
	}
	json.Unmarshal(resp.Body.Bytes(), &body)

	assert.Equal(t, 1, body.Processed)
	assert.Len(t, body.Results, 1)
	assert.True(t, body.Results[0].Success)
	assert.Equal(t, "Studio X", body.Results[0].CommunityName)
	assert.Equal(t, 1, body.Results[0].MembersProcessed)
	assert.Equal(t, 1, body.Results[0].SuccessCount)
	assert.Equal(t, 0, body.Results[0].FailCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessCommunityOpenings_MissingSubscriptionDeactivatesMember(t *testing.T) {
	t.Setenv("CRON_SECRET", "topsecret")

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	restore := testutils.SwapPayments(&testutils.FakePayments{})
	defer restore()

	mock.ExpectQuery(`SELECT \* FROM "communities" WHERE status = \$1 AND opening_date IS NOT NULL AND opening_date <= \$2`).
		WillReturnRows(openableCommunityRows(mock))
	mock.ExpectQuery(`SELECT \* FROM "memberships" WHERE community_id = \$1 AND status = \$2`).
		WillReturnRows(mock.NewRows([]string{"id", "community_id", "user_id", "status", "stripe_subscription_id"}).
			AddRow("membership-uuid", "community-uuid", "user-uuid", string(models.MembershipPreRegistered), ""))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "memberships" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "communities" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := setupCronRouter()
	resp, req := cronRequest("topsecret")
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Processed int               `json:"processed"`
		Results   []CommunityResult `json:"results"`
	}
	json.Unmarshal(resp.Body.Bytes(), &body)

	// the community still opens even though the member failed
	assert.Equal(t, 1, body.Processed)
	assert.True(t, body.Results[0].Success)
	assert.Equal(t, 1, body.Results[0].FailCount)
	assert.Equal(t, 0, body.Results[0].SuccessCount)
	assert.Equal(t, "missing subscription id", body.Results[0].MemberResults[0].Reason)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessCommunityOpenings_UnexpectedStatusLeavesMemberUntouched(t *testing.T) {
	t.Setenv("CRON_SECRET", "topsecret")

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	restore := testutils.SwapPayments(&testutils.FakePayments{
		GetSubscriptionFn: func(id string, stripeAccount string) (*stripe.Subscription, error) {
			return &stripe.Subscription{ID: id, Status: stripe.SubscriptionStatusCanceled}, nil
		},
	})
	defer restore()

	mock.ExpectQuery(`SELECT \* FROM "communities" WHERE status = \$1 AND opening_date IS NOT NULL AND opening_date <= \$2`).
		WillReturnRows(openableCommunityRows(mock))
	mock.ExpectQuery(`SELECT \* FROM "memberships" WHERE community_id = \$1 AND status = \$2`).
		WillReturnRows(mock.NewRows([]string{"id", "community_id", "user_id", "status", "stripe_subscription_id"}).
			AddRow("membership-uuid", "community-uuid", "user-uuid", string(models.MembershipPreRegistered), "sub_1"))
	// no membership update is expected: the job does not guess
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "communities" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := setupCronRouter()
	resp, req := cronRequest("topsecret")
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Results []CommunityResult `json:"results"`
	}
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, 1, body.Results[0].FailCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessCommunityOpenings_SecondRunIsNoop(t *testing.T) {
	t.Setenv("CRON_SECRET", "topsecret")

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// once a community is ACTIVE it no longer matches the status filter
	mock.ExpectQuery(`SELECT \* FROM "communities" WHERE status = \$1 AND opening_date IS NOT NULL AND opening_date <= \$2`).
		WillReturnRows(mock.NewRows([]string{"id", "slug", "name", "status", "opening_date"}))

	r := setupCronRouter()
	resp, req := cronRequest("topsecret")
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Processed int `json:"processed"`
	}
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, 0, body.Processed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
