package communities

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dancehub-backend/models"
	"dancehub-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCreateCommunity_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "communities" WHERE slug = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "communities" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("community-uuid"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/communities", CreateCommunity)

	jsonData, _ := json.Marshal(map[string]string{
		"name": "Studio X",
		"slug": "studio-x",
	})
	req, _ := http.NewRequest(http.MethodPost, "/communities", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var body models.Community
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "studio-x", body.Slug)
	// communities start their life closed
	assert.Equal(t, models.CommunityInactive, body.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCommunity_SlugConflict(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "communities" WHERE slug = \$1`).
		WillReturnRows(communityRows(mock))

	r := testutils.SetupTestRouter()
	r.POST("/communities", CreateCommunity)

	jsonData, _ := json.Marshal(map[string]string{
		"name": "Studio X",
		"slug": "studio-x",
	})
	req, _ := http.NewRequest(http.MethodPost, "/communities", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestGetCommunityBySlug_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "communities" WHERE slug = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/communities/:slug", GetCommunityBySlug)

	req, _ := http.NewRequest(http.MethodGet, "/communities/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateCommunity_RejectsReopeningPreRegistration(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	rows := mock.NewRows([]string{"id", "slug", "name", "status"}).
		AddRow("community-uuid", "studio-x", "Studio X", string(models.CommunityActive))
	mock.ExpectQuery(`SELECT \* FROM "communities" WHERE slug = \$1`).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.PUT("/communities/:slug", UpdateCommunity)

	jsonData, _ := json.Marshal(map[string]string{
		"status": string(models.CommunityPreRegistration),
	})
	req, _ := http.NewRequest(http.MethodPut, "/communities/studio-x", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "An active community cannot go back to pre-registration", body["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCommunity_SchedulesOpening(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	rows := mock.NewRows([]string{"id", "slug", "name", "status"}).
		AddRow("community-uuid", "studio-x", "Studio X", string(models.CommunityInactive))
	mock.ExpectQuery(`SELECT \* FROM "communities" WHERE slug = \$1`).
		WillReturnRows(rows)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "communities" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.PUT("/communities/:slug", UpdateCommunity)

	jsonData, _ := json.Marshal(map[string]string{
		"status":      string(models.CommunityPreRegistration),
		"openingDate": "2025-03-01T00:00:00Z",
	})
	req, _ := http.NewRequest(http.MethodPut, "/communities/studio-x", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
