package courses

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"dancehub-backend/models"
	"dancehub-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

const courseID = "7f9d8b74-4f6e-4d4e-9b5a-0b2f4f6e1a2b"

func TestCreateCourse_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "communities" WHERE slug = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "slug", "name"}).
			AddRow("community-uuid", "studio-x", "Studio X"))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "courses" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(courseID))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/communities/:slug/courses", CreateCourse)

	jsonData, _ := json.Marshal(map[string]interface{}{
		"title":    "Salsa fundamentals",
		"position": 1,
	})
	req, _ := http.NewRequest(http.MethodPost, "/communities/studio-x/courses", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var body models.Course
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "community-uuid", body.CommunityID)
	assert.Equal(t, "Salsa fundamentals", body.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCourse_CommunityNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "communities" WHERE slug = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/communities/:slug/courses", CreateCourse)

	jsonData, _ := json.Marshal(map[string]interface{}{"title": "Salsa fundamentals"})
	req, _ := http.NewRequest(http.MethodPost, "/communities/missing/courses", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetCourse_InvalidID(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/courses/:courseId", GetCourse)

	req, _ := http.NewRequest(http.MethodGet, "/courses/not-a-uuid", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetCourse_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "courses" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "community_id", "title", "position"}).
			AddRow(courseID, "community-uuid", "Salsa fundamentals", 1))

	r := testutils.SetupTestRouter()
	r.GET("/courses/:courseId", GetCourse)

	req, _ := http.NewRequest(http.MethodGet, "/courses/"+courseID, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourse_RetriesBeforeNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// the lookup retries missing rows to absorb read-after-write lag
	mock.ExpectQuery(`SELECT \* FROM "courses" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(`SELECT \* FROM "courses" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(`SELECT \* FROM "courses" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/courses/:courseId", GetCourse)

	req, _ := http.NewRequest(http.MethodGet, "/courses/"+courseID, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCourse_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "courses" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "community_id", "title"}).
			AddRow(courseID, "community-uuid", "Salsa fundamentals"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "courses"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.DELETE("/courses/:courseId", DeleteCourse)

	req, _ := http.NewRequest(http.MethodDelete, "/courses/"+courseID, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
