package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"dancehub-backend/testutils"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func postJSON(t *testing.T, path string, body map[string]string) (*httptest.ResponseRecorder, *http.Request) {
	jsonData, err := json.Marshal(body)
	assert.NoError(t, err)

	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	return httptest.NewRecorder(), req
}

func TestCreateUser_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("user-uuid"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/register", CreateUser)

	resp, req := postJSON(t, "/register", map[string]string{
		"email":    "u1@example.com",
		"password": "Password1",
		"username": "u1",
	})
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "User created successfully", body["message"])
	assert.Equal(t, "u1@example.com", body["email"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/register", CreateUser)

	resp, req := postJSON(t, "/register", map[string]string{
		"email":    "not-an-email",
		"password": "Password1",
	})
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "Invalid email format", body["error"])
}

func TestCreateUser_EmptyEmail(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/register", CreateUser)

	resp, req := postJSON(t, "/register", map[string]string{
		"password": "Password1",
	})
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "The email cannot be empty", body["error"])
}

func TestCreateUser_WeakPassword(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/register", CreateUser)

	resp, req := postJSON(t, "/register", map[string]string{
		"email":    "u1@example.com",
		"password": "password",
	})
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.Equal(t, "The password must contain at least one lowercase, one uppercase and one digit", body["error"])
}

func TestCreateUser_EmailAlreadyUsed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "email"}).AddRow("user-uuid", "u1@example.com"))

	r := testutils.SetupTestRouter()
	r.POST("/register", CreateUser)

	resp, req := postJSON(t, "/register", map[string]string{
		"email":    "u1@example.com",
		"password": "Password1",
	})
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "email", "password", "role"}).
			AddRow("user-uuid", "u1@example.com", string(hash), "USER"))

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	resp, req := postJSON(t, "/login", map[string]string{
		"email":    "u1@example.com",
		"password": "Password1",
	})
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body map[string]string
	json.Unmarshal(resp.Body.Bytes(), &body)
	assert.NotEmpty(t, body["token"])
}

func TestLogin_WrongPassword(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "email", "password", "role"}).
			AddRow("user-uuid", "u1@example.com", string(hash), "USER"))

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	resp, req := postJSON(t, "/login", map[string]string{
		"email":    "u1@example.com",
		"password": "WrongPassword1",
	})
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	resp, req := postJSON(t, "/login", map[string]string{
		"email":    "missing@example.com",
		"password": "Password1",
	})
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
