package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/mmdatafocus/hatchery_backend/config"
	"github.com/mmdatafocus/hatchery_backend/handlers"
	"github.com/mmdatafocus/hatchery_backend/models"
	"github.com/mmdatafocus/hatchery_backend/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var (
	testRouter *gin.Engine
	testToken  string
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.RegisterValidations()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NamingStrategy: &schema.NamingStrategy{},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open test db: %v\n", err)
		os.Exit(1)
	}
	// A single connection keeps every session on the same in-memory store.
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	config.SetDB(db)
	models.MigrateTable()

	if err := seedTestUser(db); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed test user: %v\n", err)
		os.Exit(1)
	}

	testRouter = handlers.NewRouter(handlers.RouterConfig{Logger: config.GetLogger()})

	token, err := login("operator", "hatchery-pass")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to log in test user: %v\n", err)
		os.Exit(1)
	}
	testToken = token

	os.Exit(m.Run())
}

func seedTestUser(db *gorm.DB) error {
	hashed, err := utils.HashPassword("hatchery-pass")
	if err != nil {
		return err
	}
	active := true
	user := models.User{
		Username: "operator",
		Name:     "Test Operator",
		Password: string(hashed),
		IsActive: &active,
	}
	return db.Create(&user).Error
}

func login(username, password string) (string, error) {
	w := doJSON("POST", "/api/auth/token/", map[string]string{
		"username": username,
		"password": password,
	}, "")
	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login returned %d: %s", w.Code, w.Body.String())
	}
	var pair models.TokenPair
	if err := json.Unmarshal(w.Body.Bytes(), &pair); err != nil {
		return "", err
	}
	return pair.Access, nil
}

func doJSON(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func authed(method, path string, body interface{}) *httptest.ResponseRecorder {
	return doJSON(method, path, body, testToken)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func mustCreate(t *testing.T, path string, body interface{}) map[string]interface{} {
	t.Helper()
	w := authed("POST", path, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST %s returned %d: %s", path, w.Code, w.Body.String())
	}
	var created map[string]interface{}
	decodeBody(t, w, &created)
	return created
}

func recordID(t *testing.T, record map[string]interface{}) int {
	t.Helper()
	raw, ok := record["id"].(float64)
	if !ok {
		t.Fatalf("record has no numeric id: %v", record)
	}
	return int(raw)
}

func cleanTables(t *testing.T, tables ...string) {
	t.Helper()
	db := config.GetDB()
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to clean table %s: %v", table, err)
		}
	}
}
