package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"delivery_admin/internal/ability"
	"delivery_admin/internal/middleware"
	"delivery_admin/internal/models"
	"delivery_admin/internal/services"
)

type fixture struct {
	router *gin.Engine
	users  *services.UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Driver{},
		&models.CheckinRecord{},
	))

	users := services.NewUserService(db)
	customers := services.NewCustomerService(db)
	auth := services.NewAuthService(db, users, nil)

	r := gin.New()

	ac := NewAuthController(auth)
	r.POST("/api/auth/login", ac.Login)

	cc := NewCustomerController(customers)
	group := r.Group("/api/customers")
	group.Use(middleware.RequireAuth())
	group.POST("/", middleware.RequireAbility(ability.ActionCreate, ability.SubjectCustomer), cc.Create)
	group.GET("/", middleware.RequireAbility(ability.ActionRead, ability.SubjectCustomer), cc.List)
	group.DELETE("/:id", middleware.RequireAbility(ability.ActionDelete, ability.SubjectCustomer), cc.Delete)
	group.POST("/navigation", middleware.RequireAbility(ability.ActionRead, ability.SubjectCustomer), cc.Navigation)

	return &fixture{router: r, users: users}
}

func (f *fixture) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) seedUser(t *testing.T, username, userType string) string {
	t.Helper()
	user, err := f.users.Create(services.CreateUserInput{
		Username: username,
		Password: "password1",
		UserType: userType,
	})
	require.NoError(t, err)
	token, err := middleware.GenerateToken(user.ID, user.UserType)
	require.NoError(t, err)
	return token
}

func TestLoginEndpoint(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "boss", models.UserTypeAdmin)

	t.Run("success", func(t *testing.T) {
		w := f.request(t, http.MethodPost, "/api/auth/login", "",
			gin.H{"username": "boss", "password": "password1"})
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Data    struct {
				Token   string          `json:"token"`
				Profile json.RawMessage `json:"profile"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, http.StatusOK, body.Code)
		assert.NotEmpty(t, body.Data.Token)
		assert.NotContains(t, string(body.Data.Profile), "password")

		claims, err := middleware.ValidateToken(body.Data.Token)
		require.NoError(t, err)
		assert.Equal(t, models.UserTypeAdmin, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := f.request(t, http.MethodPost, "/api/auth/login", "",
			gin.H{"username": "boss", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := f.request(t, http.MethodPost, "/api/auth/login", "", gin.H{"username": "boss"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCustomerEndpointsAuthz(t *testing.T) {
	f := newFixture(t)
	adminToken := f.seedUser(t, "admin1", models.UserTypeAdmin)
	driverToken := f.seedUser(t, "driver1", models.UserTypeDriver)

	t.Run("no token", func(t *testing.T) {
		w := f.request(t, http.MethodGet, "/api/customers/", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("driver cannot create customers", func(t *testing.T) {
		w := f.request(t, http.MethodPost, "/api/customers/", driverToken,
			gin.H{"customer_name": "forbidden mart"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin creates customer with number", func(t *testing.T) {
		w := f.request(t, http.MethodPost, "/api/customers/", adminToken,
			gin.H{"customer_name": "首家超市", "longitude": 116.404, "latitude": 39.915})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"customer_number":"C001"`)
	})

	t.Run("delete missing id is a no-op", func(t *testing.T) {
		w := f.request(t, http.MethodDelete, "/api/customers/999", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":null`)
	})

	t.Run("navigation with unknown ids", func(t *testing.T) {
		w := f.request(t, http.MethodPost, "/api/customers/navigation", adminToken,
			gin.H{"ids": []uint{777}})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("navigation for existing customer", func(t *testing.T) {
		w := f.request(t, http.MethodPost, "/api/customers/navigation", adminToken,
			gin.H{"ids": []uint{1}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "uri.amap.com/navigation?to=116.404,39.915")
	})
}
