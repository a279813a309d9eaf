package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery_admin/internal/ability"
	"delivery_admin/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, models.UserTypeDriver)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, models.UserTypeDriver, claims.Role)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	claims := Claims{
		UserID: 1,
		Role:   models.UserTypeAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-the-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(forged)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	claims := Claims{
		UserID: 1,
		Role:   models.UserTypeAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	_, err = ValidateToken(expired)
	assert.Error(t, err)
}

func newAuthedRequest(t *testing.T, userID uint, role string) *http.Request {
	t.Helper()
	token, err := GenerateToken(userID, role)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c), "role": CurrentRole(c)})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(t, 7, models.UserTypeSales))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
	})
}

func TestRequireAbility(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(),
		RequireAbility(ability.ActionDelete, ability.SubjectUser),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("admin allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(t, 1, models.UserTypeAdmin))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("driver forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, newAuthedRequest(t, 2, models.UserTypeDriver))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
