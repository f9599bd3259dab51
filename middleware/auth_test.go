package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"groomly/models"
	"groomly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

type fakeUserRepo struct {
	byTokenHash map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error)       { return nil, nil }
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }

func (f *fakeUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) {
	return f.byTokenHash[tokenHash], nil
}

func (f *fakeUserRepo) GetStylists() ([]models.User, error)        { return nil, nil }
func (f *fakeUserRepo) Create(user *models.User) error             { return nil }
func (f *fakeUserRepo) Update(user *models.User) error             { return nil }
func (f *fakeUserRepo) UpdateTokenHash(id, tokenHash string) error { return nil }
func (f *fakeUserRepo) Delete(id string) error                     { return nil }

func authRouter(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthMiddleware(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": UserID(c), "role": UserRole(c)})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	r := authRouter(&fakeUserRepo{})

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Basic abc").Code)
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	r := authRouter(&fakeUserRepo{})

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer not-a-token").Code)
}

func TestAuthMiddlewareResolvesUserFromStore(t *testing.T) {
	token, err := utils.GenerateToken("user-1", "u@example.com", models.RoleClient, time.Hour)
	require.NoError(t, err)

	repo := &fakeUserRepo{byTokenHash: map[string]*models.User{
		utils.HashToken(token): {ID: "user-1", Role: models.RoleClient},
	}}
	r := authRouter(repo)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), models.RoleClient)
}

func TestAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	// Sign-out clears the stored hash, so the lookup misses.
	token, err := utils.GenerateToken("user-1", "u@example.com", models.RoleClient, time.Hour)
	require.NoError(t, err)

	r := authRouter(&fakeUserRepo{})
	assert.Equal(t, http.StatusUnauthorized, doRequest(r, "Bearer "+token).Code)
}

func TestAuthMiddlewareFallsBackWhenSessionCacheDown(t *testing.T) {
	// An unreachable session cache must not block authentication; the
	// user store still answers.
	prev := utils.AuthCacheClient
	utils.AuthCacheClient = unreachableRedisClient()
	defer func() { utils.AuthCacheClient = prev }()

	token, err := utils.GenerateToken("user-1", "u@example.com", models.RoleStylist, time.Hour)
	require.NoError(t, err)

	repo := &fakeUserRepo{byTokenHash: map[string]*models.User{
		utils.HashToken(token): {ID: "user-1", Role: models.RoleStylist},
	}}
	r := authRouter(repo)

	assert.Equal(t, http.StatusOK, doRequest(r, "Bearer "+token).Code)
}
