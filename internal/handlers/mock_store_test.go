package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/bridgegap/bridgegap/internal/handlers"
	"github.com/bridgegap/bridgegap/internal/middleware"
	"github.com/bridgegap/bridgegap/internal/models"
	"github.com/bridgegap/bridgegap/internal/services"
	"github.com/bridgegap/bridgegap/pkg/auth"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) RegisterUser(user *models.User, interestIDs []uint) error {
	args := m.Called(user, interestIDs)
	return args.Error(0)
}

func (m *MockStore) FindUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) GetUserWithInterests(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) UpdateUserProfile(user *models.User, interestIDs []uint, replaceInterests bool) error {
	args := m.Called(user, interestIDs, replaceInterests)
	return args.Error(0)
}

func (m *MockStore) ListUsersWithInterests() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockStore) CreateModerator(moderator *models.Moderator) error {
	args := m.Called(moderator)
	return args.Error(0)
}

func (m *MockStore) FindModeratorByEmail(email string) (*models.Moderator, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Moderator), args.Error(1)
}

func (m *MockStore) ListModeratorNotifications(moderatorID string) ([]models.Notification, error) {
	args := m.Called(moderatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockStore) MarkNotificationRead(id string) (*models.Notification, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockStore) ListInterests() ([]models.Interest, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Interest), args.Error(1)
}

// newTestRouter mounts the API with the mock store and a fake identity in
// place of the JWT middleware, so handler behavior is tested in isolation.
func newTestRouter(store services.Store, subjectID uuid.UUID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	jwtMgr := auth.NewJWTManager("test-secret", time.Hour)
	authH := handlers.NewAuthHandler(store, jwtMgr, nil)
	userH := handlers.NewUserHandler(store)
	modH := handlers.NewModeratorHandler(store)
	interestH := handlers.NewInterestHandler(store)

	identity := func(c *gin.Context) {
		c.Set(middleware.SubjectIDKey, subjectID)
		c.Set(middleware.RoleKey, role)
	}

	r := gin.New()
	api := r.Group("/api")
	api.POST("/register", authH.Register)
	api.POST("/login", authH.Login)
	api.POST("/moderator/register", authH.ModeratorRegister)
	api.POST("/moderator/login", authH.ModeratorLogin)
	api.GET("/interests", interestH.List)
	api.GET("/chats", handlers.FeatureUnavailable("Chats feature is under development"))
	api.GET("/user/:id", identity, userH.GetProfile)
	api.PUT("/user/:id", identity, userH.UpdateProfile)
	api.GET("/user/:id/interests", identity, userH.GetInterests)
	moderatorOnly := middleware.RequireModerator()
	api.GET("/moderator/:id/notifications", identity, moderatorOnly, modH.ListNotifications)
	api.PUT("/notification/:id/read", identity, moderatorOnly, modH.MarkRead)
	api.GET("/moderator/user/:id", identity, moderatorOnly, modH.GetUserDetail)
	api.GET("/moderator/users", identity, moderatorOnly, modH.ListUsers)
	return r
}

func jsonDecode(raw []byte, out interface{}) error {
	return json.Unmarshal(raw, out)
}

func performRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return out
}
