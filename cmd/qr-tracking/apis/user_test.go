package apis

import (
	"context"
	"encoding/json"
	"net/http"
	"promo-tracking-backend/cmd/qr-tracking/model"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepo) GetUser(ctx context.Context, id string) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepo) UpdateUser(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepo) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestUserAPI_CreateUser_Success(t *testing.T) {
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/users",
		`{"username":"somchai","email":"somchai@example.com"}`)

	mockRepo := new(MockUserRepo)
	api := NewUserAPI(mockRepo)

	mockRepo.On("CreateUser", mock.Anything, mock.Anything).
		Return(model.User{ID: 1, Username: "somchai", Email: "somchai@example.com"}, nil)

	err := api.createUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	mockRepo.AssertExpectations(t)
}

func TestUserAPI_CreateUser_InvalidEmail(t *testing.T) {
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/users",
		`{"username":"somchai","email":"not-an-email"}`)

	mockRepo := new(MockUserRepo)
	api := NewUserAPI(mockRepo)

	err := api.createUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	mockRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUserAPI_GetUser_NotFound(t *testing.T) {
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodGet, "/api/users/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	mockRepo := new(MockUserRepo)
	api := NewUserAPI(mockRepo)

	mockRepo.On("GetUser", mock.Anything, "99").
		Return(model.User{}, gorm.ErrRecordNotFound)

	err := api.getUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var response model.BaseResponse
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "user not found", response.Message)

	mockRepo.AssertExpectations(t)
}

func TestUserAPI_UpdateUser_PartialEmail(t *testing.T) {
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPut, "/api/users/1", `{"email":"new@example.com"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	existing := model.User{ID: 1, Username: "somchai", Email: "old@example.com"}

	mockRepo := new(MockUserRepo)
	api := NewUserAPI(mockRepo)

	mockRepo.On("GetUser", mock.Anything, "1").Return(existing, nil)

	var saved model.User
	mockRepo.On("UpdateUser", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(model.User)
		}).
		Return(existing, nil)

	err := api.updateUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "new@example.com", saved.Email)
	assert.Equal(t, "somchai", saved.Username)

	mockRepo.AssertExpectations(t)
}

func TestUserAPI_DeleteUser_Success(t *testing.T) {
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodDelete, "/api/users/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	mockRepo := new(MockUserRepo)
	api := NewUserAPI(mockRepo)

	mockRepo.On("DeleteUser", mock.Anything, "1").Return(nil)

	err := api.deleteUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response model.BaseResponse
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "user deleted", response.Message)

	mockRepo.AssertExpectations(t)
}
