package apis

import (
	"context"
	"net/http"
	"promo-tracking-backend/cmd/qr-tracking/model"
	"time"

	"github.com/labstack/echo/v4"
)

type IUserRepo interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	UpdateUser(ctx context.Context, user model.User) (model.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserAPI struct {
	userRepo IUserRepo
}

func NewUserAPI(userRepo IUserRepo) *UserAPI {

	return &UserAPI{
		userRepo: userRepo,
	}
}

func (a *UserAPI) Setup(g *echo.Group) {
	g.POST("/users", a.createUser)
	g.GET("/users", a.listUsers)
	g.GET("/users/:id", a.getUser)
	g.PUT("/users/:id", a.updateUser)
	g.DELETE("/users/:id", a.deleteUser)
}

func (a *UserAPI) createUser(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.UserCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequestJSON(c, "invalid request body")
	}

	if err := validate.Struct(&req); err != nil {
		return badRequestJSON(c, "username and a valid email are required")
	}

	user := model.User{
		Username:  req.Username,
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	}

	created, err := a.userRepo.CreateUser(ctx, user)
	if err != nil {
		return storeErrorJSON(c, err, "user")
	}

	return c.JSON(
		http.StatusCreated,
		model.BaseResponse{
			Message: "success",
			Data:    created,
		},
	)
}

func (a *UserAPI) listUsers(c echo.Context) error {

	ctx := c.Request().Context()

	users, err := a.userRepo.ListUsers(ctx)
	if err != nil {
		return storeErrorJSON(c, err, "user")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    users,
		},
	)
}

func (a *UserAPI) getUser(c echo.Context) error {

	ctx := c.Request().Context()

	user, err := a.userRepo.GetUser(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "user")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    user,
		},
	)
}

func (a *UserAPI) updateUser(c echo.Context) error {

	ctx := c.Request().Context()

	user, err := a.userRepo.GetUser(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "user")
	}

	var req model.UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequestJSON(c, "invalid request body")
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}

	updated, err := a.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return storeErrorJSON(c, err, "user")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    updated,
		},
	)
}

func (a *UserAPI) deleteUser(c echo.Context) error {

	ctx := c.Request().Context()

	err := a.userRepo.DeleteUser(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "user")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "user deleted",
		},
	)
}
