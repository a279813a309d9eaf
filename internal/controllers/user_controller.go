package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"delivery_admin/internal/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) Create(c *gin.Context) {
	var input services.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	user, err := uc.users.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "user created", user)
}

func (uc *UserController) List(c *gin.Context) {
	page, limit := pageQuery(c)
	users, total, err := uc.users.FindAll(page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", pagedData(users, total, page, limit))
}

func (uc *UserController) Search(c *gin.Context) {
	var filter services.UserFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	users, total, err := uc.users.Search(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", gin.H{"list": users, "total": total})
}

// ListDrivers returns every driver-type user, for assignment pickers.
func (uc *UserController) ListDrivers(c *gin.Context) {
	users, err := uc.users.FindDrivers()
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", users)
}

func (uc *UserController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := uc.users.FindByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "ok", user)
}

func (uc *UserController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	user, err := uc.users.Update(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "user updated", user)
}

func (uc *UserController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	snapshot, err := uc.users.Remove(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "user deleted", snapshot)
}

func (uc *UserController) BatchDelete(c *gin.Context) {
	var body struct {
		IDs []uint `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := uc.users.BatchRemove(body.IDs); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "users deleted", nil)
}
