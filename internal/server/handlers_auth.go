package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/trestle/internal/auth"
)

func (h *handlers) createUser(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Role     string `json:"role"`
	}
	if !bindJSON(c, &req) {
		return
	}

	user, err := auth.Register(h.db, auth.RegisterOpts{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *handlers) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &req) {
		return
	}

	result, err := auth.Login(h.db, req.Email, req.Password, h.secret, h.ttl)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
