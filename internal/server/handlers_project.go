package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/trestle/internal/models"
	"github.com/zulandar/trestle/internal/project"
)

func (h *handlers) createProject(c *gin.Context) {
	var p models.Project
	if !bindJSON(c, &p) {
		return
	}

	created, err := project.Create(h.db, &p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) listProjects(c *gin.Context) {
	projects, err := project.List(h.db)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// listMyProjects filters by assigned email; defaults to the caller's own.
func (h *handlers) listMyProjects(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = c.GetString("email")
	}

	projects, err := project.ListByAssignee(h.db, email)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *handlers) updateProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var raw map[string]interface{}
	if !bindJSON(c, &raw) {
		return
	}

	updated, err := project.Update(h.db, id, raw)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handlers) deleteProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := project.Delete(h.db, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted", "id": id})
}

func (h *handlers) projectDetails(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := project.Details(h.db, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}
