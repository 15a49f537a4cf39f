package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/trestle/internal/matter"
	"github.com/zulandar/trestle/internal/models"
)

func (h *handlers) createMatter(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var m models.MattersArising
	if !bindJSON(c, &m) {
		return
	}

	created, err := matter.Create(h.db, projectID, &m)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) updateMatter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var raw map[string]interface{}
	if !bindJSON(c, &raw) {
		return
	}

	updated, err := matter.Update(h.db, id, raw)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
