package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/trestle/internal/models"
	"github.com/zulandar/trestle/internal/task"
)

func (h *handlers) createTask(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var t models.ProjectTask
	if !bindJSON(c, &t) {
		return
	}

	created, err := task.Create(h.db, projectID, &t)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) updateTask(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	taskID, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	var raw map[string]interface{}
	if !bindJSON(c, &raw) {
		return
	}

	updated, err := task.Update(h.db, projectID, taskID, raw)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handlers) deleteTask(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	taskID, ok := pathID(c, "task_id")
	if !ok {
		return
	}

	if err := task.Delete(h.db, projectID, taskID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

func (h *handlers) listNestedTasks(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tasks, err := task.ListRoots(h.db, projectID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *handlers) createTaskComment(c *gin.Context) {
	taskID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		UserName string `json:"user_name"`
		Content  string `json:"content"`
	}
	if !bindJSON(c, &req) {
		return
	}

	comment, err := task.AddComment(h.db, taskID, req.UserName, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
