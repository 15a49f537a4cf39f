package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/trestle/internal/models"
	"github.com/zulandar/trestle/internal/payment"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *handlers) createPayment(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var p models.PaymentSchedule
	if !bindJSON(c, &p) {
		return
	}

	created, err := payment.Create(h.db, projectID, &p)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) updatePayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var raw map[string]interface{}
	if !bindJSON(c, &raw) {
		return
	}

	updated, err := payment.Update(h.db, id, raw)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handlers) deletePayment(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	paymentID, ok := pathID(c, "payment_id")
	if !ok {
		return
	}

	if err := payment.Delete(h.db, projectID, paymentID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment deleted"})
}

func (h *handlers) paymentTemplate(c *gin.Context) {
	data, err := payment.Template()
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+payment.TemplateFilename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *handlers) importPayments(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer file.Close()

	count, err := payment.Import(h.db, projectID, fileHeader.Filename, file)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("successfully imported %d payment records", count),
		"imported": count,
	})
}
