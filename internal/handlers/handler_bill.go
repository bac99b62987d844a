package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bookkeep/payables_app/internal/apperrors"
	portssvc "github.com/bookkeep/payables_app/internal/core/ports/services"
	"github.com/bookkeep/payables_app/internal/dto"
	"github.com/bookkeep/payables_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// deleteAuthHeader carries the authorization code destructive operations
// require. It is checked by the service, never here.
const deleteAuthHeader = "X-Delete-Code"

// billHandler handles HTTP requests related to bills.
type billHandler struct {
	billService    portssvc.BillSvcFacade
	paymentService portssvc.PaymentSvcFacade
}

func newBillHandler(bs portssvc.BillSvcFacade, ps portssvc.PaymentSvcFacade) *billHandler {
	return &billHandler{
		billService:    bs,
		paymentService: ps,
	}
}

// registerBillRoutes registers routes related to bills.
func registerBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	h := newBillHandler(billService, paymentService)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/:billID", h.getBill)
		bills.PUT("/:billID", h.updateBill)
		bills.DELETE("/:billID", h.deleteBill)
		bills.GET("/:billID/payments", h.listBillPayments)
	}
}

// createBill godoc
// @Summary Record a received bill
// @Description Records a supplier bill in the RECEIVED state with nothing paid
// @Tags bills
// @Accept json
// @Produce json
// @Param bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to create bill"
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)

	bill, err := h.billService.CreateBill(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		} else {
			logger.Error("Failed to create bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bill"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// getBill godoc
// @Summary Get a bill by ID
// @Description Retrieves a bill with its display status derived at read time
// @Tags bills
// @Produce json
// @Param billID path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to retrieve bill"
// @Router /bills/{billID} [get]
func (h *billHandler) getBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("billID")

	bill, err := h.billService.GetBillByID(c.Request.Context(), billID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		} else {
			logger.Error("Failed to get bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bill"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// listBills godoc
// @Summary List bills
// @Description Retrieves a paginated list of bills with display statuses
// @Tags bills
// @Produce json
// @Param limit query int false "Limit number of results" default(50)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.BillResponse
// @Failure 500 {object} map[string]string "Failed to list bills"
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	bills, err := h.billService.ListBills(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bills"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponses(bills))
}

// updateBill godoc
// @Summary Update a bill
// @Description Updates a bill's editable fields; bills with payments applied are immutable and the edit is rejected
// @Tags bills
// @Accept json
// @Produce json
// @Param billID path string true "Bill ID"
// @Param bill body dto.UpdateBillRequest true "Fields to update"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Bill has payments applied"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to update bill"
// @Router /bills/{billID} [put]
func (h *billHandler) updateBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("billID")

	var req dto.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)

	bill, err := h.billService.UpdateBill(c.Request.Context(), billID, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bill"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// deleteBill godoc
// @Summary Delete a bill
// @Description Deletes a bill; requires the configured authorization code and refuses bills with payments applied
// @Tags bills
// @Produce json
// @Param billID path string true "Bill ID"
// @Param X-Delete-Code header string false "Delete authorization code"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Authorization code missing/invalid or bill has payments"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 500 {object} map[string]string "Failed to delete bill"
// @Router /bills/{billID} [delete]
func (h *billHandler) deleteBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("billID")
	authCode := c.GetHeader(deleteAuthHeader)

	actorID, _ := middleware.GetUserIDFromContext(c)

	err := h.billService.DeleteBill(c.Request.Context(), billID, authCode, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		} else {
			logger.Error("Failed to delete bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bill"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// listBillPayments godoc
// @Summary List a bill's payments
// @Description Retrieves every payment applied to a bill, voided ones included
// @Tags bills
// @Produce json
// @Param billID path string true "Bill ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /bills/{billID}/payments [get]
func (h *billHandler) listBillPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("billID")

	payments, err := h.paymentService.ListPaymentsByBill(c.Request.Context(), billID)
	if err != nil {
		logger.Error("Failed to list bill payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}
