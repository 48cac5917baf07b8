package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kipsang/scanpos-api/internal/application/service"
	"github.com/kipsang/scanpos-api/internal/domain/repository"
	"github.com/kipsang/scanpos-api/internal/presentation/http/dto/request"
	"github.com/kipsang/scanpos-api/internal/presentation/http/dto/response"
	"github.com/kipsang/scanpos-api/pkg/pagination"
)

const dateLayout = "2006-01-02"

// BillHandler handles checkout and bill archive HTTP requests
type BillHandler struct {
	billingService *service.BillingService
	billService    *service.BillService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService, billService *service.BillService) *BillHandler {
	return &BillHandler{
		billingService: billingService,
		billService:    billService,
	}
}

// Generate handles checkout: it turns the current cart into a bill
func (h *BillHandler) Generate(c *gin.Context) {
	var req request.GenerateBillRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	// The authenticated user is the cashier unless the request names one.
	if req.CashierName == "" {
		req.CashierName = GetUsername(c)
	}

	bill, err := h.billingService.Checkout(c.Request.Context(), &service.CheckoutInput{
		CashierName:     req.CashierName,
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  req.DiscountAmount,
		TaxPercent:      req.TaxPercent,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill generated successfully", bill)
}

// List handles listing archived bills with filters
func (h *BillHandler) List(c *gin.Context) {
	var filter request.BillFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.BillFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		CashierName: filter.CashierName,
		MinAmount:   filter.MinAmount,
		MaxAmount:   filter.MaxAmount,
	}

	if filter.StartDate != "" {
		start, err := time.Parse(dateLayout, filter.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		params.StartDate = &start
	}
	if filter.EndDate != "" {
		parsed, err := time.Parse(dateLayout, filter.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		// The named end day is inclusive; the repository bound is exclusive.
		end := parsed.AddDate(0, 0, 1)
		params.EndDate = &end
	}

	result, err := h.billService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Get handles getting a single archived bill
func (h *BillHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billService.GetBill(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// GetTicket handles returning a bill's rendered ticket text
func (h *BillHandler) GetTicket(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	ticket, err := h.billService.GetBillTicket(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.String(200, ticket)
}

// DailyReport handles the daily sales summary
func (h *BillHandler) DailyReport(c *gin.Context) {
	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	report, err := h.billService.GetDailyReport(c.Request.Context(), day, c.Query("cashier_name"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily sales report retrieved successfully", report)
}

// LegacyGone answers retired bill-generation paths. The old GET-based
// endpoints mutated state and were replaced by POST /bills/generate.
func LegacyGone(c *gin.Context) {
	response.Gone(c, "This endpoint has been retired. Use POST /bills/generate instead.")
}
