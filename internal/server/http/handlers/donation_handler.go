package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/pawshope/internal/domain/errors"
	"github.com/polkiloo/pawshope/internal/domain/model"
	"github.com/polkiloo/pawshope/internal/server/http/dto"
	"github.com/polkiloo/pawshope/internal/usecase"
)

// DonationHandler manages the order lifecycle endpoints.
type DonationHandler struct {
	facade        DonationFacade
	publicBaseURL string
	development   bool
	logger        *slog.Logger
}

// NewDonationHandler constructs DonationHandler. Development mode exposes failure details.
func NewDonationHandler(facade DonationFacade, publicBaseURL string, development bool, logger *slog.Logger) *DonationHandler {
	return &DonationHandler{facade: facade, publicBaseURL: publicBaseURL, development: development, logger: logger}
}

// CreateOrder handles POST /api/paypal/create-order.
func (h *DonationHandler) CreateOrder(c *gin.Context) {
	h.create(c, model.PaymentMethodAccount, "Failed to create PayPal order")
}

// CreateCardOrder handles POST /api/paypal/create-card-order.
func (h *DonationHandler) CreateCardOrder(c *gin.Context) {
	h.create(c, model.PaymentMethodCard, "Failed to create card payment order")
}

func (h *DonationHandler) create(c *gin.Context, method model.PaymentMethod, failure string) {
	var req dto.CreateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		abortWithError(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	in := usecase.CreateOrderInput{
		Amount:    req.Amount,
		Currency:  req.Currency,
		Frequency: req.Frequency,
		Method:    method,
	}
	if req.DonorInfo != nil {
		in.Donor = model.DonorInfo{
			FirstName: req.DonorInfo.FirstName,
			LastName:  req.DonorInfo.LastName,
			Email:     req.DonorInfo.Email,
		}
	}
	if method == model.PaymentMethodAccount {
		base := requestBaseURL(c, h.publicBaseURL)
		in.ReturnURL = base + successPath
		in.CancelURL = base + cancelPath
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, failure)
		return
	}

	resp := dto.CreateOrderResponse{ID: order.ID, Status: order.Status}
	if method == model.PaymentMethodAccount {
		for _, l := range order.Links {
			resp.Links = append(resp.Links, dto.LinkResponse{Href: l.Href, Rel: l.Rel, Method: l.Method})
		}
	}
	c.JSON(http.StatusOK, resp)
}

// CaptureOrder handles POST /api/paypal/capture-order.
func (h *DonationHandler) CaptureOrder(c *gin.Context) {
	var req dto.CaptureOrderRequest
	if err := bindJSON(c, &req); err != nil {
		abortWithError(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	captured, err := h.facade.CaptureOrder(c.Request.Context(), req.OrderID)
	if err != nil {
		h.fail(c, err, "Failed to capture PayPal order")
		return
	}

	c.JSON(http.StatusOK, dto.CaptureOrderResponse{
		ID:            captured.ID,
		Status:        captured.Status,
		PurchaseUnits: captured.PurchaseUnits,
		Payer:         captured.Payer,
	})
}

// Donation handles GET /api/paypal/donation/:id.
func (h *DonationHandler) Donation(c *gin.Context) {
	donation, err := h.facade.Donation(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Donation not found")
			return
		}
		h.fail(c, err, "Failed to load donation")
		return
	}
	c.JSON(http.StatusOK, toDonationResponse(*donation))
}

// Donations handles GET /api/paypal/donations.
func (h *DonationHandler) Donations(c *gin.Context) {
	donations, summary, err := h.facade.Donations(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to load donations")
		return
	}

	resp := dto.DonationsResponse{
		Donations: make([]dto.DonationResponse, 0, len(donations)),
		Summary: dto.SummaryResponse{
			Total:       summary.Count,
			Completed:   summary.CompletedCount,
			TotalAmount: summary.CompletedTotal.InexactFloat64(),
			Currency:    summary.Currency,
		},
	}
	for _, d := range donations {
		resp.Donations = append(resp.Donations, toDonationResponse(d))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DonationHandler) fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidAmount):
		abortWithError(c, http.StatusBadRequest, "Invalid amount")
		return
	case errors.Is(err, domainErrors.ErrMissingDonorInfo):
		abortWithError(c, http.StatusBadRequest, "Donor information required")
		return
	case errors.Is(err, domainErrors.ErrMissingOrderID):
		abortWithError(c, http.StatusBadRequest, "Order ID required")
		return
	}

	h.logger.Error(message, slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	resp := dto.ErrorResponse{Error: message}
	if h.development {
		resp.Details = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
}

func toDonationResponse(d model.Donation) dto.DonationResponse {
	return dto.DonationResponse{
		ID:        d.ID,
		Amount:    d.Amount.InexactFloat64(),
		Currency:  d.Currency,
		Frequency: string(d.Frequency),
		DonorInfo: dto.DonorInfo{
			FirstName: d.Donor.FirstName,
			LastName:  d.Donor.LastName,
			Email:     d.Donor.Email,
		},
		PaymentMethod:       string(d.PaymentMethod),
		Status:              string(d.Status),
		CreatedAt:           d.CreatedAt,
		CapturedAt:          d.CapturedAt,
		PaypalTransactionID: d.ProcessorTransactionID,
		ExclusiveDonor:      d.ExclusiveDonor,
	}
}
