package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shootbook/models"
	"shootbook/services/booking"
	"shootbook/services/wizard"
	"shootbook/utils"
)

// BookingHandler serves the quote, wizard and submission endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	useJSONFieldNames()
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// Quote handles POST /api/quote. Pricing problems are reported inside the
// breakdown, so any well-formed body gets a 200.
func (h *BookingHandler) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.BookingSvc.Quote(req))
}

// StartSession handles POST /api/wizard/sessions.
func (h *BookingHandler) StartSession(c *gin.Context) {
	resp, err := h.BookingSvc.StartSession(c.Request.Context())
	if err != nil {
		respondError(c, "StartSession", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetSession handles GET /api/wizard/sessions/:id.
func (h *BookingHandler) GetSession(c *gin.Context) {
	resp, err := h.BookingSvc.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "GetSession", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSession handles PATCH /api/wizard/sessions/:id.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var patch wizard.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	resp, err := h.BookingSvc.UpdateSession(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, "UpdateSession", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// NextStep handles POST /api/wizard/sessions/:id/next.
func (h *BookingHandler) NextStep(c *gin.Context) {
	resp, err := h.BookingSvc.NextStep(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "NextStep", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PreviousStep handles POST /api/wizard/sessions/:id/back.
func (h *BookingHandler) PreviousStep(c *gin.Context) {
	resp, err := h.BookingSvc.PreviousStep(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "PreviousStep", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitSession handles POST /api/wizard/sessions/:id/submit.
func (h *BookingHandler) SubmitSession(c *gin.Context) {
	conf, err := h.BookingSvc.SubmitSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "SubmitSession", err)
		return
	}
	getLogger(c).Info("Wizard booking submitted", zap.String("bookingId", conf.Booking.ID))
	c.JSON(http.StatusCreated, conf)
}

// CancelSession handles DELETE /api/wizard/sessions/:id.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.BookingSvc.CancelSession(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "CancelSession", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitBookingRequest is a flattened record posted without the wizard.
type SubmitBookingRequest struct {
	ClientName     string               `json:"clientName" binding:"required,max=200"`
	ContactMethod  models.ContactMethod `json:"contactMethod" binding:"required,oneof=email wechat instagram phone"`
	Contact        string               `json:"contact" binding:"required"`
	PhotoshootKind models.ShootKind     `json:"photoshootKind" binding:"required"`
	Start          time.Time            `json:"start" binding:"required"`
	End            time.Time            `json:"end" binding:"required,gtfield=Start"`
	Location       string               `json:"location" binding:"required"`
	PeopleCount    int                  `json:"peopleCount" binding:"required,min=1"`
	Language       string               `json:"language"`
	Notes          string               `json:"notes" binding:"max=2000"`

	models.EquipmentSelection

	DslrAddonPhotos *int `json:"dslrAddonPhotos" binding:"omitempty,min=0"`
	ExtraEdits      int  `json:"extraEdits" binding:"min=0,max=50"`
}

func (r SubmitBookingRequest) record() models.BookingRecord {
	return models.BookingRecord{
		ClientName:         r.ClientName,
		ContactMethod:      r.ContactMethod,
		Contact:            r.Contact,
		PhotoshootKind:     r.PhotoshootKind,
		Start:              r.Start,
		End:                r.End,
		Location:           r.Location,
		PeopleCount:        r.PeopleCount,
		Language:           r.Language,
		Notes:              r.Notes,
		EquipmentSelection: r.EquipmentSelection,
		DslrAddonPhotos:    r.DslrAddonPhotos,
		ExtraEdits:         r.ExtraEdits,
	}
}

// SubmitBooking handles POST /api/bookings.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields, ok := bindingErrors(err); ok {
			utils.JSONFieldError(c, http.StatusUnprocessableEntity, booking.CodeConstraintViolation,
				"booking record is incomplete", fields)
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	conf, err := h.BookingSvc.SubmitRecord(c.Request.Context(), req.record())
	if err != nil {
		respondError(c, "SubmitBooking", err)
		return
	}
	getLogger(c).Info("Direct booking submitted", zap.String("bookingId", conf.Booking.ID))
	c.JSON(http.StatusCreated, conf)
}
