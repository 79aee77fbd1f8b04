package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/httpresp"
	"github.com/BruksfildServices01/flatmate-finder/internal/middleware"
	ucBooking "github.com/BruksfildServices01/flatmate-finder/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	loc *time.Location

	create          *ucBooking.Create
	listMine        *ucBooking.ListMine
	listForLandlord *ucBooking.ListForLandlord
	get             *ucBooking.Get
	updateStatus    *ucBooking.UpdateStatus
	cancel          *ucBooking.Cancel
}

func NewBookingHandler(
	loc *time.Location,
	create *ucBooking.Create,
	listMine *ucBooking.ListMine,
	listForLandlord *ucBooking.ListForLandlord,
	get *ucBooking.Get,
	updateStatus *ucBooking.UpdateStatus,
	cancel *ucBooking.Cancel,
) *BookingHandler {
	return &BookingHandler{
		loc:             loc,
		create:          create,
		listMine:        listMine,
		listForLandlord: listForLandlord,
		get:             get,
		updateStatus:    updateStatus,
		cancel:          cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type createBookingRequest struct {
	Listing     string `json:"listing" binding:"required,uuid"`
	ViewingDate string `json:"viewingDate" binding:"required,isodate"`
	ViewingTime string `json:"viewingTime" binding:"required,hhmm"`
	MoveInDate  string `json:"moveInDate" binding:"required,isodate"`
	Message     string `json:"message" binding:"max=500"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type updateBookingStatusRequest struct {
	Status           string `json:"status" binding:"required,oneof=confirmed rejected completed"`
	LandlordResponse string `json:"landlordResponse" binding:"max=500"`
}

type bookingStatusQuery struct {
	Status string `form:"status" json:"status" binding:"omitempty,oneof=pending confirmed rejected cancelled completed"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	dates := newDateParser(h.loc)
	viewingDate := dates.parse("viewingDate", req.ViewingDate)
	moveInDate := dates.parse("moveInDate", req.MoveInDate)
	if err := dates.err(); err != nil {
		httperr.Respond(c, err)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateInput{
		UserID:      middleware.CurrentUser(c).ID,
		ListingID:   req.Listing,
		ViewingDate: viewingDate,
		ViewingTime: req.ViewingTime,
		MoveInDate:  moveInDate,
		Message:     req.Message,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Booking request sent successfully", b)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	var q bookingStatusQuery
	if !bindQuery(c, &q) {
		return
	}

	bookings, err := h.listMine.Execute(c.Request.Context(), middleware.CurrentUser(c).ID, q.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListForLandlord(c *gin.Context) {
	var q bookingStatusQuery
	if !bindQuery(c, &q) {
		return
	}

	bookings, err := h.listForLandlord.Execute(c.Request.Context(), middleware.CurrentUser(c).ID, q.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.get.Execute(c.Request.Context(), middleware.Caller(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req updateBookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), ucBooking.UpdateStatusInput{
		Caller:           middleware.Caller(c),
		ID:               c.Param("id"),
		Status:           req.Status,
		LandlordResponse: req.LandlordResponse,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKWithMessage(c, "Booking "+b.Status+" successfully", b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	b, err := h.cancel.Execute(c.Request.Context(), ucBooking.CancelInput{
		Caller: middleware.Caller(c),
		ID:     c.Param("id"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKWithMessage(c, "Booking cancelled successfully", b)
}
