package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	listingDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/listing"
	"github.com/BruksfildServices01/flatmate-finder/internal/dto"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/httpresp"
	"github.com/BruksfildServices01/flatmate-finder/internal/middleware"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
	ucListing "github.com/BruksfildServices01/flatmate-finder/internal/usecase/listing"
)

// ======================================================
// HANDLER
// ======================================================

type ListingHandler struct {
	loc *time.Location

	list   *ucListing.List
	get    *ucListing.Get
	create *ucListing.Create
	update *ucListing.Update
	delete *ucListing.Delete
}

func NewListingHandler(
	loc *time.Location,
	list *ucListing.List,
	get *ucListing.Get,
	create *ucListing.Create,
	update *ucListing.Update,
	del *ucListing.Delete,
) *ListingHandler {
	return &ListingHandler{
		loc:    loc,
		list:   list,
		get:    get,
		create: create,
		update: update,
		delete: del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type listingQuery struct {
	Location string   `form:"location" json:"location"`
	MinPrice *float64 `form:"minPrice" json:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice *float64 `form:"maxPrice" json:"maxPrice" binding:"omitempty,gte=0"`
	Bedrooms *int     `form:"bedrooms" json:"bedrooms" binding:"omitempty,min=1"`
	RoomType string   `form:"roomType" json:"roomType" binding:"omitempty,roomtype"`
	Search   string   `form:"search" json:"search"`
}

type occupancyRequest struct {
	Current *int `json:"current" binding:"omitempty,gte=0"`
	Max     int  `json:"max" binding:"required,min=1"`
}

func (o occupancyRequest) model() models.Occupancy {
	occ := models.Occupancy{Max: o.Max}
	if o.Current != nil {
		occ.Current = *o.Current
	}
	return occ
}

type occupancyPatch struct {
	Current *int `json:"current" binding:"omitempty,gte=0"`
	Max     *int `json:"max" binding:"omitempty,min=1"`
}

type createListingRequest struct {
	Title         string           `json:"title" binding:"required,min=5,max=100"`
	Description   string           `json:"description" binding:"required,min=10,max=1000"`
	Location      string           `json:"location" binding:"required"`
	Price         *float64         `json:"price" binding:"required,gte=0"`
	Bedrooms      int              `json:"bedrooms" binding:"required,min=1"`
	Bathrooms     int              `json:"bathrooms" binding:"required,min=1"`
	Roommates     occupancyRequest `json:"roommates"`
	Images        []string         `json:"images" binding:"required,min=1,dive,required"`
	Amenities     []string         `json:"amenities" binding:"omitempty,dive,amenity"`
	RoomType      string           `json:"roomType" binding:"required,roomtype"`
	AvailableFrom string           `json:"availableFrom" binding:"required,isodate"`
}

// Every field is optional; the merged record is validated again by the
// use case.
type updateListingRequest struct {
	Title         *string           `json:"title" binding:"omitempty,min=5,max=100"`
	Description   *string           `json:"description" binding:"omitempty,min=10,max=1000"`
	Location      *string           `json:"location"`
	Price         *float64          `json:"price" binding:"omitempty,gte=0"`
	Bedrooms      *int              `json:"bedrooms" binding:"omitempty,min=1"`
	Bathrooms     *int              `json:"bathrooms" binding:"omitempty,min=1"`
	Roommates     *occupancyPatch   `json:"roommates"`
	Images        []string          `json:"images" binding:"omitempty,dive,required"`
	Amenities     []string          `json:"amenities" binding:"omitempty,dive,amenity"`
	RoomType      *string           `json:"roomType" binding:"omitempty,roomtype"`
	AvailableFrom *string           `json:"availableFrom" binding:"omitempty,isodate"`
	IsActive      *bool             `json:"isActive"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *ListingHandler) List(c *gin.Context) {
	var q listingQuery
	if !bindQuery(c, &q) {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), ucListing.ListInput{
		Filter: listingDomain.Filter{
			Location:  q.Location,
			MinPrice:  q.MinPrice,
			MaxPrice:  q.MaxPrice,
			Bedrooms:  q.Bedrooms,
			RoomType:  q.RoomType,
			Amenities: splitList(c.QueryArray("amenities")),
			Search:    q.Search,
		},
		Page: pageFrom(c),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Paginated(c, out.Listings, dto.NewPagination(out.Page, out.Total))
}

func (h *ListingHandler) Get(c *gin.Context) {
	l, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, l)
}

func (h *ListingHandler) Create(c *gin.Context) {
	var req createListingRequest
	if !bindJSON(c, &req) {
		return
	}

	dates := newDateParser(h.loc)
	availableFrom := dates.parse("availableFrom", req.AvailableFrom)
	if err := dates.err(); err != nil {
		httperr.Respond(c, err)
		return
	}

	l, err := h.create.Execute(c.Request.Context(), ucListing.CreateInput{
		LandlordID:    middleware.CurrentUser(c).ID,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		Price:         *req.Price,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Roommates:     req.Roommates.model(),
		Images:        trimAll(req.Images),
		Amenities:     req.Amenities,
		RoomType:      req.RoomType,
		AvailableFrom: availableFrom,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Listing created successfully", l)
}

func (h *ListingHandler) Update(c *gin.Context) {
	var req updateListingRequest
	if !bindJSON(c, &req) {
		return
	}

	dates := newDateParser(h.loc)
	patch := listingDomain.Patch{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		Price:         req.Price,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Images:        trimAll(req.Images),
		Amenities:     req.Amenities,
		RoomType:      req.RoomType,
		AvailableFrom: dates.parseOptional("availableFrom", req.AvailableFrom),
		IsActive:      req.IsActive,
	}
	if req.Roommates != nil {
		patch.Current = req.Roommates.Current
		patch.MaxRoommates = req.Roommates.Max
	}
	if err := dates.err(); err != nil {
		httperr.Respond(c, err)
		return
	}

	l, err := h.update.Execute(c.Request.Context(), ucListing.UpdateInput{
		Caller: middleware.Caller(c),
		ID:     c.Param("id"),
		Patch:  patch,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKWithMessage(c, "Listing updated successfully", l)
}

func (h *ListingHandler) Delete(c *gin.Context) {
	err := h.delete.Execute(c.Request.Context(), ucListing.DeleteInput{
		Caller: middleware.Caller(c),
		ID:     c.Param("id"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Listing deleted successfully")
}
