package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	roommateDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/roommate"
	"github.com/BruksfildServices01/flatmate-finder/internal/dto"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/httpresp"
	"github.com/BruksfildServices01/flatmate-finder/internal/middleware"
	"github.com/BruksfildServices01/flatmate-finder/internal/models"
	ucRoommate "github.com/BruksfildServices01/flatmate-finder/internal/usecase/roommate"
)

// ======================================================
// HANDLER
// ======================================================

type RoommateHandler struct {
	loc *time.Location

	list     *ucRoommate.List
	listMine *ucRoommate.ListMine
	get      *ucRoommate.Get
	create   *ucRoommate.Create
	update   *ucRoommate.Update
	delete   *ucRoommate.Delete
}

func NewRoommateHandler(
	loc *time.Location,
	list *ucRoommate.List,
	listMine *ucRoommate.ListMine,
	get *ucRoommate.Get,
	create *ucRoommate.Create,
	update *ucRoommate.Update,
	del *ucRoommate.Delete,
) *RoommateHandler {
	return &RoommateHandler{
		loc:      loc,
		list:     list,
		listMine: listMine,
		get:      get,
		create:   create,
		update:   update,
		delete:   del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type roommateQuery struct {
	Location   string   `form:"location" json:"location"`
	MinBudget  *float64 `form:"minBudget" json:"minBudget" binding:"omitempty,gte=0"`
	MaxBudget  *float64 `form:"maxBudget" json:"maxBudget" binding:"omitempty,gte=0"`
	RoomType   string   `form:"roomType" json:"roomType" binding:"omitempty,roomtype"`
	MoveInDate *string  `form:"moveInDate" json:"moveInDate" binding:"omitempty,isodate"`
	Search     string   `form:"search" json:"search"`
}

type budgetRequest struct {
	Min *float64 `json:"min" binding:"required,gte=0"`
	Max *float64 `json:"max" binding:"required,gte=0"`
}

type lifestyleRequest struct {
	Cleanliness   *int    `json:"cleanliness" binding:"omitempty,min=1,max=5"`
	SocialLevel   *int    `json:"socialLevel" binding:"omitempty,min=1,max=5"`
	Smoking       *bool   `json:"smoking"`
	Pets          *bool   `json:"pets"`
	WorkSchedule  *string `json:"workSchedule" binding:"omitempty,workschedule"`
	SleepSchedule *string `json:"sleepSchedule" binding:"omitempty,sleepschedule"`
}

func (l *lifestyleRequest) patch() *roommateDomain.LifestylePatch {
	if l == nil {
		return nil
	}
	return &roommateDomain.LifestylePatch{
		Cleanliness:   l.Cleanliness,
		SocialLevel:   l.SocialLevel,
		Smoking:       l.Smoking,
		Pets:          l.Pets,
		WorkSchedule:  l.WorkSchedule,
		SleepSchedule: l.SleepSchedule,
	}
}

type createRoommateRequest struct {
	Title             string            `json:"title" binding:"required,min=5,max=100"`
	Bio               string            `json:"bio" binding:"required,min=10,max=1000"`
	Location          string            `json:"location" binding:"required"`
	PreferredAreas    []string          `json:"preferredAreas"`
	Budget            budgetRequest     `json:"budget"`
	RoomType          string            `json:"roomType" binding:"required,roomtype"`
	MoveInDate        string            `json:"moveInDate" binding:"required,isodate"`
	Lifestyle         *lifestyleRequest `json:"lifestyle"`
	Interests         []string          `json:"interests"`
	IdealRoommate     string            `json:"idealRoommate" binding:"max=500"`
	DealBreakers      string            `json:"dealBreakers" binding:"max=500"`
	ContactPreference string            `json:"contactPreference" binding:"omitempty,contactpref"`
	ProfileImage      string            `json:"profileImage"`
}

type budgetPatch struct {
	Min *float64 `json:"min" binding:"omitempty,gte=0"`
	Max *float64 `json:"max" binding:"omitempty,gte=0"`
}

type updateRoommateRequest struct {
	Title             *string           `json:"title" binding:"omitempty,min=5,max=100"`
	Bio               *string           `json:"bio" binding:"omitempty,min=10,max=1000"`
	Location          *string           `json:"location"`
	PreferredAreas    []string          `json:"preferredAreas"`
	Budget            *budgetPatch      `json:"budget"`
	RoomType          *string           `json:"roomType" binding:"omitempty,roomtype"`
	MoveInDate        *string           `json:"moveInDate" binding:"omitempty,isodate"`
	Lifestyle         *lifestyleRequest `json:"lifestyle"`
	Interests         []string          `json:"interests"`
	IdealRoommate     *string           `json:"idealRoommate" binding:"omitempty,max=500"`
	DealBreakers      *string           `json:"dealBreakers" binding:"omitempty,max=500"`
	ContactPreference *string           `json:"contactPreference" binding:"omitempty,contactpref"`
	ProfileImage      *string           `json:"profileImage"`
	IsActive          *bool             `json:"isActive"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *RoommateHandler) List(c *gin.Context) {
	var q roommateQuery
	if !bindQuery(c, &q) {
		return
	}

	dates := newDateParser(h.loc)
	moveIn := dates.parseOptional("moveInDate", q.MoveInDate)
	if err := dates.err(); err != nil {
		httperr.Respond(c, err)
		return
	}

	out, err := h.list.Execute(c.Request.Context(), ucRoommate.ListInput{
		Filter: roommateDomain.Filter{
			Location:   q.Location,
			MinBudget:  q.MinBudget,
			MaxBudget:  q.MaxBudget,
			RoomType:   q.RoomType,
			MoveInFrom: moveIn,
			Search:     q.Search,
		},
		Page: pageFrom(c),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Paginated(c, out.Requests, dto.NewPagination(out.Page, out.Total))
}

func (h *RoommateHandler) ListMine(c *gin.Context) {
	requests, err := h.listMine.Execute(c.Request.Context(), middleware.CurrentUser(c).ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, requests)
}

func (h *RoommateHandler) Get(c *gin.Context) {
	r, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *RoommateHandler) Create(c *gin.Context) {
	var req createRoommateRequest
	if !bindJSON(c, &req) {
		return
	}

	dates := newDateParser(h.loc)
	moveIn := dates.parse("moveInDate", req.MoveInDate)
	if err := dates.err(); err != nil {
		httperr.Respond(c, err)
		return
	}

	in := ucRoommate.CreateInput{
		UserID:            middleware.CurrentUser(c).ID,
		Title:             req.Title,
		Bio:               req.Bio,
		Location:          req.Location,
		PreferredAreas:    trimAll(req.PreferredAreas),
		Budget:            models.Budget{Min: *req.Budget.Min, Max: *req.Budget.Max},
		RoomType:          req.RoomType,
		MoveInDate:        moveIn,
		Interests:         trimAll(req.Interests),
		IdealRoommate:     req.IdealRoommate,
		DealBreakers:      req.DealBreakers,
		ContactPreference: req.ContactPreference,
		ProfileImage:      req.ProfileImage,
	}
	if lp := req.Lifestyle.patch(); lp != nil {
		var r models.RoommateRequest
		roommateDomain.Patch{Lifestyle: lp}.Apply(&r)
		in.Lifestyle = r.Lifestyle
	}

	r, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Roommate request created successfully", r)
}

func (h *RoommateHandler) Update(c *gin.Context) {
	var req updateRoommateRequest
	if !bindJSON(c, &req) {
		return
	}

	dates := newDateParser(h.loc)
	patch := roommateDomain.Patch{
		Title:             req.Title,
		Bio:               req.Bio,
		Location:          req.Location,
		PreferredAreas:    trimAll(req.PreferredAreas),
		RoomType:          req.RoomType,
		MoveInDate:        dates.parseOptional("moveInDate", req.MoveInDate),
		Lifestyle:         req.Lifestyle.patch(),
		Interests:         trimAll(req.Interests),
		IdealRoommate:     req.IdealRoommate,
		DealBreakers:      req.DealBreakers,
		ContactPreference: req.ContactPreference,
		ProfileImage:      req.ProfileImage,
		IsActive:          req.IsActive,
	}
	if req.Budget != nil {
		patch.BudgetMin = req.Budget.Min
		patch.BudgetMax = req.Budget.Max
	}
	if err := dates.err(); err != nil {
		httperr.Respond(c, err)
		return
	}

	r, err := h.update.Execute(c.Request.Context(), ucRoommate.UpdateInput{
		Caller: middleware.Caller(c),
		ID:     c.Param("id"),
		Patch:  patch,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKWithMessage(c, "Roommate request updated successfully", r)
}

func (h *RoommateHandler) Delete(c *gin.Context) {
	err := h.delete.Execute(c.Request.Context(), ucRoommate.DeleteInput{
		Caller: middleware.Caller(c),
		ID:     c.Param("id"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Roommate request deleted successfully")
}
