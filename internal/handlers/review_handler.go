package handlers

import (
	"github.com/gin-gonic/gin"

	reviewDomain "github.com/BruksfildServices01/flatmate-finder/internal/domain/review"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/httpresp"
	"github.com/BruksfildServices01/flatmate-finder/internal/middleware"
	ucReview "github.com/BruksfildServices01/flatmate-finder/internal/usecase/review"
)

type ReviewHandler struct {
	list   *ucReview.List
	create *ucReview.Create
	update *ucReview.Update
	delete *ucReview.Delete
}

func NewReviewHandler(
	list *ucReview.List,
	create *ucReview.Create,
	update *ucReview.Update,
	del *ucReview.Delete,
) *ReviewHandler {
	return &ReviewHandler{
		list:   list,
		create: create,
		update: update,
		delete: del,
	}
}

type createReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.list.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.create.Execute(c.Request.Context(), ucReview.CreateInput{
		UserID:    middleware.CurrentUser(c).ID,
		ListingID: c.Param("id"),
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, "Review created successfully", r)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var req updateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.update.Execute(c.Request.Context(), ucReview.UpdateInput{
		Caller:    middleware.Caller(c),
		ListingID: c.Param("id"),
		ReviewID:  c.Param("reviewId"),
		Patch:     reviewDomain.Patch{Rating: req.Rating, Comment: req.Comment},
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKWithMessage(c, "Review updated successfully", r)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	err := h.delete.Execute(c.Request.Context(), ucReview.DeleteInput{
		Caller:    middleware.Caller(c),
		ListingID: c.Param("id"),
		ReviewID:  c.Param("reviewId"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Review deleted successfully")
}
