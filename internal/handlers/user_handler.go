package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/httpresp"
	ucAccount "github.com/BruksfildServices01/flatmate-finder/internal/usecase/account"
)

type UserHandler struct {
	profile *ucAccount.GetProfile
}

func NewUserHandler(profile *ucAccount.GetProfile) *UserHandler {
	return &UserHandler{profile: profile}
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.profile.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}
