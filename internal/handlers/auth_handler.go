package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/flatmate-finder/internal/dto"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/httpresp"
	"github.com/BruksfildServices01/flatmate-finder/internal/middleware"
	ucAccount "github.com/BruksfildServices01/flatmate-finder/internal/usecase/account"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	register      *ucAccount.Register
	login         *ucAccount.Login
	logout        *ucAccount.Logout
	updateProfile *ucAccount.UpdateProfile
}

func NewAuthHandler(
	register *ucAccount.Register,
	login *ucAccount.Login,
	logout *ucAccount.Logout,
	updateProfile *ucAccount.UpdateProfile,
) *AuthHandler {
	return &AuthHandler{
		register:      register,
		login:         login,
		logout:        logout,
		updateProfile: updateProfile,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"omitempty,mobile"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=2,max=50"`
	Phone  *string `json:"phone" binding:"omitempty,mobile"`
	Bio    *string `json:"bio" binding:"omitempty,max=500"`
	Avatar *string `json:"avatar" binding:"omitempty,url"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   session.Token,
		User:    session.User,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.login.Execute(c.Request.Context(), ucAccount.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   session.Token,
		User:    session.User,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	httpresp.OK(c, middleware.CurrentUser(c))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.updateProfile.Execute(c.Request.Context(), ucAccount.UpdateProfileInput{
		UserID: middleware.CurrentUser(c).ID,
		Name:   req.Name,
		Phone:  req.Phone,
		Bio:    req.Bio,
		Avatar: req.Avatar,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OKWithMessage(c, "Profile updated successfully", u)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), middleware.CurrentClaims(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Logged out successfully")
}
