package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/flatmate-finder/internal/handlers"
	"github.com/BruksfildServices01/flatmate-finder/internal/httperr"
	"github.com/BruksfildServices01/flatmate-finder/internal/middleware"
	ucAccount "github.com/BruksfildServices01/flatmate-finder/internal/usecase/account"
	ucAuditLog "github.com/BruksfildServices01/flatmate-finder/internal/usecase/auditlog"
	ucBooking "github.com/BruksfildServices01/flatmate-finder/internal/usecase/booking"
	ucListing "github.com/BruksfildServices01/flatmate-finder/internal/usecase/listing"
	ucReview "github.com/BruksfildServices01/flatmate-finder/internal/usecase/review"
	ucRoommate "github.com/BruksfildServices01/flatmate-finder/internal/usecase/roommate"
	ucUpload "github.com/BruksfildServices01/flatmate-finder/internal/usecase/upload"
	"github.com/BruksfildServices01/flatmate-finder/internal/validators"
)

const MessageNoRoute = "API endpoint not found"

// NewEngine builds the gin engine with the global middleware chain and
// every route.
func NewEngine(d Deps) *gin.Engine {
	validators.Register()

	if d.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = false

	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.Recovery(),
		httperr.Expose(!d.Config.IsProduction()),
		middleware.Metrics(d.Metrics),
		middleware.SecurityHeaders(),
		middleware.CORS(d.Config.FrontendURL),
		middleware.BodyLimit(d.Config.BodyLimitBytes),
		middleware.RateLimit(d.Limiter, d.Metrics, d.Log),
	)

	repos := d.Repos
	authn := middleware.NewAuthenticator(d.Tokens, d.Revocations, repos.Users)

	// ======================================================
	// USE CASES
	// ======================================================
	registerUC := ucAccount.NewRegister(repos.Users, d.Tokens, d.Audit, d.Resolver)
	loginUC := ucAccount.NewLogin(repos.Users, d.Tokens)
	logoutUC := ucAccount.NewLogout(d.Revocations, d.Audit)
	updateProfileUC := ucAccount.NewUpdateProfile(repos.Users, d.Audit)
	getProfileUC := ucAccount.NewGetProfile(repos.Users)

	listListingsUC := ucListing.NewList(repos.Listings)
	getListingUC := ucListing.NewGet(repos.Listings)
	createListingUC := ucListing.NewCreate(repos.Listings, d.Audit)
	updateListingUC := ucListing.NewUpdate(repos.Listings, d.Audit)
	deleteListingUC := ucListing.NewDelete(repos.Listings, d.Audit)

	createBookingUC := ucBooking.NewCreate(repos.Bookings, repos.Listings, d.Audit)
	listMyBookingsUC := ucBooking.NewListMine(repos.Bookings)
	listLandlordBookingsUC := ucBooking.NewListForLandlord(repos.Bookings, repos.Listings)
	getBookingUC := ucBooking.NewGet(repos.Bookings)
	updateBookingStatusUC := ucBooking.NewUpdateStatus(repos.Bookings, d.Audit)
	cancelBookingUC := ucBooking.NewCancel(repos.Bookings, d.Audit)

	listRoommatesUC := ucRoommate.NewList(repos.Roommates)
	listMyRoommatesUC := ucRoommate.NewListMine(repos.Roommates)
	getRoommateUC := ucRoommate.NewGet(repos.Roommates)
	createRoommateUC := ucRoommate.NewCreate(repos.Roommates, d.Audit)
	updateRoommateUC := ucRoommate.NewUpdate(repos.Roommates, d.Audit)
	deleteRoommateUC := ucRoommate.NewDelete(repos.Roommates, d.Audit)

	listReviewsUC := ucReview.NewList(repos.Reviews, repos.Listings)
	createReviewUC := ucReview.NewCreate(repos.Reviews, repos.Listings, d.Audit)
	updateReviewUC := ucReview.NewUpdate(repos.Reviews, d.Audit)
	deleteReviewUC := ucReview.NewDelete(repos.Reviews, d.Audit)

	uploadImageUC := ucUpload.NewImage(d.Uploader, d.Metrics, d.Audit)
	listAuditLogsUC := ucAuditLog.NewList(repos.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC, updateProfileUC)
	userHandler := handlers.NewUserHandler(getProfileUC)

	listingHandler := handlers.NewListingHandler(
		loc,
		listListingsUC,
		getListingUC,
		createListingUC,
		updateListingUC,
		deleteListingUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		loc,
		createBookingUC,
		listMyBookingsUC,
		listLandlordBookingsUC,
		getBookingUC,
		updateBookingStatusUC,
		cancelBookingUC,
	)

	roommateHandler := handlers.NewRoommateHandler(
		loc,
		listRoommatesUC,
		listMyRoommatesUC,
		getRoommateUC,
		createRoommateUC,
		updateRoommateUC,
		deleteRoommateUC,
	)

	reviewHandler := handlers.NewReviewHandler(
		listReviewsUC,
		createReviewUC,
		updateReviewUC,
		deleteReviewUC,
	)

	uploadHandler := handlers.NewUploadHandler(d.Config.UploadMaxBytes, uploadImageUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(loc, listAuditLogsUC)

	// ======================================================
	// PLATFORM
	// ======================================================
	r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	r.NoRoute(func(c *gin.Context) {
		httperr.Respond(c, httperr.NotFound(MessageNoRoute))
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "OK",
				"message": "Flatmate Finder API is running!",
			})
		})

		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/login", authHandler.Login)

			authAPI.GET("/me", authn.RequireAuth(), authHandler.Me)
			authAPI.PUT("/profile", authn.RequireAuth(), authHandler.UpdateProfile)
			authAPI.POST("/logout", authn.RequireAuth(), authHandler.Logout)
		}

		// ------------------------------
		// LISTINGS + REVIEWS
		// ------------------------------
		listings := api.Group("/listings")
		{
			listings.GET("", listingHandler.List)
			listings.GET("/:id", listingHandler.Get)
			listings.POST("", authn.RequireAuth(), listingHandler.Create)
			listings.PUT("/:id", authn.RequireAuth(), listingHandler.Update)
			listings.DELETE("/:id", authn.RequireAuth(), listingHandler.Delete)

			listings.GET("/:id/reviews", reviewHandler.List)
			listings.POST("/:id/reviews", authn.RequireAuth(), reviewHandler.Create)
			listings.PUT("/:id/reviews/:reviewId", authn.RequireAuth(), reviewHandler.Update)
			listings.DELETE("/:id/reviews/:reviewId", authn.RequireAuth(), reviewHandler.Delete)
		}

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		bookings := api.Group("/bookings", authn.RequireAuth())
		{
			bookings.GET("", bookingHandler.ListMine)
			bookings.GET("/landlord", bookingHandler.ListForLandlord)
			bookings.GET("/:id", bookingHandler.Get)
			bookings.POST("", bookingHandler.Create)
			bookings.PUT("/:id/status", bookingHandler.UpdateStatus)
			bookings.PUT("/:id/cancel", bookingHandler.Cancel)
		}

		// ------------------------------
		// ROOMMATES
		// ------------------------------
		roommates := api.Group("/roommates")
		{
			roommates.GET("", authn.OptionalAuth(), roommateHandler.List)
			roommates.GET("/my-requests", authn.RequireAuth(), roommateHandler.ListMine)
			roommates.GET("/:id", roommateHandler.Get)
			roommates.POST("", authn.RequireAuth(), roommateHandler.Create)
			roommates.PUT("/:id", authn.RequireAuth(), roommateHandler.Update)
			roommates.DELETE("/:id", authn.RequireAuth(), roommateHandler.Delete)
		}

		// ------------------------------
		// USERS / UPLOADS / AUDIT
		// ------------------------------
		api.GET("/users/:id", userHandler.Get)
		api.POST("/uploads/images", authn.RequireAuth(), uploadHandler.Image)
		api.GET("/audit-logs", authn.RequireAuth(), auditLogsHandler.List)
	}

	return r
}
