package handlers

import (
	"errors"
	"net/http"

	listingRepo "voyago/database/repository/listing"
	"voyago/models"
	"voyago/services/listing"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

// ListingHandler exposes listing CRUD and review endpoints.
type ListingHandler struct {
	Svc listing.Service
}

// NewListingHandler wires a ListingHandler.
func NewListingHandler(svc listing.Service) *ListingHandler {
	return &ListingHandler{Svc: svc}
}

// CreateListing handles POST /api/listings.
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var input models.ListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	l, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create listing", err.Error())
		return
	}
	c.JSON(http.StatusCreated, l)
}

// ListListings handles GET /api/listings.
func (h *ListingHandler) ListListings(c *gin.Context) {
	listings, err := h.Svc.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch listings", err.Error())
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	c.JSON(http.StatusOK, listings)
}

// GetListing handles GET /api/listings/:id.
func (h *ListingHandler) GetListing(c *gin.Context) {
	detail, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "listing not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch listing", err.Error())
		return
	}
	c.JSON(http.StatusOK, detail)
}

// UpdateListing handles PUT /api/listings/:id.
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	var input models.ListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	l, err := h.Svc.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "listing not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update listing", err.Error())
		return
	}
	c.JSON(http.StatusOK, l)
}

// DeleteListing handles DELETE /api/listings/:id.
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "listing not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete listing", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateReview handles POST /api/listings/:id/reviews.
func (h *ListingHandler) CreateReview(c *gin.Context) {
	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	review, err := h.Svc.AddReview(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		var verr *listing.ValidationError
		switch {
		case errors.As(err, &verr):
			utils.JSONError(c, http.StatusBadRequest, "invalid review", verr.Error())
		case errors.Is(err, listingRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "listing not found", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create review", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListReviews handles GET /api/listings/:id/reviews.
func (h *ListingHandler) ListReviews(c *gin.Context) {
	reviews, err := h.Svc.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "listing not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch reviews", err.Error())
		return
	}
	c.JSON(http.StatusOK, reviews)
}
