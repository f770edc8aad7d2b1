package listings

import (
	"errors"

	"imovia-backend/internal/domain"
	"imovia-backend/internal/filter"
	"imovia-backend/internal/middleware"
	"imovia-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers holds dependencies for listing endpoints.
type Handlers struct {
	Store *Store
}

// GET /api/v1/listings/get-all-listings — full collection run through the
// filter engine; absent query params impose no constraint.
func (h *Handlers) GetAllListings(c *fiber.Ctx) error {
	criteria := filter.Criteria{
		Type:     c.Query("type"),
		City:     c.Query("city"),
		MinPrice: c.Query("min_price"),
		MaxPrice: c.Query("max_price"),
		MinArea:  c.Query("min_area"),
		MaxArea:  c.Query("max_area"),
	}
	data := filter.Apply(h.Store.All(), criteria)
	return response.Success(c, "Listings fetched successfully", data, nil)
}

// GET /api/v1/listings/get-cities — distinct cities for the filter selector.
func (h *Handlers) GetCities(c *fiber.Ctx) error {
	cities := filter.DistinctCities(h.Store.All())
	return response.Success(c, "Cities fetched successfully", cities, nil)
}

// GET /api/v1/listings/get-listing/:listing_id
func (h *Handlers) GetListingByID(c *fiber.Ctx) error {
	id := c.Params("listing_id")
	if id == "" {
		return response.Error(c, "listing_id is required", fiber.StatusBadRequest, nil)
	}
	listing, ok := h.Store.GetByID(id)
	if !ok {
		return response.Error(c, "Listing not found", fiber.StatusNotFound, nil)
	}
	return response.Success(c, "Listing fetched successfully", listing, nil)
}

// GET /api/v1/listings/get-my-listings — the session user's own listings.
func (h *Handlers) GetMyListings(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return response.Unauthorized(c, "Not authenticated")
	}
	data := h.Store.ByOwner(user.ID)
	return response.Success(c, "Listings fetched successfully", data, nil)
}

type createRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	Price        float64  `json:"price"`
	Area         float64  `json:"area"`
	City         string   `json:"city"`
	Neighborhood string   `json:"neighborhood"`
	Images       []string `json:"images"`
	ContactName  string   `json:"contactName"`
	ContactPhone string   `json:"contactPhone"`
	ContactEmail string   `json:"contactEmail"`
}

// POST /api/v1/listings/create-listing — owner is always the session user.
func (h *Handlers) CreateListing(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return response.Unauthorized(c, "Not authenticated")
	}
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	listing, err := h.Store.Create(c.Context(), CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Type:         domain.PropertyType(req.Type),
		Price:        req.Price,
		Area:         req.Area,
		City:         req.City,
		Neighborhood: req.Neighborhood,
		Images:       req.Images,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		OwnerID:      user.ID,
	})
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return response.Error(c, verr.Error(), fiber.StatusBadRequest, fiber.Map{"field": verr.Field})
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.SuccessCreated(c, "Listing created successfully", listing, nil)
}

type editRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Type         *string   `json:"type"`
	Price        *float64  `json:"price"`
	Area         *float64  `json:"area"`
	City         *string   `json:"city"`
	Neighborhood *string   `json:"neighborhood"`
	Images       *[]string `json:"images"`
	ContactName  *string   `json:"contactName"`
	ContactPhone *string   `json:"contactPhone"`
	ContactEmail *string   `json:"contactEmail"`
}

// PUT /api/v1/listings/edit-listing/:listing_id — partial merge; id, ownerId
// and createdAt are not part of the request shape and cannot be changed.
func (h *Handlers) EditListing(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return response.Unauthorized(c, "Not authenticated")
	}
	id := c.Params("listing_id")
	if id == "" {
		return response.Error(c, "listing_id is required", fiber.StatusBadRequest, nil)
	}
	listing, ok := h.Store.GetByID(id)
	if !ok {
		return response.Error(c, "Listing not found", fiber.StatusNotFound, nil)
	}
	if listing.OwnerID != user.ID {
		return response.Error(c, "Unauthorized listing edit", fiber.StatusForbidden, nil)
	}

	var req editRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	var typ *domain.PropertyType
	if req.Type != nil {
		t := domain.PropertyType(*req.Type)
		typ = &t
	}
	if err := h.Store.Update(c.Context(), id, UpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		Type:         typ,
		Price:        req.Price,
		Area:         req.Area,
		City:         req.City,
		Neighborhood: req.Neighborhood,
		Images:       req.Images,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
	}); err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	updated, _ := h.Store.GetByID(id)
	return response.Success(c, "Listing updated successfully", updated, nil)
}

// DELETE /api/v1/listings/delete-listing/:listing_id
func (h *Handlers) DeleteListing(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return response.Unauthorized(c, "Not authenticated")
	}
	id := c.Params("listing_id")
	if id == "" {
		return response.Error(c, "listing_id is required", fiber.StatusBadRequest, nil)
	}
	listing, ok := h.Store.GetByID(id)
	if !ok {
		return response.Error(c, "Listing not found", fiber.StatusNotFound, nil)
	}
	if listing.OwnerID != user.ID {
		return response.Error(c, "Unauthorized listing delete", fiber.StatusForbidden, nil)
	}
	if err := h.Store.Delete(c.Context(), id); err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Listing deleted successfully", nil, nil)
}
