package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ruralroots/directory-api/internal/core/domain"
	"github.com/ruralroots/directory-api/internal/core/ports"
	"github.com/ruralroots/directory-api/internal/core/views"
)

// FarmHandler handles HTTP requests for farm listings and reviews.
type FarmHandler struct {
	service ports.DirectoryService
}

func NewFarmHandler(service ports.DirectoryService) *FarmHandler {
	return &FarmHandler{service: service}
}

// List handles GET /v1/farms with filter and sort query parameters.
//
// @Summary      List farms
// @Tags         farms
// @Produce      json
// @Param        q       query     string  false  "Substring match against name, location, description, or tags"
// @Param        tag     query     string  false  "Exact tag filter ('all' disables)"
// @Param        region  query     string  false  "Exact region filter ('all' disables)"
// @Param        sort    query     string  false  "Sort key: rating, name, or reviews"
// @Success      200     {object}  listFarmsResponse
// @Router       /v1/farms [get]
func (h *FarmHandler) List(c echo.Context) error {
	snap := h.service.Snapshot()
	farms := views.ListFarms(
		snap.Farms,
		c.QueryParam("q"),
		c.QueryParam("tag"),
		c.QueryParam("region"),
		c.QueryParam("sort"),
	)
	return c.JSON(http.StatusOK, toFarmList(farms))
}

// Create handles POST /v1/farms. Requires the farm role.
//
// @Summary      List a new farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createFarmRequest  true  "Farm details"
// @Success      201   {object}  farmResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/farms [post]
func (h *FarmHandler) Create(c echo.Context) error {
	var req createFarmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	farm, err := h.service.AddFarm(c.Request().Context(), ports.AddFarmInput{
		Name:        req.Name,
		Location:    req.Location,
		Region:      req.Region,
		Description: req.Description,
		Tags:        req.Tags,
		Contact:     req.Contact,
		Website:     req.Website,
		Image1:      req.Image1,
		Image2:      req.Image2,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toFarmResponse(farm))
}

// AddReview handles POST /v1/farms/:id/reviews. The review author is the
// store's active session, not a request field.
//
// @Summary      Review a farm
// @Tags         farms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Farm id"
// @Param        body  body      addReviewRequest  true  "Review"
// @Success      201   {object}  farmResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/farms/{id}/reviews [post]
func (h *FarmHandler) AddReview(c echo.Context) error {
	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	farm, err := h.service.AddReview(c.Request().Context(), c.Param("id"), req.Rating, req.Text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toFarmResponse(farm))
}

// Tags handles GET /v1/farms/meta/tags: the distinct tag set across all
// farms, ascending.
//
// @Summary      Distinct farm tags
// @Tags         farms
// @Produce      json
// @Success      200  {object}  farmMetaResponse
// @Router       /v1/farms/meta/tags [get]
func (h *FarmHandler) Tags(c echo.Context) error {
	snap := h.service.Snapshot()
	return c.JSON(http.StatusOK, farmMetaResponse{Tags: views.DistinctTags(snap.Farms)})
}

// Regions handles GET /v1/farms/meta/regions: the distinct regions in
// use plus the full zone list offered when creating a farm.
//
// @Summary      Distinct farm regions
// @Tags         farms
// @Produce      json
// @Success      200  {object}  farmMetaResponse
// @Router       /v1/farms/meta/regions [get]
func (h *FarmHandler) Regions(c echo.Context) error {
	snap := h.service.Snapshot()
	return c.JSON(http.StatusOK, farmMetaResponse{
		Regions: views.DistinctRegions(snap.Farms),
		Zones:   domain.RegionalZones,
	})
}

// MyFarms handles GET /v1/me/farms: the caller's own listings in
// snapshot order.
//
// @Summary      Farms owned by the caller
// @Tags         farms
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listFarmsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/me/farms [get]
func (h *FarmHandler) MyFarms(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	snap := h.service.Snapshot()
	return c.JSON(http.StatusOK, toFarmList(views.FarmsOwnedBy(snap.Farms, userID)))
}
