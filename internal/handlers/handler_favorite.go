package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type favoriteHandler struct {
	favoriteService portssvc.FavoriteSvcFacade
}

func newFavoriteHandler(fs portssvc.FavoriteSvcFacade) *favoriteHandler {
	return &favoriteHandler{favoriteService: fs}
}

// RegisterFavoriteRoutes registers the favorites routes; rg must already carry AuthMiddleware.
func RegisterFavoriteRoutes(rg *gin.RouterGroup, favoriteService portssvc.FavoriteSvcFacade) {
	h := newFavoriteHandler(favoriteService)

	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.listFavorites)
		favorites.POST("", h.createFavorite)
		favorites.GET("/check_favorite", h.checkFavorite)
		favorites.GET("/:id", h.getFavorite)
		favorites.DELETE("/:id", h.deleteFavorite)
	}
}

// currentUser resolves the JWT subject or answers 401.
func currentUser(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

// listFavorites godoc
// @Summary List favorite pairs
// @Description Lists the caller's favorite currency pairs, newest first
// @Tags favorites
// @Produce  json
// @Success 200 {array} dto.FavoriteResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /favorites [get]
func (h *favoriteHandler) listFavorites(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	favs, err := h.favoriteService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list favorites")
		return
	}

	c.JSON(http.StatusOK, dto.ToListFavoriteResponse(favs))
}

// createFavorite godoc
// @Summary Add a favorite pair
// @Description Bookmarks a pair of registered currencies for the caller
// @Tags favorites
// @Accept  json
// @Produce  json
// @Param   favorite body dto.CreateFavoriteRequest true "Currency pair"
// @Success 201 {object} dto.FavoriteResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown currency"
// @Failure 409 {object} dto.ErrorResponse "Pair already a favorite"
// @Security BearerAuth
// @Router /favorites [post]
func (h *favoriteHandler) createFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	var req dto.CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	fav, err := h.favoriteService.AddFavorite(c.Request.Context(), userID, req.FromCurrencyCode, req.ToCurrencyCode)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add favorite")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFavoriteResponse(fav))
}

// getFavorite godoc
// @Summary Get a favorite pair
// @Tags favorites
// @Produce  json
// @Param   id path string true "Favorite ID"
// @Success 200 {object} dto.FavoriteResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /favorites/{id} [get]
func (h *favoriteHandler) getFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("favorite_id", c.Param("id")))
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	fav, err := h.favoriteService.GetFavorite(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve favorite")
		return
	}

	c.JSON(http.StatusOK, dto.ToFavoriteResponse(fav))
}

// deleteFavorite godoc
// @Summary Remove a favorite pair
// @Tags favorites
// @Param   id path string true "Favorite ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /favorites/{id} [delete]
func (h *favoriteHandler) deleteFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("favorite_id", c.Param("id")))
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	if err := h.favoriteService.RemoveFavorite(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, logger, err, "Failed to remove favorite")
		return
	}

	logger.Info("Favorite removed")
	c.Status(http.StatusNoContent)
}

// checkFavorite godoc
// @Summary Check whether a pair is a favorite
// @Tags favorites
// @Produce  json
// @Param   from_currency query string true "Source currency code"
// @Param   to_currency query string true "Target currency code"
// @Success 200 {object} dto.CheckFavoriteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /favorites/check_favorite [get]
func (h *favoriteHandler) checkFavorite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	var query dto.CheckFavoriteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	if query.FromCurrency == "" || query.ToCurrency == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Both from_currency and to_currency are required"})
		return
	}

	isFavorite, err := h.favoriteService.IsFavorite(c.Request.Context(), userID, query.FromCurrency, query.ToCurrency)
	if err != nil {
		respondWithError(c, logger, err, "Failed to check favorite")
		return
	}

	c.JSON(http.StatusOK, dto.CheckFavoriteResponse{IsFavorite: isFavorite})
}
