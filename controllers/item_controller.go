package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/refind-app/api-go/embedding"
	"github.com/refind-app/api-go/models"
	"github.com/refind-app/api-go/services"
	"github.com/refind-app/api-go/utils"
)

type ItemController struct {
	Items    services.ItemStore
	Matcher  *services.MatchService
	Embedder embedding.Provider
	Log      *zap.SugaredLogger
}

func NewItemController(items services.ItemStore, matcher *services.MatchService,
	embedder embedding.Provider, log *zap.SugaredLogger) *ItemController {
	return &ItemController{Items: items, Matcher: matcher, Embedder: embedder, Log: log}
}

// CreateLostItem godoc
// @Summary Report a lost item
// @Description Creates a lost item report and immediately searches active found items for matches
// @Tags items
// @Accept json
// @Produce json
// @Param request body CreateLostItemRequest true "Lost item details"
// @Success 201 {object} map[string]interface{}
// @Router /lost-items [post]
func (ic *ItemController) CreateLostItem(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req CreateLostItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	item := models.LostItem{
		UserID:            user.UserID,
		Community:         req.Community,
		SubArea:           req.SubArea,
		Name:              req.Name,
		Category:          req.Category,
		Description:       req.Description,
		Purpose:           req.Purpose,
		Location:          req.Location,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		LocationAccuracyM: req.LocationAccuracyM,
		ImageURL:          req.ImageURL,
		LostDate:          req.LostDate,
		Status:            models.ItemStatusActive,
	}

	// An embedding failure only degrades image scoring, it never blocks
	// the report.
	if req.ImageURL != "" {
		vec, err := ic.Embedder.Embed(c.Request.Context(), req.ImageURL)
		if err != nil {
			ic.Log.Warnw("embedding lost item image failed", "image_url", req.ImageURL, "error", err)
		} else {
			item.Embedding = pq.Float64Array(vec)
		}
	}

	if err := ic.Items.CreateLostItem(c.Request.Context(), &item); err != nil {
		ic.Log.Errorw("creating lost item failed", "user_id", user.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lost item"})
		return
	}

	matchCount := ic.Matcher.MatchNewLostItem(c.Request.Context(), &item)

	c.JSON(http.StatusCreated, gin.H{
		"item":        item,
		"match_count": matchCount,
	})
}

// CreateFoundItem godoc
// @Summary Report a found item
// @Description Creates a found item report and immediately searches active lost items for matches
// @Tags items
// @Accept json
// @Produce json
// @Param request body CreateFoundItemRequest true "Found item details"
// @Success 201 {object} map[string]interface{}
// @Router /found-items [post]
func (ic *ItemController) CreateFoundItem(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req CreateFoundItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.IsValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	item := models.FoundItem{
		UserID:            user.UserID,
		Community:         req.Community,
		SubArea:           req.SubArea,
		Name:              req.Name,
		Category:          req.Category,
		Description:       req.Description,
		Purpose:           req.Purpose,
		Location:          req.Location,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		LocationAccuracyM: req.LocationAccuracyM,
		ImageURL:          req.ImageURL,
		FoundDate:         req.FoundDate,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		StorageLocation:   req.StorageLocation,
		Status:            models.ItemStatusActive,
	}

	if req.ImageURL != "" {
		vec, err := ic.Embedder.Embed(c.Request.Context(), req.ImageURL)
		if err != nil {
			ic.Log.Warnw("embedding found item image failed", "image_url", req.ImageURL, "error", err)
		} else {
			item.Embedding = pq.Float64Array(vec)
		}
	}

	if err := ic.Items.CreateFoundItem(c.Request.Context(), &item); err != nil {
		ic.Log.Errorw("creating found item failed", "user_id", user.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create found item"})
		return
	}

	matchCount := ic.Matcher.MatchNewFoundItem(c.Request.Context(), &item)

	c.JSON(http.StatusCreated, gin.H{
		"item":        item,
		"match_count": matchCount,
	})
}
