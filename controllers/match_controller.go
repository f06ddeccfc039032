package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/refind-app/api-go/apperrors"
	"github.com/refind-app/api-go/services"
	"github.com/refind-app/api-go/utils"
)

type MatchController struct {
	Matches    services.MatchStore
	Rejections *services.RejectionService
	Log        *zap.SugaredLogger
}

func NewMatchController(matches services.MatchStore, rejections *services.RejectionService,
	log *zap.SugaredLogger) *MatchController {
	return &MatchController{Matches: matches, Rejections: rejections, Log: log}
}

// GetMyMatches godoc
// @Summary List the caller's matches
// @Description Returns every match involving one of the caller's items, newest first
// @Tags matches
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /matches [get]
func (mc *MatchController) GetMyMatches(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	matches, err := mc.Matches.ForUser(c.Request.Context(), user.UserID)
	if err != nil {
		mc.Log.Errorw("listing matches failed", "user_id", user.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list matches"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// AcceptMatch godoc
// @Summary Accept a match
// @Description Records the caller's acceptance; contact details unlock once both sides accept
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Router /matches/{id}/accept [post]
func (mc *MatchController) AcceptMatch(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}

	match, err := mc.Rejections.AcceptMatch(c.Request.Context(), matchID, user.UserID)
	if err != nil {
		mc.respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"match":      match,
		"both_sides": match.OwnerAccepted && match.FinderAccepted,
	})
}

// RejectMatch godoc
// @Summary Reject a match
// @Description Permanently rejects the match and blacklists the item pair; retrying is a no-op
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param request body RejectMatchRequest false "Optional rejection feedback"
// @Success 200 {object} map[string]interface{}
// @Router /matches/{id}/reject [post]
func (mc *MatchController) RejectMatch(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}

	var feedback *services.RejectionFeedback
	var req RejectMatchRequest
	if err := c.ShouldBindJSON(&req); err == nil && (req.Reason != "" || req.Details != "") {
		feedback = &services.RejectionFeedback{Reason: req.Reason, Details: req.Details}
	}

	result, err := mc.Rejections.RejectMatch(c.Request.Context(), matchID, user.UserID, feedback)
	if err != nil {
		mc.respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rejected":         true,
		"already_rejected": result.AlreadyRejected,
	})
}

// ConfirmReturn godoc
// @Summary Confirm the item was returned
// @Description Owner-only confirmation that completes the match and retires both items
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Router /matches/{id}/confirm-return [post]
func (mc *MatchController) ConfirmReturn(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	matchID, ok := matchIDParam(c)
	if !ok {
		return
	}

	match, err := mc.Rejections.ConfirmReturn(c.Request.Context(), matchID, user.UserID)
	if err != nil {
		mc.respondMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

func matchIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match id"})
		return 0, false
	}
	return uint(id), true
}

func (mc *MatchController) respondMatchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Match no longer exists"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your match"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		mc.Log.Errorw("match operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
