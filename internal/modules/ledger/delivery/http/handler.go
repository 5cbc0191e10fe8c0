package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/x00/Application-Yaga/internal/entity"
	ledgerDto "github.com/x00/Application-Yaga/internal/modules/ledger/dto"
	ledger "github.com/x00/Application-Yaga/internal/modules/ledger/service"
	"github.com/x00/Application-Yaga/pkg/response"
	"github.com/x00/Application-Yaga/pkg/validator"
)

type LedgerHandler struct {
	service ledger.LedgerService
}

func NewLedgerHandler(service ledger.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

func (h *LedgerHandler) ListActions(c *gin.Context) {
	actions, err := h.service.ListActions(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

func (h *LedgerHandler) GetAction(c *gin.Context) {
	actionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action id"})
		return
	}

	action, err := h.service.GetAction(c.Request.Context(), actionID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, action)
}

func (h *LedgerHandler) SetReaction(c *gin.Context) {
	var req ledgerDto.SetReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	reaction, outcome, err := h.service.SetReaction(
		c.Request.Context(),
		req.ParentID,
		entity.ParentType(req.ParentType),
		req.ParentAuthorID,
		userID,
		req.ActionID,
	)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, ledgerDto.SetReactionResponse{
		Outcome:  string(outcome),
		Reaction: reaction,
	})
}

func (h *LedgerHandler) GetReactionSummary(c *gin.Context) {
	parentType := c.Param("parentType")
	parentID, err := strconv.ParseInt(c.Param("parentID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent id"})
		return
	}

	// Unknown types and non-positive ids come back as an empty summary, not
	// an error; the model is permissive on reads.
	summary, err := h.service.GetReactionSummary(c.Request.Context(), parentID, entity.ParentType(parentType))
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	if summary == nil {
		summary = []ledger.SummaryEntry{}
	}

	c.JSON(http.StatusOK, ledgerDto.SummaryResponse{
		ParentID:   parentID,
		ParentType: parentType,
		Summary:    summary,
	})
}

func (h *LedgerHandler) GetMyReaction(c *gin.Context) {
	parentType := c.Param("parentType")
	parentID, err := strconv.ParseInt(c.Param("parentID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parent id"})
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	reaction, err := h.service.GetUserReaction(c.Request.Context(), parentID, entity.ParentType(parentType), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, ledgerDto.UserReactionResponse{Reaction: reaction})
}

func (h *LedgerHandler) GetReceivedCount(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	actionID, err := strconv.ParseInt(c.Query("action_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action id"})
		return
	}

	count, err := h.service.GetUserReactionCount(c.Request.Context(), userID, actionID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, ledgerDto.ReceivedCountResponse{
		UserID:   userID,
		ActionID: actionID,
		Count:    count,
	})
}
