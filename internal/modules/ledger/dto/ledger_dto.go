package dto

import (
	"github.com/x00/Application-Yaga/internal/entity"
	ledger "github.com/x00/Application-Yaga/internal/modules/ledger/service"
)

type SetReactionRequest struct {
	ParentID       int64  `json:"parent_id" binding:"required,gt=0"`
	ParentType     string `json:"parent_type" binding:"required,oneof=discussion comment activity"`
	ParentAuthorID int64  `json:"parent_author_id" binding:"required,gt=0"`
	ActionID       int64  `json:"action_id" binding:"required,gt=0"`
}

type SetReactionResponse struct {
	Outcome string `json:"outcome"`
	// Reaction is null when the call toggled the reaction off.
	Reaction *entity.Reaction `json:"reaction"`
}

type SummaryResponse struct {
	ParentID   int64                 `json:"parent_id"`
	ParentType string                `json:"parent_type"`
	Summary    []ledger.SummaryEntry `json:"summary"`
}

type UserReactionResponse struct {
	Reaction *entity.Reaction `json:"reaction"`
}

type ReceivedCountResponse struct {
	UserID   int64 `json:"user_id"`
	ActionID int64 `json:"action_id"`
	Count    int64 `json:"count"`
}
