package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/x00/Application-Yaga/internal/entity"
	"github.com/x00/Application-Yaga/internal/modules/events"
	"github.com/x00/Application-Yaga/internal/modules/ledger/repository"
	"github.com/x00/Application-Yaga/pkg/apperror"
)

// Outcome tags what a SetReaction call did to the store.
type Outcome string

const (
	OutcomeCreated Outcome = events.OutcomeCreated
	OutcomeUpdated Outcome = events.OutcomeUpdated
	OutcomeRemoved Outcome = events.OutcomeRemoved
)

// Reactor is one user who applied an action, with the time they did.
type Reactor struct {
	UserID int64     `json:"user_id"`
	Date   time.Time `json:"date"`
}

// SummaryEntry pairs one configured action with everyone who applied it to a
// piece of content. Every configured action is always present, reactors or
// not, so "0 reactions" states render without special casing.
type SummaryEntry struct {
	ActionID    int64     `json:"action_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tooltip     string    `json:"tooltip"`
	CssClass    string    `json:"css_class"`
	AwardValue  int       `json:"award_value"`
	Reactors    []Reactor `json:"reactors"`
}

// LedgerService records which action a user applied to a piece of content and
// enforces the one-reaction-per-user-per-content rule.
type LedgerService interface {
	ListActions(ctx context.Context) ([]entity.Action, error)
	GetAction(ctx context.Context, actionID int64) (*entity.Action, error)
	// GetReactionSummary returns nil without error for an unknown parent type
	// or non-positive id; display code degrades to "no reactions".
	GetReactionSummary(ctx context.Context, parentID int64, parentType entity.ParentType) ([]SummaryEntry, error)
	GetUserReaction(ctx context.Context, parentID int64, parentType entity.ParentType, userID int64) (*entity.Reaction, error)
	// GetUserReactionCount counts reactions the user received as a content
	// author, not reactions they gave.
	GetUserReactionCount(ctx context.Context, userID, actionID int64) (int64, error)
	SetReaction(ctx context.Context, parentID int64, parentType entity.ParentType, parentAuthorID, userID, actionID int64) (*entity.Reaction, Outcome, error)
}

type ledgerService struct {
	actions    repository.ActionRepository
	reactions  repository.ReactionRepository
	dispatcher *events.Dispatcher

	summaries *summaryCache

	actionMu     sync.RWMutex
	actionCache  []entity.Action
	actionLoaded bool

	now func() time.Time
}

func NewLedgerService(actions repository.ActionRepository, reactions repository.ReactionRepository, dispatcher *events.Dispatcher) LedgerService {
	return &ledgerService{
		actions:    actions,
		reactions:  reactions,
		dispatcher: dispatcher,
		summaries:  newSummaryCache(),
		now:        time.Now,
	}
}

// ListActions loads the configured actions once and serves them from memory
// for the rest of the process lifetime. Action edits are an administrative
// operation that requires a restart.
func (s *ledgerService) ListActions(ctx context.Context) ([]entity.Action, error) {
	s.actionMu.RLock()
	if s.actionLoaded {
		cached := copyActions(s.actionCache)
		s.actionMu.RUnlock()
		return cached, nil
	}
	s.actionMu.RUnlock()

	actions, err := s.actions.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}

	s.actionMu.Lock()
	if !s.actionLoaded {
		s.actionCache = actions
		s.actionLoaded = true
	}
	// callers get a copy so nobody can mutate the cache through the result
	out := copyActions(s.actionCache)
	s.actionMu.Unlock()

	return out, nil
}

func copyActions(actions []entity.Action) []entity.Action {
	out := make([]entity.Action, len(actions))
	copy(out, actions)
	return out
}

func (s *ledgerService) GetAction(ctx context.Context, actionID int64) (*entity.Action, error) {
	return s.actions.FindByID(ctx, actionID)
}

func (s *ledgerService) GetReactionSummary(ctx context.Context, parentID int64, parentType entity.ParentType) ([]SummaryEntry, error) {
	if !parentType.Valid() || parentID <= 0 {
		return nil, nil
	}

	key := summaryKey{ParentType: parentType, ParentID: parentID}
	if summary, ok := s.summaries.Get(key); ok {
		return summary, nil
	}

	actions, err := s.ListActions(ctx)
	if err != nil {
		return nil, err
	}

	summary := make([]SummaryEntry, 0, len(actions))
	for _, action := range actions {
		rows, err := s.reactions.ListReactors(ctx, action.ActionID, parentID, parentType)
		if err != nil {
			return nil, err
		}

		entry := SummaryEntry{
			ActionID:    action.ActionID,
			Name:        action.Name,
			Description: action.Description,
			Tooltip:     action.Tooltip,
			CssClass:    action.CssClass,
			AwardValue:  action.AwardValue,
			Reactors:    make([]Reactor, 0, len(rows)),
		}
		for _, row := range rows {
			entry.Reactors = append(entry.Reactors, Reactor{
				UserID: row.InsertUserID,
				Date:   row.DateInserted,
			})
		}
		summary = append(summary, entry)
	}

	s.summaries.Put(key, summary)
	return summary, nil
}

func (s *ledgerService) GetUserReaction(ctx context.Context, parentID int64, parentType entity.ParentType, userID int64) (*entity.Reaction, error) {
	if !parentType.Valid() || parentID <= 0 {
		return nil, nil
	}
	return s.reactions.FindByUser(ctx, parentID, parentType, userID)
}

func (s *ledgerService) GetUserReactionCount(ctx context.Context, userID, actionID int64) (int64, error) {
	return s.reactions.CountReceived(ctx, userID, actionID)
}

// SetReaction is the only write path and the only place the uniqueness rule
// is enforced in code. The cached summary for the content item is dropped
// before the outcome is decided: a spurious invalidation just repopulates
// from the store, a stale read never corrects itself.
func (s *ledgerService) SetReaction(ctx context.Context, parentID int64, parentType entity.ParentType, parentAuthorID, userID, actionID int64) (*entity.Reaction, Outcome, error) {
	if !parentType.Valid() || parentID <= 0 {
		return nil, "", apperror.ErrInvalidInput
	}

	s.summaries.Invalidate(summaryKey{ParentType: parentType, ParentID: parentID})

	current, err := s.reactions.FindByUser(ctx, parentID, parentType, userID)
	if err != nil {
		return nil, "", err
	}

	var (
		outcome Outcome
		row     *entity.Reaction
	)

	switch {
	case current == nil:
		row = &entity.Reaction{
			ActionID:       actionID,
			ParentID:       parentID,
			ParentType:     parentType,
			ParentAuthorID: parentAuthorID,
			InsertUserID:   userID,
			DateInserted:   s.now(),
		}
		if err := s.reactions.Create(ctx, row); err != nil {
			return nil, "", err
		}
		outcome = OutcomeCreated

	case current.ActionID == actionID:
		// same action again: toggle off
		if err := s.reactions.Delete(ctx, current); err != nil {
			return nil, "", err
		}
		outcome = OutcomeRemoved

	default:
		// different action: replace in place, insert identity untouched
		current.ActionID = actionID
		current.DateInserted = s.now()
		if err := s.reactions.Update(ctx, current); err != nil {
			return nil, "", err
		}
		outcome = OutcomeUpdated
		row = current
	}

	s.dispatcher.Notify(ctx, events.ReactionEvent{
		ID:             uuid.NewString(),
		ParentID:       parentID,
		ParentType:     string(parentType),
		ParentAuthorID: parentAuthorID,
		InsertUserID:   userID,
		ActionID:       actionID,
		Outcome:        string(outcome),
		OccurredAt:     s.now(),
	})

	return row, outcome, nil
}
