package entity

// Action is a configured reaction type. Actions are administrative reference
// data: the ledger only ever reads them.
type Action struct {
	ActionID    int64  `gorm:"primaryKey;autoIncrement" json:"action_id"`
	Name        string `gorm:"size:50;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Tooltip     string `gorm:"size:255" json:"tooltip"`
	CssClass    string `gorm:"size:50" json:"css_class"`
	AwardValue  int    `gorm:"not null;default:0" json:"award_value"`
}

func (a *Action) TableName() string {
	return "actions"
}
