package bootstrap

import (
	"github.com/x00/Application-Yaga/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Action{},
		&entity.Reaction{},
	)
}

// SeedActions installs the stock action set on first boot. Existing actions
// are left alone so administrative edits survive restarts.
func SeedActions(db *gorm.DB) error {
	defaultActions := []entity.Action{
		{Name: "Promote", Description: "Promote the content", Tooltip: "Promote", CssClass: "ReactPromote", AwardValue: 5},
		{Name: "Insightful", Description: "This content is insightful", Tooltip: "Insightful", CssClass: "ReactInsightful", AwardValue: 1},
		{Name: "Awesome", Description: "This content is awesome", Tooltip: "Awesome", CssClass: "ReactAwesome", AwardValue: 1},
		{Name: "LOL", Description: "This content made me laugh", Tooltip: "LOL", CssClass: "ReactLOL", AwardValue: 0},
	}

	for _, action := range defaultActions {
		var count int64
		if err := db.Model(&entity.Action{}).
			Where("name = ?", action.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&action).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
