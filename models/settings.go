package models

import "gorm.io/datatypes"

// ThemeConfig is a deployment-wide singleton.
type ThemeConfig struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	LogoURL        string `json:"logoUrl"`
	SiteName       string `json:"siteName"`
}

func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		PrimaryColor:   "#00D766",
		SecondaryColor: "#00B359",
		LogoURL:        "",
		SiteName:       "Academy",
	}
}

// Settings is the single row holding the theme document.
type Settings struct {
	ID          uint                            `gorm:"primaryKey" json:"id"`
	ThemeConfig datatypes.JSONType[ThemeConfig] `gorm:"type:jsonb;column:theme_config" json:"themeConfig"`
}

func (Settings) TableName() string { return "settings" }
