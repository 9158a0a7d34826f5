package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Preferences holds per-user client state that must survive sessions:
// the active ledger selection and the theme.
type Preferences struct {
	UserID          uuid.UUID  `json:"user_id"`
	CurrentLedgerID *uuid.UUID `json:"current_ledger_id"`
	Theme           string     `json:"theme"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func ValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark || theme == ThemeSystem
}
