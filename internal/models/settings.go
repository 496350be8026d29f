package models

type Settings struct {
	RemindersEnabled bool `json:"reminders_enabled"`
}

func DefaultSettings() Settings {
	return Settings{RemindersEnabled: true}
}
