package models

// Setting names accepted by the settings service.
const (
	SettingDarkMode         = "dark_mode"
	SettingNotifications    = "notifications"
	SettingLocationServices = "location_services"
)

// Settings are the user-facing app toggles.
type Settings struct {
	DarkMode         bool `json:"dark_mode"`
	Notifications    bool `json:"notifications"`
	LocationServices bool `json:"location_services"`
}

// DefaultSettings returns the values used before anything is stored.
func DefaultSettings() Settings {
	return Settings{
		DarkMode:         false,
		Notifications:    true,
		LocationServices: true,
	}
}
