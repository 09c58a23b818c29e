package config

const (
	defaultProfileName   = "Elrowe"
	defaultProfileAvatar = "https://picsum.photos/seed/elrowe-avatar/200"
	defaultView          = "grid"
	defaultSortBy        = "rating"
	defaultSortDirection = "desc"
	defaultLocale        = "en"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		DemoData: true,
		Profile: Profile{
			Name:      defaultProfileName,
			AvatarURL: defaultProfileAvatar,
		},
		UI: UI{
			View:          defaultView,
			SortBy:        defaultSortBy,
			SortDirection: defaultSortDirection,
			Locale:        defaultLocale,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
