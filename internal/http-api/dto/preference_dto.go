package dto

// Preference values
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	FontSmall = "small"
	FontBase  = "base"
	FontLarge = "large"
)

// Preferences are the per-user display settings.
type Preferences struct {
	Theme    string `json:"theme"`
	FontSize string `json:"fontSize"`
}

func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight, FontSize: FontBase}
}

// Valid reports whether both fields hold known values.
func (p Preferences) Valid() bool {
	themeOK := p.Theme == ThemeLight || p.Theme == ThemeDark
	fontOK := p.FontSize == FontSmall || p.FontSize == FontBase || p.FontSize == FontLarge
	return themeOK && fontOK
}
