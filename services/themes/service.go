// Package themes resolves the colour palette for a website template. The
// tables are a client-side mirror of the published site designs; template
// lookup never touches the network.
package themes

import (
	"limelight/models"
)

// lightTheme is the fallback palette for unknown or unset templates.
var lightTheme = models.Theme{
	Background: "#FFFFFF",
	Accent:     "#E91E63",
	Surface:    "#F5F5F5",
	Text:       "#1B1B1B",
	TextMuted:  "#6B6B6B",
	ButtonBg:   "#E91E63",
	ButtonText: "#FFFFFF",
	Border:     "#E0E0E0",
	Link:       "#C2185B",
	Error:      "#D32F2F",
	Success:    "#388E3C",
	Warning:    "#F57C00",
}

var darkTheme = models.Theme{
	Background: "#1B1B1B",
	Accent:     "#F48FB1",
	Surface:    "#2A2A2A",
	Text:       "#FAFAFA",
	TextMuted:  "#A0A0A0",
	ButtonBg:   "#F48FB1",
	ButtonText: "#1B1B1B",
	Border:     "#3A3A3A",
	Link:       "#F8BBD0",
	Error:      "#EF9A9A",
	Success:    "#A5D6A7",
	Warning:    "#FFCC80",
}

// templatePalettes carries the per-template overrides. Templates 2, 4 and 6
// are dark designs; the rest build on the light base.
var templatePalettes = map[int]models.Theme{
	1: lightTheme,
	2: darkTheme,
	3: withColors(lightTheme, "#FFEFDB", "#79CDCD"),
	4: withColors(darkTheme, "#172831", "#2D4957"),
	5: withColors(lightTheme, "#F8DEF2", "#EFB0D1"),
	6: darkTheme,
}

// darkTemplates names the templates that render on a dark base, so the
// shell can flip its status bar style.
var darkTemplates = map[int]struct{}{
	2: {}, 4: {}, 6: {},
}

func withColors(base models.Theme, background, accent string) models.Theme {
	base.Background = background
	base.Accent = accent
	base.Surface = background
	base.ButtonBg = accent
	return base
}

type sessionState interface {
	SelectedWebsite() (models.Website, bool)
}

// Service resolves themes against the selected website.
type Service struct {
	session sessionState
}

func NewService(session sessionState) *Service {
	return &Service{session: session}
}

// ForTemplate returns the palette for a template id, defaulting to the
// light palette for ids outside the table.
func (s *Service) ForTemplate(templateID int) models.Theme {
	if theme, ok := templatePalettes[templateID]; ok {
		return theme
	}
	return lightTheme
}

// IsDarkTemplate reports whether a template renders on a dark base.
func (s *Service) IsDarkTemplate(templateID int) bool {
	_, ok := darkTemplates[templateID]
	return ok
}

// Current returns the palette for the selected website, or the light
// default when nothing is selected.
func (s *Service) Current() models.Theme {
	site, ok := s.session.SelectedWebsite()
	if !ok {
		return lightTheme
	}
	return s.ForTemplate(site.TemplateID)
}

// IsDark reports whether the selected website uses a dark template.
func (s *Service) IsDark() bool {
	site, ok := s.session.SelectedWebsite()
	if !ok {
		return false
	}
	return s.IsDarkTemplate(site.TemplateID)
}
