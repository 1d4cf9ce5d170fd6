package domain

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidValue is returned when a value falls outside a closed set.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnknownField is returned when a field name does not exist on the target.
	ErrUnknownField = errors.New("unknown field")
)

// Template is a layout variant applied to the whole resume.
type Template string

const (
	TemplateModern  Template = "modern"
	TemplateClassic Template = "classic"
	TemplateMinimal Template = "minimal"
)

// Templates lists every layout variant in presentation order.
func Templates() []Template {
	return []Template{TemplateModern, TemplateClassic, TemplateMinimal}
}

func ParseTemplate(s string) (Template, error) {
	for _, t := range Templates() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidValue, "template %q", s)
}

// Theme is a named colour scheme.
type Theme string

const (
	ThemeBlue   Theme = "blue"
	ThemeGreen  Theme = "green"
	ThemePurple Theme = "purple"
	ThemeDark   Theme = "dark"
	ThemeRose   Theme = "rose"
	ThemeIndigo Theme = "indigo"
)

func Themes() []Theme {
	return []Theme{ThemeBlue, ThemeGreen, ThemePurple, ThemeDark, ThemeRose, ThemeIndigo}
}

func ParseTheme(s string) (Theme, error) {
	for _, t := range Themes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidValue, "theme %q", s)
}

// Palette is the colour quadruple a theme resolves to.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Light     string `json:"light"`
	Dark      string `json:"dark"`
}

// Palette returns the colours for t. Unknown themes fall back to blue so a
// document is always renderable.
func (t Theme) Palette() Palette {
	switch t {
	case ThemeGreen:
		return Palette{Primary: "#10b981", Secondary: "#34d399", Light: "#ecfdf5", Dark: "#059669"}
	case ThemePurple:
		return Palette{Primary: "#8b5cf6", Secondary: "#a78bfa", Light: "#f5f3ff", Dark: "#7c3aed"}
	case ThemeDark:
		return Palette{Primary: "#1e293b", Secondary: "#475569", Light: "#f1f5f9", Dark: "#0f172a"}
	case ThemeRose:
		return Palette{Primary: "#e11d48", Secondary: "#fb7185", Light: "#fff1f2", Dark: "#be123c"}
	case ThemeIndigo:
		return Palette{Primary: "#6366f1", Secondary: "#818cf8", Light: "#eef2ff", Dark: "#4f46e5"}
	default:
		return Palette{Primary: "#3b82f6", Secondary: "#60a5fa", Light: "#eff6ff", Dark: "#1d4ed8"}
	}
}

// Font is a typeface choice.
type Font string

const (
	FontInter      Font = "inter"
	FontRoboto     Font = "roboto"
	FontMontserrat Font = "montserrat"
	FontOpenSans   Font = "opensans"
)

func Fonts() []Font {
	return []Font{FontInter, FontRoboto, FontMontserrat, FontOpenSans}
}

func ParseFont(s string) (Font, error) {
	for _, f := range Fonts() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidValue, "font %q", s)
}

// Name is the display name of the typeface.
func (f Font) Name() string {
	switch f {
	case FontRoboto:
		return "Roboto"
	case FontMontserrat:
		return "Montserrat"
	case FontOpenSans:
		return "Open Sans"
	default:
		return "Inter"
	}
}

// Family is the CSS font-family value.
func (f Font) Family() string {
	return "'" + f.Name() + "', sans-serif"
}

// Spacing is the layout density.
type Spacing string

const (
	SpacingCompact     Spacing = "compact"
	SpacingComfortable Spacing = "comfortable"
	SpacingSpacious    Spacing = "spacious"
)

func Spacings() []Spacing {
	return []Spacing{SpacingCompact, SpacingComfortable, SpacingSpacious}
}

func ParseSpacing(s string) (Spacing, error) {
	for _, sp := range Spacings() {
		if string(sp) == s {
			return sp, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidValue, "spacing %q", s)
}

// Padding is the page padding for the density.
func (s Spacing) Padding() string {
	switch s {
	case SpacingCompact:
		return "2rem"
	case SpacingSpacious:
		return "3.5rem"
	default:
		return "2.75rem"
	}
}

// SkillCategory is one of the fixed skill buckets.
type SkillCategory string

const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
	SkillTools     SkillCategory = "tools"
	SkillLanguages SkillCategory = "languages"
)

// SkillCategories lists the fixed buckets in display order.
func SkillCategories() []SkillCategory {
	return []SkillCategory{SkillTechnical, SkillSoft, SkillTools, SkillLanguages}
}

func ParseSkillCategory(s string) (SkillCategory, error) {
	for _, c := range SkillCategories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidValue, "skill category %q", s)
}
