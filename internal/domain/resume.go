package domain

// Resume is an immutable snapshot of the document being edited. Every
// transform returns a new value and leaves the receiver untouched.
type Resume struct {
	Personal       Personal         `json:"personal"`
	WorkExperience []WorkEntry      `json:"workExperience"`
	Education      []EducationEntry `json:"education"`
	Skills         []SkillGroup     `json:"skills"`
	Customizations Customizations   `json:"customizations"`
}

type Personal struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
	Website   string `json:"website"`
	GitHub    string `json:"github"`
	Summary   string `json:"summary"`
}

// WorkEntry is one role. EndDate is not displayed while Current is set.
type WorkEntry struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type EducationEntry struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	Field        string `json:"field"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	GPA          string `json:"gpa"`
	Achievements string `json:"achievements"`
}

type SkillGroup struct {
	Category SkillCategory `json:"category"`
	Items    []string      `json:"items"`
}

type Customizations struct {
	Template Template `json:"template"`
	Theme    Theme    `json:"theme"`
	Font     Font     `json:"font"`
	Spacing  Spacing  `json:"spacing"`
}

// DefaultCustomizations is the look of a fresh document.
func DefaultCustomizations() Customizations {
	return Customizations{
		Template: TemplateModern,
		Theme:    ThemeBlue,
		Font:     FontInter,
		Spacing:  SpacingComfortable,
	}
}

// Default returns the all-empty document.
func Default() Resume {
	return Resume{
		WorkExperience: []WorkEntry{},
		Education:      []EducationEntry{},
		Skills:         emptySkills(),
		Customizations: DefaultCustomizations(),
	}
}

func emptySkills() []SkillGroup {
	cats := SkillCategories()
	groups := make([]SkillGroup, 0, len(cats))
	for _, c := range cats {
		groups = append(groups, SkillGroup{Category: c, Items: []string{}})
	}
	return groups
}

// Clone returns a deep copy that shares no backing arrays with r.
func (r Resume) Clone() Resume {
	out := r
	out.WorkExperience = append(make([]WorkEntry, 0, len(r.WorkExperience)), r.WorkExperience...)
	out.Education = append(make([]EducationEntry, 0, len(r.Education)), r.Education...)
	out.Skills = make([]SkillGroup, 0, len(r.Skills))
	for _, g := range r.Skills {
		out.Skills = append(out.Skills, SkillGroup{
			Category: g.Category,
			Items:    append(make([]string, 0, len(g.Items)), g.Items...),
		})
	}
	return out
}

// Normalize restores the structural invariants on a document that came from
// outside the editor: nil lists become empty, the fixed skill categories are
// all present in display order, and unset or unknown customizations take
// their defaults.
func (r Resume) Normalize() Resume {
	out := r.Clone()

	byCategory := make(map[SkillCategory][]string, len(out.Skills))
	for _, g := range out.Skills {
		byCategory[g.Category] = append(byCategory[g.Category], g.Items...)
	}
	out.Skills = emptySkills()
	for i, g := range out.Skills {
		if items, ok := byCategory[g.Category]; ok {
			out.Skills[i].Items = append(out.Skills[i].Items, items...)
		}
	}

	def := DefaultCustomizations()
	if _, err := ParseTemplate(string(out.Customizations.Template)); err != nil {
		out.Customizations.Template = def.Template
	}
	if _, err := ParseTheme(string(out.Customizations.Theme)); err != nil {
		out.Customizations.Theme = def.Theme
	}
	if _, err := ParseFont(string(out.Customizations.Font)); err != nil {
		out.Customizations.Font = def.Font
	}
	if _, err := ParseSpacing(string(out.Customizations.Spacing)); err != nil {
		out.Customizations.Spacing = def.Spacing
	}
	return out
}

// HasSignal reports whether the user has entered real content. Customizations
// alone do not count.
func (r Resume) HasSignal() bool {
	return r.Personal.Name != "" ||
		len(r.WorkExperience) > 0 ||
		len(r.Education) > 0 ||
		r.SkillCount() > 0
}

// SkillCount is the total number of skill labels across all categories.
func (r Resume) SkillCount() int {
	n := 0
	for _, g := range r.Skills {
		n += len(g.Items)
	}
	return n
}

// SkillsIn returns the labels of one category.
func (r Resume) SkillsIn(c SkillCategory) []string {
	for _, g := range r.Skills {
		if g.Category == c {
			return g.Items
		}
	}
	return nil
}

// Skeleton empties every content section but keeps the current look.
func (r Resume) Skeleton() Resume {
	out := Default()
	out.Customizations = r.Customizations
	return out
}
