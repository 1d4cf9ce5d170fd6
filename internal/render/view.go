package render

import (
	"html/template"

	"resume-builder/internal/domain"
)

// view is what the layouts see. Colours and fonts come from closed enums, so
// they are passed as trusted CSS.
type view struct {
	Personal   domain.Personal
	Contacts   []string
	Work       []workView
	Education  []domain.EducationEntry
	Skills     []domain.SkillGroup
	FontFamily template.CSS
	Padding    template.CSS
	Primary    template.CSS
	Secondary  template.CSS
	Light      template.CSS
	Dark       template.CSS
}

type workView struct {
	Company     string
	Position    string
	StartDate   string
	EndDate     string
	Description string
	Location    string
}

const presentLabel = "Present"

func newView(doc domain.Resume) view {
	doc = doc.Normalize()
	palette := doc.Customizations.Theme.Palette()

	v := view{
		Personal:   doc.Personal,
		Education:  doc.Education,
		FontFamily: template.CSS(doc.Customizations.Font.Family()),
		Padding:    template.CSS(doc.Customizations.Spacing.Padding()),
		Primary:    template.CSS(palette.Primary),
		Secondary:  template.CSS(palette.Secondary),
		Light:      template.CSS(palette.Light),
		Dark:       template.CSS(palette.Dark),
	}

	for _, c := range []string{doc.Personal.Email, doc.Personal.Phone, doc.Personal.Location} {
		if c != "" {
			v.Contacts = append(v.Contacts, c)
		}
	}

	for _, w := range doc.WorkExperience {
		end := w.EndDate
		if w.Current {
			end = presentLabel
		}
		v.Work = append(v.Work, workView{
			Company:     w.Company,
			Position:    w.Position,
			StartDate:   w.StartDate,
			EndDate:     end,
			Description: w.Description,
			Location:    w.Location,
		})
	}

	for _, g := range doc.Skills {
		if len(g.Items) > 0 {
			v.Skills = append(v.Skills, g)
		}
	}
	return v
}
