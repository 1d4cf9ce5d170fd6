package domain

import (
	"strconv"

	"github.com/pkg/errors"
)

// PersonalField names one field of Personal.
type PersonalField string

const (
	PersonalName      PersonalField = "name"
	PersonalEmail     PersonalField = "email"
	PersonalPhone     PersonalField = "phone"
	PersonalLocation  PersonalField = "location"
	PersonalLinkedIn  PersonalField = "linkedin"
	PersonalPortfolio PersonalField = "portfolio"
	PersonalWebsite   PersonalField = "website"
	PersonalGitHub    PersonalField = "github"
	PersonalSummary   PersonalField = "summary"
)

func (p *Personal) set(field PersonalField, value string) error {
	switch field {
	case PersonalName:
		p.Name = value
	case PersonalEmail:
		p.Email = value
	case PersonalPhone:
		p.Phone = value
	case PersonalLocation:
		p.Location = value
	case PersonalLinkedIn:
		p.LinkedIn = value
	case PersonalPortfolio:
		p.Portfolio = value
	case PersonalWebsite:
		p.Website = value
	case PersonalGitHub:
		p.GitHub = value
	case PersonalSummary:
		p.Summary = value
	default:
		return errors.Wrapf(ErrUnknownField, "personal.%s", field)
	}
	return nil
}

// WorkField names one editable field of WorkEntry.
type WorkField string

const (
	WorkCompany     WorkField = "company"
	WorkPosition    WorkField = "position"
	WorkStartDate   WorkField = "startDate"
	WorkEndDate     WorkField = "endDate"
	WorkCurrent     WorkField = "current"
	WorkDescription WorkField = "description"
	WorkLocation    WorkField = "location"
)

func (w *WorkEntry) set(field WorkField, value string) error {
	switch field {
	case WorkCompany:
		w.Company = value
	case WorkPosition:
		w.Position = value
	case WorkStartDate:
		w.StartDate = value
	case WorkEndDate:
		w.EndDate = value
	case WorkCurrent:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(ErrInvalidValue, "workExperience.current %q", value)
		}
		w.Current = b
	case WorkDescription:
		w.Description = value
	case WorkLocation:
		w.Location = value
	default:
		return errors.Wrapf(ErrUnknownField, "workExperience.%s", field)
	}
	return nil
}

// EducationField names one editable field of EducationEntry.
type EducationField string

const (
	EducationInstitution  EducationField = "institution"
	EducationDegree       EducationField = "degree"
	EducationStudyField   EducationField = "field"
	EducationStartDate    EducationField = "startDate"
	EducationEndDate      EducationField = "endDate"
	EducationGPA          EducationField = "gpa"
	EducationAchievements EducationField = "achievements"
)

func (e *EducationEntry) set(field EducationField, value string) error {
	switch field {
	case EducationInstitution:
		e.Institution = value
	case EducationDegree:
		e.Degree = value
	case EducationStudyField:
		e.Field = value
	case EducationStartDate:
		e.StartDate = value
	case EducationEndDate:
		e.EndDate = value
	case EducationGPA:
		e.GPA = value
	case EducationAchievements:
		e.Achievements = value
	default:
		return errors.Wrapf(ErrUnknownField, "education.%s", field)
	}
	return nil
}

// CustomizationField names one field of Customizations.
type CustomizationField string

const (
	CustomizeTemplate CustomizationField = "template"
	CustomizeTheme    CustomizationField = "theme"
	CustomizeFont     CustomizationField = "font"
	CustomizeSpacing  CustomizationField = "spacing"
)

func (c *Customizations) set(field CustomizationField, value string) error {
	var err error
	switch field {
	case CustomizeTemplate:
		c.Template, err = ParseTemplate(value)
	case CustomizeTheme:
		c.Theme, err = ParseTheme(value)
	case CustomizeFont:
		c.Font, err = ParseFont(value)
	case CustomizeSpacing:
		c.Spacing, err = ParseSpacing(value)
	default:
		err = errors.Wrapf(ErrUnknownField, "customizations.%s", field)
	}
	return err
}
