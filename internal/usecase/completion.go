package usecase

import (
	"math"

	"resume-builder/internal/domain"
)

const (
	personalPoints   = 30
	experiencePoints = 30
	skillPoints      = 20
	educationPoints  = 20
)

// CompletionScore rates how complete doc is, from 0 to 100.
func CompletionScore(doc domain.Resume) int {
	earned := 0

	if doc.Personal.Name != "" {
		earned += 10
	}
	if doc.Personal.Email != "" {
		earned += 10
	}
	if doc.Personal.Summary != "" {
		earned += 10
	}

	if len(doc.WorkExperience) > 0 {
		earned += 20
	}
	if len(doc.WorkExperience) > 1 {
		earned += 10
	}

	switch n := doc.SkillCount(); {
	case n >= 5:
		earned += 20
	case n > 0:
		earned += 10
	}

	if len(doc.Education) > 0 {
		earned += 20
	}

	total := personalPoints + experiencePoints + skillPoints + educationPoints
	return int(math.Round(100 * float64(earned) / float64(total)))
}

// Summary is the editor's status panel.
type Summary struct {
	Completion int `json:"completion"`
	Work       int `json:"work"`
	Education  int `json:"education"`
	Skills     int `json:"skills"`
}

func Summarize(doc domain.Resume) Summary {
	return Summary{
		Completion: CompletionScore(doc),
		Work:       len(doc.WorkExperience),
		Education:  len(doc.Education),
		Skills:     doc.SkillCount(),
	}
}
