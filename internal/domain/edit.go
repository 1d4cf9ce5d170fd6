package domain

import "strings"

// WithPersonalField replaces exactly one personal field.
func (r Resume) WithPersonalField(field PersonalField, value string) (Resume, error) {
	out := r.Clone()
	if err := out.Personal.set(field, value); err != nil {
		return r, err
	}
	return out, nil
}

// WithWorkEntry appends an empty role identified by id.
func (r Resume) WithWorkEntry(id string) Resume {
	out := r.Clone()
	out.WorkExperience = append(out.WorkExperience, WorkEntry{ID: id})
	return out
}

// UpdateWorkEntry replaces one field on the role with the given id. An unknown
// id leaves the document unchanged.
func (r Resume) UpdateWorkEntry(id string, field WorkField, value string) (Resume, error) {
	var probe WorkEntry
	if err := probe.set(field, value); err != nil {
		return r, err
	}
	for i, w := range r.WorkExperience {
		if w.ID != id {
			continue
		}
		out := r.Clone()
		_ = out.WorkExperience[i].set(field, value)
		return out, nil
	}
	return r, nil
}

// WithoutWorkEntry drops the role with the given id.
func (r Resume) WithoutWorkEntry(id string) Resume {
	out := r.Clone()
	kept := out.WorkExperience[:0]
	for _, w := range out.WorkExperience {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	out.WorkExperience = kept
	return out
}

// WithEducationEntry appends an empty education entry identified by id.
func (r Resume) WithEducationEntry(id string) Resume {
	out := r.Clone()
	out.Education = append(out.Education, EducationEntry{ID: id})
	return out
}

// UpdateEducationEntry replaces one field on the entry with the given id. An
// unknown id leaves the document unchanged.
func (r Resume) UpdateEducationEntry(id string, field EducationField, value string) (Resume, error) {
	var probe EducationEntry
	if err := probe.set(field, value); err != nil {
		return r, err
	}
	for i, e := range r.Education {
		if e.ID != id {
			continue
		}
		out := r.Clone()
		_ = out.Education[i].set(field, value)
		return out, nil
	}
	return r, nil
}

// WithoutEducationEntry drops the education entry with the given id.
func (r Resume) WithoutEducationEntry(id string) Resume {
	out := r.Clone()
	kept := out.Education[:0]
	for _, e := range out.Education {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	out.Education = kept
	return out
}

// WithSkill appends a trimmed label to a category. Blank labels are ignored.
func (r Resume) WithSkill(category SkillCategory, label string) (Resume, error) {
	if _, err := ParseSkillCategory(string(category)); err != nil {
		return r, err
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return r, nil
	}
	out := r.Normalize()
	for i := range out.Skills {
		if out.Skills[i].Category == category {
			out.Skills[i].Items = append(out.Skills[i].Items, label)
		}
	}
	return out, nil
}

// WithoutSkill removes the label at index within a category. Out of range
// indexes are ignored.
func (r Resume) WithoutSkill(category SkillCategory, index int) (Resume, error) {
	if _, err := ParseSkillCategory(string(category)); err != nil {
		return r, err
	}
	items := r.SkillsIn(category)
	if index < 0 || index >= len(items) {
		return r, nil
	}
	out := r.Clone()
	for i := range out.Skills {
		if out.Skills[i].Category != category {
			continue
		}
		it := out.Skills[i].Items
		out.Skills[i].Items = append(it[:index:index], it[index+1:]...)
	}
	return out, nil
}

// WithCustomization replaces one look setting. The value must belong to the
// field's closed set.
func (r Resume) WithCustomization(field CustomizationField, value string) (Resume, error) {
	out := r.Clone()
	if err := out.Customizations.set(field, value); err != nil {
		return r, err
	}
	return out, nil
}
