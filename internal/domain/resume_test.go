package domain

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestDefaultIsRenderable(t *testing.T) {
	d := Default()

	if d.WorkExperience == nil || d.Education == nil {
		t.Fatal("expected empty, non-nil entry lists")
	}
	if len(d.Skills) != len(SkillCategories()) {
		t.Fatalf("expected %d skill categories, got %d", len(SkillCategories()), len(d.Skills))
	}
	for i, c := range SkillCategories() {
		if d.Skills[i].Category != c {
			t.Errorf("position %d: expected %s, got %s", i, c, d.Skills[i].Category)
		}
		if d.Skills[i].Items == nil {
			t.Errorf("category %s has nil items", c)
		}
	}
	if d.HasSignal() {
		t.Error("default document must not carry a signal")
	}
	if d.Customizations != DefaultCustomizations() {
		t.Errorf("unexpected customizations %+v", d.Customizations)
	}
}

func TestHasSignal(t *testing.T) {
	tests := []struct {
		name string
		doc  func() Resume
		want bool
	}{
		{name: "empty", doc: Default, want: false},
		{
			name: "name only",
			doc: func() Resume {
				r, _ := Default().WithPersonalField(PersonalName, "Alex Kim")
				return r
			},
			want: true,
		},
		{
			name: "email only",
			doc: func() Resume {
				r, _ := Default().WithPersonalField(PersonalEmail, "alex@example.com")
				return r
			},
			want: false,
		},
		{name: "work entry", doc: func() Resume { return Default().WithWorkEntry("w1") }, want: true},
		{name: "education entry", doc: func() Resume { return Default().WithEducationEntry("e1") }, want: true},
		{
			name: "skill",
			doc: func() Resume {
				r, _ := Default().WithSkill(SkillTools, "Git")
				return r
			},
			want: true,
		},
		{
			name: "customizations only",
			doc: func() Resume {
				r, _ := Default().WithCustomization(CustomizeTheme, "purple")
				return r
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc().HasSignal(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWithPersonalFieldLeavesReceiverUntouched(t *testing.T) {
	base := Default()
	next, err := base.WithPersonalField(PersonalSummary, "Builds things")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base.Personal.Summary != "" {
		t.Error("receiver was mutated")
	}
	if next.Personal.Summary != "Builds things" {
		t.Errorf("expected summary to be set, got %q", next.Personal.Summary)
	}

	_, err = base.WithPersonalField("nickname", "x")
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestWorkEntryLifecycle(t *testing.T) {
	doc := Default().WithWorkEntry("a").WithWorkEntry("b")

	doc, err := doc.UpdateWorkEntry("b", WorkCompany, "Acme")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	doc, err = doc.UpdateWorkEntry("b", WorkCurrent, "true")
	if err != nil {
		t.Fatalf("update current: %v", err)
	}
	if got := doc.WorkExperience[1]; got.Company != "Acme" || !got.Current {
		t.Errorf("unexpected entry %+v", got)
	}
	if doc.WorkExperience[0].Company != "" {
		t.Error("update touched the wrong entry")
	}

	same, err := doc.UpdateWorkEntry("missing", WorkCompany, "Nope")
	if err != nil {
		t.Fatalf("unknown id should not error: %v", err)
	}
	if !reflect.DeepEqual(same, doc) {
		t.Error("unknown id must leave the document unchanged")
	}

	if _, err := doc.UpdateWorkEntry("a", WorkCurrent, "maybe"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
	if _, err := doc.UpdateWorkEntry("a", "salary", "1"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}

	once := doc.WithoutWorkEntry("a")
	twice := once.WithoutWorkEntry("a")
	if !reflect.DeepEqual(once, twice) {
		t.Error("removing twice must equal removing once")
	}
	if len(once.WorkExperience) != 1 || once.WorkExperience[0].ID != "b" {
		t.Errorf("unexpected entries after removal: %+v", once.WorkExperience)
	}
	if len(doc.WorkExperience) != 2 {
		t.Error("removal mutated the previous snapshot")
	}
}

func TestEducationEntryLifecycle(t *testing.T) {
	doc := Default().WithEducationEntry("e1")
	doc, err := doc.UpdateEducationEntry("e1", EducationStudyField, "Physics")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	doc, err = doc.UpdateEducationEntry("e1", EducationGPA, "3.9")
	if err != nil {
		t.Fatalf("update gpa: %v", err)
	}
	if doc.Education[0].Field != "Physics" || doc.Education[0].GPA != "3.9" {
		t.Errorf("unexpected entry %+v", doc.Education[0])
	}
	if _, err := doc.UpdateEducationEntry("e1", "honours", "x"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
	doc = doc.WithoutEducationEntry("e1")
	if len(doc.Education) != 0 || doc.Education == nil {
		t.Errorf("expected empty non-nil education list, got %#v", doc.Education)
	}
}

func TestWithSkill(t *testing.T) {
	doc, err := Default().WithSkill(SkillTechnical, "  Go  ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	doc, _ = doc.WithSkill(SkillTechnical, "Go")
	doc, _ = doc.WithSkill(SkillTechnical, "   ")

	got := doc.SkillsIn(SkillTechnical)
	if !reflect.DeepEqual(got, []string{"Go", "Go"}) {
		t.Errorf("expected duplicate trimmed labels, got %v", got)
	}

	if _, err := doc.WithSkill("hobbies", "Chess"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}

func TestWithoutSkillIsCategoryScoped(t *testing.T) {
	doc := Default()
	doc, _ = doc.WithSkill(SkillTechnical, "Go")
	doc, _ = doc.WithSkill(SkillTechnical, "Rust")
	doc, _ = doc.WithSkill(SkillTools, "Git")

	next, err := doc.WithoutSkill(SkillTechnical, 0)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := next.SkillsIn(SkillTechnical); !reflect.DeepEqual(got, []string{"Rust"}) {
		t.Errorf("technical: expected [Rust], got %v", got)
	}
	if got := next.SkillsIn(SkillTools); !reflect.DeepEqual(got, []string{"Git"}) {
		t.Errorf("tools: expected [Git], got %v", got)
	}
	if got := doc.SkillsIn(SkillTechnical); len(got) != 2 {
		t.Error("removal mutated the previous snapshot")
	}

	for _, idx := range []int{-1, 5} {
		same, err := next.WithoutSkill(SkillTools, idx)
		if err != nil {
			t.Fatalf("index %d: %v", idx, err)
		}
		if !reflect.DeepEqual(same, next) {
			t.Errorf("index %d: expected no-op", idx)
		}
	}
}

func TestWithCustomization(t *testing.T) {
	doc, err := Default().WithCustomization(CustomizeTemplate, "minimal")
	if err != nil {
		t.Fatalf("set template: %v", err)
	}
	if doc.Customizations.Template != TemplateMinimal {
		t.Errorf("expected minimal, got %s", doc.Customizations.Template)
	}

	tests := []struct {
		field CustomizationField
		value string
		want  error
	}{
		{field: CustomizeTheme, value: "orange", want: ErrInvalidValue},
		{field: CustomizeFont, value: "comic-sans", want: ErrInvalidValue},
		{field: CustomizeSpacing, value: "normal", want: ErrInvalidValue},
		{field: CustomizeTemplate, value: "", want: ErrInvalidValue},
		{field: "accentColor", value: "#fff", want: ErrUnknownField},
	}
	for _, tt := range tests {
		t.Run(string(tt.field)+"="+tt.value, func(t *testing.T) {
			got, err := doc.WithCustomization(tt.field, tt.value)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if got.Customizations != doc.Customizations {
				t.Error("invalid value must not change the document")
			}
		})
	}
}

func TestSkeletonKeepsLook(t *testing.T) {
	doc, _ := Default().WithCustomization(CustomizeTheme, "purple")
	doc, _ = doc.WithPersonalField(PersonalName, "Alex Kim")
	doc = doc.WithWorkEntry("w1")
	doc, _ = doc.WithSkill(SkillSoft, "Mentoring")

	sk := doc.Skeleton()
	want := Default()
	want.Customizations.Theme = ThemePurple
	if !reflect.DeepEqual(sk, want) {
		t.Errorf("unexpected skeleton %+v", sk)
	}
}

func TestNormalize(t *testing.T) {
	doc := Resume{
		Skills: []SkillGroup{
			{Category: SkillTools, Items: []string{"Git"}},
			{Category: "hobbies", Items: []string{"Chess"}},
		},
		Customizations: Customizations{Theme: ThemeRose},
	}

	got := doc.Normalize()

	if got.WorkExperience == nil || got.Education == nil {
		t.Error("expected non-nil lists")
	}
	if len(got.Skills) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(got.Skills))
	}
	if !reflect.DeepEqual(got.SkillsIn(SkillTools), []string{"Git"}) {
		t.Errorf("tools lost: %v", got.SkillsIn(SkillTools))
	}
	want := DefaultCustomizations()
	want.Theme = ThemeRose
	if got.Customizations != want {
		t.Errorf("expected %+v, got %+v", want, got.Customizations)
	}
	if !reflect.DeepEqual(got.Normalize(), got) {
		t.Error("normalize must be idempotent")
	}
}

func TestPalettes(t *testing.T) {
	seen := map[string]bool{}
	for _, th := range Themes() {
		p := th.Palette()
		if p.Primary == "" || p.Secondary == "" || p.Light == "" || p.Dark == "" {
			t.Errorf("%s: incomplete palette %+v", th, p)
		}
		if seen[p.Primary] {
			t.Errorf("%s: primary colour %s reused", th, p.Primary)
		}
		seen[p.Primary] = true
	}
	if ThemePurple.Palette().Primary != "#8b5cf6" {
		t.Errorf("unexpected purple primary %s", ThemePurple.Palette().Primary)
	}
}
