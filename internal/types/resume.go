package types

// Category names reported by the extraction service.
const (
	CategoryName           = "Name"
	CategorySkill          = "Skill"
	CategoryWorkExperience = "Work_Experience"
	CategoryEducation      = "Education"
	CategoryLanguage       = "Language"
)

// RawExtraction maps a category name to the value the extraction service
// reported for it. A well-formed category holds a list value; extraction
// order within the list is significant.
type RawExtraction map[string]EntityValue

// List returns the elements of a category and whether the category is present
// and holds a sequence.
func (r RawExtraction) List(category string) ([]EntityValue, bool) {
	v, ok := r[category]
	if !ok || v.Kind() != KindList {
		return nil, false
	}
	return v.Items(), true
}

// RawExtractionFrom converts an object value into a RawExtraction.
// Any other kind yields an empty mapping.
func RawExtractionFrom(v EntityValue) RawExtraction {
	out := RawExtraction{}
	for _, k := range v.Keys() {
		f, _ := v.Field(k)
		out[k] = f
	}
	return out
}

// ResumeRecord is the canonical, normalized form of one parsed resume.
// List fields are never nil; Name is nil when the resume has no name.
type ResumeRecord struct {
	Name           *string       `json:"name"`
	Skills         []string      `json:"skills"`
	WorkExperience []string      `json:"work_experience"`
	Education      []string      `json:"education"`
	Languages      []string      `json:"languages"`
	RawEntities    RawExtraction `json:"raw_entities"`
}

// Section identifiers, in display order.
const (
	SectionSkills         = "skills"
	SectionWorkExperience = "work"
	SectionEducation      = "education"
	SectionLanguages      = "languages"
)

// Section is one titled list of a ResumeRecord.
type Section struct {
	ID    string
	Title string
	Items []string
}

// Sections returns the four list sections in their fixed display order,
// including empty ones.
func (r ResumeRecord) Sections() []Section {
	return []Section{
		{ID: SectionSkills, Title: "Skills", Items: r.Skills},
		{ID: SectionWorkExperience, Title: "Work Experience", Items: r.WorkExperience},
		{ID: SectionEducation, Title: "Education", Items: r.Education},
		{ID: SectionLanguages, Title: "Languages", Items: r.Languages},
	}
}

// NonEmptySections returns Sections without the empty ones.
func (r ResumeRecord) NonEmptySections() []Section {
	all := r.Sections()
	out := make([]Section, 0, len(all))
	for _, s := range all {
		if len(s.Items) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// Subject returns the heading used by the human-readable exports.
func (r ResumeRecord) Subject() string {
	if r.Name == nil || *r.Name == "" {
		return "Resume"
	}
	return *r.Name + "'s Resume"
}
