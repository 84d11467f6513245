// Package parsing turns the extraction service's loosely-typed entities into a ResumeRecord.
package parsing

import (
	"maps"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/types"
)

// Normalize builds the canonical record for one extraction result.
// It never fails: missing or malformed categories degrade to empty sections.
// Every raw entry of a list category yields exactly one string, in extraction
// order, via EntityValue.Text. Empty strings are kept.
func Normalize(raw types.RawExtraction) types.ResumeRecord {
	rawEntities := types.RawExtraction{}
	if raw != nil {
		rawEntities = maps.Clone(raw)
	}

	return types.ResumeRecord{
		Name:           firstName(raw),
		Skills:         texts(raw, types.CategorySkill),
		WorkExperience: texts(raw, types.CategoryWorkExperience),
		Education:      texts(raw, types.CategoryEducation),
		Languages:      texts(raw, types.CategoryLanguage),
		RawEntities:    rawEntities,
	}
}

// texts coerces every value of a category. Missing or non-list categories give an empty slice.
func texts(raw types.RawExtraction, category string) []string {
	items, ok := raw.List(category)
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Text())
	}
	return out
}

// firstName returns the first Name entity, or nil when there is none or it is blank.
func firstName(raw types.RawExtraction) *string {
	items, ok := raw.List(types.CategoryName)
	if !ok || len(items) == 0 {
		return nil
	}

	name := items[0].Text()
	if name == "" {
		return nil
	}
	return &name
}
