package model

import "strings"

// Tag is the closed set of schedule categories.
type Tag string

const (
	TagMeeting        Tag = "미팅"
	TagWork           Tag = "실무"
	TagAccounting     Tag = "회계"
	TagDevelopment    Tag = "개발"
	TagSales          Tag = "영업"
	TagAdministration Tag = "행정"
	TagOther          Tag = "기타"
)

var tagOrder = []Tag{
	TagMeeting,
	TagWork,
	TagAccounting,
	TagDevelopment,
	TagSales,
	TagAdministration,
	TagOther,
}

var tagAliases = map[string]Tag{
	"meeting":        TagMeeting,
	"work":           TagWork,
	"accounting":     TagAccounting,
	"development":    TagDevelopment,
	"dev":            TagDevelopment,
	"sales":          TagSales,
	"administration": TagAdministration,
	"admin":          TagAdministration,
	"other":          TagOther,
}

// Tags returns every tag in display order.
func Tags() []Tag {
	out := make([]Tag, len(tagOrder))
	copy(out, tagOrder)
	return out
}

// IsValid reports whether t is a member of the closed set.
func (t Tag) IsValid() bool {
	for _, v := range tagOrder {
		if t == v {
			return true
		}
	}
	return false
}

func (t Tag) String() string {
	return string(t)
}

// ParseTag coerces s into the closed set. Unknown values become TagOther.
func ParseTag(s string) Tag {
	s = strings.TrimSpace(s)
	if t := Tag(s); t.IsValid() {
		return t
	}
	if t, ok := tagAliases[strings.ToLower(s)]; ok {
		return t
	}
	return TagOther
}
