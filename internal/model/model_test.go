package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want Tag
	}{
		{"미팅", TagMeeting},
		{" 개발 ", TagDevelopment},
		{"Meeting", TagMeeting},
		{"DEV", TagDevelopment},
		{"admin", TagAdministration},
		{"sales", TagSales},
		{"", TagOther},
		{"회의", TagOther},
		{"random", TagOther},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTag(tt.in))
		})
	}
}

func TestTags(t *testing.T) {
	tags := Tags()
	assert.Len(t, tags, 7)
	assert.Equal(t, TagMeeting, tags[0])
	assert.Equal(t, TagOther, tags[6])

	tags[0] = "mutated"
	assert.Equal(t, TagMeeting, Tags()[0], "Tags must return a copy")

	for _, tag := range Tags() {
		assert.True(t, tag.IsValid())
	}
	assert.False(t, Tag("회의").IsValid())
}

func TestExtraction_ToSchedule(t *testing.T) {
	e := Extraction{Title: "팀 회의", Date: "2025-06-12", StartTime: "15:00", DurationMinutes: 60, Tag: TagMeeting}

	s := e.ToSchedule("id-1")

	assert.Equal(t, Schedule{
		ID:              "id-1",
		Title:           "팀 회의",
		Date:            "2025-06-12",
		StartTime:       "15:00",
		DurationMinutes: 60,
		Tag:             TagMeeting,
	}, s)
}

func TestPriority(t *testing.T) {
	assert.True(t, PriorityHigh.IsValid())
	assert.False(t, Priority("urgent").IsValid())
	assert.Equal(t, PriorityMedium, DefaultPriority)
}

func TestParseEnvironment(t *testing.T) {
	assert.Equal(t, EnvironmentProduction, ParseEnvironment("production"))
	assert.True(t, ParseEnvironment("production").IsProduction())
	assert.Equal(t, EnvironmentDevelopment, ParseEnvironment("qa"))
}
