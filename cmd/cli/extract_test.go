package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/schedule"
	"focus-dashboard/pkg/datemath"
)

type stubExtractor struct {
	out   model.Extraction
	err   error
	input schedule.ExtractInput
}

func (s *stubExtractor) Extract(ctx context.Context, input schedule.ExtractInput) (schedule.ExtractOutput, error) {
	s.input = input
	if s.err != nil {
		return schedule.ExtractOutput{}, s.err
	}
	return schedule.ExtractOutput{Extraction: s.out}, nil
}

func newTestApp(t *testing.T, ext *stubExtractor) func() (*app, error) {
	t.Helper()
	parser, err := datemath.NewParser("Asia/Seoul")
	require.NoError(t, err)
	return func() (*app, error) {
		return &app{
			extractor: ext,
			parser:    parser,
			now:       func() time.Time { return time.Date(2024, 5, 8, 0, 30, 0, 0, time.UTC) }, // 09:30 KST
		}, nil
	}
}

func execute(load func() (*app, error), args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(load)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExtractCmd_Success(t *testing.T) {
	ext := &stubExtractor{out: model.Extraction{
		Title:           "팀 회의",
		Date:            "2024-05-09",
		StartTime:       "15:00",
		DurationMinutes: 60,
		Tag:             model.TagMeeting,
	}}

	stdout, _, err := execute(newTestApp(t, ext), "extract", "내일", "오후", "3시", "팀", "회의")
	require.NoError(t, err)

	assert.Equal(t, "내일 오후 3시 팀 회의", ext.input.Text)
	assert.Contains(t, stdout, `"title": "팀 회의"`)
	assert.Contains(t, stdout, `"tag": "미팅"`)
}

func TestExtractCmd_ReferenceFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default now in dashboard timezone", args: nil, want: "2024-05-08T09:30:00+09:00"},
		{name: "explicit now", args: []string{"--now", "2024-01-02T08:00:00+09:00"}, want: "2024-01-02T08:00:00+09:00"},
		{name: "relative date keeps clock", args: []string{"--date", "tomorrow"}, want: "2024-05-09T09:30:00+09:00"},
		{name: "absolute date", args: []string{"--date", "2024-06-01"}, want: "2024-06-01T09:30:00+09:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := &stubExtractor{}
			args := append([]string{"extract", "점심"}, tt.args...)
			_, _, err := execute(newTestApp(t, ext), args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ext.input.ReferenceNow.Format(time.RFC3339))
		})
	}
}

func TestExtractCmd_Failures(t *testing.T) {
	ext := &stubExtractor{err: schedule.NewExtractionError(schedule.ReasonInvalidFieldValue, "startTime", errors.New("bad clock"))}

	_, stderr, err := execute(newTestApp(t, ext), "extract", "회의")
	require.Error(t, err)
	assert.ErrorIs(t, err, schedule.ErrInvalidFieldValue)
	assert.True(t, strings.HasPrefix(stderr, "extraction failed: reason=InvalidFieldValue field=startTime"))

	_, _, err = execute(newTestApp(t, &stubExtractor{}), "extract", "회의", "--now", "yesterday")
	assert.Error(t, err)

	_, _, err = execute(newTestApp(t, &stubExtractor{}), "extract")
	assert.Error(t, err)

	_, _, err = execute(func() (*app, error) { return nil, errors.New("no config") }, "extract", "회의")
	assert.EqualError(t, err, "no config")
}
