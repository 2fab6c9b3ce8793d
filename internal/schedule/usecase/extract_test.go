package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focus-dashboard/internal/model"
	"focus-dashboard/internal/schedule"
	"focus-dashboard/pkg/llmprovider"
)

var referenceNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

const designMeetingPayload = `{"title":"디자인 미팅","date":"2024-05-11","startTime":"14:00","durationMinutes":60,"tag":"미팅"}`

func extract(t *testing.T, uc *implUseCase, text string) (model.Extraction, error) {
	t.Helper()
	out, err := uc.Extract(context.Background(), schedule.ExtractInput{Text: text, ReferenceNow: referenceNow})
	return out.Extraction, err
}

func assertReason(t *testing.T, err error, want schedule.Reason) {
	t.Helper()
	require.Error(t, err)
	got, ok := schedule.ReasonOf(err)
	require.True(t, ok, "expected an ExtractionError, got %T: %v", err, err)
	assert.Equal(t, want, got)
}

func TestExtract_KoreanExampleEndToEnd(t *testing.T) {
	ctx := context.Background()
	stub := &stubProvider{payload: designMeetingPayload}
	uc := newTestUseCase(stub, Config{})

	_, err := uc.Create(ctx, schedule.CreateInput{Title: "late", Date: "2024-05-11", StartTime: "15:00", DurationMinutes: 30, Tag: "실무"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, schedule.CreateInput{Title: "early", Date: "2024-05-11", StartTime: "09:00", DurationMinutes: 30, Tag: "실무"})
	require.NoError(t, err)

	got, err := extract(t, uc, "내일 오후 2시 디자인 미팅 한 시간 동안")
	require.NoError(t, err)
	assert.Equal(t, model.Extraction{
		Title:           "디자인 미팅",
		Date:            "2024-05-11",
		StartTime:       "14:00",
		DurationMinutes: 60,
		Tag:             model.TagMeeting,
	}, got)

	committed, err := uc.Commit(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, model.Schedule{
		ID:              "t3",
		Title:           "디자인 미팅",
		Date:            "2024-05-11",
		StartTime:       "14:00",
		DurationMinutes: 60,
		Tag:             model.TagMeeting,
		Completed:       false,
	}, committed)

	list, err := uc.List(ctx, schedule.ListInput{Date: "2024-05-11"})
	require.NoError(t, err)
	titles := make([]string, 0, len(list.Schedules))
	for _, s := range list.Schedules {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"early", "디자인 미팅", "late"}, titles)
}

func TestExtract_RequestContract(t *testing.T) {
	stub := &stubProvider{payload: designMeetingPayload}
	uc := newTestUseCase(stub, Config{Temperature: 0.2, MaxTokens: 512})

	_, err := extract(t, uc, "내일 오후 2시 디자인 미팅")
	require.NoError(t, err)
	require.Equal(t, 1, stub.callCount())

	req := stub.requests[0]
	user := req.Messages[0].Parts[0].Text
	assert.Contains(t, user, "2024-05-10")
	assert.Contains(t, user, "09:00")
	assert.Contains(t, user, "내일 오후 2시 디자인 미팅")

	system := req.SystemInstruction.Parts[0].Text
	for _, tag := range model.Tags() {
		assert.Contains(t, system, string(tag))
	}
	for _, field := range []string{"title", "date", "startTime", "durationMinutes", "tag"} {
		assert.Contains(t, system, field)
	}

	require.NotNil(t, req.ResponseFormat)
	assert.Equal(t, llmprovider.MIMETypeJSON, req.ResponseFormat.MIMEType)
	assert.ElementsMatch(t, []string{"title", "date", "startTime", "durationMinutes", "tag"}, req.ResponseFormat.Schema["required"])
	assert.Equal(t, 0.2, req.Temperature)
	assert.Equal(t, 512, req.MaxTokens)
}

func TestExtract_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		stub := &stubProvider{payload: designMeetingPayload}
		uc := newTestUseCase(stub, Config{})

		_, err := extract(t, uc, text)
		assertReason(t, err, schedule.ReasonEmptyInput)
		assert.ErrorIs(t, err, schedule.ErrEmptyInput)
		assert.Zero(t, stub.callCount(), "no outbound call for empty input")
	}
}

func TestExtract_MalformedResponseLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	stub := &stubProvider{payload: `{"title": "Meeting"}`}
	uc := newTestUseCase(stub, Config{})

	_, err := extract(t, uc, "meeting")
	assertReason(t, err, schedule.ReasonMalformedResponse)
	assert.ErrorIs(t, err, schedule.ErrMalformedResponse)

	list, err := uc.List(ctx, schedule.ListInput{})
	require.NoError(t, err)
	assert.Zero(t, list.Total)
}

func TestExtract_ServiceFailures(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		stub := &stubProvider{block: true}
		uc := newTestUseCase(stub, Config{Timeout: 20 * time.Millisecond})

		_, err := extract(t, uc, "meeting")
		assertReason(t, err, schedule.ReasonServiceUnavailable)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("caller cancellation", func(t *testing.T) {
		stub := &stubProvider{block: true}
		uc := newTestUseCase(stub, Config{})

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		_, err := uc.Extract(ctx, schedule.ExtractInput{Text: "meeting", ReferenceNow: referenceNow})
		assertReason(t, err, schedule.ReasonServiceUnavailable)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("transport error", func(t *testing.T) {
		stub := &stubProvider{err: errors.New("connection refused")}
		uc := newTestUseCase(stub, Config{})

		_, err := extract(t, uc, "meeting")
		assertReason(t, err, schedule.ReasonServiceUnavailable)
		assert.ErrorIs(t, err, schedule.ErrServiceUnavailable)
		assert.Equal(t, 1, stub.callCount(), "no automatic retry")
	})

	t.Run("undecodable envelope", func(t *testing.T) {
		stub := &stubProvider{err: &llmprovider.ProviderError{Provider: "stub", Err: llmprovider.ErrInvalidResponse}}
		uc := newTestUseCase(stub, Config{})

		_, err := extract(t, uc, "meeting")
		assertReason(t, err, schedule.ReasonMalformedResponse)
	})

	t.Run("empty candidate", func(t *testing.T) {
		stub := &stubProvider{err: llmprovider.ErrEmptyResponse}
		uc := newTestUseCase(stub, Config{})

		_, err := extract(t, uc, "meeting")
		assertReason(t, err, schedule.ReasonMalformedResponse)
	})
}

func TestExtract_Idempotent(t *testing.T) {
	stub := &stubProvider{payload: designMeetingPayload}
	uc := newTestUseCase(stub, Config{})

	first, err := extract(t, uc, "내일 오후 2시 디자인 미팅")
	require.NoError(t, err)
	second, err := extract(t, uc, "내일 오후 2시 디자인 미팅")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, stub.requests[0], stub.requests[1])
}

func TestExtract_PayloadValidation(t *testing.T) {
	payload := func(date, start, duration, tag string) string {
		return `{"title":"x","date":` + date + `,"startTime":` + start + `,"durationMinutes":` + duration + `,"tag":` + tag + `}`
	}

	tests := []struct {
		name       string
		payload    string
		want       model.Extraction
		wantReason schedule.Reason
		wantField  string
	}{
		{
			name:    "fractional duration rounds",
			payload: payload(`"2024-05-11"`, `"09:05"`, `29.6`, `"개발"`),
			want:    model.Extraction{Title: "x", Date: "2024-05-11", StartTime: "09:05", DurationMinutes: 30, Tag: model.TagDevelopment},
		},
		{
			name:    "zero duration defaults",
			payload: payload(`"2024-05-11"`, `"09:05"`, `0`, `"개발"`),
			want:    model.Extraction{Title: "x", Date: "2024-05-11", StartTime: "09:05", DurationMinutes: 60, Tag: model.TagDevelopment},
		},
		{
			name:    "negative duration defaults",
			payload: payload(`"2024-05-11"`, `"09:05"`, `-15`, `"개발"`),
			want:    model.Extraction{Title: "x", Date: "2024-05-11", StartTime: "09:05", DurationMinutes: 60, Tag: model.TagDevelopment},
		},
		{
			name:    "tiny duration rounds to zero then defaults",
			payload: payload(`"2024-05-11"`, `"09:05"`, `0.4`, `"개발"`),
			want:    model.Extraction{Title: "x", Date: "2024-05-11", StartTime: "09:05", DurationMinutes: 60, Tag: model.TagDevelopment},
		},
		{
			name:    "null duration defaults",
			payload: payload(`"2024-05-11"`, `"09:05"`, `null`, `"개발"`),
			want:    model.Extraction{Title: "x", Date: "2024-05-11", StartTime: "09:05", DurationMinutes: 60, Tag: model.TagDevelopment},
		},
		{
			name:    "absent duration defaults",
			payload: `{"title":"x","date":"2024-05-11","startTime":"09:05","tag":"개발"}`,
			want:    model.Extraction{Title: "x", Date: "2024-05-11", StartTime: "09:05", DurationMinutes: 60, Tag: model.TagDevelopment},
		},
		{
			name:    "unknown tag coerced",
			payload: payload(`"2024-05-11"`, `"09:05"`, `45`, `"회의"`),
			want:    model.Extraction{Title: "x", Date: "2024-05-11", StartTime: "09:05", DurationMinutes: 45, Tag: model.TagOther},
		},
		{
			name:    "english tag alias",
			payload: payload(`"2024-05-11"`, `"09:05"`, `45`, `"Meeting"`),
			want:    model.Extraction{Title: "x", Date: "2024-05-11", StartTime: "09:05", DurationMinutes: 45, Tag: model.TagMeeting},
		},
		{
			name:    "code fence",
			payload: "```json\n" + designMeetingPayload + "\n```",
			want:    model.Extraction{Title: "디자인 미팅", Date: "2024-05-11", StartTime: "14:00", DurationMinutes: 60, Tag: model.TagMeeting},
		},
		{
			name:    "prose around object",
			payload: "Here is the schedule: " + designMeetingPayload + " Let me know if anything changes.",
			want:    model.Extraction{Title: "디자인 미팅", Date: "2024-05-11", StartTime: "14:00", DurationMinutes: 60, Tag: model.TagMeeting},
		},
		{name: "string duration", payload: payload(`"2024-05-11"`, `"09:05"`, `"sixty"`, `"개발"`), wantReason: schedule.ReasonMalformedResponse},
		{name: "numeric title", payload: `{"title":7,"date":"2024-05-11","startTime":"09:05","durationMinutes":60,"tag":"개발"}`, wantReason: schedule.ReasonMalformedResponse},
		{name: "missing tag", payload: `{"title":"x","date":"2024-05-11","startTime":"09:05","durationMinutes":60}`, wantReason: schedule.ReasonMalformedResponse},
		{name: "prose", payload: "I could not understand that.", wantReason: schedule.ReasonMalformedResponse},
		{name: "array", payload: `[` + designMeetingPayload + `]`, wantReason: schedule.ReasonMalformedResponse},
		{name: "fenced array", payload: "```json\n[" + designMeetingPayload + "]\n```", wantReason: schedule.ReasonMalformedResponse},
		{name: "bare string", payload: `"디자인 미팅"`, wantReason: schedule.ReasonMalformedResponse},
		{name: "impossible date", payload: payload(`"2024-02-30"`, `"09:05"`, `60`, `"개발"`), wantReason: schedule.ReasonInvalidFieldValue, wantField: "date"},
		{name: "slashed date", payload: payload(`"2024/05/11"`, `"09:05"`, `60`, `"개발"`), wantReason: schedule.ReasonInvalidFieldValue, wantField: "date"},
		{name: "unpadded time", payload: payload(`"2024-05-11"`, `"9:05"`, `60`, `"개발"`), wantReason: schedule.ReasonInvalidFieldValue, wantField: "startTime"},
		{name: "hour 24", payload: payload(`"2024-05-11"`, `"24:00"`, `60`, `"개발"`), wantReason: schedule.ReasonInvalidFieldValue, wantField: "startTime"},
		{name: "minute 60", payload: payload(`"2024-05-11"`, `"14:60"`, `60`, `"개발"`), wantReason: schedule.ReasonInvalidFieldValue, wantField: "startTime"},
		{name: "twelve hour clock", payload: payload(`"2024-05-11"`, `"2:00 PM"`, `60`, `"개발"`), wantReason: schedule.ReasonInvalidFieldValue, wantField: "startTime"},
		{name: "blank title", payload: `{"title":"  ","date":"2024-05-11","startTime":"09:05","durationMinutes":60,"tag":"개발"}`, wantReason: schedule.ReasonInvalidFieldValue, wantField: "title"},
		{name: "duration over a week", payload: payload(`"2024-05-11"`, `"09:05"`, `20000`, `"개발"`), wantReason: schedule.ReasonInvalidFieldValue, wantField: "durationMinutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&stubProvider{payload: tt.payload}, Config{})

			got, err := extract(t, uc, "anything")
			if tt.wantReason != "" {
				assertReason(t, err, tt.wantReason)
				var ee *schedule.ExtractionError
				require.True(t, errors.As(err, &ee))
				assert.Equal(t, tt.wantField, ee.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_SuccessProperties(t *testing.T) {
	payloads := []string{
		designMeetingPayload,
		`{"title":"a","date":"2024-12-31","startTime":"23:59","durationMinutes":-1,"tag":"zzz"}`,
		`{"title":"b","date":"2024-01-01","startTime":"00:00","durationMinutes":1.5,"tag":"행정"}`,
	}
	for _, p := range payloads {
		uc := newTestUseCase(&stubProvider{payload: p}, Config{})
		got, err := extract(t, uc, "x")
		require.NoError(t, err)

		_, dateErr := time.Parse("2006-01-02", got.Date)
		assert.NoError(t, dateErr)
		assert.Len(t, got.StartTime, 5)
		assert.True(t, strings.Contains(got.StartTime, ":"))
		assert.Positive(t, got.DurationMinutes)
		assert.True(t, got.Tag.IsValid())
	}
}
