//go:build unit

package duetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const moscowOffset = 3 * 60 * 60

func TestFormatRU(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			name: "morning, unpadded hour",
			at:   time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC),
			want: "2 января 2024 г., 9:00",
		},
		{
			name: "crosses midnight into next year",
			at:   time.Date(2024, 12, 31, 21, 5, 0, 0, time.UTC),
			want: "1 января 2025 г., 0:05",
		},
		{
			name: "afternoon",
			at:   time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC),
			want: "15 мая 2024 г., 17:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRU(tt.at, moscowOffset))
		})
	}
}

func TestStripSpan(t *testing.T) {
	tests := []struct {
		name string
		text string
		span string
		want string
	}{
		{name: "trailing expression", text: "buy milk tomorrow", span: "tomorrow", want: "buy milk"},
		{name: "leading expression", text: "tomorrow call mom", span: "tomorrow", want: "call mom"},
		{name: "middle expression", text: "call   mom tomorrow please", span: "tomorrow", want: "call mom please"},
		{name: "trailing punctuation", text: "pay rent, tomorrow", span: "tomorrow", want: "pay rent"},
		{name: "only expression keeps raw", text: " tomorrow ", span: "tomorrow", want: "tomorrow"},
		{name: "span not found", text: "buy milk", span: "friday", want: "buy milk"},
		{name: "empty span", text: " buy milk ", span: "", want: "buy milk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripSpan(tt.text, tt.span))
		})
	}
}

func TestParser_Parse(t *testing.T) {
	p := NewParser()
	reference := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC) // 9:00 in UTC+3

	t.Run("tomorrow resolves to the next local day", func(t *testing.T) {
		at, span, ok := p.Parse("buy milk tomorrow", reference, moscowOffset)
		require.True(t, ok)
		assert.True(t, at.After(reference))
		assert.Equal(t, time.UTC, at.Location())

		local := at.In(time.FixedZone("", moscowOffset))
		assert.Equal(t, 2024, local.Year())
		assert.Equal(t, time.January, local.Month())
		assert.Equal(t, 2, local.Day())
		assert.Equal(t, "buy milk", StripSpan("buy milk tomorrow", span))
	})

	t.Run("no date expression", func(t *testing.T) {
		_, _, ok := p.Parse("hello", reference, moscowOffset)
		assert.False(t, ok)
	})

	t.Run("empty text", func(t *testing.T) {
		_, _, ok := p.Parse("", reference, moscowOffset)
		assert.False(t, ok)
	})
}

func TestParser_Parse_ClockTimes(t *testing.T) {
	p := NewParser()
	reference := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // 3:00 in UTC+3

	tests := []struct {
		name     string
		text     string
		wantAt   time.Time
		wantSpan string
		wantText string
	}{
		{
			name:     "bare hour after tomorrow",
			text:     "buy milk tomorrow at 9",
			wantAt:   time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC),
			wantSpan: "tomorrow at 9",
			wantText: "buy milk",
		},
		{
			name:     "bare hour after завтра",
			text:     "купить молоко завтра в 9",
			wantAt:   time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC),
			wantSpan: "завтра в 9",
			wantText: "купить молоко",
		},
		{
			name:     "meridiem wins over bare hour",
			text:     "buy milk tomorrow at 9pm",
			wantAt:   time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC),
			wantSpan: "tomorrow at 9pm",
			wantText: "buy milk",
		},
		{
			name:     "bare hour later today",
			text:     "call mom at 9",
			wantAt:   time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC),
			wantSpan: "at 9",
			wantText: "call mom",
		},
		{
			name:     "bare hour with trailing period",
			text:     "call mom tomorrow at 18.",
			wantAt:   time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC),
			wantSpan: "tomorrow at 18",
			wantText: "call mom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, span, ok := p.Parse(tt.text, reference, moscowOffset)
			require.True(t, ok)
			assert.Equal(t, tt.wantAt, at)
			assert.Equal(t, tt.wantSpan, span)
			assert.Equal(t, tt.wantText, StripSpan(tt.text, span))
		})
	}

	t.Run("display of the bare hour", func(t *testing.T) {
		at, _, ok := p.Parse("buy milk tomorrow at 9", reference, moscowOffset)
		require.True(t, ok)
		assert.Equal(t, "2 января 2024 г., 9:00", FormatRU(at, moscowOffset))
	})
}

func TestParser_Parse_PassedClockTimeRollsForward(t *testing.T) {
	p := NewParser()
	reference := time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC) // 10:00 in UTC+3

	tests := []struct {
		name   string
		text   string
		wantAt time.Time
		wantOK bool
	}{
		{name: "meridiem hour", text: "standup at 9am", wantAt: time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC), wantOK: true},
		{name: "hour and minute", text: "standup at 9:30", wantAt: time.Date(2024, 1, 2, 6, 30, 0, 0, time.UTC), wantOK: true},
		{name: "bare hour", text: "standup at 9", wantAt: time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC), wantOK: true},
		{name: "russian bare hour", text: "планёрка в 9", wantAt: time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC), wantOK: true},
		{name: "later today stays today", text: "standup at 11", wantAt: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), wantOK: true},
		{name: "explicit today is not moved", text: "standup today at 9", wantOK: false},
		{name: "explicit сегодня is not moved", text: "планёрка сегодня в 9", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, _, ok := p.Parse(tt.text, reference, moscowOffset)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantAt, at)
			}
		})
	}
}
