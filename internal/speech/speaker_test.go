package speech_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduventuring-commits/word-trainer/internal/speech"
	"github.com/eduventuring-commits/word-trainer/internal/speech/mock"
)

func TestPickVoice(t *testing.T) {
	t.Parallel()
	voices := []speech.Voice{
		{ID: "fr", Language: "fr-FR"},
		{ID: "gb", Language: "en-GB"},
		{ID: "us", Language: "en-US"},
	}
	tests := []struct {
		name   string
		voices []speech.Voice
		want   string
	}{
		{"exact language wins", voices, "us"},
		{"any english", voices[:2], "gb"},
		{"none", voices[:1], ""},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := speech.PickVoice(tt.voices, speech.DefaultLanguage)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestSpeakerRatesAndVoice(t *testing.T) {
	t.Parallel()
	synth := &mock.Synthesizer{VoiceList: []speech.Voice{{ID: "gb", Language: "en-GB"}}}
	s := speech.NewSpeaker(synth)
	ctx := context.Background()

	require.NoError(t, s.Speak(ctx, "port"))
	require.NoError(t, s.Wait(ctx))
	s.SetSlow(true)
	require.NoError(t, s.SpeakChunk(ctx, "tion"))
	require.NoError(t, s.Wait(ctx))

	got := synth.Spoken()
	require.Len(t, got, 2)
	assert.Equal(t, "port", got[0].Text)
	assert.Equal(t, speech.RateNormal, got[0].Rate)
	assert.Equal(t, "shun", got[1].Text)
	assert.Equal(t, speech.RateSlow, got[1].Rate)
	require.NotNil(t, got[0].Voice)
	assert.Equal(t, "gb", got[0].Voice.ID)
	assert.Equal(t, 1, synth.VoicesCallCount, "voices are resolved once")
}

func TestSpeakerCancelsPrevious(t *testing.T) {
	t.Parallel()
	synth := &mock.Synthesizer{Block: true}
	s := speech.NewSpeaker(synth)
	ctx := context.Background()

	require.NoError(t, s.Speak(ctx, "first"))
	assert.True(t, s.Speaking())
	require.NoError(t, s.Speak(ctx, "second"))
	assert.True(t, s.Speaking())
	assert.Equal(t, 1, synth.CancelCallCount)

	s.Cancel()
	assert.False(t, s.Speaking())
	assert.Equal(t, 2, synth.CancelCallCount)

	s.Cancel()
	assert.Equal(t, 2, synth.CancelCallCount, "cancel with nothing in flight is a no-op")
}

func TestSpeakerErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.ErrorIs(t, speech.NewSpeaker(nil).Speak(ctx, "x"), speech.ErrUnavailable)

	boom := errors.New("boom")
	synth := &mock.Synthesizer{SpeakErr: boom, VoicesErr: errors.New("no voices")}
	s := speech.NewSpeaker(synth)
	require.NoError(t, s.Speak(ctx, "x"))
	assert.ErrorIs(t, s.Wait(ctx), boom)
}
