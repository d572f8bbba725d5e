package verdict_test

import (
	"testing"

	"github.com/parkdui/LG-Thingo/internal/models"
	"github.com/parkdui/LG-Thingo/internal/verdict"
	"github.com/stretchr/testify/require"
)

func user(content string) models.Turn {
	return models.Turn{Role: models.RoleUser, Content: content}
}

func assistant(content string) models.Turn {
	return models.Turn{Role: models.RoleAssistant, Content: content}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		transcript  models.Transcript
		wantSuccess bool
	}{
		{
			name:        "empty transcript fails",
			transcript:  models.Transcript{},
			wantSuccess: false,
		},
		{
			name:        "nil transcript fails",
			transcript:  nil,
			wantSuccess: false,
		},
		{
			name:        "two positive turns succeed",
			transcript:  models.Transcript{user("좋아"), user("좋아")},
			wantSuccess: true,
		},
		{
			name:        "single negative turn is below the engagement floor",
			transcript:  models.Transcript{user("싫어")},
			wantSuccess: false,
		},
		{
			name:        "single positive turn is below the engagement floor",
			transcript:  models.Transcript{user("좋아")},
			wantSuccess: false,
		},
		{
			name: "negatives outweigh positives",
			transcript: models.Transcript{
				user("별로야"), user("싫어"), user("좋아"),
			},
			wantSuccess: false,
		},
		{
			name: "tie counts as success",
			transcript: models.Transcript{
				user("좋아"), user("싫어"),
			},
			wantSuccess: true,
		},
		{
			name: "neutral turns tie at zero and succeed",
			transcript: models.Transcript{
				user("음"), user("글쎄"),
			},
			wantSuccess: true,
		},
		{
			name: "assistant turns never count",
			transcript: models.Transcript{
				assistant("좋아 좋아 정말 좋아"), user("싫어"), user("별로"),
			},
			wantSuccess: false,
		},
		{
			name: "negated positive double-counts and ties",
			// "괜찮지 않아" hits the positive "괜찮" substring and the negative
			// "괜찮지 않", so the refusal scores as a tie and passes. Lexical
			// scoring, not semantic, by design.
			transcript: models.Transcript{
				user("괜찮지 않아"), user("괜찮지 않아"),
			},
			wantSuccess: true,
		},
		{
			name: "curiosity keywords count as positive",
			transcript: models.Transcript{
				user("더 알고 싶어"), user("궁금해"),
			},
			wantSuccess: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := verdict.Classify(tt.transcript)
			require.Equal(t, tt.wantSuccess, got.IsSuccess)
			require.NotEmpty(t, got.Message)
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	transcript := models.Transcript{user("좋아"), user("괜찮네"), user("싫어")}
	first := verdict.Classify(transcript)
	for range 20 {
		// The message may vary between the fixed variants, the verdict must not.
		require.Equal(t, first.IsSuccess, verdict.Classify(transcript).IsSuccess)
	}
}

func TestClassifyMessageMatchesOutcome(t *testing.T) {
	success := verdict.Classify(models.Transcript{user("좋아"), user("좋아")})
	require.True(t, success.IsSuccess)
	require.Contains(t, success.Message, "입양 성공")

	failure := verdict.Classify(models.Transcript{user("싫어"), user("싫어")})
	require.False(t, failure.IsSuccess)
	require.Contains(t, failure.Message, "입양 실패")
}
