// Package verdict turns a finished transcript into a binary adoption
// verdict. Scoring is lexical on purpose: lower-cased substring counting
// against fixed keyword sets, no tokenization, no negation handling. A
// negative phrase containing a positive keyword as a substring double-counts,
// and that is accepted behaviour, not a bug.
package verdict

import (
	"strings"

	"github.com/parkdui/LG-Thingo/internal/models"
	"github.com/parkdui/LG-Thingo/internal/random"
)

var positiveKeywords = []string{
	"좋아", "괜찮", "맞", "필요", "원해", "좋겠", "궁금", "알고 싶", "더", "괜찮아",
}

var negativeKeywords = []string{
	"싫", "안", "아니", "별로", "필요 없", "괜찮지 않",
}

// minEngagedTurns is the engagement floor: fewer user turns auto-fail.
const minEngagedTurns = 2

var successMessages = []string{
	"입양 성공! 당신과 잘 맞는 제품이에요.",
	"입양 성공! 서로 마음이 통했어요.",
}

var failureMessages = []string{
	"입양 실패. 다른 제품을 찾아보세요.",
	"입양 실패. 아직 인연이 아닌가 봐요.",
}

// Classify scores a transcript into a verdict. IsSuccess is deterministic
// for a fixed transcript; the display message is picked among two fixed
// variants per outcome.
func Classify(transcript models.Transcript) models.Verdict {
	userTurns := transcript.UserTurns()

	positives, negatives := 0, 0
	for _, turn := range userTurns {
		content := strings.ToLower(turn.Content)
		for _, keyword := range positiveKeywords {
			if strings.Contains(content, keyword) {
				positives++
			}
		}
		for _, keyword := range negativeKeywords {
			if strings.Contains(content, keyword) {
				negatives++
			}
		}
	}

	isSuccess := len(userTurns) >= minEngagedTurns && positives >= negatives

	messages := failureMessages
	if isSuccess {
		messages = successMessages
	}
	return models.Verdict{
		IsSuccess: isSuccess,
		Message:   messages[random.Index(len(messages))],
	}
}
