package agent

import (
	"strings"
	"unicode/utf8"
)

// continuationThreshold is the reply length, in runes, above which a
// completion phrase is accepted as a final report. Shorter replies are always
// treated as mid-task narration.
const continuationThreshold = 200

// completionPhrases are the case-insensitive markers scanned for when judging
// whether a long text reply is a final report. The list is a heuristic and
// intentionally loose; false positives are acceptable.
var completionPhrases = []string{
	"완료",
	"끝났습니다",
	"마쳤습니다",
	"마무리",
	"요약하자면",
	"정리하자면",
	"요약하면",
	"done",
	"finished",
	"completed",
	"complete",
	"task is complete",
	"to summarize",
	"in summary",
	"summary",
}

// needsContinuation judges whether a text-only reply is mid-task narration
// that should be followed by a continue nudge. An empty reply never continues;
// a reply longer than the threshold that carries a completion phrase is
// treated as the final report.
func needsContinuation(content string) bool {
	if content == "" {
		return false
	}
	if utf8.RuneCountInString(content) > continuationThreshold {
		lowered := strings.ToLower(content)
		for _, phrase := range completionPhrases {
			if strings.Contains(lowered, phrase) {
				return false
			}
		}
	}
	return true
}
