package validator

import (
	"regexp"

	"github.com/povarna/generative-ai-agents/voice-agent/internal/models"
)

// Checker produces advisory findings. They are reported as warnings and never
// change the score or the approval.
type Checker interface {
	Check(content string) []models.Violation
}

type EmojiChecker struct{}

var emojiPattern = regexp.MustCompile(`[\x{1F300}-\x{1FAFF}\x{2600}-\x{27BF}\x{1F1E6}-\x{1F1FF}]`)

func (c *EmojiChecker) Check(content string) []models.Violation {
	found := emojiPattern.FindString(content)
	if found == "" {
		return nil
	}
	return []models.Violation{{Rule: models.RuleEmoji, Phrase: "emoji", Span: found}}
}

type RepeatedPunctuationChecker struct{}

var repeatedPunctuation = regexp.MustCompile(`[!?.]{3,}`)

func (c *RepeatedPunctuationChecker) Check(content string) []models.Violation {
	found := repeatedPunctuation.FindString(content)
	if found == "" {
		return nil
	}
	return []models.Violation{{Rule: models.RuleRepeatedPunctuation, Phrase: "repeated punctuation", Span: found}}
}

// ShoutingChecker flags runs of three or more all-caps words. Single acronyms
// such as "FAQ" are fine.
type ShoutingChecker struct{}

var shouting = regexp.MustCompile(`\b[A-Z]{2,}(?:[\s,]+[A-Z]{2,}){2,}\b`)

func (c *ShoutingChecker) Check(content string) []models.Violation {
	found := shouting.FindString(content)
	if found == "" {
		return nil
	}
	return []models.Violation{{Rule: models.RuleShouting, Phrase: "all caps", Span: found}}
}

func DefaultCheckers() []Checker {
	return []Checker{
		&EmojiChecker{},
		&RepeatedPunctuationChecker{},
		&ShoutingChecker{},
	}
}
