// Package analyzer derives a mood/sentiment/tone/language classification
// from free-text chat messages using deterministic keyword rules.
//
// The rule-based implementation is the default strategy; Classifier exists
// so a real model can replace it without touching callers.
package analyzer

import (
	"fmt"
	"strings"
	"unicode"
)

// Languages the classifier can detect or be hinted with.
const (
	LanguageAuto     = "auto"
	LanguageEnglish  = "english"
	LanguageHindi    = "hindi"
	LanguageHinglish = "hinglish"
)

// Sentiments derived from the detected mood.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Moods the classifier can produce. These are broader than the snippet
// catalog's mood tags: they describe the message, not a song.
const (
	MoodHappy        = "happy"
	MoodSad          = "sad"
	MoodAngry        = "angry"
	MoodRomantic     = "romantic"
	MoodProfessional = "professional"
	MoodNeutral      = "neutral"
)

// Tones the classifier can produce.
const (
	ToneCasual   = "casual"
	ToneFormal   = "formal"
	ToneUrgent   = "urgent"
	ToneFriendly = "friendly"
)

// Emotion is a named emotion with a fixed score.
type Emotion struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Context summarizes the conversational situation of a message.
type Context struct {
	Type         string `json:"type"`         // business, personal or casual
	Relationship string `json:"relationship"` // professional, close friend or acquaintance
	Urgency      string `json:"urgency"`      // high or normal
}

// Classification is the full analysis of one message. It is a transient
// value owned by the request that produced it.
type Classification struct {
	Mood          string    `json:"mood"`
	Sentiment     string    `json:"sentiment"`
	Language      string    `json:"language"`
	Tone          string    `json:"tone"`
	Emotions      []Emotion `json:"emotions"`
	Keywords      []string  `json:"keywords"`
	Confidence    float64   `json:"confidence"`
	Context       Context   `json:"context"`
	ResponseHints []string  `json:"responseHints"`
}

// Classifier analyzes a message, optionally guided by a language hint
// ("auto" lets the classifier detect the language itself).
type Classifier interface {
	Classify(text, languageHint string) (Classification, error)
}

// moodRule associates a mood with its trigger markers. Rules are evaluated
// in order and the first rule with any matching marker wins.
type moodRule struct {
	mood      string
	sentiment string
	markers   []string
}

// Priority order matters: a message matching several categories gets the
// first one. This ordering is part of the observable contract.
var moodRules = []moodRule{
	{MoodHappy, SentimentPositive, []string{"happy", "excited", "😊", "🎉"}},
	{MoodSad, SentimentNegative, []string{"sad", "disappointed", "😢"}},
	{MoodAngry, SentimentNegative, []string{"angry", "frustrated", "😡"}},
	{MoodRomantic, SentimentPositive, []string{"love", "❤️", "romantic"}},
	{MoodProfessional, SentimentNeutral, []string{"work", "meeting", "professional"}},
}

type toneRule struct {
	tone    string
	markers []string
}

var toneRules = []toneRule{
	{ToneFormal, []string{"please", "thank you", "sir", "madam"}},
	{ToneUrgent, []string{"urgent", "asap", "immediately"}},
	{ToneFriendly, []string{"hey", "bro", "dude"}},
}

var stopWords = map[string]bool{
	"the": true, "is": true, "at": true, "which": true, "on": true,
	"and": true, "a": true, "to": true, "are": true, "as": true,
	"was": true, "but": true, "or": true, "have": true, "from": true,
	"this": true, "that": true, "will": true, "can": true,
	"would": true, "could": true, "should": true,
}

const maxKeywords = 5

// RuleBased is the deterministic keyword classifier.
type RuleBased struct{}

// NewRuleBased returns the default classifier.
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

// Classify analyzes the message. It never fails on well-formed non-empty
// text; empty or whitespace-only input is a validation error for the
// caller to surface.
func (c *RuleBased) Classify(text, languageHint string) (Classification, error) {
	if strings.TrimSpace(text) == "" {
		return Classification{}, &EmptyMessageError{}
	}

	lower := strings.ToLower(text)

	language := detectLanguage(text, languageHint)
	mood, sentiment, moodMatched := detectMood(lower)
	tone, toneMatched := detectTone(lower)
	keywords := extractKeywords(lower)

	cl := Classification{
		Mood:       mood,
		Sentiment:  sentiment,
		Language:   language,
		Tone:       tone,
		Emotions:   emotionsFor(sentiment),
		Keywords:   keywords,
		Confidence: confidence(moodMatched, toneMatched, len(keywords) > 0, languageHint != LanguageAuto && languageHint != ""),
		Context:    contextFor(mood, tone),
	}
	cl.ResponseHints = responseHints(cl)
	return cl, nil
}

// EmptyMessageError signals empty or whitespace-only input.
type EmptyMessageError struct{}

func (*EmptyMessageError) Error() string { return "message must not be empty" }

func detectLanguage(text, hint string) string {
	switch hint {
	case LanguageEnglish, LanguageHindi, LanguageHinglish:
		return hint
	}

	var hasDevanagari, hasLatin bool
	for _, r := range text {
		switch {
		case r >= 0x0900 && r <= 0x097F:
			hasDevanagari = true
		case unicode.In(r, unicode.Latin):
			hasLatin = true
		}
	}

	switch {
	case hasDevanagari && hasLatin:
		return LanguageHinglish
	case hasDevanagari:
		return LanguageHindi
	default:
		return LanguageEnglish
	}
}

func detectMood(lower string) (mood, sentiment string, matched bool) {
	for _, rule := range moodRules {
		for _, marker := range rule.markers {
			if strings.Contains(lower, marker) {
				return rule.mood, rule.sentiment, true
			}
		}
	}
	return MoodNeutral, SentimentNeutral, false
}

func detectTone(lower string) (tone string, matched bool) {
	for _, rule := range toneRules {
		for _, marker := range rule.markers {
			if strings.Contains(lower, marker) {
				return rule.tone, true
			}
		}
	}
	return ToneCasual, false
}

// extractKeywords keeps the first 5 tokens longer than 3 characters that
// are not stop words, in original order. Punctuation is stripped first.
func extractKeywords(lower string) []string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, lower)

	var keywords []string
	for _, word := range strings.Fields(stripped) {
		if len([]rune(word)) <= 3 || stopWords[word] {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}

func emotionsFor(sentiment string) []Emotion {
	switch sentiment {
	case SentimentPositive:
		return []Emotion{{"joy", 0.8}, {"excitement", 0.6}}
	case SentimentNegative:
		return []Emotion{{"sadness", 0.7}, {"frustration", 0.5}}
	default:
		return []Emotion{{"neutral", 0.9}}
	}
}

func contextFor(mood, tone string) Context {
	ctx := Context{Type: "casual", Relationship: "acquaintance", Urgency: "normal"}

	switch mood {
	case MoodProfessional:
		ctx.Type = "business"
	case MoodRomantic:
		ctx.Type = "personal"
	}

	switch tone {
	case ToneFormal:
		ctx.Relationship = "professional"
	case ToneFriendly:
		ctx.Relationship = "close friend"
	}

	if tone == ToneUrgent {
		ctx.Urgency = "high"
	}
	return ctx
}

// confidence starts at 0.6 and earns 0.1 per matched signal class,
// capped at 1.0.
func confidence(moodMatched, toneMatched, hasKeywords, hinted bool) float64 {
	score := 0.6
	for _, hit := range []bool{moodMatched, toneMatched, hasKeywords, hinted} {
		if hit {
			score += 0.1
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func responseHints(cl Classification) []string {
	hints := []string{
		fmt.Sprintf("The message shows %s mood, consider responding with %s energy", cl.Mood, cl.Sentiment),
		fmt.Sprintf("Detected %s language mixing, maintain similar language style", cl.Language),
		fmt.Sprintf("Conversation appears %s, match the formality level", cl.Tone),
	}
	if len(cl.Keywords) > 0 {
		hints = append(hints, fmt.Sprintf("Key topics: %s - address these in your response", strings.Join(cl.Keywords, ", ")))
	}
	return hints
}
