package emotion

import (
	"strings"

	"github.com/kino-avatar/kino/internal/model/avatar"
)

// Label is an emotion inferred from text.
type Label string

const (
	Neutral Label = "neutral"
	Happy   Label = "happy"
	Sad     Label = "sad"
	Angry   Label = "angry"
	Excited Label = "excited"
	Silly   Label = "silly"
	Hushed  Label = "hushed"
	Comfort Label = "comfort"
)

// labelOrder fixes tie-breaking so the same text always yields the same label.
var labelOrder = []Label{Happy, Sad, Angry, Excited, Silly, Hushed, Comfort}

// Decision is the winning label and its keyword score.
type Decision struct {
	Emotion Label
	Score   int
}

var keywordBuckets = map[Label][]string{
	Happy: {
		"happy", "glad", "great", "awesome", "yay", "fun", "love", "thanks", "thank you", "smile",
		"wonderful", "nice", "good job", "well done", "hooray", "开心", "高兴",
	},
	Sad: {
		"sad", "cry", "unhappy", "upset", "hurt", "lonely", "miss", "sorry", "lost", "scared",
		"afraid", "难过", "伤心",
	},
	Angry: {
		"angry", "mad", "furious", "hate", "annoyed", "unfair", "stop it", "grr", "生气",
	},
	Excited: {
		"wow", "amazing", "incredible", "super", "can't wait", "cool", "fantastic", "whoa",
		"blast off", "zoom", "太棒了", "哇",
	},
	Silly: {
		"silly", "funny", "giggle", "haha", "hehe", "lol", "joke", "wiggle", "dance", "goofy",
	},
	Hushed: {
		"secret", "whisper", "shh", "psst", "between us", "don't tell", "悄悄",
	},
	Comfort: {
		"don't worry", "it's okay", "it's ok", "you can do it", "i'm here", "you're safe",
		"take a deep breath", "that's alright", "别担心", "没事",
	},
}

const (
	keywordWeight    = 3
	exclamationBoost = 2
)

// Analyze infers an emotion for a reply. When the reply has no cue of its
// own, it answers the user's mood instead.
func Analyze(userUtterance, reply string) Decision {
	if d := scoreText(reply); d.Score > 0 {
		return d
	}
	if d := scoreText(userUtterance); d.Score > 0 {
		return respondTo(d)
	}
	return Decision{Emotion: Neutral}
}

// FacialExpression maps an emotion onto the avatar's expression set.
func FacialExpression(label Label) avatar.FacialExpression {
	switch label {
	case Happy, Comfort:
		return avatar.Smile
	case Excited:
		return avatar.Surprised
	case Silly:
		return avatar.FunnyFace
	case Sad:
		return avatar.Sad
	case Angry:
		return avatar.Angry
	default:
		return avatar.Default
	}
}

// Animation picks a body animation. Most lines are spoken, so Talking wins
// unless the text carries a strong cue.
func Animation(label Label) avatar.Animation {
	switch label {
	case Silly:
		return avatar.FunnyDance
	case Hushed:
		return avatar.Secret
	case Angry:
		return avatar.AngryMotion
	default:
		return avatar.Talking
	}
}

// ExpressionFor infers a facial expression for a line of spoken text.
func ExpressionFor(text string) avatar.FacialExpression {
	return FacialExpression(Analyze("", text).Emotion)
}

// AnimationFor infers an animation for a line of spoken text.
func AnimationFor(text string) avatar.Animation {
	return Animation(Analyze("", text).Emotion)
}

func scoreText(text string) Decision {
	normalized := strings.TrimSpace(strings.ToLower(text))
	if normalized == "" {
		return Decision{Emotion: Neutral}
	}

	scores := make(map[Label]int, len(labelOrder))
	for label, keywords := range keywordBuckets {
		for _, word := range keywords {
			if strings.Contains(normalized, word) {
				scores[label] += keywordWeight
			}
		}
	}

	// one "!" reads as cheerful, several as excited
	switch n := strings.Count(text, "!"); {
	case n == 1:
		scores[Happy] += exclamationBoost
	case n > 1:
		scores[Excited] += n * exclamationBoost
	}

	best := Decision{Emotion: Neutral}
	for _, label := range labelOrder {
		if s := scores[label]; s > best.Score {
			best = Decision{Emotion: label, Score: s}
		}
	}
	return best
}

func respondTo(user Decision) Decision {
	switch user.Emotion {
	case Sad, Angry:
		return Decision{Emotion: Comfort, Score: user.Score}
	case Hushed:
		return Decision{Emotion: Neutral}
	default:
		return user
	}
}
