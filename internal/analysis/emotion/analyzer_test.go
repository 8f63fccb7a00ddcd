package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kino-avatar/kino/internal/model/avatar"
)

func TestAnalyzeReplyWins(t *testing.T) {
	decision := Analyze("I am so sad today", "Wow!! Rockets are amazing")
	assert.Equal(t, Excited, decision.Emotion)
	assert.Greater(t, decision.Score, 0)
}

func TestAnalyzeComfortsUpsetUser(t *testing.T) {
	assert.Equal(t, Comfort, Analyze("I am so sad today", "Let me tell you about stars.").Emotion)
	assert.Equal(t, Comfort, Analyze("this is unfair, I'm mad", "").Emotion)
}

func TestAnalyzeNeutral(t *testing.T) {
	decision := Analyze("", "The sky is blue.")
	assert.Equal(t, Neutral, decision.Emotion)
	assert.Equal(t, 0, decision.Score)
}

func TestAnalyzeTiesAreStable(t *testing.T) {
	// "funny" also matches "fun"; Happy precedes Silly on the tie.
	for i := 0; i < 20; i++ {
		assert.Equal(t, Happy, Analyze("", "funny").Emotion)
	}
}

func TestExpressionFor(t *testing.T) {
	assert.Equal(t, avatar.Smile, ExpressionFor("Yay, great job!"))
	assert.Equal(t, avatar.Surprised, ExpressionFor("Wow!!! Rockets are amazing"))
	assert.Equal(t, avatar.FunnyFace, ExpressionFor("Hehe, what a goofy joke"))
	assert.Equal(t, avatar.Default, ExpressionFor("The sky is blue."))
}

func TestAnimationFor(t *testing.T) {
	assert.Equal(t, avatar.Secret, AnimationFor("Psst, here is a secret"))
	assert.Equal(t, avatar.FunnyDance, AnimationFor("Let's do a silly dance"))
	assert.Equal(t, avatar.Talking, AnimationFor("The sky is blue."))
}

func TestTagsAreAlwaysKnown(t *testing.T) {
	for _, label := range append([]Label{Neutral}, labelOrder...) {
		assert.True(t, FacialExpression(label).Valid(), "label %s", label)
		assert.True(t, Animation(label).Valid(), "label %s", label)
	}
}
