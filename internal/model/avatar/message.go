package avatar

// FacialExpression is a face tag understood by the avatar client.
type FacialExpression string

const (
	Smile     FacialExpression = "smile"
	Sad       FacialExpression = "sad"
	Angry     FacialExpression = "angry"
	Surprised FacialExpression = "surprised"
	FunnyFace FacialExpression = "funnyFace"
	Default   FacialExpression = "default"
)

// Animation is a body animation the avatar client can play.
type Animation string

const (
	Talking     Animation = "Talking"
	Secret      Animation = "Secret"
	Idle        Animation = "Idle"
	Rapping     Animation = "Rapping"
	FunnyDance  Animation = "Funny_Dance"
	AngryMotion Animation = "Angry"
)

// FacialExpressions lists the expressions advertised to the model, in prompt order.
var FacialExpressions = []FacialExpression{Smile, Sad, Angry, Surprised, FunnyFace, Default}

// Animations lists the animations advertised to the model, in prompt order.
var Animations = []Animation{Talking, Secret, Idle, Rapping, FunnyDance, AngryMotion}

// Valid reports whether the expression is one the avatar client knows.
func (f FacialExpression) Valid() bool {
	for _, known := range FacialExpressions {
		if f == known {
			return true
		}
	}
	return false
}

// Valid reports whether the animation is one the avatar client knows.
func (a Animation) Valid() bool {
	for _, known := range Animations {
		if a == known {
			return true
		}
	}
	return false
}

// Message is a single spoken line for the avatar.
// Values decoded from the model are kept as-is, including unknown tags.
type Message struct {
	Text             string           `json:"text"`
	FacialExpression FacialExpression `json:"facialExpression"`
	Animation        Animation        `json:"animation"`
}

// Payload is the document printed for the rendering client.
type Payload struct {
	Messages []Message `json:"messages"`
}

const (
	placeholderText = "No input provided."
	fallbackPrefix  = "An error occurred: "
)

// Placeholder is emitted when there is nothing to send upstream.
func Placeholder() Payload {
	return Payload{Messages: []Message{{
		Text:             placeholderText,
		FacialExpression: Default,
		Animation:        Idle,
	}}}
}

// Fallback carries an error detail as the avatar's spoken text.
func Fallback(detail string) Payload {
	return Payload{Messages: []Message{{
		Text:             fallbackPrefix + detail,
		FacialExpression: Smile,
		Animation:        Idle,
	}}}
}

// Wrap turns raw model text that did not match any known shape into one default message.
func Wrap(text string) Payload {
	return Payload{Messages: []Message{{
		Text:             text,
		FacialExpression: Default,
		Animation:        Idle,
	}}}
}
