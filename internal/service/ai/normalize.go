package ai

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/kino-avatar/kino/internal/analysis/emotion"
	"github.com/kino-avatar/kino/internal/model/avatar"
)

// ParseMessages turns a completion into a payload.
//
// A bare array of messages and an object with a "messages" array are both
// accepted when every element has non-blank text. Any other valid JSON is
// spoken verbatim as one default message.
// Invalid JSON is returned as an error. Tag values are never checked against
// the known sets; missing tags are filled in.
func ParseMessages(content string, maxMessages int) (avatar.Payload, error) {
	trimmed := strings.TrimSpace(content)
	body := []byte(stripCodeFence(trimmed))

	var doc json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return avatar.Payload{}, err
	}

	messages, ok := decodeMessages(doc)
	if !ok {
		return avatar.Wrap(trimmed), nil
	}

	if maxMessages > 0 && len(messages) > maxMessages {
		messages = messages[:maxMessages]
	}
	for i := range messages {
		fillMissingTags(&messages[i])
	}
	return avatar.Payload{Messages: messages}, nil
}

func decodeMessages(doc json.RawMessage) ([]avatar.Message, bool) {
	doc = bytes.TrimSpace(doc)
	if len(doc) == 0 {
		return nil, false
	}

	switch doc[0] {
	case '[':
		return decodeMessageList(doc)
	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(doc, &envelope); err != nil {
			return nil, false
		}
		inner, ok := envelope["messages"]
		if !ok {
			return nil, false
		}
		return decodeMessageList(inner)
	default:
		return nil, false
	}
}

func decodeMessageList(raw json.RawMessage) ([]avatar.Message, bool) {
	var messages []avatar.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, false
	}
	if len(messages) == 0 {
		return nil, false
	}
	// every element must carry something to say
	for _, msg := range messages {
		if strings.TrimSpace(msg.Text) == "" {
			return nil, false
		}
	}
	return messages, true
}

func fillMissingTags(msg *avatar.Message) {
	if msg.FacialExpression == "" {
		msg.FacialExpression = emotion.ExpressionFor(msg.Text)
	}
	if msg.Animation == "" {
		msg.Animation = emotion.AnimationFor(msg.Text)
	}
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	body := strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = strings.TrimPrefix(body, "json")
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}
