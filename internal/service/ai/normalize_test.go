package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kino-avatar/kino/internal/model/avatar"
)

func TestParseMessagesShapes(t *testing.T) {
	hi := avatar.Message{Text: "Hi!", FacialExpression: avatar.Smile, Animation: avatar.Talking}

	tests := []struct {
		name    string
		content string
		want    avatar.Payload
	}{
		{
			name:    "bare array",
			content: `[{"text":"Hi!","facialExpression":"smile","animation":"Talking"}]`,
			want:    avatar.Payload{Messages: []avatar.Message{hi}},
		},
		{
			name:    "messages envelope",
			content: ` {"messages":[{"text":"Hi!","facialExpression":"smile","animation":"Talking"}]} `,
			want:    avatar.Payload{Messages: []avatar.Message{hi}},
		},
		{
			name:    "fenced array",
			content: "```json\n[{\"text\":\"Hi!\",\"facialExpression\":\"smile\",\"animation\":\"Talking\"}]\n```",
			want:    avatar.Payload{Messages: []avatar.Message{hi}},
		},
		{
			name:    "object without messages is wrapped",
			content: `{"reply":"Hello"}`,
			want:    avatar.Wrap(`{"reply":"Hello"}`),
		},
		{
			name:    "empty array is wrapped",
			content: `[]`,
			want:    avatar.Wrap(`[]`),
		},
		{
			name:    "array of strings is wrapped",
			content: `["Hi!"]`,
			want:    avatar.Wrap(`["Hi!"]`),
		},
		{
			name:    "element without text is wrapped",
			content: `[{"foo":1}]`,
			want:    avatar.Wrap(`[{"foo":1}]`),
		},
		{
			name:    "empty object element is wrapped",
			content: `[{}]`,
			want:    avatar.Wrap(`[{}]`),
		},
		{
			name:    "envelope element without text is wrapped",
			content: `{"messages":[{"msg":"hi"}]}`,
			want:    avatar.Wrap(`{"messages":[{"msg":"hi"}]}`),
		},
		{
			name:    "one blank element wraps the whole list",
			content: `[{"text":"Hi!"},{"text":"  ","animation":"Idle"}]`,
			want:    avatar.Wrap(`[{"text":"Hi!"},{"text":"  ","animation":"Idle"}]`),
		},
		{
			name:    "null element is wrapped",
			content: `[null]`,
			want:    avatar.Wrap(`[null]`),
		},
		{
			name:    "json string is wrapped",
			content: `"Hello there"`,
			want:    avatar.Wrap(`"Hello there"`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMessages(tt.content, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMessagesInvalidJSON(t *testing.T) {
	for _, content := range []string{"not json", "", "[{", "```\nnope\n```"} {
		_, err := ParseMessages(content, 0)
		assert.Error(t, err, "content %q", content)
	}
}

func TestParseMessagesFillsMissingTags(t *testing.T) {
	got, err := ParseMessages(`[{"text":"Wow!!! Volcanoes are amazing"}]`, 0)
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, avatar.Surprised, got.Messages[0].FacialExpression)
	assert.Equal(t, avatar.Talking, got.Messages[0].Animation)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `[1]`, stripCodeFence("```json\n[1]\n```"))
	assert.Equal(t, `[1]`, stripCodeFence("```json [1]```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `plain`, stripCodeFence("plain"))
}
