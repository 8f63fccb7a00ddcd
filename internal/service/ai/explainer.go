package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/kino-avatar/kino/internal/model/classroom"
)

const (
	explainTemperature  = 0.7
	explainMaxTokens    = 2000
	fallbackExplanation = "I couldn't generate a proper response format, but here's what I have."
)

// Explanation is the text and visualization produced for one question.
type Explanation struct {
	Text          string                  `json:"text"`
	Visualization classroom.Visualization `json:"visualization"`
}

// Explainer answers classroom questions with an explanation and a visualization to animate it.
type Explainer struct {
	chatModel   model.BaseChatModel
	template    prompt.ChatTemplate
	callOptions []model.Option
}

// NewExplainer creates an Explainer using chatModel; modelName may be empty.
func NewExplainer(chatModel model.BaseChatModel, modelName string) *Explainer {
	callOptions := []model.Option{
		model.WithTemperature(explainTemperature),
		model.WithMaxTokens(explainMaxTokens),
	}
	if modelName != "" {
		callOptions = append(callOptions, model.WithModel(modelName))
	}

	return &Explainer{
		chatModel: chatModel,
		template: prompt.FromMessages(
			schema.FString,
			schema.SystemMessage("{system}"),
			schema.UserMessage("{query}"),
		),
		callOptions: callOptions,
	}
}

// Explain asks the model about question. Request failures are returned as
// errors; a reply that cannot be read as JSON still yields a fallback explanation.
func (e *Explainer) Explain(ctx context.Context, question string) (Explanation, error) {
	messages, err := e.template.Format(ctx, map[string]any{
		"system": explainSystemPrompt,
		"query":  buildExplainPrompt(question),
	})
	if err != nil {
		return Explanation{}, fmt.Errorf("failed to format explain prompt: %w", err)
	}

	response, err := e.chatModel.Generate(ctx, messages, e.callOptions...)
	if err != nil {
		return Explanation{}, fmt.Errorf("failed to call chat model: %w", err)
	}
	if response == nil {
		return Explanation{}, ErrEmptyCompletion
	}

	return ParseExplanation(response.Content), nil
}

var (
	jsonFencePattern = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	anyFencePattern  = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// ParseExplanation reads the model's reply, tolerating code fences and chatter
// around the JSON object.
func ParseExplanation(content string) Explanation {
	candidate := content
	if m := jsonFencePattern.FindStringSubmatch(content); m != nil {
		candidate = strings.TrimSpace(m[1])
	} else if m := anyFencePattern.FindStringSubmatch(content); m != nil {
		candidate = strings.TrimSpace(m[1])
	}

	var parsed Explanation
	err := json.Unmarshal([]byte(candidate), &parsed)
	if err == nil {
		return parsed
	}
	log.Printf("[ai] explanation is not json, trying to extract an object: %v", err)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start != -1 && end > start {
		var extracted Explanation
		if err := json.Unmarshal([]byte(content[start:end+1]), &extracted); err == nil {
			return extracted
		}
	}

	return fallbackExplanationFor(content)
}

func fallbackExplanationFor(content string) Explanation {
	text := strings.TrimSpace(content)
	if text == "" {
		text = fallbackExplanation
	}

	return Explanation{
		Text: text,
		Visualization: classroom.Visualization{
			ID:       "fallback_vis",
			Duration: 2000,
			FPS:      30,
			Layers: []classroom.Layer{{
				ID:   "fallback_text",
				Type: "text",
				Props: map[string]any{
					"x": 100, "y": 100, "text": "Visualization", "fontSize": 14, "fill": "#333",
				},
				Animations: []classroom.LayerAnimation{},
			}},
		},
	}
}

const explainSystemPrompt = "You are an educational AI that creates explanations with visualizations. Always respond with valid JSON containing 'text' and 'visualization' fields."

func buildExplainPrompt(question string) string {
	return fmt.Sprintf(`You are an educational AI that explains concepts with both text and visualizations. Be elaborate and detailed. Mention every element of the list if there is one.
For the question: %q

Respond with a JSON object containing:
1. "text": a clear, simple explanation (2-3 sentences)
2. "visualization": a JSON specification for animating the concept

The visualization has:
- id: unique identifier
- duration: animation duration in milliseconds (3000-6000 recommended)
- fps: frames per second (30 recommended)
- layers: array of visual elements with animations

Each layer has:
- id: unique identifier, plus an optional "label"
- type: one of "circle", "rectangle", "polygon", "star", "arrow", "line", "curve", "text", "particle", "wave"
- props, using these exact names:
  - circles: { "x", "y", "r", "fill", "stroke", "strokeWidth" }
  - rectangles: { "x", "y", "width", "height", "fill", "stroke", "strokeWidth" }
  - text: { "x", "y", "text", "fontSize", "fill", "fontFamily" }
  - arrows: { "x", "y", "dx", "dy", "color", "width" }
  - lines: { "x1", "y1", "x2", "y2", "stroke", "strokeWidth", "dash" }
- animations: array of { "property", "from", "to", "start", "end", "easing", "type" }
  - easing: "easeIn", "easeOut", "easeInOut", "bounce", "elastic", "back"
  - type: "linear", "orbit", "bounce", "pulse", "fade", "rotate", "color"

Rendering rules:
1) Black and white only: "#000" fills and strokes on a white canvas.
2) Give layers meaningful ids and labels (for photosynthesis: "leaf", "sun", "water", "oxygen" ...).
3) Use "fill" and "stroke" for colors; "color" only for arrows.
4) Use "r" for circle radius and keep it between 10 and 50.
5) Respond with pure JSON only, no markdown formatting.`, question)
}
