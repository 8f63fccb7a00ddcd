package ai

import (
	"fmt"
	"strings"

	"github.com/kino-avatar/kino/internal/model/avatar"
	"github.com/kino-avatar/kino/internal/model/persona"
)

// PromptTemplate holds the per-persona wording layered on top of the reply schema.
type PromptTemplate struct {
	SystemPrompt string
	ContextRules []string
}

// PersonaPromptManager builds system prompts for personas.
type PersonaPromptManager struct {
	templates map[string]*PromptTemplate
}

// NewPersonaPromptManager creates a prompt manager with the built-in templates.
func NewPersonaPromptManager() *PersonaPromptManager {
	return &PersonaPromptManager{
		templates: map[string]*PromptTemplate{
			persona.KinoID: {
				SystemPrompt: "Your name is Kino. You are a friendly, kid-loving AI teacher who explains things in a fun and cheerful way. " +
					"Avoid roleplaying actions like *wags tail* or *hugs*. Just use happy and kind language. " +
					"Keep answers extremely short, clear, and exciting.",
			},
		},
	}
}

// BuildSystemPrompt returns the persona introduction followed by the reply schema.
// limit caps how many messages the model is asked for; values below 1 mean one.
func (pm *PersonaPromptManager) BuildSystemPrompt(p persona.Persona, limit int) string {
	var builder strings.Builder
	builder.WriteString(pm.introduction(p))
	builder.WriteString("\n")
	builder.WriteString(replySchema(limit))
	return builder.String()
}

func (pm *PersonaPromptManager) introduction(p persona.Persona) string {
	if template, ok := pm.templates[p.ID]; ok {
		if len(template.ContextRules) == 0 {
			return template.SystemPrompt
		}
		return template.SystemPrompt + "\n- " + strings.Join(template.ContextRules, "\n- ")
	}

	// Fallback to a basic prompt assembled from the persona fields
	intro := fmt.Sprintf("Your name is %s. You are a %s who explains things in a %s way.", p.Name, p.Title, p.Tone)
	if hint := strings.TrimSpace(p.PromptHint); hint != "" {
		intro += " " + hint
	}
	return intro
}

func replySchema(limit int) string {
	if limit < 1 {
		limit = 1
	}

	expressions := make([]string, 0, len(avatar.FacialExpressions))
	for _, e := range avatar.FacialExpressions {
		expressions = append(expressions, string(e))
	}
	animations := make([]string, 0, len(avatar.Animations))
	for _, a := range avatar.Animations {
		animations = append(animations, string(a))
	}

	return fmt.Sprintf(`You will always reply with a JSON array of messages. With a maximum of %d messages.
Each message has a text, facialExpression, and animation property.
The different facial expressions are: %s.
The different animations are: %s.`,
		limit,
		joinChoices(expressions, ", and "),
		joinChoices(animations, " and "),
	)
}

func joinChoices(items []string, lastSep string) string {
	if len(items) < 2 {
		return strings.Join(items, "")
	}
	return strings.Join(items[:len(items)-1], ", ") + lastSep + items[len(items)-1]
}
