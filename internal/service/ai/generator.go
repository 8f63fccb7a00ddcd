package ai

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/kino-avatar/kino/internal/config"
	"github.com/kino-avatar/kino/internal/model/avatar"
	"github.com/kino-avatar/kino/internal/model/persona"
)

// Generator turns one line of user text into avatar messages.
type Generator struct {
	chatModel    model.BaseChatModel
	template     prompt.ChatTemplate
	systemPrompt string
	maxMessages  int
	callOptions  []model.Option
}

// NewGenerator builds a Generator around chatModel speaking as p.
// Sampling parameters are sent on every call so they hold for any provider.
func NewGenerator(chatModel model.BaseChatModel, p persona.Persona, cfg config.AIConfig) *Generator {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	promptLimit := cfg.MaxMessages
	if promptLimit < 1 {
		promptLimit = 1
	}

	callOptions := []model.Option{
		model.WithTemperature(float32(cfg.Temperature)),
		model.WithMaxTokens(cfg.MaxTokens),
	}
	if cfg.Model != "" {
		callOptions = append(callOptions, model.WithModel(cfg.Model))
	}

	return &Generator{
		chatModel:    chatModel,
		template:     promptTemplate,
		systemPrompt: NewPersonaPromptManager().BuildSystemPrompt(p, promptLimit),
		maxMessages:  cfg.MaxMessages,
		callOptions:  callOptions,
	}
}

// SystemPrompt returns the instruction turn sent with every request.
func (g *Generator) SystemPrompt() string {
	return g.systemPrompt
}

// Generate asks the model for avatar messages.
//
// The payload is always safe to print. When the request or the parse fails,
// the payload is a fallback message and err is an *Error describing why.
func (g *Generator) Generate(ctx context.Context, userInput string) (avatar.Payload, error) {
	if strings.TrimSpace(userInput) == "" {
		return avatar.Placeholder(), &Error{Kind: KindEmptyInput, Err: ErrEmptyInput}
	}

	content, err := g.complete(ctx, userInput)
	if err != nil {
		return g.fail(KindTransport, err)
	}

	payload, err := ParseMessages(content, g.maxMessages)
	if err != nil {
		log.Printf("[ai] completion is not json: %q", content)
		return g.fail(KindParse, err)
	}

	log.Printf("[ai] generated %d message(s)", len(payload.Messages))
	return payload, nil
}

func (g *Generator) complete(ctx context.Context, userInput string) (string, error) {
	messages, err := g.template.Format(ctx, map[string]any{
		"system": g.systemPrompt,
		"query":  userInput,
	})
	if err != nil {
		return "", err
	}

	response, err := g.chatModel.Generate(ctx, messages, g.callOptions...)
	if err != nil {
		return "", err
	}
	if response == nil {
		return "", ErrEmptyCompletion
	}
	return response.Content, nil
}

func (g *Generator) fail(kind Kind, cause error) (avatar.Payload, error) {
	genErr := &Error{Kind: kind, Err: cause}
	if errors.Is(cause, context.DeadlineExceeded) {
		log.Printf("[ai] request timed out: %v", cause)
	} else {
		log.Printf("[ai] generation failed: %v", genErr)
	}
	return avatar.Fallback(genErr.Detail()), genErr
}
