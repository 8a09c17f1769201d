// Package chat runs the per-turn conversation loop: it hands the
// role-scoped tool descriptors to the model, executes the tool calls
// the model requests through the registry, and feeds the structured
// results (or structured errors, so the model can self-correct) back
// until the model produces a final answer.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"maitred/internal/monitoring"
	"maitred/internal/tools"
)

// Service drives chat turns against the LLM and the tool registry
type Service struct {
	model         llms.Model
	registry      *tools.Registry
	sessions      *SessionStore
	metrics       *monitoring.Metrics
	monitor       *monitoring.Monitor
	temperature   float64
	maxToolRounds int
}

// Option configures the chat service
type Option func(*Service)

// WithTemperature sets the sampling temperature for chat completions
func WithTemperature(t float64) Option {
	return func(s *Service) { s.temperature = t }
}

// WithMaxToolRounds bounds how many tool-execution rounds one turn may take
func WithMaxToolRounds(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxToolRounds = n
		}
	}
}

// WithMetrics wires Prometheus metrics into the chat loop
func WithMetrics(m *monitoring.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithMonitor wires the runtime stats monitor into the chat loop
func WithMonitor(m *monitoring.Monitor) Option {
	return func(s *Service) { s.monitor = m }
}

// WithHistoryLimit bounds how many messages are kept per session
func WithHistoryLimit(n int) Option {
	return func(s *Service) { s.sessions = NewSessionStore(n) }
}

// NewService creates a chat service
func NewService(model llms.Model, registry *tools.Registry, opts ...Option) *Service {
	s := &Service{
		model:         model,
		registry:      registry,
		sessions:      NewSessionStore(20),
		temperature:   0.1,
		maxToolRounds: 5,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Chat runs one conversational turn for the given role and session.
// It returns the assistant's reply and the session ID, which is
// generated when the caller did not supply one.
func (s *Service) Chat(ctx context.Context, role tools.Role, sessionID, message string) (string, string, error) {
	descriptors, err := s.registry.ListAvailableTools(role)
	if err != nil {
		return "", "", err
	}
	toolDefs := toolDefinitions(descriptors)

	sessionID = EnsureSessionID(sessionID)

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt(role)),
	}
	messages = append(messages, s.sessions.History(sessionID)...)
	userMessage := llms.TextParts(llms.ChatMessageTypeHuman, message)
	messages = append(messages, userMessage)

	var reply string
	for round := 0; ; round++ {
		opts := []llms.CallOption{llms.WithTemperature(s.temperature)}
		// The final round runs without tools to force an answer
		if round < s.maxToolRounds {
			opts = append(opts, llms.WithTools(toolDefs))
		}

		resp, err := s.model.GenerateContent(ctx, messages, opts...)
		if err != nil {
			return "", sessionID, fmt.Errorf("chat completion failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", sessionID, errors.New("chat completion returned no choices")
		}

		choice := resp.Choices[0]
		if len(choice.ToolCalls) == 0 || round >= s.maxToolRounds {
			reply = choice.Content
			break
		}

		toolMessages, err := s.executeToolCalls(ctx, role, choice.ToolCalls)
		if err != nil {
			return "", sessionID, err
		}
		messages = append(messages, toolMessages...)
	}

	s.sessions.Append(sessionID, userMessage, llms.TextParts(llms.ChatMessageTypeAI, reply))
	if s.metrics != nil {
		s.metrics.RecordChatTurn(string(role))
	}
	if s.monitor != nil {
		s.monitor.RecordChatTurn(string(role))
	}

	return reply, sessionID, nil
}

// executeToolCalls runs the model's tool calls through the registry and
// renders the assistant call message plus one tool response per call.
func (s *Service) executeToolCalls(ctx context.Context, role tools.Role, calls []llms.ToolCall) ([]llms.MessageContent, error) {
	assistant := llms.MessageContent{Role: llms.ChatMessageTypeAI}
	for _, call := range calls {
		assistant.Parts = append(assistant.Parts, call)
	}
	messages := []llms.MessageContent{assistant}

	for _, call := range calls {
		if call.FunctionCall == nil {
			continue
		}
		name := call.FunctionCall.Name

		var content string
		args := map[string]interface{}{}
		if err := json.Unmarshal([]byte(call.FunctionCall.Arguments), &args); err != nil {
			content = errorPayload(tools.KindInvalidParameter, name, "arguments are not valid JSON")
		} else {
			result, err := s.registry.Invoke(ctx, role, name, args)
			switch {
			case err == nil:
				data, merr := json.Marshal(result)
				if merr != nil {
					return nil, fmt.Errorf("failed to encode tool result: %w", merr)
				}
				content = string(data)
			case tools.IsKind(err, tools.KindTimeout) || tools.IsKind(err, tools.KindDataStore):
				// Infrastructure failures are not the model's to fix
				return nil, err
			default:
				content = registryErrorPayload(err)
			}
		}

		if s.monitor != nil {
			s.monitor.RecordInvocation(name)
		}

		messages = append(messages, llms.MessageContent{
			Role: llms.ChatMessageTypeTool,
			Parts: []llms.ContentPart{llms.ToolCallResponse{
				ToolCallID: call.ID,
				Name:       name,
				Content:    content,
			}},
		})
	}

	return messages, nil
}

// toolDefinitions renders registry descriptors in the function-calling
// shape the model expects.
func toolDefinitions(descriptors []tools.Descriptor) []llms.Tool {
	defs := make([]llms.Tool, 0, len(descriptors))
	for _, d := range descriptors {
		defs = append(defs, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  d.Parameters(),
			},
		})
	}
	return defs
}

func registryErrorPayload(err error) string {
	var regErr *tools.Error
	if errors.As(err, &regErr) {
		payload := map[string]interface{}{
			"error": map[string]interface{}{
				"kind":      string(regErr.Kind),
				"operation": regErr.Operation,
				"field":     regErr.Field,
				"message":   regErr.Message,
			},
		}
		data, _ := json.Marshal(payload)
		return string(data)
	}
	return errorPayload(tools.KindDataStore, "", err.Error())
}

func errorPayload(kind tools.Kind, operation, message string) string {
	payload := map[string]interface{}{
		"error": map[string]interface{}{
			"kind":      string(kind),
			"operation": operation,
			"message":   message,
		},
	}
	data, _ := json.Marshal(payload)
	return string(data)
}
