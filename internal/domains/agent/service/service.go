package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"tasker/config"
	llm "tasker/infras/openai"
	"tasker/infras/otel"
	"tasker/internal/domains/agent/tool"
	"tasker/shared/constant"
	"tasker/shared/failure"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// historyWindow bounds how many trailing history messages are replayed to
// the model on each turn.
const historyWindow = 20

const fallbackResponse = "I'm sorry, I couldn't process that request."

const systemPrompt = `You are a helpful AI assistant that helps users manage their todo list. You can:

1. **Create todos**: Add new tasks to the user's list
2. **List todos**: Show all tasks (can filter completed/incomplete)
3. **Complete todos**: Mark tasks as done
4. **Uncomplete todos**: Mark completed tasks as not done
5. **Delete todos**: Remove specific tasks
6. **Delete completed**: Clear all finished tasks
7. **Update todos**: Change/rename task titles
8. **Search todos**: Find tasks by keyword

When responding:
- Be friendly and concise
- Confirm actions you've taken
- If a todo operation fails or returns multiple matches, explain clearly
- Format todo lists nicely when showing them
- Use natural language, not technical jargon

If the user's request is not related to todo management, politely redirect them to todo-related tasks.

When showing todos, format them as a nice list like:
- [ ] Task name (for incomplete)
- [x] Task name (for completed)
`

// HistoryMessage is one prior turn replayed to the model. Tool-call metadata
// is never part of the replay, only role and text.
type HistoryMessage struct {
	Role    string
	Content string
}

// StreamChunk is one fragment of a streamed answer. A chunk carrying Err is
// terminal; the channel closes after it.
type StreamChunk struct {
	Content string
	Err     error
}

type Agent interface {
	Chat(ctx context.Context, userID, userMessage string, history []HistoryMessage) (string, []tool.CallRecord, error)
	ChatStream(ctx context.Context, userID, userMessage string, history []HistoryMessage) (<-chan StreamChunk, error)
}

type serviceImpl struct {
	llm      llm.Client
	executor tool.Executor
	cfg      *config.Config
	otel     otel.Otel
}

func New(llmClient llm.Client, executor tool.Executor, cfg *config.Config, otel otel.Otel) Agent {
	return &serviceImpl{
		llm:      llmClient,
		executor: executor,
		cfg:      cfg,
		otel:     otel,
	}
}

// Chat runs one full agent turn: model call, tool execution rounds, final
// text. Tool side effects are durable as soon as each tool returns, even if
// a later round fails.
func (s *serviceImpl) Chat(ctx context.Context, userID, userMessage string, history []HistoryMessage) (answer string, records []tool.CallRecord, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".agent.Chat")
	defer scope.End()
	defer scope.TraceIfError(err)

	messages := buildMessages(history, userMessage)

	_, final, records, err := s.runToolLoop(ctx, userID, messages)
	if err != nil {
		return "", records, err
	}

	if final.Content == "" {
		return fallbackResponse, records, nil
	}

	return final.Content, records, nil
}

// ChatStream runs the identical tool loop buffered (tool calls cannot be
// decided incrementally), then streams only the final answer. If the loop's
// last reply already carries text it is emitted as a single chunk.
func (s *serviceImpl) ChatStream(ctx context.Context, userID, userMessage string, history []HistoryMessage) (<-chan StreamChunk, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".agent.ChatStream")
	defer scope.End()

	messages := buildMessages(history, userMessage)

	messages, final, _, err := s.runToolLoop(ctx, userID, messages)
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	out := make(chan StreamChunk)

	if final.Content != "" {
		go func() {
			defer close(out)

			select {
			case out <- StreamChunk{Content: final.Content}:
			case <-ctx.Done():
			}
		}()

		return out, nil
	}

	stream, err := s.llm.CreateCompletionStream(ctx, messages)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open completion stream")

		return nil, failure.Upstream("model streaming call failed") // nolint:wrapcheck
	}

	go func() {
		defer close(out)
		defer stream.Close()

		for {
			resp, recvErr := stream.Recv()
			if errors.Is(recvErr, io.EOF) {
				return
			}

			if recvErr != nil {
				log.Error().Err(recvErr).Msg("completion stream receive failed")

				select {
				case out <- StreamChunk{Err: failure.Upstream("model streaming call failed")}:
				case <-ctx.Done():
				}

				return
			}

			if len(resp.Choices) == 0 || resp.Choices[0].Delta.Content == "" {
				continue
			}

			select {
			case out <- StreamChunk{Content: resp.Choices[0].Delta.Content}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// runToolLoop drives the model/tool round-trips until the model stops
// requesting tools or the round cap is hit. Tool calls within one round run
// sequentially, in the order the model listed them, so each observes the
// database state left by the previous one.
func (s *serviceImpl) runToolLoop(ctx context.Context, userID string, messages []openai.ChatCompletionMessage) ([]openai.ChatCompletionMessage, openai.ChatCompletionMessage, []tool.CallRecord, error) {
	defs := tool.Definitions()
	records := []tool.CallRecord{}

	final, err := s.llm.CreateCompletion(ctx, messages, defs)
	if err != nil {
		log.Error().Err(err).Msg("model call failed")

		return messages, final, records, failure.Upstream("model call failed") // nolint:wrapcheck
	}

	rounds := 0

	for len(final.ToolCalls) > 0 {
		rounds++
		if rounds > s.cfg.OpenAI.MaxToolRounds {
			log.Error().Int("rounds", rounds).Msg("tool call loop exceeded the configured round cap")

			return messages, final, records, failure.Upstream(fmt.Sprintf("tool call loop exceeded %d rounds", s.cfg.OpenAI.MaxToolRounds)) // nolint:wrapcheck
		}

		messages = append(messages, final)

		for _, call := range final.ToolCalls {
			var args map[string]any
			if unmarshalErr := json.Unmarshal([]byte(call.Function.Arguments), &args); unmarshalErr != nil {
				log.Error().Err(unmarshalErr).Str("tool", call.Function.Name).Msg("model produced malformed tool call arguments")

				return messages, final, records, fmt.Errorf("malformed arguments for tool %s: %w", call.Function.Name, unmarshalErr)
			}

			env := s.executor.Execute(ctx, call.Function.Name, args, userID)

			records = append(records, tool.CallRecord{
				Tool:      call.Function.Name,
				Arguments: args,
				Result:    env,
			})

			payload, marshalErr := json.Marshal(env)
			if marshalErr != nil {
				return messages, final, records, fmt.Errorf("marshaling tool result for %s: %w", call.Function.Name, marshalErr)
			}

			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    string(payload),
				ToolCallID: call.ID,
			})
		}

		final, err = s.llm.CreateCompletion(ctx, messages, defs)
		if err != nil {
			log.Error().Err(err).Msg("model call failed")

			return messages, final, records, failure.Upstream("model call failed") // nolint:wrapcheck
		}
	}

	return messages, final, records, nil
}

func buildMessages(history []HistoryMessage, userMessage string) []openai.ChatCompletionMessage {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})

	for _, msg := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})
}
