package extract

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/seojunpark/homeroom/internal/model"
)

const systemPrompt = "You turn short notes into structured schedule entries. Reply with the requested JSON object only."

// OpenAI asks a language model to resolve the schedule fields. Without an
// API key it degrades to the canned responder so the app stays usable.
type OpenAI struct {
	client   *openai.Client
	model    openai.ChatModel
	loc      *time.Location
	fallback *Mock
}

// NewOpenAI returns a model-backed extractor when apiKey is provided,
// otherwise one that answers from the canned set.
func NewOpenAI(apiKey string, loc *time.Location) *OpenAI {
	o := &OpenAI{
		loc:      loc,
		fallback: NewMock(),
	}
	if apiKey == "" {
		return o
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	o.client = &client
	o.model = openai.ChatModelGPT4oMini
	return o
}

func (o *OpenAI) Extract(ctx context.Context, text string) (model.Schedule, error) {
	input := strings.TrimSpace(text)
	if input == "" {
		return model.Schedule{}, ErrEmptyInput
	}
	if o.client == nil {
		// fallback: answer from the canned set when the API key is missing.
		return o.fallback.Extract(ctx, input)
	}

	req := openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(systemPrompt),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(BuildPrompt(input, time.Now(), o.loc)),
					},
				},
			},
		},
		Temperature:         openai.Float(0.0),
		MaxCompletionTokens: openai.Int(200),
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	resp, err := o.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return model.Schedule{}, err
	}
	if len(resp.Choices) == 0 {
		return model.Schedule{}, fmt.Errorf("no completion received")
	}

	parsed, err := parseResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return model.Schedule{}, err
	}
	return parsed.schedule(input), nil
}
