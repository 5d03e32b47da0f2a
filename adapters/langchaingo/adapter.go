package langchaingo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashgraph-online/agent-kit-go/pkg/toolinput"
	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/callbacks"
	"github.com/tmc/langchaingo/tools"
)

type Option func(*options)

type options struct {
	callbacks callbacks.Handler
	logger    zerolog.Logger
	lenient   bool
}

// WithCallbacks reports tool start, end and error to handler.
func WithCallbacks(handler callbacks.Handler) Option {
	return func(o *options) {
		o.callbacks = handler
	}
}

// WithLogger logs every call at debug level with a per-call ID.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLenientInput lets the tool accept relaxed JSON (unquoted keys, single
// quotes, trailing commas). hedera_deploy_token is always lenient.
func WithLenientInput() Option {
	return func(o *options) {
		o.lenient = true
	}
}

func buildOptions(opts []Option) options {
	built := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&built)
	}
	return built
}

// adapter is the shared tool template: parse, validate, decode, execute,
// render. A is the tool's argument struct.
type adapter[A any] struct {
	name        string
	description string
	action      string
	rules       toolinput.Rules
	// closed rejects argument keys no rule names.
	closed bool
	render Renderer
	// parseRaw, when set, replaces JSON parsing for tools that take plain text.
	parseRaw func(input string) (A, error)
	execute  func(ctx context.Context, args A) Result

	options options
}

var _ tools.Tool = (*adapter[struct{}])(nil)

func (a *adapter[A]) Name() string {
	return a.name
}

func (a *adapter[A]) Description() string {
	return a.description
}

func (a *adapter[A]) Call(ctx context.Context, input string) (string, error) {
	if a.options.callbacks != nil {
		a.options.callbacks.HandleToolStart(ctx, input)
	}

	callID := uuid.NewString()
	started := time.Now()
	a.options.logger.Debug().Str("tool", a.name).Str("call_id", callID).Msg("tool call started")

	result := a.run(ctx, input)
	output, err := a.render(a.action, result)

	event := a.options.logger.Debug().
		Str("tool", a.name).
		Str("call_id", callID).
		Bool("failed", result.Failed()).
		Dur("elapsed", time.Since(started))
	if result.Failed() {
		event = event.Err(result.Err).Str("code", result.Code)
	}
	event.Msg("tool call finished")

	if a.options.callbacks != nil {
		if err != nil {
			a.options.callbacks.HandleToolError(ctx, err)
		} else if result.Failed() {
			a.options.callbacks.HandleToolError(ctx, result.Err)
		} else {
			a.options.callbacks.HandleToolEnd(ctx, output)
		}
	}

	return output, err
}

func (a *adapter[A]) run(ctx context.Context, input string) Result {
	args, err := a.parse(input)
	if err != nil {
		return Failure(err)
	}
	return a.execute(ctx, args)
}

func (a *adapter[A]) parse(input string) (A, error) {
	var args A
	if a.parseRaw != nil {
		return a.parseRaw(normalizeRawInput(input))
	}

	parsed, err := toolinput.Parse(input, a.options.lenient)
	if err != nil {
		return args, err
	}
	if err := a.rules.Check(parsed); err != nil {
		return args, err
	}
	if a.closed {
		if err := a.rules.CheckUnknown(parsed); err != nil {
			return args, err
		}
	}
	if err := toolinput.Decode(parsed, &args); err != nil {
		return args, err
	}
	return args, nil
}
