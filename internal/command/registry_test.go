package command_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/shellbridge/internal/command"
)

type echoArgs struct {
	Value string `json:"value"`
}

func echoHandler() command.Handler {
	return command.Typed(func(_ context.Context, args echoArgs) (string, error) {
		return args.Value, nil
	})
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("registers a new command", func(t *testing.T) {
		t.Parallel()

		reg := command.NewRegistry(zerolog.Nop())
		require.NoError(t, reg.Register("echo", echoHandler()))
		assert.Equal(t, []command.Name{"echo"}, reg.Names())
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		t.Parallel()

		reg := command.NewRegistry(zerolog.Nop())
		require.NoError(t, reg.Register("echo", echoHandler()))

		err := reg.Register("echo", echoHandler())
		require.ErrorIs(t, err, command.ErrDuplicateCommand)
		assert.Contains(t, err.Error(), "echo")
	})

	t.Run("nil handler is rejected", func(t *testing.T) {
		t.Parallel()

		reg := command.NewRegistry(zerolog.Nop())
		require.ErrorIs(t, reg.Register("echo", nil), command.ErrNilHandler)
		assert.Empty(t, reg.Names())
	})

	t.Run("sealed registry rejects registration", func(t *testing.T) {
		t.Parallel()

		reg := command.NewRegistry(zerolog.Nop())
		reg.Seal()
		assert.True(t, reg.Sealed())
		require.ErrorIs(t, reg.Register("echo", echoHandler()), command.ErrSealed)
	})
}

func TestRegistry_MustRegister(t *testing.T) {
	t.Parallel()

	reg := command.NewRegistry(zerolog.Nop())
	reg.MustRegister("echo", echoHandler())

	assert.Panics(t, func() {
		reg.MustRegister("echo", echoHandler())
	})
}

func TestRegistry_Names_Sorted(t *testing.T) {
	t.Parallel()

	reg := command.NewRegistry(zerolog.Nop())
	reg.MustRegister("zeta", echoHandler())
	reg.MustRegister("alpha", echoHandler())
	reg.MustRegister("mid", echoHandler())

	assert.Equal(t, []command.Name{"alpha", "mid", "zeta"}, reg.Names())
}

func TestRegistry_Dispatch(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	reg := command.NewRegistry(zerolog.Nop())
	reg.MustRegister("echo", echoHandler())
	reg.MustRegister("fail", func(_ context.Context, _ json.RawMessage) (any, error) {
		return nil, errBoom
	})
	reg.MustRegister("panic", func(_ context.Context, _ json.RawMessage) (any, error) {
		panic("handler exploded")
	})
	reg.Seal()

	tests := []struct {
		name      string
		command   string
		args      string
		want      any
		wantErrIs error
	}{
		{
			name:    "decodes argument object",
			command: "echo",
			args:    `{"value":"hi"}`,
			want:    "hi",
		},
		{
			name:    "nil arguments leave zero value",
			command: "echo",
			args:    "",
			want:    "",
		},
		{
			name:    "null arguments leave zero value",
			command: "echo",
			args:    "null",
			want:    "",
		},
		{
			name:      "unknown command",
			command:   "missing",
			args:      `{}`,
			wantErrIs: command.ErrUnknownCommand,
		},
		{
			name:      "malformed arguments",
			command:   "echo",
			args:      `{"value":`,
			wantErrIs: command.ErrInvalidArguments,
		},
		{
			name:      "wrong argument type",
			command:   "echo",
			args:      `{"value":42}`,
			wantErrIs: command.ErrInvalidArguments,
		},
		{
			name:      "handler error is wrapped",
			command:   "fail",
			wantErrIs: errBoom,
		},
		{
			name:      "handler panic is recovered",
			command:   "panic",
			wantErrIs: command.ErrHandlerPanic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := reg.Dispatch(t.Context(), tt.command, json.RawMessage(tt.args))
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)

				var dispatchErr *command.DispatchError
				require.ErrorAs(t, err, &dispatchErr)
				assert.Equal(t, tt.command, dispatchErr.Command)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_Dispatch_Concurrent(t *testing.T) {
	t.Parallel()

	reg := command.NewRegistry(zerolog.Nop())
	reg.MustRegister("echo", echoHandler())
	reg.Seal()

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			got, err := reg.Dispatch(context.Background(), "echo", json.RawMessage(`{"value":"x"}`))
			assert.NoError(t, err)
			assert.Equal(t, "x", got)
		}()
	}
	wg.Wait()
}

func TestDispatchError_Error(t *testing.T) {
	t.Parallel()

	err := &command.DispatchError{Command: "greet", Err: command.ErrUnknownCommand}
	assert.Equal(t, `command "greet": unknown command`, err.Error())
	assert.ErrorIs(t, err, command.ErrUnknownCommand)
}
