package slogtint

import (
	"context"
	"fmt"
	"log/slog"
)

// WrapEmit returns an EmitFunc that styles the record's message according to p and then calls emit.
// The message is replaced in place by style + message + ResetSequence, so emitting the same record through
// two wrapped functions nests the styles. A nil record returns ErrInvalidArguments without calling emit.
func WrapEmit(emit EmitFunc, p Profile) EmitFunc {
	return WrapEmitWithReset(emit, p, ResetSequence)
}

// WrapEmitWithReset works like WrapEmit but appends reset instead of ResetSequence.
func WrapEmitWithReset(emit EmitFunc, p Profile, reset string) EmitFunc {
	return wrapEmit(emit, NewStyler(p, reset))
}

func wrapEmit(emit EmitFunc, s *Styler) EmitFunc {
	if emit == nil {
		panic("EmitFunc must not be nil")
	}
	return func(ctx context.Context, r *slog.Record) error {
		if r == nil {
			return fmt.Errorf("slogtint: no slog.Record passed to emit: %w", ErrInvalidArguments)
		}
		r.Message = s.Decorate(r.Level, r.Message)
		return emit(ctx, r)
	}
}
