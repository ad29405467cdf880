package args

import (
	"fmt"
	"log/slog"

	"argbind/dyn"
	"argbind/options"
)

// BindError reports the first descriptor that failed to bind.
type BindError struct {
	// Index of the failing descriptor in the list handed to the binder.
	Index int
	// Position is the cursor position when the failing transform started,
	// i.e. the zero-based index of the offending argument.
	Position int
	// Kind of the failing descriptor.
	Kind KindEnum
	// This is set when the failure concerns the receiver, not an argument.
	This bool
	Err  error
}

func (e *BindError) Error() string {
	if e.This {
		return fmt.Sprintf("this (%s): %v", e.Kind, e.Err)
	}

	return fmt.Sprintf("argument %d (%s): %v", e.Position, e.Kind, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

func (e *BindError) Reason() ReasonEnum {
	return ReasonOf(e.Err)
}

// Apply applies descs in order against c and stops at the first failure,
// which is returned as a *BindError. Descriptors after it are not evaluated.
func Apply(c *Cursor, descs ...Descriptor) error {
	return apply(slog.New(slog.DiscardHandler), c, false, descs)
}

func apply(logger *slog.Logger, c *Cursor, this bool, descs []Descriptor) error {
	for i, d := range descs {
		pos := c.Position()

		if err := d.Apply(c); err != nil {
			logger.Debug("argument binding failed",
				slog.Int("index", i),
				slog.Int("position", pos),
				slog.String("kind", d.Kind().String()),
				slog.Any("error", err))

			return &BindError{Index: i, Position: pos, Kind: d.Kind(), This: this, Err: err}
		}

		logger.Debug("argument bound",
			slog.Int("index", i),
			slog.Int("position", pos),
			slog.String("kind", d.Kind().String()),
			slog.Int("consumed", c.Position()-pos))
	}

	return nil
}

// Binder drives argument binding for native calls made by one engine.
type Binder struct {
	engine dyn.Engine
	logger *slog.Logger
}

type BinderOption func(*Binder)

func WithLogger(logger *slog.Logger) BinderOption {
	return func(b *Binder) {
		b.logger = logger
	}
}

func NewBinder(e dyn.Engine, opts ...BinderOption) *Binder {
	b := &Binder{
		engine: e,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

func (b *Binder) Engine() dyn.Engine {
	return b.engine
}

// Bind binds argv against descs, see Apply.
func (b *Binder) Bind(argv []dyn.Value, descs ...Descriptor) error {
	return apply(b.logger, NewCursor(b.engine, argv), false, descs)
}

// BindThis binds the receiver of a method call with thisDesc before binding
// argv against descs. A receiver failure is reported with This set.
func (b *Binder) BindThis(this dyn.Value, argv []dyn.Value, thisDesc Descriptor, descs ...Descriptor) error {
	if err := apply(b.logger, NewCursor(b.engine, []dyn.Value{this}), true, []Descriptor{thisDesc}); err != nil {
		return err
	}

	return b.Bind(argv, descs...)
}

// BindObject binds the named properties of obj, as if obj were the only
// argument of the call and described by ObjectProperties.
func (b *Binder) BindObject(obj dyn.Value, names []string, descs ...Descriptor) error {
	return b.Bind([]dyn.Value{obj}, ObjectProperties(names, descs, options.Required))
}
