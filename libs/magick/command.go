package magick

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"unsafe"
)

// Native is the part of the native surface a Command drives. *Registry
// implements it.
type Native interface {
	// CommandEntry returns the address of u's entry point, or an error
	// wrapping ErrUnavailable when u or the command runner is missing.
	CommandEntry(u Utility) (uintptr, error)
	NewImageInfo() uintptr
	DestroyImageInfoHandle(info uintptr)
	NewExceptionInfo() uintptr
	DestroyExceptionInfoHandle(exception uintptr)
	// CommandGenesis calls MagickCommandGenesis with no metadata output.
	CommandGenesis(info, entry uintptr, argc int32, argv unsafe.Pointer, exception uintptr) int32
	// ReportException drains exception to ImageMagick's diagnostic stream.
	ReportException(exception uintptr)
	FlushStreams()
}

// Command runs ImageMagick utilities in-process, the way the bundled
// executables would, from an argv-style token list.
//
// Each Run allocates and destroys its own ImageInfo and ExceptionInfo, so
// separate Commands may run concurrently as far as the binding is
// concerned. A Command holding a template is not safe for concurrent Bind.
type Command struct {
	native   Native
	template string
}

// NewCommand returns a Command backed by native.
func NewCommand(native Native) *Command {
	return &Command{native: native}
}

// Bind stores a command template such as
// "convert {source} -resize 64x64 {output}" for Invoke.
func (c *Command) Bind(template string) *Command {
	c.template = strings.TrimSpace(template)
	return c
}

// Template returns the bound template.
func (c *Command) Template() string {
	return c.template
}

// Tokens expands the bound template with values and splits the result on
// white space. Values that contain white space are split too.
func (c *Command) Tokens(values map[string]string) ([]string, error) {
	if c.template == "" {
		return nil, fmt.Errorf("%w: no command template bound", ErrInvalidArguments)
	}
	cmd, err := expand(c.template, values)
	if err != nil {
		return nil, err
	}
	return strings.Fields(cmd), nil
}

// Invoke expands the bound template with values and runs the result.
func (c *Command) Invoke(ctx context.Context, values map[string]string) (bool, error) {
	args, err := c.Tokens(values)
	if err != nil {
		return false, err
	}
	return c.Run(ctx, args)
}

// Run executes one utility synchronously. args[0] names the utility and the
// whole slice is passed to it verbatim as argv.
//
// The returned bool is the native success flag. Warnings and errors raised
// by the utility are written by ImageMagick to its own diagnostic stream and
// are not returned; the error result only covers input validation and
// missing capabilities, which are checked before anything native is
// allocated. A running command cannot be cancelled; ctx is only checked
// before it starts, and a nil ctx is treated as context.Background().
func (c *Command) Run(ctx context.Context, args []string) (bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(args) == 0 {
		return false, fmt.Errorf("%w: expecting a sequence of ImageMagick instructions", ErrInvalidArguments)
	}
	u, err := ParseUtility(args[0])
	if err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	entry, err := c.native.CommandEntry(u)
	if err != nil {
		return false, err
	}

	var info, exception uintptr
	defer func() {
		if info != 0 {
			c.native.DestroyImageInfoHandle(info)
		}
		if exception != 0 {
			c.native.DestroyExceptionInfoHandle(exception)
		}
	}()

	info = c.native.NewImageInfo()
	argv := marshalArgv(args)
	exception = c.native.NewExceptionInfo()

	Debug("running ImageMagick command", "utility", u.String(), "argc", len(args))
	ok := c.native.CommandGenesis(info, entry, int32(len(args)), unsafe.Pointer(&argv[0]), exception)
	runtime.KeepAlive(argv)

	c.native.ReportException(exception)
	c.native.FlushStreams()
	Debug("ImageMagick command finished", "utility", u.String(), "ok", ok != 0)
	return ok != 0, nil
}

// marshalArgv builds a NULL-terminated char* array of NUL-terminated copies
// of args. The result must stay reachable for the duration of the call.
func marshalArgv(args []string) []*byte {
	argv := make([]*byte, len(args)+1)
	for i, a := range args {
		buf := make([]byte, len(a)+1)
		copy(buf, a)
		argv[i] = &buf[0]
	}
	return argv
}
