package dri3

import (
	"errors"
	"log/slog"

	"github.com/gogpu/dri3/format"
)

// Host is the display server's drawable object model. The engines create
// and destroy surfaces exclusively through it; surfaces remain owned by
// the host for their whole lifetime.
type Host interface {
	// NewSurface allocates a drawable of the given geometry. Width and
	// height may be zero for a bare surface whose header is stamped
	// afterwards via Surface.ModifyHeader.
	NewSurface(width, height, depth int) (Surface, error)

	// DestroySurface releases a surface created by NewSurface, along
	// with any private record attached to it.
	DestroySurface(Surface)
}

// Screen is the per-screen context for all buffer-sharing operations.
//
// It replaces the driver-entity globals of a classic DDX driver (render
// node path, device fd) with an explicit value threaded through every
// call, so the engines can run against fakes without a live device.
//
// A Screen is not safe for concurrent use; the host serializes requests
// upstream.
type Screen struct {
	host Host

	// fd is the server's own open, authorized device fd. It is used to
	// authorize client magic numbers and to issue buffer ioctls; the
	// Screen does not own it and never closes it.
	fd int

	nodePath   string // primary (card) device node
	renderNode string // render node, empty when none is known

	accel  Accelerator
	alloc  Allocator
	family format.Family
	kernel Kernel
	log    *slog.Logger
}

// Option configures a Screen during creation.
type Option func(*Screen)

// WithAccelerator enables the accelerated import/export paths through a.
// Without an accelerator only the direct kernel-buffer paths are taken.
func WithAccelerator(a Accelerator) Option {
	return func(scr *Screen) { scr.accel = a }
}

// WithAllocator provides the tiled-memory allocator used for multi-plane
// imports and for modifier recovery on allocator-backed buffers.
func WithAllocator(a Allocator) Option {
	return func(scr *Screen) { scr.alloc = a }
}

// WithRenderNode sets the render node path tried first by Open.
func WithRenderNode(path string) Option {
	return func(scr *Screen) { scr.renderNode = path }
}

// WithFamily sets the hardware family consulted by the modifier catalog.
func WithFamily(f format.Family) Option {
	return func(scr *Screen) { scr.family = f }
}

// WithKernel replaces the kernel ioctl implementation. Used by tests to
// run the engines without a device.
func WithKernel(k Kernel) Option {
	return func(scr *Screen) { scr.kernel = k }
}

// WithLogger gives the Screen its own logger instead of the package one.
func WithLogger(l *slog.Logger) Option {
	return func(scr *Screen) {
		if l == nil {
			l = newNopLogger()
		}
		scr.log = l
	}
}

// NewScreen creates the buffer-sharing context for one screen.
//
// deviceFD is the server's already-open, already-authorized device fd and
// nodePath the primary device node it was opened from. The fd stays
// owned by the caller.
func NewScreen(host Host, deviceFD int, nodePath string, opts ...Option) (*Screen, error) {
	if host == nil {
		return nil, errors.New("dri3: host must not be nil")
	}
	scr := &Screen{
		host:     host,
		fd:       deviceFD,
		nodePath: nodePath,
		kernel:   drmKernel{},
		log:      Logger(),
	}
	for _, o := range opts {
		o(scr)
	}
	return scr, nil
}

// Accelerated reports whether the accelerated paths are active.
func (scr *Screen) Accelerated() bool { return scr.accel != nil }

// Formats returns the pixel formats this driver advertises. The list is
// hardware-generation independent; see format.Formats.
func (scr *Screen) Formats() []format.Format { return format.Formats() }

// Modifiers returns the layout modifiers supported for f on this
// screen's hardware family. The caller owns the returned slice.
func (scr *Screen) Modifiers(f format.Format) []format.Modifier {
	return format.ModifiersFor(f, scr.family)
}

// DrawableModifiers returns the modifiers usable for a specific drawable.
// Scanout placement is the host's concern, so an accelerated screen
// advertises its full per-family list; without acceleration imported
// buffers are always linear and no modifiers are advertised.
func (scr *Screen) DrawableModifiers(s Surface, f format.Format) []format.Modifier {
	if scr.accel == nil {
		return nil
	}
	return format.ModifiersFor(f, scr.family)
}
