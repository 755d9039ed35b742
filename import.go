package dri3

import (
	"fmt"

	"github.com/gogpu/dri3/format"
)

// maxPlanes is the fixed wire-protocol limit on planes per buffer.
const maxPlanes = 4

// SurfaceFromFD imports a single linear plane described by depth and bpp
// alone. It is the legacy single-fd entry; the descriptor carries no
// modifier field, so the layout is strictly linear row-major.
func (scr *Screen) SurfaceFromFD(fd, width, height, stride, depth, bpp int) (Surface, error) {
	return scr.SurfaceFromFDs([]int{fd}, width, height,
		[]int{stride}, []int{0}, depth, bpp, format.ModifierInvalid)
}

// SurfaceFromFDs imports a buffer crossing the process boundary as one
// fd per plane with per-plane stride and offset, and wraps it in a host
// surface.
//
// On success ownership of the fds transfers to the importer; on failure
// the caller retains them and must close them itself. Failure never
// leaves a partially built surface behind.
func (scr *Screen) SurfaceFromFDs(fds []int, width, height int, strides, offsets []int, depth, bpp int, modifier format.Modifier) (Surface, error) {
	if len(fds) == 0 || len(fds) > maxPlanes {
		return nil, fmt.Errorf("%w: %d planes", ErrUnsupportedFormat, len(fds))
	}
	if len(strides) < len(fds) || len(offsets) < len(fds) {
		return nil, fmt.Errorf("%w: missing per-plane metadata", ErrUnsupportedFormat)
	}

	// Once the accelerated path is entered, any failure is a rejection.
	// The direct path is not an interchangeable fallback: it only
	// understands single linear planes, and a buffer the accelerator
	// refused must not be silently reinterpreted.
	if scr.accel != nil {
		if len(fds) > 1 {
			// Multiple planes are only meaningful under a layout
			// modifier. Importing just the first plane would leak the
			// rest and misread the buffer.
			if modifier == format.ModifierInvalid {
				return nil, fmt.Errorf("%w: %d planes without a layout modifier", ErrUnsupportedFormat, len(fds))
			}
			return scr.importTiled(fds, width, height, strides, offsets, depth, bpp, modifier)
		}
		return scr.importAccelerated(fds[0], width, height, strides[0], depth, bpp)
	}

	return scr.importDirect(fds, width, height, strides[0], depth, bpp)
}

// importTiled imports all planes together under a layout modifier
// through the tiled allocator and backs a fresh host surface with the
// result.
//
// The modifier catalog is advisory only: a tag the catalog does not list
// for this format is still attempted, since the allocator is the
// authority on acceptance.
func (scr *Screen) importTiled(fds []int, width, height int, strides, offsets []int, depth, bpp int, modifier format.Modifier) (Surface, error) {
	f, ok := format.FromDepth(depth)
	if !ok {
		return nil, fmt.Errorf("%w: depth %d", ErrUnsupportedFormat, depth)
	}
	if scr.alloc == nil {
		return nil, fmt.Errorf("%w: no tiled allocator", ErrImportRejected)
	}

	buf, err := scr.alloc.ImportFDs(fds, width, height, f, strides[:len(fds)], offsets[:len(fds)], modifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportRejected, err)
	}

	s, err := scr.host.NewSurface(width, height, depth)
	if err != nil {
		scr.alloc.Destroy(buf)
		return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	if !s.ModifyHeader(width, height, 0, bpp, strides[0]) {
		scr.host.DestroySurface(s)
		scr.alloc.Destroy(buf)
		return nil, fmt.Errorf("%w: header rewrite refused", ErrImportRejected)
	}

	AttachBuffer(s, NewAllocatorBuffer(buf))
	markImported(s)
	scr.log.Debug("tiled import", "planes", len(fds), "modifier", uint64(modifier))
	return s, nil
}

// importAccelerated imports a single plane through the accelerator.
// The accelerator's import takes no modifier, so any tag on the
// descriptor is dropped and the plane is read as linear; no
// tiled-allocator call is made.
func (scr *Screen) importAccelerated(fd, width, height, stride, depth, bpp int) (Surface, error) {
	s, err := scr.accel.SurfaceFromFD(fd, width, height, stride, depth, bpp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportRejected, err)
	}
	markImported(s)
	return s, nil
}

// importDirect attaches a single linear plane as a surface's backing
// store without involving the accelerator. Supports exactly one plane
// with depth >= 8 and bpp in {8, 16, 32}.
func (scr *Screen) importDirect(fds []int, width, height, stride, depth, bpp int) (Surface, error) {
	if len(fds) != 1 {
		return nil, fmt.Errorf("%w: direct import supports a single plane, got %d", ErrUnsupportedFormat, len(fds))
	}
	if depth < 8 {
		return nil, fmt.Errorf("%w: depth %d", ErrUnsupportedFormat, depth)
	}
	switch bpp {
	case 8, 16, 32:
	default:
		return nil, fmt.Errorf("%w: bpp %d", ErrUnsupportedFormat, bpp)
	}

	s, err := scr.host.NewSurface(0, 0, depth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	if !s.ModifyHeader(width, height, 0, bpp, stride) {
		scr.host.DestroySurface(s)
		return nil, fmt.Errorf("%w: header rewrite refused", ErrImportRejected)
	}
	if !s.SetSharedBacking(fds[0]) {
		scr.host.DestroySurface(s)
		return nil, fmt.Errorf("%w: shared backing refused", ErrImportRejected)
	}

	markImported(s)
	return s, nil
}
