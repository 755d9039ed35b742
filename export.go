package dri3

import (
	"fmt"
	"math"

	"github.com/gogpu/dri3/format"
)

// exportInfo is the full result of an export; the two public entry
// points trim it to their respective wire shapes.
type exportInfo struct {
	fd       int
	stride   int
	offset   int
	size     uint64
	modifier format.Modifier
}

// FDFromSurface is the legacy single-fd export entry: one plane, 16-bit
// stride, 32-bit size, no modifier field on the wire. Strides beyond
// 65535 fail with ErrOverflow instead of truncating.
//
// The caller owns the returned fd.
func (scr *Screen) FDFromSurface(s Surface) (fd, stride int, size uint64, err error) {
	info, err := scr.exportSurface(s, math.MaxUint16)
	if err != nil {
		return -1, 0, 0, err
	}
	return info.fd, info.stride, info.size, nil
}

// FDsFromSurface is the multi-fd export entry: per-plane fds, strides
// and offsets plus the buffer's 64-bit layout modifier. Strides beyond
// the 32-bit field fail with ErrOverflow.
//
// The modifier is format.ModifierInvalid whenever the true layout cannot
// be determined; that is a reported unknown, not a failure.
func (scr *Screen) FDsFromSurface(s Surface) (fds []int, strides, offsets []int, modifier format.Modifier, err error) {
	info, err := scr.exportSurface(s, math.MaxUint32)
	if err != nil {
		return nil, nil, nil, format.ModifierInvalid, err
	}
	return []int{info.fd}, []int{info.stride}, []int{info.offset}, info.modifier, nil
}

// exportSurface walks the surface's backing and produces the fd plus the
// metadata a peer needs to reconstruct the layout. strideLimit is the
// wire field width of the calling entry point; exceeding it is a hard
// failure. No partial results: on any error the caller receives nothing
// to clean up.
func (scr *Screen) exportSurface(s Surface, strideLimit int64) (exportInfo, error) {
	if scr.accel != nil {
		return scr.exportAccelerated(s, strideLimit)
	}
	return scr.exportDirect(s, strideLimit)
}

func (scr *Screen) exportAccelerated(s Surface, strideLimit int64) (exportInfo, error) {
	fd, stride, size, err := scr.accel.FDFromSurface(s)
	if err != nil {
		return exportInfo{}, fmt.Errorf("dri3: accelerator export: %w", err)
	}

	// Pending drawing commands must reach the kernel before the peer
	// reads through the fd.
	scr.accel.Flush()

	if int64(stride) > strideLimit {
		_ = scr.kernel.Close(fd)
		return exportInfo{}, fmt.Errorf("%w: stride %d", ErrOverflow, stride)
	}

	info := exportInfo{
		fd:       fd,
		stride:   stride,
		size:     uint64(size),
		modifier: format.ModifierInvalid,
	}
	// Best-effort: the accelerator's export primitive does not expose
	// the underlying allocation, so the true modifier is only known
	// when the accelerator can report it itself.
	if mr, ok := scr.accel.(ModifierReporter); ok {
		if m, ok := mr.SurfaceModifier(s); ok {
			info.modifier = m
		}
	}
	return info, nil
}

func (scr *Screen) exportDirect(s Surface, strideLimit int64) (exportInfo, error) {
	bo := SurfaceBuffer(s)
	if bo == nil {
		return exportInfo{}, ErrNoBuffer
	}

	stride := s.Stride()
	if int64(stride) > strideLimit {
		return exportInfo{}, fmt.Errorf("%w: stride %d", ErrOverflow, stride)
	}

	var handle uint32
	modifier := format.ModifierInvalid
	switch b := bo.backing.(type) {
	case AllocatorBacking:
		handle = b.Buffer.Handle()
		if scr.alloc != nil {
			if m, ok := scr.alloc.Modifier(b.Buffer); ok {
				modifier = m
			}
		}
	case KernelBacking:
		// Legacy tiling metadata is not translated to a modifier;
		// report unknown rather than guess a tag.
		handle = b.Handle
	default:
		return exportInfo{}, ErrNoBuffer
	}

	size, err := scr.kernel.BufferSize(scr.fd, handle)
	if err != nil {
		return exportInfo{}, fmt.Errorf("dri3: buffer query: %w", err)
	}
	fd, err := scr.kernel.ExportBuffer(scr.fd, handle)
	if err != nil {
		return exportInfo{}, fmt.Errorf("dri3: buffer export: %w", err)
	}

	return exportInfo{fd: fd, stride: stride, size: size, modifier: modifier}, nil
}
