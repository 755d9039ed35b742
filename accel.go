package dri3

import "github.com/gogpu/dri3/format"

// Accelerator is the 2D/3D acceleration library (glamor-class) behind
// the accelerated import/export paths. Implementations wrap buffers in
// surfaces of their own making; the engines only adapt the results.
type Accelerator interface {
	// Name returns the accelerator identifier (e.g. "glamor").
	Name() string

	// SurfaceFromFD imports a single plane and returns a surface backed
	// by it. The call carries no layout modifier, so the accelerator
	// treats the plane as linear row-major; a tiled single-plane buffer
	// must be described out of band or it will be misread. The
	// accelerator takes ownership of fd on success.
	SurfaceFromFD(fd, width, height, stride, depth, bpp int) (Surface, error)

	// FDFromSurface exports the surface's backing store as a dma-buf
	// fd, reporting the stride and total allocation size. The caller
	// owns the returned fd.
	FDFromSurface(s Surface) (fd, stride, size int, err error)

	// Flush submits any buffered drawing commands to the kernel. Called
	// after a successful export so the peer never observes stale pixel
	// content through the returned fd.
	Flush()
}

// ModifierReporter is an optional interface for accelerators that can
// report the memory layout of a surface's underlying allocation. The
// multi-fd export entry consults it; when absent or unknown the export
// reports format.ModifierInvalid rather than failing.
type ModifierReporter interface {
	SurfaceModifier(s Surface) (format.Modifier, bool)
}
