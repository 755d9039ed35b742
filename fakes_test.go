package dri3

import (
	"errors"
	"fmt"

	"github.com/gogpu/dri3/format"
)

// fakeSurface implements Surface with recording hooks.
type fakeSurface struct {
	width, height int
	depth, bpp    int
	stride        int

	shared    bool
	priv      any
	destroyed bool

	backingFD int

	headerFail  bool
	backingFail bool

	// attachOnBacking emulates the driver pixmap layer importing the fd
	// into a buffer object when the backing is attached.
	attachOnBacking uint32
}

func (s *fakeSurface) Width() int  { return s.width }
func (s *fakeSurface) Height() int { return s.height }
func (s *fakeSurface) Depth() int  { return s.depth }
func (s *fakeSurface) BPP() int    { return s.bpp }
func (s *fakeSurface) Stride() int { return s.stride }

func (s *fakeSurface) ModifyHeader(width, height, depth, bpp, stride int) bool {
	if s.headerFail {
		return false
	}
	if width != 0 {
		s.width = width
	}
	if height != 0 {
		s.height = height
	}
	if depth != 0 {
		s.depth = depth
	}
	if bpp != 0 {
		s.bpp = bpp
	}
	s.stride = stride
	return true
}

func (s *fakeSurface) SetSharedBacking(fd int) bool {
	if s.backingFail {
		return false
	}
	s.backingFD = fd
	if s.attachOnBacking != 0 {
		AttachBuffer(s, NewKernelBuffer(s.attachOnBacking))
	}
	return true
}

func (s *fakeSurface) MarkShared()      { s.shared = true }
func (s *fakeSurface) Private() any     { return s.priv }
func (s *fakeSurface) SetPrivate(p any) { s.priv = p }

// fakeHost records surface creation and destruction.
type fakeHost struct {
	fail            bool
	headerFail      bool
	backingFail     bool
	attachOnBacking uint32

	created   []*fakeSurface
	destroyed int
}

func (h *fakeHost) NewSurface(width, height, depth int) (Surface, error) {
	if h.fail {
		return nil, errors.New("surface allocation refused")
	}
	s := &fakeSurface{
		width: width, height: height, depth: depth,
		headerFail:      h.headerFail,
		backingFail:     h.backingFail,
		attachOnBacking: h.attachOnBacking,
	}
	h.created = append(h.created, s)
	return s, nil
}

func (h *fakeHost) DestroySurface(s Surface) {
	s.(*fakeSurface).destroyed = true
	h.destroyed++
}

// fakeAccel implements Accelerator without ModifierReporter.
type fakeAccel struct {
	importErr   error
	importCalls int

	exportFD     int
	exportStride int
	exportSize   int
	exportErr    error
	exportCalls  int

	flushes int
}

func (a *fakeAccel) Name() string { return "fake" }

func (a *fakeAccel) SurfaceFromFD(fd, width, height, stride, depth, bpp int) (Surface, error) {
	a.importCalls++
	if a.importErr != nil {
		return nil, a.importErr
	}
	return &fakeSurface{width: width, height: height, depth: depth, bpp: bpp, stride: stride, backingFD: fd}, nil
}

func (a *fakeAccel) FDFromSurface(s Surface) (int, int, int, error) {
	a.exportCalls++
	if a.exportErr != nil {
		return -1, 0, 0, a.exportErr
	}
	return a.exportFD, a.exportStride, a.exportSize, nil
}

func (a *fakeAccel) Flush() { a.flushes++ }

// reportingAccel additionally implements ModifierReporter.
type reportingAccel struct {
	fakeAccel
	modifier format.Modifier
	known    bool
}

func (a *reportingAccel) SurfaceModifier(Surface) (format.Modifier, bool) {
	return a.modifier, a.known
}

// fakeBuffer implements AllocatedBuffer.
type fakeBuffer struct {
	handle uint32
	size   uint64
}

func (b *fakeBuffer) Handle() uint32 { return b.handle }
func (b *fakeBuffer) Size() uint64   { return b.size }

// fakeAlloc implements Allocator.
type fakeAlloc struct {
	importErr    error
	importCalls  int
	lastModifier format.Modifier
	lastFormat   format.Format
	lastFDs      []int

	modifier format.Modifier
	known    bool

	handle    uint32
	size      uint64
	destroyed int
}

func (a *fakeAlloc) ImportFDs(fds []int, width, height int, f format.Format, strides, offsets []int, modifier format.Modifier) (AllocatedBuffer, error) {
	a.importCalls++
	a.lastModifier = modifier
	a.lastFormat = f
	a.lastFDs = append([]int(nil), fds...)
	if a.importErr != nil {
		return nil, a.importErr
	}
	return &fakeBuffer{handle: a.handle, size: a.size}, nil
}

func (a *fakeAlloc) Modifier(AllocatedBuffer) (format.Modifier, bool) {
	return a.modifier, a.known
}

func (a *fakeAlloc) Destroy(AllocatedBuffer) { a.destroyed++ }

// fakeKernel implements Kernel in memory.
type fakeKernel struct {
	fds     map[string]int
	openErr map[string]error

	magic    uint32
	magicErr error

	authErr    error
	authFD     int
	authMagics []uint32

	size    uint64
	sizeErr error

	exportFD      int
	exportErr     error
	exportHandles []uint32

	closed        []int
	closedBuffers []uint32
}

func (k *fakeKernel) Open(path string) (int, error) {
	if err := k.openErr[path]; err != nil {
		return -1, err
	}
	fd, ok := k.fds[path]
	if !ok {
		return -1, fmt.Errorf("no such node %s", path)
	}
	return fd, nil
}

func (k *fakeKernel) Close(fd int) error {
	k.closed = append(k.closed, fd)
	return nil
}

func (k *fakeKernel) GetMagic(fd int) (uint32, error) {
	if k.magicErr != nil {
		return 0, k.magicErr
	}
	return k.magic, nil
}

func (k *fakeKernel) AuthMagic(fd int, magic uint32) error {
	if k.authErr != nil {
		return k.authErr
	}
	k.authFD = fd
	k.authMagics = append(k.authMagics, magic)
	return nil
}

func (k *fakeKernel) BufferSize(fd int, handle uint32) (uint64, error) {
	if k.sizeErr != nil {
		return 0, k.sizeErr
	}
	return k.size, nil
}

func (k *fakeKernel) ExportBuffer(fd int, handle uint32) (int, error) {
	if k.exportErr != nil {
		return -1, k.exportErr
	}
	k.exportHandles = append(k.exportHandles, handle)
	return k.exportFD, nil
}

func (k *fakeKernel) CloseBuffer(fd int, handle uint32) error {
	k.closedBuffers = append(k.closedBuffers, handle)
	return nil
}

func closedContains(fds []int, fd int) bool {
	for _, c := range fds {
		if c == fd {
			return true
		}
	}
	return false
}
