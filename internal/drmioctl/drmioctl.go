// Package drmioctl issues the DRM ioctls the buffer-sharing core needs:
// magic authentication, dma-buf export, buffer queries and GEM handle
// release. Argument structs mirror the kernel UAPI headers
// (include/uapi/drm/drm.h, amdgpu_drm.h); the UAPI is stable ABI.
package drmioctl

import (
	"unsafe"

	"github.com/NeowayLabs/drm"
	"github.com/NeowayLabs/drm/ioctl"
	"golang.org/x/sys/unix"
)

type (
	// struct drm_auth
	sysAuth struct {
		magic uint32
	}

	// struct drm_prime_handle
	sysPrimeHandle struct {
		handle uint32
		flags  uint32
		fd     int32
	}

	// struct drm_gem_close
	sysGemClose struct {
		handle uint32
		pad    uint32
	}

	// struct drm_amdgpu_gem_op
	sysGemOp struct {
		handle uint32
		op     uint32
		value  uint64
	}

	// struct drm_amdgpu_gem_create_in, filled by the create-info query.
	sysGemCreateInfo struct {
		boSize      uint64
		alignment   uint64
		domains     uint64
		domainFlags uint64
	}
)

const (
	// Driver-private command numbering.
	drmCommandBase = 0x40
	amdgpuGemOp    = 0x10

	// AMDGPU_GEM_OP_GET_GEM_CREATE_INFO
	gemOpGetCreateInfo = 0
)

var (
	// DRM_IOR(0x02, struct drm_auth)
	ioctlGetMagic = ioctl.NewCode(ioctl.Read,
		uint16(unsafe.Sizeof(sysAuth{})), drm.IOCTLBase, 0x02)

	// DRM_IOW(0x11, struct drm_auth)
	ioctlAuthMagic = ioctl.NewCode(ioctl.Write,
		uint16(unsafe.Sizeof(sysAuth{})), drm.IOCTLBase, 0x11)

	// DRM_IOWR(0x2d, struct drm_prime_handle)
	ioctlPrimeHandleToFD = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysPrimeHandle{})), drm.IOCTLBase, 0x2d)

	// DRM_IOW(0x09, struct drm_gem_close)
	ioctlGemClose = ioctl.NewCode(ioctl.Write,
		uint16(unsafe.Sizeof(sysGemClose{})), drm.IOCTLBase, 0x09)

	// DRM_IOWR(DRM_COMMAND_BASE + DRM_AMDGPU_GEM_OP, struct drm_amdgpu_gem_op)
	ioctlGemOp = ioctl.NewCode(ioctl.Read|ioctl.Write,
		uint16(unsafe.Sizeof(sysGemOp{})), drm.IOCTLBase, drmCommandBase+amdgpuGemOp)
)

// OpenNode opens a device node read-write with close-on-exec.
func OpenNode(path string) (int, error) {
	return unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
}

// CloseNode closes an fd returned by OpenNode or PrimeHandleToFD.
func CloseNode(fd int) error {
	return unix.Close(fd)
}

// GetMagic requests an authentication magic number for fd. Render nodes
// refuse the request with EACCES.
func GetMagic(fd int) (uint32, error) {
	var a sysAuth
	err := ioctl.Do(uintptr(fd), uintptr(ioctlGetMagic), uintptr(unsafe.Pointer(&a)))
	if err != nil {
		return 0, err
	}
	return a.magic, nil
}

// AuthMagic authorizes a client magic number through the server's
// already-authorized fd.
func AuthMagic(fd int, magic uint32) error {
	a := sysAuth{magic: magic}
	return ioctl.Do(uintptr(fd), uintptr(ioctlAuthMagic), uintptr(unsafe.Pointer(&a)))
}

// PrimeHandleToFD exports the buffer behind a GEM handle as a dma-buf
// fd. The fd is opened read-write with close-on-exec; the caller owns
// it.
func PrimeHandleToFD(fd int, handle uint32) (int, error) {
	req := sysPrimeHandle{
		handle: handle,
		flags:  uint32(unix.O_RDWR | unix.O_CLOEXEC),
		fd:     -1,
	}
	err := ioctl.Do(uintptr(fd), uintptr(ioctlPrimeHandleToFD), uintptr(unsafe.Pointer(&req)))
	if err != nil {
		return -1, err
	}
	return int(req.fd), nil
}

// BufferSize queries the allocation size of the buffer behind a GEM
// handle via the driver's create-info query.
func BufferSize(fd int, handle uint32) (uint64, error) {
	var info sysGemCreateInfo
	req := sysGemOp{
		handle: handle,
		op:     gemOpGetCreateInfo,
		value:  uint64(uintptr(unsafe.Pointer(&info))),
	}
	err := ioctl.Do(uintptr(fd), uintptr(ioctlGemOp), uintptr(unsafe.Pointer(&req)))
	if err != nil {
		return 0, err
	}
	return info.boSize, nil
}

// CloseBuffer drops the GEM handle reference on fd.
func CloseBuffer(fd int, handle uint32) error {
	req := sysGemClose{handle: handle}
	return ioctl.Do(uintptr(fd), uintptr(ioctlGemClose), uintptr(unsafe.Pointer(&req)))
}
