// Package dri3 implements the buffer-sharing backend of a GPU display
// driver: the bridge that turns dma-buf file descriptors plus layout
// metadata into the display server's drawable surfaces, and back.
//
// # Overview
//
// DRI3 replaced per-client GPU authentication with file descriptor
// passing. The display server opens and authorizes a device node on a
// client's behalf, the client renders into GPU buffers, and buffers cross
// the process boundary as fds accompanied by width/height, per-plane
// stride/offset, a pixel format (or depth+bpp), and a 64-bit layout
// modifier. This package implements the driver side of that exchange.
//
// # Architecture
//
// The package is organized into:
//   - Screen: the per-screen context threading the device, host object
//     model, accelerator and tiled allocator through every operation.
//   - Import/export engines: SurfaceFromFD(s) and FDFromSurface /
//     FDsFromSurface, choosing between an accelerated path and a direct
//     kernel-buffer path.
//   - format: fourcc pixel formats and the per-hardware-generation
//     modifier catalog.
//   - internal/drmioctl: the kernel DRM ioctl plumbing (magic
//     authentication, dma-buf export, buffer queries).
//
// The host's drawable model, the accelerator (OpenGL/glamor-class
// library) and the tiled-memory allocator (GBM-class library) are
// external collaborators reached through the Host, Accelerator and
// Allocator interfaces; this package never renders pixels itself.
//
// # Concurrency
//
// All operations are synchronous and run to completion on the calling
// goroutine. The host serializes per-surface operations upstream; a
// Screen performs no internal locking.
package dri3
