// Package format defines the pixel formats and memory-layout modifiers
// the driver negotiates over the buffer-sharing protocol.
//
// Formats are DRM fourcc codes. Modifiers are opaque 64-bit vendor tags
// describing tiled or compressed layouts; the catalog maps each
// supported format to the modifiers a given hardware generation can
// produce and consume. The advertised format list is deliberately
// generation-independent (format support is a codec capability) while
// the modifier lists are generation-gated (modifier support is a
// memory-controller capability).
package format
