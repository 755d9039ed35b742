package dri3

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Node selects which device node Open prefers.
type Node int

const (
	// NodeRender prefers the self-authorizing render node when one is
	// known, falling back to the card node.
	NodeRender Node = iota

	// NodeCard goes straight to the primary node and the legacy magic
	// handshake.
	NodeCard
)

// Open opens the GPU device on a client's behalf and returns an
// authorized fd the client can render through. The caller owns the fd.
//
// Render nodes carry per-process GPU address spaces and need no
// authentication. The card node still uses the legacy handshake: the
// kernel hands out a magic number for the new fd, and the server
// authorizes it through its own fd before passing the fd on.
//
// Failures are ErrAllocation (open failed) or ErrMismatch (handshake
// refused), distinguishable with errors.Is.
func (scr *Screen) Open(preferred Node) (int, error) {
	if preferred == NodeRender && scr.renderNode != "" {
		fd, err := scr.kernel.Open(scr.renderNode)
		if err == nil {
			return fd, nil
		}
		scr.log.Debug("render node open failed, falling back to card node",
			"path", scr.renderNode, "err", err)
	}
	return scr.openCardNode()
}

func (scr *Screen) openCardNode() (int, error) {
	fd, err := scr.kernel.Open(scr.nodePath)
	if err != nil {
		return -1, fmt.Errorf("%w: open %s: %v", ErrAllocation, scr.nodePath, err)
	}

	magic, err := scr.kernel.GetMagic(fd)
	if err != nil {
		if errors.Is(err, unix.EACCES) {
			// The node turned out to be a render node reached through
			// the legacy path; the fd is already as authenticated as
			// it needs to be.
			return fd, nil
		}
		_ = scr.kernel.Close(fd)
		return -1, fmt.Errorf("%w: magic request: %v", ErrMismatch, err)
	}

	if err := scr.kernel.AuthMagic(scr.fd, magic); err != nil {
		_ = scr.kernel.Close(fd)
		return -1, fmt.Errorf("%w: magic %d: %v", ErrMismatch, magic, err)
	}
	return fd, nil
}
