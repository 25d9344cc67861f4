package surface

import (
	"sync"

	"github.com/twitchembed/server/internal/bridge"
)

// Surface is the rendering side of a player instance: an attached
// client that can load a full document and evaluate command scripts
// against it. Documents are loaded without base resource resolution;
// the templates only reference absolute script URLs.
type Surface interface {
	Load(document string) error
	Eval(script string) error
	Close() error
}

// Attachment pairs an attached surface with the command bridge of its
// currently loaded document. Resetting the bridge models a reload: the
// new document starts not-ready and the old queue is gone.
type Attachment struct {
	mu      sync.Mutex
	surface Surface
	bridge  *bridge.Bridge
}

func NewAttachment(s Surface) *Attachment {
	return &Attachment{
		surface: s,
		bridge:  bridge.New(s),
	}
}

func (a *Attachment) Surface() Surface {
	return a.surface
}

func (a *Attachment) Bridge() *bridge.Bridge {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.bridge
}

func (a *Attachment) ResetBridge() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.bridge = bridge.New(a.surface)
}
