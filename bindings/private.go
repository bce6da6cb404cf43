package bindings

import (
	"fmt"
	"io"

	"github.com/twitter/robotlegs/ice"
	"github.com/twitter/robotlegs/reaction"
)

// ProcessorKey is the Key a ReactionProcessor for mood is bound under.
func ProcessorKey(mood reaction.Mood) ice.Key {
	return ice.KeyOf((**reaction.ReactionProcessor)(nil), mood)
}

// PrivateReactorModule makes a ReactionProcessor tagged with Mood and exposes
// only that. Its untagged Handler stays private, so the Sad and Happy modules
// don't collide.
// BindHandler binds the private Handler, and may do so any way it likes.
type PrivateReactorModule struct {
	Mood        reaction.Mood
	BindHandler func(b *ice.PrivateBag)
}

func (m PrivateReactorModule) InstallPrivate(b *ice.PrivateBag) {
	if m.BindHandler == nil {
		panic(fmt.Errorf("no BindHandler for %v PrivateReactorModule", m.Mood))
	}
	b.PutTagged(m.Mood, reaction.NewReactionProcessor)
	b.Expose(ProcessorKey(m.Mood))

	m.BindHandler(b)
}

// PrivateReactorModuleV2 is PrivateReactorModule for when binding the Handler
// is always one provider: pass the provider instead of a binding func.
type PrivateReactorModuleV2 struct {
	Mood    reaction.Mood
	Handler func(out io.Writer) reaction.Handler
}

func (m PrivateReactorModuleV2) InstallPrivate(b *ice.PrivateBag) {
	if m.Handler == nil {
		panic(fmt.Errorf("no Handler for %v PrivateReactorModuleV2", m.Mood))
	}
	b.Put(m.Handler)
	b.PutTagged(m.Mood, reaction.NewReactionProcessor)
	b.Expose(ProcessorKey(m.Mood))
}
