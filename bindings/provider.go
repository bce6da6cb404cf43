package bindings

import (
	"github.com/twitter/robotlegs/ice"
	"github.com/twitter/robotlegs/reaction"
)

// ProviderReactionModule binds a Handler per Mood, and makes each tagged
// ReactionProcessor by hand in a tagged provider that asks for the Handler
// with the same tag.
// Fine while ReactionProcessor is this simple, but every Mood repeats the
// construction and its tags.
type ProviderReactionModule struct{}

func (m ProviderReactionModule) Install(bag *ice.MagicBag) {
	bag.PutTagged(reaction.Sad, reaction.MakeSorrowfulHandler)
	bag.PutTagged(reaction.Happy, reaction.MakeCheerfulHandler)

	bag.PutBinding(ice.Binding{
		Provider:  m.SadProcessor,
		Tag:       reaction.Sad,
		ArgTags:   []ice.Tag{reaction.Sad},
		Singleton: true,
	})
	bag.PutBinding(ice.Binding{
		Provider:  m.HappyProcessor,
		Tag:       reaction.Happy,
		ArgTags:   []ice.Tag{reaction.Happy},
		Singleton: true,
	})
}

func (m ProviderReactionModule) SadProcessor(h reaction.Handler) *reaction.ReactionProcessor {
	return reaction.NewReactionProcessor(h)
}

func (m ProviderReactionModule) HappyProcessor(h reaction.Handler) *reaction.ReactionProcessor {
	return reaction.NewReactionProcessor(h)
}
