package bindings

import (
	"github.com/pkg/errors"

	"github.com/twitter/robotlegs/ice"
	"github.com/twitter/robotlegs/reaction"
)

// SingleReactionModule binds the one Handler every ReactionProcessor gets,
// so the bag can only ever make an always-sad processor.
type SingleReactionModule struct{}

func (m SingleReactionModule) Install(bag *ice.MagicBag) {
	bag.PutMany(
		reaction.MakeSorrowfulHandler,
		reaction.NewReactionProcessor,
	)
}

// SingleBind extracts the untagged ReactionProcessor.
func SingleBind(bag *ice.MagicBag) (*reaction.ReactionProcessor, error) {
	var p *reaction.ReactionProcessor
	if err := bag.Extract(&p); err != nil {
		return nil, errors.Wrap(err, "extracting untagged ReactionProcessor")
	}
	return p, nil
}
