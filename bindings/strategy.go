package bindings

import (
	"github.com/pkg/errors"

	"github.com/twitter/robotlegs/ice"
	"github.com/twitter/robotlegs/reaction"
)

// Strategy is one way of getting both a Sad and a Happy ReactionProcessor out of one bag.
type Strategy struct {
	Label          string
	Modules        []ice.Module
	PrivateModules []ice.PrivateModule
}

// Install installs the Strategy's modules into bag.
func (s Strategy) Install(bag *ice.MagicBag) error {
	for _, m := range s.Modules {
		if err := bag.InstallModule(m); err != nil {
			return errors.Wrapf(err, "%s", s.Label)
		}
	}
	for _, m := range s.PrivateModules {
		if err := bag.InstallPrivateModule(m); err != nil {
			return errors.Wrapf(err, "%s", s.Label)
		}
	}
	return nil
}

// Resolve extracts the Sad and Happy ReactionProcessors from bag
func Resolve(bag *ice.MagicBag) (sad, happy *reaction.ReactionProcessor, err error) {
	if err = bag.ExtractTagged(reaction.Sad, &sad); err != nil {
		return nil, nil, errors.Wrapf(err, "extracting %v", ProcessorKey(reaction.Sad))
	}
	if err = bag.ExtractTagged(reaction.Happy, &happy); err != nil {
		return nil, nil, errors.Wrapf(err, "extracting %v", ProcessorKey(reaction.Happy))
	}
	return sad, happy, nil
}

func ProviderStrategy() Strategy {
	return Strategy{
		Label:   "Using Provider",
		Modules: []ice.Module{ProviderReactionModule{}},
	}
}

// PrivateStrategy could pass the Handler as a value too, see PrivateStrategyV2.
func PrivateStrategy() Strategy {
	return Strategy{
		Label: "Using Private Module",
		PrivateModules: []ice.PrivateModule{
			PrivateReactorModule{
				Mood: reaction.Sad,
				BindHandler: func(b *ice.PrivateBag) {
					b.Put(reaction.MakeSorrowfulHandler)
				},
			},
			PrivateReactorModule{
				Mood: reaction.Happy,
				BindHandler: func(b *ice.PrivateBag) {
					b.Put(reaction.MakeCheerfulHandler)
				},
			},
		},
	}
}

func PrivateStrategyV2() Strategy {
	return Strategy{
		Label: "Using Private Module v2",
		PrivateModules: []ice.PrivateModule{
			PrivateReactorModuleV2{Mood: reaction.Sad, Handler: reaction.MakeSorrowfulHandler},
			PrivateReactorModuleV2{Mood: reaction.Happy, Handler: reaction.MakeCheerfulHandler},
		},
	}
}

// Sequence is the Strategies the demo runs, in order.
func Sequence() []Strategy {
	return []Strategy{
		ProviderStrategy(),
		PrivateStrategy(),
		PrivateStrategyV2(),
	}
}
