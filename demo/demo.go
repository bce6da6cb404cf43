package demo

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/twitter/robotlegs/bindings"
	errs "github.com/twitter/robotlegs/common/errors"
	"github.com/twitter/robotlegs/ice"
	"github.com/twitter/robotlegs/reaction"
)

// Run runs each Strategy in a bag of its own. For each, it prints the Label
// and then the Sad and Happy reactions to out, with a blank line between Strategies.
func Run(out io.Writer, strategies []bindings.Strategy) error {
	for i, s := range strategies {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, s.Label)

		sad, happy, err := build(out, s)
		if err != nil {
			logInjectionError(err)
			return errs.NewError(err, errs.InjectionFailureExitCode)
		}
		sad.React()
		happy.React()
	}
	return nil
}

func build(out io.Writer, s bindings.Strategy) (sad, happy *reaction.ReactionProcessor, err error) {
	bag := ice.NewMagicBag()
	bag.Put(func() io.Writer { return out })
	if err := s.Install(bag); err != nil {
		return nil, nil, err
	}
	sad, happy, err = bindings.Resolve(bag)
	if err != nil {
		return nil, nil, errs.Wrap(err, s.Label)
	}
	log.WithFields(log.Fields{
		"strategy":    s.Label,
		"extractions": bag.Extractions(),
		"constructed": bag.Constructed(),
	}).Debug("wired processors")
	return sad, happy, nil
}

func logInjectionError(err error) {
	if iceErr, ok := ice.AsInjectionError(err); ok {
		iceErr.LogStack()
	}
}
