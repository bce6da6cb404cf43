package demo

import (
	"io"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/twitter/robotlegs/bindings"
	errs "github.com/twitter/robotlegs/common/errors"
	"github.com/twitter/robotlegs/common/log/hooks"
	"github.com/twitter/robotlegs/config/robotconfig"
	"github.com/twitter/robotlegs/ice"
)

var addContextHook sync.Once

type command struct {
	configText string
	logLevel   string
}

// NewCommand makes the robotlegs command, which needs no arguments or flags.
func NewCommand() *cobra.Command {
	c := &command{}
	cmd := &cobra.Command{
		Use:           "robotlegs",
		Short:         "robotlegs wires a Sad and a Happy ReactionProcessor in several ways and reacts with both",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.run,
	}
	cmd.Flags().StringVar(&c.configText, "config", "", `JSON configuration, e.g. {"Output": {"Type": "stderr"}}`)
	cmd.Flags().StringVar(&c.logLevel, "log_level", "warning", "logrus level to log at")
	return cmd
}

func (c *command) run(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(c.logLevel)
	if err != nil {
		return errs.NewError(err, errs.UsageFailureExitCode)
	}
	log.SetLevel(level)
	if level >= log.DebugLevel {
		addContextHook.Do(func() { log.AddHook(hooks.NewContextHook()) })
	}

	out, err := configureOutput(c.configText)
	if err != nil {
		return errs.NewError(err, errs.ConfigurationFailureExitCode)
	}
	return Run(out, bindings.Sequence())
}

func configureOutput(configText string) (io.Writer, error) {
	mod, err := robotconfig.Schema().Parse([]byte(configText))
	if err != nil {
		return nil, err
	}
	bag := ice.NewMagicBag()
	if err := bag.InstallModule(mod); err != nil {
		return nil, err
	}
	var out io.Writer
	if err := bag.Extract(&out); err != nil {
		return nil, err
	}
	return out, nil
}
