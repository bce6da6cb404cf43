package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	errs "github.com/twitter/robotlegs/common/errors"
	"github.com/twitter/robotlegs/demo"
)

// Shows several ways to bind two implementations of the same interface in one bag
func main() {
	log.SetOutput(os.Stderr)
	if err := demo.NewCommand().Execute(); err != nil {
		log.Error("error running robotlegs: ", err)
		os.Exit(int(errs.ExitCodeOf(err, errs.UsageFailureExitCode)))
	}
}
