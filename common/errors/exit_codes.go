package errors

type ExitCode int

const (
	// Couldn't parse or install the configuration
	ConfigurationFailureExitCode ExitCode = 70

	// The bag couldn't install a strategy's modules, or extract its processors
	InjectionFailureExitCode = 80

	// The command line itself was wrong
	UsageFailureExitCode = 90
)
