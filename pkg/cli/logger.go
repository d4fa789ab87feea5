package cli

import "github.com/BrugadaSyndrome/bslogger"

func newLogger(name string, verbose, quiet bool) bslogger.Logger {
	verbosity := bslogger.Normal
	switch {
	case quiet:
		verbosity = bslogger.Minimal
	case verbose:
		verbosity = bslogger.All
	}

	return bslogger.NewLogger(name, verbosity, nil)
}
