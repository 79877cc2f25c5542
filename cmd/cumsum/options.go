package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/couchbase/tools-cumsum/envvar"
)

const (
	typeInt     = "int"
	typeFloat   = "float"
	typeComplex = "complex"
)

// options holds the configuration of a single run, environment variables provide the defaults for the flags.
type options struct {
	numberType string
	inPlace    bool
	total      bool
	precision  int
	separator  string
	logLevel   string
}

// defaultOptions returns the options used when no flags are given.
func defaultOptions() options {
	opts := options{
		numberType: typeInt,
		precision:  -1,
		separator:  " ",
		logLevel:   "warning",
	}

	if val, ok := envvar.GetString("CUMSUM_TYPE"); ok {
		opts.numberType = val
	}

	if val, ok := envvar.GetBool("CUMSUM_IN_PLACE"); ok {
		opts.inPlace = val
	}

	if val, ok := envvar.GetBool("CUMSUM_TOTAL"); ok {
		opts.total = val
	}

	if val, ok := envvar.GetInt("CUMSUM_PRECISION"); ok {
		opts.precision = val
	}

	if val, ok := envvar.GetString("CUMSUM_SEPARATOR"); ok {
		opts.separator = val
	}

	if val, ok := envvar.GetString("CUMSUM_LOG_LEVEL"); ok {
		opts.logLevel = val
	}

	return opts
}

func installFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVarP(&opts.numberType, "type", "t", opts.numberType, "Type of the numbers, one of int, float or complex")
	flags.BoolVarP(&opts.inPlace, "in-place", "i", opts.inPlace, "Overwrite the parsed numbers rather than allocating")
	flags.BoolVar(&opts.total, "total", opts.total, "Print the total of the numbers on a line of its own")
	flags.IntVarP(&opts.precision, "precision", "p", opts.precision,
		"Number of decimal places printed for float and complex numbers, -1 prints the shortest exact representation")
	flags.StringVarP(&opts.separator, "separator", "s", opts.separator, "Separator printed between the sums")
	flags.StringVar(&opts.logLevel, "log-level", opts.logLevel, "Verbosity of the logs written to stderr")
}

func (o options) validate() error {
	switch o.numberType {
	case typeInt, typeFloat, typeComplex:
	default:
		return fmt.Errorf("invalid number type %q, expected one of %s, %s or %s", o.numberType, typeInt, typeFloat,
			typeComplex)
	}

	if o.precision < -1 {
		return fmt.Errorf("invalid precision %d, must be at least -1", o.precision)
	}

	return nil
}
