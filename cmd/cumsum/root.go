package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/couchbase/tools-cumsum/cumsum"
	"github.com/couchbase/tools-cumsum/functional/slices"
	"github.com/couchbase/tools-cumsum/log"
	"github.com/couchbase/tools-cumsum/parse"
)

func newRootCommand() *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:   "cumsum [OPTIONS] [NUMBER...]",
		Short: "Print the running sums of a sequence of numbers.",
		Long: "Print the running sums of a sequence of numbers.\n\n" +
			"Numbers are read from the arguments, or from stdin separated by whitespace or commas when no arguments " +
			"are given. Use '--' before the first negative argument so that it isn't mistaken for a flag.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd.ErrOrStderr(), opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	installFlags(cmd.Flags(), &opts)

	return cmd
}

// setupLogging forwards the library logs to logrus, writing to the given writer.
func setupLogging(w io.Writer, name string) error {
	level, err := log.ParseLevel(name)
	if err != nil {
		return err
	}

	backend := logrus.New()
	backend.SetOutput(w)

	log.SetLogger(log.NewLogrusLogger(backend, level))

	return nil
}

func run(opts options, args []string, stdin io.Reader, stdout io.Writer) error {
	if err := opts.validate(); err != nil {
		return err
	}

	tokens := args
	if len(tokens) == 0 {
		log.Debugf("No arguments given, reading numbers from stdin")

		var err error

		tokens, err = parse.Fields(stdin)
		if err != nil {
			return err
		}
	}

	log.Debugf("Computing running sums of %d %s values (in place: %t)", len(tokens), opts.numberType, opts.inPlace)

	var (
		output string
		err    error
	)

	switch opts.numberType {
	case typeInt:
		output, err = runningSums(tokens, opts, func(n int64) string { return strconv.FormatInt(n, 10) })
	case typeFloat:
		output, err = runningSums(tokens, opts, func(n float64) string {
			return strconv.FormatFloat(n, floatFormat(opts.precision), opts.precision, 64)
		})
	case typeComplex:
		output, err = runningSums(tokens, opts, func(n complex128) string {
			return strconv.FormatComplex(n, floatFormat(opts.precision), opts.precision, 128)
		})
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprint(stdout, output)
	if err != nil {
		return fmt.Errorf("failed to write running sums: %w", err)
	}

	return nil
}

// runningSums parses the tokens and returns the output for their running sums, followed by their total when requested.
func runningSums[E parse.Number](tokens []string, opts options, format func(n E) string) (string, error) {
	numbers, err := parse.Numbers[E](tokens)
	if err != nil {
		return "", err
	}

	// Computed first as the in-place variant consumes 'numbers'
	total := slices.Sum(numbers)

	var sums []E
	if opts.inPlace {
		sums = cumsum.CumSumOwned(numbers)
	} else {
		sums = cumsum.CumSum(numbers)
	}

	log.Tracef("Running sums: %v", sums)

	output := slices.Join(sums, format, opts.separator) + "\n"
	if opts.total {
		output += "total: " + format(total) + "\n"
	}

	return output, nil
}

// floatFormat returns the 'strconv' format to use for the given precision.
func floatFormat(precision int) byte {
	if precision < 0 {
		return 'g'
	}

	return 'f'
}
