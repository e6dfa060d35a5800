package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffpack/internal/runner"
)

var log = logging.MustGetLogger("huffpack/cmd")

const progName = "huffpack"
const usageMessageRaw = `
Usage: huffpack [OPTIONS] [SUBCOMMAND INPUT OUTPUT]

Subcommands:
  compress INPUT OUTPUT
    Compress the file INPUT into the new file OUTPUT.

  decompress INPUT OUTPUT
    Decompress the file INPUT, produced by "compress", into OUTPUT.

With no subcommand, huffpack runs an interactive menu.

Options:
  -v, -verbose   print size, ratio, tree, and timing statistics
  -verify        decompress in memory before writing and compare digests
  -d, -debug     enable debug logging
`

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var ourFlags *flag.FlagSet

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:-7s} %{module:-16s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func main() {
	startLogging()

	ourFlags = flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var opts runner.Options
	var debugLogging bool
	ourFlags.BoolVar(&opts.Verbose, "verbose", false, "")
	ourFlags.BoolVar(&opts.Verbose, "v", false, "")
	ourFlags.BoolVar(&opts.Verify, "verify", false, "")
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if ourFlags.NArg() == 0 {
		if err := runMenu(os.Stdin, os.Stdout, opts); err != nil {
			exitError(err)
		}
		return
	}

	if ourFlags.NArg() != 3 {
		usageErrorf("expected SUBCOMMAND INPUT OUTPUT, got %d arguments", ourFlags.NArg())
	}
	subcommand, input, output := ourFlags.Arg(0), ourFlags.Arg(1), ourFlags.Arg(2)

	var err error
	switch subcommand {
	default:
		usageErrorf("unknown subcommand \"%s\"", subcommand)
	case "compress":
		_, err = runner.Compress(input, output, opts)
	case "decompress":
		_, err = runner.Decompress(input, output, opts)
	}
	if err != nil {
		exitError(err)
	}
}

// runMenu drives the interactive mode: pick an operation, then name the
// input and output files.  The menu always prints statistics.
func runMenu(in io.Reader, out io.Writer, opts runner.Options) error {
	opts.Verbose = true
	opts.Stats = out

	scanner := bufio.NewScanner(in)
	prompt := func(text string) (string, error) {
		fmt.Fprint(out, text)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	fmt.Fprintln(out, "=== HUFFMAN COMPRESSION TOOL ===")
	fmt.Fprintln(out, "1. Compress a file")
	fmt.Fprintln(out, "2. Decompress a file")
	fmt.Fprintln(out, "3. Exit")
	choice, err := prompt("Enter your choice (1-3): ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		fmt.Fprintln(out, "\n=== COMPRESSION MODE ===")
		input, err := prompt("Enter input file name: ")
		if err != nil {
			return err
		}
		output, err := prompt("Enter output compressed file name: ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "\nCompressing...")
		if _, err := runner.Compress(input, output, opts); err != nil {
			return err
		}
		fmt.Fprintln(out, "Compression completed!")

	case "2":
		fmt.Fprintln(out, "\n=== DECOMPRESSION MODE ===")
		input, err := prompt("Enter compressed file name: ")
		if err != nil {
			return err
		}
		output, err := prompt("Enter output decompressed file name: ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "\nDecompressing...")
		if _, err := runner.Decompress(input, output, opts); err != nil {
			return err
		}
		fmt.Fprintln(out, "Decompression completed!")

	case "3":
		fmt.Fprintln(out, "Goodbye!")

	default:
		log.Warningf("invalid menu choice %q", choice)
		return fmt.Errorf("invalid choice %q", choice)
	}
	return nil
}
