package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/regginator/pp/bigint"
	"github.com/regginator/pp/buckets"
	"github.com/regginator/pp/emit"
)

// version is the reference generator's binary version, printed with two
// decimal places per its -V/--version contract.
const version = "0.17"

var (
	showVersion      = flag.Bool("version", false, "Print version and exit")
	showVersionShort = flag.Bool("V", false, "Print version and exit")
	showHelp         = flag.Bool("help", false, "Print usage and exit")
	showHelpShort    = flag.Bool("h", false, "Print usage and exit")

	keyspaceOnly = flag.Bool("keyspace", false, "Print the total keyspace and exit")

	pwMin = flag.Int("pw-min", 1, "Minimum candidate length")
	pwMax = flag.Int("pw-max", buckets.MaxLen, "Maximum candidate length")

	elemCntMin = flag.Int("elem-cnt-min", 1, "Minimum chain element count")
	elemCntMax = flag.Int("elem-cnt-max", 8, "Maximum chain element count")

	wlDistLen = flag.Bool("wl-dist-len", false, "Use observed bucket sizes as the word-length distribution")

	skipStr      = flag.String("skip", "0", "Emission start offset")
	skipStrShort = flag.String("s", "0", "Emission start offset (shorthand)")

	limitStr      = flag.String("limit", "0", "Maximum candidates to emit after skip")
	limitStrShort = flag.String("l", "0", "Maximum candidates to emit after skip (shorthand)")

	outputFile      = flag.String("output-file", "", "Append output to FILE; default is stdout")
	outputFileShort = flag.String("o", "", "Append output to FILE; default is stdout (shorthand)")
)

func usage(exitCode int) {
	flag.Usage()
	os.Exit(exitCode)
}

func fatal(format string, args ...any) {
	pterm.Error.Printf(format+"\n", args...)
	os.Exit(1)
}

// main guards run against allocation failures. Go doesn't surface malloc
// failure the way C does, but an oversized make/append (a huge wordlist,
// a pathological pw-max/elem-cnt-max combination) panics with a runtime
// error instead of returning nil, so a bare panic is the closest analogue
// to the reference generator's allocator check. Any other panic is a bug,
// not an allocation failure, and is re-raised.
func main() {
	defer func() {
		if r := recover(); r != nil {
			if !isOutOfMemory(r) {
				panic(r)
			}
			pterm.Error.Println("Out of memory!")
			os.Exit(1)
		}
	}()

	run()
}

func isOutOfMemory(r any) bool {
	msg := fmt.Sprint(r)
	return strings.Contains(msg, "out of memory") || strings.Contains(msg, "cannot allocate memory") ||
		strings.Contains(msg, "makeslice:") || strings.Contains(msg, "growslice:")
}

func run() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "USAGE: %s [OPTION]...\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if *showVersion || *showVersionShort {
		fmt.Printf("v%s\n", version)
		os.Exit(1)
	}

	if *showHelp || *showHelpShort {
		usage(1)
	}

	bs, err := buckets.Load(os.Stdin)
	if err != nil {
		fatal("failed to read word list from stdin: %s", err)
	}

	skip := firstNonDefault(*skipStrShort, *skipStr, "0")
	limit := firstNonDefault(*limitStrShort, *limitStr, "0")

	skipVal, err := bigint.Parse(skip)
	if err != nil {
		fatal("invalid value for -s/--skip: %s", err)
	}
	limitVal, err := bigint.Parse(limit)
	if err != nil {
		fatal("invalid value for -l/--limit: %s", err)
	}

	driver, err := emit.New(bs, emit.Config{
		PwMin:       *pwMin,
		PwMax:       *pwMax,
		ElemCntMin:  *elemCntMin,
		ElemCntMax:  *elemCntMax,
		UseObserved: *wlDistLen,
		Skip:        skipVal,
		Limit:       limitVal,
	})
	if err != nil {
		pterm.Error.Printf("invalid arguments: %s\n", err)
		fmt.Println()
		usage(1)
	}

	if *keyspaceOnly {
		fmt.Println(driver.KeyspaceInitial.String())
		os.Exit(0)
	}

	if err := driver.Validate(); err != nil {
		fatal("%s", err)
	}

	out := firstNonDefault(*outputFileShort, *outputFile, "")

	sink, err := emit.OpenSink(out)
	if err != nil {
		fatal("failed to open output file %q: %s", out, err)
	}
	defer sink.Close()

	if err := driver.Run(context.Background(), sink); err != nil {
		fatal("emission failed: %s", err)
	}
}

// firstNonDefault picks the short-flag value if the caller actually set
// it (i.e. it differs from the flag's default), otherwise falls back to
// the long-flag value. Both flags share the same default so whichever one
// the user touched wins.
func firstNonDefault(short, long, def string) string {
	if short != def {
		return short
	}
	return long
}
