// Command uaclassify classifies User-Agent strings given as arguments or, with
// no arguments, one per line on standard input.
//
//	uaclassify -format yaml "Mozilla/5.0 (X11; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"
//	cut -d'"' -f6 access.log | uaclassify -format text
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/webtools/internal/stats"
	"github.com/dmitrymomot/webtools/pkg/logger"
	"github.com/dmitrymomot/webtools/pkg/useragent"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

// maxLineBytes caps a single stdin line.
const maxLineBytes = 1024 * 1024

var errUnknownFormat = errors.New("unknown output format")

type options struct {
	format    string
	normalize bool
	cacheSize int
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log := logger.New(logger.WithOutput(os.Stderr), logger.WithFormat(logger.FormatText))
		log.Error("uaclassify failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("uaclassify", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.format, "format", formatJSON, "output format: json, yaml or text")
	fs.BoolVar(&opts.normalize, "normalize", false, "print the normalized form only")
	fs.IntVar(&opts.cacheSize, "cache", 1024, "number of distinct inputs to memoize")
	if err := fs.Parse(args); err != nil {
		return err
	}

	out, err := newWriter(opts, stdout)
	if err != nil {
		return err
	}

	classifier := useragent.NewClassifier(opts.cacheSize)
	emit := func(raw string) error {
		return out.write(raw, classifier)
	}

	// Rows written before a failure are still flushed.
	if err := classifyAll(fs.Args(), stdin, emit); err != nil {
		return errors.Join(err, out.flush())
	}
	return out.flush()
}

// classifyAll feeds args to emit, or stdin lines when args is empty.
func classifyAll(args []string, stdin io.Reader, emit func(string) error) error {
	if len(args) > 0 {
		for _, raw := range args {
			if err := emit(raw); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if err := emit(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

type writer struct {
	emit  func(useragent.UserAgent) error
	flush func() error
	plain io.Writer
}

// write prints raw normalized when emit is nil, and its classification otherwise.
func (w *writer) write(raw string, c *useragent.Classifier) error {
	if w.emit == nil {
		_, err := fmt.Fprintln(w.plain, useragent.Normalize(raw))
		return err
	}
	return w.emit(c.Parse(raw))
}

func newWriter(opts options, w io.Writer) (*writer, error) {
	noFlush := func() error { return nil }

	if opts.normalize {
		return &writer{plain: w, flush: noFlush}, nil
	}

	switch opts.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		return &writer{
			emit:  func(ua useragent.UserAgent) error { return enc.Encode(ua.View()) },
			flush: noFlush,
		}, nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &writer{
			emit:  func(ua useragent.UserAgent) error { return enc.Encode(ua.View()) },
			flush: enc.Close,
		}, nil
	case formatText:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		if _, err := fmt.Fprintln(tw, "BROWSER\tENGINE\tOS\tCLASS"); err != nil {
			return nil, err
		}
		return &writer{
			emit: func(ua useragent.UserAgent) error {
				_, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					dash(ua.FullName()), dash(ua.BrowserEngine()), dash(ua.OperatingSystem()), stats.ClassOf(ua))
				return err
			},
			flush: tw.Flush,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, opts.format)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
