/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Command fontembed embeds a TrueType or OpenType font file as a simple font and writes the
// resulting PDF objects.
//
//	fontembed [options] font.ttf
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/unidoc/simplefont/common"
	"github.com/unidoc/simplefont/pdf/core"
	"github.com/unidoc/simplefont/pdf/fontembed"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fontembed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("name", "", "BaseFont name (default: PostScript name of the font)")
	flagList := fs.String("flags", "", "comma separated descriptor flags, e.g. Serif,Italic")
	autoFlags := fs.Bool("auto-flags", false, "add the flags derived from the font")
	validate := fs.Bool("validate", false, "verify the TrueType checksums before embedding")
	outPath := fs.String("o", "", "output file (default: standard output)")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fontembed [options] font.ttf\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("exactly one font file expected")
	}

	if *verbose {
		common.SetLogger(common.NewWriterLogger(common.LogLevelDebug, stderr))
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: empty font file %s", fontembed.ErrInputValidation, fs.Arg(0))
	}

	metrics, err := fontembed.LoadMetrics(data)
	if err != nil {
		return err
	}
	if *validate {
		v, ok := metrics.(interface{ Validate() error })
		if !ok {
			return errors.New("checksum validation is only supported for TrueType fonts")
		}
		if err := v.Validate(); err != nil {
			return fmt.Errorf("invalid font: %w", err)
		}
	}

	options, err := fontembed.ParseFlagList(*flagList)
	if err != nil {
		return err
	}
	if *autoFlags {
		suggested := fontembed.SuggestFlags(metrics)
		options = (options.Encode() | suggested.Encode()).Options()
	}

	if *name == "" {
		if named, ok := metrics.(fontembed.Named); ok {
			*name = named.PostScriptName()
		}
	}

	e, err := fontembed.NewEmbedderWithMetrics(*name, data, options, metrics)
	if err != nil {
		return err
	}
	store := core.NewObjectStore()
	ref, err := e.Embed(store)
	if err != nil {
		return err
	}

	if err := writeObjects(store, *outPath, stdout); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "%s: font %s, flags %d (%s), %d objects\n", *name, ref.WriteString(),
		e.Flags(), e.Flags(), store.Len())
	return nil
}

// writeObjects writes the objects of `store` to the file `path`, or to `stdout` if `path` is empty.
func writeObjects(store *core.ObjectStore, path string, stdout io.Writer) error {
	if path == "" {
		return store.Write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := store.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
