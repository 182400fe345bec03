// Command tilecode prints the active tile indices of coordinates under a
// tile coder described by a YAML file.
//
//	tilecode -config coder.yaml 3.6,7.21 3.7,7.21
//	cat points.txt | tilecode -config coder.yaml -features
//
// Coordinates come from positional arguments or, when there are none, one
// per line on stdin. Values are separated by commas and/or whitespace;
// blank lines and lines starting with '#' are skipped.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tilecoding/tilecoder"
)

// logf is the diagnostic logger used with -v. Tests may replace it.
var logf func(format string, v ...interface{}) = log.Printf

func main() {
	log.SetFlags(0)
	log.SetPrefix("tilecode: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tilecode: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("tilecode", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	configPath := fs.String("config", "", "path to the YAML tile coder config")
	features := fs.Bool("features", false, "print active/total feature counts instead of indices")
	workers := fs.Int("workers", 0, "parallel lookups (0 = GOMAXPROCS)")
	verbose := fs.Bool("v", false, "log the coder layout")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return errors.New("missing -config")
	}

	cfg, err := tilecoder.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	tc, err := cfg.Build()
	if err != nil {
		return err
	}
	if *verbose {
		logf("dims=%d tilings=%d block_size=%d n_tiles=%d scheme=%s",
			tc.Dims(), tc.Tilings(), tc.BlockSize(), tc.NTiles(), cfg.Displacement.Scheme)
	}

	var coords [][]float64
	if fs.NArg() > 0 {
		coords, err = parseArgs(fs.Args())
	} else {
		coords, err = parseLines(stdin)
	}
	if err != nil {
		return err
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if *features {
		for i, c := range coords {
			v, err := tc.Features(c)
			if err != nil {
				return fmt.Errorf("coordinate %d: %w", i+1, err)
			}
			active := 0
			for j := 0; j < v.Len(); j++ {
				if v.AtVec(j) != 0 {
					active++
				}
			}
			fmt.Fprintf(out, "%d/%d\n", active, v.Len())
		}
		return nil
	}

	results, err := tc.LookupBatch(coords, *workers)
	if err != nil {
		return err
	}
	for _, idx := range results {
		fmt.Fprintln(out, joinInts(idx))
	}
	return nil
}

func parseArgs(args []string) ([][]float64, error) {
	coords := make([][]float64, 0, len(args))
	for i, a := range args {
		c, err := parseCoord(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		coords = append(coords, c)
	}
	return coords, nil
}

func parseLines(r io.Reader) ([][]float64, error) {
	var coords [][]float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		c, err := parseCoord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		coords = append(coords, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return coords, nil
}

// parseCoord splits s on commas and whitespace.
func parseCoord(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errors.New("empty coordinate")
	}
	c := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		c[i] = v
	}
	return c, nil
}

func joinInts(xs []int) string {
	var b strings.Builder
	for i, x := range xs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(x))
	}
	return b.String()
}
