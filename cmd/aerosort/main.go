// Command aerosort reads newline-delimited integers from stdin (or a
// file), sorts them with pkg/aerosort, and writes the result to stdout.
// With -verify it checks the sortedness and permutation invariants
// against a copy of the input and exits non-zero on failure; with -dump
// as well, a failure also dumps the input and output with go-spew.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/edirooss/aerosort/internal/telemetry"
	"github.com/edirooss/aerosort/pkg/aerosort"
)

func main() {
	in := flag.String("in", "", "input file, one value per line (default: stdin)")
	verify := flag.Bool("verify", false, "verify sortedness and element count after sorting")
	dump := flag.Bool("dump", false, "on -verify failure, dump the input and output with go-spew")
	verbose := flag.Bool("v", false, "enable debug logging of strategy selection")
	flag.Parse()

	log := telemetry.New("aerosort")
	if *verbose {
		telemetry.SetLogger(log)
	}

	values, err := readValues(*in)
	if err != nil {
		log.Fatal("reading input failed", zap.Error(err))
	}

	var original []int64
	if *verify {
		original = append([]int64(nil), values...)
	}

	start := time.Now()
	aerosort.Sort(values)
	took := time.Since(start)

	if *verify {
		if err := verifyResult(original, values); err != nil {
			log.Error("verification failed", zap.Error(err))
			if *dump {
				fmt.Fprintln(os.Stderr, "--- input ---")
				spew.Fdump(os.Stderr, original)
				fmt.Fprintln(os.Stderr, "--- output ---")
				spew.Fdump(os.Stderr, values)
			}
			os.Exit(1)
		}
		log.Info("verified", zap.Int("n", len(values)), zap.Duration("took", took))
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
}

func readValues(path string) ([]int64, error) {
	var r *os.File
	if path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var values []int64
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", line, err)
		}
		values = append(values, v)
	}
	return values, sc.Err()
}

func verifyResult(original, sorted []int64) error {
	if len(original) != len(sorted) {
		return fmt.Errorf("element count changed: %d -> %d", len(original), len(sorted))
	}
	if !sort.SliceIsSorted(sorted, func(i, j int) bool { return sorted[i] < sorted[j] }) {
		return fmt.Errorf("output is not sorted")
	}

	counts := make(map[int64]int, len(original))
	for _, v := range original {
		counts[v]++
	}
	for _, v := range sorted {
		counts[v]--
	}
	for v, c := range counts {
		if c != 0 {
			return fmt.Errorf("value %d appears %d more times in input than output", v, c)
		}
	}
	return nil
}
