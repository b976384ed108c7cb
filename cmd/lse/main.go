// Command lse reduces log-scale values from the command line or stdin.
//
// Usage:
//
//	lse [flags] [value ...]
//
// Without arguments it reads whitespace-separated values from stdin.
// Values may include inf, -inf and nan.
//
// Examples:
//
//	lse -1053.2 -1051.7 -1060.0
//	lse -pair 0.5 1.0
//	seq 1 9 | awk '{print log($1)}' | lse
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/cwbudde/algo-logsumexp"
)

func main() {
	var (
		pair = flag.Bool("pair", false, "reduce exactly two values with the pairwise LnAddExp form")
		f32  = flag.Bool("f32", false, "reduce in float32 instead of float64")
	)

	flagArgs, valueArgs := splitArgs(os.Args[1:])
	_ = flag.CommandLine.Parse(flagArgs)

	values, err := readValues(valueArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lse: %v\n", err)
		os.Exit(1)
	}

	if *pair {
		if len(values) != 2 {
			fmt.Fprintf(os.Stderr, "lse: -pair needs exactly 2 values, got %d\n", len(values))
			os.Exit(1)
		}

		if *f32 {
			fmt.Println(logsumexp.LnAddExp(float32(values[0]), float32(values[1])))
		} else {
			fmt.Println(logsumexp.LnAddExp(values[0], values[1]))
		}

		return
	}

	if *f32 {
		v32 := make([]float32, len(values))
		for i, v := range values {
			v32[i] = float32(v)
		}

		fmt.Println(logsumexp.LnSumExp(v32))

		return
	}

	fmt.Println(logsumexp.LnSumExp(values))
}

// splitArgs separates leading flags from the value list, cutting at "--" or
// at the first argument that parses as a float. Handing the whole command
// line to flag.Parse would reject negative values like -1053.2 as unknown
// flags, and log-scale inputs are negative far more often than not.
func splitArgs(args []string) (flags, values []string) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:]
		}

		if _, err := strconv.ParseFloat(a, 64); err == nil {
			return args[:i], args[i:]
		}
	}

	return args, nil
}

// readValues parses args, or stdin when args is empty.
func readValues(args []string) ([]float64, error) {
	if len(args) > 0 {
		out := make([]float64, len(args))

		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return nil, fmt.Errorf("bad value %q: %w", a, err)
			}

			out[i] = v
		}

		return out, nil
	}

	var out []float64

	sc := bufio.NewScanner(os.Stdin)
	sc.Split(bufio.ScanWords)

	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q: %w", sc.Text(), err)
		}

		out = append(out, v)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
