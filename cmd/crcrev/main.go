// Command-line entry point for crcrev.
//
// Usage:
//
//	crcrev reverse -width 32 [-poly HEX] [-init HEX] [-xorout HEX]
//	               [-refin true|false] [-refout true|false]
//	               [-preset NAME] file:checksum [file:checksum ...]
//
// Each positional argument names a file and, separated by a colon, its
// known checksum in hex. -preset seeds width/poly/init/xorout/refin/refout
// from the built-in catalogue; any flag given explicitly overrides the
// preset's value for that field.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"

	"crcrev/internal/crcmodel"
	"crcrev/internal/crcrev"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "crcrev - commands:")
	fmt.Fprintln(w, "  reverse  - recover CRC parameters from file:checksum pairs")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  crcrev reverse -width 32 [-poly HEX] [-init HEX] [-xorout HEX]")
	fmt.Fprintln(w, "                 [-refin true|false] [-refout true|false] [-preset NAME]")
	fmt.Fprintln(w, "                 [-v] file:checksum [file:checksum ...]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Known presets:", strings.Join(crcmodel.PresetNames(), ", "))
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	switch strings.ToLower(os.Args[1]) {
	case "reverse":
		runReverse(os.Args[2:])
	case "-h", "--help", "help":
		usage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		usage(os.Stderr)
		os.Exit(2)
	}
}

func runReverse(args []string) {
	fs := flag.NewFlagSet("reverse", flag.ExitOnError)
	width := fs.Int("width", 0, "CRC width in bits")
	polyHex := fs.String("poly", "", "known generator polynomial, hex")
	initHex := fs.String("init", "", "known initial register value, hex")
	xoroutHex := fs.String("xorout", "", "known output XOR mask, hex")
	refinStr := fs.String("refin", "", "known refin: true or false")
	refoutStr := fs.String("refout", "", "known refout: true or false")
	preset := fs.String("preset", "", "seed parameters from a built-in preset")
	verbose := fs.Bool("v", false, "print each candidate as it is found")
	_ = fs.Parse(args)

	b := crcrev.Builder{Width: *width}

	if *preset != "" {
		p, ok := crcmodel.LookupPreset(*preset)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown preset %q\n\n", *preset)
			usage(os.Stderr)
			os.Exit(2)
		}
		b.Width = p.Width
		b.Poly, b.Init, b.XorOut = p.Poly, p.Init, p.XorOut
		b.RefIn, b.RefOut = p.RefIn, p.RefOut
	}

	if *width != 0 {
		b.Width = *width
	}
	if v, ok := parseHex(*polyHex); ok {
		b.Poly = v
	}
	if v, ok := parseHex(*initHex); ok {
		b.Init = v
	}
	if v, ok := parseHex(*xoroutHex); ok {
		b.XorOut = v
	}
	if *refinStr != "" {
		v, err := strconv.ParseBool(*refinStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -refin: %v\n", err)
			os.Exit(2)
		}
		b.RefIn = &v
	}
	if *refoutStr != "" {
		v, err := strconv.ParseBool(*refoutStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -refout: %v\n", err)
			os.Exit(2)
		}
		b.RefOut = &v
	}

	samples, err := parseSamples(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	var diag *log.Logger
	if *verbose {
		diag = log.New(os.Stderr, "crcrev: ", 0)
	}

	found := 0
	for r := range crcrev.Reverse(b, samples, verbosity(*verbose), diag) {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", r.Err)
			os.Exit(1)
		}
		fmt.Println(r.Spec.String())
		found++
	}
	if found == 0 {
		fmt.Fprintln(os.Stderr, "no consistent CRC parameters found")
		os.Exit(1)
	}
}

func verbosity(v bool) int {
	if v {
		return 1
	}
	return 0
}

func parseHex(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}
	v, ok := new(big.Int).SetString(strings.TrimPrefix(s, "0x"), 16)
	if !ok {
		fmt.Fprintf(os.Stderr, "invalid hex value %q\n", s)
		os.Exit(2)
	}
	return v, true
}

func parseSamples(args []string) ([]crcrev.Sample, error) {
	samples := make([]crcrev.Sample, 0, len(args))
	for _, a := range args {
		idx := strings.LastIndex(a, ":")
		if idx < 0 {
			return nil, fmt.Errorf("crcrev: malformed file:checksum argument %q", a)
		}
		path, chkHex := a[:idx], a[idx+1:]
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("crcrev: reading %s: %w", path, err)
		}
		chk, ok := new(big.Int).SetString(strings.TrimPrefix(chkHex, "0x"), 16)
		if !ok {
			return nil, fmt.Errorf("crcrev: invalid checksum hex %q for %s", chkHex, path)
		}
		samples = append(samples, crcrev.Sample{Bytes: data, Checksum: chk})
	}
	return samples, nil
}
