// Command pack12 decodes a packed 12-bit sample capture and writes the two
// derived views as text: the 32 largest samples in ascending order, then the
// last 32 samples in arrival order.
//
// Usage:
//
//	pack12 [-compression none|zstd|s2|lz4] <input> <output>
//
// "-" selects stdin or stdout. When -compression is not given, it is inferred
// from the input file extension (.zst, .s2, .lz4).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/arloliu/pack12"
	"github.com/arloliu/pack12/format"
)

func main() {
	compressionName := flag.String("compression", "", "capture compression: none, zstd, s2 or lz4 (default: inferred from input extension)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-compression none|zstd|s2|lz4] <input> <output>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	compression, err := resolveCompression(*compressionName, inputPath)
	if err != nil {
		log.Fatal(err)
	}

	input, err := openInput(inputPath)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}

	proc, err := pack12.NewProcessor(pack12.WithCompression(compression))
	if err != nil {
		log.Fatal(err)
	}

	result, err := proc.Process(input)
	closeErr := input.Close()
	if err != nil {
		log.Fatalf("process capture: %v", err)
	}
	if closeErr != nil {
		log.Fatalf("close input: %v", closeErr)
	}

	output, err := openOutput(outputPath)
	if err != nil {
		log.Fatalf("open output: %v", err)
	}

	if err := pack12.WriteReport(output, result); err != nil {
		output.Close()
		log.Fatalf("write report: %v", err)
	}
	if err := output.Close(); err != nil {
		log.Fatalf("close output: %v", err)
	}
}

// resolveCompression picks the codec from the flag when given, otherwise from
// the input file extension. Reads from stdin default to no compression.
func resolveCompression(name, inputPath string) (format.CompressionType, error) {
	if name != "" {
		return format.ParseCompression(name)
	}
	if inputPath == "-" {
		return format.CompressionNone, nil
	}

	return format.CompressionForExt(filepath.Ext(inputPath)), nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	return os.Open(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}

	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
