// Command gen writes random sock inputs for sockMerchant.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/klauspost/compress/zstd"
)

type options struct {
	Count  int    `short:"c" long:"count" description:"Number of socks" default:"100"`
	Colors int    `short:"k" long:"colors" description:"Number of distinct colors" default:"10"`
	Seed   int64  `short:"s" long:"seed" description:"Random seed" default:"1"`
	Out    string `short:"o" long:"out" description:"Output file, - for stdout" default:"-"`
	Zstd   bool   `short:"z" long:"zstd" description:"zstd compress the output (implied for *.zst files)"`
}

// generate writes count random colors in [1, colors] in the
// length-prefixed format.
func generate(w io.Writer, count, colors int, seed int64) error {
	if count < 0 || colors <= 0 {
		return fmt.Errorf("invalid count %d or colors %d", count, colors)
	}
	rnd := rand.New(rand.NewSource(seed))

	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(count))
	bw.WriteByte('\n')
	for i := 0; i < count; i++ {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(1 + rnd.Intn(colors)))
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

func write(opts options, stdout io.Writer) error {
	out := stdout
	if opts.Out != "-" {
		file, err := os.Create(opts.Out)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
		opts.Zstd = opts.Zstd || strings.HasSuffix(opts.Out, ".zst")
	}

	if !opts.Zstd {
		return generate(out, opts.Count, opts.Colors, opts.Seed)
	}
	zstdWriter, err := zstd.NewWriter(out)
	if err != nil {
		return err
	}
	if err := generate(zstdWriter, opts.Count, opts.Colors, opts.Seed); err != nil {
		zstdWriter.Close()
		return err
	}
	return zstdWriter.Close()
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := write(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing socks: %v\n", err)
		os.Exit(1)
	}
}
