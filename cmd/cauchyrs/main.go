// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command cauchyrs is a small demo driver for the cauchy/gf256 engine:
// it chunks one local file into data blocks, encodes parity for it,
// simulates erasing some blocks, decodes, and reports whether the
// recovered data matches the original. It is deliberately not a wire
// protocol or a production tool — block transport and index
// bookkeeping remain the caller's job per the engine's design.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/xtaci/cauchyrs/cauchy"
	"github.com/xtaci/cauchyrs/gf256"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "cauchyrs"
	myApp.Usage = "Cauchy Reed-Solomon erasure coding demo"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "file",
			Usage: "local file to encode",
		},
		cli.IntFlag{
			Name:  "datashard,ds",
			Value: 4,
			Usage: "number of original data blocks (N)",
		},
		cli.IntFlag{
			Name:  "parityshard,ps",
			Value: 4,
			Usage: "number of recovery blocks (M)",
		},
		cli.IntFlag{
			Name:  "blockbytes,b",
			Value: 4096,
			Usage: "bytes per block (B)",
		},
		cli.StringFlag{
			Name:  "erase",
			Value: "0,1",
			Usage: "comma-separated unified-index positions to erase from the codeword",
		},
		cli.BoolFlag{
			Name:  "quiet",
			Usage: "suppress per-block progress logging",
		},
		cli.StringFlag{
			Name:  "c",
			Value: "",
			Usage: "config from a JSON file, overrides the flags above",
		},
	}
	myApp.Action = run
	if err := myApp.Run(os.Args); err != nil {
		log.Printf("%+v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	config := Config{
		File:        c.String("file"),
		DataShard:   c.Int("datashard"),
		ParityShard: c.Int("parityshard"),
		BlockBytes:  c.Int("blockbytes"),
		Erase:       c.String("erase"),
		Quiet:       c.Bool("quiet"),
	}
	if path := c.String("c"); path != "" {
		if err := parseJSONConfig(&config, path); err != nil {
			return errors.Wrap(err, "loading config file")
		}
	}
	if config.File == "" {
		return errors.New("missing required -file flag")
	}

	if err := gf256.Init(); err != nil {
		return errors.Wrap(err, "initializing GF(256) tables")
	}
	ctx, err := gf256.Default()
	if err != nil {
		return err
	}
	if !config.Quiet {
		log.Printf("gf256 dispatch tier: %s", ctx.Tier())
	}

	f, err := os.Open(config.File)
	if err != nil {
		return errors.Wrap(err, "opening input file")
	}
	defer f.Close()

	originals, err := readBlocks(f, config.BlockBytes)
	if err != nil {
		return errors.Wrap(err, "reading input file")
	}
	for len(originals) < config.DataShard {
		originals = append(originals, make([]byte, config.BlockBytes))
	}
	if len(originals) > config.DataShard {
		return errors.Errorf("file needs %d data blocks of %d bytes, only %d fit -datashard",
			len(originals), config.BlockBytes, config.DataShard)
	}

	params := cauchy.Params{
		OriginalCount: config.DataShard,
		RecoveryCount: config.ParityShard,
		BlockBytes:    config.BlockBytes,
	}

	recovery := make([]byte, params.RecoveryCount*params.BlockBytes)
	if err := cauchy.Encode(ctx, params, originals, recovery); err != nil {
		return errors.Wrap(err, "encoding")
	}
	if !config.Quiet {
		log.Printf("encoded %d data blocks into %d recovery blocks (%d bytes each)",
			params.OriginalCount, params.RecoveryCount, params.BlockBytes)
	}

	erase, err := parseErasures(config.Erase)
	if err != nil {
		return errors.Wrap(err, "parsing -erase")
	}

	codeword := make([]cauchy.Block, 0, params.Total())
	for i, o := range originals {
		codeword = append(codeword, cauchy.Block{Index: params.OriginalBlockIndex(i), Data: append([]byte(nil), o...)})
	}
	for r := 0; r < params.RecoveryCount; r++ {
		row := recovery[r*params.BlockBytes : (r+1)*params.BlockBytes]
		codeword = append(codeword, cauchy.Block{Index: params.RecoveryBlockIndex(r), Data: append([]byte(nil), row...)})
	}

	erased := make(map[int]bool, len(erase))
	for _, idx := range erase {
		erased[idx] = true
	}
	survivors := make([]cauchy.Block, 0, params.Total())
	for _, b := range codeword {
		if !erased[b.Index] {
			survivors = append(survivors, b)
		}
	}
	if !config.Quiet {
		log.Printf("simulated erasure of blocks %v, %d of %d survive", erase, len(survivors), params.Total())
	}

	if err := cauchy.Decode(ctx, params, survivors); err != nil {
		return errors.Wrap(err, "decoding")
	}

	ok := true
	for _, b := range survivors {
		if b.Index >= params.OriginalCount {
			continue
		}
		if !bytes.Equal(b.Data, originals[b.Index]) {
			ok = false
			log.Printf("MISMATCH at original index %d", b.Index)
		}
	}
	if ok {
		fmt.Println("OK: all data blocks recovered correctly")
		return nil
	}
	return errors.New("decode did not fully recover the original data")
}

func parseErasures(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid index %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}
