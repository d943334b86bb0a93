// corvid is a simple UCI/console chess engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/engine/console"
	"github.com/corvidchess/corvid/pkg/engine/uci"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/seekerror/logw"
)

var (
	depth = flag.Uint("depth", 0, "Search depth limit (zero for no limit)")
	hash  = flag.Uint("hash", 16, "Transposition table size in MB")
	noise = flag.Uint("noise", 10, "Evaluation noise in millipawns (zero if deterministic)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: corvid [options]

corvid is a simple UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "corvid", "corvidchess", eval.Material{},
		engine.WithOptions(engine.Options{Depth: *depth, Hash: *hash, Noise: *noise}),
		engine.WithZobrist(time.Now().UnixNano()))
	e.SetHash(*hash)
	e.SetNoise(*noise)

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		// Use UCI protocol.

		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
