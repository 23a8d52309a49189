// Command dapd runs the reactor bound to a TCP address with the example
// Backend, giving the library a runnable demonstration. It is explicitly
// the kind of external collaborator the reactor's core design stays
// agnostic of.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"goa.design/clue/log"
	"goa.design/dap-reactor/dap/reactor"
	"goa.design/dap-reactor/dap/telemetry"
	"goa.design/dap-reactor/example"
)

func main() {
	var (
		addrF = flag.String("addr", ":4711", "TCP address to bind")
		dbgF  = flag.Bool("debug", false, "Enable debug-level logging")
	)
	flag.Parse()

	format := log.FormatJSON
	if log.IsTerminal() {
		format = log.FormatTerminal
	}
	ctx := log.Context(context.Background(), log.WithFormat(format))
	if *dbgF {
		ctx = log.Context(ctx, log.WithDebug())
	}
	ctx, cancel := context.WithCancel(ctx)

	tel := telemetry.NewClueTelemetry("goa.design/dap-reactor")
	re := reactor.New(reactor.Options{
		Addr:       *addrF,
		NewBackend: example.NewBackend,
		Logger:     tel,
		Metrics:    tel,
		Tracer:     tel,
	})

	errc := make(chan error, 1)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errc <- fmt.Errorf("%s", <-c)
	}()
	go func() {
		errc <- re.Serve(ctx)
	}()

	log.Printf(ctx, "dap-reactor listening on %s", *addrF)
	log.Printf(ctx, "exiting (%v)", <-errc)
	cancel()
}
