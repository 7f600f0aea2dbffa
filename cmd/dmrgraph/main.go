// Command dmrgraph analyzes DMR–gene association tables: it builds one
// bipartite graph per timepoint, decomposes it, enumerates bicliques,
// classifies edges and computes a dominating set, then writes JSON graph
// payloads and SQLite rows.
//
//	dmrgraph analyze -c run.yaml
//	dmrgraph analyze -t P21=p21.tsv -t P28=p28.tsv --db out.db
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
