// Script to count the nodes in the complete game tree and report how
// long it takes to build and solve.
package main

import (
	"expvar"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/golang/glog"

	"github.com/timpalpant/fifteen"
)

func main() {
	debugAddr := flag.String("debug_addr", "localhost:4125", "Address to serve pprof and expvar on")
	validate := flag.Bool("validate", false, "Check the invariants of every node after solving")
	flag.Parse()
	defer glog.Flush()

	if *debugAddr != "" {
		go http.ListenAndServe(*debugAddr, nil)
	}

	start := time.Now()
	root := fifteen.NewGame()
	root.BuildTree()
	glog.Infof("Built tree in %v", time.Since(start))
	value := root.Resolve()
	elapsed := time.Since(start)

	glog.Infof("Value: %v", value)
	glog.Infof("Time: %v", elapsed)
	total := root.CountNodes()
	glog.Infof("%d nodes in game (%.1f nodes/sec)", total, float64(total)/elapsed.Seconds())
	glog.Infof("%d terminal nodes", fifteen.CountTerminalNodes(root))
	glog.V(1).Infof("expvar: nodes_built=%v terminal=%v resolved=%v",
		expvar.Get("nodes_built"), expvar.Get("nodes_built/terminal"), expvar.Get("nodes_resolved"))

	for _, move := range root.GetChildren() {
		glog.Infof("Opening %v: value %v, %d nodes", move.Card, move.Node.Outcome(), move.Node.CountNodes())
	}

	if *validate {
		if err := fifteen.Validate(root); err != nil {
			glog.Fatalf("Invalid game tree: %+v", err)
		}

		glog.Info("Game tree is valid")
	}
}
