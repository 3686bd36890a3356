// Script to build and solve the game tree, then print one sampled game.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	_ "net/http/pprof"

	"github.com/golang/glog"

	"github.com/timpalpant/fifteen"
	"github.com/timpalpant/fifteen/gamestate"
)

func main() {
	seed := flag.Int64("seed", 123, "Random seed")
	optimal := flag.Bool("optimal", false, "Sample moves for both players from the optimal strategy")
	flag.Parse()
	defer glog.Flush()
	go http.ListenAndServe("localhost:4123", nil)

	tree := fifteen.BuildAndResolve()
	fmt.Printf("%d terminal nodes.\n", fifteen.CountTerminalNodes(tree))

	var s fifteen.Strategy = fifteen.NewRandomStrategy(rand.New(rand.NewSource(*seed)))
	if *optimal {
		s = fifteen.OptimalStrategy{}
	}

	leaf, err := fifteen.SampleHistory(tree, [2]fifteen.Strategy{s, s})
	if err != nil {
		glog.Fatal(err)
	}

	for i, card := range leaf.History() {
		player := gamestate.PlayerOne
		if i%2 == 1 {
			player = gamestate.PlayerTwo
		}

		fmt.Printf("Turn %d: %v selects %v\n", i+1, player, card)
	}

	fmt.Printf("Result: %v\n", leaf.Outcome())
}
