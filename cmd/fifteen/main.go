// Play the game of fifteen against a perfect opponent at the console.
package main

import (
	"context"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/fifteen"
	"github.com/timpalpant/fifteen/gamestate"
	"github.com/timpalpant/fifteen/internal/config"
	"github.com/timpalpant/fifteen/internal/match"
	"github.com/timpalpant/fifteen/internal/scoreboard"
)

const redisTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "YAML config file (optional)")
	player := flag.Int("player", -1, "Seat to play: 1, 2, or 0 to ask. Overrides the config file")
	numGames := flag.Int("num_games", 1, "Number of games to play")
	flag.Usage = config.Usage(flag.Usage)
	flag.Parse()
	defer glog.Flush()

	conf, err := config.Load(*configPath)
	if err != nil {
		glog.Fatal(err)
	}

	if *player >= 0 {
		conf.HumanPlayer = *player
		if err := conf.Validate(); err != nil {
			glog.Fatal(err)
		}
	}

	if conf.DebugAddr != "" {
		go http.ListenAndServe(conf.DebugAddr, nil)
	}

	start := time.Now()
	root := fifteen.BuildAndResolve()
	glog.Infof("Value: %v", root.Outcome())
	glog.Infof("Time: %v", time.Since(start))

	var board *scoreboard.Scoreboard
	if conf.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
		client, err := scoreboard.Connect(ctx, conf.Redis.GetRedisAddr())
		cancel()
		if err != nil {
			glog.Fatalf("Unable to open scoreboard: %v", err)
		}
		defer client.Close()

		board = scoreboard.New(client, conf.Redis.TTL)
	}

	console := match.NewConsole(os.Stdin, os.Stdout)
	for i := 0; i < *numGames; i++ {
		var seat gamestate.Player
		if conf.HumanPlayer == 0 {
			seat, err = console.AskSeat()
			if err != nil {
				glog.Infof("No seat chosen, exiting: %v", err)
				return
			}
		} else {
			seat = gamestate.Player(conf.HumanPlayer - 1)
		}

		m := match.New(root, seat, console, fifteen.OptimalStrategy{}, os.Stdout)
		result, err := m.Play()
		if errors.Cause(err) == match.ErrNoInput {
			glog.Info("Input closed, exiting")
			return
		} else if err != nil {
			glog.Fatal(err)
		}

		glog.Infof("Game %d over: %v after %v", i+1, result.Outcome, result.Moves)
		if board != nil {
			recordResult(board, result)
		}
	}
}

func recordResult(board *scoreboard.Scoreboard, result *match.Result) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	record, err := board.Record(ctx, result)
	if err != nil {
		glog.Errorf("Unable to record game: %v", err)
		return
	}

	tally, err := board.Tally(ctx)
	if err != nil {
		glog.Errorf("Unable to read tally: %v", err)
		return
	}

	glog.Infof("Recorded game %s. All games: %v", record.ID, tally)
}
