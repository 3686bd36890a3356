// Package scoreboard records finished games in Redis.
package scoreboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/timpalpant/fifteen/gamestate"
	"github.com/timpalpant/fifteen/internal/match"
)

var ErrRecordNotFound = errors.New("game record not found")

const (
	gameKeyPrefix = "game:"
	gamesKey      = "games"
	tallyKey      = "tally"

	fieldHumanWins    = "human_wins"
	fieldComputerWins = "computer_wins"
	fieldDraws        = "draws"
)

// Record is a finished game as stored in Redis.
type Record struct {
	ID          string    `json:"id"`
	HumanPlayer int       `json:"human_player"`
	Moves       []int     `json:"moves"`
	Outcome     string    `json:"outcome"`
	FinishedAt  time.Time `json:"finished_at"`
}

// Tally counts finished games by result for the person at the console.
type Tally struct {
	HumanWins    int64
	ComputerWins int64
	Draws        int64
}

func (t Tally) String() string {
	return fmt.Sprintf("%d won, %d lost, %d drawn", t.HumanWins, t.ComputerWins, t.Draws)
}

type Scoreboard struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a Scoreboard. Game records expire after ttl, or never if
// ttl is 0; the tally and the list of game IDs never expire.
func New(client *redis.Client, ttl time.Duration) *Scoreboard {
	return &Scoreboard{
		client: client,
		ttl:    ttl,
	}
}

// Connect opens a client to the Redis server at addr and checks that
// it is reachable.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return conn, nil
}

// Record stores the result of a game and updates the tally.
func (that *Scoreboard) Record(ctx context.Context, result *match.Result) (*Record, error) {
	record := &Record{
		ID:          uuid.NewString(),
		HumanPlayer: result.HumanPlayer.Number(),
		Moves:       make([]int, len(result.Moves)),
		Outcome:     result.Outcome.String(),
		FinishedAt:  time.Now().UTC(),
	}

	for i, card := range result.Moves {
		record.Moves[i] = int(card)
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("could not marshal game record: %w", err)
	}

	field := fieldComputerWins
	switch {
	case result.Outcome == gamestate.Draw:
		field = fieldDraws
	case result.HumanWon():
		field = fieldHumanWins
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKeyPrefix+record.ID, recordJSON, that.ttl)
		pipe.RPush(ctx, gamesKey, record.ID)
		pipe.HIncrBy(ctx, tallyKey, field, 1)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record game: %w", err)
	}

	return record, nil
}

// Get returns the stored record of the game with the given ID.
func (that *Scoreboard) Get(ctx context.Context, id string) (*Record, error) {
	response, err := that.client.Get(ctx, gameKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRecordNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game %s: %w", id, err)
	}

	var record Record
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game record: %w", err)
	}

	return &record, nil
}

// Recent returns the IDs of the last n recorded games, most recent last.
// It returns no IDs if n is not positive.
func (that *Scoreboard) Recent(ctx context.Context, n int64) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}

	ids, err := that.client.LRange(ctx, gamesKey, -n, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return ids, nil
}

// Tally returns the number of games recorded for each result.
func (that *Scoreboard) Tally(ctx context.Context) (Tally, error) {
	counts, err := that.client.HGetAll(ctx, tallyKey).Result()
	if err != nil {
		return Tally{}, fmt.Errorf("failed to get tally: %w", err)
	}

	var tally Tally
	for field, dst := range map[string]*int64{
		fieldHumanWins:    &tally.HumanWins,
		fieldComputerWins: &tally.ComputerWins,
		fieldDraws:        &tally.Draws,
	} {
		value, ok := counts[field]
		if !ok {
			continue
		}

		if *dst, err = strconv.ParseInt(value, 10, 64); err != nil {
			return Tally{}, fmt.Errorf("invalid tally %s=%q: %w", field, value, err)
		}
	}

	return tally, nil
}
