package match

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/fifteen"
	"github.com/timpalpant/fifteen/cards"
	"github.com/timpalpant/fifteen/gamestate"
)

// ErrNoInput is returned when the console closes before a selection is made.
var ErrNoInput = errors.New("no input")

// Console is a fifteen.Strategy that asks a person for each move.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Select prompts until the person names one of the remaining cards.
func (c *Console) Select(node *fifteen.GameNode) (*fifteen.GameNode, error) {
	for {
		selection, err := c.prompt("Which card would you like to pick? ")
		if err != nil {
			return nil, err
		}

		if selection < int(cards.MinCard) || selection > int(cards.MaxCard) {
			fmt.Fprintf(c.out, "%d is not a card, choose one of %v\n",
				selection, node.GetRemaining())
			continue
		}

		child, err := node.Child(cards.Card(selection))
		if err != nil {
			glog.V(1).Infof("Rejected selection %d: %v", selection, err)
			fmt.Fprintf(c.out, "%d is not available, choose one of %v\n",
				selection, node.GetRemaining())
			continue
		}

		return child, nil
	}
}

// AskSeat asks which player the person would like to be.
func (c *Console) AskSeat() (gamestate.Player, error) {
	for {
		selection, err := c.prompt("Which Player would you like to be, 1 or 2? ")
		if err != nil {
			return 0, err
		}

		switch selection {
		case 1:
			return gamestate.PlayerOne, nil
		case 2:
			return gamestate.PlayerTwo, nil
		}

		fmt.Fprintf(c.out, "Please enter 1 or 2\n")
	}
}

func (c *Console) prompt(msg string) (int, error) {
	for {
		fmt.Fprint(c.out, msg)
		result, err := c.in.ReadString('\n')
		result = strings.TrimSpace(result)
		if err != nil && (err != io.EOF || result == "") {
			if err == io.EOF {
				return 0, ErrNoInput
			}

			return 0, errors.Wrap(err, "error reading selection")
		}

		i, convErr := strconv.Atoi(result)
		if convErr != nil {
			fmt.Fprintf(c.out, "Invalid selection: %q\n", result)
			if err == io.EOF {
				return 0, ErrNoInput
			}

			continue
		}

		return i, nil
	}
}
