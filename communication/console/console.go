package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"war/communication"
	"war/game"

	"github.com/rs/zerolog/log"
)

// Console plays a game over a line-oriented terminal.
type Console struct {
	*Presenter
	in    *bufio.Reader
	lines chan inputLine
	once  sync.Once
}

type inputLine struct {
	text string
	err  error
}

var _ communication.Communicator = (*Console)(nil)

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		Presenter: NewPresenter(out),
		in:        bufio.NewReader(in),
		lines:     make(chan inputLine),
	}
}

// listen reads lines in the background so a prompt can give up on a
// cancelled context. The channel is closed after the first read error.
func (c *Console) listen() {
	go func() {
		defer close(c.lines)
		for {
			text, err := c.in.ReadString('\n')
			c.lines <- inputLine{text: text, err: err}
			if err != nil {
				return
			}
		}
	}()
}

// readLine prompts and reads one line without its line terminator. A final
// line without a newline is still returned; only an empty read at EOF is
// reported as game.ErrInputClosed. A cancelled context returns its error
// while the read is still pending.
func (c *Console) readLine(ctx context.Context, prompt string) (string, error) {
	c.once.Do(c.listen)
	c.printf("%s", prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", game.ErrInputClosed
		}
		if l.err != nil {
			if !errors.Is(l.err, io.EOF) {
				return "", fmt.Errorf("read input: %w", l.err)
			}
			if l.text == "" {
				return "", game.ErrInputClosed
			}
		}
		return strings.TrimSpace(l.text), nil
	}
}

func (c *Console) readInt(ctx context.Context, prompt string) (int, error) {
	line, err := c.readLine(ctx, prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", game.ErrMalformedNumber, line)
	}
	return n, nil
}

func setupError(field string, err error) error {
	var setupErr *game.SetupError
	if errors.As(err, &setupErr) {
		return err
	}
	return &game.SetupError{Field: field, Err: err}
}

func (c *Console) CollectSetup(ctx context.Context, rules game.SetupRules, missions game.Source) ([]game.Player, *game.Registry, error) {
	c.Welcome()

	numPlayers, err := c.readInt(ctx, fmt.Sprintf("Enter the number of PLAYERS (%d to %d): ", rules.MinPlayers, rules.MaxPlayers))
	if err != nil {
		return nil, nil, setupError("players", err)
	}
	if err := rules.ValidatePlayerCount(numPlayers); err != nil {
		return nil, nil, err
	}

	c.Section("PLAYER REGISTRATION AND MISSIONS")
	players := make([]game.Player, 0, numPlayers)
	colors := make([]string, 0, numPlayers)
	for i := 0; i < numPlayers; i++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		c.printf("\n== PLAYER #%d ==\n", i+1)
		color, err := c.readPlayerColor(ctx, rules, colors)
		if err != nil {
			return nil, nil, setupError("color", err)
		}

		player := game.NewPlayer(color, game.AssignMission(missions))
		players = append(players, player)
		colors = append(colors, player.Color)
		c.AnnounceMission(player)
		log.Debug().Str("color", player.Color).Stringer("mission", player.Mission.Kind).Msg("player registered")
	}

	numTerritories, err := c.readInt(ctx, fmt.Sprintf("\nEnter the total number of TERRITORIES for the map (min. %d): ", rules.MinTerritories))
	if err != nil {
		return nil, nil, setupError("territories", err)
	}
	if err := rules.ValidateTerritoryCount(numTerritories); err != nil {
		return nil, nil, err
	}

	c.Section("INITIAL TERRITORY REGISTRATION")
	territories := make([]*game.Territory, 0, min(numTerritories, 64))
	for i := 0; i < numTerritories; i++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		c.printf("\n== TERRITORY #%d ==\n", i+1)
		territory, err := c.readTerritory(ctx, rules)
		if err != nil {
			return nil, nil, setupError("territory", err)
		}
		territories = append(territories, territory)
	}

	return players, game.NewRegistry(territories...), nil
}

// readPlayerColor asks again until the color is non-empty and free.
func (c *Console) readPlayerColor(ctx context.Context, rules game.SetupRules, taken []string) (string, error) {
	for {
		color, err := c.readLine(ctx, "Player color: ")
		if err != nil {
			return "", err
		}
		if err := rules.ValidatePlayerColor(color, taken); err != nil {
			c.ReportError(err)
			continue
		}
		return color, nil
	}
}

func (c *Console) readTerritory(ctx context.Context, rules game.SetupRules) (*game.Territory, error) {
	name, err := c.readLine(ctx, "Name: ")
	if err != nil {
		return nil, err
	}

	var color string
	for color == "" {
		if color, err = c.readLine(ctx, "Color (Owner): "); err != nil {
			return nil, err
		}
		if color == "" {
			c.ReportError(game.ErrEmptyColor)
		}
	}

	line, err := c.readLine(ctx, "Number of troops (min 1): ")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		n = 0
	}
	troops, defaulted := rules.Troops(n)
	if defaulted {
		c.Notice(fmt.Sprintf("Invalid. Troops set to %d.", troops))
	}
	return game.NewTerritory(name, color, troops), nil
}

// RequestSelection reads the attacker and defender of a round. Anything but
// a number for the attacker, or 0, ends the game; an unreadable defender is
// passed on as 0 so the round is rejected.
func (c *Console) RequestSelection(ctx context.Context, round, territories int) (communication.Selection, error) {
	if err := ctx.Err(); err != nil {
		return communication.AbortSelection, err
	}
	c.RoundHeader(round)

	line, err := c.readLine(ctx, fmt.Sprintf("Attacker (1 to %d, 0 to quit): ", territories))
	if err != nil {
		if errors.Is(err, game.ErrInputClosed) {
			return communication.AbortSelection, nil
		}
		return communication.AbortSelection, err
	}
	attacker, err := strconv.Atoi(line)
	if err != nil || attacker == 0 {
		return communication.AbortSelection, nil
	}

	line, err = c.readLine(ctx, fmt.Sprintf("Defender (1 to %d): ", territories))
	if err != nil && !errors.Is(err, game.ErrInputClosed) {
		return communication.AbortSelection, err
	}
	defender, err := strconv.Atoi(line)
	if err != nil {
		defender = 0
	}
	return communication.Selection{Attacker: attacker, Defender: defender}, nil
}
