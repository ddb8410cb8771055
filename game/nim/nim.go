package nim

import (
	"fmt"
	"strconv"
	"strings"

	"montecarlo/game"
	"montecarlo/utils"
)

// Move removes Take objects from heap Heap.
type Move struct {
	Heap int
	Take int
}

func (m Move) String() string {
	return fmt.Sprintf("%d:%d", m.Heap, m.Take)
}

// State is an N-player Nim position: players take turns removing objects from a
// single heap, whoever takes the last object wins and every other player loses.
type State struct {
	heaps   []int
	players int
	toMove  game.Player
	last    game.Player // player who made the previous move, -1 before any move
}

func New(players int, heaps ...int) (*State, error) {
	if players < 2 {
		return nil, fmt.Errorf("nim: need at least two players, got %d", players)
	}
	for i, h := range heaps {
		if h < 0 {
			return nil, fmt.Errorf("nim: heap %d has negative size %d", i, h)
		}
	}
	return &State{
		heaps:   append([]int(nil), heaps...),
		players: players,
		last:    -1,
	}, nil
}

// Parse reads comma separated heap sizes, e.g. "3,4,5".
func Parse(players int, notation string) (*State, error) {
	var heaps []int
	for _, field := range strings.Split(notation, ",") {
		h, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("nim: parsing heap %q: %w", field, err)
		}
		heaps = append(heaps, h)
	}
	return New(players, heaps...)
}

func (s *State) Players() int {
	return s.players
}

func (s *State) Player() game.Player {
	return s.toMove
}

func (s *State) IsTerminal() bool {
	for _, h := range s.heaps {
		if h > 0 {
			return false
		}
	}
	return true
}

func (s *State) LegalMoves() []game.Move {
	var moves []game.Move
	for i, h := range s.heaps {
		for take := 1; take <= h; take++ {
			moves = append(moves, Move{Heap: i, Take: take})
		}
	}
	return moves
}

func (s *State) Play(move game.Move) (game.State, error) {
	if !utils.Contains(s.LegalMoves(), move) {
		return nil, fmt.Errorf("nim: %v in %s: %w", move, s, game.ErrIllegalMove)
	}
	m := move.(Move)

	next := &State{
		heaps:   append([]int(nil), s.heaps...),
		players: s.players,
		toMove:  game.Player((int(s.toMove) + 1) % s.players),
		last:    s.toMove,
	}
	next.heaps[m.Heap] -= m.Take
	return next, nil
}

func (s *State) Outcome() game.Outcome {
	if s.last < 0 {
		return game.Draw(s.players)
	}
	return game.Win(s.last, s.players)
}

func (s *State) String() string {
	fields := make([]string, len(s.heaps))
	for i, h := range s.heaps {
		fields[i] = strconv.Itoa(h)
	}
	return strings.Join(fields, ",")
}
