package tictactoe

import (
	"fmt"
	"strings"

	"montecarlo/game"
	"montecarlo/utils"
)

const (
	Players = 2
	X       = game.Player(0) // X always moves first
	O       = game.Player(1)
)

const empty = -1

// Move is a cell index, 0 is a1 (top-left), 8 is c3.
type Move int

func (m Move) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(m%3), m/3+1)
}

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// State is an immutable tic-tac-toe position.
type State struct {
	board  [9]game.Player
	toMove game.Player
	winner game.Player
	filled int
}

func New() *State {
	s := &State{toMove: X, winner: empty}
	for i := range s.board {
		s.board[i] = empty
	}
	return s
}

// Parse reads 9 cells row by row, 'x', 'o' or '.', slashes are ignored ("x.o/.x./..o").
// The side to move follows from the piece count.
func Parse(notation string) (*State, error) {
	cells := strings.ReplaceAll(strings.ToLower(notation), "/", "")
	if len(cells) != 9 {
		return nil, fmt.Errorf("tictactoe: expected 9 cells, got %d in %q", len(cells), notation)
	}

	s := New()
	xs, os := 0, 0
	for i, c := range cells {
		switch c {
		case 'x':
			s.board[i] = X
			xs++
		case 'o':
			s.board[i] = O
			os++
		case '.', '-':
		default:
			return nil, fmt.Errorf("tictactoe: unexpected cell %q in %q", c, notation)
		}
	}
	if xs != os && xs != os+1 {
		return nil, fmt.Errorf("tictactoe: unreachable piece count x=%d o=%d", xs, os)
	}

	s.filled = xs + os
	if xs > os {
		s.toMove = O
	}
	s.winner = s.findWinner()
	return s, nil
}

func (s *State) findWinner() game.Player {
	for _, line := range lines {
		p := s.board[line[0]]
		if p != empty && p == s.board[line[1]] && p == s.board[line[2]] {
			return p
		}
	}
	return empty
}

func (s *State) Player() game.Player {
	return s.toMove
}

func (s *State) IsTerminal() bool {
	return s.winner != empty || s.filled == len(s.board)
}

func (s *State) LegalMoves() []game.Move {
	if s.IsTerminal() {
		return nil
	}
	moves := make([]game.Move, 0, len(s.board)-s.filled)
	for i, p := range s.board {
		if p == empty {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

func (s *State) Play(move game.Move) (game.State, error) {
	if !utils.Contains(s.LegalMoves(), move) {
		return nil, fmt.Errorf("tictactoe: %v in %s: %w", move, s, game.ErrIllegalMove)
	}

	next := *s
	next.board[move.(Move)] = s.toMove
	next.filled++
	next.toMove = 1 - s.toMove
	next.winner = next.findWinner()
	return &next, nil
}

func (s *State) Outcome() game.Outcome {
	if s.winner != empty {
		return game.Win(s.winner, Players)
	}
	return game.Draw(Players)
}

func (s *State) String() string {
	var b strings.Builder
	for i, p := range s.board {
		if i > 0 && i%3 == 0 {
			b.WriteByte('/')
		}
		switch p {
		case X:
			b.WriteByte('x')
		case O:
			b.WriteByte('o')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}
