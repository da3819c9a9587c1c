// Package uci implements a line-oriented Universal Chess Interface loop on
// top of the core position engine and the fixed-depth negamax evaluator.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/rookmate/chesscore"
	"github.com/rookmate/chesscore/internal/eval"
	"github.com/rookmate/chesscore/internal/notation"
	"github.com/rookmate/chesscore/internal/store"
)

// SessionRecorder persists the plies a running Engine plays. It is the
// store.Store method set, narrowed so this package only depends on what it
// actually calls.
type SessionRecorder interface {
	RecordPly(sessionID string, p store.Ply) error
}

// Engine drives the UCI protocol loop against a single in-memory position.
type Engine struct {
	position *chess.Position
	depth    int
	log      *zap.Logger

	recorder  SessionRecorder
	sessionID string
	ply       int
}

// New returns an Engine with the standard opening position loaded and the
// given search depth and logger.
func New(depth int, log *zap.Logger) *Engine {
	return &Engine{
		position: chess.StartingPosition(),
		depth:    depth,
		log:      log,
	}
}

// WithSession attaches a session recorder: every move the Run loop applies
// gets logged under sessionID. Passing a nil recorder disables logging.
func (e *Engine) WithSession(recorder SessionRecorder, sessionID string) *Engine {
	e.recorder = recorder
	e.sessionID = sessionID
	return e
}

func (e *Engine) recordMove(mv chess.Move) {
	if e.recorder == nil || e.sessionID == "" {
		return
	}
	e.ply++
	if err := e.recorder.RecordPly(e.sessionID, store.Ply{
		FEN:       e.position.FEN(),
		Move:      mv.UCI(),
		PlyNumber: e.ply,
	}); err != nil {
		e.log.Warn("recording ply failed", zap.Error(err))
	}
}

// Run reads UCI commands from r and writes responses to w until "quit" or
// end of input.
func (e *Engine) Run(r io.Reader, w io.Writer) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "uci":
			e.handleUCI(w)
		case "isready":
			fmt.Fprintln(w, "readyok")
		case "ucinewgame":
			e.position = chess.StartingPosition()
		case "position":
			e.handlePosition(args)
		case "go":
			e.handleGo(w, args)
		case "d":
			fmt.Fprint(w, e.position.Draw())
		case "perft":
			e.handlePerft(w, args)
		case "quit":
			return
		default:
			e.log.Debug("unrecognized command", zap.String("cmd", cmd))
		}
	}
}

func (e *Engine) handleUCI(w io.Writer) {
	fmt.Fprintln(w, "id name chesscore")
	fmt.Fprintln(w, "id author rookmate")
	fmt.Fprintln(w, "option name Depth type spin default 4 min 1 max 10")
	fmt.Fprintln(w, "uciok")
}

// handlePosition supports "position startpos [moves ...]" and
// "position fen <fen> [moves ...]".
func (e *Engine) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	movesKeyword := len(args)
	for i, a := range args {
		if a == "moves" {
			movesKeyword = i
			break
		}
	}
	moveStart := len(args)
	if movesKeyword < len(args) {
		moveStart = movesKeyword + 1
	}

	switch args[0] {
	case "startpos":
		e.position = chess.StartingPosition()
	case "fen":
		fen := strings.Join(args[1:movesKeyword], " ")
		p, err := chess.NewFromFEN(fen)
		if err != nil {
			e.log.Warn("invalid fen from position command", zap.Error(err))
			return
		}
		e.position = p
	default:
		return
	}

	if moveStart >= len(args) {
		return
	}
	for _, uciMove := range args[moveStart:] {
		m, err := notation.DecodeUCI(e.position, uciMove)
		if err != nil {
			e.log.Warn("invalid move in position command", zap.String("move", uciMove), zap.Error(err))
			return
		}
		e.position.MakeMove(m)
		e.recordMove(m)
	}
}

func (e *Engine) handleGo(w io.Writer, args []string) {
	depth := e.depth
	for i, a := range args {
		if a == "depth" && i+1 < len(args) {
			if d, err := strconv.Atoi(args[i+1]); err == nil {
				depth = d
			}
		}
	}
	best, score := eval.Negamax(e.position, depth)
	fmt.Fprintf(w, "info depth %d score cp %d\n", depth, score)
	fmt.Fprintf(w, "bestmove %s\n", best.UCI())
}

func (e *Engine) handlePerft(w io.Writer, args []string) {
	depth := 1
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			depth = d
		}
	}
	var total uint64
	for _, r := range chess.PerftDivide(e.position, depth) {
		fmt.Fprintf(w, "%s: %d\n", r.Move.UCI(), r.Nodes)
		total += r.Nodes
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", total)
}
