package solution

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nikts27/thesis-rover-planner/state"
)

// modeByName mirrors problem's own mode-name table; duplicated rather
// than imported since it is a three-entry lookup and solution has no
// other reason to depend on the problem package.
var modeByName = map[string]state.Mode{
	"colour":   state.Colour,
	"high_res": state.HighRes,
	"low_res":  state.LowRes,
}

// Read parses a solution file written by Write. It skips exactly the two
// fixed header lines before the first action line, per the verifier's
// "subtract 2 header lines" convention.
func Read(r io.Reader) (*Solution, error) {
	scanner := bufio.NewScanner(r)

	length, err := readHeaderLine(scanner, "Solution length:")
	if err != nil {
		return nil, err
	}
	recharges, err := readHeaderLine(scanner, "Total recharges uses:")
	if err != nil {
		return nil, err
	}

	sol := &Solution{Length: int(length), TotalRecharges: recharges}
	lineNo := 2
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		al, err := parseActionLine(line)
		if err != nil {
			return nil, fmt.Errorf("solution: line %d: %w", lineNo, err)
		}
		sol.Lines = append(sol.Lines, al)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("solution: %w", err)
	}
	return sol, nil
}

func readHeaderLine(scanner *bufio.Scanner, prefix string) (int64, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("%w: missing %q header", ErrMalformedHeader, prefix)
	}
	line := strings.TrimSpace(scanner.Text())
	if !strings.HasPrefix(line, prefix) {
		return 0, fmt.Errorf("%w: expected prefix %q, got %q", ErrMalformedHeader, prefix, line)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(strings.TrimPrefix(line, prefix)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	return n, nil
}

func stripParens(line string) string {
	return strings.Map(func(r rune) rune {
		if r == '(' || r == ')' {
			return ' '
		}
		return r
	}, line)
}

func parseActionLine(line string) (ActionLine, error) {
	fields := strings.Fields(stripParens(line))
	if len(fields) < 3 {
		return ActionLine{}, fmt.Errorf("%w: %q", ErrMalformedActionLine, line)
	}

	h, hOK := parseAnnotation(fields[len(fields)-2], "h=")
	f, fOK := parseAnnotation(fields[len(fields)-1], "f=")
	if !hOK || !fOK {
		return ActionLine{}, fmt.Errorf("%w: missing h=/f= annotations: %q", ErrMalformedActionLine, line)
	}

	name := fields[0]
	params := fields[1 : len(fields)-2]

	kind, ok := actionKindByName(name)
	if !ok {
		return ActionLine{}, fmt.Errorf("%w: %q", ErrUnknownActionName, name)
	}
	p, err := parseParams(kind, params)
	if err != nil {
		return ActionLine{}, err
	}
	return ActionLine{Kind: kind, Params: p, H: h, F: f}, nil
}

func parseAnnotation(tok, prefix string) (int64, bool) {
	if !strings.HasPrefix(tok, prefix) {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(tok, prefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func actionKindByName(name string) (state.ActionKind, bool) {
	for k := state.Navigate; k <= state.CommunicateImage; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// objectIndex extracts the trailing integer from a parameter token, e.g.
// "waypoint7" -> 7. Duplicated from problem's own helper of the same
// name: both are ~10-line leaf-package helpers with no shared state
// worth introducing a third package for.
func objectIndex(name string) (int, error) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) {
		return 0, fmt.Errorf("%w: %q has no trailing integer", ErrMalformedParam, name)
	}
	return strconv.Atoi(name[i:])
}

// parseParams maps a solution line's positional parameter tokens back
// into a state.Params, in the same order formatAction wrote them. A
// trailing "general" marker on communicate_* actions is dropped first.
func parseParams(kind state.ActionKind, toks []string) (state.Params, error) {
	if len(toks) > 0 && toks[len(toks)-1] == "general" {
		toks = toks[:len(toks)-1]
	}

	idx := func(i int) (int, error) {
		if i >= len(toks) {
			return 0, fmt.Errorf("%w: %s: too few parameters", ErrMalformedParam, kind)
		}
		return objectIndex(toks[i])
	}

	var p state.Params
	var err error
	switch kind {
	case state.Navigate:
		if p.Rover, err = idx(0); err != nil {
			return p, err
		}
		if p.From, err = idx(1); err != nil {
			return p, err
		}
		if p.To, err = idx(2); err != nil {
			return p, err
		}
	case state.Recharge:
		if p.Rover, err = idx(0); err != nil {
			return p, err
		}
		if p.Waypoint, err = idx(1); err != nil {
			return p, err
		}
	case state.SampleSoil, state.SampleRock:
		if p.Rover, err = idx(0); err != nil {
			return p, err
		}
		if p.Store, err = idx(1); err != nil {
			return p, err
		}
		if p.Waypoint, err = idx(2); err != nil {
			return p, err
		}
	case state.Drop:
		if p.Rover, err = idx(0); err != nil {
			return p, err
		}
		if p.Store, err = idx(1); err != nil {
			return p, err
		}
	case state.Calibrate:
		if p.Rover, err = idx(0); err != nil {
			return p, err
		}
		if p.Camera, err = idx(1); err != nil {
			return p, err
		}
		if p.Objective, err = idx(2); err != nil {
			return p, err
		}
		if p.Waypoint, err = idx(3); err != nil {
			return p, err
		}
	case state.TakeImage:
		if p.Rover, err = idx(0); err != nil {
			return p, err
		}
		if p.Waypoint, err = idx(1); err != nil {
			return p, err
		}
		if p.Objective, err = idx(2); err != nil {
			return p, err
		}
		if p.Camera, err = idx(3); err != nil {
			return p, err
		}
		if len(toks) < 5 {
			return p, fmt.Errorf("%w: take_image missing mode", ErrMalformedParam)
		}
		m, ok := modeByName[toks[4]]
		if !ok {
			return p, fmt.Errorf("%w: unknown mode %q", ErrMalformedParam, toks[4])
		}
		p.Mode = m
	case state.CommunicateSoil, state.CommunicateRock:
		if p.Rover, err = idx(0); err != nil {
			return p, err
		}
		if p.SampleWaypoint, err = idx(1); err != nil {
			return p, err
		}
		if p.RoverWaypoint, err = idx(2); err != nil {
			return p, err
		}
		if p.LanderWaypoint, err = idx(3); err != nil {
			return p, err
		}
	case state.CommunicateImage:
		if p.Rover, err = idx(0); err != nil {
			return p, err
		}
		if p.Objective, err = idx(1); err != nil {
			return p, err
		}
		if len(toks) < 3 {
			return p, fmt.Errorf("%w: communicate_image_data missing mode", ErrMalformedParam)
		}
		m, ok := modeByName[toks[2]]
		if !ok {
			return p, fmt.Errorf("%w: unknown mode %q", ErrMalformedParam, toks[2])
		}
		p.Mode = m
		if p.RoverWaypoint, err = idx(3); err != nil {
			return p, err
		}
		if p.LanderWaypoint, err = idx(4); err != nil {
			return p, err
		}
	}
	return p, nil
}
