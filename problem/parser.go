package problem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/nikts27/thesis-rover-planner/state"
)

// modeIndex maps the fixed on-disk mode names to their Mode value.
var modeIndex = map[string]state.Mode{
	"colour":   state.Colour,
	"high_res": state.HighRes,
	"low_res":  state.LowRes,
}

type section int

const (
	sectionNone section = iota
	sectionObjects
	sectionInit
	sectionGoal
)

// sectionHeader reports whether tok introduces a new section.
func sectionHeader(tok string) (section, bool) {
	switch tok {
	case ":objects":
		return sectionObjects, true
	case ":init":
		return sectionInit, true
	case ":goal":
		return sectionGoal, true
	}
	return sectionNone, false
}

// typeCounter tracks the highest object index seen per type, whether
// declared in :objects or referenced from :init/:goal — the same count
// feeds Static.NumX regardless of which section first mentioned the index.
type typeCounter struct {
	rovers, waypoints, cameras, stores, objectives int
}

// parser holds the mutable state of a single Parse call.
type parser struct {
	log   *zap.Logger
	st    *state.Static
	state *state.State
	goal  *state.Goal

	section        section
	hadGoalSection bool

	counts     typeCounter
	storeOwner map[int]int
}

// Parse reads a Rover-domain problem file and returns the initial State
// and Goal it describes. Sections are introduced by a line whose first
// token is ":objects", ":init", or ":goal" (any further tokens on that
// line are ignored); every other non-blank,
// non-comment line is a predicate inside the most recently opened
// section. Parens are stripped before tokenizing, so both a bare
// "visible waypoint0 waypoint1" and a parenthesized "(visible waypoint0
// waypoint1)" are accepted.
func Parse(r io.Reader, opts ...ParseOption) (*ParseResult, error) {
	o := DefaultParseOptions()
	for _, set := range opts {
		set(&o)
	}

	st := &state.Static{}
	s := &state.State{Static: st}
	goal := &state.Goal{}

	p := &parser{
		log:        o.Logger,
		st:         st,
		state:      s,
		goal:       goal,
		storeOwner: make(map[int]int),
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := stripParens(stripComment(scanner.Text()))
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if sec, ok := sectionHeader(fields[0]); ok {
			p.section = sec
			if sec == sectionGoal {
				p.hadGoalSection = true
			}
			continue
		}

		var err error
		switch p.section {
		case sectionObjects:
			err = p.parseObjectsLine(fields)
		case sectionInit:
			err = p.parseInitLine(fields)
		case sectionGoal:
			err = p.parseGoalLine(fields)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownSection, line)
		}
		if err != nil {
			return nil, fmt.Errorf("problem: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}

	p.finalizeCounts()

	return &ParseResult{State: s, Goal: goal, HadGoalSection: p.hadGoalSection}, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}
	return line
}

func stripParens(line string) string {
	return strings.Map(func(r rune) rune {
		if r == '(' || r == ')' {
			return ' '
		}
		return r
	}, line)
}

// objectIndex extracts the trailing integer from an object name, e.g.
// "waypoint7" -> 7.
func objectIndex(name string) (int, error) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedObjectName, name)
	}
	return strconv.Atoi(name[i:])
}

// bumpCount records idx against typ's running maximum, failing if it
// would exceed the domain's static cap.
func (p *parser) bumpCount(typ string, idx int) error {
	switch typ {
	case "rover":
		if idx >= state.MaxRovers {
			return fmt.Errorf("%w: rover%d", ErrObjectIndexOutOfRange, idx)
		}
		if idx+1 > p.counts.rovers {
			p.counts.rovers = idx + 1
		}
	case "waypoint":
		if idx >= state.MaxWaypoints {
			return fmt.Errorf("%w: waypoint%d", ErrObjectIndexOutOfRange, idx)
		}
		if idx+1 > p.counts.waypoints {
			p.counts.waypoints = idx + 1
		}
	case "camera":
		if idx >= state.MaxCameras {
			return fmt.Errorf("%w: camera%d", ErrObjectIndexOutOfRange, idx)
		}
		if idx+1 > p.counts.cameras {
			p.counts.cameras = idx + 1
		}
	case "store":
		if idx >= state.MaxStores {
			return fmt.Errorf("%w: store%d", ErrObjectIndexOutOfRange, idx)
		}
		if idx+1 > p.counts.stores {
			p.counts.stores = idx + 1
		}
	case "objective":
		if idx >= state.MaxObjectives {
			return fmt.Errorf("%w: objective%d", ErrObjectIndexOutOfRange, idx)
		}
		if idx+1 > p.counts.objectives {
			p.counts.objectives = idx + 1
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownObjectType, typ)
	}
	return nil
}

// indexOf extracts name's trailing integer and folds it into the running
// count for typ in one step; every predicate handler below goes through
// this instead of calling objectIndex directly.
func (p *parser) indexOf(typ, name string) (int, error) {
	idx, err := objectIndex(name)
	if err != nil {
		return 0, err
	}
	if err := p.bumpCount(typ, idx); err != nil {
		return 0, err
	}
	return idx, nil
}

func (p *parser) finalizeCounts() {
	p.st.NumRovers = p.counts.rovers
	p.st.NumWaypoints = p.counts.waypoints
	p.st.NumCameras = p.counts.cameras
	p.st.NumStores = p.counts.stores
	p.st.NumObjectives = p.counts.objectives
}

// parseObjectsLine handles a single ":objects" line of the form
// "name1 name2 ... - type".
func (p *parser) parseObjectsLine(fields []string) error {
	dash := -1
	for i, f := range fields {
		if f == "-" {
			dash = i
			break
		}
	}
	if dash < 0 || dash == len(fields)-1 {
		return fmt.Errorf("%w: %q", ErrMalformedObjectsLine, strings.Join(fields, " "))
	}
	typ := fields[dash+1]
	for _, name := range fields[:dash] {
		if typ == "mode" {
			if _, ok := modeIndex[name]; !ok {
				return fmt.Errorf("%w: %q", ErrUnknownMode, name)
			}
			continue
		}
		if _, err := p.indexOf(typ, name); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseInitLine(fields []string) error {
	switch fields[0] {
	case "visible":
		return p.initVisible(fields)
	case "visible_from":
		return p.initVisibleFrom(fields)
	case "at_soil_sample":
		return p.initWaypointFlag(fields, func(w *state.Waypoint) { w.HasSoilSample = true })
	case "at_rock_sample":
		return p.initWaypointFlag(fields, func(w *state.Waypoint) { w.HasRockSample = true })
	case "in_sun":
		return p.initWaypointFlag(fields, func(w *state.Waypoint) { w.InSun = true })
	case "at_lander":
		return p.initAtLander(fields)
	case "channel_free":
		p.state.Lander.ChannelFree = true
		return nil
	case "=":
		return p.initNumericFluent(fields)
	case "in":
		return p.initRoverPosition(fields)
	case "available":
		return p.initRoverFlag(fields, func(r *state.Rover) { r.Available = true })
	case "can_traverse":
		return p.initCanTraverse(fields)
	case "equipped_for_soil_analysis":
		return p.initRoverFlag(fields, func(r *state.Rover) { r.EquippedSoil = true })
	case "equipped_for_rock_analysis":
		return p.initRoverFlag(fields, func(r *state.Rover) { r.EquippedRock = true })
	case "equipped_for_imaging":
		return p.initRoverFlag(fields, func(r *state.Rover) { r.EquippedImaging = true })
	case "empty":
		return p.initStoreFlag(fields, false)
	case "store_of":
		return p.initStoreOf(fields)
	case "calibration_target":
		return p.initCalibrationTarget(fields)
	case "on_board":
		return p.initOnBoard(fields)
	case "calibrated":
		return p.initCameraFlag(fields, func(c *state.Camera) { c.Calibrated = true })
	case "supports":
		return p.initSupports(fields)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPredicate, fields[0])
	}
}

func (p *parser) parseGoalLine(fields []string) error {
	switch fields[0] {
	case "communicated_soil_data":
		if len(fields) != 2 {
			return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
		}
		w, err := p.indexOf("waypoint", fields[1])
		if err != nil {
			return err
		}
		p.goal.CommunicatedSoilData = p.goal.CommunicatedSoilData.With(w)
		return nil
	case "communicated_rock_data":
		if len(fields) != 2 {
			return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
		}
		w, err := p.indexOf("waypoint", fields[1])
		if err != nil {
			return err
		}
		p.goal.CommunicatedRockData = p.goal.CommunicatedRockData.With(w)
		return nil
	case "communicated_image_data":
		if len(fields) != 3 {
			return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
		}
		obj, err := p.indexOf("objective", fields[1])
		if err != nil {
			return err
		}
		m, ok := modeIndex[fields[2]]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownMode, fields[2])
		}
		p.goal.CommunicatedImageData[obj] = p.goal.CommunicatedImageData[obj].With(m)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPredicate, fields[0])
	}
}

func (p *parser) initWaypointFlag(fields []string, set func(*state.Waypoint)) error {
	if len(fields) != 2 {
		return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
	}
	w, err := p.indexOf("waypoint", fields[1])
	if err != nil {
		return err
	}
	set(&p.state.Waypoints[w])
	return nil
}

func (p *parser) initRoverFlag(fields []string, set func(*state.Rover)) error {
	if len(fields) != 2 {
		return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
	}
	r, err := p.indexOf("rover", fields[1])
	if err != nil {
		return err
	}
	set(&p.state.Rovers[r])
	return nil
}

func (p *parser) initCameraFlag(fields []string, set func(*state.Camera)) error {
	if len(fields) != 2 {
		return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
	}
	c, err := p.indexOf("camera", fields[1])
	if err != nil {
		return err
	}
	set(&p.state.Cameras[c])
	return nil
}

func (p *parser) initStoreFlag(fields []string, full bool) error {
	if len(fields) != 2 {
		return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
	}
	s, err := p.indexOf("store", fields[1])
	if err != nil {
		return err
	}
	p.state.Stores[s].IsFull = full
	return nil
}

func (p *parser) initVisible(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
	}
	w1, err := p.indexOf("waypoint", fields[1])
	if err != nil {
		return err
	}
	w2, err := p.indexOf("waypoint", fields[2])
	if err != nil {
		return err
	}
	p.st.WaypointVisible[w1] = p.st.WaypointVisible[w1].With(w2)
	return nil
}

func (p *parser) initVisibleFrom(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
	}
	obj, err := p.indexOf("objective", fields[1])
	if err != nil {
		return err
	}
	w, err := p.indexOf("waypoint", fields[2])
	if err != nil {
		return err
	}
	p.st.ObjectiveVisible[obj] = p.st.ObjectiveVisible[obj].With(w)
	return nil
}

func (p *parser) initAtLander(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
	}
	w, err := p.indexOf("waypoint", fields[2])
	if err != nil {
		return err
	}
	p.st.LanderPosition = w
	return nil
}

func (p *parser) initNumericFluent(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: %q", ErrMalformedNumericFluent, strings.Join(fields, " "))
	}
	switch fields[1] {
	case "energy":
		if len(fields) != 4 {
			return fmt.Errorf("%w: %q", ErrMalformedNumericFluent, strings.Join(fields, " "))
		}
		r, err := p.indexOf("rover", fields[2])
		if err != nil {
			return err
		}
		n, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedNumericFluent, fields[3])
		}
		p.state.Rovers[r].Energy = n
		return nil
	case "recharges":
		if len(fields) != 3 {
			return fmt.Errorf("%w: %q", ErrMalformedNumericFluent, strings.Join(fields, " "))
		}
		n, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedNumericFluent, fields[2])
		}
		p.state.Recharges = n
		return nil
	default:
		return fmt.Errorf("%w: unknown fluent %q", ErrMalformedNumericFluent, fields[1])
	}
}

func (p *parser) initRoverPosition(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
	}
	r, err := p.indexOf("rover", fields[1])
	if err != nil {
		return err
	}
	w, err := p.indexOf("waypoint", fields[2])
	if err != nil {
		return err
	}
	p.state.Rovers[r].Position = w
	return nil
}

func (p *parser) initCanTraverse(fields []string) error {
	if len(fields) != 4 {
		return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
	}
	r, err := p.indexOf("rover", fields[1])
	if err != nil {
		return err
	}
	w1, err := p.indexOf("waypoint", fields[2])
	if err != nil {
		return err
	}
	w2, err := p.indexOf("waypoint", fields[3])
	if err != nil {
		return err
	}
	p.st.RoverCanTraverse[r][w1] = p.st.RoverCanTraverse[r][w1].With(w2)
	return nil
}

func (p *parser) initStoreOf(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
	}
	s, err := p.indexOf("store", fields[1])
	if err != nil {
		return err
	}
	r, err := p.indexOf("rover", fields[2])
	if err != nil {
		return err
	}
	if prev, ok := p.storeOwner[s]; ok && prev != r {
		return fmt.Errorf("%w: store%d claimed by rover%d and rover%d", ErrStoreOwnershipConflict, s, prev, r)
	}
	p.storeOwner[s] = r
	p.st.StoreRoverID[s] = r
	return nil
}

func (p *parser) initCalibrationTarget(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
	}
	c, err := p.indexOf("camera", fields[1])
	if err != nil {
		return err
	}
	obj, err := p.indexOf("objective", fields[2])
	if err != nil {
		return err
	}
	p.st.CameraCalibrationTargets[c] = p.st.CameraCalibrationTargets[c].With(obj)
	return nil
}

func (p *parser) initOnBoard(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
	}
	c, err := p.indexOf("camera", fields[1])
	if err != nil {
		return err
	}
	r, err := p.indexOf("rover", fields[2])
	if err != nil {
		return err
	}
	p.st.CameraRoverID[c] = r
	return nil
}

func (p *parser) initSupports(fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedPredicate, strings.Join(fields, " "))
	}
	c, err := p.indexOf("camera", fields[1])
	if err != nil {
		return err
	}
	m, ok := modeIndex[fields[2]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, fields[2])
	}
	p.st.CameraModesSupported[c] = p.st.CameraModesSupported[c].With(m)
	return nil
}
