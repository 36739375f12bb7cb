package solution

import (
	"fmt"
	"io"

	"github.com/nikts27/thesis-rover-planner/search"
	"github.com/nikts27/thesis-rover-planner/state"
)

// Write serializes plan to w: "Solution length: N", "Total recharges
// uses: K", then one "( action param... ) h=H f=F" line per step, in
// plan order.
func Write(w io.Writer, plan *search.Plan) error {
	if _, err := fmt.Fprintf(w, "Solution length: %d\n", plan.Length); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total recharges uses: %d\n", plan.TotalRecharge); err != nil {
		return err
	}
	for _, step := range plan.Steps {
		line, err := formatAction(step.Action)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s h=%d f=%d\n", line, step.H, step.F); err != nil {
			return err
		}
	}
	return nil
}

// formatAction renders a as "( name param... )", with the parameter
// order and the trailing "general" marker on communicate_* actions
// fixed by §6's conventions.
func formatAction(a search.Action) (string, error) {
	p := a.Params
	switch a.Kind {
	case state.Navigate:
		return fmt.Sprintf("( navigate rover%d waypoint%d waypoint%d )", p.Rover, p.From, p.To), nil
	case state.Recharge:
		return fmt.Sprintf("( recharge rover%d waypoint%d )", p.Rover, p.Waypoint), nil
	case state.SampleSoil:
		return fmt.Sprintf("( sample_soil rover%d store%d waypoint%d )", p.Rover, p.Store, p.Waypoint), nil
	case state.SampleRock:
		return fmt.Sprintf("( sample_rock rover%d store%d waypoint%d )", p.Rover, p.Store, p.Waypoint), nil
	case state.Drop:
		return fmt.Sprintf("( drop rover%d store%d )", p.Rover, p.Store), nil
	case state.Calibrate:
		return fmt.Sprintf("( calibrate rover%d camera%d objective%d waypoint%d )",
			p.Rover, p.Camera, p.Objective, p.Waypoint), nil
	case state.TakeImage:
		return fmt.Sprintf("( take_image rover%d waypoint%d objective%d camera%d %s )",
			p.Rover, p.Waypoint, p.Objective, p.Camera, p.Mode), nil
	case state.CommunicateSoil:
		return fmt.Sprintf("( communicate_soil_data rover%d waypoint%d waypoint%d waypoint%d general )",
			p.Rover, p.SampleWaypoint, p.RoverWaypoint, p.LanderWaypoint), nil
	case state.CommunicateRock:
		return fmt.Sprintf("( communicate_rock_data rover%d waypoint%d waypoint%d waypoint%d general )",
			p.Rover, p.SampleWaypoint, p.RoverWaypoint, p.LanderWaypoint), nil
	case state.CommunicateImage:
		return fmt.Sprintf("( communicate_image_data rover%d objective%d %s waypoint%d waypoint%d general )",
			p.Rover, p.Objective, p.Mode, p.RoverWaypoint, p.LanderWaypoint), nil
	default:
		return "", fmt.Errorf("solution: unknown action kind %v", a.Kind)
	}
}
