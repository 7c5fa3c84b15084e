package planner_test

import (
	"fmt"

	"github.com/vaishakbelle/pandor/envs"
	"github.com/vaishakbelle/pandor/planner"
)

// ExamplePlan synthesizes a single-state controller for an environment
// whose one action always reaches a goal state. The controller records two
// transitions: the action on the start observation, and STOP on the goal's.
func ExamplePlan() {
	result, err := planner.Plan(envs.NewDeterministic("a0"), 1, 0.99)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("controller states:", result.Controller.NumStates())
	fmt.Println("transitions recorded:", result.Controller.Len())

	// Output:
	// controller states: 1
	// transitions recorded: 2
}

// ExamplePlan_unsatisfiable shows the NotFound path: a one-state bound is
// not enough for an environment whose goal requires remembering which of
// two visits to the same observation is underway.
func ExamplePlan_unsatisfiable() {
	_, err := planner.Plan(envs.Toggle{}, 1, 0.99)
	fmt.Println(err)

	// Output:
	// planner: no controller satisfies the desired likelihood within the given bound
}
