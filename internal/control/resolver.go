package control

import (
	"fmt"
	"time"

	"github.com/markusressel/fanplate/internal/util"
)

// RampPolicy fully determines one Ramp Engine invocation
type RampPolicy struct {
	TargetDuty int           `json:"targetDuty"`
	HoldDelay  time.Duration `json:"holdDelay"`
}

type ActionKind int

const (
	ActionHold ActionKind = iota
	ActionRamp
	ActionDegrade
	ActionRejected
)

func (k ActionKind) String() string {
	switch k {
	case ActionHold:
		return "hold"
	case ActionRamp:
		return "ramp"
	case ActionDegrade:
		return "degrade"
	case ActionRejected:
		return "rejected"
	}
	return "unknown"
}

// ResolvedAction is the outcome of resolving a single command.
// Policy is only set for ActionRamp, Duty only for ActionHold and ActionRejected.
type ResolvedAction struct {
	Kind   ActionKind
	Policy RampPolicy
	Duty   int
}

func (a ResolvedAction) String() string {
	switch a.Kind {
	case ActionRamp:
		return fmt.Sprintf("ramp to %d after %s", a.Policy.TargetDuty, a.Policy.HoldDelay)
	case ActionHold, ActionRejected:
		return fmt.Sprintf("%s at %d", a.Kind, a.Duty)
	}
	return a.Kind.String()
}

// Resolver maps a command to an action using a fixed lookup table.
// Resolution only depends on its inputs.
type Resolver struct {
	mappings       map[int]RampPolicy
	degradeCommand *int
}

// NewResolver creates a Resolver for the given mapping table.
// degradeCommand is the sentinel value of the degrade sequence, nil disables it.
func NewResolver(mappings map[int]RampPolicy, degradeCommand *int) *Resolver {
	copied := make(map[int]RampPolicy, len(mappings))
	for command, policy := range mappings {
		copied[command] = policy
	}
	var degrade *int
	if degradeCommand != nil {
		value := *degradeCommand
		degrade = &value
	}
	return &Resolver{
		mappings:       copied,
		degradeCommand: degrade,
	}
}

// Resolve looks up the code as received. Codes are not clamped before the
// lookup, so an out-of-range code such as -5 is rejected instead of turning the fan off.
func (r *Resolver) Resolve(command Command, lastValid int) ResolvedAction {
	switch command.Kind {
	case CommandNone, CommandDirective:
		return ResolvedAction{Kind: ActionHold, Duty: lastValid}
	}

	if r.degradeCommand != nil && command.Code == *r.degradeCommand {
		return ResolvedAction{Kind: ActionDegrade}
	}

	policy, ok := r.mappings[command.Code]
	if !ok {
		return ResolvedAction{Kind: ActionRejected, Duty: lastValid}
	}

	policy.TargetDuty = ValidateDuty(policy.TargetDuty)
	return ResolvedAction{Kind: ActionRamp, Policy: policy}
}

// Commands returns all mapped command values in ascending order
func (r *Resolver) Commands() []int {
	return util.SortedKeys(r.mappings)
}

func (r *Resolver) Policy(command int) (RampPolicy, bool) {
	policy, ok := r.mappings[command]
	return policy, ok
}

func (r *Resolver) DegradeCommand() (int, bool) {
	if r.degradeCommand == nil {
		return 0, false
	}
	return *r.degradeCommand, true
}
