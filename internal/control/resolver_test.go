package control

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolve_SerialMappings(t *testing.T) {
	// GIVEN
	options := createSerialOptions()
	resolver := NewResolver(options.Mappings, options.DegradeCommand)
	lastValid := 160

	tests := []struct {
		name     string
		command  Command
		expected ResolvedAction
	}{
		{name: "off", command: CodeCommand(0), expected: ResolvedAction{Kind: ActionRamp, Policy: RampPolicy{TargetDuty: 0, HoldDelay: 5 * time.Second}}},
		{name: "45", command: CodeCommand(45), expected: ResolvedAction{Kind: ActionRamp, Policy: RampPolicy{TargetDuty: 140, HoldDelay: 5 * time.Second}}},
		{name: "60", command: CodeCommand(60), expected: ResolvedAction{Kind: ActionRamp, Policy: RampPolicy{TargetDuty: 160, HoldDelay: 5 * time.Second}}},
		{name: "80 without hold", command: CodeCommand(80), expected: ResolvedAction{Kind: ActionRamp, Policy: RampPolicy{TargetDuty: 255}}},
		{name: "degrade", command: CodeCommand(10), expected: ResolvedAction{Kind: ActionDegrade}},
		{name: "unmapped", command: CodeCommand(999), expected: ResolvedAction{Kind: ActionRejected, Duty: lastValid}},
		{name: "negative", command: CodeCommand(-5), expected: ResolvedAction{Kind: ActionRejected, Duty: lastValid}},
		{name: "no command", command: NoCommand(), expected: ResolvedAction{Kind: ActionHold, Duty: lastValid}},
		{name: "directive", command: Command{Kind: CommandDirective, Text: "print"}, expected: ResolvedAction{Kind: ActionHold, Duty: lastValid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// WHEN
			result := resolver.Resolve(tt.command, lastValid)

			// THEN
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolve_IsDeterministic(t *testing.T) {
	// GIVEN
	options := createSerialOptions()
	resolver := NewResolver(options.Mappings, options.DegradeCommand)

	// WHEN
	first := resolver.Resolve(CodeCommand(45), 0)
	second := resolver.Resolve(CodeCommand(45), 255)

	// THEN
	assert.Equal(t, first, second)
}

func TestResolve_DegradeDisabled(t *testing.T) {
	// GIVEN
	options := createSensorOptions()
	resolver := NewResolver(options.Mappings, options.DegradeCommand)

	// WHEN
	result := resolver.Resolve(CodeCommand(10), 110)

	// THEN
	assert.Equal(t, ResolvedAction{Kind: ActionRejected, Duty: 110}, result)
	_, enabled := resolver.DegradeCommand()
	assert.False(t, enabled)
}

func TestResolve_SensorMappings(t *testing.T) {
	// GIVEN
	options := createSensorOptions()
	resolver := NewResolver(options.Mappings, options.DegradeCommand)

	// WHEN
	result := resolver.Resolve(CodeCommand(75), 0)

	// THEN
	assert.Equal(t, ActionRamp, result.Kind)
	assert.Equal(t, 160, result.Policy.TargetDuty)
}

func TestResolve_ClampsOutOfRangeTarget(t *testing.T) {
	// GIVEN
	resolver := NewResolver(map[int]RampPolicy{
		1: {TargetDuty: 300},
		2: {TargetDuty: -20},
	}, nil)

	// WHEN
	high := resolver.Resolve(CodeCommand(1), 0)
	low := resolver.Resolve(CodeCommand(2), 0)

	// THEN
	assert.Equal(t, 255, high.Policy.TargetDuty)
	assert.Equal(t, 0, low.Policy.TargetDuty)
}

func TestResolver_IsDecoupledFromInput(t *testing.T) {
	// GIVEN
	mappings := map[int]RampPolicy{45: {TargetDuty: 140}}
	resolver := NewResolver(mappings, nil)

	// WHEN
	mappings[45] = RampPolicy{TargetDuty: 10}

	// THEN
	policy, ok := resolver.Policy(45)
	assert.True(t, ok)
	assert.Equal(t, 140, policy.TargetDuty)
}

func TestResolver_Commands(t *testing.T) {
	// GIVEN
	options := createSerialOptions()
	resolver := NewResolver(options.Mappings, options.DegradeCommand)

	// WHEN
	result := resolver.Commands()

	// THEN
	assert.Equal(t, []int{0, 45, 60, 80}, result)
}

func TestResolvedAction_String(t *testing.T) {
	assert.Equal(t, "ramp to 140 after 5s", ResolvedAction{Kind: ActionRamp, Policy: RampPolicy{TargetDuty: 140, HoldDelay: 5 * time.Second}}.String())
	assert.Equal(t, "rejected at 110", ResolvedAction{Kind: ActionRejected, Duty: 110}.String())
	assert.Equal(t, "degrade", ResolvedAction{Kind: ActionDegrade}.String())
}
