package control

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/markusressel/fanplate/internal/pwm"
	"github.com/markusressel/fanplate/internal/ui"
	"github.com/markusressel/fanplate/internal/util"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	ControllerMap = cmap.New[*Controller]()
)

// Statistics is a snapshot of the controller state, safe to read from other goroutines
type Statistics struct {
	ID             string  `json:"id"`
	AppliedDuty    int     `json:"appliedDuty"`
	LastValidDuty  int     `json:"lastValidDuty"`
	AvgAppliedDuty float64 `json:"avgAppliedDuty"`
	MaxAppliedDuty float64 `json:"maxAppliedDuty"`
	LastAction     string  `json:"lastAction"`

	Iterations    int `json:"iterations"`
	RampCount     int `json:"rampCount"`
	DegradeCount  int `json:"degradeCount"`
	HoldCount     int `json:"holdCount"`
	RejectedCount int `json:"rejectedCount"`
	ErrorCount    int `json:"errorCount"`

	LastSample *SensorSample `json:"lastSample,omitempty"`
}

// Controller runs the command-to-duty control loop for a single PWM channel.
// All state is owned by the goroutine calling Step or Run.
type Controller struct {
	options  Options
	source   Source
	output   pwm.Output
	reporter *Reporter
	clock    Clock

	resolver *Resolver
	ramp     *RampEngine
	degrade  *DegradeSequencer

	appliedDuty   int
	lastValidDuty int
	journal       []byte

	dutyWindow *rolling.PointPolicy

	mu    sync.RWMutex
	stats Statistics
}

func NewController(options Options, source Source, output pwm.Output, reporter *Reporter, clock Clock) (*Controller, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	if reporter == nil {
		reporter = NewReporter(nil)
	}
	if options.RollingWindowSize <= 0 {
		options.RollingWindowSize = 1
	}

	stages := options.DegradeStages
	if len(stages) == 0 {
		stages = DegradeStagesFromConfig(configuration.DefaultDegradeStages())
	}
	degrade, err := NewDegradeSequencer(output, options.Channel, stages, clock)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		options:    options,
		source:     source,
		output:     output,
		reporter:   reporter,
		clock:      clock,
		resolver:   NewResolver(options.Mappings, options.DegradeCommand),
		ramp:       NewRampEngine(output, options.Channel, options.StepDelay, clock),
		degrade:    degrade,
		dutyWindow: util.CreateRollingWindow(options.RollingWindowSize),
	}
	c.stats.ID = options.ID
	return c, nil
}

func (c *Controller) GetId() string {
	return c.options.ID
}

// LastValidDuty is the duty of the most recent successful ramp or degrade sequence.
// Only safe to call from the goroutine driving the controller.
func (c *Controller) LastValidDuty() int {
	return c.lastValidDuty
}

// AppliedDuty is the duty most recently committed to the output.
// Only safe to call from the goroutine driving the controller.
func (c *Controller) AppliedDuty() int {
	return c.appliedDuty
}

func (c *Controller) GetResolver() *Resolver {
	return c.resolver
}

// GetStatistics returns a copy of the most recent statistics snapshot
func (c *Controller) GetStatistics() Statistics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stats := c.stats
	if stats.LastSample != nil {
		sample := *stats.LastSample
		stats.LastSample = &sample
	}
	return stats
}

// Run applies the initial duty and then repeats Step until ctx is cancelled.
// Cancellation takes effect between iterations, a running ramp or degrade
// sequence always completes.
func (c *Controller) Run(ctx context.Context) error {
	ui.Info("Starting control loop for '%s'", c.GetId())

	err := applyDuty(c.output, c.options.Channel, c.appliedDuty)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		action := c.Step()
		ui.Debug("Iteration of '%s' resolved to %s", c.GetId(), action)

		if c.options.LoopDelay <= 0 {
			continue
		}
		timer := time.NewTimer(c.options.LoopDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// Step performs exactly one control loop iteration: poll the source, resolve
// the command, execute the resulting action, apply the resolved duty and
// report it.
func (c *Controller) Step() ResolvedAction {
	errorCount := 0

	input, err := c.source.Poll()
	if err != nil {
		ui.Error("Error polling input of '%s': %v", c.GetId(), err)
		errorCount++
		input = Input{Command: NoCommand(), Sample: input.Sample}
	}

	if len(input.Raw) > 0 {
		text := input.Command.Text
		if input.Command.Kind == CommandNone {
			text = string(input.Raw)
		}
		c.reporter.Received(text)
		c.appendJournal(input.Raw)
	}

	if input.Command.Kind == CommandDirective {
		c.runDirective(input.Command.Text)
	}

	action := c.resolver.Resolve(input.Command, c.lastValidDuty)
	duty, err := c.execute(action)
	if err != nil {
		ui.Error("Error executing %s on '%s': %v", action.Kind, c.GetId(), err)
		errorCount++
		if r, ok := c.source.(retrier); ok {
			r.Retry()
		}
	}

	err = applyDuty(c.output, c.options.Channel, duty)
	if err != nil {
		ui.Error("Error applying duty %d on '%s': %v", duty, c.GetId(), err)
		errorCount++
	} else {
		c.appliedDuty = duty
	}

	if action.Kind != ActionHold || c.options.ReportOnHold {
		c.reporter.Report(c.appliedDuty, input.Sample)
	}

	c.updateStatistics(action, input.Sample, errorCount)
	return action
}

// execute runs the action and returns the duty to apply
func (c *Controller) execute(action ResolvedAction) (int, error) {
	switch action.Kind {
	case ActionRamp:
		duty, err := c.ramp.Ramp(c.appliedDuty, action.Policy)
		if err != nil {
			return c.lastValidDuty, err
		}
		c.lastValidDuty = duty
		return duty, nil
	case ActionDegrade:
		duty, err := c.degrade.Degrade(c.appliedDuty)
		if err != nil {
			return c.lastValidDuty, err
		}
		c.lastValidDuty = duty
		return duty, nil
	case ActionRejected:
		ui.Warning("Value not permitted on '%s', keeping duty %d", c.GetId(), action.Duty)
		c.reporter.Rejected()
		return action.Duty, nil
	case ActionHold:
		return action.Duty, nil
	}
	return c.lastValidDuty, errors.New("unknown action")
}

func (c *Controller) runDirective(directive string) {
	switch directive {
	case configuration.DirectivePrint:
		c.reporter.Stored(string(c.journal))
	case configuration.DirectiveStatus:
		c.reporter.Status(c.lastValidDuty)
	default:
		ui.Warning("Directive '%s' has no action", directive)
	}
}

// appendJournal keeps the most recent received bytes, at most JournalSize of them
func (c *Controller) appendJournal(raw []byte) {
	c.journal = append(c.journal, raw...)
	limit := c.options.JournalSize
	if limit > 0 && len(c.journal) > limit {
		c.journal = append([]byte{}, c.journal[len(c.journal)-limit:]...)
	}
}

func (c *Controller) updateStatistics(action ResolvedAction, sample *SensorSample, errorCount int) {
	c.dutyWindow.Append(float64(c.appliedDuty))

	c.mu.Lock()
	defer c.mu.Unlock()

	stats := &c.stats
	stats.AppliedDuty = c.appliedDuty
	stats.LastValidDuty = c.lastValidDuty
	stats.AvgAppliedDuty = util.GetWindowAvg(c.dutyWindow)
	stats.MaxAppliedDuty = util.GetWindowMax(c.dutyWindow)
	stats.LastAction = action.Kind.String()
	stats.Iterations++
	stats.ErrorCount += errorCount
	switch action.Kind {
	case ActionRamp:
		stats.RampCount++
	case ActionDegrade:
		stats.DegradeCount++
	case ActionHold:
		stats.HoldCount++
	case ActionRejected:
		stats.RejectedCount++
	}
	if sample != nil {
		s := *sample
		stats.LastSample = &s
	}
}
