package pwm

import "time"

// Sample is a committed duty at a point in (possibly simulated) time
type Sample struct {
	At   time.Duration
	Duty int
}

// RecordingOutput keeps every committed duty in memory. The timestamp of
// each sample is read from the Elapsed function, which allows pairing it
// with a simulated clock.
type RecordingOutput struct {
	Elapsed func() time.Duration

	stage   stage
	Samples []Sample
}

func NewRecordingOutput(channel int, elapsed func() time.Duration) *RecordingOutput {
	return &RecordingOutput{
		Elapsed: elapsed,
		stage:   stage{channel: channel},
	}
}

func (o *RecordingOutput) SetDuty(channel int, value int) error {
	return o.stage.set(channel, value)
}

func (o *RecordingOutput) Commit(channel int) error {
	value, ok, err := o.stage.take(channel)
	if err != nil || !ok {
		return err
	}
	var at time.Duration
	if o.Elapsed != nil {
		at = o.Elapsed()
	}
	o.Samples = append(o.Samples, Sample{At: at, Duty: value})
	return nil
}

// Last returns the most recently committed duty
func (o *RecordingOutput) Last() (int, bool) {
	if len(o.Samples) == 0 {
		return 0, false
	}
	return o.Samples[len(o.Samples)-1].Duty, true
}

// Duties returns all committed duties in order
func (o *RecordingOutput) Duties() []int {
	result := make([]int, 0, len(o.Samples))
	for _, s := range o.Samples {
		result = append(result, s.Duty)
	}
	return result
}

func (o *RecordingOutput) Close() error {
	return nil
}

// Resample returns the committed duty at count evenly spaced points in time,
// starting at the first sample and ending at the last one
func Resample(samples []Sample, count int) []float64 {
	if len(samples) == 0 || count <= 0 {
		return []float64{}
	}
	if count == 1 {
		return []float64{float64(samples[len(samples)-1].Duty)}
	}

	start := samples[0].At
	span := samples[len(samples)-1].At - start

	result := make([]float64, 0, count)
	idx := 0
	for i := 0; i < count; i++ {
		at := start + span*time.Duration(i)/time.Duration(count-1)
		for idx+1 < len(samples) && samples[idx+1].At <= at {
			idx++
		}
		result = append(result, float64(samples[idx].Duty))
	}
	return result
}
