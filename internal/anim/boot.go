package anim

import (
	"fmt"
	"slices"
)

// BootState is the power state of the virtual PC.
type BootState int

const (
	BootOff BootState = iota
	BootBooting
	BootOn
)

func (s BootState) String() string {
	switch s {
	case BootOff:
		return "off"
	case BootBooting:
		return "booting"
	case BootOn:
		return "on"
	default:
		return fmt.Sprintf("BootState(%d)", int(s))
	}
}

// BootConfig controls the boot text schedule.
type BootConfig struct {
	Lines        []string `yaml:"lines"`
	LineInterval float64  `yaml:"line_interval"` // seconds between lines
	LineOffset   float64  `yaml:"line_offset"`   // delay before the first line
	Duration     float64  `yaml:"duration"`      // booting -> on
	Cursor       string   `yaml:"cursor"`
}

// DefaultBootConfig returns the stock DOS-style boot text.
func DefaultBootConfig() BootConfig {
	return BootConfig{
		Lines: []string{
			"BIOS DATE 01/01/24 15:22:00 VER 1.0.2",
			"CPU: ARMv8 Processor @ 3.2GHz",
			"Memory Test: 32768K OK",
			"Detecting Primary Master ... M.2 SSD 2TB",
			"Detecting Primary Slave ... None",
			"Booting from Drive C:...",
			"Loading OS...",
		},
		LineInterval: 0.4,
		LineOffset:   0.1,
		Duration:     3.5,
		Cursor:       "_",
	}
}

// Validate checks the timings. Every line must appear before Duration.
func (c BootConfig) Validate() error {
	if c.LineInterval < 0 || c.LineOffset < 0 {
		return fmt.Errorf("%w: boot line timings must not be negative", ErrInvalidConfig)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: boot duration must be positive, got %g", ErrInvalidConfig, c.Duration)
	}
	if n := len(c.Lines); n > 0 {
		last := float64(n-1)*c.LineInterval + c.LineOffset
		if last > c.Duration {
			return fmt.Errorf("%w: last boot line at %gs is after boot completes at %gs",
				ErrInvalidConfig, last, c.Duration)
		}
	}
	return nil
}

// BootSequence reveals boot lines on a schedule after power on and switches
// to BootOn once the boot duration elapses.
type BootSequence struct {
	cfg      BootConfig
	schedule *Schedule
	state    BootState
	lines    []string

	// OnChange, if set, is called on every state transition.
	OnChange func(from, to BootState)
}

// NewBootSequence builds the line-reveal schedule for cfg.
func NewBootSequence(cfg BootConfig) (*BootSequence, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &BootSequence{cfg: cfg}

	actions := make([]ScheduledAction, 0, len(cfg.Lines)+1)
	for i, line := range cfg.Lines {
		actions = append(actions, ScheduledAction{
			Delay:  float64(i)*cfg.LineInterval + cfg.LineOffset,
			Action: func() { b.reveal(line) },
		})
	}
	actions = append(actions, ScheduledAction{
		Delay:  cfg.Duration,
		Action: func() { b.setState(BootOn) },
	})
	b.schedule = NewSchedule(actions...)
	return b, nil
}

// Update samples the power flag and advances the schedule.
func (b *BootSequence) Update(power bool, dt float64) {
	switch {
	case !power && b.state != BootOff:
		b.lines = nil
		b.setState(BootOff)
	case power && b.state == BootOff:
		b.lines = []string{b.cfg.Cursor}
		b.setState(BootBooting)
	}
	b.schedule.Update(power, dt)
}

func (b *BootSequence) reveal(line string) {
	// 光标只在最后一行之前显示，新行出现时移除
	b.lines = slices.DeleteFunc(b.lines, func(s string) bool { return s == b.cfg.Cursor })
	b.lines = append(b.lines, line)
}

func (b *BootSequence) setState(to BootState) {
	from := b.state
	if from == to {
		return
	}
	b.state = to
	if b.OnChange != nil {
		b.OnChange(from, to)
	}
}

// State returns the current power state.
func (b *BootSequence) State() BootState { return b.state }

// Lines returns a copy of the currently displayed text lines.
func (b *BootSequence) Lines() []string { return slices.Clone(b.lines) }

// Elapsed returns seconds since power on.
func (b *BootSequence) Elapsed() float64 { return b.schedule.Elapsed() }
