// Package scheduler paces CPU execution against a target clock speed and
// frame rate, and provides the Run/Pause/Step/Reset surface a CLI or a debug
// TUI drives the machine through. It owns the one goroutine that actually
// calls Clock in a loop; everything else talks to the machine through this
// package's lock.
package scheduler

import (
	"sync"
	"sync/atomic"
	"time"

	"gone6502/cpu"
	"gone6502/disasm"
)

// FrameTimer paces a run loop against a target frames-per-second by tracking
// how many cycles a frame has retired and sleeping out whatever's left of
// the frame's wall-clock budget, correcting for the host scheduler's own
// overshoot on the next frame.
type FrameTimer struct {
	startTime     time.Time
	currentCycles uint64

	cyclesPerFrame uint64
	frameTime      time.Duration

	lastContextSwitchError time.Duration
}

// NewFrameTimer returns a FrameTimer for targetFPS frames per second at
// clockSpeed cycles per second.
func NewFrameTimer(targetFPS, clockSpeed uint64) *FrameTimer {
	return &FrameTimer{
		startTime:      time.Now(),
		cyclesPerFrame: clockSpeed / targetFPS,
		frameTime:      time.Duration(1_000_000_000/targetFPS) * time.Nanosecond,
	}
}

// Computed reports whether the current frame has retired its full cycle
// budget.
func (f *FrameTimer) Computed() bool {
	return f.currentCycles >= f.cyclesPerFrame
}

// TimeRemaining returns how much of the frame's wall-clock budget is left,
// zero if the frame has already run long.
func (f *FrameTimer) TimeRemaining() time.Duration {
	elapsed := time.Since(f.startTime)
	if elapsed >= f.frameTime {
		return 0
	}
	return f.frameTime - elapsed
}

// Sleep blocks out the rest of the frame's budget, net of whatever error the
// previous sleep accumulated from host scheduling jitter, and records the
// new error for the next frame to correct.
func (f *FrameTimer) Sleep() {
	remaining := f.TimeRemaining()
	if remaining <= f.lastContextSwitchError {
		return
	}
	delay := remaining - f.lastContextSwitchError
	start := time.Now()
	time.Sleep(delay)
	f.lastContextSwitchError = time.Since(start) - delay
}

// Clock records that one cycle has retired within the current frame.
func (f *FrameTimer) Clock() {
	f.currentCycles++
}

// Reset starts a new frame.
func (f *FrameTimer) Reset() {
	f.currentCycles = 0
	f.startTime = time.Now()
}

// Stats is a snapshot of scheduler bookkeeping exposed for observability.
type Stats struct {
	Overruns uint64
}

// Scheduler owns the Cpu, the lock that protects every access to it, and the
// breakpoint/pacing state a non-interactive run loop or an interactive
// debugger needs. The zero Scheduler is not usable; build one with New.
type Scheduler struct {
	mu  sync.Mutex
	cpu *cpu.Cpu

	ClockSpeed uint64 // cycles per second target; 0 means the 2 MHz default
	MaxSpeed   bool   // when true, never sleeps to match ClockSpeed

	Breakpoints []uint16

	halted atomic.Bool // the only lock-free datum: read by the run loop and by callers wanting a quick status check

	overruns atomic.Uint64
}

// New returns a Scheduler driving cpu, halted until Run is called.
func New(c *cpu.Cpu) *Scheduler {
	s := &Scheduler{cpu: c, ClockSpeed: 2_000_000}
	s.halted.Store(true)
	return s
}

// Load copies data into RAM at offset, through the Bus, without resetting
// the CPU.
func (s *Scheduler) Load(data []byte, offset uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range data {
		s.cpu.Write(offset+uint16(i), b)
	}
}

// Disassemble sweeps the CPU's address space through disasm.Sweep, under
// the lock so it sees a consistent memory image.
func (s *Scheduler) Disassemble() []disasm.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return disasm.Sweep(s.cpu)
}

// Reset resets the CPU. Configured breakpoints are left in place.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cpu.Reset()
}

// IsHalted reports whether the run loop is currently stopped.
func (s *Scheduler) IsHalted() bool {
	return s.halted.Load()
}

// Pause signals the run loop to stop after its current instruction.
func (s *Scheduler) Pause() {
	s.halted.Store(true)
}

// Stats returns a snapshot of scheduler-level counters.
func (s *Scheduler) Stats() Stats {
	return Stats{Overruns: s.overruns.Load()}
}

// Step runs exactly one instruction to completion: a Clock to fetch and
// execute, then further Clocks until the instruction's cycle debt is paid.
func (s *Scheduler) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step()
}

func (s *Scheduler) step() {
	s.cpu.Clock()
	for s.cpu.CyclesLeft > 0 {
		s.cpu.Clock()
	}
}

// hitBreakpoint reports whether the CPU's PC matches a configured
// breakpoint. Called with the lock held.
func (s *Scheduler) hitBreakpoint() bool {
	for _, bp := range s.Breakpoints {
		if bp == s.cpu.PC {
			return true
		}
	}
	return false
}

// Run starts the executor loop on its own goroutine and returns
// immediately; call Pause (or let BRK halt the CPU in non-interactive mode)
// to stop it. Run is a no-op if the scheduler is already running.
func (s *Scheduler) Run() {
	if !s.halted.CompareAndSwap(true, false) {
		return
	}

	go func() {
		frame := NewFrameTimer(60, s.effectiveClockSpeed())

		for {
			if s.halted.Load() {
				return
			}

			s.mu.Lock()
			before := s.cpu.Cycles
			s.step()
			for n := s.cpu.Cycles - before; n > 0; n-- {
				frame.Clock()
			}
			halted := s.cpu.Halted() || s.hitBreakpoint()
			s.mu.Unlock()

			if halted {
				s.halted.Store(true)
				return
			}

			if !s.MaxSpeed && frame.Computed() {
				if frame.TimeRemaining() == 0 {
					s.overruns.Add(1)
				}
				frame.Sleep()
				frame.Reset()
			}
		}
	}()
}

func (s *Scheduler) effectiveClockSpeed() uint64 {
	if s.ClockSpeed == 0 {
		return 2_000_000
	}
	return s.ClockSpeed
}

// CPU returns the scheduler's underlying Cpu for read-only inspection by a
// debug surface. Callers must not mutate CPU fields outside the scheduler's
// lock; see package debug for a safe accessor.
func (s *Scheduler) CPU() *cpu.Cpu {
	return s.cpu
}

// WithLock runs f with the scheduler's lock held, giving callers — the
// debug surface, principally — a way to take a consistent multi-field
// snapshot of CPU state.
func (s *Scheduler) WithLock(f func(c *cpu.Cpu)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.cpu)
}
