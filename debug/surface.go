// Package debug exposes a read-only view of a running machine — registers,
// flags, a RAM window, the in-flight instruction — safe to poll from a UI
// goroutine while the scheduler's executor goroutine is running, plus the
// handful of commands (step, reset, run, pause) a debugger needs to drive
// it.
package debug

import (
	"gone6502/cpu"
	"gone6502/scheduler"
)

// Snapshot is a consistent, point-in-time copy of CPU state, safe to read
// without holding any lock.
type Snapshot struct {
	A, X, Y byte
	SP      byte
	PC      uint16
	Flags   cpu.Flags

	Cycles       uint64
	Instructions uint64
	Current      cpu.InstructionRecord

	Stats scheduler.Stats
}

// Surface wraps a Scheduler with the read-only inspection a debugger needs.
type Surface struct {
	sched *scheduler.Scheduler
}

// New returns a Surface over sched.
func New(sched *scheduler.Scheduler) *Surface {
	return &Surface{sched: sched}
}

// Snapshot takes a consistent snapshot of CPU state under the scheduler's
// lock.
func (s *Surface) Snapshot() Snapshot {
	var snap Snapshot
	s.sched.WithLock(func(c *cpu.Cpu) {
		snap = Snapshot{
			A: c.A, X: c.X, Y: c.Y,
			SP:           c.SP,
			PC:           c.PC,
			Flags:        c.Flags,
			Cycles:       c.Cycles,
			Instructions: c.Instructions,
			Current:      c.Current,
		}
	})
	snap.Stats = s.sched.Stats()
	return snap
}

// RAMWindow returns length bytes of RAM starting at start, read under the
// scheduler's lock.
func (s *Surface) RAMWindow(start uint16, length int) []byte {
	out := make([]byte, length)
	s.sched.WithLock(func(c *cpu.Cpu) {
		for i := range out {
			out[i] = c.Read(start + uint16(i))
		}
	})
	return out
}

// Step executes exactly one instruction.
func (s *Surface) Step() { s.sched.Step() }

// Reset resets the CPU.
func (s *Surface) Reset() { s.sched.Reset() }

// Run starts (or resumes) free execution.
func (s *Surface) Run() { s.sched.Run() }

// Pause stops free execution after the current instruction.
func (s *Surface) Pause() { s.sched.Pause() }

// Halted reports whether the scheduler's executor is currently stopped.
func (s *Surface) Halted() bool { return s.sched.IsHalted() }
