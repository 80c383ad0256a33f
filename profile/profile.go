package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profiler controls the lifecycle of a profiling session: [Profiler.Start]
// applies sampling rates and begins CPU profiling, [Profiler.Stop] ends it
// and writes every enabled snapshot profile.
//
// Create instances with [Config.NewProfiler].
type Profiler struct {
	cpuFile *os.File
	Config
}

// Start applies the configured runtime sampling rates and, when a CPU
// profile path is set, begins CPU profiling.
func (p *Profiler) Start() error {
	runtime.MemProfileRate = p.MemProfileRate
	runtime.SetBlockProfileRate(p.BlockProfileRate)
	runtime.SetMutexProfileFraction(p.MutexProfileFraction)

	if p.CPUProfile == "" {
		return nil
	}

	f, err := os.Create(p.CPUProfile)
	if err != nil {
		return fmt.Errorf("creating CPU profile: %w", err)
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		return errors.Join(fmt.Errorf("starting CPU profile: %w", err), f.Close())
	}

	p.cpuFile = f

	return nil
}

// Stop ends CPU profiling (if it was started) and writes all enabled
// snapshot profiles.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		if err := p.cpuFile.Close(); err != nil {
			return fmt.Errorf("closing CPU profile: %w", err)
		}

		p.cpuFile = nil
	}

	for name, path := range p.snapshots() {
		if path == "" {
			continue
		}

		if err := writeSnapshot(name, path); err != nil {
			return err
		}
	}

	return nil
}

// snapshots maps pprof profile names to their configured output paths.
func (p *Profiler) snapshots() map[string]string {
	return map[string]string{
		"heap":      p.HeapProfile,
		"allocs":    p.AllocsProfile,
		"goroutine": p.GoroutineProfile,
		"block":     p.BlockProfile,
		"mutex":     p.MutexProfile,
	}
}

// writeSnapshot writes the named pprof snapshot profile to path.
func writeSnapshot(name, path string) error {
	prof := pprof.Lookup(name)
	if prof == nil {
		return fmt.Errorf("unknown profile: %s", name)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s profile: %w", name, err)
	}

	if err := prof.WriteTo(f, 0); err != nil {
		return errors.Join(fmt.Errorf("write %s profile: %w", name, err), f.Close())
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s profile: %w", name, err)
	}

	return nil
}
