// Package profile adds opt-in runtime profiling to the toon CLI.
//
// It exposes CPU, heap, allocs, goroutine, block, and mutex profiles
// through command-line flags, so encode/decode runs over large
// documents can be captured with pprof without a rebuild. Use
// [Config.RegisterFlags] to add the CLI flags and
// [Config.RegisterCompletions] to wire up shell completions.
//
// Typical usage creates a [Config], registers flags, then creates a
// [Profiler] to wrap command execution:
//
//	cfg := profile.NewConfig()
//	p := cfg.NewProfiler()
//
//	rootCmd := &cobra.Command{
//	    PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
//	        return p.Start()
//	    },
//	    PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
//	        return p.Stop()
//	    },
//	}
//
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
// Users then enable profiling via flags like --cpu-profile=cpu.prof.
package profile
