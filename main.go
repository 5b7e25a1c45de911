package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/haldorsen/cdclsat/internal/dimacs"
	"github.com/haldorsen/cdclsat/internal/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagRestart = flag.Int(
	"restart",
	sat.DefaultOptions.RestartInterval,
	"restart the search every n-th conflict; 0 disables restarts",
)

var flagGzip = flag.Bool(
	"gz",
	false,
	"treat the instance file as gzip-compressed (auto-detected from a .gz suffix regardless)",
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		restart:      *flagRestart,
		gzip:         *flagGzip,
	}, nil
}

type config struct {
	instanceFile string
	memProfile   bool
	cpuProfile   bool
	restart      int
	gzip         bool
}

// run loads the instance, solves it, and prints the result in the format
// demanded by §6: an "s" line reporting SATISFIABLE/UNSATISFIABLE, a "v"
// line carrying the witness when satisfiable, and "c" comment lines with
// search statistics. It returns an error only for I/O or input-format
// failures (§7); those map to a nonzero exit code in main.
func run(cfg *config) error {
	s := sat.NewSolver(sat.Options{RestartInterval: cfg.restart})

	if err := dimacs.LoadDIMACS(cfg.instanceFile, cfg.gzip, s); err != nil {
		return fmt.Errorf("could not load instance: %w", err)
	}

	fmt.Printf("c variables: %d\n", s.NumVariables())
	fmt.Printf("c clauses:   %d\n", s.NumConstraints())

	start := time.Now()
	status := s.Solve()
	elapsed := time.Since(start)

	switch status {
	case sat.True:
		fmt.Println("s SATISFIABLE")
		fmt.Print("v")
		for _, l := range s.Model() {
			fmt.Printf(" %s", l)
		}
		fmt.Println(" 0")
	case sat.False:
		fmt.Println("s UNSATISFIABLE")
	default:
		// The core always terminates with a decision (§4.6); reaching this
		// would indicate an internal invariant failure, not a valid outcome.
		log.Fatalf("sat: Solve() returned %s, want a decision", status)
	}

	fmt.Printf("c time (sec):   %f\n", elapsed.Seconds())
	fmt.Printf("c decisions:    %d\n", s.Decisions)
	fmt.Printf("c propagations: %d\n", s.Propagations)
	fmt.Printf("c conflicts:    %d\n", s.Conflicts)
	fmt.Printf("c restarts:     %d\n", s.Restarts)
	fmt.Printf("c learnts:      %d\n", s.NumLearnts())

	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
