// ploc2d-locate runs one locate job on a Sick PLOC2D device and prints the
// result.
//
// Device settings come from a TOML file (-config), overridable by PLOC2D_*
// environment variables. Exit status: 0 on a successful locate, 1 when the
// device reports a locate error, 2 on transport or configuration failure.
//
// Usage:
//
//	ploc2d-locate -config device.toml -job 1
//	PLOC2D_HOST=10.78.1.156 ploc2d-locate -job 1 -match 2
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ryan-topping/sick-ploc2d/logger"
	"github.com/ryan-topping/sick-ploc2d/ploc2d"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath = flag.String("config", "", "path to TOML config file")
		jobID      = flag.Int("job", 1, "job id to run")
		matchID    = flag.Int("match", 0, "match id to report (0 = device default)")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	log := logger.GetLogger()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		return 2
	}
	if cfg.Verbose || *verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	sessionCfg, err := ploc2d.NewSessionConfig(cfg.Host,
		ploc2d.WithPort(cfg.Port),
		ploc2d.WithTimeout(cfg.Timeout),
		ploc2d.WithBufferSize(cfg.BufferSize),
	)
	if err != nil {
		log.Error("invalid device configuration", "host", cfg.Host, "error", err)
		return 2
	}

	ctx := context.Background()

	session := ploc2d.NewSession(sessionCfg)
	if err := session.Connect(ctx); err != nil {
		log.Error("failed to connect to device", "host", cfg.Host, "port", cfg.Port, "error", err)
		return 2
	}
	defer session.Disconnect()

	var opts []ploc2d.JobOption
	if *matchID > 0 {
		opts = append(opts, ploc2d.WithMatch(*matchID))
	}

	result, err := session.RunJob(ctx, *jobID, opts...)
	if err != nil {
		log.Error("job failed", "job", *jobID, "error", err)
		return 2
	}

	printResult(result)

	if result.IsError() {
		return 1
	}
	return 0
}

func printResult(r *ploc2d.Result) {
	fmt.Printf("result:     %s (id %d, %s)\n", r.ResultType, r.ResultID, r.Timestamp.Format("2006-01-02 15:04:05"))
	if r.IsError() {
		fmt.Printf("error:      %s %s\n", r.ErrorCode, r.ErrorText)
	}
	fmt.Printf("job/match:  %d/%d (%d matches)\n", r.JobID, r.MatchID, r.Matches)
	fmt.Printf("pose:       x=%g y=%g z=%g r1=%g r2=%g r3=%g scale=%g\n",
		r.X, r.Y, r.Z, r.R1, r.R2, r.R3, r.Scale)
	fmt.Printf("score:      %d\n", r.Score)
	fmt.Printf("time:       %d ms, exposure %d, identified %d\n", r.Time, r.Exposure, r.Identified)
}
