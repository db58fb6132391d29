package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/younwookim/stride/internal/application/replay"
	"github.com/younwookim/stride/internal/application/session"
	"github.com/younwookim/stride/internal/application/state"
	"github.com/younwookim/stride/internal/domain/vecmath"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// ReplaySummary is the outcome of a headless replay
type ReplaySummary struct {
	Level    string
	Stats    session.Stats
	Final    vecmath.Vec3
	State    state.Locomotion
	Grounded bool
}

// simulateReplay plays data through a fresh session of its level
func simulateReplay(loader *config.Loader, data *replay.ReplayData, log *zap.Logger) (ReplaySummary, error) {
	cfg, levelCfg, err := loader.LoadAll(data.Level)
	if err != nil {
		return ReplaySummary{}, err
	}

	sess, err := session.New(cfg, levelCfg, log)
	if err != nil {
		return ReplaySummary{}, err
	}

	r := replay.NewReplayer(*data)
	dt := r.DT()
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		if _, err := sess.StepReplay(in, dt); err != nil {
			return ReplaySummary{}, fmt.Errorf("frame %d: %w", r.CurrentFrame()-1, err)
		}
	}

	last := sess.Last()
	return ReplaySummary{
		Level:    sess.Level().Name,
		Stats:    sess.Stats(),
		Final:    sess.Position(),
		State:    last.State,
		Grounded: last.Grounded,
	}, nil
}

// runReplay loads a recording and writes its summary to w
func runReplay(w io.Writer, loader *config.Loader, path string, log *zap.Logger) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}
	if data.Level == "" {
		data.Level = "demo"
	}

	summary, err := simulateReplay(loader, data, log)
	if err != nil {
		return err
	}

	s := summary.Stats
	fmt.Fprintf(w, "level:     %s\n", summary.Level)
	fmt.Fprintf(w, "frames:    %d\n", s.Frames)
	fmt.Fprintf(w, "jumps:     %d\n", s.Jumps)
	fmt.Fprintf(w, "falls:     %d\n", s.Falls)
	fmt.Fprintf(w, "landings:  %d\n", s.Landings)
	fmt.Fprintf(w, "emotes:    %d\n", s.Emotes)
	fmt.Fprintf(w, "distance:  %.3f\n", s.Distance)
	fmt.Fprintf(w, "final:     (%.3f, %.3f, %.3f) %s grounded=%t\n",
		summary.Final.X, summary.Final.Y, summary.Final.Z, summary.State, summary.Grounded)
	return nil
}
