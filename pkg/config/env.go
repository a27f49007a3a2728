package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// applyEnvOverrides applies the recognized environment-level options on top
// of the merged configuration. These are the operational knobs exposed to
// deployments that tune the kernel without shipping a YAML file.
func applyEnvOverrides(cfg *Config) error {
	ov := &envOverrides{}

	ov.seconds("AGE_CEILING_S", &cfg.Scoring.AgeCeiling)
	ov.seconds("DEADLINE_HORIZON_S", &cfg.Scoring.DeadlineHorizon)
	ov.seconds("SLA_URGENCY_WINDOW_S", &cfg.Scoring.SLAUrgencyWindow)
	ov.float("SLA_BOOST_MULTIPLIER", &cfg.Scoring.SLABoostMultiplier)
	ov.seconds("STARVATION_LIMIT_S", &cfg.Scoring.StarvationLimit)
	ov.float("STARVATION_FLOOR_SCORE", &cfg.Scoring.StarvationFloorScore)

	ov.seconds("CLAIM_TTL_S", &cfg.Queue.ClaimTTL)
	ov.seconds("VALIDATOR_TIMEOUT_S", &cfg.Validation.ValidatorTimeout)

	ov.seconds("DIAGNOSTIC_STUCK_THRESHOLD_S", &cfg.Diagnostic.StuckThreshold)
	ov.seconds("DIAGNOSTIC_COOLDOWN_S", &cfg.Diagnostic.Cooldown)
	ov.integer("MAX_CONSECUTIVE_FAILURES", &cfg.Diagnostic.MaxConsecutiveFailures)
	ov.integer("MAX_DIAGNOSTICS_PER_WORKFLOW", &cfg.Diagnostic.MaxDiagnosticsPerWorkflow)
	ov.integer("MAX_RECOVERY_TASKS", &cfg.Diagnostic.MaxRecoveryTasks)

	ov.float("DEDUP_THRESHOLD_SPEC", &cfg.Dedup.SpecThreshold)
	ov.float("DEDUP_THRESHOLD_REQ", &cfg.Dedup.RequirementThreshold)
	ov.float("DEDUP_THRESHOLD_TASK", &cfg.Dedup.TaskThreshold)
	ov.float("DEDUP_THRESHOLD_DIAG", &cfg.Dedup.DiagnosticThreshold)

	return ov.err
}

// envOverrides accumulates the first parse error instead of forcing every
// call site to branch.
type envOverrides struct {
	err error
}

func (o *envOverrides) seconds(key string, dst *time.Duration) {
	o.parse(key, func(raw string) error {
		secs, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*dst = time.Duration(secs) * time.Second
		return nil
	})
}

func (o *envOverrides) integer(key string, dst *int) {
	o.parse(key, func(raw string) error {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	})
}

func (o *envOverrides) float(key string, dst *float64) {
	o.parse(key, func(raw string) error {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*dst = f
		return nil
	})
}

func (o *envOverrides) parse(key string, apply func(string) error) {
	if o.err != nil {
		return
	}
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return
	}
	if err := apply(raw); err != nil {
		o.err = fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, raw, err)
	}
}
