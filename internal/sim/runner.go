// Package sim drives the day loop: snapshot, candidate enumeration, policy
// choice, action application, market tick, construction contribution,
// telemetry. One call advances exactly one simulated day.
package sim

import (
	"fmt"
	"log/slog"

	"github.com/tmorvan/statesim/internal/country"
	"github.com/tmorvan/statesim/internal/encode"
	"github.com/tmorvan/statesim/internal/models"
	"github.com/tmorvan/statesim/internal/policy"
	"github.com/tmorvan/statesim/internal/telemetry"
)

// Config wires a runner together. Telemetry is optional; Logger defaults to
// slog's default logger.
type Config struct {
	Days      int
	Policy    policy.Policy
	Telemetry *telemetry.DB
	Logger    *slog.Logger
}

// DayResult reports what one day did
type DayResult struct {
	Day            int
	Chosen         models.Action
	Applied        models.Action // Chosen, or NoAction when the choice was rejected
	RejectionCause error
	Completed      bool // construction finished this day
	TotalCash      float64
}

// Runner advances one country day by day
type Runner struct {
	Country  *country.Country
	Registry *encode.Registry

	cfg   Config
	log   *slog.Logger
	runID string
}

// NewRunner builds a runner and its identifier registry
func NewRunner(c *country.Country, cfg Config) *Runner {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		Country:  c,
		Registry: encode.NewRegistry(c.States()),
		cfg:      cfg,
		log:      log,
	}
}

// TotalCash sums cash reserves across all states, the run's score
func (r *Runner) TotalCash() float64 {
	var total float64
	for _, s := range r.Country.States() {
		total += s.TotalCash()
	}
	return total
}

// RunDay advances the economy by exactly one day
func (r *Runner) RunDay(day int) (*DayResult, error) {
	record := r.Country.DailyRecord(r.Registry)
	candidates := r.Country.Candidates()
	chosen := r.cfg.Policy.Choose(record, candidates)

	result := &DayResult{Day: day, Chosen: chosen, Applied: chosen}

	if err := r.Country.Apply(chosen); err != nil {
		// Rejected actions are reported, never fatal: the day proceeds
		// as if NoAction had been chosen.
		r.log.Warn("action rejected", "day", day, "action", chosen.Kind.String(),
			"building", chosen.BuildingName, "err", err)
		result.Applied = models.NoAction(chosen.StateID, chosen.BuildingName)
		result.RejectionCause = err
	}

	// One construction unit of output contributes one currency unit of
	// build effort.
	var contribution float64
	for _, state := range r.Country.States() {
		tick := state.Tick()
		for _, produced := range tick.Productions {
			contribution += produced[models.Construction]
		}
	}

	if r.Country.ContributeConstruction(contribution) {
		result.Completed = true
		r.log.Info("construction complete", "day", day)
	}

	result.TotalCash = r.TotalCash()

	if r.cfg.Telemetry != nil {
		if err := r.cfg.Telemetry.AppendDaily(r.runID, day, result.Applied, result.TotalCash, record); err != nil {
			return result, fmt.Errorf("telemetry day %d: %w", day, err)
		}
	}

	return result, nil
}

// Run executes the configured number of days and returns the final score
func (r *Runner) Run() (float64, error) {
	if r.cfg.Telemetry != nil {
		id, err := r.cfg.Telemetry.StartRun(r.cfg.Policy.Name(), r.Country.ID)
		if err != nil {
			return 0, err
		}
		r.runID = id
	}

	for day := 1; day <= r.cfg.Days; day++ {
		if _, err := r.RunDay(day); err != nil {
			return 0, err
		}
	}

	score := r.TotalCash()
	r.log.Info("run complete", "days", r.cfg.Days, "score", score)

	if r.cfg.Telemetry != nil {
		if err := r.cfg.Telemetry.WriteFinalScore(r.runID, r.cfg.Days, score); err != nil {
			return score, err
		}
	}

	return score, nil
}

// RunID returns the telemetry run id, if telemetry is attached
func (r *Runner) RunID() string {
	return r.runID
}
