package ddg

import (
	"fmt"
	"time"
)

// scoreState is where one structure stands in the scoring stage.
type scoreState int

const (
	statePending scoreState = iota
	stateRunning
	stateScored
	stateFailed
)

// scoreTask tracks one structure file through scoring attempts.
type scoreTask struct {
	file     string
	attempts int
	state    scoreState
}

// Scorer runs Stability over every repaired structure, reference and
// mutants alike. Stability fails sporadically on some machines, so each
// file gets a bounded number of attempts with a fixed pause between them.
type Scorer struct {
	foldx *FoldX
	store *Store

	// attempts allowed per file before it is given up on
	maxRetries int

	// pause between attempts on the same file
	delay time.Duration

	sleep func(time.Duration)
}

// NewScorer returns a Scorer with the given retry budget.
func NewScorer(foldx *FoldX, store *Store, maxRetries int, delay time.Duration) *Scorer {
	return &Scorer{
		foldx:      foldx,
		store:      store,
		maxRetries: maxRetries,
		delay:      delay,
		sleep:      time.Sleep,
	}
}

// Run scores every file matching base_Repair*.pdb that does not already
// hold a usable energy record. Files whose retry budget runs out are
// returned rather than failing the stage: one stubborn model should not
// sink the rest of the run, it just ends up absent from the report.
func (s *Scorer) Run(base string) (failed []string, err error) {
	pattern := base + "_Repair*.pdb"
	files, err := s.store.Glob(pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files found matching %s", pattern)
	}

	var queue []*scoreTask
	for _, f := range files {
		if s.scored(f) {
			stderr.Printf("skipping %s, already has an energy record", f)
			continue
		}
		queue = append(queue, &scoreTask{file: f, state: statePending})
	}

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		t.state = stateRunning
		t.attempts++
		if err := s.foldx.Stability(t.file); err != nil {
			stderr.Printf("stability attempt %d/%d failed for %s: %v", t.attempts, s.maxRetries, t.file, err)

			if t.attempts < s.maxRetries {
				t.state = statePending
				s.sleep(s.delay)
				queue = append(queue, t)
			} else {
				t.state = stateFailed
				failed = append(failed, t.file)
			}
			continue
		}

		t.state = stateScored
		stderr.Printf("scored %s", t.file)
	}

	return failed, nil
}

// scored reports whether file already has an energy record with a
// readable energy value in it. Presence alone is not trusted: a crashed
// prior run can leave an empty or truncated record behind, and that file
// needs to be scored again, not aggregated.
func (s *Scorer) scored(file string) bool {
	rec := EnergyRecord(file)
	if !s.store.Exists(rec) {
		return false
	}

	data, err := s.store.Read(rec)
	if err != nil {
		return false
	}

	_, err = parseEnergy(data)
	return err == nil
}
