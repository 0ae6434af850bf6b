// Package stats records the size of the QAP of each test circuit, to catch
// regressions in the constraint systems or in the transform.
package stats

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/fxamacker/cbor/v2"

	"github.com/tumberger/zkcore/internal/circuits"
	"github.com/tumberger/zkcore/qap"
)

func NewGlobalStats() *globalStats {
	return &globalStats{
		Stats: make(map[string]snippetStats),
	}
}

func (s *globalStats) Save(path string) error {
	fStats, err := os.Create(path) //#nosec G304 -- ignoring internal package
	if err != nil {
		return err
	}

	// deterministic encoding so that snapshots can be compared byte for byte
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		_ = fStats.Close()
		return err
	}

	s.RLock()
	err = em.NewEncoder(fStats).Encode(s.Stats)
	s.RUnlock()
	if cErr := fStats.Close(); err == nil {
		err = cErr
	}
	return err
}

func (s *globalStats) Load(path string) error {
	fStats, err := os.Open(path) //#nosec G304 -- ignoring internal package
	if err != nil {
		return err
	}

	s.Lock()
	err = cbor.NewDecoder(fStats).Decode(&s.Stats)
	s.Unlock()
	_ = fStats.Close()
	return err
}

// NewSnippetStats computes the QAP of the valid witness of tc and returns its dimensions.
func NewSnippetStats(tc circuits.TestCircuit) (snippetStats, error) {
	a, err := qap.Transform(tc.System, tc.ValidWitness)
	if err != nil {
		return snippetStats{}, err
	}

	return snippetStats{
		NbConstraints:  tc.System.GetNbConstraints(),
		NbWires:        tc.System.GetNbWires(),
		NbCoefficients: len(tc.System.Coefficients.Coeffs),
		DegreeT:        a.T.Degree(),
		DegreeH:        a.H.Degree(),
	}, nil
}

func (s *globalStats) Add(cs snippetStats, circuitName string) {
	s.Lock()
	defer s.Unlock()
	s.Stats[circuitName] = cs
}

// Collect computes the stats of every registered circuit.
func (s *globalStats) Collect() error {
	names := make([]string, 0, len(circuits.Circuits))
	for name := range circuits.Circuits {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cs, err := NewSnippetStats(circuits.Circuits[name])
		if err != nil {
			return fmt.Errorf("circuit %s: %w", name, err)
		}
		s.Add(cs, name)
	}
	return nil
}

type globalStats struct {
	sync.RWMutex
	Stats map[string]snippetStats
}

type snippetStats struct {
	NbConstraints, NbWires, NbCoefficients int
	DegreeT, DegreeH                       int
}

func (cs snippetStats) String() string {
	return fmt.Sprintf("nbConstraints: %d, nbWires: %d, nbCoefficients: %d, deg T: %d, deg H: %d",
		cs.NbConstraints, cs.NbWires, cs.NbCoefficients, cs.DegreeT, cs.DegreeH)
}
