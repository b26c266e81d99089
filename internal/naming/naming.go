// Package naming makes proposed channel names unique by applying an ordered
// list of rewrite strategies until the name is no longer taken.
package naming

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/rpt2ogd77/rpt2ogd77/internal/channel"
)

// MaxIterations defines the max. number of rewrites for a single name.
const MaxIterations = 256

// ErrUnresolvable is returned when no unique name could be found.
var ErrUnresolvable = errors.New("unable to find a unique channel name")

// Set defines the set of names that are already claimed.
type Set interface {
	Contains(name string) bool
}

// MapSet implements Set using a map.
type MapSet map[string]struct{}

// Contains implements Set.
func (s MapSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Add adds the given name to the set.
func (s MapSet) Add(name string) {
	s[name] = struct{}{}
}

// Resolve returns a name, derived from proposed, that is not contained by
// taken. On each iteration the first applicable strategy (in the order of
// Strategies) rewrites the name.
func Resolve(proposed string, taken Set, t channel.Type) (string, error) {
	name := proposed

	for i := 0; taken.Contains(name); i++ {
		if i == MaxIterations {
			return "", errors.Wrapf(ErrUnresolvable, "%q", proposed)
		}

		s := next([]rune(name))
		rewritten := string(s.Apply([]rune(name), t))
		rewriteCounter(s.ID()).Inc()

		if s.Lossy() {
			log.WithFields(log.Fields{
				"name":     name,
				"new_name": rewritten,
			}).Warning("naming: forced to shorten name")
		} else {
			log.WithFields(log.Fields{
				"name":     name,
				"new_name": rewritten,
				"strategy": s.ID(),
			}).Debug("naming: name already taken, rewriting")
		}

		name = rewritten
	}

	return name, nil
}

func next(name []rune) Strategy {
	for _, s := range Strategies {
		if s.Applies(name) {
			return s
		}
	}

	// the last strategy always applies
	return Strategies[len(Strategies)-1]
}
