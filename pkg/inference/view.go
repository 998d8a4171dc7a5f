package inference

import (
	"sort"

	"paddy-kbs-be/internal/entity"
)

type factKey struct {
	subject   string
	predicate string
	object    string
}

// View is the in-memory mirror of one session scope. The pipeline keeps it
// in step with every statement it applies so later stages read what earlier
// stages wrote without another round trip.
type View struct {
	scope string
	facts map[factKey]entity.Fact
}

func NewView(scope string, facts ...entity.Fact) *View {
	v := &View{scope: scope, facts: make(map[factKey]entity.Fact)}
	for _, f := range facts {
		if f.Scope == scope {
			v.facts[keyOf(f)] = f
		}
	}
	return v
}

func keyOf(f entity.Fact) factKey {
	return factKey{subject: f.Subject, predicate: f.Predicate, object: f.Object}
}

func (v *View) Scope() string {
	return v.scope
}

// Apply mirrors a statement: retractions first, then assertions.
func (v *View) Apply(stmt entity.Statement) {
	for _, p := range stmt.Retract {
		for k, f := range v.facts {
			if p.Matches(f) {
				delete(v.facts, k)
			}
		}
	}
	for _, f := range stmt.Assert {
		if f.Scope == v.scope {
			v.facts[keyOf(f)] = f
		}
	}
}

func (v *View) Has(subject, predicate, object string) bool {
	_, ok := v.facts[factKey{subject: subject, predicate: predicate, object: object}]
	return ok
}

// Values returns every object of (subject, predicate) in lexical order.
func (v *View) Values(subject, predicate string) []string {
	var out []string
	for k := range v.facts {
		if k.subject == subject && k.predicate == predicate {
			out = append(out, k.object)
		}
	}
	sort.Strings(out)
	return out
}

// Value returns the lexically first object of (subject, predicate).
func (v *View) Value(subject, predicate string) (string, bool) {
	vals := v.Values(subject, predicate)
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// Subjects returns every subject holding (predicate, object) in lexical order.
func (v *View) Subjects(predicate, object string) []string {
	var out []string
	for k := range v.facts {
		if k.predicate == predicate && k.object == object {
			out = append(out, k.subject)
		}
	}
	sort.Strings(out)
	return out
}

// Facts returns the mirrored facts ordered by subject, predicate, object.
func (v *View) Facts() []entity.Fact {
	out := make([]entity.Fact, 0, len(v.facts))
	for _, f := range v.facts {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return entity.FactLess(out[i], out[j]) })
	return out
}

func (v *View) Len() int {
	return len(v.facts)
}
