package entity

// BackgroundScope is the graph holding the knowledge base itself.
// Session facts and everything the pipeline derives live in a scope named
// after the session id.
const BackgroundScope = ""

// Fact is a single subject/predicate/object triple inside a scope.
type Fact struct {
	Scope     string
	Subject   string
	Predicate string
	Object    string
	Ref       bool // Object names another node instead of holding a literal
}

// Literal builds a fact whose object is a plain value.
func Literal(scope, subject, predicate, object string) Fact {
	return Fact{Scope: scope, Subject: subject, Predicate: predicate, Object: object}
}

// Link builds a fact whose object is another node.
func Link(scope, subject, predicate, object string) Fact {
	return Fact{Scope: scope, Subject: subject, Predicate: predicate, Object: object, Ref: true}
}

// Pattern selects facts. Subject, Predicate and Object match anything when
// empty; Scope always matches exactly.
type Pattern struct {
	Scope     string
	Subject   string
	Predicate string
	Object    string
}

func (p Pattern) Matches(f Fact) bool {
	if f.Scope != p.Scope {
		return false
	}
	if p.Subject != "" && f.Subject != p.Subject {
		return false
	}
	if p.Predicate != "" && f.Predicate != p.Predicate {
		return false
	}
	if p.Object != "" && f.Object != p.Object {
		return false
	}
	return true
}

// Statement is one write against the fact store. Retractions are applied
// before assertions.
type Statement struct {
	Retract []Pattern
	Assert  []Fact
}

func (s Statement) IsEmpty() bool {
	return len(s.Retract) == 0 && len(s.Assert) == 0
}

// FactLess orders facts by subject, predicate, object.
func FactLess(a, b Fact) bool {
	if a.Subject != b.Subject {
		return a.Subject < b.Subject
	}
	if a.Predicate != b.Predicate {
		return a.Predicate < b.Predicate
	}
	return a.Object < b.Object
}
