package factstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/repository/contract"
	"paddy-kbs-be/pkg/sparql"
)

const (
	rdfType         = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	sessionGraphIRI = "urn:paddy:session:"
)

// SparqlStore maps facts onto a SPARQL 1.1 dataset. Node ids are local
// names under the ontology IRI; session scopes are named graphs.
type SparqlStore struct {
	client *sparql.Client
	onto   string
}

func NewSparqlStore(client *sparql.Client, ontologyIRI string) *SparqlStore {
	return &SparqlStore{client: client, onto: ontologyIRI}
}

var _ contract.FactStore = (*SparqlStore)(nil)

func (s *SparqlStore) node(local string) string {
	return sparql.IRI(s.onto + local)
}

func (s *SparqlStore) predicate(local string) string {
	if local == entity.PredType {
		return sparql.IRI(rdfType)
	}
	return s.node(local)
}

func (s *SparqlStore) object(f entity.Fact) string {
	if f.Ref || f.Predicate == entity.PredType {
		return s.node(f.Object)
	}
	return sparql.Literal(f.Object)
}

func (s *SparqlStore) local(iri string) string {
	if iri == rdfType {
		return entity.PredType
	}
	return strings.TrimPrefix(iri, s.onto)
}

func graphIRI(scope string) string {
	return sparql.IRI(sessionGraphIRI + scope)
}

func inScope(scope, triples string) string {
	if scope == entity.BackgroundScope {
		return triples
	}
	return "GRAPH " + graphIRI(scope) + " { " + triples + " }"
}

// where renders the graph pattern for p with ?s ?p ?o bound where p leaves
// a field open. An object filter matches both the literal and the node form.
func (s *SparqlStore) where(p entity.Pattern) string {
	subj, pred := "?s", "?p"
	if p.Subject != "" {
		subj = s.node(p.Subject)
	}
	if p.Predicate != "" {
		pred = s.predicate(p.Predicate)
	}
	clause := inScope(p.Scope, subj+" "+pred+" ?o .")
	if p.Object != "" {
		clause += fmt.Sprintf(" FILTER(?o = %s || ?o = %s)", sparql.Literal(p.Object), s.node(p.Object))
	}
	return clause
}

func (s *SparqlStore) Query(ctx context.Context, p entity.Pattern) ([]entity.Fact, error) {
	q := fmt.Sprintf("SELECT ?s ?p ?o WHERE { %s }", s.where(p))
	res, err := s.client.Query(ctx, q)
	if err != nil {
		return nil, classifySparqlError("query", err)
	}

	facts := make([]entity.Fact, 0, len(res.Results.Bindings))
	for _, row := range res.Results.Bindings {
		f := entity.Fact{Scope: p.Scope, Subject: p.Subject, Predicate: p.Predicate}
		if b, ok := row["s"]; ok {
			f.Subject = s.local(b.Value)
		}
		if b, ok := row["p"]; ok {
			f.Predicate = s.local(b.Value)
		}
		o := row["o"]
		if o.IsIRI() {
			f.Object = s.local(o.Value)
			f.Ref = true
		} else {
			f.Object = o.Value
		}
		facts = append(facts, f)
	}
	sort.Slice(facts, func(i, j int) bool { return entity.FactLess(facts[i], facts[j]) })
	return facts, nil
}

// Update sends the whole statement as one request so the endpoint applies
// it atomically.
func (s *SparqlStore) Update(ctx context.Context, stmt entity.Statement) error {
	if stmt.IsEmpty() {
		return nil
	}

	var ops []string
	for _, p := range stmt.Retract {
		ops = append(ops, s.deleteOp(p))
	}

	byScope := make(map[string][]string)
	var scopes []string
	for _, f := range stmt.Assert {
		if _, ok := byScope[f.Scope]; !ok {
			scopes = append(scopes, f.Scope)
		}
		byScope[f.Scope] = append(byScope[f.Scope], s.node(f.Subject)+" "+s.predicate(f.Predicate)+" "+s.object(f)+" .")
	}
	for _, scope := range scopes {
		ops = append(ops, "INSERT DATA { "+inScope(scope, strings.Join(byScope[scope], " "))+" }")
	}

	if err := s.client.Update(ctx, strings.Join(ops, " ;\n")); err != nil {
		return classifySparqlError("update", err)
	}
	return nil
}

func (s *SparqlStore) deleteOp(p entity.Pattern) string {
	subj, pred := "?s", "?p"
	if p.Subject != "" {
		subj = s.node(p.Subject)
	}
	if p.Predicate != "" {
		pred = s.predicate(p.Predicate)
	}
	return fmt.Sprintf("DELETE { %s } WHERE { %s }", inScope(p.Scope, subj+" "+pred+" ?o ."), s.where(p))
}

func (s *SparqlStore) Ping(ctx context.Context) error {
	if _, err := s.client.Query(ctx, "ASK { }"); err != nil {
		return classifySparqlError("ping", err)
	}
	return nil
}

func classifySparqlError(op string, err error) error {
	var statusErr *sparql.StatusError
	if errors.As(err, &statusErr) {
		return entity.NewError(entity.KindStoreRejected, op, err)
	}
	return entity.NewError(entity.KindStoreUnavailable, op, err)
}
