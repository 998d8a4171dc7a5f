package factstore

import (
	"context"
	"errors"
	"sort"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/repository/contract"
	"paddy-kbs-be/internal/repository/specification"
	"paddy-kbs-be/internal/repository/unitofwork"
)

// GormStore keeps facts in the facts table. Each Update runs in its own
// unit of work.
type GormStore struct {
	db      *gorm.DB
	factory unitofwork.RepositoryFactory
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:      db,
		factory: unitofwork.NewRepositoryFactory(db),
	}
}

var _ contract.FactStore = (*GormStore)(nil)

func (s *GormStore) Query(ctx context.Context, p entity.Pattern) ([]entity.Fact, error) {
	uow := s.factory.NewUnitOfWork(ctx)
	specs := append(specification.FromPattern(p), specification.TripleOrder{})
	facts, err := uow.FactRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, classifyDBError("query facts", err)
	}
	// collation may differ from byte order
	sort.SliceStable(facts, func(i, j int) bool { return entity.FactLess(facts[i], facts[j]) })
	return facts, nil
}

func (s *GormStore) Update(ctx context.Context, stmt entity.Statement) (err error) {
	if stmt.IsEmpty() {
		return nil
	}

	uow := s.factory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return classifyDBError("begin transaction", err)
	}
	defer func() {
		if r := recover(); r != nil {
			_ = uow.Rollback()
			panic(r)
		}
		if err != nil {
			_ = uow.Rollback()
		}
	}()

	repo := uow.FactRepository()
	for _, p := range stmt.Retract {
		if _, err = repo.DeleteWhere(ctx, specification.FromPattern(p)...); err != nil {
			return classifyDBError("retract facts", err)
		}
	}
	if err = repo.CreateMany(ctx, stmt.Assert); err != nil {
		return classifyDBError("assert facts", err)
	}
	if err = uow.Commit(); err != nil {
		return classifyDBError("commit", err)
	}
	return nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return classifyDBError("ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return classifyDBError("ping", err)
	}
	return nil
}

// classifyDBError separates statements the server refused from connection
// and timeout failures.
func classifyDBError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return entity.NewError(entity.KindStoreRejected, op+": "+pgErr.Code, err)
	}
	if errors.Is(err, gorm.ErrInvalidData) || errors.Is(err, gorm.ErrMissingWhereClause) {
		return entity.NewError(entity.KindStoreRejected, op, err)
	}
	return entity.NewError(entity.KindStoreUnavailable, op, err)
}
