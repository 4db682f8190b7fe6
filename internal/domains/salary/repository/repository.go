package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names Salary=MockSalaryRepository

import (
	"context"
	"database/sql"
	"fmt"

	"hotelfin/infras/otel"
	"hotelfin/infras/postgres"
	"hotelfin/internal/domains/salary/model"
	"hotelfin/shared/constant"
	gDto "hotelfin/shared/dto"
	gRepo "hotelfin/shared/repository"
)

type Salary interface {
	InsertGuarded(ctx context.Context, salary model.Salary, guard gDto.FilterGroup) (bool, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Salary, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Salary]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Salary {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Salary](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertGuarded runs the duplicate-payment guard and the insert inside one
// SERIALIZABLE transaction, so two concurrent payments for the same employee
// cannot both pass the guard. Returns false when the guard matched an
// existing row and nothing was inserted.
func (repo *repositoryImpl) InsertGuarded(ctx context.Context, salary model.Salary, guard gDto.FilterGroup) (inserted bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.InsertGuarded", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return false, fmt.Errorf("failed to begin guarded insert (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	exists, err := repo.ExistTx(ctx, tx, guard)
	if err != nil {
		return false, err
	}

	if exists {
		_ = tx.Rollback()

		return false, nil
	}

	if err = repo.InsertTx(ctx, tx, salary); err != nil {
		return false, err
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit guarded insert (%s): %w", model.EntityName, err)
	}

	return true, nil
}
