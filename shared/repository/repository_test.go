package repository_test

import (
	"context"
	"petcare/infras/otel/mocks"
	"petcare/shared/dto"
	"petcare/shared/model"
	"petcare/shared/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type walk struct {
	ID       string  `db:"id"`
	WalkerID *string `db:"walker_id"`
	Status   string  `db:"status"`
	Scratch  string  `db:"-"`
	Note     string
	model.Metadata
}

func newWalkRepository() repository.Repository[walk] {
	return repository.NewRepository[walk]("walk", "walks", "id", nil, mocks.NewOtel())
}

func TestRepository_InsertQuery(t *testing.T) {
	repo := newWalkRepository()

	assert.Equal(t,
		"INSERT INTO walks (id, walker_id, status, created_at, modified_at, created_by, modified_by) "+
			"VALUES (:id, :walker_id, :status, :created_at, :modified_at, :created_by, :modified_by)",
		repo.InsertQuery(),
	)
}

func TestRepository_SelectColumns(t *testing.T) {
	tests := []struct {
		name     string
		only     []string
		expected string
	}{
		{
			name:     "all columns",
			expected: "walks.id, walks.walker_id, walks.status, walks.created_at, walks.modified_at, walks.created_by, walks.modified_by",
		},
		{
			name:     "subset keeps model order",
			only:     []string{"status", "id"},
			expected: "walks.id, walks.status",
		},
		{
			name:     "unknown columns are dropped",
			only:     []string{"id", "password"},
			expected: "walks.id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newWalkRepository()

			assert.Equal(t, tt.expected, repo.SelectColumns(tt.only...))
		})
	}
}

func TestRepository_BuildWhereClause(t *testing.T) {
	repo := newWalkRepository()

	where, args := repo.BuildWhereClause(context.Background(), dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(context.Background(), dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "status", Value: "scheduled", Operator: dto.FilterOperatorEq, Table: "walks"},
			dto.Filter{Field: "walker_id", Operator: dto.FilterIsNotNull, Table: "walks"},
		},
	})

	assert.Equal(t, "WHERE (walks.status = :status AND walks.walker_id IS NOT NULL)", where)
	assert.Equal(t, map[string]any{"status": "scheduled"}, args)
}

func TestSetClause(t *testing.T) {
	clause := repository.SetClause(map[string]any{
		"status":      "cancelled",
		"modified_by": "client-1",
		"modified_at": "now",
	})

	assert.Equal(t, "modified_at = :modified_at, modified_by = :modified_by, status = :status", clause)
}

func TestRepository_RequiresFilter(t *testing.T) {
	repo := newWalkRepository()
	ctx := context.Background()

	_, err := repo.Exist(ctx, dto.FilterGroup{})
	require.ErrorIs(t, err, repository.ErrRequiredFilter)

	err = repo.Update(ctx, map[string]any{"status": "cancelled"}, dto.FilterGroup{})
	require.ErrorIs(t, err, repository.ErrRequiredFilter)

	_, err = repo.GetForUpdateTx(ctx, nil, dto.FilterGroup{})
	require.ErrorIs(t, err, repository.ErrRequiredFilter)
}
