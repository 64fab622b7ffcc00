package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"quickcourt/infras/otel"
	"quickcourt/internal/domains/catalog/model"
	"quickcourt/internal/state"
	"quickcourt/shared/constant"
)

type Catalog interface {
	Snapshot(ctx context.Context) model.Snapshot
}

type repositoryImpl struct {
	state *state.State
	otel  otel.Otel
}

func New(state *state.State, otel otel.Otel) Catalog {
	return &repositoryImpl{
		state: state,
		otel:  otel,
	}
}

func (r *repositoryImpl) Snapshot(ctx context.Context) model.Snapshot {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".catalog.Snapshot")
	defer scope.End()

	snap := r.state.Catalog()
	scope.SetAttribute("catalog.facilities", snap.Len())

	return snap
}
