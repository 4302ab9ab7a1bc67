package service

import (
	"context"

	"github.com/MKhiriev/go-deck-builder/internal/session"
	"github.com/MKhiriev/go-deck-builder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper,WorkflowServiceWrapper

// AuthService registers and authenticates users.
type AuthService interface {
	Register(ctx context.Context, form models.RegisterForm) (models.User, error)
	Authenticate(ctx context.Context, form models.LoginForm) (models.User, error)
}

// WorkflowService runs the deck and card actions of an authenticated
// session. It never mutates the session; callers apply the transition.
type WorkflowService interface {
	Search(ctx context.Context, cardName string) (models.CardRecord, error)
	Random(ctx context.Context) (models.CardRecord, error)
	AddCard(ctx context.Context, state session.State) (models.Card, error)
	RemoveCard(ctx context.Context, state session.State, cardName string) (int64, error)
	AddDeck(ctx context.Context, state session.State, commanderName string) (models.Deck, error)
	PreviewOnly(ctx context.Context, state session.State, cardName string) (models.Card, error)
	Dashboard(ctx context.Context, state session.State, previewName, query string) (models.Dashboard, error)
}

// ChartService builds the histograms of the active deck.
type ChartService interface {
	PriceChart(ctx context.Context, state session.State) (models.Chart, error)
	ManaCurveChart(ctx context.Context, state session.State) (models.Chart, error)
}

// AppInfoService reports build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// WorkflowServiceWrapper defines middleware composition for WorkflowService.
type WorkflowServiceWrapper interface {
	Wrap(WorkflowService) WorkflowService
}
