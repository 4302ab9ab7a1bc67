package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deck-builder/internal/session"
	"github.com/MKhiriev/go-deck-builder/internal/validators"
	"github.com/MKhiriev/go-deck-builder/models"
)

// workflowValidationService checks the free-text inputs of the workflow
// before they reach the catalog or the store.
type workflowValidationService struct {
	inner     WorkflowService
	validator validators.Validator
}

func NewWorkflowValidationService() WorkflowServiceWrapper {
	return &workflowValidationService{
		validator: validators.NewFormValidator(),
	}
}

func (v *workflowValidationService) Search(ctx context.Context, cardName string) (models.CardRecord, error) {
	if err := v.validator.Validate(ctx, models.SearchForm{CardName: cardName}); err != nil {
		return models.CardRecord{}, fmt.Errorf("error during search form validation: %w", err)
	}
	return v.inner.Search(ctx, cardName)
}

func (v *workflowValidationService) Random(ctx context.Context) (models.CardRecord, error) {
	return v.inner.Random(ctx)
}

func (v *workflowValidationService) AddCard(ctx context.Context, state session.State) (models.Card, error) {
	return v.inner.AddCard(ctx, state)
}

func (v *workflowValidationService) RemoveCard(ctx context.Context, state session.State, cardName string) (int64, error) {
	if err := v.validator.Validate(ctx, models.SearchForm{CardName: cardName}); err != nil {
		return 0, fmt.Errorf("error during card name validation: %w", err)
	}
	return v.inner.RemoveCard(ctx, state, cardName)
}

func (v *workflowValidationService) AddDeck(ctx context.Context, state session.State, commanderName string) (models.Deck, error) {
	if err := v.validator.Validate(ctx, models.DeckForm{CommanderName: commanderName}); err != nil {
		return models.Deck{}, fmt.Errorf("error during deck form validation: %w", err)
	}
	return v.inner.AddDeck(ctx, state, commanderName)
}

func (v *workflowValidationService) PreviewOnly(ctx context.Context, state session.State, cardName string) (models.Card, error) {
	return v.inner.PreviewOnly(ctx, state, cardName)
}

func (v *workflowValidationService) Dashboard(ctx context.Context, state session.State, previewName, query string) (models.Dashboard, error) {
	return v.inner.Dashboard(ctx, state, previewName, query)
}

func (v *workflowValidationService) Wrap(wrapped WorkflowService) WorkflowService {
	v.inner = wrapped
	return v
}
