package models

// AllCardsTitle is the dashboard title shown when no deck is active.
const AllCardsTitle = "All Cards"

// Dashboard is the view model of the dashboard page.
type Dashboard struct {
	Username string `json:"username"`

	// Title is the active deck name or [AllCardsTitle].
	Title string `json:"title"`

	// ActiveDeck is the session's active deck name, empty when none.
	ActiveDeck string `json:"active_deck,omitempty"`

	// Decks lists every deck owned by the user.
	Decks []Deck `json:"decks"`

	// Cards lists the cards shown on the page.
	Cards []Card `json:"cards"`

	// Preview is the card picture shown next to the list, if any.
	Preview *CardPreview `json:"preview,omitempty"`

	// Query echoes the filter applied to Cards.
	Query string `json:"query,omitempty"`
}

// CardPreview is a picture of a single card shown on the dashboard.
type CardPreview struct {
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Chart is the view model of a histogram page.
type Chart struct {
	Title  string   `json:"title"`
	Deck   string   `json:"deck"`
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
	Total  int      `json:"total"`
}

// FormView describes a form page and any inline validation errors.
type FormView struct {
	Form   string            `json:"form"`
	Fields []string          `json:"fields"`
	Values map[string]string `json:"values,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}
