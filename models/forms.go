package models

// RegisterForm carries the fields submitted on the registration page.
type RegisterForm struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Username string `json:"username" form:"username"`
	Password string `json:"-" form:"password"`
}

// LoginForm carries the fields submitted on the login page.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"-" form:"password"`
}

// SearchForm carries the card name submitted on the dashboard.
type SearchForm struct {
	CardName string `json:"card_name" form:"card_name"`
}

// DeckForm carries the commander name submitted on the new-deck page.
type DeckForm struct {
	CommanderName string `json:"commander_name" form:"commander_name"`
}
