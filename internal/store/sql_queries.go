package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-deck-builder/models"
)

var (
	userColumns = []string{"id", "name", "email", "username", "password"}
	cardColumns = []string{"id", "name", "picture", "cmc", "price", "type", "deck_id"}
	deckColumns = []string{"id", "name", "user_id", "card_id"}
)

// qualify prefixes every column with a table alias.
func qualify(alias string, columns []string) []string {
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return qualified
}

func returning(columns ...string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func (db *DB) createUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(models.User{}.TableName()).
		Columns("name", "email", "username", "password").
		Values(user.Name, user.Email, user.Username, user.PasswordHash).
		Suffix(returning(userColumns...)).
		ToSql()
}

func (db *DB) findUserByUsernameQuery(username string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (db *DB) listUserCardsQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select(qualify("c", cardColumns)...).
		From("cards c").
		Join("decks d ON d.id = c.deck_id").
		Where(sq.Eq{"d.user_id": userID}).
		OrderBy("c.id").
		ToSql()
}

func (db *DB) listDeckCardsQuery(deckID int64) (string, []any, error) {
	return db.builder.
		Select(cardColumns...).
		From(models.Card{}.TableName()).
		Where(sq.Eq{"deck_id": deckID}).
		OrderBy("id").
		ToSql()
}

func (db *DB) findCardByNameQuery(userID int64, name string) (string, []any, error) {
	return db.builder.
		Select(qualify("c", cardColumns)...).
		From("cards c").
		Join("decks d ON d.id = c.deck_id").
		Where(sq.Eq{"d.user_id": userID}).
		Where(sq.Eq{"c.name": name}).
		OrderBy("c.id DESC").
		Limit(1).
		ToSql()
}

func (db *DB) deleteCardsByNameQuery(userID int64, name string) (string, []any, error) {
	return db.builder.
		Delete(models.Card{}.TableName()).
		Where(sq.Eq{"name": name}).
		Where("deck_id IN (SELECT id FROM decks WHERE user_id = ?)", userID).
		ToSql()
}

func (db *DB) insertCardQuery(card models.Card) (string, []any, error) {
	return db.builder.
		Insert(models.Card{}.TableName()).
		Columns("name", "picture", "cmc", "price", "type", "deck_id").
		Values(card.Name, card.Picture, card.CMC, card.Price, card.Type, card.DeckID).
		Suffix(returning("id")).
		ToSql()
}

func (db *DB) findDeckByNameQuery(userID int64, name string) (string, []any, error) {
	return db.builder.
		Select(deckColumns...).
		From(models.Deck{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"name": name}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
}

func (db *DB) findDefaultDeckQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select(deckColumns...).
		From(models.Deck{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_default": true}).
		ToSql()
}

func (db *DB) insertDefaultDeckQuery(userID int64) (string, []any, error) {
	return db.builder.
		Insert(models.Deck{}.TableName()).
		Columns("name", "user_id", "is_default").
		Values(models.DefaultDeckName, userID, true).
		Suffix(returning("id")).
		ToSql()
}

func (db *DB) listDecksQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select(deckColumns...).
		From(models.Deck{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
}

func (db *DB) insertDeckQuery(deck models.Deck) (string, []any, error) {
	return db.builder.
		Insert(models.Deck{}.TableName()).
		Columns("name", "user_id").
		Values(deck.Name, deck.UserID).
		Suffix(returning("id")).
		ToSql()
}

func (db *DB) setDeckCommanderQuery(deckID, cardID int64) (string, []any, error) {
	return db.builder.
		Update(models.Deck{}.TableName()).
		Set("card_id", cardID).
		Where(sq.Eq{"id": deckID}).
		ToSql()
}
