// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/migrations"
	"github.com/MKhiriev/go-deck-builder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDialectDB(dialect string) *DB {
	return newDB(nil, dialect, nil, logger.Nop())
}

func Test_createUserQuery(t *testing.T) {
	db := testDialectDB(migrations.DialectPostgres)
	user := models.User{Name: "Alice", Email: "a@example.com", Username: "alice", PasswordHash: "hash"}

	query, args, err := db.createUserQuery(user)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO users (name,email,username,password) VALUES ($1,$2,$3,$4) RETURNING id, name, email, username, password",
		query)
	assert.Equal(t, []any{"Alice", "a@example.com", "alice", "hash"}, args)
}

func Test_placeholderFormatFollowsDialect(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
		notWant string
	}{
		{dialect: migrations.DialectPostgres, want: "$1", notWant: "?"},
		{dialect: migrations.DialectSQLite, want: "?", notWant: "$1"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			query, args, err := testDialectDB(tt.dialect).findUserByUsernameQuery("alice")
			require.NoError(t, err)

			assert.Contains(t, query, tt.want)
			assert.NotContains(t, query, tt.notWant)
			assert.Equal(t, []any{"alice"}, args)
		})
	}
}

func Test_listUserCardsQuery_JoinsDecksOfUser(t *testing.T) {
	query, args, err := testDialectDB(migrations.DialectPostgres).listUserCardsQuery(7)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from cards c join decks d on d.id = c.deck_id")
	assert.Contains(t, q, "where d.user_id = $1")
	assert.Contains(t, q, "order by c.id")
	assert.Equal(t, []any{int64(7)}, args)
}

func Test_findCardByNameQuery(t *testing.T) {
	query, args, err := testDialectDB(migrations.DialectPostgres).findCardByNameQuery(7, "Sol Ring")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "d.user_id = $1 and c.name = $2")
	assert.Contains(t, q, "order by c.id desc limit 1")
	assert.Equal(t, []any{int64(7), "Sol Ring"}, args)
}

func Test_deleteCardsByNameQuery_ScopesToUserDecks(t *testing.T) {
	query, args, err := testDialectDB(migrations.DialectPostgres).deleteCardsByNameQuery(7, "Sol Ring")
	require.NoError(t, err)

	assert.Equal(t,
		"DELETE FROM cards WHERE name = $1 AND deck_id IN (SELECT id FROM decks WHERE user_id = $2)",
		query)
	assert.Equal(t, []any{"Sol Ring", int64(7)}, args)
}

func Test_findDeckByNameQuery_PicksMostRecent(t *testing.T) {
	query, args, err := testDialectDB(migrations.DialectSQLite).findDeckByNameQuery(3, "Atraxa")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, name, user_id, card_id FROM decks WHERE user_id = ? AND name = ? ORDER BY id DESC LIMIT 1",
		query)
	assert.Equal(t, []any{int64(3), "Atraxa"}, args)
}

func Test_insertCardQuery(t *testing.T) {
	card := models.Card{Name: "Sol Ring", Picture: "img", CMC: 1, Price: 1.5, Type: "Artifact", DeckID: 9}

	query, args, err := testDialectDB(migrations.DialectPostgres).insertCardQuery(card)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO cards (name,picture,cmc,price,type,deck_id) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id",
		query)
	assert.Equal(t, []any{"Sol Ring", "img", float64(1), 1.5, "Artifact", int64(9)}, args)
}

func Test_defaultDeckQueries(t *testing.T) {
	db := testDialectDB(migrations.DialectSQLite)

	query, args, err := db.findDefaultDeckQuery(3)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, user_id, card_id FROM decks WHERE user_id = ? AND is_default = ?", query)
	assert.Equal(t, []any{int64(3), true}, args)

	query, args, err = db.insertDefaultDeckQuery(3)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO decks (name,user_id,is_default) VALUES (?,?,?) RETURNING id", query)
	assert.Equal(t, []any{models.DefaultDeckName, int64(3), true}, args)
}

func Test_setDeckCommanderQuery(t *testing.T) {
	query, args, err := testDialectDB(migrations.DialectPostgres).setDeckCommanderQuery(4, 11)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE decks SET card_id = $1 WHERE id = $2", query)
	assert.Equal(t, []any{int64(11), int64(4)}, args)
}
