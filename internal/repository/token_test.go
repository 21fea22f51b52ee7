package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/goaltime/goaltime/internal/model"
)

func TestConsumeTokenSingleUse(t *testing.T) {
	database := testDB(t)
	repo := NewTokenRepository(database)

	user := seedUser(t, database, "alice@example.com")

	err := repo.Create(&model.Token{
		UserID:    user.ID,
		Type:      model.TokenTypePasswordReset,
		Token:     "reset-abc",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	consumed, err := repo.ConsumeToken("reset-abc")
	if err != nil {
		t.Fatalf("ConsumeToken() error: %v", err)
	}
	if consumed.UserID != user.ID || !consumed.IsUsed() {
		t.Errorf("consumed = %+v, want used token for user", consumed)
	}

	// Second consumption fails: the token is single-use.
	_, err = repo.ConsumeToken("reset-abc")
	if !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("second ConsumeToken() = %v, want ErrTokenNotFound", err)
	}
}

func TestConsumeExpiredToken(t *testing.T) {
	database := testDB(t)
	repo := NewTokenRepository(database)

	user := seedUser(t, database, "alice@example.com")

	err := repo.Create(&model.Token{
		UserID:    user.ID,
		Type:      model.TokenTypePasswordReset,
		Token:     "reset-old",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	_, err = repo.ConsumeToken("reset-old")
	if !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("ConsumeToken(expired) = %v, want ErrTokenNotFound", err)
	}
}

func TestDeleteByUserAndType(t *testing.T) {
	database := testDB(t)
	repo := NewTokenRepository(database)

	user := seedUser(t, database, "alice@example.com")

	err := repo.Create(&model.Token{
		UserID:    user.ID,
		Type:      model.TokenTypePasswordReset,
		Token:     "reset-1",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	err = repo.DeleteByUserAndType(user.ID, model.TokenTypePasswordReset)
	if err != nil {
		t.Fatalf("DeleteByUserAndType() error: %v", err)
	}

	_, err = repo.ConsumeToken("reset-1")
	if !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("ConsumeToken(deleted) = %v, want ErrTokenNotFound", err)
	}
}
