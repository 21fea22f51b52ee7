package repository

import (
	"errors"
	"testing"
)

func TestUserCreateAndLookup(t *testing.T) {
	database := testDB(t)
	repo := NewUserRepository(database)

	user := seedUser(t, database, "alice@example.com")

	byID, err := repo.ByID(user.ID)
	if err != nil {
		t.Fatalf("ByID() error: %v", err)
	}
	if byID.Email != "alice@example.com" {
		t.Errorf("email = %s, want alice@example.com", byID.Email)
	}

	byEmail, err := repo.ByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("ByEmail() error: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("id = %s, want %s", byEmail.ID, user.ID)
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	database := testDB(t)
	repo := NewUserRepository(database)

	first := seedUser(t, database, "alice@example.com")
	dup := *first
	dup.ID = first.ID + "-2"

	err := repo.Create(&dup)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Create(duplicate) = %v, want ErrDuplicateEmail", err)
	}
}

func TestUserNotFound(t *testing.T) {
	database := testDB(t)
	repo := NewUserRepository(database)

	_, err := repo.ByEmail("nobody@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("ByEmail(absent) = %v, want ErrUserNotFound", err)
	}
}

func TestUserUpdatePassword(t *testing.T) {
	database := testDB(t)
	repo := NewUserRepository(database)

	user := seedUser(t, database, "alice@example.com")

	err := repo.UpdatePassword(user.ID, "$2a$10$newhash")
	if err != nil {
		t.Fatalf("UpdatePassword() error: %v", err)
	}

	updated, err := repo.ByID(user.ID)
	if err != nil {
		t.Fatalf("ByID() error: %v", err)
	}
	if updated.PasswordHash != "$2a$10$newhash" {
		t.Errorf("hash not updated, got %s", updated.PasswordHash)
	}
}
