package models

import (
	"testing"
)

func TestBeforeSaveHashesPassword(t *testing.T) {
	user := User{Name: "alice", Email: "alice@example.com", Password: "secret123"}

	if err := user.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave err: %v", err)
	}
	if user.Password == "secret123" {
		t.Fatal("password should be hashed, not stored in plain text")
	}

	if err := user.ValidatePassword("secret123"); err != nil {
		t.Errorf("ValidatePassword rejected the correct password: %v", err)
	}
	if err := user.ValidatePassword("wrong"); err == nil {
		t.Error("ValidatePassword accepted a wrong password")
	}
}

func TestBeforeSaveSkipsEmptyPassword(t *testing.T) {
	user := User{Name: "alice", Email: "alice@example.com"}

	if err := user.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave err: %v", err)
	}
	if user.Password != "" {
		t.Fatal("an empty password must stay empty")
	}
}
