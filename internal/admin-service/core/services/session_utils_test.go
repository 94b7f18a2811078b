package services

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"admin@example.com", true},
		{"a@b.c", true},
		{"", false},
		{"a@b", false},
		{"no-at-sign.example.com", false},
		{"two@@example.com", false},
		{strings.Repeat("a", 100) + "@x", false},
	}

	for _, c := range cases {
		err := validateEmail(c.email)
		if (err == nil) != c.ok {
			t.Errorf("validateEmail(%q) err = %v, want ok=%v", c.email, err, c.ok)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"sekret", true},
		{"12345", true},
		{"", false},
		{"1234", false},
		{strings.Repeat("p", 73), false},
	}

	for _, c := range cases {
		err := validatePassword(c.password)
		if (err == nil) != c.ok {
			t.Errorf("validatePassword(%q) err = %v, want ok=%v", c.password, err, c.ok)
		}
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword: %v", err)
	}

	if !checkPassword(hash, "correct horse") {
		t.Fatal("correct password rejected")
	}
	if checkPassword(hash, "wrong horse") {
		t.Fatal("wrong password accepted")
	}
	if checkPassword([]byte("not-a-hash"), "correct horse") {
		t.Fatal("garbage hash accepted")
	}
}
