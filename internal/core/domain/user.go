package domain

import "time"

type User struct {
	ID           uint64
	Name         string
	PasswordHash string
	PhoneNumber  string
	// Priority is the static {0,1,2} tier used to order the overdue
	// notification sweep; no endpoint mutates it after signup.
	Priority  int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
