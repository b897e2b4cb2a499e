package user

import "time"

type User struct {
	ID        int
	Login     string
	Name      string
	Password  string // bcrypt hash
	CreatedAt time.Time
}
