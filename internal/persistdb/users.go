package persistdb

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin  = 1
	RoleViewer = 2
)

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	RoleID       int    `json:"role_id"`
}

type UserCreateDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

// AddUser stores a user with a bcrypt-hashed password.
func AddUser(dto UserCreateDTO) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	_, err = db.Exec(`INSERT INTO users (username, password_hash, role_id) VALUES (?, ?, ?)`,
		dto.Username, string(hash), dto.RoleID)
	if err != nil {
		return fmt.Errorf("inserting user '%s': %w", dto.Username, err)
	}
	return nil
}

func GetUserByUsername(username string) (User, error) {
	var u User
	row := db.QueryRow(`SELECT id, username, password_hash, role_id FROM users WHERE username = ?`, username)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.RoleID); err != nil {
		if err == sql.ErrNoRows {
			return User{}, fmt.Errorf("user '%s' not found", username)
		}
		return User{}, fmt.Errorf("querying user '%s': %w", username, err)
	}
	return u, nil
}

func ListUsers() ([]User, error) {
	rows, err := db.Query(`SELECT id, username, password_hash, role_id FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.RoleID); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// AuthenticateUser verifies username/password against the stored hash.
func AuthenticateUser(username, password string) (User, error) {
	u, err := GetUserByUsername(username)
	if err != nil {
		return User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, fmt.Errorf("invalid credentials for '%s'", username)
	}
	return u, nil
}
