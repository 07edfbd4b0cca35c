// Package entity contains the core business objects of the project.
package entity

import "time"

// Admin is a dashboard operator.
type Admin struct {
	ID           AdminID   `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"displayName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
