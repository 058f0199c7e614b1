// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// First and last name are optional. Password max counts runes; the 72 byte
// bcrypt limit is enforced by the usecase.
type SignupReq struct {
	FirstName       string `json:"firstName" binding:"max=100"`
	LastName        string `json:"lastName" binding:"max=100"`
	Username        string `json:"username" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,max=72"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}
