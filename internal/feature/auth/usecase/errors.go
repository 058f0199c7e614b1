// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"errors"

	jwtmw "greenthumb_backend/internal/platform/jwt"
)

var (
	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrPasswordTooLong is returned when the password exceeds MaxPasswordBytes.
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")

	// ErrDuplicateIdentity is returned when the email or username is already taken.
	ErrDuplicateIdentity = errors.New("email or username already in use")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadyVerified is returned by code operations on a verified account.
	ErrAlreadyVerified = errors.New("email already verified")

	// ErrInvalidCode is returned when no code is outstanding or it does not match.
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrCodeExpired is returned when the matching code is past its expiry.
	ErrCodeExpired = errors.New("verification code expired")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailNotVerified is returned by Login for an unverified local account.
	ErrEmailNotVerified = errors.New("email not verified")

	// ErrUnauthenticated is returned for any token that cannot be resolved to a live user.
	// It is the middleware's sentinel so AuthRequired answers 401 for it.
	ErrUnauthenticated = jwtmw.ErrUnauthenticated

	// ErrForbidden is returned when acting on another user's profile.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidProfile is returned when a profile update would blank a required field.
	ErrInvalidProfile = errors.New("username must not be empty")

	// ErrIncompleteProfile is returned when an identity provider omits the subject id.
	ErrIncompleteProfile = errors.New("external profile has no subject identifier")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")
)
