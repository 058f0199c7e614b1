// Package entity defines the chatbot's keyword rules.
package entity

// Rule answers a question containing every one of its keywords.
type Rule struct {
	Keywords []string
	Reply    string
}
