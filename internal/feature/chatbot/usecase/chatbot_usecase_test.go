package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"greenthumb_backend/internal/feature/chatbot/domain/entity"
)

type stubKnowledge struct {
	topics []string
	rules  []entity.Rule
}

func (s stubKnowledge) Topics() []string     { return s.topics }
func (s stubKnowledge) Rules() []entity.Rule { return s.rules }

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Arrosé", "arrose"},
		{"ÉTÉ", "ete"},
		{"Hortensia Bleu", "hortensia bleu"},
		{"purin d’ortie", "purin d’ortie"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestResponder_Reply(t *testing.T) {
	kb := stubKnowledge{
		topics: []string{"tomate", "jardin", "Sémis"},
		rules: []entity.Rule{
			{Keywords: []string{"tomate", "arroser"}, Reply: "water"},
			{Keywords: []string{"tomate"}, Reply: "tomato"},
			{Keywords: []string{"semis", "été"}, Reply: "summer sowing"},
		},
	}
	r := NewResponder(kb)

	tests := []struct {
		name     string
		question string
		want     string
	}{
		{"first matching rule wins", "Quand ARROSER mes tomates ?", "water"},
		{"later rule", "Mes tomates jaunissent", "tomato"},
		{"accented rule keywords match plain text", "Semis en ete ?", "summer sowing"},
		{"accented question matches", "Sémis en été ?", "summer sowing"},
		{"on topic without rule", "Comment dessiner un jardin ?", fallbackReply},
		{"off topic", "Quelle est la capitale de la France ?", offTopicReply},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Reply(tt.question)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResponder_EmptyQuestion(t *testing.T) {
	r := NewResponder(stubKnowledge{})
	for _, q := range []string{"", "   "} {
		_, err := r.Reply(q)
		assert.ErrorIs(t, err, ErrEmptyQuestion)
	}
}
