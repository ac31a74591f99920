// Package server implements a local BizChat Assistant backend for
// development: the same HTTP surface the real service exposes, answered by a
// keyword-matching intent chatbot.
package server

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"unicode"
)

// Fallback is the chatbot's answer when no intent matches.
const Fallback = "Lo siento, no he entendido tu pregunta. ¿Puedes reformularla?"

//go:embed knowledge_base.json
var defaultKnowledgeBase []byte

// Intent groups the trigger patterns and canned responses for one topic.
type Intent struct {
	Tag       string   `json:"tag"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

type knowledgeBase struct {
	Intents []Intent `json:"intents"`
}

// Chatbot answers messages by scoring token overlap between the message and
// each intent's patterns, picking one of the best intent's responses.
type Chatbot struct {
	intents []Intent
}

// NewChatbot creates a chatbot from the built-in knowledge base.
func NewChatbot() (*Chatbot, error) {
	return newChatbot(defaultKnowledgeBase)
}

// LoadChatbot creates a chatbot from a knowledge base file.
func LoadChatbot(path string) (*Chatbot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading knowledge base: %w", err)
	}
	return newChatbot(data)
}

func newChatbot(data []byte) (*Chatbot, error) {
	var kb knowledgeBase
	if err := json.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("parsing knowledge base: %w", err)
	}
	if len(kb.Intents) == 0 {
		return nil, fmt.Errorf("knowledge base has no intents")
	}
	return &Chatbot{intents: kb.Intents}, nil
}

// Intents returns the loaded intents.
func (b *Chatbot) Intents() []Intent {
	return b.intents
}

// Respond returns an answer for the message, or Fallback when no intent
// scores above zero.
func (b *Chatbot) Respond(message string) string {
	words := tokenize(message)
	if len(words) == 0 {
		return Fallback
	}

	var best *Intent
	bestScore := 0
	for i := range b.intents {
		score := b.intents[i].score(words)
		if score > bestScore {
			bestScore = score
			best = &b.intents[i]
		}
	}

	if best == nil || len(best.Responses) == 0 {
		return Fallback
	}
	return best.Responses[rand.Intn(len(best.Responses))]
}

// score counts how many message tokens appear in any pattern.
func (in *Intent) score(words map[string]struct{}) int {
	score := 0
	for _, pattern := range in.Patterns {
		for token := range tokenize(pattern) {
			if _, ok := words[token]; ok {
				score++
			}
		}
	}
	return score
}

// tokenize lowercases and splits on anything that is not a letter or digit.
func tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}
