package server

import (
	"testing"
)

func TestNewChatbotLoadsBuiltinKnowledgeBase(t *testing.T) {
	bot, err := NewChatbot()
	if err != nil {
		t.Fatalf("NewChatbot() error = %v", err)
	}
	if len(bot.Intents()) == 0 {
		t.Fatal("built-in knowledge base loaded no intents")
	}
	for _, intent := range bot.Intents() {
		if intent.Tag == "" {
			t.Error("intent with empty tag")
		}
		if len(intent.Responses) == 0 {
			t.Errorf("intent %q has no responses", intent.Tag)
		}
	}
}

func TestRespondMatchesIntent(t *testing.T) {
	bot, err := NewChatbot()
	if err != nil {
		t.Fatalf("NewChatbot() error = %v", err)
	}

	tests := []struct {
		name    string
		message string
		tag     string
	}{
		{"greeting", "hola, buenos días", "saludo"},
		{"hours", "¿cuál es vuestro horario?", "horario"},
		{"pricing", "¿cuánto cuesta un proyecto?", "precios"},
		{"thanks", "muchas gracias por todo", "agradecimiento"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := bot.Respond(tt.message)
			if reply == Fallback {
				t.Fatalf("Respond(%q) fell back, want a %q response", tt.message, tt.tag)
			}
			if !responseBelongsTo(bot, tt.tag, reply) {
				t.Errorf("Respond(%q) = %q, not a response of intent %q", tt.message, reply, tt.tag)
			}
		})
	}
}

func TestRespondFallsBack(t *testing.T) {
	bot, err := NewChatbot()
	if err != nil {
		t.Fatalf("NewChatbot() error = %v", err)
	}

	for _, message := range []string{"", "   ", "xyzzy frobnicate"} {
		if reply := bot.Respond(message); reply != Fallback {
			t.Errorf("Respond(%q) = %q, want fallback", message, reply)
		}
	}
}

func TestNewChatbotRejectsEmptyKnowledgeBase(t *testing.T) {
	if _, err := newChatbot([]byte(`{"intents": []}`)); err == nil {
		t.Error("newChatbot() accepted an empty knowledge base")
	}
	if _, err := newChatbot([]byte(`not json`)); err == nil {
		t.Error("newChatbot() accepted malformed JSON")
	}
}

func responseBelongsTo(bot *Chatbot, tag, reply string) bool {
	for _, intent := range bot.Intents() {
		if intent.Tag != tag {
			continue
		}
		for _, r := range intent.Responses {
			if r == reply {
				return true
			}
		}
	}
	return false
}
