package client

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bizchat/bizchat/internal/bizchat/transcript"
)

const testGreeting = "¡Hola! Soy el asistente de BizChat. ¿En qué puedo ayudarte?"

func TestSubmitIgnoresBlankInput(t *testing.T) {
	var requests atomic.Int32
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	})

	ts := transcript.New(testGreeting)
	ex := NewExchanger(New(srv.URL, "abcd1234", time.Second), ts, nil)

	for _, input := range []string{"", "   ", "\t", " \n "} {
		if ex.Submit(context.Background(), input) {
			t.Errorf("Submit(%q) started an exchange, want no-op", input)
		}
	}
	ex.Wait()

	if ts.Len() != 1 {
		t.Errorf("transcript has %d entries after blank submits, want 1", ts.Len())
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("server saw %d requests, want 0", n)
	}
}

func TestSubmitAppendsTrimmedUserEntryBeforeRequest(t *testing.T) {
	received := make(chan struct{})
	release := make(chan struct{})
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		close(received)
		<-release
		json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	})

	ts := transcript.New(testGreeting)
	ex := NewExchanger(New(srv.URL, "abcd1234", 5*time.Second), ts, nil)

	if !ex.Submit(context.Background(), "  hola  ") {
		t.Fatal("Submit() did not start an exchange")
	}

	// The user entry must be visible while the request is still in flight.
	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the request")
	}
	last, _ := ts.Last()
	if last.Text != "hola" || last.Origin != transcript.OriginUser {
		t.Errorf("last entry during flight = %q/%s, want trimmed user entry", last.Text, last.Origin)
	}

	close(release)
	ex.Wait()

	last, _ = ts.Last()
	if last.Text != "ok" || last.Origin != transcript.OriginBot {
		t.Errorf("last entry after resolve = %q/%s, want bot \"ok\"", last.Text, last.Origin)
	}
}

func TestSubmitRendersFallbackOnFailure(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	ts := transcript.New(testGreeting)
	c := New(srv.URL, "abcd1234", time.Second)
	c.SetLogf(func(string, ...any) {})
	ex := NewExchanger(c, ts, nil)

	ex.Submit(context.Background(), "hola")
	ex.Wait()

	last, _ := ts.Last()
	if last.Text != FallbackReply || last.Origin != transcript.OriginBot {
		t.Errorf("last entry = %q/%s, want bot fallback", last.Text, last.Origin)
	}
}

func TestStaleReplyDiscarded(t *testing.T) {
	slowReceived := make(chan struct{})
	slowRelease := make(chan struct{})
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Message string `json:"message"`
		}
		json.NewDecoder(r.Body).Decode(&payload)
		if payload.Message == "slow" {
			close(slowReceived)
			<-slowRelease
		}
		json.NewEncoder(w).Encode(map[string]string{"response": "re: " + payload.Message})
	})

	ts := transcript.New(testGreeting)
	delivered := make(chan transcript.Entry, 2)
	ex := NewExchanger(New(srv.URL, "abcd1234", 5*time.Second), ts, func(e transcript.Entry) {
		delivered <- e
	})

	ex.Submit(context.Background(), "slow")
	<-slowReceived
	ex.Submit(context.Background(), "fast")

	// The fast exchange resolves first and is delivered.
	select {
	case e := <-delivered:
		if e.Text != "re: fast" {
			t.Fatalf("first delivered reply = %q, want \"re: fast\"", e.Text)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("fast reply never delivered")
	}

	// The slow exchange resolves afterwards; its reply is stale and dropped.
	close(slowRelease)
	ex.Wait()

	select {
	case e := <-delivered:
		t.Fatalf("stale reply %q was delivered", e.Text)
	default:
	}

	var botReplies []string
	for _, e := range ts.Entries() {
		if e.Origin == transcript.OriginBot && e.Text != testGreeting {
			botReplies = append(botReplies, e.Text)
		}
	}
	if len(botReplies) != 1 || botReplies[0] != "re: fast" {
		t.Errorf("bot replies = %v, want only \"re: fast\"", botReplies)
	}
}

func TestCancelAbortsInFlight(t *testing.T) {
	received := make(chan struct{})
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		close(received)
		<-r.Context().Done()
	})

	ts := transcript.New(testGreeting)
	c := New(srv.URL, "abcd1234", 10*time.Second)
	c.SetLogf(func(string, ...any) {})
	ex := NewExchanger(c, ts, nil)

	ex.Submit(context.Background(), "hola")
	<-received
	ex.Cancel()
	ex.Wait()

	// The cancelled exchange resolves with the fallback text.
	last, _ := ts.Last()
	if last.Text != FallbackReply || last.Origin != transcript.OriginBot {
		t.Errorf("last entry = %q/%s, want bot fallback", last.Text, last.Origin)
	}
}
