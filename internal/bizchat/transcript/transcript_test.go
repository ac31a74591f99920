package transcript

import "testing"

const greeting = "¡Hola! Soy el asistente de BizChat. ¿En qué puedo ayudarte?"

func TestNewSeedsGreeting(t *testing.T) {
	ts := New(greeting)
	entries := ts.Entries()
	if len(entries) != 1 {
		t.Fatalf("new transcript has %d entries, want 1", len(entries))
	}
	if entries[0].Text != greeting || entries[0].Origin != OriginBot {
		t.Errorf("seed entry = %+v, want bot greeting", entries[0])
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	ts := New(greeting)
	ts.Append("hola", OriginUser)
	ts.Append("¡Buenas!", OriginBot)
	ts.Append("horario", OriginUser)

	entries := ts.Entries()
	want := []struct {
		text   string
		origin Origin
	}{
		{greeting, OriginBot},
		{"hola", OriginUser},
		{"¡Buenas!", OriginBot},
		{"horario", OriginUser},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].Text != w.text || entries[i].Origin != w.origin {
			t.Errorf("entry[%d] = %q/%s, want %q/%s", i, entries[i].Text, entries[i].Origin, w.text, w.origin)
		}
	}
}

func TestClearReseedsGreeting(t *testing.T) {
	ts := New(greeting)
	ts.Append("uno", OriginUser)
	ts.Append("dos", OriginBot)
	ts.Append("tres", OriginUser)

	ts.Clear()

	if ts.Len() != 1 {
		t.Fatalf("after Clear() transcript has %d entries, want exactly 1", ts.Len())
	}
	last, ok := ts.Last()
	if !ok || last.Text != greeting || last.Origin != OriginBot {
		t.Errorf("after Clear() last entry = %+v, want bot greeting", last)
	}
}

func TestClearOnFreshTranscript(t *testing.T) {
	ts := New(greeting)
	ts.Clear()
	if ts.Len() != 1 {
		t.Errorf("after Clear() transcript has %d entries, want 1", ts.Len())
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	ts := New(greeting)
	entries := ts.Entries()
	entries[0].Text = "mutated"
	if fresh := ts.Entries(); fresh[0].Text != greeting {
		t.Error("Entries() exposed internal slice")
	}
}
