package notify

import (
	"errors"
	"net/smtp"
	"strings"
	"sync"
	"testing"
)

type fakeConn struct {
	mu     sync.Mutex
	events []Event
	fail   bool
	closed bool
}

func (f *fakeConn) WriteJSON(v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("write failed")
	}
	f.events = append(f.events, v.(Event))
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func TestHub_NotifyUserTargetsOnlyThatUser(t *testing.T) {
	hub := NewHub(nil)
	alice, bob := &fakeConn{}, &fakeConn{}
	hub.addUser("alice@example.com", alice)
	hub.addUser("bob@example.com", bob)

	hub.NotifyUser("alice@example.com", "prediction_complete", map[string]any{"risk": "High"})

	if alice.count() != 1 {
		t.Fatalf("expected alice to receive 1 event, got %d", alice.count())
	}
	if bob.count() != 0 {
		t.Fatalf("expected bob to receive nothing, got %d", bob.count())
	}
	if alice.events[0].Type != "prediction_complete" {
		t.Fatalf("unexpected event type %q", alice.events[0].Type)
	}
}

func TestHub_NotifyAdminsFansOut(t *testing.T) {
	hub := NewHub(nil)
	a1, a2 := &fakeConn{}, &fakeConn{}
	hub.addAdmin(a1)
	hub.addAdmin(a2)

	hub.NotifyAdmins("new_user", map[string]any{"email": "x@example.com"})

	if a1.count() != 1 || a2.count() != 1 {
		t.Fatalf("expected both admins notified, got %d and %d", a1.count(), a2.count())
	}
}

func TestHub_DeadConnectionPruned(t *testing.T) {
	hub := NewHub(nil)
	dead := &fakeConn{fail: true}
	live := &fakeConn{}
	hub.addAdmin(dead)
	hub.addAdmin(live)

	hub.NotifyAdmins("ping", nil)

	if !dead.closed {
		t.Fatal("expected dead connection to be closed")
	}
	_, admins := hub.Counts()
	if admins != 1 {
		t.Fatalf("expected 1 remaining admin connection, got %d", admins)
	}

	hub.NotifyAdmins("ping", nil)
	if live.count() != 2 {
		t.Fatalf("expected live connection to get both events, got %d", live.count())
	}
}

func TestHub_RemoveClearsEmptyUserEntry(t *testing.T) {
	hub := NewHub(nil)
	c := &fakeConn{}
	hub.addUser("alice@example.com", c)
	hub.remove(c)

	users, _ := hub.Counts()
	if users != 0 {
		t.Fatalf("expected no user connections, got %d", users)
	}
	hub.NotifyUser("alice@example.com", "noop", nil)
	if c.count() != 0 {
		t.Fatal("removed connection should not receive events")
	}
}

func TestMailer_DisabledIsNoop(t *testing.T) {
	m := NewMailer("", "", "", "", "", nil)
	if m.Enabled() {
		t.Fatal("mailer without host should be disabled")
	}
	if err := m.Send("user@example.com", "subject", "body"); err != nil {
		t.Fatalf("disabled mailer should not error: %v", err)
	}
}

func TestMailer_SendsFormattedMessage(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	m := NewMailer("smtp.example.com", "587", "robot", "secret", "noreply@example.com", nil)
	m.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	if err := m.SendHighRiskAlert("user@example.com", "heart", 82.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAddr != "smtp.example.com:587" {
		t.Fatalf("unexpected addr %q", gotAddr)
	}
	if gotFrom != "noreply@example.com" || len(gotTo) != 1 || gotTo[0] != "user@example.com" {
		t.Fatalf("unexpected envelope: from=%q to=%v", gotFrom, gotTo)
	}
	body := string(gotMsg)
	for _, want := range []string{"Subject: Health Assessment Alert", "82.5%", "heart"} {
		if !strings.Contains(body, want) {
			t.Errorf("message missing %q:\n%s", want, body)
		}
	}
}
