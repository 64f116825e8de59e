//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// SentMessage is one sendMessage call received by FakeTelegram.
type SentMessage struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// FakeTelegram stands in for the Bot API and records every sendMessage call.
type FakeTelegram struct {
	srv *httptest.Server

	mu       sync.Mutex
	messages []SentMessage
	failNext int
}

func NewFakeTelegram() *FakeTelegram {
	f := &FakeTelegram{}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *FakeTelegram) handle(w http.ResponseWriter, r *http.Request) {
	var msg SentMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request"}`))
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext > 0 {
		f.failNext--
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`))
		return
	}
	f.messages = append(f.messages, msg)
	_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
}

func (f *FakeTelegram) URL() string { return f.srv.URL }

func (f *FakeTelegram) Close() { f.srv.Close() }

// FailNext makes the next n calls answer like a chat that blocked the bot.
func (f *FakeTelegram) FailNext(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext = n
}

func (f *FakeTelegram) Messages() []SentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]SentMessage, len(f.messages))
	copy(out, f.messages)
	return out
}

func (f *FakeTelegram) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = nil
	f.failNext = 0
}
