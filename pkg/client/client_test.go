package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/daniacca/antwar/internal/antwar"
)

func TestClient_Health(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" || r.Method != http.MethodGet {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	if err := New(srv.URL).Health(context.Background()); err != nil {
		t.Errorf("Health failed: %v", err)
	}
}

func TestClient_HealthReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if err := New(srv.URL).Health(context.Background()); err == nil {
		t.Error("Expected an error for a 503 response")
	}
}

func TestClient_ApplyConfig(t *testing.T) {
	var received antwar.Config
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/config" || r.Method != http.MethodPost {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("Decoding body failed: %v", err)
		}
		w.Write([]byte("config loaded"))
	}))
	defer srv.Close()

	cfg := antwar.DefaultConfig()
	cfg.GridSize = 16
	if err := New(srv.URL).ApplyConfig(context.Background(), cfg); err != nil {
		t.Fatalf("ApplyConfig failed: %v", err)
	}
	if received.GridSize != 16 {
		t.Errorf("Server received grid_size %d, want 16", received.GridSize)
	}
}

func TestClient_ApplyConfigSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid config: grid too small", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := New(srv.URL).ApplyConfig(context.Background(), antwar.DefaultConfig())
	if err == nil {
		t.Fatal("Expected an error for a 400 response")
	}
	if !strings.Contains(err.Error(), "grid too small") {
		t.Errorf("Expected the server's message in the error, got %q", err.Error())
	}
}

func TestClient_Tick(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tick" || r.Method != http.MethodPost {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("n"); got != "5" {
			t.Errorf("Expected n=5, got n=%s", got)
		}
		json.NewEncoder(w).Encode(antwar.TickStats{Tick: 5, RedPopulation: 3})
	}))
	defer srv.Close()

	stats, err := New(srv.URL).Tick(context.Background(), 5)
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if stats.Tick != 5 || stats.RedPopulation != 3 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestClient_TickRejectsBadCount(t *testing.T) {
	c := New("http://localhost:1")
	for _, n := range []int{0, -1} {
		if _, err := c.Tick(context.Background(), n); err == nil {
			t.Errorf("Expected a client-side error for n=%d", n)
		}
	}
}

func TestClient_State(t *testing.T) {
	want := antwar.Snapshot{
		Tick:  9,
		Size:  2,
		Cells: make([]antwar.CellState, 4),
		Scent: make([]float64, 4),
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/state" || r.Method != http.MethodGet {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := New(srv.URL).State(context.Background())
	if err != nil {
		t.Fatalf("State failed: %v", err)
	}
	if got.Tick != want.Tick || got.Size != want.Size || len(got.Cells) != len(want.Cells) {
		t.Errorf("Unexpected snapshot %+v", got)
	}
}

func TestClient_Stats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats" || r.Method != http.MethodGet {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode([]antwar.TickStats{{Tick: 1}, {Tick: 2}})
	}))
	defer srv.Close()

	rows, err := New(srv.URL).Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if len(rows) != 2 || rows[1].Tick != 2 {
		t.Errorf("Unexpected rows %+v", rows)
	}
}

func TestClient_Subscribe(t *testing.T) {
	frames := []antwar.Snapshot{
		{Tick: 1, Phase: antwar.PhaseRedMoved, Size: 2, Cells: make([]antwar.CellState, 4), Scent: make([]float64, 4)},
		{Tick: 1, Phase: antwar.PhaseBlueMoved, Size: 2, Cells: make([]antwar.CellState, 4), Scent: make([]float64, 4)},
	}

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws" {
			t.Errorf("Unexpected path %s", r.URL.Path)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for _, f := range frames {
			data, _ := antwar.EncodeSnapshotJSON(f)
			conn.WriteMessage(websocket.TextMessage, data)
		}
		// A garbage frame must be skipped, not kill the stream.
		conn.WriteMessage(websocket.TextMessage, []byte("{not json"))
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch, err := New(srv.URL).Subscribe(ctx)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	var got []antwar.Snapshot
	for s := range ch {
		got = append(got, s)
	}
	if len(got) != len(frames) {
		t.Fatalf("Expected %d snapshots, got %d", len(frames), len(got))
	}
	for i, f := range frames {
		if got[i].Phase != f.Phase || got[i].Tick != f.Tick {
			t.Errorf("Frame %d = tick %d phase %s, want tick %d phase %s",
				i, got[i].Tick, got[i].Phase, f.Tick, f.Phase)
		}
	}
}

func TestClient_SubscribeStopsOnContextCancel(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		// Hold the connection open; the client must exit on its own.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := New(srv.URL).Subscribe(ctx)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	cancel()

	select {
	case _, open := <-ch:
		if open {
			t.Error("Expected the channel closed after cancellation, got a snapshot")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Channel never closed after cancellation")
	}
}

func TestClient_WebsocketURL(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"http://localhost:8080", "ws://localhost:8080/ws"},
		{"https://sim.example.com", "wss://sim.example.com/ws"},
		{"http://localhost:8080/", "ws://localhost:8080/ws"},
		{"ws://localhost:8080", "ws://localhost:8080/ws"},
	}
	for _, tc := range cases {
		got, err := New(tc.base).websocketURL()
		if err != nil {
			t.Errorf("websocketURL(%q) failed: %v", tc.base, err)
			continue
		}
		if got != tc.want {
			t.Errorf("websocketURL(%q) = %q, want %q", tc.base, got, tc.want)
		}
	}

	if _, err := New("ftp://example.com").websocketURL(); err == nil {
		t.Error("Expected an error for an unsupported scheme")
	}
}
