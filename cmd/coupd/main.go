// Command coupd hosts the rules engine over WebSocket: transport,
// persistence, and network play all live here, kept out of the engine
// package so it stays a dependency-free library.
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/foxholm/coup/engine"
	"github.com/foxholm/coup/internal/hostauth"
	"github.com/foxholm/coup/internal/hostconfig"
	"github.com/foxholm/coup/internal/hostlog"
	"github.com/foxholm/coup/internal/pubsub"
	"github.com/foxholm/coup/internal/session"
	"github.com/foxholm/coup/internal/store"
	"github.com/foxholm/coup/internal/transport"
)

func main() {
	cfg, err := hostconfig.Load(".env")
	if err != nil {
		hostlog.New("info", os.Stderr).WithError(err).Fatal("loading configuration")
	}

	log := hostlog.New(cfg.LogLevel, os.Stderr)
	log.Info("starting coupd")

	issuer, err := hostauth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.WithError(err).Fatal("building token issuer")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var db *store.Store
	if cfg.DatabaseURL != "" {
		db, err = store.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("opening store")
		}
		defer db.Close()
	}

	fanout := pubsub.New(cfg.RedisAddr, "coupd:broadcast")
	defer fanout.Close()

	registry := session.NewRegistry()
	hubs := newHubRegistry()

	srv := &server{
		registry: registry,
		hubs:     hubs,
		db:       db,
		fanout:   fanout,
		issuer:   issuer,
		log:      log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/tables", srv.handleCreateTable)
	mux.HandleFunc("/tables/socket", srv.handleTableSocket)

	httpSrv := &http.Server{Addr: cfg.ListenAddr, Handler: mux}

	go relayFanout(ctx, fanout, hubs, log)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = httpSrv.Shutdown(shutdownCtx)
		cancel()
	}()

	log.WithField("addr", cfg.ListenAddr).Info("listening")
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server stopped")
	}
}

// hubRegistry maps a table ID to its WebSocket hub, separate from
// session.Registry because a hub's lifetime is transport-layer, not
// engine-state layer.
type hubRegistry struct {
	mu   sync.Mutex
	hubs map[uuid.UUID]*transport.Hub
}

func newHubRegistry() *hubRegistry {
	return &hubRegistry{hubs: make(map[uuid.UUID]*transport.Hub)}
}

func (r *hubRegistry) getOrCreate(id uuid.UUID) *transport.Hub {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hubs[id]
	if !ok {
		h = transport.NewHub(id)
		r.hubs[id] = h
	}
	return h
}

func (r *hubRegistry) get(id uuid.UUID) (*transport.Hub, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hubs[id]
	return h, ok
}

type server struct {
	registry *session.Registry
	hubs     *hubRegistry
	db       *store.Store
	fanout   *pubsub.Fanout
	issuer   *hostauth.Issuer
	log      *logrus.Logger
}

// createTableRequest is the payload for POST /tables: starting cash and
// influence per player, who moves first, and the RNG seed — the fields of
// engine.Config except Def (always engine.DefaultGameDef), with the seed
// given as one 64-bit value for engine.NewSeed. Nothing else is taken,
// since the deal/lobby step is not part of the engine itself.
type createTableRequest struct {
	InitialCash []uint32    `json:"initial_cash"`
	Influence   [][2]string `json:"influence"`
	WhoseTurn   int         `json:"whose_turn"`
	Seed        uint64      `json:"seed"`
}

type createTableResponse struct {
	TableID string   `json:"table_id"`
	Tokens  []string `json:"tokens"` // one resume token per player index
}

func (s *server) handleCreateTable(w http.ResponseWriter, r *http.Request) {
	var req createTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	influence := make([][2]engine.Role, len(req.Influence))
	for i, pair := range req.Influence {
		influence[i] = [2]engine.Role{engine.Role(pair[0]), engine.Role(pair[1])}
	}

	id := uuid.New()
	config := engine.Config{
		InitialCash: req.InitialCash,
		Influence:   influence,
		WhoseTurn:   req.WhoseTurn,
		Seed:        engine.NewSeed(req.Seed),
		Def:         engine.DefaultGameDef(),
	}

	tableLog := hostlog.Table(s.log, id.String())
	t, err := session.New(id, config, tableLog)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.registry.Put(t)
	s.hubs.getOrCreate(id)

	tokens := make([]string, len(influence))
	for i := range tokens {
		token, err := s.issuer.Issue(id, i)
		if err != nil {
			http.Error(w, "issuing resume tokens", http.StatusInternalServerError)
			return
		}
		tokens[i] = token
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(createTableResponse{TableID: id.String(), Tokens: tokens})
}

func (s *server) handleTableSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	claims, err := s.issuer.Verify(token)
	if err != nil {
		http.Error(w, "invalid or expired resume token", http.StatusUnauthorized)
		return
	}

	table, ok := s.registry.Get(claims.TableID)
	if !ok {
		http.Error(w, "table not found", http.StatusNotFound)
		return
	}

	hub := s.hubs.getOrCreate(claims.TableID)
	conn, err := hub.Accept(w, r, claims.PlayerIdx)
	if err != nil {
		return
	}
	defer hub.Remove(conn)

	ctx := r.Context()
	snapshot := table.Snapshot()
	_ = hub.SendTo(ctx, claims.PlayerIdx, map[string]string{"state": engine.CurrentStateName(snapshot)})

	for {
		var e engine.Event
		if err := transport.ReadEvent(ctx, conn, &e); err != nil {
			return
		}
		e.Player = claims.PlayerIdx

		next, err := table.Apply(ctx, s.db, e)
		if err != nil {
			_ = hub.SendTo(ctx, claims.PlayerIdx, map[string]string{"error": err.Error()})
			continue
		}

		payload, err := json.Marshal(map[string]string{"state": engine.CurrentStateName(next)})
		if err != nil {
			continue
		}
		_ = hub.Broadcast(ctx, json.RawMessage(payload))
		// Fan the same broadcast out to every other coupd replica so a
		// player connected elsewhere sees this move too.
		if err := s.fanout.Publish(ctx, claims.TableID, payload); err != nil {
			s.log.WithError(err).Warn("failed to publish broadcast to other replicas")
		}
	}
}

// relayFanout forwards broadcasts published by other coupd replicas onto
// this process's local hubs, so a player connected to replica A sees a
// move made by a player connected to replica B.
func relayFanout(ctx context.Context, fanout *pubsub.Fanout, hubs *hubRegistry, log *logrus.Logger) {
	msgs, err := fanout.Subscribe(ctx)
	if err != nil {
		log.WithError(err).Error("subscribing to fanout")
		return
	}
	for b := range msgs {
		if h, ok := hubs.get(b.TableID); ok {
			_ = h.Broadcast(ctx, json.RawMessage(b.Payload))
		}
	}
}
