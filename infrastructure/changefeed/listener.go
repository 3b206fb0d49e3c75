package changefeed

import (
	"context"
	"sync"
	"time"

	"github.com/benchtrust/budgetplanung-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// Listener escuta um canal LISTEN/NOTIFY do Postgres e repassa cada
// CustomerChange para todos os inscritos.
type Listener struct {
	channel string
	pq      *pq.Listener

	mu          sync.RWMutex
	subscribers map[uint64]func(domain.CustomerChange)
	nextID      uint64
}

func NewListener(dsn, channel string) (*Listener, error) {
	l := &Listener{
		channel:     channel,
		subscribers: make(map[uint64]func(domain.CustomerChange)),
	}

	l.pq = pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval, l.logEvent)

	if err := l.pq.Listen(channel); err != nil {
		_ = l.pq.Close()
		return nil, pkgerrors.Wrapf(err, "erro ao escutar canal %s", channel)
	}

	return l, nil
}

// Subscribe registra o callback e retorna a função que cancela a inscrição
func (l *Listener) Subscribe(callback func(domain.CustomerChange)) func() {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.subscribers[id] = callback
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.subscribers, id)
			l.mu.Unlock()
		})
	}
}

func (l *Listener) Subscribers() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.subscribers)
}

// Run consome as notificações até o contexto terminar
func (l *Listener) Run(ctx context.Context) {
	logrus.WithField("channel", l.channel).Info("Changefeed iniciado")

	for {
		select {
		case <-ctx.Done():
			logrus.WithField("channel", l.channel).Info("Changefeed finalizado")
			return
		case n := <-l.pq.Notify:
			// nil após reconexão: notificações podem ter sido perdidas
			if n == nil {
				logrus.Warn("Changefeed reconectado, notificações podem ter sido perdidas")
				l.publish(domain.CustomerChange{Op: domain.CustomerChangeUpdate})
				continue
			}

			change, err := DecodeChange(n.Extra)
			if err != nil {
				logrus.WithError(err).WithField("payload", n.Extra).Warn("Payload de notificação inválido")
				continue
			}

			l.publish(change)
		case <-time.After(pingInterval):
			go func() {
				if err := l.pq.Ping(); err != nil {
					logrus.WithError(err).Warn("Falha no ping do changefeed")
				}
			}()
		}
	}
}

func (l *Listener) Close() error {
	return l.pq.Close()
}

func (l *Listener) publish(change domain.CustomerChange) {
	l.mu.RLock()
	callbacks := make([]func(domain.CustomerChange), 0, len(l.subscribers))
	for _, cb := range l.subscribers {
		callbacks = append(callbacks, cb)
	}
	l.mu.RUnlock()

	for _, cb := range callbacks {
		cb(change)
	}
}

func (l *Listener) logEvent(event pq.ListenerEventType, err error) {
	entry := logrus.WithField("channel", l.channel)
	if err != nil {
		entry = entry.WithError(err)
	}

	switch event {
	case pq.ListenerEventConnected:
		entry.Debug("Changefeed conectado")
	case pq.ListenerEventDisconnected:
		entry.Warn("Changefeed desconectado")
	case pq.ListenerEventReconnected:
		entry.Info("Changefeed reconectado")
	case pq.ListenerEventConnectionAttemptFailed:
		entry.Error("Falha ao conectar changefeed")
	}
}

// DecodeChange interpreta o payload publicado via pg_notify
func DecodeChange(payload string) (domain.CustomerChange, error) {
	var change domain.CustomerChange
	if err := json.Unmarshal([]byte(payload), &change); err != nil {
		return change, pkgerrors.Wrap(err, "payload inválido")
	}

	switch change.Op {
	case domain.CustomerChangeInsert, domain.CustomerChangeUpdate, domain.CustomerChangeDelete:
	default:
		return change, pkgerrors.Errorf("operação desconhecida: %q", change.Op)
	}

	return change, nil
}
