package changefeed

import (
	"testing"

	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeChange(t *testing.T) {
	change, err := DecodeChange(`{"op":"insert","customer_id":"provider_p1"}`)
	require.NoError(t, err)
	assert.Equal(t, domain.CustomerChangeInsert, change.Op)
	assert.Equal(t, "provider_p1", change.CustomerID)

	_, err = DecodeChange(`{"op":"truncate"}`)
	assert.Error(t, err)

	_, err = DecodeChange(`not json`)
	assert.Error(t, err)
}

func TestSubscribeAndPublish(t *testing.T) {
	l := &Listener{subscribers: make(map[uint64]func(domain.CustomerChange))}

	var first, second []string
	unsubscribeFirst := l.Subscribe(func(c domain.CustomerChange) { first = append(first, c.CustomerID) })
	l.Subscribe(func(c domain.CustomerChange) { second = append(second, c.CustomerID) })
	assert.Equal(t, 2, l.Subscribers())

	l.publish(domain.CustomerChange{Op: domain.CustomerChangeUpdate, CustomerID: "a"})
	unsubscribeFirst()
	unsubscribeFirst()
	l.publish(domain.CustomerChange{Op: domain.CustomerChangeDelete, CustomerID: "b"})

	assert.Equal(t, []string{"a"}, first)
	assert.Equal(t, []string{"a", "b"}, second)
	assert.Equal(t, 1, l.Subscribers())
}
