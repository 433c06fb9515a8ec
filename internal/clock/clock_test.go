package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_Sequence(t *testing.T) {
	genesis := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewSystem(genesis, 5*time.Second)

	s.now = func() time.Time { return genesis.Add(27 * time.Second) }
	assert.Equal(t, uint64(5), s.Sequence())
	assert.Equal(t, uint64(genesis.Unix()+27), s.Now())

	s.now = func() time.Time { return genesis.Add(-time.Hour) }
	assert.Equal(t, uint64(0), s.Sequence())
}

func TestSystem_DefaultInterval(t *testing.T) {
	s := NewSystem(time.Now(), 0)
	assert.Equal(t, DefaultCloseInterval, s.interval)
}

func TestManual(t *testing.T) {
	m := NewManual(1000, 3)
	assert.Equal(t, uint64(1000), m.Now())
	assert.Equal(t, uint64(3), m.Sequence())

	m.Advance(60)
	assert.Equal(t, uint64(1060), m.Now())
	assert.Equal(t, uint64(4), m.Sequence())

	m.Set(5, 6)
	assert.Equal(t, uint64(5), m.Now())
	assert.Equal(t, uint64(6), m.Sequence())
}
