package redistable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/redis.v5"
)

func TestRecordsFromHashes(t *testing.T) {
	records := recordsFromHashes(
		[]string{"x", "label"},
		[]map[string]string{
			{"x": "1.5", "label": "a"},
			{"label": "b", "ignored": "1"},
		},
	)
	assert.Equal(t, [][]string{
		{"x", "label"},
		{"1.5", "a"},
		{"NaN", "b"},
	}, records)
}

func TestClientOptions(t *testing.T) {
	tests := []struct {
		url      string
		expected *redis.Options
	}{
		{"redis://localhost", &redis.Options{Addr: "localhost:6379"}},
		{"redis://cache:6380/2", &redis.Options{Addr: "cache:6380", DB: 2}},
		{"redis://:secret@cache:6380/", &redis.Options{Addr: "cache:6380", Password: "secret"}},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			opts, err := ClientOptions(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
		})
	}

	_, err := ClientOptions("http://localhost")
	assert.Error(t, err)
	_, err = ClientOptions("redis://localhost/db")
	assert.Error(t, err)
}

func TestKeyFor(t *testing.T) {
	rt := &redistable{prefix: "iris"}
	assert.Equal(t, "iris:row:7", rt.keyFor("row:7"))
}
