package proxy

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreSetGetDel(t *testing.T) {
	s := NewStore()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("foo", []byte("bar"))
	v, ok := s.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, "bar", string(v))

	assert.True(t, s.Del("foo"))
	assert.False(t, s.Del("foo"))

	_, ok = s.Get("foo")
	assert.False(t, ok)
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := "k" + strconv.Itoa(i)
			s.Set(key, []byte(key))
		}(i)
	}
	wg.Wait()

	for i := 0; i < 100; i++ {
		key := "k" + strconv.Itoa(i)
		v, ok := s.Get(key)
		assert.True(t, ok)
		assert.Equal(t, key, string(v))
	}
}
