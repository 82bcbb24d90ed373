package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameList(t *testing.T) {
	list := NewNameList()

	assert.Empty(t, list.All())
	assert.True(t, list.Add("Food"))
	assert.False(t, list.Add("Food"))
	assert.True(t, list.Add("Rent"))
	assert.Equal(t, []string{"Food", "Rent"}, list.All())

	assert.True(t, list.Remove("Food"))
	assert.False(t, list.Remove("Food"))
	assert.Equal(t, []string{"Rent"}, list.All())
}

func TestNameListAllReturnsCopy(t *testing.T) {
	list := NewNameList("Food")

	names := list.All()
	names[0] = "Changed"

	assert.Equal(t, []string{"Food"}, list.All())
}

func TestNameListConcurrentAdd(t *testing.T) {
	list := NewNameList()

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if list.Add(fmt.Sprintf("name-%d", i%10)) {
				mu.Lock()
				added++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, added)
	assert.Len(t, list.All(), 10)
}
