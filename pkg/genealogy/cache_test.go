package genealogy

import (
	"sync"
	"testing"
)

func TestCacheLifecycle(t *testing.T) {
	c := NewCache(WithMaxDepth(3))
	if c.Loaded() {
		t.Fatal("new cache reports loaded")
	}
	if c.Graph() == nil || c.Graph().Len() != 0 {
		t.Fatal("empty cache should expose an empty graph")
	}

	people := delpechPeople(t)
	stats := ComputeStatistics(people)
	stats.TotalFamilies = 2
	c.Store(people, stats)

	if !c.Loaded() {
		t.Fatal("cache not loaded after Store")
	}
	if len(c.People()) != 5 {
		t.Errorf("len(People) = %d, want 5", len(c.People()))
	}
	if c.Statistics().TotalFamilies != 2 {
		t.Errorf("Statistics = %+v", c.Statistics())
	}
	if c.Graph().MaxDepth() != 3 {
		t.Errorf("MaxDepth = %d, want 3", c.Graph().MaxDepth())
	}

	g := c.Graph()
	c.Clear()
	if c.Loaded() || c.Statistics() != (Statistics{}) {
		t.Error("cache still loaded after Clear")
	}
	if g.Len() != 5 {
		t.Error("graph obtained before Clear should stay usable")
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := NewCache()
	people := delpechPeople(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Store(people, ComputeStatistics(people))
		}()
		go func() {
			defer wg.Done()
			_, _ = c.Graph().Ancestors("I5")
			_ = c.Statistics()
		}()
	}
	wg.Wait()

	if !c.Loaded() {
		t.Error("cache not loaded after concurrent stores")
	}
}
