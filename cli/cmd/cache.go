package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/paulchernoch/shy/lang"
)

// Cache compiles one rule per non-blank line read from the CLI's --source
// file(s)/stdin through a fresh ApproximateLRUCache and reports its
// resulting occupancy, exercising the same get_or_add path a long-running
// evaluator would use.
type Cache struct {
	Capacity int `default:"${cacheCapacity}" help:"Cache capacity" short:"n"`
}

// Run executes the cache command.
func (c *Cache) Run(ctx context.Context) error {
	cache := lang.NewCache(c.Capacity)

	var compiled, failed int

	scanner := bufio.NewScanner(inputReader(ctx))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		compiled++

		if _, err := cache.GetOrCompile(line); err != nil {
			failed++
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Printf("rules compiled: %d\n", compiled)
	fmt.Printf("compile errors: %d\n", failed)
	fmt.Printf("cache entries:  %d/%d\n", cache.Len(), c.Capacity)

	return nil
}
