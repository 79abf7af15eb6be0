package ecs_test

import (
	"testing"

	"github.com/plus3/entable/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Regression vector from a sort glitch observed in real use: a permutation
// with long cycles that crosses previously swapped positions.
var (
	sortBugBefore = []ecs.Entity{
		102, 101, 100, 99, 98, 90, 89, 88, 85, 222, 80, 210, 77, 75, 198, 71, 186, 68, 174, 65, 63, 162, 59, 150, 56, 138, 53, 51, 126, 47, 114, 44, 42, 37, 33, 31, 29, 21, 17, 15, 13, 5, 229, 230, 240, 242, 243, 244, 237, 247, 248, 249, 254, 255, 256, 257, 258, 269, 278, 286, 290, 293, 297, 298, 299, 300, 301, 302, 303, 304,
	}
	sortBugAfter = []ecs.Entity{
		293, 290, 286, 258, 257, 256, 255, 254, 249, 248, 247, 244, 243, 242, 240, 237, 304, 303, 302, 301, 300, 299, 298, 297, 278, 269, 230, 229, 102, 101, 100, 99, 98, 90, 89, 88, 85, 222, 80, 210, 77, 75, 198, 71, 186, 68, 174, 65, 63, 162, 59, 150, 56, 138, 53, 51, 126, 47, 114, 44, 42, 37, 33, 31, 29, 21, 17, 15, 13, 5,
	}
)

func checkAligned(t *testing.T, table ecs.Table[Boxed]) {
	t.Helper()
	for i, entity := range table.Entities() {
		if entity == ecs.NullEntity {
			continue
		}
		require.Equal(t, ecs.EntityIndex(i), table.UnstableIndex(entity))
		require.Equal(t, int(entity), *table.Get(entity).Value)
	}
}

func runSortPermutationTest(t *testing.T, table ecs.Table[Boxed], before, after []ecs.Entity) {
	rank := make(map[ecs.Entity]int, len(after))
	for i, entity := range after {
		rank[entity] = i
	}

	addresses := make([]*int, 0, len(before))
	for _, entity := range before {
		addresses = append(addresses, table.Add(entity, box(int(entity))).Value)
	}

	checkAligned(t, table)
	assert.Equal(t, before, table.Entities())

	table.Sort(func(a, b ecs.Entity) bool {
		return rank[a] < rank[b]
	})

	checkAligned(t, table)
	assert.Equal(t, after, table.Entities())

	// The boxed payloads still belong to the same entities
	for i, entity := range before {
		assert.Same(t, addresses[i], table.Get(entity).Value)
	}
}

func TestDenseTableSortPermutation(t *testing.T) {
	runSortPermutationTest(t, ecs.NewDenseTable[Boxed](), sortBugBefore, sortBugAfter)
}

func TestStableTableSortPermutation(t *testing.T) {
	runSortPermutationTest(t, ecs.NewStableTable[Boxed](), sortBugBefore, sortBugAfter)
}

func TestSortRotation(t *testing.T) {
	before := []ecs.Entity{3, 4, 0, 1, 2}
	after := []ecs.Entity{0, 1, 2, 3, 4}

	t.Run("dense", func(t *testing.T) {
		runSortPermutationTest(t, ecs.NewDenseTable[Boxed](), before, after)
	})
	t.Run("stable", func(t *testing.T) {
		runSortPermutationTest(t, ecs.NewStableTable[Boxed](), before, after)
	})
}
