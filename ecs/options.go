package ecs

import (
	"fmt"
	"math/bits"
	"unsafe"
)

const (
	// DefaultEntityPageSize is the sparse index page width used when no
	// option overrides it.
	DefaultEntityPageSize Entity = 1024

	// componentPageBytes is the target byte size of a stable table's
	// component page when no option overrides it.
	componentPageBytes = 4096
)

type tableConfig struct {
	entityPageSize    Entity
	componentPageSize EntityIndex
}

// TableOption configures a table at construction time.
type TableOption func(*tableConfig)

// WithEntityPageSize sets the sparse index page width of the table.
// The width must be a power of two.
func WithEntityPageSize(pageSize Entity) TableOption {
	return func(cfg *tableConfig) {
		if !isPowerOfTwo(pageSize) {
			panic(fmt.Sprintf("ecs: entity page size %d is not a power of two", pageSize))
		}
		cfg.entityPageSize = pageSize
	}
}

// WithComponentPageSize sets the component page width of a stable table.
// The width must be a power of two. Dense tables ignore it.
func WithComponentPageSize(pageSize EntityIndex) TableOption {
	return func(cfg *tableConfig) {
		if !isPowerOfTwo(pageSize) {
			panic(fmt.Sprintf("ecs: component page size %d is not a power of two", pageSize))
		}
		cfg.componentPageSize = pageSize
	}
}

func makeTableConfig(opts []TableOption) tableConfig {
	cfg := tableConfig{entityPageSize: DefaultEntityPageSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// defaultComponentPageSize targets componentPageBytes per page, rounded
// down to a power of two and clamped to at least one component.
func defaultComponentPageSize[C any]() EntityIndex {
	size := unsafe.Sizeof(*new(C))
	if size == 0 {
		size = 1
	}
	n := uintptr(componentPageBytes) / size
	if n <= 1 {
		return 1
	}
	return EntityIndex(1) << (bits.Len(uint(n)) - 1)
}

func isPowerOfTwo[T ~uint32](v T) bool {
	return v != 0 && v&(v-1) == 0
}
