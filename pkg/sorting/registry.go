// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sorting resolves how grid columns are compared. A Registry maps a
// column data type to a CompareFunctionFactory and carries two optional hooks:
// a sort config normalizer and a main sort comparator.
//
// Lookup for a column walks three tiers and stops at the first match:
//
//	ColumnSettings.CompareFunctionFactory -> registry[meta.Type] -> registry["default"]
package sorting

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/huandu/go-clone"
	"go.uber.org/zap"

	"github.com/daviszhen/gridsort/pkg/util"
)

var (
	// ErrNoDefaultFactory is returned when a lookup falls through to the
	// "default" data type and nothing is registered under it.
	ErrNoDefaultFactory = errors.New("sorting: no compare function factory registered for \"default\"")
	// ErrInvalidSortOrder is returned for a sort order other than asc or desc.
	ErrInvalidSortOrder = errors.New("sorting: invalid sort order")
)

type Registry struct {
	mu             sync.RWMutex
	factories      map[string]CompareFunctionFactory
	normalizer     SortConfigNormalizer
	mainComparator MainSortComparator
}

// NewRegistry returns a registry with the numeric, date and default
// factories registered and both hooks unset.
func NewRegistry() *Registry {
	reg := NewEmptyRegistry()
	reg.RegisterCompareFunctionFactory(NumericDataType, NumericCompareFunctionFactory)
	reg.RegisterCompareFunctionFactory(DateDataType, DateCompareFunctionFactory)
	reg.RegisterCompareFunctionFactory(DefaultDataType, DefaultCompareFunctionFactory)
	return reg
}

func NewEmptyRegistry() *Registry {
	return &Registry{
		factories: make(map[string]CompareFunctionFactory),
	}
}

// RegisterCompareFunctionFactory sets the factory for dataType, replacing any
// previous one. A nil factory clears the entry.
func (reg *Registry) RegisterCompareFunctionFactory(dataType string, factory CompareFunctionFactory) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if factory == nil {
		delete(reg.factories, dataType)
		return
	}
	if _, has := reg.factories[dataType]; has {
		util.Debug("replace compare function factory", zap.String("dataType", dataType))
	}
	reg.factories[dataType] = factory
}

func (reg *Registry) HasCompareFunctionFactory(dataType string) bool {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	_, has := reg.factories[dataType]
	return has
}

// CompareFunctionFactory returns the factory for a column. meta and settings
// may be nil.
func (reg *Registry) CompareFunctionFactory(meta *ColumnMeta, settings *ColumnSettings) (CompareFunctionFactory, error) {
	if settings != nil && settings.CompareFunctionFactory != nil {
		return settings.CompareFunctionFactory, nil
	}

	reg.mu.RLock()
	defer reg.mu.RUnlock()
	if meta != nil {
		if factory, has := reg.factories[meta.Type]; has {
			return factory, nil
		}
	}
	if factory, has := reg.factories[DefaultDataType]; has {
		return factory, nil
	}
	return nil, ErrNoDefaultFactory
}

// MustCompareFunctionFactory is like CompareFunctionFactory but panics when
// the default factory is missing.
func (reg *Registry) MustCompareFunctionFactory(meta *ColumnMeta, settings *ColumnSettings) CompareFunctionFactory {
	factory, err := reg.CompareFunctionFactory(meta, settings)
	if err != nil {
		panic(err)
	}
	return factory
}

// DataTypes returns the registered data types in lexicographic order.
func (reg *Registry) DataTypes() []string {
	reg.mu.RLock()
	names := make([]string, 0, len(reg.factories))
	for name := range reg.factories {
		names = append(names, name)
	}
	reg.mu.RUnlock()
	sort.Strings(names)
	return names
}

func (reg *Registry) RegisterSortConfigNormalizer(fn SortConfigNormalizer) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.normalizer = fn
}

// SortConfigNormalizer reports false when no normalizer is registered.
func (reg *Registry) SortConfigNormalizer() (SortConfigNormalizer, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.normalizer, reg.normalizer != nil
}

func (reg *Registry) RegisterMainSortComparator(fn MainSortComparator) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.mainComparator = fn
}

// MainSortComparator reports false when no main comparator is registered.
func (reg *Registry) MainSortComparator() (MainSortComparator, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.mainComparator, reg.mainComparator != nil
}

// Bind turns a sort request into comparator-ready columns. The normalizer, if
// any, runs on a copy of configs. metaOf and settingsOf may return nil.
func (reg *Registry) Bind(
	configs []ColumnSortConfig,
	metaOf func(column int) *ColumnMeta,
	settingsOf func(column int) *ColumnSettings,
) ([]SortColumn, error) {
	if normalize, has := reg.SortConfigNormalizer(); has {
		copied, _ := clone.Clone(configs).([]ColumnSortConfig)
		configs = normalize(copied)
	}

	columns := make([]SortColumn, 0, len(configs))
	for _, config := range configs {
		if !config.SortOrder.Valid() {
			return nil, fmt.Errorf("column %d: %w: %q", config.Column, ErrInvalidSortOrder, config.SortOrder)
		}
		var meta *ColumnMeta
		if metaOf != nil {
			meta = metaOf(config.Column)
		}
		if meta == nil {
			meta = &ColumnMeta{}
		}
		var settings *ColumnSettings
		if settingsOf != nil {
			settings = settingsOf(config.Column)
		}
		if settings == nil {
			settings = &ColumnSettings{}
		}

		factory, err := reg.CompareFunctionFactory(meta, settings)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", config.Column, err)
		}
		columns = append(columns, SortColumn{
			Config:   config,
			Meta:     meta,
			Settings: settings,
			Compare:  factory(config.SortOrder, meta, settings),
		})
	}
	return columns, nil
}

// RowComparator builds the row comparator for columns with the registered
// main comparator, or MultiColumnComparator when none is registered.
func (reg *Registry) RowComparator(columns []SortColumn) RowComparator {
	if main, has := reg.MainSortComparator(); has {
		return main(columns)
	}
	return MultiColumnComparator(columns)
}
