// Copyright 2025 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package settree models one nesting level of a structured set: a
// unique, ordered collection of leaf elements plus a unique, ordered
// collection of nested subtrees, with a canonical text rendering.
package settree

import (
	"fmt"
	"strings"

	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/structset/ordered"
)

var (
	ErrEmptyTerminator     = errors.NewKind("%s terminator must be a non-empty string")
	ErrTerminatorCollision = errors.NewKind("field terminator %q must differ from row terminator %q")
	ErrReservedTerminator  = errors.NewKind("%s terminator %q contains a reserved brace character")
	ErrMissingFunc         = errors.NewKind("configuration requires a %s function")
)

// ConvertFn builds one element value from the trimmed fields of a
// record. Records with a single field arrive as a one-element slice.
type ConvertFn[T any] func(fields []string) (T, error)

// FormatFn renders one element back into record text. Rendering
// followed by conversion must reproduce the element for round-trips
// to hold.
type FormatFn[T any] func(v T) string

// Config carries the terminator grammar and element hooks shared by
// every node of a parse. It is validated once by NewConfig and treated
// as immutable afterwards; nodes hold it by reference.
type Config[T any] struct {
	// RowTerminator separates records within one nesting level.
	RowTerminator string
	// FieldTerminator splits one record into fields. Only meaningful
	// for composite element types; single-field records pass through.
	FieldTerminator string
	// IgnoreEmptySets drops the placeholder for discarded empty
	// records when rendering.
	IgnoreEmptySets bool

	Convert ConvertFn[T]
	Format  FormatFn[T]
	Compare ordered.CompareFn[T]
}

// NewConfig validates |cfg| and returns a shareable copy. A nil
// Format falls back to fmt.Sprint.
func NewConfig[T any](cfg Config[T]) (*Config[T], error) {
	if cfg.RowTerminator == "" {
		return nil, ErrEmptyTerminator.New("row")
	}
	if cfg.FieldTerminator == "" {
		return nil, ErrEmptyTerminator.New("field")
	}
	if cfg.FieldTerminator == cfg.RowTerminator {
		return nil, ErrTerminatorCollision.New(cfg.FieldTerminator, cfg.RowTerminator)
	}
	if strings.ContainsAny(cfg.RowTerminator, "{}") {
		return nil, ErrReservedTerminator.New("row", cfg.RowTerminator)
	}
	if strings.ContainsAny(cfg.FieldTerminator, "{}") {
		return nil, ErrReservedTerminator.New("field", cfg.FieldTerminator)
	}
	if cfg.Convert == nil {
		return nil, ErrMissingFunc.New("convert")
	}
	if cfg.Compare == nil {
		return nil, ErrMissingFunc.New("compare")
	}
	if cfg.Format == nil {
		cfg.Format = func(v T) string {
			return fmt.Sprint(v)
		}
	}
	return &cfg, nil
}
