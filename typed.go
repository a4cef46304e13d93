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

package structset

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/dolthub/structset/settree"
)

// Default terminator grammar used by the convenience constructors.
const (
	DefaultRowTerminator   = ","
	DefaultFieldTerminator = ";"
)

// NewStringConfig builds a configuration for raw string elements.
// Records keep their field terminators: the whole trimmed record is
// the element.
func NewStringConfig(rowTerm, fieldTerm string) (*settree.Config[string], error) {
	return settree.NewConfig(settree.Config[string]{
		RowTerminator:   rowTerm,
		FieldTerminator: fieldTerm,
		Convert: func(fields []string) (string, error) {
			return strings.Join(fields, fieldTerm), nil
		},
		Format:  func(s string) string { return s },
		Compare: strings.Compare,
	})
}

// NewIntConfig builds a configuration for integer elements.
func NewIntConfig(rowTerm, fieldTerm string) (*settree.Config[int], error) {
	return settree.NewConfig(settree.Config[int]{
		RowTerminator:   rowTerm,
		FieldTerminator: fieldTerm,
		Convert: func(fields []string) (int, error) {
			if len(fields) != 1 {
				return 0, errors.Errorf("expected a single field, got %d", len(fields))
			}
			return strconv.Atoi(fields[0])
		},
		Format:  strconv.Itoa,
		Compare: compareOrdered[int],
	})
}

// NewFloatConfig builds a configuration for float64 elements.
func NewFloatConfig(rowTerm, fieldTerm string) (*settree.Config[float64], error) {
	return settree.NewConfig(settree.Config[float64]{
		RowTerminator:   rowTerm,
		FieldTerminator: fieldTerm,
		Convert: func(fields []string) (float64, error) {
			if len(fields) != 1 {
				return 0, errors.Errorf("expected a single field, got %d", len(fields))
			}
			return strconv.ParseFloat(fields[0], 64)
		},
		Format: func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		},
		Compare: compareOrdered[float64],
	})
}

// NewDecimalConfig builds a configuration for arbitrary-precision
// decimal elements.
func NewDecimalConfig(rowTerm, fieldTerm string) (*settree.Config[decimal.Decimal], error) {
	return settree.NewConfig(settree.Config[decimal.Decimal]{
		RowTerminator:   rowTerm,
		FieldTerminator: fieldTerm,
		Convert: func(fields []string) (decimal.Decimal, error) {
			if len(fields) != 1 {
				return decimal.Decimal{}, errors.Errorf("expected a single field, got %d", len(fields))
			}
			return decimal.NewFromString(fields[0])
		},
		Format: func(v decimal.Decimal) string {
			return v.String()
		},
		Compare: decimal.Decimal.Cmp,
	})
}

// NewObjectConfig builds a configuration for composite user types.
// The converter receives the record's trimmed fields, split on the
// field terminator; the formatter must emit text the converter can
// read back for round-trips to hold.
func NewObjectConfig[T any](
	rowTerm, fieldTerm string,
	convert settree.ConvertFn[T],
	format settree.FormatFn[T],
	compare func(l, r T) int,
) (*settree.Config[T], error) {
	return settree.NewConfig(settree.Config[T]{
		RowTerminator:   rowTerm,
		FieldTerminator: fieldTerm,
		Convert:         convert,
		Format:          format,
		Compare:         compare,
	})
}

// ParseStrings parses |expr| as a set of raw strings with the default
// terminators.
func ParseStrings(expr string) (*StructuredSet[string], error) {
	cfg, err := NewStringConfig(DefaultRowTerminator, DefaultFieldTerminator)
	if err != nil {
		return nil, err
	}
	return Parse(expr, cfg)
}

// ParseInts parses |expr| as a set of integers with the default
// terminators.
func ParseInts(expr string) (*StructuredSet[int], error) {
	cfg, err := NewIntConfig(DefaultRowTerminator, DefaultFieldTerminator)
	if err != nil {
		return nil, err
	}
	return Parse(expr, cfg)
}

// ParseFloats parses |expr| as a set of float64 values with the
// default terminators.
func ParseFloats(expr string) (*StructuredSet[float64], error) {
	cfg, err := NewFloatConfig(DefaultRowTerminator, DefaultFieldTerminator)
	if err != nil {
		return nil, err
	}
	return Parse(expr, cfg)
}

// ParseDecimals parses |expr| as a set of decimals with the default
// terminators.
func ParseDecimals(expr string) (*StructuredSet[decimal.Decimal], error) {
	cfg, err := NewDecimalConfig(DefaultRowTerminator, DefaultFieldTerminator)
	if err != nil {
		return nil, err
	}
	return Parse(expr, cfg)
}

func compareOrdered[T int | float64](l, r T) int {
	if l < r {
		return -1
	}
	if l > r {
		return 1
	}
	return 0
}
