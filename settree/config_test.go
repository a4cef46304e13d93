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

package settree

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/src-d/go-errors.v1"
)

func intConfig(t *testing.T) *Config[int] {
	cfg, err := NewConfig(Config[int]{
		RowTerminator:   ",",
		FieldTerminator: ";",
		Convert: func(fields []string) (int, error) {
			return strconv.Atoi(fields[0])
		},
		Format: strconv.Itoa,
		Compare: func(l, r int) int {
			return l - r
		},
	})
	require.NoError(t, err)
	return cfg
}

func TestNewConfigValidation(t *testing.T) {
	convert := func(fields []string) (int, error) {
		return strconv.Atoi(fields[0])
	}
	compare := func(l, r int) int { return l - r }

	tests := []struct {
		name     string
		cfg      Config[int]
		wantKind *errors.Kind
	}{
		{
			"valid",
			Config[int]{RowTerminator: ",", FieldTerminator: ";", Convert: convert, Compare: compare},
			nil,
		},
		{
			"empty row terminator",
			Config[int]{RowTerminator: "", FieldTerminator: ";", Convert: convert, Compare: compare},
			ErrEmptyTerminator,
		},
		{
			"empty field terminator",
			Config[int]{RowTerminator: ",", FieldTerminator: "", Convert: convert, Compare: compare},
			ErrEmptyTerminator,
		},
		{
			"terminator collision",
			Config[int]{RowTerminator: "|", FieldTerminator: "|", Convert: convert, Compare: compare},
			ErrTerminatorCollision,
		},
		{
			"row terminator with brace",
			Config[int]{RowTerminator: ",{", FieldTerminator: ";", Convert: convert, Compare: compare},
			ErrReservedTerminator,
		},
		{
			"field terminator with brace",
			Config[int]{RowTerminator: ",", FieldTerminator: "}", Convert: convert, Compare: compare},
			ErrReservedTerminator,
		},
		{
			"missing convert",
			Config[int]{RowTerminator: ",", FieldTerminator: ";", Compare: compare},
			ErrMissingFunc,
		},
		{
			"missing compare",
			Config[int]{RowTerminator: ",", FieldTerminator: ";", Convert: convert},
			ErrMissingFunc,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := NewConfig(test.cfg)
			if test.wantKind == nil {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				assert.NotNil(t, cfg.Format, "format must default")
				return
			}
			require.Error(t, err)
			assert.True(t, test.wantKind.Is(err))
		})
	}
}

func TestConfigDefaultFormat(t *testing.T) {
	cfg, err := NewConfig(Config[int]{
		RowTerminator:   ",",
		FieldTerminator: ";",
		Convert: func(fields []string) (int, error) {
			return strconv.Atoi(fields[0])
		},
		Compare: func(l, r int) int { return l - r },
	})
	require.NoError(t, err)
	assert.Equal(t, "42", cfg.Format(42))
}
