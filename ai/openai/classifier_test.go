// Copyright 2025 SG AI Team
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


package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		n     int
		want  []int
	}{
		{"all upper", "ALL", 3, []int{0, 1, 2}},
		{"all lower", "all", 2, []int{0, 1}},
		{"none", "NONE", 3, []int{}},
		{"no relevant documents", "No relevant documents", 3, []int{}},
		{"empty", "", 3, []int{}},
		{"whitespace", "   ", 3, []int{}},
		{"plain list", "0, 2", 3, []int{0, 2}},
		{"bracketed list", "[1,2]", 3, []int{1, 2}},
		{"out of range ignored", "0, 5, 1", 3, []int{0, 1}},
		{"negative ignored", "-1, 0", 2, []int{0}},
		{"duplicates ignored", "1, 1, 0", 3, []int{1, 0}},
		{"garbage parts ignored", "0, two, 1", 3, []int{0, 1}},
		{"all garbage", "first and third", 3, []int{}},
		{"single index", "2", 3, []int{2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSelection(tt.reply, tt.n))
		})
	}
}
