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

func TestParseIndexList(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		n     int
		want  []int
	}{
		{"empty reply", "", 5, nil},
		{"empty array", "[]", 5, nil},
		{"null", "null", 5, nil},
		{"none keyword", "NONE", 5, nil},
		{"none lowercase", "none", 5, nil},
		{"plain array", "[0, 2]", 5, []int{0, 2}},
		{"fenced array", "```json\n[1]\n```", 5, []int{1}},
		{"out of range skipped", "[0, 7]", 5, []int{0}},
		{"negative skipped", "[-1, 2]", 5, []int{2}},
		{"duplicates collapsed", "[1, 1, 3]", 5, []int{1, 3}},
		{"not json", "the first two match", 5, nil},
		{"object not array", `{"indices": [0]}`, 5, nil},
		{"all out of range", "[9, 10]", 5, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseIndexList(tt.reply, tt.n))
		})
	}
}
