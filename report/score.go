//
// AQ-MedAI is pleased to support the open source community by making RagQALeaderboard available.
//
// Copyright (C) 2025 AQ-MedAI.  All rights reserved.
//
// RagQALeaderboard is licensed under the Apache License Version 2.0.
//
//

package report

import (
	"math"
	"strconv"
)

// Score is an aggregate metric value. NaN marks an undefined aggregate and
// is serialized as JSON null, since encoding/json rejects NaN outright.
type Score float64

// Defined reports whether the score holds a real value.
func (s Score) Defined() bool {
	return !math.IsNaN(float64(s))
}

// Undefined is the Score for aggregates with no contributing items.
func Undefined() Score {
	return Score(math.NaN())
}

// MarshalJSON encodes the score as a number, or null when undefined.
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Defined() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(s), 'g', -1, 64), nil
}

// UnmarshalJSON decodes a number or null.
func (s *Score) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = Undefined()
		return nil
	}
	value, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*s = Score(value)
	return nil
}
