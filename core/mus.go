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


package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the persisted record types. Field order is part of
// the on-disk format; append new fields at the end only.

// IDMUS serializes entity identifiers.
var IDMUS = idMUS{}

type idMUS struct{}

func (s idMUS) Marshal(v ID, bs []byte) int {
	return varint.Int64.Marshal(int64(v), bs)
}

func (s idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	return ID(v), n, err
}

func (s idMUS) Size(v ID) int {
	return varint.Int64.Size(int64(v))
}

// stringSliceMUS serializes a []string as a varint length prefix followed
// by the elements.
var stringSliceMUS = stringSliceSer{}

type stringSliceSer struct{}

func (s stringSliceSer) Marshal(v []string, bs []byte) int {
	n := varint.Int.Marshal(len(v), bs)
	for _, e := range v {
		n += ord.String.Marshal(e, bs[n:])
	}
	return n
}

func (s stringSliceSer) Unmarshal(bs []byte) ([]string, int, error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length < 0 {
		return nil, n, ErrNegativeLength
	}
	v := make([]string, 0, length)
	for i := 0; i < length; i++ {
		e, en, err := ord.String.Unmarshal(bs[n:])
		n += en
		if err != nil {
			return nil, n, err
		}
		v = append(v, e)
	}
	return v, n, nil
}

func (s stringSliceSer) Size(v []string) int {
	size := varint.Int.Size(len(v))
	for _, e := range v {
		size += ord.String.Size(e)
	}
	return size
}

// SchoolRecordMUS serializes denormalized school records.
var SchoolRecordMUS = schoolRecordMUS{}

type schoolRecordMUS struct{}

func (s schoolRecordMUS) Marshal(v SchoolRecord, bs []byte) int {
	n := IDMUS.Marshal(v.ID, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Country, bs[n:])
	n += ord.String.Marshal(v.City, bs[n:])
	n += varint.Int.Marshal(v.Rank, bs[n:])
	n += varint.Int.Marshal(v.ProgramCount, bs[n:])
	return n
}

func (s schoolRecordMUS) Unmarshal(bs []byte) (SchoolRecord, int, error) {
	var v SchoolRecord
	var err error
	var fn int
	n := 0
	if v.ID, fn, err = IDMUS.Unmarshal(bs); err != nil {
		return v, n + fn, err
	}
	n += fn
	if v.Name, fn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + fn, err
	}
	n += fn
	if v.Country, fn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + fn, err
	}
	n += fn
	if v.City, fn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + fn, err
	}
	n += fn
	if v.Rank, fn, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return v, n + fn, err
	}
	n += fn
	if v.ProgramCount, fn, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return v, n + fn, err
	}
	n += fn
	return v, n, nil
}

func (s schoolRecordMUS) Size(v SchoolRecord) int {
	size := IDMUS.Size(v.ID)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Country)
	size += ord.String.Size(v.City)
	size += varint.Int.Size(v.Rank)
	size += varint.Int.Size(v.ProgramCount)
	return size
}

// ProgramRecordMUS serializes denormalized program records.
var ProgramRecordMUS = programRecordMUS{}

type programRecordMUS struct{}

func (s programRecordMUS) Marshal(v ProgramRecord, bs []byte) int {
	n := IDMUS.Marshal(v.ID, bs)
	n += IDMUS.Marshal(v.SchoolID, bs[n:])
	n += ord.String.Marshal(v.SchoolName, bs[n:])
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Type, bs[n:])
	n += ord.String.Marshal(v.Duration, bs[n:])
	n += stringSliceMUS.Marshal(v.Intakes, bs[n:])
	n += stringSliceMUS.Marshal(v.Specializations, bs[n:])
	return n
}

func (s programRecordMUS) Unmarshal(bs []byte) (ProgramRecord, int, error) {
	var v ProgramRecord
	var err error
	var fn int
	n := 0
	if v.ID, fn, err = IDMUS.Unmarshal(bs); err != nil {
		return v, n + fn, err
	}
	n += fn
	if v.SchoolID, fn, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + fn, err
	}
	n += fn
	if v.SchoolName, fn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + fn, err
	}
	n += fn
	if v.Name, fn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + fn, err
	}
	n += fn
	if v.Type, fn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + fn, err
	}
	n += fn
	if v.Duration, fn, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return v, n + fn, err
	}
	n += fn
	if v.Intakes, fn, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + fn, err
	}
	n += fn
	if v.Specializations, fn, err = stringSliceMUS.Unmarshal(bs[n:]); err != nil {
		return v, n + fn, err
	}
	n += fn
	return v, n, nil
}

func (s programRecordMUS) Size(v ProgramRecord) int {
	size := IDMUS.Size(v.ID)
	size += IDMUS.Size(v.SchoolID)
	size += ord.String.Size(v.SchoolName)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Type)
	size += ord.String.Size(v.Duration)
	size += stringSliceMUS.Size(v.Intakes)
	size += stringSliceMUS.Size(v.Specializations)
	return size
}
