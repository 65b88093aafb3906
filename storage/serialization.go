// Copyright 2025 Poiesic Systems
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


package storage

import (
	muss "github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/poiesic/docstore"
)

// RefDocInfoMUS is the mus serializer for per-document hash records. Hash
// records are written once per document on every snapshot save and read
// individually during change detection, so they use a compact binary format
// instead of the JSON snapshot codec.
var RefDocInfoMUS refDocInfoMUS

var _ muss.Serializer[docstore.RefDocInfo] = RefDocInfoMUS

type refDocInfoMUS struct{}

func (refDocInfoMUS) Marshal(v docstore.RefDocInfo, bs []byte) (n int) {
	return ord.String.Marshal(v.DocHash, bs)
}

func (refDocInfoMUS) Unmarshal(bs []byte) (v docstore.RefDocInfo, n int, err error) {
	v.DocHash, n, err = ord.String.Unmarshal(bs)
	return
}

func (refDocInfoMUS) Size(v docstore.RefDocInfo) (size int) {
	return ord.String.Size(v.DocHash)
}

func (refDocInfoMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

// MarshalRefDocInfo serializes a RefDocInfo to bytes.
func MarshalRefDocInfo(info docstore.RefDocInfo) []byte {
	buf := make([]byte, RefDocInfoMUS.Size(info))
	RefDocInfoMUS.Marshal(info, buf)
	return buf
}

// UnmarshalRefDocInfo deserializes a RefDocInfo from bytes.
func UnmarshalRefDocInfo(data []byte) (docstore.RefDocInfo, error) {
	info, _, err := RefDocInfoMUS.Unmarshal(data)
	return info, err
}
