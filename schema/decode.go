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


package schema

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// decodeDict decodes a serialized record dict into a typed struct.
// Dicts that passed through JSON carry numbers as float64 and slices as
// []any, so decoding is weakly typed with a hook for embedding vectors.
func decodeDict(dict map[string]any, out any) error {
	config := &mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       float32SliceHook,
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecordData, err)
	}

	if err := decoder.Decode(dict); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecordData, err)
	}

	return nil
}

// float32SliceHook converts []any of float64 values into []float32.
func float32SliceHook(_, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf([]float32{}) {
		return data, nil
	}

	if f32Slice, ok := data.([]float32); ok {
		return f32Slice, nil
	}

	slice, ok := data.([]any)
	if !ok {
		return data, nil
	}

	result := make([]float32, len(slice))
	for i, v := range slice {
		switch f := v.(type) {
		case float64:
			result[i] = float32(f)
		case float32:
			result[i] = f
		}
	}
	return result, nil
}
