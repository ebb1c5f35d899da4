// Copyright 2026 The Firn Authors.
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

package frame

// Family is the upper 16 bits of a packed cast type code (spec.md
// section 6).
type Family uint32

const (
	FamilyInt      Family = 0
	FamilyFloat    Family = 1
	FamilyString   Family = 2
	FamilyTemporal Family = 3
	FamilyBool     Family = 4
)

// Variant is the lower 16 bits of a packed cast type code.
type Variant uint32

// Int variants.
const (
	VariantI8 Variant = iota + 1
	VariantI16
	VariantI32
	VariantI64
	VariantU8
	VariantU16
	VariantU32
	VariantU64
)

// Float variants.
const (
	VariantF32 Variant = iota + 1
	VariantF64
)

// String variants.
const VariantUTF8 Variant = 1

// Temporal variants.
const (
	VariantDate Variant = iota + 1
	VariantTime
	VariantDatetimeNs
	VariantDatetimeUs
	VariantDatetimeMs
	VariantDatetimeS
)

// Bool variant.
const VariantBoolValue Variant = 1

// ColumnType is the decoded form of a packed u32 cast type code:
// (family<<16)|variant.
type ColumnType struct {
	Family  Family
	Variant Variant
}

var (
	TypeInt64  = ColumnType{FamilyInt, VariantI64}
	TypeFloat64 = ColumnType{FamilyFloat, VariantF64}
	TypeUtf8   = ColumnType{FamilyString, VariantUTF8}
	TypeBool   = ColumnType{FamilyBool, VariantBoolValue}
)

// DecodeCastCode unpacks a u32 = (family<<16)|variant into a ColumnType,
// validating the family/variant combination per spec.md section 6.
func DecodeCastCode(code uint32) (ColumnType, error) {
	family := Family(code >> 16)
	variant := Variant(code & 0xFFFF)
	ct := ColumnType{Family: family, Variant: variant}
	if !ct.valid() {
		return ColumnType{}, ErrUnknownCast.New(code)
	}
	return ct, nil
}

// EncodeCastCode packs a ColumnType back into its wire u32 form.
func EncodeCastCode(ct ColumnType) uint32 {
	return (uint32(ct.Family) << 16) | uint32(ct.Variant)
}

func (ct ColumnType) valid() bool {
	switch ct.Family {
	case FamilyInt:
		return ct.Variant >= VariantI8 && ct.Variant <= VariantU64
	case FamilyFloat:
		return ct.Variant >= VariantF32 && ct.Variant <= VariantF64
	case FamilyString:
		return ct.Variant == VariantUTF8
	case FamilyTemporal:
		return ct.Variant >= VariantDate && ct.Variant <= VariantDatetimeS
	case FamilyBool:
		return ct.Variant == VariantBoolValue
	default:
		return false
	}
}

// String renders a ColumnType for logging and Frame display rendering.
func (ct ColumnType) String() string {
	switch ct.Family {
	case FamilyInt:
		names := map[Variant]string{
			VariantI8: "i8", VariantI16: "i16", VariantI32: "i32", VariantI64: "i64",
			VariantU8: "u8", VariantU16: "u16", VariantU32: "u32", VariantU64: "u64",
		}
		return names[ct.Variant]
	case FamilyFloat:
		if ct.Variant == VariantF32 {
			return "f32"
		}
		return "f64"
	case FamilyString:
		return "str"
	case FamilyBool:
		return "bool"
	case FamilyTemporal:
		names := map[Variant]string{
			VariantDate: "date", VariantTime: "time",
			VariantDatetimeNs: "datetime[ns]", VariantDatetimeUs: "datetime[us]",
			VariantDatetimeMs: "datetime[ms]", VariantDatetimeS: "datetime[s]",
		}
		return names[ct.Variant]
	default:
		return "unknown"
	}
}
