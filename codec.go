package bignum

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"unsafe"

	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var (
	_ fmt.Stringer             = (*Int)(nil)
	_ sql.Scanner              = (*Int)(nil)
	_ driver.Valuer            = (*Int)(nil)
	_ encoding.TextMarshaler   = (*Int)(nil)
	_ encoding.TextUnmarshaler = (*Int)(nil)
	_ json.Marshaler           = (*Int)(nil)
	_ json.Unmarshaler         = (*Int)(nil)
)

// String returns the decimal representation of x (spec §4.2.2, §6.1
// to_decimal). Zero renders as "0"; negative values carry a leading '-'.
func (x Int) String() string {
	if x.neg {
		return "-" + magToDecimal(x.mag)
	}
	return magToDecimal(x.mag)
}

// MaxDecimalLen returns an upper bound on the number of characters needed
// to render x in decimal, including an optional leading minus (spec §6.1
// max_decimal_length).
func (x Int) MaxDecimalLen() int {
	return maxDecimalLength(x)
}

// MarshalText implements encoding.TextMarshaler.
func (x Int) MarshalText() ([]byte, error) {
	return unsafeStringToBytes(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(data []byte) error {
	v, err := FromDecimal(unsafeBytesToString(data))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON implements json.Marshaler. Bignums routinely exceed JSON's
// safe-integer range, so the value is quoted rather than emitted as a bare
// JSON number, matching how the teacher's decimal library quotes its
// big.Int fallback path.
func (x Int) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(x.String())), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting either a quoted or
// bare-number JSON decimal.
func (x *Int) UnmarshalJSON(data []byte) error {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return x.UnmarshalText(data)
}

// MarshalBinary implements encoding.BinaryMarshaler with a compact tagged
// format, modeled on the teacher's [overflow+neg][prec][total bytes][coef]
// layout:
//
//	[sign byte: 1 if negative else 0][limb count, 4 bytes BE][limbs, 4 bytes BE each]
func (x Int) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 5+len(x.mag)*4)

	if x.neg {
		buf[0] = 1
	}
	binary.BigEndian.PutUint32(buf[1:5], uint32(len(x.mag)))

	for i, limb := range x.mag {
		binary.BigEndian.PutUint32(buf[5+i*4:9+i*4], limb)
	}

	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Int) UnmarshalBinary(data []byte) error {
	if len(data) < 5 {
		return fmt.Errorf("bignum: invalid binary data")
	}

	neg := data[0] != 0
	n := binary.BigEndian.Uint32(data[1:5])

	if uint64(len(data)) != 5+uint64(n)*4 {
		return fmt.Errorf("bignum: invalid binary data")
	}

	mag := make([]uint32, n)
	for i := range mag {
		mag[i] = binary.BigEndian.Uint32(data[5+i*4 : 9+i*4])
	}

	*x = FromLimbs(mag, neg)
	return nil
}

// Scan implements sql.Scanner, so Int can be read directly from a
// database/sql row, mirroring the teacher's Decimal.Scan.
func (x *Int) Scan(src any) error {
	var err error
	switch v := src.(type) {
	case []byte:
		*x, err = FromDecimal(unsafeBytesToString(v))
	case string:
		*x, err = FromDecimal(v)
	case int64:
		*x, err = FromDecimal(strconv.FormatInt(v, 10))
	case uint64:
		*x, err = FromDecimal(strconv.FormatUint(v, 10))
	case int:
		*x, err = FromDecimal(strconv.Itoa(v))
	case nil:
		err = fmt.Errorf("bignum: can't scan nil to Int")
	default:
		err = fmt.Errorf("bignum: can't scan %T to Int", src)
	}

	return err
}

// Value implements driver.Valuer.
func (x Int) Value() (driver.Value, error) {
	return x.String(), nil
}

// ToAttributeValue converts x to a DynamoDB number attribute.
func (x Int) ToAttributeValue() (ddbtypes.AttributeValue, error) {
	return &ddbtypes.AttributeValueMemberN{Value: x.String()}, nil
}

// IntFromAttributeValue converts a DynamoDB attribute (either a number or a
// numeric string) back into an Int.
func IntFromAttributeValue(av ddbtypes.AttributeValue) (Int, error) {
	switch v := av.(type) {
	case *ddbtypes.AttributeValueMemberN:
		return FromDecimal(v.Value)
	case *ddbtypes.AttributeValueMemberS:
		return FromDecimal(v.Value)
	default:
		return Int{}, fmt.Errorf("bignum: unsupported DynamoDB attribute type %T", av)
	}
}

func unsafeBytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func unsafeStringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
