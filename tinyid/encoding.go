package tinyid

import (
	"database/sql/driver"
	"fmt"

	"github.com/pkg/errors"
)

// MarshalText implements encoding.TextMarshaler. IDs travel in structured
// documents (JSON, YAML, TOML) as their encoded text, never as raw bytes.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(Encode(id)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the same checks and
// errors as Decode.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Decode(string(text))
	if err != nil {
		return err
	}

	*id = parsed

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the raw 8 bytes.
func (id ID) MarshalBinary() ([]byte, error) {
	return id[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return errors.Wrapf(ErrInvalidLength, "tinyid: binary form needs %d bytes, got %d", Size, len(data))
	}

	copy(id[:], data)

	return nil
}

// Value implements driver.Valuer. IDs are stored as encoded text.
func (id ID) Value() (driver.Value, error) {
	return Encode(id), nil
}

// Scan implements sql.Scanner. A NULL column scans as the null ID.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		id.MakeNull()

		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		return id.UnmarshalText(v)
	default:
		return errors.Wrap(ErrDecode, fmt.Sprintf("cannot scan %T into tinyid.ID", src))
	}
}

// GormDataType tells gorm to map ID columns to a string type.
func (ID) GormDataType() string {
	return "string"
}
