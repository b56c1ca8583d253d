package record

import (
	"encoding/binary"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gostonefire/hashdb/internal/utils"
	"github.com/gostonefire/hashdb/rc"
)

// VehicleIDLength - Width of the vehicle id, which is also the key
const VehicleIDLength = 7

// MakeLength - Width of the make field
const MakeLength = 12

// ModelLength - Width of the model field
const ModelLength = 12

// YearLength - Width of the year field, a big endian int32
const YearLength = 4

// VehicleLength - Encoded width of a Vehicle
const VehicleLength = VehicleIDLength + MakeLength + ModelLength + YearLength

const (
	makeOffset  = VehicleIDLength
	modelOffset = makeOffset + MakeLength
	yearOffset  = modelOffset + ModelLength
)

var validate = validator.New()

// Vehicle - Sample fixed record keyed by its vehicle id
type Vehicle struct {
	VehicleID string `validate:"required,alphanum,max=7"`
	Make      string `validate:"max=12"`
	Model     string `validate:"max=12"`
	Year      int32  `validate:"omitempty,min=1886,max=9999"`
}

var _ FixedRecord = (*Vehicle)(nil)

// Validate - Checks that the vehicle fits its fixed width fields
func (V *Vehicle) Validate() (err error) {
	err = validate.Struct(V)
	if err != nil {
		err = fmt.Errorf("invalid vehicle: %w", err)
	}

	return
}

// Key - Returns the vehicle id as a zero padded fixed width key
func (V *Vehicle) Key() []byte {
	key := make([]byte, VehicleIDLength)
	utils.PutField(key, V.VehicleID)
	return key
}

// Empty - Returns an empty Vehicle
func (V *Vehicle) Empty() FixedRecord {
	return &Vehicle{}
}

// MarshalBinary - Encodes the vehicle into exactly VehicleLength bytes, longer strings are truncated
func (V *Vehicle) MarshalBinary() (buf []byte, err error) {
	buf = make([]byte, VehicleLength)

	utils.PutField(buf[:makeOffset], V.VehicleID)
	utils.PutField(buf[makeOffset:modelOffset], V.Make)
	utils.PutField(buf[modelOffset:yearOffset], V.Model)
	binary.BigEndian.PutUint32(buf[yearOffset:], uint32(V.Year))

	return
}

// UnmarshalBinary - Decodes a vehicle from a buffer of at least VehicleLength bytes, any bytes after that
// belong to a wider slot and are ignored
func (V *Vehicle) UnmarshalBinary(buf []byte) (err error) {
	if len(buf) < VehicleLength {
		err = rc.NewFormatError(fmt.Sprintf("vehicle needs %d bytes, got %d", VehicleLength, len(buf)))
		return
	}

	V.VehicleID = utils.GetField(buf[:makeOffset])
	V.Make = utils.GetField(buf[makeOffset:modelOffset])
	V.Model = utils.GetField(buf[modelOffset:yearOffset])
	V.Year = int32(binary.BigEndian.Uint32(buf[yearOffset:]))

	return
}

// String - Returns the vehicle as printed by the driver
func (V *Vehicle) String() string {
	return fmt.Sprintf("%-7s %-12s %-12s %4d", V.VehicleID, V.Make, V.Model, V.Year)
}
