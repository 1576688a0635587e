package datetime

import (
	"bytes"
	"fmt"
	"io"

	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"
)

// packedDateTime is the fixed 16-byte big-endian wire form of a DateTime.
// The day count, nanosecond-of-day and offset are stored separately so the
// local wall-clock fields survive a round trip bit-for-bit, not just the
// instant.
type packedDateTime struct {
	Days   int32 `struc:"int32,big"`
	Nano   int64 `struc:"int64,big"`
	Offset int32 `struc:"int32,big"`
}

const packedDateTimeSize = 16

// WriteTo writes the packed wire form of dt to w.
func (dt DateTime) WriteTo(w io.Writer) (int64, error) {
	cw := counter.NewWriter(w)

	packed := packedDateTime{
		Days:   dt.days,
		Nano:   dt.nsec,
		Offset: int32(dt.offset),
	}

	if err := struc.Pack(cw, &packed); err != nil {
		return cw.Count(), fmt.Errorf("failed to pack date-time record: %w", err)
	}

	return cw.Count(), nil
}

// ReadFrom reads a packed wire form from r, validating the nanosecond and
// offset fields before replacing dt.
func (dt *DateTime) ReadFrom(r io.Reader) (int64, error) {
	var packed packedDateTime
	if err := struc.Unpack(r, &packed); err != nil {
		return 0, fmt.Errorf("failed to unpack date-time record: %w", err)
	}

	if packed.Nano < 0 || packed.Nano >= nanosPerDay {
		return packedDateTimeSize, fmt.Errorf("%w: packed nanosecond-of-day %d", ErrInvalidField, packed.Nano)
	}

	offset, err := NewOffset(int(packed.Offset))
	if err != nil {
		return packedDateTimeSize, err
	}

	*dt = DateTime{
		days:   packed.Days,
		nsec:   packed.Nano,
		offset: offset,
	}

	return packedDateTimeSize, nil
}

func (dt DateTime) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, packedDateTimeSize))
	if _, err := dt.WriteTo(buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (dt *DateTime) UnmarshalBinary(data []byte) error {
	if len(data) != packedDateTimeSize {
		return fmt.Errorf("%w: packed date-time must be %d bytes, got %d", ErrInvalidFormat, packedDateTimeSize, len(data))
	}

	_, err := dt.ReadFrom(bytes.NewReader(data))
	return err
}
