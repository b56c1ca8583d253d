package storage

import (
	"encoding/binary"
	"errors"
	"fmt"
	"github.com/gostonefire/hashdb/hashfunc"
	"github.com/gostonefire/hashdb/internal/conf"
	"github.com/gostonefire/hashdb/rc"
	"io"
	"math"
	"os"
)

// Header - Represents the hash file header data
type Header struct {
	Version       uint8
	HashAlgorithm hashfunc.Internal
	RecordSize    int64
	MaxHash       int64
}

// Validate - Checks that the addressing parameters can be stored and used
func (H Header) Validate() (err error) {
	if H.RecordSize <= 0 || H.RecordSize > conf.MaxRecordSize {
		err = rc.NewFormatError(fmt.Sprintf("record size must be between 1 and %d, got %d", conf.MaxRecordSize, H.RecordSize))
		return
	}
	if H.MaxHash <= 0 {
		err = rc.NewFormatError(fmt.Sprintf("max hash must be a positive value higher than 0 (zero), got %d", H.MaxHash))
		return
	}

	// The address of the last slot has to fit in an int64
	if limit := (math.MaxInt64 - conf.HeaderLength) / H.RecordSize; H.MaxHash > limit {
		err = rc.NewFormatError(fmt.Sprintf("max hash %d with record size %d exceeds the addressable file size, at most %d", H.MaxHash, H.RecordSize, limit))
		return
	}

	return
}

// GetHeader - Reads header data from file and returns it as a Header struct
func GetHeader(file *os.File) (header Header, err error) {
	buf := make([]byte, conf.HeaderLength)
	n, err := file.ReadAt(buf, 0)
	if int64(n) < conf.HeaderLength {
		err = rc.NewHeaderNotFound(fmt.Sprintf("file holds %d bytes, header needs %d", n, conf.HeaderLength))
		return
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return
	}

	header, err = bytesToHeader(buf)

	return
}

// SetHeader - Takes a Header struct and writes header data to file
func SetHeader(file *os.File, header Header) (err error) {
	buf := headerToBytes(header)

	_, err = file.WriteAt(buf, 0)

	return
}

// bytesToHeader - Converts a slice of bytes to a Header struct
func bytesToHeader(buf []byte) (header Header, err error) {
	if int64(len(buf)) != conf.HeaderLength {
		err = rc.NewFormatError(fmt.Sprintf("header must be %d bytes, got %d", conf.HeaderLength, len(buf)))
		return
	}

	if magic := binary.LittleEndian.Uint32(buf[conf.MagicOffset:]); magic != conf.HeaderMagic {
		err = rc.NewFormatError(fmt.Sprintf("not a hash file, magic %#x", magic))
		return
	}

	header = Header{
		Version:       buf[conf.VersionOffset],
		HashAlgorithm: hashfunc.Internal(buf[conf.HashAlgorithmOffset]),
		RecordSize:    int64(binary.LittleEndian.Uint32(buf[conf.RecordSizeOffset:])),
		MaxHash:       int64(binary.LittleEndian.Uint64(buf[conf.MaxHashOffset:])),
	}

	if header.Version != conf.HeaderVersion {
		err = rc.NewFormatError(fmt.Sprintf("unsupported header version %d", header.Version))
		return
	}

	err = header.Validate()

	return
}

// headerToBytes - Converts a Header struct to a slice of bytes, magic and version are always the current ones
func headerToBytes(header Header) (buf []byte) {
	// Create byte buffer
	buf = make([]byte, conf.HeaderLength)

	binary.LittleEndian.PutUint32(buf[conf.MagicOffset:], conf.HeaderMagic)
	buf[conf.VersionOffset] = conf.HeaderVersion
	buf[conf.HashAlgorithmOffset] = uint8(header.HashAlgorithm)
	binary.LittleEndian.PutUint32(buf[conf.RecordSizeOffset:], uint32(header.RecordSize))
	binary.LittleEndian.PutUint64(buf[conf.MaxHashOffset:], uint64(header.MaxHash))

	return
}
