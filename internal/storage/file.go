package storage

import (
	"errors"
	"fmt"
	"github.com/gostonefire/hashdb/internal/conf"
	"github.com/gostonefire/hashdb/internal/model"
	"github.com/gostonefire/hashdb/rc"
	"io"
	"io/fs"
	"os"
)

// CreateHashFile - Creates a new hash file and writes Header data to it.
// Unlike a truncating create it never touches an existing file, anything at fileName gives rc.FileExists.
func CreateHashFile(fileName string, header Header) (file *os.File, err error) {
	file, err = os.OpenFile(fileName, os.O_CREATE|os.O_EXCL|os.O_RDWR, conf.FileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			err = rc.NewFileExists(fmt.Sprintf("hash file %s already exists", fileName))
			return
		}
		err = fmt.Errorf("error while creating new hash file: %w", err)
		return
	}

	err = SetHeader(file, header)
	if err != nil {
		_ = file.Close()
		_ = os.Remove(fileName)
		file = nil
		err = fmt.Errorf("error while writing header to hash file: %w", err)
		return
	}

	return
}

// OpenHashFile - Opens an existing hash file and returns it together with the Header read from it
func OpenHashFile(fileName string) (file *os.File, header Header, err error) {
	if _, statErr := os.Stat(fileName); statErr != nil {
		if errors.Is(statErr, fs.ErrNotExist) {
			err = rc.NewFileNotFound(fmt.Sprintf("hash file %s not found", fileName))
			return
		}
		err = fmt.Errorf("unable to stat hash file: %w", statErr)
		return
	}

	file, err = os.OpenFile(fileName, os.O_RDWR, conf.FileMode)
	if err != nil {
		err = fmt.Errorf("unable to open existing hash file: %w", err)
		return
	}

	header, err = GetHeader(file)
	if err != nil {
		_ = file.Close()
		file = nil
		err = fmt.Errorf("unable to read header from hash file: %w", err)
		return
	}

	return
}

// SlotAddress - Returns the file offset of a slot, the data region starts right after the header
func SlotAddress(rbn, recordSize int64) int64 {
	return conf.HeaderLength + rbn*recordSize
}

// ReadSlot - Reads the raw bytes of a slot. A slot not completely within the file gives rc.LocNotFound.
// The returned slot has State model.SlotEmpty, the caller decides occupancy after decoding.
func ReadSlot(file *os.File, rbn, recordSize int64) (slot model.Slot, err error) {
	address := SlotAddress(rbn, recordSize)
	buf := make([]byte, recordSize)

	n, err := file.ReadAt(buf, address)
	if int64(n) < recordSize {
		if err == nil || errors.Is(err, io.EOF) {
			err = rc.NewLocNotFound(fmt.Sprintf("rbn %d at address %d is beyond end of file", rbn, address))
			return
		}
		err = errors.Join(rc.NewLocNotFound(fmt.Sprintf("rbn %d at address %d could not be read", rbn, address)), err)
		return
	}
	err = nil

	slot = model.Slot{
		State:   model.SlotEmpty,
		RBN:     rbn,
		Address: address,
		Data:    buf,
	}

	return
}

// WriteSlot - Writes data, which must already be exactly one record size long, to a slot.
// Writing past the end of the file extends it, skipped slots read back as zeros.
func WriteSlot(file *os.File, rbn int64, data []byte) (err error) {
	recordSize := int64(len(data))
	address := SlotAddress(rbn, recordSize)

	n, err := file.WriteAt(data, address)
	if err != nil || int64(n) < recordSize {
		notWritten := rc.NewLocNotWritten(fmt.Sprintf("rbn %d at address %d: %d of %d bytes written", rbn, address, n, recordSize))
		if err != nil {
			err = errors.Join(notWritten, err)
		} else {
			err = notWritten
		}
		return
	}

	return
}
