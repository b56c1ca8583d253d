package storage

import (
	"fmt"
	"github.com/edsrzf/mmap-go"
	"github.com/gostonefire/hashdb/internal/model"
	"os"
)

// ScanSlots - Memory maps the file read only and calls fn for every slot that lies completely within the
// file, in ascending RBN order. Slots are handed over as copies so they stay valid after the unmap.
// The scan stops at the first error returned by fn, which is then returned.
func ScanSlots(file *os.File, recordSize, maxHash int64, fn func(slot model.Slot) error) (err error) {
	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		err = fmt.Errorf("unable to memory map hash file: %w", err)
		return
	}
	defer func(data *mmap.MMap) { _ = data.Unmap() }(&data)

	size := int64(len(data))
	for rbn := int64(0); rbn < maxHash; rbn++ {
		address := SlotAddress(rbn, recordSize)
		if address+recordSize > size {
			break
		}

		buf := make([]byte, recordSize)
		_ = copy(buf, data[address:address+recordSize])

		err = fn(model.Slot{State: model.SlotEmpty, RBN: rbn, Address: address, Data: buf})
		if err != nil {
			return
		}
	}

	return
}
