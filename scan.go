package hashdb

import (
	"fmt"
	"github.com/gostonefire/hashdb/internal/model"
	"github.com/gostonefire/hashdb/internal/storage"
	"github.com/gostonefire/hashdb/record"
)

// HashFileStat - Statistics on the usage of a hash file
//   - Records is the number of occupied buckets
//   - Buckets is the size of the address space (max hash)
//   - WrittenBuckets is the number of buckets within the physical extent of the file, occupied or not
//   - FileSize is the physical size of the file including the header
//   - LoadFactor is Records divided by Buckets
type HashFileStat struct {
	Records        int64
	Buckets        int64
	WrittenBuckets int64
	FileSize       int64
	LoadFactor     float64
}

// Scan - Calls fn for every occupied bucket in ascending RBN order. The file is memory mapped read only for
// the duration of the call.
//   - proto is any record of the stored type, each bucket is decoded into a new record from proto.Empty()
//   - fn is called with the RBN and the decoded record, a non nil error from fn stops the scan and is returned
func (H *HashFile) Scan(proto record.FixedRecord, fn func(rbn int64, rec record.FixedRecord) error) (err error) {
	_, err = H.scan(proto, fn)

	return
}

// Stats - Returns usage statistics by scanning the whole file
//   - proto is any record of the stored type
func (H *HashFile) Stats(proto record.FixedRecord) (stats HashFileStat, err error) {
	var records int64
	written, err := H.scan(proto, func(int64, record.FixedRecord) error {
		records++
		return nil
	})
	if err != nil {
		return
	}

	info, err := H.file.Stat()
	if err != nil {
		err = fmt.Errorf("unable to stat hash file: %w", err)
		return
	}

	stats = HashFileStat{
		Records:        records,
		Buckets:        H.header.MaxHash,
		WrittenBuckets: written,
		FileSize:       info.Size(),
		LoadFactor:     float64(records) / float64(H.header.MaxHash),
	}

	return
}

// scan - Decodes every bucket within the file extent, calls fn for occupied ones and returns the number of
// buckets visited
func (H *HashFile) scan(proto record.FixedRecord, fn func(rbn int64, rec record.FixedRecord) error) (visited int64, err error) {
	err = H.checkOpen()
	if err != nil {
		return
	}

	err = storage.ScanSlots(H.file, H.header.RecordSize, H.header.MaxHash, func(slot model.Slot) error {
		visited++
		rec := proto.Empty()
		if decodeErr := rec.UnmarshalBinary(slot.Data); decodeErr != nil {
			return fmt.Errorf("error while decoding record at rbn %d: %w", slot.RBN, decodeErr)
		}
		if slotState(rec) == model.SlotEmpty {
			return nil
		}
		return fn(slot.RBN, rec)
	})

	return
}
