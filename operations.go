package hashdb

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/gostonefire/hashdb/internal/model"
	"github.com/gostonefire/hashdb/internal/storage"
	"github.com/gostonefire/hashdb/internal/utils"
	"github.com/gostonefire/hashdb/rc"
	"github.com/gostonefire/hashdb/record"
)

// InsertResult - Outcome of an Insert that did not fail
type InsertResult int

const (
	// Inserted - The record was written to its bucket
	Inserted InsertResult = iota
	// RecordExists - A record with the same key already occupies the bucket, it was left untouched
	RecordExists
	// Synonym - A record with a different key occupies the bucket, nothing was written
	Synonym
)

// String - Returns a readable name of the result
func (I InsertResult) String() string {
	switch I {
	case Inserted:
		return "inserted"
	case RecordExists:
		return "record exists"
	case Synonym:
		return "synonym"
	default:
		return fmt.Sprintf("InsertResult(%d)", int(I))
	}
}

// ReadRec - Reads the record at a given RBN into record.
// A location that exists but was never written decodes to the empty sentinel and is not an error.
//   - rbn is the bucket to read, it must be within 0 and max hash - 1
//   - record is the record to decode into
//
// It returns:
//   - err is of type rc.InvalidLocation, rc.LocNotFound if the bucket is beyond the end of the file, rc.FormatError or a standard error
func (H *HashFile) ReadRec(rbn int64, record record.FixedRecord) (err error) {
	_, err = H.readSlot(rbn, record)

	return
}

// WriteRec - Writes record at a given RBN, extending the file if needed. Buckets skipped over read back as empty.
//   - rbn is the bucket to write, it must be within 0 and max hash - 1
//   - record is the record to write, its encoding can not be longer than the record size
//
// It returns:
//   - err is of type rc.InvalidLocation, rc.FormatError, rc.LocNotWritten or a standard error
func (H *HashFile) WriteRec(rbn int64, record record.FixedRecord) (err error) {
	err = H.checkLocation(rbn)
	if err != nil {
		return
	}

	buf, err := record.MarshalBinary()
	if err != nil {
		err = fmt.Errorf("error while encoding record: %w", err)
		return
	}

	data, ok := utils.PadTo(buf, H.header.RecordSize)
	if !ok {
		err = rc.NewFormatError(fmt.Sprintf("encoded record is %d bytes, record size is %d", len(buf), H.header.RecordSize))
		return
	}

	err = storage.WriteSlot(H.file, rbn, data)

	return
}

// Insert - Inserts a record in the bucket given by hashing its key. Insert never updates and never
// resolves collisions: an occupied bucket gives RecordExists or Synonym and nothing is written.
//   - record is the record to insert, its key must not be blank
//
// It returns:
//   - result is Inserted, RecordExists or Synonym
//   - rbn is the bucket the key hashed to
//   - err is of type rc.InvalidLocation if the hash algorithm went out of range, rc.FormatError, rc.LocNotWritten or a standard error
func (H *HashFile) Insert(record record.FixedRecord) (result InsertResult, rbn int64, err error) {
	key := record.Key()
	if utils.IsBlank(key) {
		err = rc.NewFormatError("a record with a blank key can not be inserted")
		return
	}

	rbn, err = H.Bucket(key)
	if err != nil {
		return
	}

	existing := record.Empty()
	slot, err := H.readSlot(rbn, existing)
	if err != nil && !errors.Is(err, rc.LocNotFound{}) {
		return
	}

	if err != nil || slot.State == model.SlotEmpty {
		err = H.WriteRec(rbn, record)
		if err != nil {
			return
		}
		result = Inserted
		return
	}

	if bytes.Equal(existing.Key(), key) {
		result = RecordExists
		return
	}

	result = Synonym

	return
}

// Lookup - Reads the record stored at rbn if its key matches key. The bucket is not computed from the key,
// use Bucket to get the same RBN that Insert would use.
//   - rbn is the bucket to look in
//   - key is the fixed width key to match
//   - record is decoded into only if found
//
// It returns:
//   - err is nil if found, otherwise of type rc.RecordNotFound, joined with the read error if reading the bucket failed
func (H *HashFile) Lookup(rbn int64, key []byte, record record.FixedRecord) (err error) {
	scratch := record.Empty()
	slot, err := H.readSlot(rbn, scratch)
	if err != nil {
		err = errors.Join(rc.NewRecordNotFound(fmt.Sprintf("no record at rbn %d", rbn)), err)
		return
	}

	if slot.State == model.SlotEmpty || !bytes.Equal(scratch.Key(), key) {
		err = rc.NewRecordNotFound(fmt.Sprintf("no record with key %q at rbn %d", bytes.TrimRight(key, "\x00 "), rbn))
		return
	}

	err = record.UnmarshalBinary(slot.Data)

	return
}

// Bucket - Returns the RBN the hash algorithm of this file assigns to key
func (H *HashFile) Bucket(key []byte) (rbn int64, err error) {
	rbn = H.hashAlgorithm.HashFunc(key)
	if rbn < 0 || rbn >= H.header.MaxHash {
		err = rc.NewInvalidLocation(fmt.Sprintf("hash algorithm returned rbn %d outside 0 to %d", rbn, H.header.MaxHash-1))
	}

	return
}

// readSlot - Reads and decodes the slot at rbn into record and sets the slot state from its key
func (H *HashFile) readSlot(rbn int64, record record.FixedRecord) (slot model.Slot, err error) {
	err = H.checkLocation(rbn)
	if err != nil {
		return
	}

	slot, err = storage.ReadSlot(H.file, rbn, H.header.RecordSize)
	if err != nil {
		return
	}

	err = record.UnmarshalBinary(slot.Data)
	if err != nil {
		err = fmt.Errorf("error while decoding record at rbn %d: %w", rbn, err)
		return
	}

	slot.State = slotState(record)

	return
}

// checkLocation - Fails fast on an RBN outside the address space or a closed file, before any I/O
func (H *HashFile) checkLocation(rbn int64) (err error) {
	err = H.checkOpen()
	if err != nil {
		return
	}

	if rbn < 0 || rbn >= H.header.MaxHash {
		err = rc.NewInvalidLocation(fmt.Sprintf("rbn %d outside 0 to %d", rbn, H.header.MaxHash-1))
	}

	return
}

// slotState - Projects the blank key sentinel to an explicit slot state
func slotState(r record.FixedRecord) model.SlotState {
	if record.IsEmpty(r) {
		return model.SlotEmpty
	}
	return model.SlotOccupied
}
