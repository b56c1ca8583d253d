//go:build integration

package hashdb

import (
	"errors"
	"github.com/gostonefire/hashdb/hashfunc"
	"github.com/gostonefire/hashdb/internal/storage"
	"github.com/gostonefire/hashdb/rc"
	"github.com/gostonefire/hashdb/record"
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
)

func newVehicleFile(t *testing.T, maxHash int64, hashAlgorithm hashfunc.HashAlgorithm) *HashFile {
	hf, err := Create(testFileName(t), vehicleHeader(maxHash), hashAlgorithm)
	assert.NoError(t, err, "creates hash file")
	t.Cleanup(func() { _ = hf.Close() })

	return hf
}

func fileSize(t *testing.T, hf *HashFile) int64 {
	stat, err := os.Stat(hf.Name())
	assert.NoError(t, err, "stats file")

	return stat.Size()
}

func TestHashFile_ReadRec(t *testing.T) {
	t.Run("never written bucket beyond end of file is location not found", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 100, nil)

		// Execute
		err := hf.ReadRec(50, &record.Vehicle{})

		// Check
		assert.True(t, errors.Is(err, rc.LocNotFound{}), "location not found")
		assert.False(t, errors.Is(err, rc.FormatError{}), "not a format error")
	})

	t.Run("never written bucket within the file decodes to the empty sentinel", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 100, nil)
		err := hf.WriteRec(60, &record.Vehicle{VehicleID: "LAST1"})
		assert.NoError(t, err, "writes far bucket")

		v := &record.Vehicle{VehicleID: "STALE"}

		// Execute
		err = hf.ReadRec(50, v)

		// Check
		assert.NoError(t, err, "location found")
		assert.True(t, record.IsEmpty(v), "empty sentinel")
	})

	t.Run("bucket zero does not alias the header", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 10, nil)

		// Execute
		err := hf.ReadRec(0, &record.Vehicle{})

		// Check
		assert.True(t, errors.Is(err, rc.LocNotFound{}), "bucket zero starts after header")
	})

	t.Run("out of range rbn is an invalid location and does no io", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 100, nil)
		sizeBefore := fileSize(t, hf)
		v := &record.Vehicle{VehicleID: "KEEP"}

		// Execute
		errLow := hf.ReadRec(-1, v)
		errHigh := hf.ReadRec(100, v)

		// Check
		assert.True(t, errors.Is(errLow, rc.InvalidLocation{}), "negative rbn")
		assert.True(t, errors.Is(errHigh, rc.InvalidLocation{}), "rbn equal to max hash")
		assert.Equal(t, "KEEP", v.VehicleID, "record untouched")
		assert.Equal(t, sizeBefore, fileSize(t, hf), "file untouched")
	})
}

func TestHashFile_WriteRec(t *testing.T) {
	t.Run("writes and reads back at the same rbn", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 100, nil)
		v := &record.Vehicle{VehicleID: "ABC123", Make: "TOYOTA", Model: "COROLLA", Year: 2001}

		// Execute
		err := hf.WriteRec(42, v)

		// Check
		assert.NoError(t, err, "writes")
		assert.Equal(t, storage.SlotAddress(43, record.VehicleLength), fileSize(t, hf), "file extended to end of bucket 42")

		read := &record.Vehicle{}
		err = hf.ReadRec(42, read)
		assert.NoError(t, err, "reads")
		assert.Equal(t, *v, *read, "same record")
	})

	t.Run("zero pads records narrower than the record size", func(t *testing.T) {
		// Prepare
		hf, err := Create(testFileName(t), HashHeader{RecordSize: 64, MaxHash: 10}, nil)
		assert.NoError(t, err, "creates hash file")
		defer func() { _ = hf.Close() }()
		v := &record.Vehicle{VehicleID: "WIDE1", Year: 1999}

		// Execute
		err = hf.WriteRec(1, v)

		// Check
		assert.NoError(t, err, "writes")
		assert.Equal(t, storage.SlotAddress(2, 64), fileSize(t, hf), "bucket is 64 bytes")

		read := &record.Vehicle{}
		err = hf.ReadRec(1, read)
		assert.NoError(t, err, "reads")
		assert.Equal(t, *v, *read, "same record")
	})

	t.Run("encoding wider than the record size is a format error", func(t *testing.T) {
		// Prepare
		hf, err := Create(testFileName(t), HashHeader{RecordSize: 8, MaxHash: 10}, nil)
		assert.NoError(t, err, "creates hash file")
		defer func() { _ = hf.Close() }()
		sizeBefore := fileSize(t, hf)

		// Execute
		err = hf.WriteRec(1, &record.Vehicle{VehicleID: "NARROW"})

		// Check
		assert.True(t, errors.Is(err, rc.FormatError{}), "format error")
		assert.Equal(t, sizeBefore, fileSize(t, hf), "nothing written")
	})

	t.Run("out of range rbn is an invalid location and does no io", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 100, nil)
		sizeBefore := fileSize(t, hf)

		// Execute
		errLow := hf.WriteRec(-5, &record.Vehicle{VehicleID: "A"})
		errHigh := hf.WriteRec(1000, &record.Vehicle{VehicleID: "A"})

		// Check
		assert.True(t, errors.Is(errLow, rc.InvalidLocation{}), "negative rbn")
		assert.True(t, errors.Is(errHigh, rc.InvalidLocation{}), "rbn beyond max hash")
		assert.Equal(t, sizeBefore, fileSize(t, hf), "file untouched")
	})
}

func TestHashFile_Insert(t *testing.T) {
	t.Run("insert then lookup finds an identical record", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 100, nil)
		v := &record.Vehicle{VehicleID: "ABC123", Make: "FORD", Model: "MUSTANG", Year: 1967}
		bucket, err := hf.Bucket(v.Key())
		assert.NoError(t, err, "computes bucket")

		// Execute
		result, rbn, err := hf.Insert(v)

		// Check
		assert.NoError(t, err, "inserts")
		assert.Equal(t, Inserted, result, "inserted")
		assert.Equal(t, bucket, rbn, "stored in hashed bucket")

		found := &record.Vehicle{}
		err = hf.Lookup(bucket, v.Key(), found)
		assert.NoError(t, err, "found")
		assert.Equal(t, *v, *found, "identical record")
	})

	t.Run("id with trailing spaces is the same record", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 100, nil)
		result, rbn, err := hf.Insert(&record.Vehicle{VehicleID: "A ", Make: "SAAB"})
		assert.NoError(t, err, "inserts")
		assert.Equal(t, Inserted, result, "inserted")

		// Execute
		again, againRBN, err := hf.Insert(&record.Vehicle{VehicleID: "A ", Make: "SAAB"})
		trimmed, _, trimmedErr := hf.Insert(&record.Vehicle{VehicleID: "A", Make: "SAAB"})

		// Check
		assert.NoError(t, err, "reinserts")
		assert.Equal(t, RecordExists, again, "record exists, not a synonym")
		assert.Equal(t, rbn, againRBN, "same bucket")
		assert.NoError(t, trimmedErr, "inserts trimmed id")
		assert.Equal(t, RecordExists, trimmed, "trimmed id is the same key")

		found := &record.Vehicle{}
		err = hf.Lookup(rbn, (&record.Vehicle{VehicleID: "A"}).Key(), found)
		assert.NoError(t, err, "found by trimmed key")
		assert.Equal(t, "A", found.VehicleID, "stored without trailing space")
	})

	t.Run("duplicate insert returns record exists and leaves the bytes unchanged", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 100, nil)
		first := &record.Vehicle{VehicleID: "DUP1", Make: "FIAT", Model: "500", Year: 1960}
		result, _, err := hf.Insert(first)
		assert.NoError(t, err, "inserts first")
		assert.Equal(t, Inserted, result, "first inserted")

		before, err := os.ReadFile(hf.Name())
		assert.NoError(t, err, "reads file")

		// Execute
		result, _, err = hf.Insert(&record.Vehicle{VehicleID: "DUP1", Make: "OTHER", Model: "OTHER", Year: 2020})

		// Check
		assert.NoError(t, err, "no error")
		assert.Equal(t, RecordExists, result, "record exists")

		after, err := os.ReadFile(hf.Name())
		assert.NoError(t, err, "reads file")
		assert.Equal(t, before, after, "byte identical")
	})

	t.Run("a different key in the same bucket is a synonym and is not written", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 1, nil)
		k1 := &record.Vehicle{VehicleID: "FIRST1", Make: "BMW"}
		k2 := &record.Vehicle{VehicleID: "SECND2", Make: "AUDI"}

		// Execute
		result1, rbn1, err1 := hf.Insert(k1)
		result2, rbn2, err2 := hf.Insert(k2)

		// Check
		assert.NoError(t, err1, "first insert")
		assert.NoError(t, err2, "second insert")
		assert.Equal(t, Inserted, result1, "first inserted")
		assert.Equal(t, Synonym, result2, "second is a synonym")
		assert.Equal(t, int64(0), rbn1, "bucket zero")
		assert.Equal(t, int64(0), rbn2, "bucket zero")

		found := &record.Vehicle{}
		err := hf.Lookup(0, k1.Key(), found)
		assert.NoError(t, err, "first still found")
		assert.Equal(t, *k1, *found, "first unchanged")

		err = hf.Lookup(0, k2.Key(), &record.Vehicle{})
		assert.True(t, errors.Is(err, rc.RecordNotFound{}), "synonym never written")
	})

	t.Run("fills a bucket that exists but is empty", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 10, &fixedHash{rbn: 2})
		err := hf.WriteRec(5, &record.Vehicle{VehicleID: "FAR"})
		assert.NoError(t, err, "extends file past bucket 2")

		// Execute
		result, rbn, err := hf.Insert(&record.Vehicle{VehicleID: "NEAR"})

		// Check
		assert.NoError(t, err, "inserts")
		assert.Equal(t, Inserted, result, "inserted into empty bucket")
		assert.Equal(t, int64(2), rbn, "fixed bucket")
	})

	t.Run("blank key is a format error", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 10, nil)
		sizeBefore := fileSize(t, hf)

		// Execute
		_, _, err := hf.Insert(&record.Vehicle{VehicleID: "   "})

		// Check
		assert.True(t, errors.Is(err, rc.FormatError{}), "format error")
		assert.Equal(t, sizeBefore, fileSize(t, hf), "nothing written")
	})

	t.Run("hash outside the address space is an invalid location", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 10, &fixedHash{rbn: 10})

		// Execute
		_, _, err := hf.Insert(&record.Vehicle{VehicleID: "OOPS"})

		// Check
		assert.True(t, errors.Is(err, rc.InvalidLocation{}), "invalid location")
	})

	t.Run("records survive close and open", func(t *testing.T) {
		// Prepare
		fileName := testFileName(t)
		hf, err := Create(fileName, HashHeader{RecordSize: record.VehicleLength, MaxHash: 53, Algorithm: hashfunc.XXHash}, nil)
		assert.NoError(t, err, "creates hash file")
		v := &record.Vehicle{VehicleID: "PERSIST", Make: "VW", Model: "GOLF", Year: 1994}
		_, rbn, err := hf.Insert(v)
		assert.NoError(t, err, "inserts")
		err = hf.Close()
		assert.NoError(t, err, "closes")

		// Execute
		hf, err = Open(fileName, nil)
		assert.NoError(t, err, "opens")
		defer func() { _ = hf.Close() }()

		reopenRbn, err := hf.Bucket(v.Key())
		found := &record.Vehicle{}
		lookupErr := hf.Lookup(reopenRbn, v.Key(), found)

		// Check
		assert.NoError(t, err, "computes bucket")
		assert.Equal(t, rbn, reopenRbn, "same algorithm after open")
		assert.NoError(t, lookupErr, "found")
		assert.Equal(t, *v, *found, "identical record")
	})
}

func TestHashFile_Lookup(t *testing.T) {
	t.Run("empty bucket is not found", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 10, nil)
		err := hf.WriteRec(9, &record.Vehicle{VehicleID: "LAST"})
		assert.NoError(t, err, "writes last bucket")
		v := &record.Vehicle{VehicleID: "KEEP"}

		// Execute
		err = hf.Lookup(4, (&record.Vehicle{VehicleID: "ABC"}).Key(), v)

		// Check
		assert.True(t, errors.Is(err, rc.RecordNotFound{}), "not found")
		assert.Equal(t, "KEEP", v.VehicleID, "record untouched")
	})

	t.Run("bucket beyond end of file is not found", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 10, nil)

		// Execute
		err := hf.Lookup(4, (&record.Vehicle{VehicleID: "ABC"}).Key(), &record.Vehicle{})

		// Check
		assert.True(t, errors.Is(err, rc.RecordNotFound{}), "not found")
		assert.True(t, errors.Is(err, rc.LocNotFound{}), "keeps cause")
	})

	t.Run("out of range rbn is not found", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 10, nil)

		// Execute
		err := hf.Lookup(10, (&record.Vehicle{VehicleID: "ABC"}).Key(), &record.Vehicle{})

		// Check
		assert.True(t, errors.Is(err, rc.RecordNotFound{}), "not found")
		assert.True(t, errors.Is(err, rc.InvalidLocation{}), "keeps cause")
	})

	t.Run("different key is not found and the record is untouched", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 10, &fixedHash{rbn: 3})
		_, _, err := hf.Insert(&record.Vehicle{VehicleID: "OWNER", Make: "KIA"})
		assert.NoError(t, err, "inserts")
		v := &record.Vehicle{VehicleID: "OTHER"}

		// Execute
		err = hf.Lookup(3, v.Key(), v)

		// Check
		assert.True(t, errors.Is(err, rc.RecordNotFound{}), "not found")
		assert.Equal(t, record.Vehicle{VehicleID: "OTHER"}, *v, "record untouched")
	})
}
