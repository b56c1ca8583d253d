//go:build integration

package hashdb

import (
	"errors"
	"github.com/gostonefire/hashdb/internal/conf"
	"github.com/gostonefire/hashdb/record"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHashFile_Scan(t *testing.T) {
	t.Run("visits occupied buckets in rbn order", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 20, nil)
		err := hf.WriteRec(11, &record.Vehicle{VehicleID: "B11"})
		assert.NoError(t, err, "writes bucket 11")
		err = hf.WriteRec(2, &record.Vehicle{VehicleID: "A2"})
		assert.NoError(t, err, "writes bucket 2")

		// Execute
		var rbns []int64
		var ids []string
		err = hf.Scan(&record.Vehicle{}, func(rbn int64, rec record.FixedRecord) error {
			rbns = append(rbns, rbn)
			ids = append(ids, rec.(*record.Vehicle).VehicleID)
			return nil
		})

		// Check
		assert.NoError(t, err, "scans")
		assert.Equal(t, []int64{2, 11}, rbns, "occupied buckets only")
		assert.Equal(t, []string{"A2", "B11"}, ids, "decoded records")
	})

	t.Run("empty file visits nothing", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 20, nil)
		calls := 0

		// Execute
		err := hf.Scan(&record.Vehicle{}, func(int64, record.FixedRecord) error {
			calls++
			return nil
		})

		// Check
		assert.NoError(t, err, "scans")
		assert.Zero(t, calls, "no callbacks")
	})

	t.Run("returns the callback error", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 20, nil)
		err := hf.WriteRec(1, &record.Vehicle{VehicleID: "X"})
		assert.NoError(t, err, "writes")
		stop := errors.New("stop")

		// Execute
		err = hf.Scan(&record.Vehicle{}, func(int64, record.FixedRecord) error { return stop })

		// Check
		assert.ErrorIs(t, err, stop, "callback error")
	})
}

func TestHashFile_Stats(t *testing.T) {
	t.Run("counts records and extent", func(t *testing.T) {
		// Prepare
		hf := newVehicleFile(t, 40, nil)
		for _, id := range []string{"AAA111", "BBB222", "CCC333", "DDD444"} {
			_, _, err := hf.Insert(&record.Vehicle{VehicleID: id})
			assert.NoError(t, err, "inserts %s", id)
		}
		err := hf.WriteRec(39, &record.Vehicle{VehicleID: "LAST"})
		assert.NoError(t, err, "writes last bucket")

		var occupied int64
		err = hf.Scan(&record.Vehicle{}, func(int64, record.FixedRecord) error {
			occupied++
			return nil
		})
		assert.NoError(t, err, "scans")

		// Execute
		stats, err := hf.Stats(&record.Vehicle{})

		// Check
		assert.NoError(t, err, "gets stats")
		assert.Equal(t, occupied, stats.Records, "records matches scan")
		assert.Equal(t, int64(40), stats.Buckets, "buckets")
		assert.Equal(t, int64(40), stats.WrittenBuckets, "whole address space written")
		assert.Equal(t, conf.HeaderLength+40*record.VehicleLength, stats.FileSize, "file size")
		assert.InDelta(t, float64(occupied)/40, stats.LoadFactor, 1e-9, "load factor")
	})
}
