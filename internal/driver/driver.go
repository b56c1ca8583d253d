package driver

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/hashdb"
	"github.com/gostonefire/hashdb/internal/conf"
	"github.com/gostonefire/hashdb/rc"
	"github.com/gostonefire/hashdb/record"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// objectVehicle - The only record type the driver knows
const objectVehicle = "VEHICLE"

// Driver - Interprets a command stream against one open hash file at a time.
//
// Commands, one per line, are echoed to the output followed by their result:
//
//	* comment
//	CREATE VEHICLE <file> <maxHash>
//	OPEN VEHICLE <file>
//	INSERT VEHICLE <id>,<make>,<model>,<year>
//	READ VEHICLE <id>
//	PRINTALL VEHICLE
//	STATS VEHICLE
//	CLOSE VEHICLE
type Driver struct {
	config   conf.Config
	out      io.Writer
	logger   *slog.Logger
	hashFile *hashdb.HashFile
}

// New - Returns a new Driver writing results to out and logging to logger
func New(config conf.Config, out io.Writer, logger *slog.Logger) *Driver {
	return &Driver{
		config: config,
		out:    out,
		logger: logger,
	}
}

// Run - Executes every command read from in. A failing command is reported and processing continues,
// only a failure reading in or writing the output stops the run.
func (D *Driver) Run(in io.Reader) (err error) {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		_, err = fmt.Fprintf(D.out, ">> %s\n", line)
		if err != nil {
			return
		}
		if strings.HasPrefix(line, "*") {
			continue
		}

		cmdErr := D.execute(line)
		if cmdErr != nil {
			D.logger.Warn("command failed", "line", lineNo, "command", line, "error", cmdErr)
			_, err = fmt.Fprintf(D.out, "   error: %s\n", cmdErr)
			if err != nil {
				return
			}
		}
	}

	err = scanner.Err()
	if err != nil {
		err = fmt.Errorf("error while reading commands: %w", err)
	}

	return
}

// Close - Closes the hash file if one is open
func (D *Driver) Close() (err error) {
	if D.hashFile == nil {
		return
	}

	err = D.hashFile.Close()
	D.hashFile = nil

	return
}

// execute - Parses and runs one command
func (D *Driver) execute(line string) (err error) {
	verb, object, args := splitCommand(line)
	if object != objectVehicle {
		err = fmt.Errorf("unknown record type %q", object)
		return
	}

	switch verb {
	case "CREATE":
		err = D.create(args)
	case "OPEN":
		err = D.open(args)
	case "INSERT":
		err = D.insert(args)
	case "READ":
		err = D.read(args)
	case "PRINTALL":
		err = D.printAll()
	case "STATS":
		err = D.stats()
	case "CLOSE":
		err = D.closeFile()
	default:
		err = fmt.Errorf("unknown command %q", verb)
	}

	return
}

func (D *Driver) create(args string) (err error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		err = fmt.Errorf("usage: CREATE VEHICLE <file> <maxHash>")
		return
	}

	maxHash, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		err = fmt.Errorf("invalid max hash %q: %w", fields[1], err)
		return
	}

	recordSize := D.config.RecordSize
	if recordSize == 0 {
		recordSize = record.VehicleLength
	}
	if recordSize < record.VehicleLength {
		err = fmt.Errorf("record size %d is smaller than a vehicle (%d bytes)", recordSize, record.VehicleLength)
		return
	}

	header := hashdb.HashHeader{
		RecordSize: recordSize,
		MaxHash:    maxHash,
		Algorithm:  D.config.Algorithm(),
	}
	hashFile, err := hashdb.Create(fields[0], header, nil)
	if err != nil {
		return
	}

	D.replace(hashFile)

	D.logger.Info("hash file created", "file", fields[0], "record_size", recordSize, "max_hash", maxHash, "hash_algorithm", header.Algorithm.String())
	_, err = fmt.Fprintf(D.out, "   created %s, record size %d, max hash %d\n", fields[0], recordSize, maxHash)

	return
}

func (D *Driver) open(args string) (err error) {
	fileName := strings.TrimSpace(args)
	if fileName == "" {
		err = fmt.Errorf("usage: OPEN VEHICLE <file>")
		return
	}

	hashFile, err := hashdb.Open(fileName, nil)
	if err != nil {
		return
	}

	header := hashFile.GetHeader()
	if header.RecordSize < record.VehicleLength {
		_ = hashFile.Close()
		err = fmt.Errorf("record size %d of %s is smaller than a vehicle (%d bytes)", header.RecordSize, fileName, record.VehicleLength)
		return
	}

	D.replace(hashFile)

	D.logger.Info("hash file opened", "file", fileName, "record_size", header.RecordSize, "max_hash", header.MaxHash, "hash_algorithm", header.Algorithm.String())
	_, err = fmt.Fprintf(D.out, "   opened %s, record size %d, max hash %d\n", fileName, header.RecordSize, header.MaxHash)

	return
}

func (D *Driver) insert(args string) (err error) {
	if err = D.requireOpen(); err != nil {
		return
	}

	vehicle, err := parseVehicle(args)
	if err != nil {
		return
	}

	result, rbn, err := D.hashFile.Insert(vehicle)
	if err != nil {
		return
	}

	D.logger.Debug("insert", "vehicle_id", vehicle.VehicleID, "rbn", rbn, "result", result.String())
	switch result {
	case hashdb.Inserted:
		_, err = fmt.Fprintf(D.out, "   inserted %s at RBN %d\n", vehicle.VehicleID, rbn)
	case hashdb.RecordExists:
		_, err = fmt.Fprintf(D.out, "   record exists: %s at RBN %d\n", vehicle.VehicleID, rbn)
	case hashdb.Synonym:
		_, err = fmt.Fprintf(D.out, "   synonym: %s collides at RBN %d\n", vehicle.VehicleID, rbn)
	}

	return
}

func (D *Driver) read(args string) (err error) {
	if err = D.requireOpen(); err != nil {
		return
	}

	vehicle := &record.Vehicle{VehicleID: strings.TrimSpace(args)}
	if err = vehicle.Validate(); err != nil {
		return
	}

	rbn, err := D.hashFile.Bucket(vehicle.Key())
	if err != nil {
		return
	}

	err = D.hashFile.Lookup(rbn, vehicle.Key(), vehicle)
	if errors.Is(err, rc.RecordNotFound{}) {
		D.logger.Debug("read", "vehicle_id", vehicle.VehicleID, "rbn", rbn, "found", false)
		_, err = fmt.Fprintf(D.out, "   not found: %s (RBN %d)\n", vehicle.VehicleID, rbn)
		return
	}
	if err != nil {
		return
	}

	D.logger.Debug("read", "vehicle_id", vehicle.VehicleID, "rbn", rbn, "found", true)
	_, err = fmt.Fprintf(D.out, "   %5d %s\n", rbn, vehicle)

	return
}

func (D *Driver) printAll() (err error) {
	if err = D.requireOpen(); err != nil {
		return
	}

	_, err = fmt.Fprintf(D.out, "   %5s %-7s %-12s %-12s %4s\n", "RBN", "ID", "MAKE", "MODEL", "YEAR")
	if err != nil {
		return
	}

	err = D.hashFile.Scan(&record.Vehicle{}, func(rbn int64, rec record.FixedRecord) error {
		_, writeErr := fmt.Fprintf(D.out, "   %5d %s\n", rbn, rec)
		return writeErr
	})

	return
}

func (D *Driver) stats() (err error) {
	if err = D.requireOpen(); err != nil {
		return
	}

	stats, err := D.hashFile.Stats(&record.Vehicle{})
	if err != nil {
		return
	}

	_, err = fmt.Fprintf(D.out, "   records %d, buckets %d, written buckets %d, file size %d, load factor %.2f\n",
		stats.Records, stats.Buckets, stats.WrittenBuckets, stats.FileSize, stats.LoadFactor)

	return
}

func (D *Driver) closeFile() (err error) {
	if err = D.requireOpen(); err != nil {
		return
	}

	name := D.hashFile.Name()
	err = D.Close()
	if err != nil {
		return
	}

	D.logger.Info("hash file closed", "file", name)
	_, err = fmt.Fprintf(D.out, "   closed %s\n", name)

	return
}

// namedCloser - The part of a hash file needed to close it and report which one it was
type namedCloser interface {
	Name() string
	Close() error
}

// replace - Closes the current hash file, if any, and makes hashFile the open one
func (D *Driver) replace(hashFile *hashdb.HashFile) {
	if D.hashFile != nil {
		D.closeReplaced(D.hashFile)
	}
	D.hashFile = hashFile
}

// closeReplaced - Closes a hash file that is being replaced, a failure is logged since no command reports it
func (D *Driver) closeReplaced(old namedCloser) {
	if err := old.Close(); err != nil {
		D.logger.Warn("unable to close replaced hash file", "file", old.Name(), "error", err)
	}
}

func (D *Driver) requireOpen() (err error) {
	if D.hashFile == nil {
		err = fmt.Errorf("no hash file open")
	}

	return
}

// splitCommand - Splits a line into verb, record type and the rest of the line
func splitCommand(line string) (verb, object, args string) {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	object, args, _ = strings.Cut(strings.TrimSpace(rest), " ")

	return strings.ToUpper(verb), strings.ToUpper(object), strings.TrimSpace(args)
}

// parseVehicle - Parses "<id>,<make>,<model>,<year>" into a validated Vehicle, year may be left out
func parseVehicle(args string) (vehicle *record.Vehicle, err error) {
	parts := strings.Split(args, ",")
	if len(parts) < 1 || len(parts) > 4 {
		err = fmt.Errorf("usage: INSERT VEHICLE <id>,<make>,<model>,<year>")
		return
	}
	for len(parts) < 4 {
		parts = append(parts, "")
	}

	vehicle = &record.Vehicle{
		VehicleID: strings.TrimSpace(parts[0]),
		Make:      strings.TrimSpace(parts[1]),
		Model:     strings.TrimSpace(parts[2]),
	}

	if year := strings.TrimSpace(parts[3]); year != "" {
		var y int64
		y, err = strconv.ParseInt(year, 10, 32)
		if err != nil {
			vehicle = nil
			err = fmt.Errorf("invalid year %q: %w", year, err)
			return
		}
		vehicle.Year = int32(y)
	}

	err = vehicle.Validate()
	if err != nil {
		vehicle = nil
	}

	return
}
