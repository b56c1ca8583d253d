package hashdb

import (
	"fmt"
	"github.com/gostonefire/hashdb/hashfunc"
	"github.com/gostonefire/hashdb/internal/conf"
	"github.com/gostonefire/hashdb/internal/hash"
	"github.com/gostonefire/hashdb/internal/storage"
	"os"
)

// HashHeader - The addressing parameters of a hash file, written once when the file is created
//   - RecordSize is the byte width of every data record
//   - MaxHash is the number of buckets, RBNs run from 0 to MaxHash - 1
//   - Algorithm is the built-in hash algorithm used when no external one is given. The zero value selects
//     hashfunc.CRC32 on create. On a header returned from an open file it is hashfunc.External if the file
//     was created with a custom algorithm.
type HashHeader struct {
	RecordSize int64
	MaxHash    int64
	Algorithm  hashfunc.Internal
}

// HashFile - An open hash file. It owns the file and the header read from or written to it, and is the
// handle every storage operation is called on. A HashFile is not safe for concurrent use.
type HashFile struct {
	fileName          string
	file              *os.File
	header            storage.Header
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// Create - Creates a new hash file containing only the header and returns it open.
//   - fileName is the path of the file, nothing may exist there already
//   - hashHeader holds record size and max hash, and optionally which built-in hash algorithm to use
//   - hashAlgorithm is an optional custom hash algorithm following the hashfunc.HashAlgorithm interface, the same algorithm has to be supplied on every open
//
// It returns:
//   - hashFile is a pointer to the open HashFile
//   - err is of type rc.FileExists if something exists at fileName, rc.FormatError if the header is invalid, or a standard error
func Create(fileName string, hashHeader HashHeader, hashAlgorithm hashfunc.HashAlgorithm) (hashFile *HashFile, err error) {
	// Check if name is empty
	if fileName == "" {
		err = fmt.Errorf("file name can not be empty")
		return
	}

	header := storage.Header{
		Version:       conf.HeaderVersion,
		HashAlgorithm: hashHeader.Algorithm,
		RecordSize:    hashHeader.RecordSize,
		MaxHash:       hashHeader.MaxHash,
	}
	err = header.Validate()
	if err != nil {
		return
	}

	// If no HashAlgorithm was given then use the internal one named by the header
	var internalAlg bool
	if hashAlgorithm == nil {
		if header.HashAlgorithm == hashfunc.External {
			header.HashAlgorithm = hashfunc.CRC32
		}
		hashAlgorithm, err = hash.NewInternalHashAlgorithm(header.HashAlgorithm, header.MaxHash)
		if err != nil {
			return
		}
		internalAlg = true
	} else {
		header.HashAlgorithm = hashfunc.External
		hashAlgorithm.SetTableSize(header.MaxHash)
	}

	file, err := storage.CreateHashFile(fileName, header)
	if err != nil {
		return
	}

	hashFile = &HashFile{
		fileName:          fileName,
		file:              file,
		header:            header,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// Open - Opens an existing hash file. The file must have a valid header, and if the file was created with
// a custom hash algorithm, that same algorithm has to be supplied.
//   - fileName is the path of an existing hash file
//   - hashAlgorithm is the custom hash algorithm the file was created with, or nil if it uses a built-in one
//
// It returns:
//   - hashFile is a pointer to the open HashFile
//   - err is of type rc.FileNotFound, rc.HeaderNotFound, rc.FormatError or a standard error
func Open(fileName string, hashAlgorithm hashfunc.HashAlgorithm) (hashFile *HashFile, err error) {
	file, header, err := storage.OpenHashFile(fileName)
	if err != nil {
		return
	}

	// Check for mismatch in choice of hash algorithm
	if header.HashAlgorithm != hashfunc.External && hashAlgorithm != nil {
		_ = file.Close()
		err = fmt.Errorf("seems the hash file was used with the internal hash algorithm %s but an external was given", header.HashAlgorithm)
		return
	}
	if header.HashAlgorithm == hashfunc.External && hashAlgorithm == nil {
		_ = file.Close()
		err = fmt.Errorf("seems the hash file was used with an external hash algorithm but no external was given")
		return
	}

	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm, err = hash.NewInternalHashAlgorithm(header.HashAlgorithm, header.MaxHash)
		if err != nil {
			_ = file.Close()
			return
		}
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(header.MaxHash)
	}

	hashFile = &HashFile{
		fileName:          fileName,
		file:              file,
		header:            header,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// Close - Syncs and closes the file. Use this preferably in a "defer" directly after Create or Open.
// Closing an already closed HashFile does nothing.
func (H *HashFile) Close() (err error) {
	if H.file == nil {
		return
	}

	syncErr := H.file.Sync()
	err = H.file.Close()
	H.file = nil
	if err == nil {
		err = syncErr
	}

	return
}

// Remove - Closes the hash file and removes it from disk
func (H *HashFile) Remove() (err error) {
	_ = H.Close()

	// Only try to remove if exists, and is not by accident a directory
	if stat, ok := os.Stat(H.fileName); ok == nil {
		if !stat.IsDir() {
			err = os.Remove(H.fileName)
			if err != nil {
				err = fmt.Errorf("error while removing hash file: %w", err)
				return
			}
		}
	}

	return
}

// GetHeader - Returns the header governing this file
func (H *HashFile) GetHeader() HashHeader {
	return HashHeader{
		RecordSize: H.header.RecordSize,
		MaxHash:    H.header.MaxHash,
		Algorithm:  H.header.HashAlgorithm,
	}
}

// Name - Returns the path the hash file was created or opened with
func (H *HashFile) Name() string {
	return H.fileName
}

// InternalAlgorithm - Returns true if the file uses one of the built-in hash algorithms
func (H *HashFile) InternalAlgorithm() bool {
	return H.internalAlgorithm
}

// checkOpen - Returns an error if the file has been closed
func (H *HashFile) checkOpen() (err error) {
	if H.file == nil {
		err = fmt.Errorf("hash file %s is closed", H.fileName)
	}

	return
}
