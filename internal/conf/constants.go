package conf

// HeaderLength - Length of the reserved header region at the start of a hash file. The data region,
// and with it RBN 0, starts directly after it.
const HeaderLength int64 = 1024

// HeaderMagic - Marker identifying a hash file ("DHSH" when read little endian)
const HeaderMagic uint32 = 0x48534844

// HeaderVersion - Version of the header layout
const HeaderVersion uint8 = 1

// MagicOffset - Header offset to the magic marker - 4 bytes
const MagicOffset int64 = 0

// VersionOffset - Header offset to the layout version - 1 byte
const VersionOffset int64 = 4

// HashAlgorithmOffset - Header offset to the built-in hash algorithm id, 0 means external - 1 byte
const HashAlgorithmOffset int64 = 5

// RecordSizeOffset - Header offset to the fixed data record size - 4 bytes
const RecordSizeOffset int64 = 6

// MaxHashOffset - Header offset to the size of the hash address space - 8 bytes
const MaxHashOffset int64 = 10

// MaxRecordSize - Upper bound on the record size, a slot buffer of this size is allocated on every read
const MaxRecordSize int64 = 4 << 20

// FileMode - Permission bits for newly created hash files
const FileMode = 0644
