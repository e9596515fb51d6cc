package sequence

import (
	"archive/zip"
	"bytes"
)

// Zip signatures: local file header and the end-of-central-directory
// record of an empty archive. Detection is by content, never extension.
var zipMagics = [][]byte{
	{'P', 'K', 0x03, 0x04},
	{'P', 'K', 0x05, 0x06},
}

func isZipData(data []byte) bool {
	for _, magic := range zipMagics {
		if bytes.HasPrefix(data, magic) {
			return true
		}
	}
	return false
}

// archiveBuffer owns a full in-memory copy of an archive plus a read
// handle over it. It is exclusively held by one Sequence and dropped as a
// whole on release, bounding memory to one archive per sequence.
type archiveBuffer struct {
	data   []byte
	reader *zip.Reader
}

// newArchiveBuffer opens a zip reader over data and returns the buffer
// together with the entry names in archive order.
func newArchiveBuffer(data []byte) (*archiveBuffer, []string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, err
	}
	names := make([]string, len(reader.File))
	for i, f := range reader.File {
		names[i] = f.Name
	}
	return &archiveBuffer{data: data, reader: reader}, names, nil
}
