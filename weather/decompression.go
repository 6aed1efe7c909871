package weather

import (
	"bytes"
	"compress/gzip"
	"io"
	"log"
	"strings"

	"github.com/andybalholm/brotli"
)

// decompressBody returns the decoded response body. The client advertises
// gzip and brotli itself, so the transport leaves decoding to us.
//
// Detection uses the Content-Encoding header first and falls back to gzip
// magic bytes, since some proxies strip the header.
func decompressBody(body []byte, contentEncoding string) ([]byte, error) {
	if len(body) == 0 {
		return body, nil
	}

	encoding := strings.ToLower(strings.TrimSpace(contentEncoding))

	switch {
	case encoding == "br":
		decompressed, err := io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
		if err != nil {
			return nil, err
		}
		log.Printf("[Weather] Decompressed brotli: %d bytes → %d bytes", len(body), len(decompressed))
		return decompressed, nil

	case encoding == "gzip" || (len(body) >= 2 && body[0] == 0x1f && body[1] == 0x8b):
		reader, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		defer reader.Close()

		decompressed, err := io.ReadAll(reader)
		if err != nil {
			return nil, err
		}
		log.Printf("[Weather] Decompressed gzip: %d bytes → %d bytes", len(body), len(decompressed))
		return decompressed, nil
	}

	return body, nil
}
