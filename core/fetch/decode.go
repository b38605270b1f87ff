package fetch

import (
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// acceptEncoding advertises every encoding decodedBody understands.
const acceptEncoding = "gzip, deflate, br, zstd"

// decodedBody wraps the response body in a decompressor matching its Content-Encoding.
func decodedBody(resp *http.Response) (io.ReadCloser, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		r, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return r, nil

	case "deflate":
		r, err := zlib.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create deflate reader: %w", err)
		}
		return r, nil

	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil

	case "zstd":
		d, err := zstd.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		return d.IOReadCloser(), nil

	default:
		return resp.Body, nil
	}
}
