// Package unzip transparently decompresses gzip input streams.
package unzip

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// The two magic bytes every gzip stream starts with.
var gzipMagic = []byte{0x1f, 0x8b}

// compressReader implements ReadCloser interface
// and replaces Read method with a decompression one.
type compressReader struct {
	r  io.ReadCloser
	zr *gzip.Reader
}

func newCompressReader(r io.ReadCloser, br *bufio.Reader) (*compressReader, error) {
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("new gzip reader: %w", err)
	}

	return &compressReader{
		r:  r,
		zr: zr,
	}, nil
}

func (c *compressReader) Read(p []byte) (int, error) {
	return c.zr.Read(p)
}

func (c *compressReader) Close() error {
	if err := c.r.Close(); err != nil {
		return fmt.Errorf("close failed: %w", err)
	}
	return c.zr.Close()
}

// passthroughReader hands the buffered stream through untouched while
// closing the underlying source.
type passthroughReader struct {
	br  *bufio.Reader
	src io.Closer
}

func (p *passthroughReader) Read(b []byte) (int, error) {
	return p.br.Read(b)
}

func (p *passthroughReader) Close() error {
	return p.src.Close()
}

// Reader decides whether or not to decompress the stream judging by
// its first bytes. The returned ReadCloser owns r and closes it.
func Reader(r io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(r)

	// Streams shorter than the magic cannot be gzip; read errors
	// surface on the first consumer read.
	head, err := br.Peek(len(gzipMagic))
	if err != nil || !bytes.Equal(head, gzipMagic) {
		return &passthroughReader{br: br, src: r}, nil
	}

	return newCompressReader(r, br)
}
