// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// compressibleContentTypes lists media types worth compressing.
var compressibleContentTypes = []string{
	"application/json",
	"application/problem+json",
	"text/plain",
	"text/html",
}

// Compress gzips responses for clients that accept it. Bodies are buffered
// and compressed only when they reach minSize bytes and carry a
// compressible content type.
func Compress(level, minSize int) func(http.Handler) http.Handler {
	pool := sync.Pool{
		New: func() any {
			gz, err := gzip.NewWriterLevel(io.Discard, level)
			if err != nil {
				gz = gzip.NewWriter(io.Discard)
			}
			return gz
		},
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			sw := &selectiveWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			sw.finish(&pool, minSize)
		})
	}
}

// selectiveWriter buffers a response until the handler returns.
type selectiveWriter struct {
	http.ResponseWriter
	buf        bytes.Buffer
	statusCode int
}

func (sw *selectiveWriter) WriteHeader(statusCode int) {
	if sw.statusCode == 0 {
		sw.statusCode = statusCode
	}
}

func (sw *selectiveWriter) Write(b []byte) (int, error) {
	return sw.buf.Write(b)
}

func (sw *selectiveWriter) finish(pool *sync.Pool, minSize int) {
	h := sw.Header()
	h.Add("Vary", "Accept-Encoding")

	compress := sw.buf.Len() >= minSize &&
		h.Get("Content-Encoding") == "" &&
		isCompressible(h.Get("Content-Type"))
	if compress {
		h.Set("Content-Encoding", "gzip")
		h.Del("Content-Length")
	}

	if sw.statusCode != 0 {
		sw.ResponseWriter.WriteHeader(sw.statusCode)
	}

	if !compress {
		_, _ = sw.ResponseWriter.Write(sw.buf.Bytes())
		return
	}

	gz := pool.Get().(*gzip.Writer)
	gz.Reset(sw.ResponseWriter)
	_, _ = gz.Write(sw.buf.Bytes())
	_ = gz.Close()
	pool.Put(gz)
}

// isCompressible checks if the content type should be compressed.
func isCompressible(contentType string) bool {
	if contentType == "" {
		return false
	}

	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = strings.TrimSpace(contentType[:idx])
	}

	for _, ct := range compressibleContentTypes {
		if strings.EqualFold(contentType, ct) {
			return true
		}
	}
	return strings.HasPrefix(strings.ToLower(contentType), "text/")
}
