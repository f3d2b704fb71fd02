// Package record はCIFAR-10バイナリ形式の1レコード(ラベル1バイト + 画素3072バイト)を扱います。
package record

import (
	"errors"
	"fmt"
)

const (
	Channels = 3
	Rows     = 32
	Cols     = 32

	// PixelSize は1画像あたりの画素バイト数 (3072)
	PixelSize = Channels * Rows * Cols

	// Size は1レコードのバイト数 (3073)
	Size = 1 + PixelSize

	// PerFile は1ファイルあたりのレコード数
	PerFile = 10000
)

var (
	ErrTruncated = errors.New("record: truncated input")
	ErrPixelSize = errors.New("record: pixel size mismatch")
)

// Decode はbufのi番目のレコードからラベルと画素を取り出します。
// 画素はbufの部分スライスでありコピーはしません。
func Decode(buf []byte, i int) (byte, []byte, error) {
	if i < 0 {
		return 0, nil, fmt.Errorf("%w: negative record index %d", ErrTruncated, i)
	}
	start := i * Size
	end := start + Size
	if len(buf) < end {
		return 0, nil, fmt.Errorf("%w: record %d needs %d bytes, have %d", ErrTruncated, i, end, len(buf))
	}
	return buf[start], buf[start+1 : end], nil
}

// Take はbufから読み込めるレコード数を返します (最大want件)。
// 末尾の不完全なレコードまで読む必要がある場合はErrTruncatedを返します。
func Take(buf []byte, want int) (int, error) {
	full := len(buf) / Size
	if full >= want {
		return want, nil
	}
	if rem := len(buf) % Size; rem != 0 {
		return 0, fmt.Errorf("%w: %d trailing bytes after %d records", ErrTruncated, rem, full)
	}
	return full, nil
}

// Append は1レコードをdstの末尾に書き込みます。
func Append(dst []byte, label byte, pixels []byte) ([]byte, error) {
	if len(pixels) != PixelSize {
		return dst, fmt.Errorf("%w: got %d, want %d", ErrPixelSize, len(pixels), PixelSize)
	}
	dst = append(dst, label)
	return append(dst, pixels...), nil
}
