package tensor3d

import (
	"fmt"

	"github.com/sw965/cifar10/record"
	"gonum.org/v1/gonum/blas/blas32"
)

// General はチャンネル優先・行優先で並んだ3階テンソルです。
type General struct {
	Channels      int
	Rows          int
	Cols          int
	ChannelStride int
	RowStride     int
	Data          []float32
}

func NewZeros(chs, rows, cols int) General {
	rowStride := cols
	chStride := rows * rowStride
	n := chs * chStride
	return General{
		Channels:      chs,
		Rows:          rows,
		Cols:          cols,
		ChannelStride: chStride,
		RowStride:     rowStride,
		Data:          make([]float32, n),
	}
}

// NewImage はCIFAR-10の画像1枚分 (3x32x32) のゼロテンソルを返します。
func NewImage() General {
	return NewZeros(record.Channels, record.Rows, record.Cols)
}

func (g General) N() int {
	return g.Channels * g.Rows * g.Cols
}

func (g General) At(ch, row, col int) int {
	return ch*g.ChannelStride + row*g.RowStride + col
}

func (g General) ToVector() blas32.Vector {
	return blas32.Vector{
		N:    g.N(),
		Inc:  1,
		Data: g.Data,
	}
}

// Channel はch番目のチャンネル面をコピーせずにベクトルとして返します。
func (g General) Channel(ch int) blas32.Vector {
	start := g.At(ch, 0, 0)
	n := g.Rows * g.Cols
	return blas32.Vector{
		N:    n,
		Inc:  1,
		Data: g.Data[start : start+n],
	}
}

// Fill はチャンネル優先の画素バイト列をそのままDataに書き込みます。
func (g General) Fill(pixels []byte) error {
	if len(pixels) != g.N() || len(g.Data) != g.N() {
		return fmt.Errorf("tensor3d: fill %dx%dx%d (data %d) with %d pixels", g.Channels, g.Rows, g.Cols, len(g.Data), len(pixels))
	}
	for i, b := range pixels {
		g.Data[i] = float32(b)
	}
	return nil
}
