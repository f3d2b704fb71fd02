package tensor3d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sw965/cifar10/blas32/tensor/3d"
	"github.com/sw965/cifar10/record"
)

func TestNewImage(t *testing.T) {
	img := tensor3d.NewImage()
	assert.Equal(t, 3, img.Channels)
	assert.Equal(t, 32, img.Rows)
	assert.Equal(t, 32, img.Cols)
	assert.Equal(t, 1024, img.ChannelStride)
	assert.Equal(t, 32, img.RowStride)
	assert.Len(t, img.Data, record.PixelSize)
}

func TestFill(t *testing.T) {
	px := make([]byte, record.PixelSize)
	for i := range px {
		px[i] = byte(i)
	}

	img := tensor3d.NewImage()
	require.NoError(t, img.Fill(px))

	// 緑チャンネル, 2行目, 5列目
	idx := img.At(1, 2, 5)
	assert.Equal(t, 1024+2*32+5, idx)
	assert.Equal(t, float32(px[idx]), img.Data[idx])

	for i, b := range px {
		if img.Data[i] != float32(b) {
			t.Fatalf("Data[%d] = %v, want %d", i, img.Data[i], b)
		}
	}
}

func TestFillSizeMismatch(t *testing.T) {
	img := tensor3d.NewZeros(1, 28, 28)
	assert.Error(t, img.Fill(make([]byte, record.PixelSize)))
}

func TestChannel(t *testing.T) {
	img := tensor3d.NewZeros(2, 2, 3)
	for i := range img.Data {
		img.Data[i] = float32(i)
	}

	ch1 := img.Channel(1)
	assert.Equal(t, 6, ch1.N)
	assert.Equal(t, []float32{6, 7, 8, 9, 10, 11}, ch1.Data)

	// コピーではなくビュー
	ch1.Data[0] = 100
	assert.Equal(t, float32(100), img.Data[6])
}

func TestToVector(t *testing.T) {
	img := tensor3d.NewImage()
	v := img.ToVector()
	assert.Equal(t, record.PixelSize, v.N)
	assert.Equal(t, 1, v.Inc)

	v.Data[5] = 3
	assert.Equal(t, float32(3), img.Data[5])
}
