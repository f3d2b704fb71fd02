package dataset

import (
	"fmt"

	"github.com/sw965/cifar10/record"
	"golang.org/x/exp/constraints"
)

// Number は1バイトの画素値・ラベルから変換できる要素型です。
type Number interface {
	constraints.Integer | constraints.Float
}

// Filler は読み込んだ画素を受け取る画像コンテナです。
type Filler interface {
	Fill(pixels []byte) error
}

// Flat は3072要素の平坦な画像です。
type Flat[P Number] []P

func NewFlat[P Number]() Flat[P] {
	return make(Flat[P], record.PixelSize)
}

func (f Flat[P]) Fill(pixels []byte) error {
	if len(f) != len(pixels) {
		return fmt.Errorf("dataset: fill flat image of %d with %d pixels", len(f), len(pixels))
	}
	for i, b := range pixels {
		f[i] = P(b)
	}
	return nil
}
