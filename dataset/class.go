package dataset

// ClassNames はラベル0-9に対応するクラス名です。
var ClassNames = [...]string{
	"airplane",
	"automobile",
	"bird",
	"cat",
	"deer",
	"dog",
	"frog",
	"horse",
	"ship",
	"truck",
}

func ClassName[L Number](label L) string {
	i := int(label)
	if i < 0 || i >= len(ClassNames) {
		return ""
	}
	return ClassNames[i]
}
