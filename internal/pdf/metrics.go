package pdf

// AFM widths for the Times standard fonts, ASCII 32..126, in 1/1000ths
// of the font size. Characters outside the table fall back to 500.

var timesRomanWidths = [95]int{
	250, 333, 408, 500, 500, 833, 778, 180, 333, 333, // space ! " # $ % & ' ( )
	500, 564, 250, 333, 250, 278, 500, 500, 500, 500, // * + , - . / 0 1 2 3
	500, 500, 500, 500, 500, 500, 278, 278, 564, 564, // 4 5 6 7 8 9 : ; < =
	564, 444, 921, 722, 667, 667, 722, 611, 556, 722, // > ? @ A B C D E F G
	722, 333, 389, 722, 611, 889, 722, 722, 556, 722, // H I J K L M N O P Q
	667, 556, 611, 722, 722, 944, 722, 722, 611, 333, // R S T U V W X Y Z [
	278, 333, 469, 500, 333, 444, 500, 444, 500, 444, // \ ] ^ _ ` a b c d e
	333, 500, 500, 278, 278, 500, 278, 778, 500, 500, // f g h i j k l m n o
	500, 500, 333, 389, 278, 500, 500, 722, 500, 500, // p q r s t u v w x y
	444, 480, 200, 480, 541, // z { | } ~
}

var timesBoldWidths = [95]int{
	250, 333, 555, 500, 500, 1000, 833, 278, 333, 333,
	500, 570, 250, 333, 250, 278, 500, 500, 500, 500,
	500, 500, 500, 500, 500, 500, 333, 333, 570, 570,
	570, 500, 930, 722, 667, 722, 722, 667, 611, 778,
	778, 389, 500, 778, 667, 944, 722, 778, 611, 778,
	722, 556, 667, 722, 722, 1000, 722, 722, 667, 333,
	278, 333, 581, 500, 333, 500, 556, 444, 556, 444,
	333, 500, 556, 278, 333, 556, 278, 833, 556, 500,
	556, 556, 444, 389, 333, 556, 500, 722, 500, 500,
	444, 394, 220, 394, 520,
}

const (
	defaultCharWidth = 500
	bulletWidth      = 350
)

// TimesWidth measures text rendered in Times-Roman or Times-Bold at the
// given size. Used both by the layout engine and indirectly verified by
// the writer, which draws with the same fonts.
func TimesWidth(text string, size float64, bold bool) float64 {
	table := &timesRomanWidths
	if bold {
		table = &timesBoldWidths
	}
	total := 0
	for _, r := range text {
		switch {
		case r >= 32 && r <= 126:
			total += table[r-32]
		case r == '•':
			total += bulletWidth
		default:
			total += defaultCharWidth
		}
	}
	return float64(total) * size / 1000
}
