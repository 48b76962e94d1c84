package pdfexport

import "strings"

var translitMap = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e", 'ж': "zh",
	'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o",
	'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts",
	'ч': "ch", 'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu",
	'я': "ya", '«': "\"", '»': "\"", '—': "-", '–': "-", '№': "N",
}

// Transliterate переводит кириллицу в латиницу для встроенных шрифтов pdf
func Transliterate(s string) string {
	var sb strings.Builder
	for _, r := range s {
		lower := []rune(strings.ToLower(string(r)))[0]
		value, ok := translitMap[lower]
		if !ok {
			if r < 256 {
				sb.WriteRune(r)
			} else {
				sb.WriteByte('?')
			}
			continue
		}
		if lower != r && value != "" {
			value = strings.ToUpper(value[:1]) + value[1:]
		}
		sb.WriteString(value)
	}
	return sb.String()
}
