package duetime

import (
	"fmt"
	"time"
)

// genitive month names as used in Russian dates ("2 января")
var ruMonths = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// FormatRU renders t in the offset zone as "2 января 2024 г., 9:00".
func FormatRU(t time.Time, offset int) string {
	local := t.In(time.FixedZone("", offset))
	return fmt.Sprintf("%d %s %d г., %d:%02d",
		local.Day(), ruMonths[local.Month()-1], local.Year(), local.Hour(), local.Minute())
}
