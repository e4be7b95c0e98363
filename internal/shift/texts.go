package shift

// headers are the shift-end greeting lines opening the text report.
var headers = map[string]string{
	"A": "Selamat sore, berikut rekap shift problem Zabbix monitoring IFG pada akhir shift A",
	"C": "Selamat malam, berikut rekap shift problem Zabbix monitoring IFG pada akhir shift C",
	"M": "Selamat pagi, berikut rekap shift problem Zabbix monitoring IFG pada akhir shift M",
	"D": "Selamat malam, berikut rekap daily problem Zabbix monitoring IFG",
}

// Header returns the greeting line for a shift. Unlike Window, an unknown
// code is not an error here: the generic greeting keeps the report usable.
func Header(code string) string {
	if h, ok := headers[code]; ok {
		return h
	}
	return "Selamat malam, berikut rekap problem Zabbix monitoring IFG"
}

// fullNames maps operator short names to the full names printed on the PDF.
var fullNames = map[string]string{
	"Anissa": "Anissa Tun Sa'adah",
	"Armin":  "Armin Hasni",
	"Agung":  "Agung Hardianto",
	"Alif":   "Alif Anandhito Bagoes Rekotomo",
	"Aaqil":  "Muhammad Irsyad Aqil",
	"Harry":  "Harry Prasetya",
	"Tegar":  "Tegar Kartawiyuda",
	"Udin":   "Nur Khoerudin",
}

// FullName resolves an operator short name to the roster full name,
// passing unknown names through verbatim.
func FullName(operator string) string {
	if full, ok := fullNames[operator]; ok {
		return full
	}
	return operator
}
