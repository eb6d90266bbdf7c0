package numeric

// Number is the structural decomposition of a decimal number string.
type Number struct {
	Sign      byte // 0, '+' or '-'
	Integer   string
	Separator byte // 0, '.' or ','
	Fraction  string
}

// Parse splits value into sign, integer digits, separator and fractional
// digits. It checks the grammar only; precision, scale and sign policy are
// applied by Validator.
func Parse(value string) (Number, error) {
	if value == "" {
		return Number{}, ErrEmptyInput
	}

	var n Number
	i := 0
	if c := value[0]; c == '+' || c == '-' {
		n.Sign = c
		i++
	}

	start := i
	i = skipDigits(value, i)
	if i == start {
		return Number{}, ErrMalformedNumber
	}
	n.Integer = value[start:i]
	if i == len(value) {
		return n, nil
	}

	if c := value[i]; c != '.' && c != ',' {
		return Number{}, ErrMalformedNumber
	}
	n.Separator = value[i]
	i++

	start = i
	i = skipDigits(value, i)
	if i == start || i != len(value) {
		return Number{}, ErrMalformedNumber
	}
	n.Fraction = value[start:]

	return n, nil
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// Digits returns the number of integer and fractional digits combined.
func (n Number) Digits() int {
	return len(n.Integer) + len(n.Fraction)
}

func (n Number) FractionDigits() int {
	return len(n.Fraction)
}

func (n Number) Negative() bool {
	return n.Sign == '-'
}

// String rebuilds the textual form exactly as it was parsed.
func (n Number) String() string {
	b := make([]byte, 0, n.Digits()+2)
	if n.Sign != 0 {
		b = append(b, n.Sign)
	}
	b = append(b, n.Integer...)
	if n.Separator != 0 {
		b = append(b, n.Separator)
		b = append(b, n.Fraction...)
	}
	return string(b)
}
