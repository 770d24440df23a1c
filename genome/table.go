package genome

// Code 是一个碱基的 2 bit 编码，取值 [0,3]
type Code uint8

const (
	CodeA Code = 0
	CodeC Code = 1
	CodeT Code = 2
	CodeG Code = 3
)

const (
	BASE_A = 'A'
	BASE_C = 'C'
	BASE_T = 'T'
	BASE_G = 'G'
)

const invalidCode = 0xff

//Code -> 碱基
var code2nt = [4]byte{
	CodeA: BASE_A,
	CodeC: BASE_C,
	CodeT: BASE_T,
	CodeG: BASE_G,
}

//碱基 -> Code，大小写都可以，其他字符为 invalidCode
var nt2code = func() (t [256]uint8) {
	for i := range t {
		t[i] = invalidCode
	}
	for c, nt := range code2nt {
		t[nt] = uint8(c)
		t[nt+32] = uint8(c) // 小写
	}
	return
}()

// EncodeSymbol returns the 2-bit code of b. ok is false when b is not one of
// A, C, T, G (in either case).
func EncodeSymbol(b byte) (c Code, ok bool) {
	v := nt2code[b]
	if v == invalidCode {
		return 0, false
	}
	return Code(v), true
}

// DecodeSymbol returns the uppercase symbol for c. Only the low 2 bits are used.
func DecodeSymbol(c Code) byte {
	return code2nt[c&3]
}

// Valid reports whether b belongs to the alphabet.
func Valid(b byte) bool {
	return nt2code[b] != invalidCode
}
