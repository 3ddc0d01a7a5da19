// Package password valida fuerza de contraseñas en el registro de usuarios.
package password

import (
	"strings"
	"unicode"
)

// Contraseñas demasiado comunes para aceptarlas aunque cumplan el resto de criterios.
var commonPasswords = map[string]struct{}{
	"123456": {}, "password": {}, "123456789": {}, "12345678": {}, "12345": {},
	"1234567": {}, "1234567890": {}, "qwerty": {}, "abc123": {}, "password1": {},
	"000000": {}, "1234": {}, "iloveyou": {}, "123321": {}, "654321": {},
	"admin": {}, "root": {}, "user": {}, "guest": {}, "test": {}, "demo": {},
}

// MinLength longitud mínima aceptada.
const MinLength = 8

// Result resultado de la validación: errores encontrados y puntaje 0..7.
type Result struct {
	Valid    bool
	Errors   []string
	Strength string // weak, medium, strong, very-strong
	Score    int
}

// Validate aplica los criterios: longitud, mayúscula, minúscula, dígito,
// carácter especial y lista de contraseñas comunes.
func Validate(pw string) Result {
	var errs []string
	score := 0

	if len(pw) < MinLength {
		errs = append(errs, "la contraseña debe tener al menos 8 caracteres")
	} else {
		score++
		if len(pw) >= 12 {
			score++
		}
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	if !hasUpper {
		errs = append(errs, "debe contener al menos una letra mayúscula")
	} else {
		score++
	}
	if !hasLower {
		errs = append(errs, "debe contener al menos una letra minúscula")
	} else {
		score++
	}
	if !hasDigit {
		errs = append(errs, "debe contener al menos un número")
	} else {
		score++
	}
	if !hasSpecial {
		errs = append(errs, "debe contener al menos un carácter especial")
	} else {
		score++
	}

	if _, common := commonPasswords[strings.ToLower(pw)]; common {
		errs = append(errs, "esta contraseña es demasiado común")
	} else {
		score++
	}

	return Result{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Strength: strengthLabel(score),
		Score:    score,
	}
}

func strengthLabel(score int) string {
	switch {
	case score <= 2:
		return "weak"
	case score <= 4:
		return "medium"
	case score <= 6:
		return "strong"
	default:
		return "very-strong"
	}
}
