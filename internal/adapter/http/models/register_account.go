package models

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var cpfPattern = regexp.MustCompile(`^[0-9]{3}\.[0-9]{3}\.[0-9]{3}-[0-9]{2}$`)

type RegisterAccountRequest struct {
	Agency     string `json:"agency"`
	Number     string `json:"number"`
	Email      string `json:"email"`
	CPF        string `json:"cpf"`
	HolderName string `json:"holderName"`
}

func (r RegisterAccountRequest) Validate() error {
	var errs []string

	agency := strings.TrimSpace(r.Agency)
	if agency == "" {
		errs = append(errs, "agency is required")
	} else if len(agency) != 4 || !digitsOnly(agency) {
		errs = append(errs, "agency must be exactly 4 digits")
	}

	number := strings.TrimSpace(r.Number)
	if number == "" {
		errs = append(errs, "number is required")
	} else if len(number) != 6 || !digitsOnly(number) {
		errs = append(errs, "number must be exactly 6 digits")
	}

	email := strings.TrimSpace(r.Email)
	if email == "" {
		errs = append(errs, "email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, "email must be a well-formed address")
	}

	cpf := strings.TrimSpace(r.CPF)
	if cpf == "" {
		errs = append(errs, "cpf is required")
	} else if !cpfPattern.MatchString(cpf) {
		errs = append(errs, "cpf must be in the format XXX.XXX.XXX-XX")
	} else if !validCPFCheckDigits(cpf) {
		errs = append(errs, "cpf is not a valid document number")
	}

	holderName := strings.TrimSpace(r.HolderName)
	if holderName == "" {
		errs = append(errs, "holderName is required")
	} else if len([]rune(holderName)) > 120 {
		errs = append(errs, "holderName must be at most 120 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// validCPFCheckDigits verifies the two mod-11 check digits. A sequence of
// eleven identical digits passes the checksum but is not a valid CPF.
func validCPFCheckDigits(cpf string) bool {
	digits := make([]int, 0, 11)
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) != 11 {
		return false
	}

	allSame := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return digits[9] == cpfCheckDigit(digits[:9]) && digits[10] == cpfCheckDigit(digits[:10])
}

func cpfCheckDigit(digits []int) int {
	weight := len(digits) + 1
	sum := 0
	for _, d := range digits {
		sum += d * weight
		weight--
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func digitsOnly(value string) bool {
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

type RegisterAccountResponse struct {
	ID         int64  `json:"id"`
	Agency     string `json:"agency"`
	Number     string `json:"number"`
	Email      string `json:"email"`
	CPF        string `json:"cpf"`
	HolderName string `json:"holderName"`
	CreatedAt  string `json:"createdAt"`
}
