package services

import (
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
)

// Sentinel errors surfaced to controllers. Anything else coming out of a
// service is an internal error and maps to a generic 500.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTrainNotFound   = errors.New("train not found")
	ErrBookingNotFound = errors.New("booking not found")

	ErrClassNotOffered = errors.New("class not offered on this train")
	ErrPassengerCount  = errors.New("a booking must have between 1 and 6 passengers")
	ErrIDProofRequired = errors.New("id proof required for concession passengers")
	ErrNotEnoughSeats  = errors.New("not enough seats available")
)

// isDuplicateKey detects unique-constraint violations. MySQL reports errno
// 1062; the substring fallback covers other drivers (the test database among
// them).
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}
