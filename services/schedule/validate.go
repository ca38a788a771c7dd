// File: services/schedule/validate.go
package schedule

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"attendai/models"

	"github.com/go-playground/validator/v10"
)

var ErrEndBeforeStart = errors.New("endTime must be after startTime")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report json field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, ok := NormalizeDay(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := ParseClock(fl.Field().String())
		return err == nil
	})
	return v
}

// ValidationError lists the offending fields of a schedule item.
type ValidationError struct {
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("invalid schedule item: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks an item and canonicalizes its day name in place.
func Validate(item *models.ScheduleItem) error {
	item.Subject = strings.TrimSpace(item.Subject)
	item.Room = strings.TrimSpace(item.Room)

	if err := validate.Struct(item); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return &ValidationError{Fields: fields, Err: err}
		}
		return err
	}

	day, _ := NormalizeDay(item.Day)
	item.Day = day

	start, _ := ParseClock(item.StartTime)
	end, _ := ParseClock(item.EndTime)
	if end <= start {
		return &ValidationError{Err: ErrEndBeforeStart}
	}
	return nil
}
