// Package forms validates user input before it reaches the backend.
//
// Every form is a plain struct with `validate` rules and a `label` used in
// messages. Validate reports all problems at once, in field order, as a
// *Error that matches common.ErrValidation.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/peersphere/peersphere/internal/common"
)

// EventTimeLayouts are the accepted event time formats, tried in order.
var EventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

type Login struct {
	Email    string `label:"Email" validate:"notblank,email"`
	Password string `label:"Password" validate:"notblank"`
}

type Register struct {
	Name     string `label:"Name" validate:"notblank,max=100"`
	Email    string `label:"Email" validate:"notblank,email"`
	Password string `label:"Password" validate:"notblank,min=6"`
}

type Group struct {
	Name       string `label:"Group name" validate:"notblank,max=100"`
	CourseCode string `label:"Course code" validate:"notblank,max=20"`
}

type JoinGroup struct {
	GroupCode string `label:"Group code" validate:"notblank"`
}

type Deck struct {
	Title       string `label:"Deck name" validate:"notblank,max=100"`
	Description string `label:"Description" validate:"max=500"`
}

type Flashcard struct {
	Question string `label:"Question" validate:"notblank"`
	Answer   string `label:"Answer" validate:"notblank"`
}

type Note struct {
	Title   string `label:"Title" validate:"notblank,max=200"`
	Content string `label:"Content" validate:"notblank"`
}

type Message struct {
	Content string `label:"Message" validate:"notblank,max=2000"`
}

type Event struct {
	Title       string `label:"Title" validate:"notblank,max=200"`
	Description string `label:"Description" validate:"max=1000"`
	StartTime   string `label:"Start time" validate:"notblank,eventtime"`
	EndTime     string `label:"End time" validate:"notblank,eventtime"`
}

// Error lists every failed rule of a form.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return strings.Join(e.Problems, "; ")
}

func (e *Error) Unwrap() error {
	return common.ErrValidation
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "eventtime", func(fl validator.FieldLevel) bool {
		_, ok := ParseEventTime(fl.Field().String())
		return ok
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		ev := sl.Current().Interface().(Event)
		start, okStart := ParseEventTime(ev.StartTime)
		end, okEnd := ParseEventTime(ev.EndTime)
		if okStart && okEnd && !end.After(start) {
			sl.ReportError(ev.EndTime, "End time", "EndTime", "afterstart", "")
		}
	}, Event{})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("forms: register %q: %v", tag, err))
	}
}

// ParseEventTime parses s with the first matching EventTimeLayouts entry.
func ParseEventTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range EventTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Validate checks a form struct (or pointer to one).
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, message(fe))
	}
	return &Error{Problems: problems}
}

func message(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "notblank", "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", label, fe.Param())
	case "email":
		return label + " format is invalid"
	case "eventtime":
		return label + " must look like 2006-01-02T15:04"
	case "afterstart":
		return "End time must be after start time"
	default:
		return label + " is invalid"
	}
}
