package domain

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

var (
	phonePattern  = regexp.MustCompile(`^\+?[0-9]{9,15}$`)
	weightPattern = regexp.MustCompile(`^[0-9]{1,3}(\.[0-9]{1,2})?$`)

	dateLayouts = []string{"2006-01-02", "02/01/2006", "2006-01-02 15:04:05", time.RFC3339}
)

// checkTags runs the `valid` struct tags of form and returns the failures keyed by json field name.
func checkTags(form any) map[string]string {
	errs := map[string]string{}
	if _, err := govalidator.ValidateStruct(form); err != nil {
		for name, msg := range govalidator.ErrorsByField(err) {
			errs[jsonName(form, name)] = msg
		}
	}
	return errs
}

func jsonName(form any, name string) string {
	t := reflect.TypeOf(form)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(name); ok {
		if tag := strings.Split(f.Tag.Get("json"), ",")[0]; tag != "" {
			return tag
		}
	}
	return name
}

// ParseDate accepts ISO dates, day-first slashed dates and timestamps.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseInt also takes "2015.0", which is how spreadsheets hand back whole numbers.
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid whole number %q", s)
	}
	return int(f), nil
}

// dateBetween parses an optional date field and enforces [min, max] on calendar days.
func dateBetween(errs map[string]string, field, raw string, min, max time.Time) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	d, err := ParseDate(raw)
	if err != nil {
		errs[field] = "Enter a valid date"
		return nil
	}
	if d.Before(truncateDay(min)) || d.After(truncateDay(max)) {
		errs[field] = fmt.Sprintf("Date must be between %s and %s", min.Format("2006-01-02"), max.Format("2006-01-02"))
		return nil
	}
	return &d
}

func yesNoField(errs map[string]string, field, raw string, required bool) YesNo {
	if strings.TrimSpace(raw) == "" {
		if required {
			errs[field] = "This field is required"
		}
		return No
	}
	v, ok := ParseYesNo(raw)
	if !ok {
		errs[field] = "Select either Yes or No"
		return No
	}
	return v
}

func optionalPhone(errs map[string]string, field, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw != "" && !phonePattern.MatchString(raw) {
		errs[field] = "Enter a valid phone number"
	}
	return raw
}

func setIfAbsent(errs map[string]string, field, msg string) {
	if _, ok := errs[field]; !ok {
		errs[field] = msg
	}
}

func trimAll(fields ...*string) {
	for _, p := range fields {
		*p = strings.TrimSpace(*p)
	}
}

func strPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
