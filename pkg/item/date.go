package item

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"tableflip.dev/timeline/pkg/timeutil"
)

// Date is a calendar day stored as midnight UTC.
type Date struct {
	time.Time
}

// DateOf truncates t to its UTC calendar day.
func DateOf(t time.Time) Date {
	return Date{Time: timeutil.StartOfDay(t)}
}

// ParseDate parses v with the layouts accepted by timeutil.ParseDate.
func ParseDate(v string) (Date, error) {
	t, err := timeutil.ParseDate(v)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// MustDate parses v and panics on error. Intended for tests/seed data.
func MustDate(v string) Date {
	d, err := ParseDate(v)
	if err != nil {
		panic(err)
	}
	return d
}

// AddDays returns the date n calendar days later.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.UTC().Format(timeutil.LayoutISO)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}
